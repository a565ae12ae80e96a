// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/poiesic/notegraph"
	"github.com/poiesic/notegraph/ai"
	"github.com/poiesic/notegraph/chunker"
	"github.com/poiesic/notegraph/core"
	"github.com/poiesic/notegraph/graph/httpapi"
	"github.com/poiesic/notegraph/ingest"
	"github.com/poiesic/notegraph/source/dir"
	"github.com/poiesic/notegraph/storage/badger"
)

func main() {
	// Optional .env for local development; missing file is fine.
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "notegraph",
		Usage: "Incremental note-to-knowledge-graph synchronization",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "Run one sync pass over the note corpus",
				Action: runCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB state directory",
						EnvVars:  []string{"NOTEGRAPH_DB"},
						Required: true,
					},
					&cli.StringFlag{
						Name:     "source",
						Aliases:  []string{"s"},
						Usage:    "Path to the note directory",
						EnvVars:  []string{"NOTEGRAPH_SOURCE"},
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "dry-run",
						Usage: "Classify and chunk without touching the embedding or graph services",
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Process at most N notes (0 = all)",
					},
					&cli.IntFlag{
						Name:  "concurrency",
						Usage: "Number of notes in flight simultaneously",
						Value: 8,
					},
					&cli.StringFlag{
						Name:    "embedding-host",
						Usage:   "Embedding service host URL",
						EnvVars: []string{"NOTEGRAPH_EMBEDDING_HOST"},
						Value:   "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:    "embedding-model",
						Usage:   "Embedding model name",
						EnvVars: []string{"NOTEGRAPH_EMBEDDING_MODEL"},
						Value:   "embeddinggemma",
					},
					&cli.StringFlag{
						Name:    "graph-url",
						Usage:   "Knowledge graph service URL",
						EnvVars: []string{"NOTEGRAPH_GRAPH_URL"},
						Value:   notegraph.DefaultGraphURL,
					},
					&cli.StringFlag{
						Name:    "api-key",
						Usage:   "Bearer token for the graph service",
						EnvVars: []string{"NOTEGRAPH_API_KEY"},
					},
					&cli.IntFlag{
						Name:  "max-chunk-chars",
						Usage: "Per-chunk character budget",
						Value: chunker.DefaultMaxChars,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for failed operations",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
					&cli.DurationFlag{
						Name:  "call-timeout",
						Usage: "Timeout for each embedding or graph call",
						Value: 30 * time.Second,
					},
				},
			},
			{
				Name:   "status",
				Usage:  "Summarize the committed sync state",
				Action: statusCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB state directory",
						EnvVars:  []string{"NOTEGRAPH_DB"},
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "verbose",
						Usage: "List every tracked note",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runCommand(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	src, err := dir.New(c.String("source"))
	if err != nil {
		return fmt.Errorf("failed to open note directory: %w", err)
	}

	aiConfig := ai.NewConfig(
		ai.WithHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
	)
	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	svc, err := notegraph.NewService(c.String("db"), src,
		notegraph.WithAIConfig(aiConfig),
		notegraph.WithGraphConfig(httpapi.Config{
			BaseURL: c.String("graph-url"),
			APIKey:  c.String("api-key"),
			Timeout: c.Duration("call-timeout"),
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to open service: %w", err)
	}
	defer svc.Close()

	syncConfig := &ingest.Config{
		Concurrency:   c.Int("concurrency"),
		Limit:         c.Int("limit"),
		DryRun:        c.Bool("dry-run"),
		MaxChunkChars: c.Int("max-chunk-chars"),
		MaxRetries:    c.Int("max-retries"),
		RetryDelay:    c.Duration("retry-delay"),
		CallTimeout:   c.Duration("call-timeout"),
	}
	if syncConfig.MaxRetries <= 0 {
		return fmt.Errorf("max-retries must be greater than 0")
	}
	if syncConfig.Concurrency <= 0 {
		return fmt.Errorf("concurrency must be greater than 0")
	}

	orch, err := svc.NewSync(syncConfig, ingest.WithProgress(os.Stderr))
	if err != nil {
		return fmt.Errorf("failed to create orchestrator: %w", err)
	}
	defer orch.Release()

	fmt.Fprintf(os.Stderr, "Database: %s\n", c.String("db"))
	fmt.Fprintf(os.Stderr, "Source: %s\n", c.String("source"))
	fmt.Fprintf(os.Stderr, "Graph: %s\n", c.String("graph-url"))
	if syncConfig.DryRun {
		fmt.Fprintln(os.Stderr, "Dry run: no external calls will be made")
	}
	fmt.Fprintln(os.Stderr)

	report, err := orch.Run(ctx)
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	printReport(report)

	// Per-note failures are reported but do not fail the process; the next
	// run retries them.
	return nil
}

func printReport(report *core.RunReport) {
	fmt.Printf("Notes:     %d\n", report.Total)
	fmt.Printf("Unchanged: %d\n", report.Unchanged)
	fmt.Printf("Ingested:  %d\n", report.Ingested)
	if report.DryRun > 0 {
		fmt.Printf("Dry run:   %d\n", report.DryRun)
	}
	fmt.Printf("Errored:   %d\n", report.Errored)
	fmt.Printf("Elapsed:   %s\n", report.Duration().Round(time.Millisecond))

	for _, noteErr := range report.Errors {
		fmt.Printf("  error: %s: %s\n", noteErr.NoteID, noteErr.Err)
	}
}

func statusCommand(c *cli.Context) error {
	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	states, err := badger.NewStateRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer states.Close()

	snapshot, err := states.Snapshot(c.Context)
	if err != nil {
		return fmt.Errorf("failed to load state snapshot: %w", err)
	}

	counts := make(map[core.SyncStatus]int)
	ids := make([]string, 0, len(snapshot))
	for id, state := range snapshot {
		counts[state.Status]++
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("Tracked notes: %d\n", len(snapshot))
	for _, status := range []core.SyncStatus{core.SyncStatusIngested, core.SyncStatusDryRunRecorded} {
		if counts[status] > 0 {
			fmt.Printf("  %s: %d\n", status, counts[status])
		}
	}

	if c.Bool("verbose") {
		fmt.Println()
		for _, id := range ids {
			state := snapshot[id]
			fmt.Printf("%s  %s  %s  %s\n",
				state.ProcessedAt.Format(time.RFC3339), state.Status, state.Digest[:12], id)
		}
	}

	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
