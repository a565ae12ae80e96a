package ingest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/notegraph/ai"
	"github.com/poiesic/notegraph/chunker"
	"github.com/poiesic/notegraph/core"
	"github.com/poiesic/notegraph/graph"
	"github.com/poiesic/notegraph/source"
	"github.com/poiesic/notegraph/storage"
)

// Config holds configuration for a sync run. It is immutable once passed to
// NewOrchestrator.
type Config struct {
	// Concurrency bounds the number of notes in flight simultaneously.
	Concurrency int

	// Limit caps how many listed notes enter classification. 0 means all.
	Limit int

	// DryRun classifies and chunks but never invokes the embedding or graph
	// clients; affected notes are committed as DryRunRecorded.
	DryRun bool

	// MaxChunkChars is the per-chunk rune budget.
	MaxChunkChars int

	// MaxRetries is the maximum number of attempts per external call.
	MaxRetries int

	// RetryDelay is the base delay for exponential backoff.
	RetryDelay time.Duration

	// CallTimeout bounds each individual embed or upsert call.
	CallTimeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Concurrency:   8,
		MaxChunkChars: chunker.DefaultMaxChars,
		MaxRetries:    3,
		RetryDelay:    1 * time.Second,
		CallTimeout:   30 * time.Second,
	}
}

// Option configures an Orchestrator.
type Option func(*Orchestrator) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) error {
		if logger == nil {
			logger = slog.Default()
		}
		o.logger = logger
		return nil
	}
}

// WithProgress enables progress reporting to the given writer
// (typically os.Stderr).
func WithProgress(w io.Writer) Option {
	return func(o *Orchestrator) error {
		o.progress = w
		return nil
	}
}

// Orchestrator drives the per-note sync state machine under bounded
// concurrency: classify, chunk, embed, upsert, commit.
//
// The state repository is the only shared mutable resource. Workers never
// write it directly; every outcome flows through one results channel consumed
// by a single writer goroutine, which serializes report updates and state
// commits.
type Orchestrator struct {
	source   source.Connector
	embedder ai.Embedder
	graph    graph.Client
	states   storage.StateRepository
	chunker  *chunker.Chunker
	config   *Config
	pool     *ants.Pool
	logger   *slog.Logger
	progress io.Writer
}

// noteResult is one note's terminal outcome within a run.
type noteResult struct {
	noteID string
	digest core.Digest
	status core.SyncStatus
	err    error
}

// NewOrchestrator creates a sync orchestrator.
// A nil config uses DefaultConfig().
func NewOrchestrator(
	src source.Connector,
	embedder ai.Embedder,
	graphClient graph.Client,
	states storage.StateRepository,
	config *Config,
	opts ...Option,
) (*Orchestrator, error) {
	if src == nil {
		return nil, ErrSourceRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if graphClient == nil {
		return nil, ErrGraphClientRequired
	}
	if states == nil {
		return nil, ErrStatesRequired
	}

	if config == nil {
		config = DefaultConfig()
	}
	cfg := *config
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	if cfg.MaxRetries < 1 {
		cfg.MaxRetries = 1
	}
	if cfg.CallTimeout <= 0 {
		cfg.CallTimeout = 30 * time.Second
	}

	pool, err := ants.NewPool(cfg.Concurrency)
	if err != nil {
		return nil, err
	}

	o := &Orchestrator{
		source:   src,
		embedder: embedder,
		graph:    graphClient,
		states:   states,
		chunker:  chunker.New(cfg.MaxChunkChars),
		config:   &cfg,
		pool:     pool,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(o); optErr != nil {
			o.Release()
			return nil, optErr
		}
	}

	return o, nil
}

// Run executes one sync pass over the source corpus and returns its report.
//
// A listing or snapshot failure aborts before any processing. Per-note
// failures never abort the run; they are recorded in the report and the
// note's prior state is left untouched, so the next run retries the full
// pipeline for that note. A state commit failure aborts the run: the report
// so far is returned together with a non-nil error.
func (o *Orchestrator) Run(ctx context.Context) (*core.RunReport, error) {
	report := &core.RunReport{StartedAt: time.Now().UTC()}

	notes, err := o.source.ListNotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	prior, err := o.states.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("load state snapshot: %w", err)
	}

	if o.config.Limit > 0 && len(notes) > o.config.Limit {
		notes = notes[:o.config.Limit]
	}

	o.logger.Info("starting sync run",
		"notes", len(notes),
		"tracked", len(prior),
		"concurrency", o.config.Concurrency,
		"dryRun", o.config.DryRun)

	var tracker *ProgressTracker
	if o.progress != nil {
		tracker = NewProgressTracker(o.progress, len(notes), 1)
		tracker.Start()
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Single-writer funnel: this goroutine is the only one that mutates the
	// report and the state repository.
	results := make(chan noteResult, len(notes))
	writerDone := make(chan struct{})
	var commitErr error
	go func() {
		defer close(writerDone)
		for res := range results {
			report.Record(res.noteID, res.status, res.err)
			if tracker != nil {
				tracker.Increment(1)
			}
			if res.err != nil {
				o.logger.Warn("note failed", "note", res.noteID, "err", res.err)
			}
			if commitErr != nil {
				continue
			}
			if res.status != core.SyncStatusIngested && res.status != core.SyncStatusDryRunRecorded {
				continue
			}
			state := &core.SyncState{
				NoteID:      res.noteID,
				Digest:      res.digest,
				ProcessedAt: time.Now().UTC(),
				Status:      res.status,
			}
			if err := o.states.Commit(runCtx, state); err != nil {
				commitErr = fmt.Errorf("commit state for %s: %w", res.noteID, err)
				cancel()
			}
		}
	}()

	var wg sync.WaitGroup
	for _, note := range notes {
		// No new candidates after cancellation; in-flight notes finish on
		// their own and report through the funnel.
		if runCtx.Err() != nil {
			results <- noteResult{noteID: note.ID, status: core.SyncStatusErrored, err: runCtx.Err()}
			continue
		}
		if err := core.ValidateNote(note); err != nil {
			results <- noteResult{noteID: note.ID, status: core.SyncStatusErrored, err: err}
			continue
		}

		digest := core.DigestContent(note.Content)
		if prev, ok := prior[note.ID]; ok && prev.Digest == digest && o.satisfied(prev.Status) {
			results <- noteResult{noteID: note.ID, digest: digest, status: core.SyncStatusUnchanged}
			continue
		}

		note := note
		wg.Add(1)
		if submitErr := o.pool.Submit(func() {
			defer wg.Done()
			results <- o.processNote(runCtx, note, digest)
		}); submitErr != nil {
			wg.Done()
			results <- noteResult{noteID: note.ID, status: core.SyncStatusErrored, err: submitErr}
		}
	}

	wg.Wait()
	close(results)
	<-writerDone

	if tracker != nil {
		tracker.Finish()
	}
	report.FinishedAt = time.Now().UTC()

	o.logger.Info("sync run finished",
		"unchanged", report.Unchanged,
		"ingested", report.Ingested,
		"dryRun", report.DryRun,
		"errored", report.Errored,
		"elapsed", report.Duration().Round(time.Millisecond))

	if commitErr != nil {
		return report, commitErr
	}
	return report, nil
}

// satisfied reports whether a committed status with a matching digest lets
// the note skip processing. DryRunRecorded satisfies only another dry run:
// a real run must still perform the real ingestion.
func (o *Orchestrator) satisfied(status core.SyncStatus) bool {
	if status == core.SyncStatusIngested {
		return true
	}
	return o.config.DryRun && status == core.SyncStatusDryRunRecorded
}

// processNote runs one note's pipeline: chunk, embed, upsert. Steps are
// strictly sequential and short-circuit on failure.
func (o *Orchestrator) processNote(ctx context.Context, note *core.Note, digest core.Digest) noteResult {
	chunks := o.chunker.Split(note.ID, note.Content)
	if len(chunks) == 0 {
		// Empty notes are skipped downstream, not errors. No state commit:
		// nothing was pushed. Here Unchanged means "nothing to push", not
		// "digest matched" — a note emptied after an ingestion keeps its
		// prior state and is re-examined on every run.
		o.logger.Debug("note has no content, skipping", "note", note.ID)
		return noteResult{noteID: note.ID, digest: digest, status: core.SyncStatusUnchanged}
	}

	if o.config.DryRun {
		o.logger.Debug("dry run, suppressing external calls", "note", note.ID, "chunks", len(chunks))
		return noteResult{noteID: note.ID, digest: digest, status: core.SyncStatusDryRunRecorded}
	}

	texts := make([]string, len(chunks))
	for i, ch := range chunks {
		texts[i] = ch.Text
	}

	var vectors [][]float32
	err := RetryWithBackoff(ctx, o.logger, func() error {
		callCtx, cancelCall := context.WithTimeout(ctx, o.config.CallTimeout)
		defer cancelCall()
		var embedErr error
		vectors, embedErr = o.embedder.EmbedTexts(callCtx, texts)
		return embedErr
	}, o.config.MaxRetries, o.config.RetryDelay)
	if err != nil {
		return noteResult{
			noteID: note.ID,
			status: core.SyncStatusErrored,
			err:    fmt.Errorf("embed %d chunks: %w", len(chunks), err),
		}
	}
	if len(vectors) != len(chunks) {
		return noteResult{
			noteID: note.ID,
			status: core.SyncStatusErrored,
			err:    fmt.Errorf("embedding count mismatch: expected %d, got %d", len(chunks), len(vectors)),
		}
	}

	err = RetryWithBackoff(ctx, o.logger, func() error {
		callCtx, cancelCall := context.WithTimeout(ctx, o.config.CallTimeout)
		defer cancelCall()
		return o.graph.UpsertNote(callCtx, note, chunks, vectors, note.Entities())
	}, o.config.MaxRetries, o.config.RetryDelay)
	if err != nil {
		return noteResult{
			noteID: note.ID,
			status: core.SyncStatusErrored,
			err:    fmt.Errorf("upsert note: %w", err),
		}
	}

	o.logger.Debug("note ingested", "note", note.ID, "chunks", len(chunks))
	return noteResult{noteID: note.ID, digest: digest, status: core.SyncStatusIngested}
}

// Release releases the worker pool.
// The orchestrator should not be used after calling Release.
func (o *Orchestrator) Release() {
	if o.pool != nil {
		o.pool.Release()
	}
}
