// Package httpapi implements graph.Client against a REST knowledge-graph
// service.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/poiesic/notegraph/core"
	"github.com/poiesic/notegraph/graph"
)

// Config holds connection settings for the graph service.
type Config struct {
	// BaseURL is the service root, e.g. "http://localhost:7700".
	BaseURL string
	// APIKey is sent as a bearer token when non-empty.
	APIKey string
	// Timeout bounds each HTTP request. Defaults to 30s.
	Timeout time.Duration
}

// Client is a minimal REST client to the graph service.
// Upserts are keyed by note ID: PUT /notes/{id} replaces the note's subgraph,
// so repeating a call cannot create duplicate nodes or edges.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

var _ graph.Client = (*Client)(nil)

// NewClient creates a graph client for the given configuration.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("graph: BaseURL is required")
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: timeout},
	}, nil
}

// noteDoc is the upsert payload. Chunks carry their text hash so the service
// can reuse stored embeddings for unchanged chunks.
type noteDoc struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	ModifiedAt time.Time  `json:"modified_at"`
	Entities   []string   `json:"entities,omitempty"`
	Chunks     []chunkDoc `json:"chunks"`
}

type chunkDoc struct {
	Index    int       `json:"index"`
	Text     string    `json:"text"`
	TextHash string    `json:"text_hash"`
	Vector   []float32 `json:"vector,omitempty"`
}

// UpsertNote writes the note's full subgraph in one idempotent request.
func (c *Client) UpsertNote(ctx context.Context, note *core.Note, chunks []core.Chunk, vectors [][]float32, entities []string) error {
	if len(vectors) != len(chunks) {
		return fmt.Errorf("graph: chunks and vectors length mismatch: %d != %d", len(chunks), len(vectors))
	}

	doc := noteDoc{
		ID:         note.ID,
		Title:      note.Title,
		ModifiedAt: note.ModifiedAt.UTC(),
		Entities:   entities,
		Chunks:     make([]chunkDoc, len(chunks)),
	}
	for i, ch := range chunks {
		doc.Chunks[i] = chunkDoc{
			Index:    ch.Index,
			Text:     ch.Text,
			TextHash: string(ch.TextHash),
			Vector:   vectors[i],
		}
	}

	endpoint := fmt.Sprintf("%s/notes/%s", c.baseURL, url.PathEscape(note.ID))
	return c.putJSON(ctx, endpoint, doc)
}

func (c *Client) putJSON(ctx context.Context, endpoint string, body any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("graph: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("graph: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("graph: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("graph: upsert failed: %s: %s", resp.Status, bytes.TrimSpace(snippet))
	}
	return nil
}
