// Package mock provides a test double for graph.Client.
package mock

import (
	"context"
	"sync"

	"github.com/poiesic/notegraph/core"
)

// UpsertCall records the arguments of one UpsertNote invocation.
type UpsertCall struct {
	Note     *core.Note
	Chunks   []core.Chunk
	Vectors  [][]float32
	Entities []string
}

// Client is a test double for graph.Client.
// It records every upsert and supports per-note error injection.
type Client struct {
	// UpsertNoteFunc is called by UpsertNote if set.
	UpsertNoteFunc func(ctx context.Context, note *core.Note, chunks []core.Chunk, vectors [][]float32, entities []string) error

	// FailFor maps note IDs to errors; UpsertNote returns the mapped error
	// for those notes. Applied only when UpsertNoteFunc is nil.
	FailFor map[string]error

	mu    sync.Mutex
	calls []UpsertCall
}

// NewClient creates a mock graph client.
// Note: Returns concrete type to allow test assertions via Calls()/CallCount().
func NewClient() *Client {
	return &Client{FailFor: make(map[string]error)}
}

// UpsertNote records the call, then applies injected behavior.
func (m *Client) UpsertNote(ctx context.Context, note *core.Note, chunks []core.Chunk, vectors [][]float32, entities []string) error {
	m.mu.Lock()
	m.calls = append(m.calls, UpsertCall{Note: note, Chunks: chunks, Vectors: vectors, Entities: entities})
	m.mu.Unlock()

	if m.UpsertNoteFunc != nil {
		return m.UpsertNoteFunc(ctx, note, chunks, vectors, entities)
	}
	if err, ok := m.FailFor[note.ID]; ok {
		return err
	}
	return nil
}

// CallCount returns the number of UpsertNote invocations.
func (m *Client) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// Calls returns a copy of the recorded invocations.
func (m *Client) Calls() []UpsertCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]UpsertCall, len(m.calls))
	copy(out, m.calls)
	return out
}

// CallsFor returns the recorded invocations for one note ID.
func (m *Client) CallsFor(noteID string) []UpsertCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []UpsertCall
	for _, c := range m.calls {
		if c.Note != nil && c.Note.ID == noteID {
			out = append(out, c)
		}
	}
	return out
}

// Reset clears recorded calls and injected failures.
func (m *Client) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
	m.FailFor = make(map[string]error)
	m.UpsertNoteFunc = nil
}
