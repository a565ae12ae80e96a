// Package mock provides a test double for source.Connector.
package mock

import (
	"context"
	"sync"

	"github.com/poiesic/notegraph/core"
)

// Connector is a test double for source.Connector.
// It allows custom behavior injection via function fields.
type Connector struct {
	// Notes is returned by ListNotes when ListNotesFunc is nil.
	Notes []*core.Note

	// ListNotesFunc is called by ListNotes if set.
	ListNotesFunc func(ctx context.Context) ([]*core.Note, error)

	mu        sync.Mutex
	callCount int
}

// NewConnector creates a mock connector serving the given notes.
func NewConnector(notes ...*core.Note) *Connector {
	return &Connector{Notes: notes}
}

// ListNotes returns the configured notes or delegates to ListNotesFunc.
func (m *Connector) ListNotes(ctx context.Context) ([]*core.Note, error) {
	m.mu.Lock()
	m.callCount++
	m.mu.Unlock()

	if m.ListNotesFunc != nil {
		return m.ListNotesFunc(ctx)
	}
	return m.Notes, nil
}

// CallCount returns the number of times ListNotes was called.
func (m *Connector) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}
