package storage

import (
	"context"

	"github.com/poiesic/notegraph/core"
)

// StateRepository provides durable per-note sync state.
// Implementations must be thread-safe for reads; writes are expected to come
// from a single goroutine (the orchestrator's writer funnel), and each Commit
// must be atomic and flushed before it returns.
type StateRepository interface {
	// Get retrieves the sync state for a note.
	// Returns ErrNotFound if the note has never been committed.
	Get(ctx context.Context, noteID string) (*core.SyncState, error)

	// Commit atomically upserts the state for a note and flushes it to
	// durable storage. A Commit error means state integrity can no longer
	// be guaranteed and the caller must abort the run.
	Commit(ctx context.Context, state *core.SyncState) error

	// Snapshot returns the full persisted mapping of note ID to sync state.
	// The returned map is a copy; mutating it does not affect storage.
	Snapshot(ctx context.Context) (map[string]*core.SyncState, error)

	// Close closes the storage backend and releases resources.
	Close() error
}
