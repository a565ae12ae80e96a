// Package source defines the note source abstraction.
//
// A Connector lists the notes to be synchronized. The orchestrator treats it
// as a capability it consumes: it requires only a finite,
// deterministic-per-call listing with stable note IDs, not any particular
// retrieval mechanism.
package source

import (
	"context"

	"github.com/poiesic/notegraph/core"
)

// Connector lists notes from a source system.
// Implementations must be safe for concurrent use.
type Connector interface {
	// ListNotes returns the full set of notes currently in the source.
	// IDs must be stable across calls. A listing failure is fatal to a run.
	ListNotes(ctx context.Context) ([]*core.Note, error)
}
