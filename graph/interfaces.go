// Package graph defines the knowledge-graph client abstraction.
//
// The graph store holds note, chunk, and entity nodes with their
// relationships. The orchestrator only needs an idempotent upsert: calling
// UpsertNote twice with the same note ID and the same chunk/embedding set must
// produce the same resulting graph state. That idempotence is what makes
// retries safe.
package graph

import (
	"context"

	"github.com/poiesic/notegraph/core"
)

// Client upserts notes with their chunks, embeddings, and related entities
// into the knowledge graph. Implementations must be thread-safe and
// idempotent by note ID.
type Client interface {
	// UpsertNote writes the note, its chunks with aligned embedding vectors,
	// and its related entity names. vectors[i] belongs to chunks[i].
	UpsertNote(ctx context.Context, note *core.Note, chunks []core.Chunk, vectors [][]float32, entities []string) error
}
