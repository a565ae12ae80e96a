package ai

import "context"

// Embedder generates vector embeddings from text for the knowledge graph.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedTexts generates vector embeddings for multiple text strings in a
	// batch, aligned by position with the input. A batch error means every
	// text in the batch failed; callers must not assume partial results.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}
