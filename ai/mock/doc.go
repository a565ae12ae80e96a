// Package mock provides a test double for the ai.Embedder interface.
//
// The mock allows tests to run without an external embedding service and
// enables controlled, deterministic behavior.
//
// # Usage in Tests
//
//	embedder := mock.NewEmbedder()
//	vectors, err := embedder.EmbedTexts(ctx, []string{"test"})
//
//	// Custom behavior injection
//	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
//	    return nil, errors.New("rate limited")
//	}
//
//	// Check call counts
//	count := embedder.CallCount()
//
// By default the mock returns deterministic FNV-seeded unit vectors, so
// identical text always yields identical embeddings.
package mock
