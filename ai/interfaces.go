package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity
// search. The same embedder serves product text and query text so both live
// in one embedding space. Implementations must be thread-safe for concurrent
// use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The input is passed to the provider verbatim: no tokenization or
	// normalization happens on this side.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}
