package reembed

import (
	"context"
	"fmt"
	"time"

	"github.com/seekwell/wares/ai"
	"github.com/seekwell/wares/core"
	"github.com/seekwell/wares/storage"
)

// BatchProcessor handles embedding generation for batches of products.
type BatchProcessor struct {
	repo           storage.ProductRepository
	embedder       ai.Embedder
	maxRetries     int
	retryBaseDelay time.Duration
}

// NewBatchProcessor creates a new batch processor.
// maxRetries: maximum number of retry attempts for embedding API calls
// retryBaseDelay: base delay for exponential backoff
func NewBatchProcessor(repo storage.ProductRepository, embedder ai.Embedder, maxRetries int, retryBaseDelay time.Duration) *BatchProcessor {
	return &BatchProcessor{
		repo:           repo,
		embedder:       embedder,
		maxRetries:     maxRetries,
		retryBaseDelay: retryBaseDelay,
	}
}

// Process generates embeddings for a batch of products and updates them in
// the database. The text fed to the provider is exactly what the catalog
// service feeds it on create and update.
func (bp *BatchProcessor) Process(ctx context.Context, products []*core.Product) error {
	if len(products) == 0 {
		return nil
	}

	texts := make([]string, len(products))
	for i, product := range products {
		texts[i] = product.EmbeddingText()
	}

	var embeddings [][]float32
	err := RetryWithBackoff(ctx, func() error {
		var err error
		embeddings, err = bp.embedder.EmbedTexts(ctx, texts)
		return err
	}, bp.maxRetries, bp.retryBaseDelay)

	if err != nil {
		return fmt.Errorf("failed to generate embeddings after %d attempts: %w", bp.maxRetries, err)
	}

	if len(embeddings) != len(products) {
		return fmt.Errorf("embedding count mismatch: expected %d, got %d", len(products), len(embeddings))
	}

	for i := range products {
		products[i].Embedding = embeddings[i]
	}

	_, err = bp.repo.UpdateProducts(ctx, products...)
	if err != nil {
		return fmt.Errorf("failed to update products: %w", err)
	}

	return nil
}
