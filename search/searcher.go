package search

import (
	"context"
	"log/slog"
	"strings"

	"github.com/seekwell/wares/ai"
	"github.com/seekwell/wares/core"
	"github.com/seekwell/wares/storage"
)

// DefaultLimit is the page size used when the caller passes limit 0.
// Large enough to return the whole catalog in one page.
const DefaultLimit = 9999

// Searcher ranks catalog products by semantic similarity to a query.
type Searcher struct {
	repository storage.ProductRepository
	embedder   ai.Embedder
	logger     *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(
	repository storage.ProductRepository,
	embedder ai.Embedder,
	opts ...Option,
) (*Searcher, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	s := &Searcher{
		repository: repository,
		embedder:   embedder,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Search embeds the query and returns live products ordered by ascending
// distance from it, with skip/limit applied after the full ordering. A limit
// of 0 means DefaultLimit. Returned products never carry embeddings.
func (s *Searcher) Search(ctx context.Context, query string, skip, limit int) ([]*core.Product, error) {
	return s.SearchWithMonitor(ctx, query, skip, limit, nil)
}

// SearchWithMonitor runs Search with per-stage monitoring callbacks.
func (s *Searcher) SearchWithMonitor(ctx context.Context, query string, skip, limit int, monitor SearchMonitor) ([]*core.Product, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	// Guard before spending a provider call
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}
	if skip < 0 {
		return nil, ErrInvalidSkip
	}
	if limit < 0 {
		return nil, ErrInvalidLimit
	}
	if limit == 0 {
		limit = DefaultLimit
	}

	monitor.Start(query)

	embedding, err := s.embedder.EmbedText(ctx, query)
	if err != nil {
		s.logger.Error("error generating embedding for query", "query", query, "err", err)
		return nil, err
	}
	monitor.AfterQueryEmbedding(embedding)

	products, err := s.repository.ScanNearest(ctx, embedding, skip, limit)
	if err != nil {
		s.logger.Error("error scanning for nearest products", "err", err)
		return nil, err
	}
	monitor.AfterScan(products)

	// Embeddings are an internal detail; callers only see ranked rows
	for _, product := range products {
		product.Embedding = nil
	}

	monitor.Finish(products)
	return products, nil
}
