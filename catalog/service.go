// Copyright 2026 Seekwell Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/seekwell/wares/ai"
	"github.com/seekwell/wares/core"
	"github.com/seekwell/wares/storage"
)

// ProductInput carries the fields needed to create a product.
// Price is a decimal string, e.g. "19.99".
type ProductInput struct {
	Name        string
	Category    string
	Description string
	Price       string
	Image       string
}

// Service owns catalog writes and keeps embeddings synchronized with the
// text they are derived from. Every create embeds before the row is written;
// every update that touches a text field re-embeds before the row is
// rewritten. A provider failure aborts the whole write, so a stored row can
// never carry an embedding computed from older text.
type Service struct {
	repo     storage.ProductRepository
	embedder ai.Embedder
	logger   *slog.Logger
}

// Option configures a Service.
type Option func(*Service) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger.With("component", "catalog")
		return nil
	}
}

// NewService creates a catalog Service.
func NewService(repo storage.ProductRepository, embedder ai.Embedder, opts ...Option) (*Service, error) {
	if repo == nil {
		return nil, ErrRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	s := &Service{
		repo:     repo,
		embedder: embedder,
		logger:   slog.Default().With("component", "catalog"),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Create validates the input, derives the slug and ID, computes the embedding
// and persists the product. Nothing is written if the provider fails.
func (s *Service) Create(ctx context.Context, input *ProductInput) (*core.Product, error) {
	price, err := core.ParsePrice(input.Price)
	if err != nil {
		return nil, err
	}

	slug := core.Slugify(input.Name)
	product := &core.Product{
		Id:          core.IDFromContent(slug),
		Name:        input.Name,
		Slug:        slug,
		Category:    input.Category,
		Description: input.Description,
		Price:       price,
		Image:       input.Image,
	}

	if err := core.ValidateProduct(product); err != nil {
		return nil, err
	}

	embedding, err := s.embedder.EmbedText(ctx, product.EmbeddingText())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEmbeddingFailed, err)
	}
	product.Embedding = embedding

	added, err := s.repo.AddProducts(ctx, product)
	if err != nil {
		return nil, err
	}

	s.logger.Info("product created", "id", product.Id, "slug", product.Slug)
	return added[0], nil
}

// Update applies a change set to an existing product. If any of name,
// category or description is in the set the embedding is recomputed from the
// updated text; price- or image-only updates keep the stored embedding
// untouched. The field counts as touched even when its new value equals the
// old one.
func (s *Service) Update(ctx context.Context, id core.ID, changes *ChangeSet) (*core.Product, error) {
	if changes == nil || changes.Empty() {
		return nil, ErrEmptyChangeSet
	}

	product, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if name, ok := changes.Get(FieldName); ok {
		product.Name = name
		product.Slug = core.Slugify(name)
	}
	if category, ok := changes.Get(FieldCategory); ok {
		product.Category = category
	}
	if description, ok := changes.Get(FieldDescription); ok {
		product.Description = description
	}
	if price, ok := changes.Get(FieldPrice); ok {
		parsed, err := core.ParsePrice(price)
		if err != nil {
			return nil, err
		}
		product.Price = parsed
	}
	if image, ok := changes.Get(FieldImage); ok {
		product.Image = image
	}

	if err := core.ValidateProduct(product); err != nil {
		return nil, err
	}

	if changes.TouchesText() {
		embedding, err := s.embedder.EmbedText(ctx, product.EmbeddingText())
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEmbeddingFailed, err)
		}
		product.Embedding = embedding
	}

	updated, err := s.repo.UpdateProducts(ctx, product)
	if err != nil {
		return nil, err
	}

	s.logger.Info("product updated", "id", id, "reembedded", changes.TouchesText())
	return updated[0], nil
}

// SoftDelete marks a product as deleted; the row stays readable by ID but
// drops out of the search ordering.
func (s *Service) SoftDelete(ctx context.Context, id core.ID) error {
	if err := s.repo.SoftDeleteProducts(ctx, id); err != nil {
		return err
	}
	s.logger.Info("product soft-deleted", "id", id)
	return nil
}

// Delete removes a product permanently.
func (s *Service) Delete(ctx context.Context, id core.ID) error {
	if err := s.repo.DeleteProducts(ctx, id); err != nil {
		return err
	}
	s.logger.Info("product deleted", "id", id)
	return nil
}
