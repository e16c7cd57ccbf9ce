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


package wares

import (
	"io"
	"log/slog"

	"github.com/seekwell/wares/ai"
	"github.com/seekwell/wares/ai/openai"
	"github.com/seekwell/wares/catalog"
	"github.com/seekwell/wares/reembed"
	"github.com/seekwell/wares/search"
	"github.com/seekwell/wares/seed"
	"github.com/seekwell/wares/storage"
	"github.com/seekwell/wares/storage/badger"
)

// Database bundles the storage backend, the product repository and the
// embedding provider behind one handle.
type Database struct {
	backend  *badger.Backend
	repo     storage.ProductRepository
	embedder ai.Embedder
	logger   *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	aiConfig *ai.Config
	embedder ai.Embedder
}

// WithAIConfig sets the embedding provider configuration.
func WithAIConfig(config *ai.Config) DatabaseOption {
	return func(o *databaseOptions) {
		if config != nil {
			o.aiConfig = config
		}
	}
}

// WithEmbedder injects a pre-built embedder instead of constructing the
// OpenAI one. Used in tests.
func WithEmbedder(embedder ai.Embedder) DatabaseOption {
	return func(o *databaseOptions) {
		o.embedder = embedder
	}
}

// NewDatabase opens the BadgerDB store at filePath and wires the product
// repository and embedding provider around it.
func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	options := &databaseOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, false)
	if err != nil {
		return nil, err
	}

	repo, err := badger.NewProductRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	embedder := options.embedder
	if embedder == nil {
		embedder, err = openai.NewEmbedder(options.aiConfig)
		if err != nil {
			repo.Close()
			backend.Close()
			return nil, err
		}
	}

	return &Database{
		backend:  backend,
		repo:     repo,
		embedder: embedder,
		logger:   slog.Default(),
	}, nil
}

// Close releases the repository and the backend, in that order.
func (db *Database) Close() error {
	if err := db.repo.Close(); err != nil {
		db.logger.Error("error closing product repository", "err", err)
		return err
	}
	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// ProductRepository returns the product repository.
func (db *Database) ProductRepository() storage.ProductRepository {
	return db.repo
}

// Embedder returns the embedding provider.
func (db *Database) Embedder() ai.Embedder {
	return db.embedder
}

// NewCatalogService creates a catalog service over this database.
func (db *Database) NewCatalogService(opts ...catalog.Option) (*catalog.Service, error) {
	return catalog.NewService(db.repo, db.embedder, opts...)
}

// NewSearcher creates a searcher over this database.
func (db *Database) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	return search.NewSearcher(db.repo, db.embedder, opts...)
}

// NewSeeder creates a seeder over this database.
func (db *Database) NewSeeder(opts ...seed.Option) (*seed.Seeder, error) {
	service, err := db.NewCatalogService()
	if err != nil {
		return nil, err
	}
	return seed.NewSeeder(service, db.repo, opts...)
}

// NewReembedder creates a reembedder over this database.
// progress: where to write progress output (typically os.Stderr)
func (db *Database) NewReembedder(config *reembed.Config, progress io.Writer) *reembed.Reembedder {
	return reembed.NewReembedder(db.repo, db.embedder, config, progress)
}
