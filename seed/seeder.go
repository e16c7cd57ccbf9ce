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


// Package seed populates the catalog from a remote product feed.
//
// Seeding is destructive: the existing catalog is purged and every feed tuple
// is recreated through the catalog service, so each seeded product passes the
// same validation and embedding path as a product created by hand.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/seekwell/wares/catalog"
	"github.com/seekwell/wares/storage"
)

// DefaultFeedURL is the product feed used when none is configured.
const DefaultFeedURL = "https://fakestoreapi.com/products"

// Tuple is one product entry in the feed.
// Price arrives as a JSON number ("109.95" or 109.95) and is passed to the
// catalog as its decimal string form.
type Tuple struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Price       json.Number `json:"price"`
	Image       string      `json:"image"`
	Category    string      `json:"category"`
}

// Seeder replaces the catalog's contents with the feed's.
type Seeder struct {
	service  *catalog.Service
	repo     storage.ProductRepository
	feedURL  string
	client   *http.Client
	pool     *ants.Pool
	poolSize int
	logger   *slog.Logger
}

// Option configures a Seeder.
type Option func(*Seeder) error

// WithFeedURL overrides the feed URL.
func WithFeedURL(feedURL string) Option {
	return func(s *Seeder) error {
		if feedURL != "" {
			s.feedURL = feedURL
		}
		return nil
	}
}

// WithHTTPClient overrides the HTTP client used to fetch the feed.
// Default has a 30 second timeout.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Seeder) error {
		s.client = client
		return nil
	}
}

// WithPoolSize sets the worker pool size for concurrent creates.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(s *Seeder) error {
		if size < 1 {
			size = 1
		}
		s.poolSize = size
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Seeder) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSeeder creates a new seeder.
func NewSeeder(service *catalog.Service, repo storage.ProductRepository, opts ...Option) (*Seeder, error) {
	if service == nil {
		return nil, ErrServiceRequired
	}
	if repo == nil {
		return nil, ErrRepositoryRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	s := &Seeder{
		service:  service,
		repo:     repo,
		feedURL:  DefaultFeedURL,
		client:   &http.Client{Timeout: 30 * time.Second},
		poolSize: poolSize,
		logger:   slog.Default().With("component", "seed"),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	pool, err := ants.NewPool(s.poolSize)
	if err != nil {
		return nil, err
	}
	s.pool = pool

	return s, nil
}

// Release releases the worker pool.
// The seeder should not be used after calling Release.
func (s *Seeder) Release() {
	if s.pool != nil {
		s.pool.Release()
	}
}

// Run fetches the feed, purges the catalog and creates every tuple through
// the catalog service. Creates run concurrently; the first error is returned
// after all workers finish, with the catalog left holding whatever succeeded.
func (s *Seeder) Run(ctx context.Context) (int, error) {
	tuples, err := s.fetch(ctx)
	if err != nil {
		return 0, err
	}
	s.logger.Info("feed fetched", "url", s.feedURL, "tuples", len(tuples))

	if err := s.repo.PurgeProducts(ctx); err != nil {
		return 0, err
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
		created  int
	)

	for _, tuple := range tuples {
		tuple := tuple
		wg.Add(1)
		err := s.pool.Submit(func() {
			defer wg.Done()
			input := &catalog.ProductInput{
				Name:        tuple.Title,
				Category:    tuple.Category,
				Description: tuple.Description,
				Price:       tuple.Price.String(),
				Image:       tuple.Image,
			}
			if _, err := s.service.Create(ctx, input); err != nil {
				s.logger.Error("seed create failed", "title", tuple.Title, "err", err)
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
			mu.Lock()
			created++
			mu.Unlock()
		})
		if err != nil {
			wg.Done()
			mu.Lock()
			if firstErr == nil {
				firstErr = err
			}
			mu.Unlock()
		}
	}

	wg.Wait()
	s.logger.Info("seeding finished", "created", created, "failed", len(tuples)-created)
	return created, firstErr
}

// fetch downloads and decodes the product feed.
func (s *Seeder) fetch(ctx context.Context) ([]Tuple, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFeedUnavailable, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFeedUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrFeedUnavailable, resp.StatusCode)
	}

	var tuples []Tuple
	if err := json.NewDecoder(resp.Body).Decode(&tuples); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFeedMalformed, err)
	}
	return tuples, nil
}
