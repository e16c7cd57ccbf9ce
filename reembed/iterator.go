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


package reembed

import (
	"context"

	"github.com/seekwell/wares/core"
	"github.com/seekwell/wares/storage"
)

const (
	// DefaultBatchSize is the default number of products to process per batch
	DefaultBatchSize = 100
)

// ProductIterator iterates over all live products in batches.
type ProductIterator struct {
	repo      storage.ProductRepository
	batchSize int
}

// NewProductIterator creates a new product iterator.
// batchSize: number of products per batch (must be > 0)
func NewProductIterator(repo storage.ProductRepository, batchSize int) *ProductIterator {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	return &ProductIterator{
		repo:      repo,
		batchSize: batchSize,
	}
}

// ForEach iterates over all live products, calling fn for each batch.
// Iteration stops on the first error from fn. Context cancellation is
// checked between batches.
func (it *ProductIterator) ForEach(ctx context.Context, fn func([]*core.Product) error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	all, err := it.repo.ListProducts(ctx)
	if err != nil {
		return err
	}

	// Soft-deleted rows keep their stale embedding; they are never ranked
	live := make([]*core.Product, 0, len(all))
	for _, product := range all {
		if !product.Deleted() {
			live = append(live, product)
		}
	}

	if len(live) == 0 {
		return nil
	}

	for i := 0; i < len(live); i += it.batchSize {
		end := i + it.batchSize
		if end > len(live) {
			end = len(live)
		}

		if err := fn(live[i:end]); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}

	return nil
}
