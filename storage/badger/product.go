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


package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/seekwell/wares/core"
	"github.com/seekwell/wares/storage"
)

// ProductRepository implements storage.ProductRepository for BadgerDB.
type ProductRepository struct {
	backend *Backend
}

var _ storage.ProductRepository = (*ProductRepository)(nil)

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(backend *Backend) (*ProductRepository, error) {
	return &ProductRepository{backend: backend}, nil
}

// Close is a no-op; the backend owns the database handle.
func (r *ProductRepository) Close() error {
	return nil
}

// ScanNearest delegates to the backend.
func (r *ProductRepository) ScanNearest(ctx context.Context, vector []float32, skip, limit int) ([]*core.Product, error) {
	return r.backend.ScanNearest(ctx, vector, skip, limit)
}

// WithTransaction delegates to the backend.
func (r *ProductRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddProducts adds one or more products to storage.
func (r *ProductRepository) AddProducts(ctx context.Context, products ...*core.Product) ([]*core.Product, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, product := range products {
			key := makeProductKey(product.Id)

			// Reject duplicate IDs; content-addressed IDs make a duplicate a
			// duplicate slug too
			existing, err := r.readProduct(tx, key)
			if err != nil {
				return err
			}
			if existing != nil {
				return storage.ErrDuplicateKey
			}

			product.InsertedAt = time.Now().UTC()
			product.UpdatedAt = product.InsertedAt

			if err := tx.Set(key, storage.MarshalProduct(product)); err != nil {
				return err
			}

			// Slug index points at the primary record
			slugKey := makeProductSlugKey(product.Slug)
			if err := tx.Set(slugKey, storage.MarshalID(product.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return products, err
}

// UpdateProducts updates existing products.
func (r *ProductRepository) UpdateProducts(ctx context.Context, products ...*core.Product) ([]*core.Product, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, product := range products {
			key := makeProductKey(product.Id)

			old, err := r.readProduct(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return storage.ErrNotFound
			}

			product.InsertedAt = old.InsertedAt
			product.UpdatedAt = time.Now().UTC()

			if err := tx.Set(key, storage.MarshalProduct(product)); err != nil {
				return err
			}

			// Move the slug index if the slug changed
			if old.Slug != product.Slug {
				if err := tx.Delete(makeProductSlugKey(old.Slug)); err != nil {
					return err
				}
				if err := tx.Set(makeProductSlugKey(product.Slug), storage.MarshalID(product.Id)); err != nil {
					return err
				}
			}
		}
		return tx.Commit()
	}, true)

	return products, err
}

// SoftDeleteProducts stamps DeletedAt on products without removing them.
// The slug index entry stays; a soft-deleted product is still addressable.
func (r *ProductRepository) SoftDeleteProducts(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		now := time.Now().UTC()
		for _, id := range ids {
			key := makeProductKey(id)

			product, err := r.readProduct(tx, key)
			if err != nil {
				return err
			}
			if product == nil {
				return storage.ErrNotFound
			}

			product.DeletedAt = now
			product.UpdatedAt = now

			if err := tx.Set(key, storage.MarshalProduct(product)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// DeleteProducts removes products permanently, including their slug index
// entries.
func (r *ProductRepository) DeleteProducts(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeProductKey(id)

			product, err := r.readProduct(tx, key)
			if err != nil {
				return err
			}
			if product == nil {
				return storage.ErrNotFound
			}

			if err := tx.Delete(makeProductSlugKey(product.Slug)); err != nil {
				return err
			}
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// PurgeProducts removes every product record and slug index entry.
func (r *ProductRepository) PurgeProducts(ctx context.Context) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, prefix := range []string{productRecordPrefix, productSlugPrefix} {
			// Collect first; deleting under an open iterator invalidates it
			var keys [][]byte
			opts := badger.DefaultIteratorOptions
			opts.Prefix = []byte(prefix + ":")
			opts.PrefetchValues = false
			iter := tx.NewIterator(opts)
			for iter.Rewind(); iter.Valid(); iter.Next() {
				keys = append(keys, iter.Item().KeyCopy(nil))
			}
			iter.Close()

			for _, key := range keys {
				if err := tx.Delete(key); err != nil {
					return err
				}
			}
		}
		return tx.Commit()
	}, true)
}

// GetProduct retrieves a single product by ID.
func (r *ProductRepository) GetProduct(ctx context.Context, id core.ID) (*core.Product, error) {
	var result *core.Product
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = r.readProduct(tx, makeProductKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetProducts retrieves multiple products by their IDs.
func (r *ProductRepository) GetProducts(ctx context.Context, ids ...core.ID) ([]*core.Product, error) {
	var result []*core.Product
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			product, err := r.readProduct(tx, makeProductKey(id))
			if err != nil {
				return err
			}
			if product != nil {
				result = append(result, product)
			}
		}
		return nil
	}, false)
	return result, err
}

// GetProductBySlug retrieves a product through the slug index.
func (r *ProductRepository) GetProductBySlug(ctx context.Context, slug string) (*core.Product, error) {
	var result *core.Product
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeProductSlugKey(slug))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}

		var id core.ID
		if err := item.Value(func(val []byte) error {
			var err error
			id, err = storage.UnmarshalID(val)
			return err
		}); err != nil {
			return err
		}

		result, err = r.readProduct(tx, makeProductKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// ListProducts returns all products in store order, soft-deleted included.
func (r *ProductRepository) ListProducts(ctx context.Context) ([]*core.Product, error) {
	var result []*core.Product
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(productRecordPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var product *core.Product
			err := iter.Item().Value(func(val []byte) error {
				var err error
				product, err = storage.UnmarshalProduct(val)
				return err
			})
			if err != nil {
				return err
			}
			result = append(result, product)
		}
		return nil
	}, false)
	return result, err
}

// CountProducts returns the number of stored products, soft-deleted included.
func (r *ProductRepository) CountProducts(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(productRecordPrefix + ":")
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

// readProduct reads a product from the transaction.
// Returns (nil, nil) when the key does not exist.
func (r *ProductRepository) readProduct(tx *badger.Txn, key []byte) (*core.Product, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var product *core.Product
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		product, unmarshalErr = storage.UnmarshalProduct(val)
		return unmarshalErr
	})
	return product, err
}
