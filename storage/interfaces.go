package storage

import (
	"context"

	"github.com/seekwell/wares/core"
)

// Repository provides common storage operations shared by all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// ScanNearest returns live products ordered by ascending Euclidean
	// distance from the given query vector. Soft-deleted products and
	// products without an embedding have no position in the ordering and are
	// never returned. skip and limit are applied after the full ordering,
	// never before; ties keep the store's row order. Distances are computed
	// fresh against the given vector on every call.
	ScanNearest(ctx context.Context, vector []float32, skip, limit int) ([]*core.Product, error)

	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// ProductRepository provides operations for managing catalog products.
//
// A single product row is the unit of atomicity: text fields, price and the
// embedding derived from them are always written together, so a reader can
// never observe updated text next to a stale embedding.
type ProductRepository interface {
	Repository

	// AddProducts adds one or more products to storage.
	// Sets InsertedAt/UpdatedAt timestamps and maintains the slug index.
	// Returns ErrDuplicateKey if a product with the same ID already exists.
	AddProducts(ctx context.Context, products ...*core.Product) ([]*core.Product, error)

	// UpdateProducts updates existing products, refreshing UpdatedAt and the
	// slug index. Returns ErrNotFound if any product doesn't exist.
	UpdateProducts(ctx context.Context, products ...*core.Product) ([]*core.Product, error)

	// SoftDeleteProducts marks products as deleted without removing them.
	// Soft-deleted products are excluded from ScanNearest but remain
	// readable by ID. Returns ErrNotFound if any product doesn't exist.
	SoftDeleteProducts(ctx context.Context, ids ...core.ID) error

	// DeleteProducts removes products permanently, including their indices.
	// Returns ErrNotFound if any product doesn't exist.
	DeleteProducts(ctx context.Context, ids ...core.ID) error

	// PurgeProducts removes every product permanently. Used by the seeder
	// before a full reseed.
	PurgeProducts(ctx context.Context) error

	// GetProduct retrieves a single product by ID.
	// Returns ErrNotFound if the product doesn't exist.
	GetProduct(ctx context.Context, id core.ID) (*core.Product, error)

	// GetProducts retrieves multiple products by their IDs.
	// Returns only the products that exist (no error for missing products).
	GetProducts(ctx context.Context, ids ...core.ID) ([]*core.Product, error)

	// GetProductBySlug retrieves a product through the slug index.
	// Returns ErrNotFound if no product has the slug.
	GetProductBySlug(ctx context.Context, slug string) (*core.Product, error)

	// ListProducts returns all products in store order, including
	// soft-deleted ones.
	ListProducts(ctx context.Context) ([]*core.Product, error)

	// CountProducts returns the number of stored products, including
	// soft-deleted ones.
	CountProducts(ctx context.Context) (int, error)
}
