package badger

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"
	"slices"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
	"github.com/seekwell/wares/core"
	"github.com/seekwell/wares/storage"
)

// Backend wraps a BadgerDB instance and provides low-level operations.
type Backend struct {
	db     *badger.DB
	logger *slog.Logger
}

// badgerLoggerAdapter adapts slog.Logger to badger.Logger interface.
type badgerLoggerAdapter struct {
	logger *slog.Logger
}

var _ badger.Logger = (*badgerLoggerAdapter)(nil)

func (bl *badgerLoggerAdapter) Errorf(msg string, items ...any) {
	bl.logger.Error(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Warningf(msg string, items ...any) {
	bl.logger.Warn(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Infof(msg string, items ...any) {
	bl.logger.Info(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Debugf(msg string, items ...any) {
	bl.logger.Debug(fmt.Sprintf(msg, items...))
}

// OpenBackend opens a BadgerDB database at the specified path.
// Creates the directory if it doesn't exist.
func OpenBackend(filePath string, inMemory bool) (*Backend, error) {
	var opts badger.Options

	if inMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		// Ensure directory exists
		info, err := os.Stat(filePath)
		if err != nil {
			if os.IsNotExist(err) {
				if err := os.MkdirAll(filePath, 0755); err != nil {
					return nil, err
				}
				info, err = os.Stat(filePath)
				if err != nil {
					return nil, err
				}
			} else {
				return nil, err
			}
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%s is not a directory", filePath)
		}
		opts = badger.DefaultOptions(filePath)
	}

	opts.Logger = &badgerLoggerAdapter{logger: slog.Default()}
	opts.Compression = options.None

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Backend{
		db:     db,
		logger: slog.Default(),
	}, nil
}

// Close closes the BadgerDB database.
func (b *Backend) Close() error {
	return b.db.Close()
}

// IsClosed returns true if the database is closed.
func (b *Backend) IsClosed() bool {
	return b.db.IsClosed()
}

// WithTx executes a function within a BadgerDB transaction.
// If isWrite is true, creates a read-write transaction.
// The transaction is automatically discarded if fn returns an error.
func (b *Backend) WithTx(fn func(tx *badger.Txn) error, isWrite bool) error {
	tx := b.db.NewTransaction(isWrite)
	defer tx.Discard()
	return fn(tx)
}

// WithTransaction executes a function within a transaction.
// Implements the storage.Repository transaction contract.
func (b *Backend) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return b.WithTx(func(tx *badger.Txn) error {
		if err := fn(ctx); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// ScanNearest returns live products ordered by ascending Euclidean distance
// from the query vector. BadgerDB has no native vector ordering, so the scan
// loads every eligible row, computes the distance and sorts; skip and limit
// are applied only after the full ordering so pagination windows line up with
// the complete ranking.
func (b *Backend) ScanNearest(ctx context.Context, vector []float32, skip, limit int) ([]*core.Product, error) {
	if skip < 0 || limit < 0 {
		return nil, storage.ErrInvalidQuery
	}

	var ranked []*core.SearchResult

	err := b.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(productRecordPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			item := iter.Item()

			var product *core.Product
			err := item.Value(func(val []byte) error {
				var err error
				product, err = storage.UnmarshalProduct(val)
				return err
			})
			if err != nil {
				return err
			}
			if product == nil {
				continue
			}

			// No position in the ordering for deleted rows or rows whose
			// embedding hasn't been computed yet
			if product.Deleted() || len(product.Embedding) == 0 {
				continue
			}

			ranked = append(ranked, &core.SearchResult{
				Product:  product,
				Distance: euclideanDistance(vector, product.Embedding),
			})
		}

		return nil
	}, false)

	if err != nil {
		return nil, err
	}

	// Ascending distance; the stable sort keeps store iteration order on ties
	slices.SortStableFunc(ranked, func(a, b *core.SearchResult) int {
		if a.Distance < b.Distance {
			return -1
		}
		if a.Distance > b.Distance {
			return 1
		}
		return 0
	})

	if skip >= len(ranked) {
		return []*core.Product{}, nil
	}
	ranked = ranked[skip:]
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	products := make([]*core.Product, len(ranked))
	for i, result := range ranked {
		products[i] = result.Product
	}
	return products, nil
}

// euclideanDistance calculates the L2 distance between two vectors.
// Vectors of unequal length are compared over the shared prefix.
func euclideanDistance(a, b []float32) float32 {
	minLen := len(a)
	if len(b) < minLen {
		minLen = len(b)
	}
	var sum float32
	for i := 0; i < minLen; i++ {
		d := a[i] - b[i]
		sum += d * d
	}
	return float32(math.Sqrt(float64(sum)))
}
