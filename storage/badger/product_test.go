package badger

import (
	"context"
	"testing"

	"github.com/seekwell/wares/core"
	"github.com/seekwell/wares/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProduct(name, category, description string, price int64, embedding []float32) *core.Product {
	slug := core.Slugify(name)
	return &core.Product{
		Id:          core.IDFromContent(slug),
		Name:        name,
		Slug:        slug,
		Category:    category,
		Description: description,
		Price:       price,
		Image:       "https://example.com/" + slug + ".jpg",
		Embedding:   embedding,
	}
}

func TestProductRepository_AddAndGet(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	defer backend.Close()
	defer repo.Close()

	ctx := context.Background()
	product := newTestProduct("Mens Cotton Jacket", "men's clothing", "Great outerwear", 5599, []float32{0.1, 0.2})

	added, err := repo.AddProducts(ctx, product)
	require.NoError(t, err)
	require.Len(t, added, 1)
	assert.False(t, added[0].InsertedAt.IsZero())
	assert.Equal(t, added[0].InsertedAt, added[0].UpdatedAt)

	got, err := repo.GetProduct(ctx, product.Id)
	require.NoError(t, err)
	assert.Equal(t, product.Name, got.Name)
	assert.Equal(t, product.Price, got.Price)
	assert.Equal(t, product.Embedding, got.Embedding)
	assert.True(t, got.DeletedAt.IsZero())
}

func TestProductRepository_AddDuplicate(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	defer backend.Close()
	defer repo.Close()

	ctx := context.Background()
	product := newTestProduct("Gold Ring", "jewelery", "Shiny", 16895, nil)

	_, err = repo.AddProducts(ctx, product)
	require.NoError(t, err)

	dup := newTestProduct("Gold Ring", "jewelery", "Shiny", 16895, nil)
	_, err = repo.AddProducts(ctx, dup)
	assert.ErrorIs(t, err, storage.ErrDuplicateKey)
}

func TestProductRepository_GetNotFound(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	defer backend.Close()
	defer repo.Close()

	_, err = repo.GetProduct(context.Background(), core.ID(404))
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestProductRepository_GetBySlug(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	defer backend.Close()
	defer repo.Close()

	ctx := context.Background()
	product := newTestProduct("Bags & Wallets", "accessories", "Carry things", 1299, nil)
	require.Equal(t, "bags-and-wallets", product.Slug)

	_, err = repo.AddProducts(ctx, product)
	require.NoError(t, err)

	got, err := repo.GetProductBySlug(ctx, "bags-and-wallets")
	require.NoError(t, err)
	assert.Equal(t, product.Id, got.Id)

	_, err = repo.GetProductBySlug(ctx, "no-such-slug")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestProductRepository_Update(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	defer backend.Close()
	defer repo.Close()

	ctx := context.Background()
	product := newTestProduct("WD 2TB Elite", "electronics", "Portable drive", 6400, []float32{1, 0})

	_, err = repo.AddProducts(ctx, product)
	require.NoError(t, err)
	inserted := product.InsertedAt

	product.Description = "USB 3.0 portable drive"
	product.Price = 5900
	product.Embedding = []float32{0, 1}

	updated, err := repo.UpdateProducts(ctx, product)
	require.NoError(t, err)
	require.Len(t, updated, 1)

	got, err := repo.GetProduct(ctx, product.Id)
	require.NoError(t, err)
	assert.Equal(t, "USB 3.0 portable drive", got.Description)
	assert.Equal(t, int64(5900), got.Price)
	assert.Equal(t, []float32{0, 1}, got.Embedding)
	assert.Equal(t, inserted, got.InsertedAt)
	assert.True(t, got.UpdatedAt.After(inserted) || got.UpdatedAt.Equal(inserted))
}

func TestProductRepository_UpdateMovesSlugIndex(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	defer backend.Close()
	defer repo.Close()

	ctx := context.Background()
	product := newTestProduct("Acer Monitor", "electronics", "Full HD", 59900, nil)
	_, err = repo.AddProducts(ctx, product)
	require.NoError(t, err)

	product.Name = "Acer SB220Q Monitor"
	product.Slug = core.Slugify(product.Name)
	_, err = repo.UpdateProducts(ctx, product)
	require.NoError(t, err)

	got, err := repo.GetProductBySlug(ctx, "acer-sb220q-monitor")
	require.NoError(t, err)
	assert.Equal(t, product.Id, got.Id)

	_, err = repo.GetProductBySlug(ctx, "acer-monitor")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestProductRepository_UpdateNotFound(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	defer backend.Close()
	defer repo.Close()

	product := newTestProduct("Ghost", "none", "Missing", 1, nil)
	_, err = repo.UpdateProducts(context.Background(), product)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestProductRepository_SoftDelete(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	defer backend.Close()
	defer repo.Close()

	ctx := context.Background()
	product := newTestProduct("Fjallraven Backpack", "men's clothing", "Fits 15 inch laptops", 10995, []float32{0.5, 0.5})
	_, err = repo.AddProducts(ctx, product)
	require.NoError(t, err)

	require.NoError(t, repo.SoftDeleteProducts(ctx, product.Id))

	// Still readable by ID and slug
	got, err := repo.GetProduct(ctx, product.Id)
	require.NoError(t, err)
	assert.True(t, got.Deleted())

	bySlug, err := repo.GetProductBySlug(ctx, product.Slug)
	require.NoError(t, err)
	assert.True(t, bySlug.Deleted())

	// But invisible to the distance scan
	results, err := repo.ScanNearest(ctx, []float32{0.5, 0.5}, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestProductRepository_Delete(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	defer backend.Close()
	defer repo.Close()

	ctx := context.Background()
	product := newTestProduct("Samsung SSD", "electronics", "Fast storage", 10900, nil)
	_, err = repo.AddProducts(ctx, product)
	require.NoError(t, err)

	require.NoError(t, repo.DeleteProducts(ctx, product.Id))

	_, err = repo.GetProduct(ctx, product.Id)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = repo.GetProductBySlug(ctx, product.Slug)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	err = repo.DeleteProducts(ctx, product.Id)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestProductRepository_Purge(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	defer backend.Close()
	defer repo.Close()

	ctx := context.Background()
	for _, name := range []string{"Item One", "Item Two", "Item Three"} {
		_, err := repo.AddProducts(ctx, newTestProduct(name, "misc", "desc", 100, []float32{1}))
		require.NoError(t, err)
	}

	count, err := repo.CountProducts(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, count)

	require.NoError(t, repo.PurgeProducts(ctx))

	count, err = repo.CountProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	_, err = repo.GetProductBySlug(ctx, "item-one")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestProductRepository_ListIncludesSoftDeleted(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	defer backend.Close()
	defer repo.Close()

	ctx := context.Background()
	live := newTestProduct("Live Item", "misc", "here", 100, nil)
	gone := newTestProduct("Gone Item", "misc", "going", 200, nil)

	_, err = repo.AddProducts(ctx, live, gone)
	require.NoError(t, err)
	require.NoError(t, repo.SoftDeleteProducts(ctx, gone.Id))

	all, err := repo.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	count, err := repo.CountProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
