package seed

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/seekwell/wares/ai/mock"
	"github.com/seekwell/wares/catalog"
	"github.com/seekwell/wares/storage"
	"github.com/seekwell/wares/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var feedFixture = []map[string]any{
	{
		"title":       "Fjallraven Foldsack No 1 Backpack",
		"description": "Your perfect pack for everyday use",
		"price":       109.95,
		"image":       "https://example.com/backpack.jpg",
		"category":    "men's clothing",
	},
	{
		"title":       "Mens Casual Premium Slim Fit T-Shirts",
		"description": "Slim-fitting style, contrast raglan long sleeve",
		"price":       22.3,
		"image":       "https://example.com/shirt.jpg",
		"category":    "men's clothing",
	},
	{
		"title":       "John Hardy Women's Legends Naga Bracelet",
		"description": "From our Legends Collection",
		"price":       695,
		"image":       "https://example.com/bracelet.jpg",
		"category":    "jewelery",
	},
}

func newFeedServer(t *testing.T, payload any) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(payload))
	}))
	t.Cleanup(server.Close)
	return server
}

func newTestSeeder(t *testing.T, feedURL string) (*Seeder, storage.ProductRepository, *mock.MockEmbedder) {
	t.Helper()
	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})

	embedder := mock.NewMockEmbedder()
	service, err := catalog.NewService(repo, embedder)
	require.NoError(t, err)

	seeder, err := NewSeeder(service, repo, WithFeedURL(feedURL), WithPoolSize(2))
	require.NoError(t, err)
	t.Cleanup(seeder.Release)
	return seeder, repo, embedder
}

func TestSeeder_Run(t *testing.T) {
	server := newFeedServer(t, feedFixture)
	seeder, repo, _ := newTestSeeder(t, server.URL)
	ctx := context.Background()

	created, err := seeder.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, created)

	count, err := repo.CountProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	// Decimal feed prices land as integer cents
	backpack, err := repo.GetProductBySlug(ctx, "fjallraven-foldsack-no-1-backpack")
	require.NoError(t, err)
	assert.Equal(t, int64(10995), backpack.Price)
	assert.NotEmpty(t, backpack.Embedding)

	shirt, err := repo.GetProductBySlug(ctx, "mens-casual-premium-slim-fit-t-shirts")
	require.NoError(t, err)
	assert.Equal(t, int64(223), shirt.Price)

	bracelet, err := repo.GetProductBySlug(ctx, "john-hardy-women-s-legends-naga-bracelet")
	require.NoError(t, err)
	assert.Equal(t, int64(695), bracelet.Price)
}

func TestSeeder_RunPurgesExisting(t *testing.T) {
	server := newFeedServer(t, feedFixture[:1])
	seeder, repo, _ := newTestSeeder(t, server.URL)
	ctx := context.Background()

	// Pre-existing product that is not in the feed
	service, err := catalog.NewService(repo, mock.NewMockEmbedder())
	require.NoError(t, err)
	_, err = service.Create(ctx, &catalog.ProductInput{
		Name:        "Stale Product",
		Category:    "misc",
		Description: "left over from before",
		Price:       "1.00",
		Image:       "https://example.com/stale.jpg",
	})
	require.NoError(t, err)

	created, err := seeder.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	count, err := repo.CountProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, err = repo.GetProductBySlug(ctx, "stale-product")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestSeeder_FeedUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(server.Close)

	seeder, repo, _ := newTestSeeder(t, server.URL)
	ctx := context.Background()

	_, err := seeder.Run(ctx)
	assert.ErrorIs(t, err, ErrFeedUnavailable)

	// Nothing purged, nothing created
	count, err := repo.CountProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestSeeder_FeedMalformed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{not json"))
	}))
	t.Cleanup(server.Close)

	seeder, _, _ := newTestSeeder(t, server.URL)
	_, err := seeder.Run(context.Background())
	assert.ErrorIs(t, err, ErrFeedMalformed)
}

func TestSeeder_CreateFailureReported(t *testing.T) {
	// Second tuple is invalid; the first still lands
	payload := []map[string]any{
		feedFixture[0],
		{
			"title":       "Broken Tuple",
			"description": "",
			"price":       9.99,
			"image":       "https://example.com/broken.jpg",
			"category":    "misc",
		},
	}
	server := newFeedServer(t, payload)
	seeder, repo, _ := newTestSeeder(t, server.URL)
	ctx := context.Background()

	created, err := seeder.Run(ctx)
	require.Error(t, err)
	assert.Equal(t, 1, created)

	count, err := repo.CountProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNewSeeder_Validation(t *testing.T) {
	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	defer backend.Close()
	defer repo.Close()

	_, err = NewSeeder(nil, repo)
	assert.ErrorIs(t, err, ErrServiceRequired)

	service, err := catalog.NewService(repo, mock.NewMockEmbedder())
	require.NoError(t, err)
	_, err = NewSeeder(service, nil)
	assert.ErrorIs(t, err, ErrRepositoryRequired)
}
