package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/seekwell/wares/ai/mock"
	"github.com/seekwell/wares/core"
	"github.com/seekwell/wares/storage"
	"github.com/seekwell/wares/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*Service, *mock.MockEmbedder, storage.ProductRepository) {
	t.Helper()
	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})

	embedder := mock.NewMockEmbedder()
	service, err := NewService(repo, embedder)
	require.NoError(t, err)
	return service, embedder, repo
}

func TestNewService_Validation(t *testing.T) {
	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	defer backend.Close()
	defer repo.Close()

	_, err = NewService(nil, mock.NewMockEmbedder())
	assert.ErrorIs(t, err, ErrRepositoryRequired)

	_, err = NewService(repo, nil)
	assert.ErrorIs(t, err, ErrEmbedderRequired)
}

func validInput() *ProductInput {
	return &ProductInput{
		Name:        "Mens Casual Slim Fit",
		Category:    "men's clothing",
		Description: "The color could be slightly different between on the screen and in practice",
		Price:       "15.99",
		Image:       "https://example.com/shirt.jpg",
	}
}

func TestCreate_EmbedsBeforeWrite(t *testing.T) {
	svc, embedder, repo := newTestService(t)
	ctx := context.Background()

	var embeddedText string
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		embeddedText = text
		return []float32{0.1, 0.2, 0.3}, nil
	}

	product, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	assert.Equal(t, 1, embedder.CallCount())
	assert.Equal(t, "Mens Casual Slim Fit\nmen's clothing\nThe color could be slightly different between on the screen and in practice", embeddedText)
	assert.Equal(t, int64(1599), product.Price)
	assert.Equal(t, "mens-casual-slim-fit", product.Slug)
	assert.Equal(t, core.IDFromContent("mens-casual-slim-fit"), product.Id)

	stored, err := repo.GetProduct(ctx, product.Id)
	require.NoError(t, err)
	assert.Equal(t, []float32{0.1, 0.2, 0.3}, stored.Embedding)
}

func TestCreate_ProviderFailureAbortsWrite(t *testing.T) {
	svc, embedder, repo := newTestService(t)
	ctx := context.Background()

	providerErr := errors.New("provider unavailable")
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return nil, providerErr
	}

	_, err := svc.Create(ctx, validInput())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmbeddingFailed)
	assert.ErrorIs(t, err, providerErr)

	// Nothing was written
	count, err := repo.CountProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestCreate_InvalidInput(t *testing.T) {
	svc, embedder, _ := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*ProductInput)
		wantErr error
	}{
		{"empty name", func(in *ProductInput) { in.Name = "" }, core.ErrEmptyName},
		{"empty category", func(in *ProductInput) { in.Category = "" }, core.ErrEmptyCategory},
		{"empty description", func(in *ProductInput) { in.Description = "" }, core.ErrEmptyDescription},
		{"empty image", func(in *ProductInput) { in.Image = "" }, core.ErrEmptyImage},
		{"bad price", func(in *ProductInput) { in.Price = "abc" }, core.ErrInvalidPrice},
		{"negative price", func(in *ProductInput) { in.Price = "-3.50" }, core.ErrNegativePrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(in)
			_, err := svc.Create(ctx, in)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	// Validation failures never reach the provider
	assert.Equal(t, 0, embedder.CallCount())
}

func TestUpdate_TextFieldReembeds(t *testing.T) {
	svc, embedder, repo := newTestService(t)
	ctx := context.Background()

	product, err := svc.Create(ctx, validInput())
	require.NoError(t, err)
	require.Equal(t, 1, embedder.CallCount())

	var embeddedText string
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		embeddedText = text
		return []float32{9, 9, 9}, nil
	}

	_, err = svc.Update(ctx, product.Id, NewChangeSet().SetDescription("Now with reinforced stitching"))
	require.NoError(t, err)

	// Exactly one more provider call, fed the updated text
	assert.Equal(t, 2, embedder.CallCount())
	assert.Equal(t, "Mens Casual Slim Fit\nmen's clothing\nNow with reinforced stitching", embeddedText)

	stored, err := repo.GetProduct(ctx, product.Id)
	require.NoError(t, err)
	assert.Equal(t, []float32{9, 9, 9}, stored.Embedding)
	assert.Equal(t, "Now with reinforced stitching", stored.Description)
}

func TestUpdate_PriceOnlySkipsProvider(t *testing.T) {
	svc, embedder, repo := newTestService(t)
	ctx := context.Background()

	product, err := svc.Create(ctx, validInput())
	require.NoError(t, err)
	original, err := repo.GetProduct(ctx, product.Id)
	require.NoError(t, err)
	require.Equal(t, 1, embedder.CallCount())

	_, err = svc.Update(ctx, product.Id, NewChangeSet().SetPrice("12.49"))
	require.NoError(t, err)

	// No provider call, embedding byte-for-byte untouched
	assert.Equal(t, 1, embedder.CallCount())
	stored, err := repo.GetProduct(ctx, product.Id)
	require.NoError(t, err)
	assert.Equal(t, original.Embedding, stored.Embedding)
	assert.Equal(t, int64(1249), stored.Price)
}

func TestUpdate_ImageOnlySkipsProvider(t *testing.T) {
	svc, embedder, repo := newTestService(t)
	ctx := context.Background()

	product, err := svc.Create(ctx, validInput())
	require.NoError(t, err)
	require.Equal(t, 1, embedder.CallCount())

	_, err = svc.Update(ctx, product.Id, NewChangeSet().SetImage("https://example.com/new.jpg"))
	require.NoError(t, err)

	assert.Equal(t, 1, embedder.CallCount())
	stored, err := repo.GetProduct(ctx, product.Id)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/new.jpg", stored.Image)
}

func TestUpdate_SameValueStillReembeds(t *testing.T) {
	svc, embedder, _ := newTestService(t)
	ctx := context.Background()

	input := validInput()
	product, err := svc.Create(ctx, input)
	require.NoError(t, err)
	require.Equal(t, 1, embedder.CallCount())

	// Setting a text field counts as touching it, old value or not
	_, err = svc.Update(ctx, product.Id, NewChangeSet().SetName(input.Name))
	require.NoError(t, err)
	assert.Equal(t, 2, embedder.CallCount())
}

func TestUpdate_ProviderFailureKeepsOldRow(t *testing.T) {
	svc, embedder, repo := newTestService(t)
	ctx := context.Background()

	product, err := svc.Create(ctx, validInput())
	require.NoError(t, err)
	before, err := repo.GetProduct(ctx, product.Id)
	require.NoError(t, err)

	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return nil, errors.New("provider down")
	}

	_, err = svc.Update(ctx, product.Id, NewChangeSet().SetDescription("never lands"))
	assert.ErrorIs(t, err, ErrEmbeddingFailed)

	after, err := repo.GetProduct(ctx, product.Id)
	require.NoError(t, err)
	assert.Equal(t, before.Description, after.Description)
	assert.Equal(t, before.Embedding, after.Embedding)
	assert.Equal(t, before.UpdatedAt, after.UpdatedAt)
}

func TestUpdate_EmptyChangeSet(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Update(context.Background(), core.ID(1), NewChangeSet())
	assert.ErrorIs(t, err, ErrEmptyChangeSet)

	_, err = svc.Update(context.Background(), core.ID(1), nil)
	assert.ErrorIs(t, err, ErrEmptyChangeSet)
}

func TestUpdate_NotFound(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Update(context.Background(), core.ID(404), NewChangeSet().SetPrice("1.00"))
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestSoftDeleteAndDelete(t *testing.T) {
	svc, _, repo := newTestService(t)
	ctx := context.Background()

	product, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	require.NoError(t, svc.SoftDelete(ctx, product.Id))
	stored, err := repo.GetProduct(ctx, product.Id)
	require.NoError(t, err)
	assert.True(t, stored.Deleted())

	require.NoError(t, svc.Delete(ctx, product.Id))
	_, err = repo.GetProduct(ctx, product.Id)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestChangeSet(t *testing.T) {
	cs := NewChangeSet()
	assert.True(t, cs.Empty())
	assert.False(t, cs.TouchesText())

	cs.SetPrice("9.99").SetImage("https://example.com/i.jpg")
	assert.False(t, cs.Empty())
	assert.False(t, cs.TouchesText())
	assert.True(t, cs.Has(FieldPrice))
	assert.False(t, cs.Has(FieldName))

	cs.SetCategory("electronics")
	assert.True(t, cs.TouchesText())
}
