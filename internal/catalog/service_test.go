package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context) ([]*Artwork, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Artwork), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*Artwork, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Artwork), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, input NewArtworkInput) (*Artwork, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Artwork), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id string, input UpdateArtworkInput) (*Artwork, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Artwork), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestListForPlacement(t *testing.T) {
	ctx := context.Background()

	artworks := []*Artwork{
		{ID: "1", Title: "Shop piece", Available: true, DisplayLocation: "shop"},
		{ID: "2", Title: "Everywhere piece", Available: true, DisplayLocation: "all"},
		{ID: "3", Title: "Legacy piece", Available: true, DisplayLocation: ""},
		{ID: "4", Title: "Hidden piece", Available: true, DisplayLocation: "none"},
		{ID: "5", Title: "Gallery piece", Available: true, DisplayLocation: "gallery"},
		{ID: "6", Title: "Sold piece", Available: false, DisplayLocation: "shop"},
	}

	t.Run("Shop placement", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("List", ctx).Return(artworks, nil)
		svc := NewService(repo)

		got, err := svc.ListForPlacement(ctx, PlacementShop, true)
		require.NoError(t, err)

		ids := make([]string, 0, len(got))
		for _, a := range got {
			ids = append(ids, a.ID)
		}
		// shop, all, and unset locations show; none, gallery, and sold don't
		assert.Equal(t, []string{"1", "2", "3"}, ids)
	})

	t.Run("Includes unavailable when not filtering", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("List", ctx).Return(artworks, nil)
		svc := NewService(repo)

		got, err := svc.ListForPlacement(ctx, PlacementShop, false)
		require.NoError(t, err)
		assert.Len(t, got, 4)
	})

	t.Run("All placement shows every surface", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("List", ctx).Return(artworks, nil)
		svc := NewService(repo)

		got, err := svc.ListForPlacement(ctx, PlacementAll, true)
		require.NoError(t, err)

		ids := make([]string, 0, len(got))
		for _, a := range got {
			ids = append(ids, a.ID)
		}
		// shop, gallery, all, and unset locations show; none and sold don't
		assert.Equal(t, []string{"1", "2", "3", "5"}, ids)
	})

	t.Run("Empty placement hides only none", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("List", ctx).Return(artworks, nil)
		svc := NewService(repo)

		got, err := svc.ListForPlacement(ctx, "", false)
		require.NoError(t, err)
		assert.Len(t, got, len(artworks)-1)
	})

	t.Run("Repository error", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("List", ctx).Return(nil, assert.AnError)
		svc := NewService(repo)

		_, err := svc.ListForPlacement(ctx, PlacementShop, true)
		assert.Error(t, err)
	})
}

func TestResolveSelection(t *testing.T) {
	ctx := context.Background()

	artwork := &Artwork{
		ID:    "a1",
		Title: "Ethereal Dawn",
		Image: "/base.png",
		Price: 850,
		ProductVariants: []ProductVariant{
			{ProductTypeID: "canvas", Size: `12" x 16"`, Image: "/variant.png", Price: 110},
		},
	}

	newSvc := func() Service {
		repo := new(MockRepository)
		repo.On("GetByID", ctx, "a1").Return(artwork, nil)
		return NewService(repo)
	}

	t.Run("Variant override supersedes price table", func(t *testing.T) {
		sel, err := newSvc().ResolveSelection(ctx, "a1", "canvas", `12" x 16"`)
		require.NoError(t, err)

		assert.Equal(t, "Ethereal Dawn", sel.Title)
		assert.Equal(t, "Canvas", sel.ProductType)
		assert.Equal(t, "/variant.png", sel.Image)
		assert.Equal(t, int64(11000), sel.PriceCents)
	})

	t.Run("Falls back to size table", func(t *testing.T) {
		sel, err := newSvc().ResolveSelection(ctx, "a1", "canvas", `8" x 8"`)
		require.NoError(t, err)

		assert.Equal(t, "/base.png", sel.Image)
		assert.Equal(t, int64(4500), sel.PriceCents)
	})

	t.Run("Poster size table", func(t *testing.T) {
		sel, err := newSvc().ResolveSelection(ctx, "a1", "poster", `18" x 24"`)
		require.NoError(t, err)

		assert.Equal(t, "Poster", sel.ProductType)
		assert.Equal(t, int64(3500), sel.PriceCents)
	})

	t.Run("Unknown product type", func(t *testing.T) {
		_, err := newSvc().ResolveSelection(ctx, "a1", "hologram", "Standard")
		assert.ErrorIs(t, err, ErrUnknownProductType)
	})

	t.Run("Unknown size", func(t *testing.T) {
		_, err := newSvc().ResolveSelection(ctx, "a1", "canvas", `99" x 99"`)
		assert.ErrorIs(t, err, ErrUnknownSize)
	})

	t.Run("Artwork not found", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetByID", ctx, "missing").Return(nil, ErrArtworkNotFound)
		svc := NewService(repo)

		_, err := svc.ResolveSelection(ctx, "missing", "canvas", `8" x 8"`)
		assert.ErrorIs(t, err, ErrArtworkNotFound)
	})
}

func TestPrintOptionLookups(t *testing.T) {
	t.Run("Known option", func(t *testing.T) {
		opt, ok := PrintOptionByID("photo-mug")
		require.True(t, ok)
		assert.Equal(t, "Photo Mug", opt.Name)

		price, ok := opt.SizePrice("Left Landscape")
		require.True(t, ok)
		assert.Equal(t, 20.0, price)
	})

	t.Run("Unknown option", func(t *testing.T) {
		_, ok := PrintOptionByID("does-not-exist")
		assert.False(t, ok)
	})

	t.Run("Table is non-empty and has canvas first", func(t *testing.T) {
		opts := PrintOptions()
		require.NotEmpty(t, opts)
		assert.Equal(t, "canvas", opts[0].ID)
	})
}
