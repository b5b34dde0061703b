package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var artworkCols = []string{
	"id", "title", "category", "image", "price", "description",
	"dimensions", "year", "available", "display_location",
	"product_variants", "created_at", "updated_at",
}

func TestRepository_List(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("Success with variant normalization", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		rows := sqlmock.NewRows(artworkCols).
			AddRow(
				"a1", "Ethereal Dawn", "paintings", "/dawn.png", 850.0,
				"First light of day", `24" x 36"`, 2024, true, "shop",
				[]byte(`[{"productTypeId":"canvas","size":"12\" x 16\"","image":"/v.png","price":110}]`),
				now, now,
			).
			AddRow(
				"a2", "Golden Whispers", "paintings", "/gold.png", 1200.0,
				"Gold and violet", `30" x 40"`, 2024, true, nil,
				nil,
				now, now,
			)

		mock.ExpectQuery(`(?s)SELECT .* FROM artworks.*ORDER BY created_at DESC`).
			WillReturnRows(rows)

		res, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, res, 2)

		assert.Equal(t, "Ethereal Dawn", res[0].Title)
		require.Len(t, res[0].ProductVariants, 1)
		assert.Equal(t, "canvas", res[0].ProductVariants[0].ProductTypeID)
		assert.Equal(t, 110.0, res[0].ProductVariants[0].Price)

		// NULL jsonb and NULL display_location normalize cleanly
		assert.NotNil(t, res[1].ProductVariants)
		assert.Empty(t, res[1].ProductVariants)
		assert.Equal(t, "", res[1].DisplayLocation)
	})

	t.Run("Query error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`(?s)SELECT .*`).WillReturnError(errors.New("db error"))
		_, err = repo.List(ctx)
		assert.ErrorIs(t, err, ErrFailedListArtworks)
	})

	t.Run("Malformed variants jsonb", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		rows := sqlmock.NewRows(artworkCols).
			AddRow(
				"a1", "Broken", "digital", "/x.png", 10.0,
				"", "", 2024, true, "shop",
				[]byte(`{not json`), now, now,
			)
		mock.ExpectQuery(`(?s)SELECT .*`).WillReturnRows(rows)

		_, err = repo.List(ctx)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "product_variants")
	})
}

func TestRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("Found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		rows := sqlmock.NewRows(artworkCols).
			AddRow("a1", "Ethereal Dawn", "paintings", "/dawn.png", 850.0,
				"", `24" x 36"`, 2024, true, "all", []byte(`[]`), now, now)

		mock.ExpectQuery(`(?s)SELECT .* FROM artworks.*WHERE id = \$1`).
			WithArgs("a1").
			WillReturnRows(rows)

		a, err := repo.GetByID(ctx, "a1")
		require.NoError(t, err)
		assert.Equal(t, "Ethereal Dawn", a.Title)
	})

	t.Run("Not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`(?s)SELECT .*`).
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(artworkCols))

		_, err = repo.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, ErrArtworkNotFound)
	})
}

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(db)

	input := NewArtworkInput{
		Title:           "New Piece",
		Category:        "digital",
		Image:           "/new.png",
		Price:           450,
		Year:            2026,
		Available:       true,
		DisplayLocation: "shop",
	}

	rows := sqlmock.NewRows(artworkCols).
		AddRow("generated-id", "New Piece", "digital", "/new.png", 450.0,
			"", "", 2026, true, "shop", []byte(`[]`), now, now)

	mock.ExpectQuery(`(?s)INSERT INTO artworks.*RETURNING`).
		WillReturnRows(rows)

	a, err := repo.Create(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "New Piece", a.Title)
	assert.NotNil(t, a.ProductVariants)
}

func TestRepository_Create_InsertError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(db)

	mock.ExpectQuery(`(?s)INSERT INTO artworks.*RETURNING`).
		WillReturnError(errors.New("db down"))

	_, err = repo.Create(context.Background(), NewArtworkInput{Title: "X"})
	assert.ErrorIs(t, err, ErrFailedSaveArtwork)
}

func TestRepository_Update(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("Partial update", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		newPrice := 999.0
		rows := sqlmock.NewRows(artworkCols).
			AddRow("a1", "Ethereal Dawn", "paintings", "/dawn.png", 999.0,
				"", "", 2024, true, "shop", []byte(`[]`), now, now)

		mock.ExpectQuery(`(?s)UPDATE artworks.*SET.*price = \$1.*updated_at = NOW\(\).*WHERE id = \$2.*RETURNING`).
			WithArgs(999.0, "a1").
			WillReturnRows(rows)

		a, err := repo.Update(ctx, "a1", UpdateArtworkInput{Price: &newPrice})
		require.NoError(t, err)
		assert.Equal(t, 999.0, a.Price)
	})

	t.Run("No fields", func(t *testing.T) {
		db, _, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		_, err = repo.Update(ctx, "a1", UpdateArtworkInput{})
		assert.ErrorIs(t, err, ErrNoUpdateFields)
	})

	t.Run("Not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		title := "Renamed"
		mock.ExpectQuery(`(?s)UPDATE artworks.*`).
			WillReturnRows(sqlmock.NewRows(artworkCols))

		_, err = repo.Update(ctx, "missing", UpdateArtworkInput{Title: &title})
		assert.ErrorIs(t, err, ErrArtworkNotFound)
	})
}

func TestRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectExec(`DELETE FROM artworks WHERE id = \$1`).
			WithArgs("a1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, "a1"))
	})

	t.Run("Not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectExec(`DELETE FROM artworks WHERE id = \$1`).
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, "missing"), ErrArtworkNotFound)
	})
}
