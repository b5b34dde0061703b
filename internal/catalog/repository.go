package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"majestic-art-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context) ([]*Artwork, error)
	GetByID(ctx context.Context, id string) (*Artwork, error)
	Create(ctx context.Context, input NewArtworkInput) (*Artwork, error)
	Update(ctx context.Context, id string, input UpdateArtworkInput) (*Artwork, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const artworkColumns = `id, title, category, image, price, description, dimensions, year, available, display_location, product_variants, created_at, updated_at`

func (r *repository) scanArtwork(row interface {
	Scan(dest ...interface{}) error
}) (*Artwork, error) {
	var (
		a        Artwork
		location sql.NullString
		rawVars  []byte
	)

	err := row.Scan(
		&a.ID, &a.Title, &a.Category, &a.Image, &a.Price,
		&a.Description, &a.Dimensions, &a.Year, &a.Available,
		&location, &rawVars, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	a.DisplayLocation = location.String

	a.ProductVariants, err = unmarshalVariants(rawVars)
	if err != nil {
		return nil, err
	}

	return &a, nil
}

func (r *repository) List(ctx context.Context) ([]*Artwork, error) {
	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT %s
		FROM artworks
		ORDER BY created_at DESC
	`, artworkColumns))
	if err != nil {
		logger.FromCtx(ctx).Error("failed to query artworks", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrFailedListArtworks, err)
	}
	defer rows.Close()

	artworks := make([]*Artwork, 0)
	for rows.Next() {
		a, err := r.scanArtwork(rows)
		if err != nil {
			return nil, err
		}
		artworks = append(artworks, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedListArtworks, err)
	}
	return artworks, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Artwork, error) {
	row := r.db.QueryRowContext(ctx, fmt.Sprintf(`
		SELECT %s
		FROM artworks
		WHERE id = $1
	`, artworkColumns), id)

	a, err := r.scanArtwork(row)
	if err == sql.ErrNoRows {
		return nil, ErrArtworkNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *repository) Create(ctx context.Context, input NewArtworkInput) (*Artwork, error) {
	rawVars, err := marshalVariants(input.ProductVariants)
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRowContext(ctx, fmt.Sprintf(`
		INSERT INTO artworks
			(id, title, category, image, price, description, dimensions, year, available, display_location, product_variants)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING %s
	`, artworkColumns),
		uuid.New().String(), input.Title, input.Category, input.Image, input.Price,
		input.Description, input.Dimensions, input.Year, input.Available,
		input.DisplayLocation, rawVars,
	)

	a, err := r.scanArtwork(row)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to insert artwork", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrFailedSaveArtwork, err)
	}
	return a, nil
}

func (r *repository) Update(ctx context.Context, id string, input UpdateArtworkInput) (*Artwork, error) {
	sets := []string{}
	args := []interface{}{}
	arg := 1

	add := func(col string, val interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, arg))
		args = append(args, val)
		arg++
	}

	if input.Title != nil {
		add("title", *input.Title)
	}
	if input.Category != nil {
		add("category", *input.Category)
	}
	if input.Image != nil {
		add("image", *input.Image)
	}
	if input.Price != nil {
		add("price", *input.Price)
	}
	if input.Description != nil {
		add("description", *input.Description)
	}
	if input.Dimensions != nil {
		add("dimensions", *input.Dimensions)
	}
	if input.Year != nil {
		add("year", *input.Year)
	}
	if input.Available != nil {
		add("available", *input.Available)
	}
	if input.DisplayLocation != nil {
		add("display_location", *input.DisplayLocation)
	}
	if input.ProductVariants != nil {
		rawVars, err := marshalVariants(*input.ProductVariants)
		if err != nil {
			return nil, err
		}
		add("product_variants", rawVars)
	}

	if len(sets) == 0 {
		return nil, ErrNoUpdateFields
	}

	sets = append(sets, "updated_at = NOW()")

	query := fmt.Sprintf(`
		UPDATE artworks
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(sets, ", "), arg, artworkColumns)
	args = append(args, id)

	row := r.db.QueryRowContext(ctx, query, args...)
	a, err := r.scanArtwork(row)
	if err == sql.ErrNoRows {
		return nil, ErrArtworkNotFound
	}
	if err != nil {
		logger.FromCtx(ctx).Error("failed to update artwork", zap.Error(err), zap.String("artwork_id", id))
		return nil, fmt.Errorf("%w: %v", ErrFailedSaveArtwork, err)
	}
	return a, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM artworks WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrArtworkNotFound
	}

	return nil
}
