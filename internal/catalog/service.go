package catalog

import (
	"context"

	"majestic-art-be/internal/utils"
)

// Placement values an artwork can be assigned to. An empty
// display_location is treated as visible everywhere.
const (
	PlacementHomepage = "homepage"
	PlacementGallery  = "gallery"
	PlacementShop     = "shop"
	PlacementAll      = "all"
	PlacementNone     = "none"
)

// Service defines catalog reads used by the storefront and the admin CRUD.
type Service interface {
	ListArtworks(ctx context.Context) ([]*Artwork, error)
	ListForPlacement(ctx context.Context, placement string, onlyAvailable bool) ([]*Artwork, error)
	GetArtwork(ctx context.Context, id string) (*Artwork, error)
	ResolveSelection(ctx context.Context, artworkID, productTypeID, size string) (*Selection, error)

	CreateArtwork(ctx context.Context, input NewArtworkInput) (*Artwork, error)
	UpdateArtwork(ctx context.Context, id string, input UpdateArtworkInput) (*Artwork, error)
	DeleteArtwork(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListArtworks(ctx context.Context) ([]*Artwork, error) {
	return s.repo.List(ctx)
}

// ListForPlacement filters the catalog for one display surface. An artwork
// shows on a surface when its display_location matches, is "all", or is
// unset; "none" hides it everywhere.
func (s *service) ListForPlacement(ctx context.Context, placement string, onlyAvailable bool) ([]*Artwork, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*Artwork, 0, len(all))
	for _, a := range all {
		if onlyAvailable && !a.Available {
			continue
		}
		if !visibleOn(a.DisplayLocation, placement) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func visibleOn(location, placement string) bool {
	// "all" and empty placements mean "any surface": everything shows
	// except artworks explicitly hidden with "none".
	if placement == "" || placement == PlacementAll {
		return location != PlacementNone
	}
	switch location {
	case "", PlacementAll:
		return true
	case PlacementNone:
		return false
	default:
		return location == placement
	}
}

func (s *service) GetArtwork(ctx context.Context, id string) (*Artwork, error) {
	return s.repo.GetByID(ctx, id)
}

// ResolveSelection maps a (artwork, product type, size) choice to the image
// and price the cart captures. A matching product variant supersedes the
// artwork's base image and the product type's list price.
func (s *service) ResolveSelection(ctx context.Context, artworkID, productTypeID, size string) (*Selection, error) {
	artwork, err := s.repo.GetByID(ctx, artworkID)
	if err != nil {
		return nil, err
	}

	opt, ok := PrintOptionByID(productTypeID)
	if !ok {
		return nil, ErrUnknownProductType
	}

	image := artwork.Image
	price, sizeKnown := 0.0, false

	for _, v := range artwork.ProductVariants {
		if v.ProductTypeID == productTypeID && v.Size == size {
			if v.Image != "" {
				image = v.Image
			}
			price, sizeKnown = v.Price, true
			break
		}
	}

	if !sizeKnown {
		price, sizeKnown = opt.SizePrice(size)
		if !sizeKnown {
			return nil, ErrUnknownSize
		}
	}

	return &Selection{
		ArtworkID:   artwork.ID,
		Title:       artwork.Title,
		Image:       image,
		ProductType: opt.Name,
		Size:        size,
		PriceCents:  utils.ToCents(price),
	}, nil
}

func (s *service) CreateArtwork(ctx context.Context, input NewArtworkInput) (*Artwork, error) {
	return s.repo.Create(ctx, input)
}

func (s *service) UpdateArtwork(ctx context.Context, id string, input UpdateArtworkInput) (*Artwork, error) {
	return s.repo.Update(ctx, id, input)
}

func (s *service) DeleteArtwork(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
