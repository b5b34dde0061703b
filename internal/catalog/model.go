package catalog

import "time"

// ProductVariant overrides the image and price an artwork uses for one
// product-type + size combination.
type ProductVariant struct {
	ProductTypeID string  `json:"productTypeId"`
	Size          string  `json:"size"`
	Image         string  `json:"image"`
	Price         float64 `json:"price"`
}

type Artwork struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	Category        string           `json:"category"`
	Image           string           `json:"image"`
	Price           float64          `json:"price"`
	Description     string           `json:"description"`
	Dimensions      string           `json:"dimensions"`
	Year            int              `json:"year"`
	Available       bool             `json:"available"`
	DisplayLocation string           `json:"display_location"`
	ProductVariants []ProductVariant `json:"productVariants"`
	CreatedAt       time.Time        `json:"-"`
	UpdatedAt       time.Time        `json:"-"`
}

type NewArtworkInput struct {
	Title           string           `json:"title"`
	Category        string           `json:"category"`
	Image           string           `json:"image"`
	Price           float64          `json:"price"`
	Description     string           `json:"description"`
	Dimensions      string           `json:"dimensions"`
	Year            int              `json:"year"`
	Available       bool             `json:"available"`
	DisplayLocation string           `json:"display_location"`
	ProductVariants []ProductVariant `json:"productVariants"`
}

type UpdateArtworkInput struct {
	Title           *string           `json:"title"`
	Category        *string           `json:"category"`
	Image           *string           `json:"image"`
	Price           *float64          `json:"price"`
	Description     *string           `json:"description"`
	Dimensions      *string           `json:"dimensions"`
	Year            *int              `json:"year"`
	Available       *bool             `json:"available"`
	DisplayLocation *string           `json:"display_location"`
	ProductVariants *[]ProductVariant `json:"productVariants"`
}

// SizeOption is one size row in a product type's price table.
type SizeOption struct {
	Size  string  `json:"size"`
	Price float64 `json:"price"`
}

// PrintOption is a physical product category with its size/price table.
type PrintOption struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	BasePrice float64      `json:"basePrice"`
	Sizes     []SizeOption `json:"sizes"`
}

// Selection is a resolved (artwork, product type, size) choice: the image
// and price the cart should capture at add time.
type Selection struct {
	ArtworkID   string
	Title       string
	Image       string
	ProductType string
	Size        string
	PriceCents  int64
}
