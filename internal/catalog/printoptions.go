package catalog

// printOptions is the static product-type price table. It is fixed
// configuration, not fetched remotely; prices are per-size list prices in
// USD and serve as the fallback when an artwork has no variant override.
var printOptions = []PrintOption{
	{
		ID:        "canvas",
		Name:      "Canvas",
		BasePrice: 45,
		Sizes: []SizeOption{
			{Size: `8" x 8"`, Price: 45},
			{Size: `8" x 10"`, Price: 55},
			{Size: `8" x 12"`, Price: 65},
			{Size: `8" x 14"`, Price: 75},
			{Size: `10" x 10"`, Price: 65},
			{Size: `10" x 12"`, Price: 75},
			{Size: `10" x 14"`, Price: 85},
			{Size: `12" x 12"`, Price: 85},
			{Size: `12" x 16"`, Price: 95},
			{Size: `12" x 18"`, Price: 105},
			{Size: `12" x 20"`, Price: 115},
			{Size: `14" x 18"`, Price: 115},
			{Size: `16" x 16"`, Price: 125},
			{Size: `16" x 20"`, Price: 135},
			{Size: `16" x 24"`, Price: 155},
			{Size: `16" x 30"`, Price: 195},
			{Size: `18" x 24"`, Price: 165},
			{Size: `20" x 24"`, Price: 185},
			{Size: `20" x 30"`, Price: 215},
			{Size: `24" x 24"`, Price: 225},
			{Size: `24" x 30"`, Price: 245},
			{Size: `24" x 36"`, Price: 275},
			{Size: `24" x 40"`, Price: 295},
		},
	},
	{
		ID:        "canvas-wall-hanging",
		Name:      "Canvas Wall Hanging",
		BasePrice: 50,
		Sizes: []SizeOption{
			{Size: `8" x 8"`, Price: 50},
			{Size: `8" x 10"`, Price: 60},
			{Size: `8" x 12"`, Price: 70},
			{Size: `8" x 14"`, Price: 80},
			{Size: `10" x 10"`, Price: 70},
			{Size: `10" x 12"`, Price: 80},
			{Size: `10" x 14"`, Price: 90},
			{Size: `12" x 12"`, Price: 90},
			{Size: `12" x 16"`, Price: 100},
			{Size: `12" x 18"`, Price: 110},
			{Size: `12" x 20"`, Price: 120},
			{Size: `14" x 18"`, Price: 120},
			{Size: `16" x 16"`, Price: 130},
			{Size: `16" x 20"`, Price: 140},
			{Size: `16" x 24"`, Price: 160},
			{Size: `16" x 30"`, Price: 200},
			{Size: `18" x 24"`, Price: 170},
			{Size: `20" x 24"`, Price: 190},
			{Size: `20" x 30"`, Price: 220},
			{Size: `24" x 24"`, Price: 230},
			{Size: `24" x 30"`, Price: 250},
			{Size: `24" x 36"`, Price: 280},
			{Size: `24" x 40"`, Price: 300},
		},
	},
	{
		ID:        "framed-photo-black-matte",
		Name:      "Framed Photo - Black Matte",
		BasePrice: 95,
		Sizes: []SizeOption{
			{Size: `8" x 8"`, Price: 95},
			{Size: `8" x 12"`, Price: 105},
			{Size: `12" x 16"`, Price: 125},
			{Size: `16" x 16"`, Price: 135},
			{Size: `16" x 20"`, Price: 155},
			{Size: `20" x 30"`, Price: 195},
		},
	},
	{
		ID:        "framed-photo-oak-vintage-flair",
		Name:      "Framed Photo - Oak Vintage Flair",
		BasePrice: 100,
		Sizes: []SizeOption{
			{Size: `8" x 8"`, Price: 100},
			{Size: `8" x 12"`, Price: 110},
			{Size: `12" x 16"`, Price: 130},
			{Size: `16" x 16"`, Price: 140},
			{Size: `16" x 20"`, Price: 160},
			{Size: `20" x 30"`, Price: 200},
		},
	},
	{
		ID:        "framed-photo-vintage-silver",
		Name:      "Framed Photo - Vintage Silver",
		BasePrice: 105,
		Sizes: []SizeOption{
			{Size: `8" x 8"`, Price: 105},
			{Size: `8" x 12"`, Price: 115},
			{Size: `12" x 16"`, Price: 135},
			{Size: `16" x 16"`, Price: 145},
			{Size: `16" x 20"`, Price: 165},
			{Size: `20" x 30"`, Price: 205},
		},
	},
	{
		ID:        "framed-photo-walnut-flair",
		Name:      "Framed Photo - Walnut Flair",
		BasePrice: 100,
		Sizes: []SizeOption{
			{Size: `8" x 8"`, Price: 100},
			{Size: `8" x 12"`, Price: 110},
			{Size: `12" x 16"`, Price: 130},
			{Size: `16" x 16"`, Price: 140},
			{Size: `16" x 20"`, Price: 160},
			{Size: `20" x 30"`, Price: 200},
		},
	},
	{
		ID:        "framed-photo-white",
		Name:      "Framed Photo - White",
		BasePrice: 95,
		Sizes: []SizeOption{
			{Size: `8" x 8"`, Price: 95},
			{Size: `8" x 12"`, Price: 105},
			{Size: `12" x 16"`, Price: 125},
			{Size: `16" x 16"`, Price: 135},
			{Size: `16" x 20"`, Price: 155},
			{Size: `20" x 30"`, Price: 195},
		},
	},
	{
		ID:        "poster",
		Name:      "Poster",
		BasePrice: 25,
		Sizes: []SizeOption{
			{Size: `12" x 18"`, Price: 25},
			{Size: `18" x 24"`, Price: 35},
			{Size: `24" x 36"`, Price: 50},
		},
	},
	{
		ID:        "photo-mug",
		Name:      "Photo Mug",
		BasePrice: 20,
		Sizes: []SizeOption{
			{Size: "Left Landscape", Price: 20},
			{Size: "Left", Price: 20},
			{Size: "Right Landscape", Price: 20},
			{Size: "Right", Price: 20},
		},
	},
	{
		ID:        "magic-mug",
		Name:      "Magic Mug",
		BasePrice: 25,
		Sizes: []SizeOption{
			{Size: "Left Landscape", Price: 25},
			{Size: "Left", Price: 25},
			{Size: "Right Landscape", Price: 25},
			{Size: "Right", Price: 25},
		},
	},
	{
		ID:        "photo-ornament",
		Name:      "Photo Ornament",
		BasePrice: 15,
		Sizes: []SizeOption{
			{Size: "Standard", Price: 15},
		},
	},
	{
		ID:        "picture-frame-ornament",
		Name:      "Picture Frame Ornament",
		BasePrice: 18,
		Sizes: []SizeOption{
			{Size: `2" x 3"`, Price: 18},
		},
	},
	{
		ID:        "pillow",
		Name:      "Pillow",
		BasePrice: 35,
		Sizes: []SizeOption{
			{Size: `12" x 12"`, Price: 35},
			{Size: `16" x 16"`, Price: 45},
			{Size: `18" x 18"`, Price: 55},
		},
	},
	{
		ID:        "premium-plush-pillow",
		Name:      "Premium Plush Pillow",
		BasePrice: 55,
		Sizes: []SizeOption{
			{Size: `12" x 12"`, Price: 55},
			{Size: `16" x 16"`, Price: 65},
			{Size: `18" x 18"`, Price: 75},
		},
	},
	{
		ID:        "fleece-blanket",
		Name:      "Fleece Blanket",
		BasePrice: 45,
		Sizes: []SizeOption{
			{Size: `27" x 40"`, Price: 45},
			{Size: `40" x 60"`, Price: 55},
			{Size: `60" x 80"`, Price: 65},
		},
	},
	{
		ID:        "premium-plush-blanket",
		Name:      "Premium Plush Blanket",
		BasePrice: 75,
		Sizes: []SizeOption{
			{Size: `50" x 60"`, Price: 75},
			{Size: `60" x 80"`, Price: 95},
		},
	},
	{
		ID:        "puzzle",
		Name:      "Puzzle",
		BasePrice: 25,
		Sizes: []SizeOption{
			{Size: "500 pieces", Price: 25},
			{Size: "1000 pieces", Price: 35},
		},
	},
	{
		ID:        "rug-doormat",
		Name:      "Rug/Doormat",
		BasePrice: 40,
		Sizes: []SizeOption{
			{Size: `18" x 30"`, Price: 40},
			{Size: `24" x 36"`, Price: 55},
		},
	},
	{
		ID:        "towel",
		Name:      "Towel",
		BasePrice: 30,
		Sizes: []SizeOption{
			{Size: "Bath Towel", Price: 30},
			{Size: "Beach Towel", Price: 40},
		},
	},
	{
		ID:        "keyring-heart",
		Name:      "Keyring Heart",
		BasePrice: 12,
		Sizes: []SizeOption{
			{Size: "Standard", Price: 12},
		},
	},
	{
		ID:        "metal",
		Name:      "Metal Print",
		BasePrice: 45,
		Sizes: []SizeOption{
			{Size: `8" x 8"`, Price: 45},
			{Size: `8" x 10"`, Price: 50},
			{Size: `8" x 12"`, Price: 55},
			{Size: `11" x 14"`, Price: 70},
			{Size: `12" x 16"`, Price: 75},
			{Size: `12" x 18"`, Price: 85},
		},
	},
	{
		ID:        "photo-holder",
		Name:      "Photo Holder",
		BasePrice: 20,
		Sizes: []SizeOption{
			{Size: `5" x 7"`, Price: 20},
			{Size: `6" x 6"`, Price: 22},
			{Size: `8" x 10"`, Price: 25},
		},
	},
	{
		ID:        "photo-wooden-snowflake",
		Name:      "Photo Wooden Snowflake",
		BasePrice: 22,
		Sizes: []SizeOption{
			{Size: "Standard", Price: 22},
		},
	},
	{
		ID:        "photoboard",
		Name:      "Photoboard",
		BasePrice: 30,
		Sizes: []SizeOption{
			{Size: `8" x 8"`, Price: 30},
			{Size: `8" x 12"`, Price: 35},
			{Size: `12" x 16"`, Price: 45},
		},
	},
}

// PrintOptions returns the full product-type table.
func PrintOptions() []PrintOption {
	return printOptions
}

// PrintOptionByID looks up a product type by its id.
func PrintOptionByID(id string) (PrintOption, bool) {
	for _, opt := range printOptions {
		if opt.ID == id {
			return opt, true
		}
	}
	return PrintOption{}, false
}

// SizePrice returns the list price for a size label within the product type.
func (p PrintOption) SizePrice(size string) (float64, bool) {
	for _, s := range p.Sizes {
		if s.Size == size {
			return s.Price, true
		}
	}
	return 0, false
}
