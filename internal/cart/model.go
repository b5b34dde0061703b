package cart

// LineItem is one row in the cart. Two line items are the same selection
// iff (ArtworkID, ProductType, Size) are all equal; the cart never holds
// two entries with an equal identity key.
type LineItem struct {
	ID          string `json:"id"`
	ArtworkID   string `json:"artworkId"`
	Title       string `json:"title"`
	Image       string `json:"image"`
	ProductType string `json:"productType"`
	Size        string `json:"size"`
	PriceCents  int64  `json:"priceCents"`
	Quantity    int    `json:"quantity"`
}

// Selection carries the display fields and add-time price for a choice
// being added to the cart. Price is captured here and never re-read from
// the catalog for an existing line item.
type Selection struct {
	ArtworkID   string
	Title       string
	Image       string
	ProductType string
	Size        string
	PriceCents  int64
}

func (s Selection) sameIdentity(item LineItem) bool {
	return s.ArtworkID == item.ArtworkID &&
		s.ProductType == item.ProductType &&
		s.Size == item.Size
}
