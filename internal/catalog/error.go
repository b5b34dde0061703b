package catalog

import "errors"

var (
	// -- Resource State --
	ErrArtworkNotFound = errors.New("artwork not found")

	// -- Validation & Input --
	ErrUnknownProductType = errors.New("unknown product type")
	ErrUnknownSize        = errors.New("unknown size for product type")
	ErrNoUpdateFields     = errors.New("no fields to update")

	// -- Database & Operation Failures --
	ErrFailedListArtworks = errors.New("failed to list artworks")
	ErrFailedSaveArtwork  = errors.New("failed to save artwork")
)
