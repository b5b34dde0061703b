package transport

import (
	"net/http"
	"strconv"

	"majestic-art-be/internal/catalog"

	"github.com/gin-gonic/gin"
)

// ListArtworks returns artworks visible on the requested placement
// (homepage, gallery, shop). Without a placement every surface is
// included; sold pieces are filtered out unless available=false.
func (h *Handlers) ListArtworks(c *gin.Context) {
	placement := c.DefaultQuery("placement", catalog.PlacementAll)

	onlyAvailable := true
	if v, err := strconv.ParseBool(c.DefaultQuery("available", "true")); err == nil {
		onlyAvailable = v
	}

	artworks, err := h.Catalog.ListForPlacement(c.Request.Context(), placement, onlyAvailable)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load artworks"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"artworks": artworks})
}

// ListPrintOptions returns the static product-type price table.
func (h *Handlers) ListPrintOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"printOptions": catalog.PrintOptions()})
}
