package transport

import (
	"errors"
	"net/http"

	"majestic-art-be/internal/cart"
	"majestic-art-be/internal/catalog"

	"github.com/gin-gonic/gin"
)

type addCartItemRequest struct {
	ArtworkID   string `json:"artworkId" binding:"required"`
	ProductType string `json:"productType" binding:"required"`
	Size        string `json:"size" binding:"required"`
}

type updateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

func (h *Handlers) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, cartResponse(h.cartForRequest(c)))
}

// AddCartItem resolves the selection server-side so the add-time price
// always comes from the variant table, never from the client.
func (h *Handlers) AddCartItem(c *gin.Context) {
	var req addCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "artworkId, productType and size are required"})
		return
	}

	sel, err := h.Catalog.ResolveSelection(c.Request.Context(), req.ArtworkID, req.ProductType, req.Size)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrArtworkNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "artwork not found"})
		case errors.Is(err, catalog.ErrUnknownProductType), errors.Is(err, catalog.ErrUnknownSize):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve selection"})
		}
		return
	}

	crt := h.cartForRequest(c)
	item := crt.AddSelection(cart.Selection{
		ArtworkID:   sel.ArtworkID,
		Title:       sel.Title,
		Image:       sel.Image,
		ProductType: sel.ProductType,
		Size:        sel.Size,
		PriceCents:  sel.PriceCents,
	})

	resp := cartResponse(crt)
	resp["item"] = item
	c.JSON(http.StatusOK, resp)
}

func (h *Handlers) UpdateCartItem(c *gin.Context) {
	var req updateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity is required"})
		return
	}

	crt := h.cartForRequest(c)
	crt.SetQuantity(c.Param("id"), *req.Quantity)
	c.JSON(http.StatusOK, cartResponse(crt))
}

func (h *Handlers) RemoveCartItem(c *gin.Context) {
	crt := h.cartForRequest(c)
	crt.RemoveItem(c.Param("id"))
	c.JSON(http.StatusOK, cartResponse(crt))
}

func (h *Handlers) ClearCart(c *gin.Context) {
	crt := h.cartForRequest(c)
	crt.Clear()
	c.JSON(http.StatusOK, cartResponse(crt))
}
