package transport

import (
	"errors"
	"net/http"

	"majestic-art-be/internal/checkout"
	"majestic-art-be/internal/metrics"

	"github.com/gin-gonic/gin"
)

// CreateCheckoutSession validates buyer info and creates a payment
// session for the visitor's cart. The cart is left as-is: it only gets
// cleared once the buyer comes back through the success landing.
func (h *Handlers) CreateCheckoutSession(c *gin.Context) {
	var buyer checkout.BuyerInfo
	if err := c.ShouldBindJSON(&buyer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	metrics.CheckoutAttempts.Inc()

	crt := h.cartForRequest(c)
	res, err := h.Checkout.Submit(c.Request.Context(), crt, buyer)
	if err != nil {
		var verr *checkout.ValidationError
		switch {
		case errors.Is(err, checkout.ErrCartEmpty):
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
		case errors.As(err, &verr):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": verr.Fields})
		default:
			metrics.CheckoutFailures.Inc()
			c.JSON(http.StatusBadGateway, gin.H{"error": "failed to create checkout session"})
		}
		return
	}

	metrics.CheckoutRedirects.Inc()
	c.JSON(http.StatusOK, res)
}

// CheckoutSuccess is the landing endpoint the provider redirects to.
// Fulfillment notification is best effort; the authoritative path is the
// webhook. The visitor's cart is cleared here.
func (h *Handlers) CheckoutSuccess(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_id is required"})
		return
	}

	h.Fulfill.NotifyLanding(sessionID)
	h.cartForRequest(c).Clear()

	c.JSON(http.StatusOK, gin.H{"success": true, "sessionId": sessionID})
}
