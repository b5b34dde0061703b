package webhook

import (
	"context"
	"io"
	"net/http"

	"majestic-art-be/internal/logger"
	"majestic-art-be/internal/metrics"
	"majestic-art-be/internal/payment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Fulfiller records a paid checkout session.
type Fulfiller interface {
	Fulfill(ctx context.Context, event payment.Event) error
}

// Handler receives provider webhook callbacks and hands paid sessions
// to fulfillment.
type Handler struct {
	Gateway   payment.Gateway
	Fulfiller Fulfiller
}

func NewWebhookHandler(gateway payment.Gateway, fulfiller Fulfiller) *Handler {
	return &Handler{
		Gateway:   gateway,
		Fulfiller: fulfiller,
	}
}

// StripeWebhookHandler is the actual route handler.
func (h *Handler) StripeWebhookHandler(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read body"})
		return
	}

	event, err := h.Gateway.VerifyWebhook(body, c.GetHeader("Stripe-Signature"))
	if err != nil {
		metrics.WebhooksRejected.Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid signature"})
		return
	}

	log := logger.FromCtx(c.Request.Context()).With(
		zap.String("event_type", event.Type),
		zap.String("session_id", event.SessionID),
	)

	if !event.Completed() {
		// Acknowledge everything else so the provider stops retrying.
		log.Debug("Ignoring webhook event")
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	if err := h.Fulfiller.Fulfill(c.Request.Context(), *event); err != nil {
		log.Error("Failed to fulfill checkout session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fulfill order"})
		return
	}

	metrics.OrdersFulfilled.Inc()
	log.Info("Checkout session fulfilled")
	c.JSON(http.StatusOK, gin.H{"received": true})
}
