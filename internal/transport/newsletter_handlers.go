package transport

import (
	"errors"
	"net/http"

	"majestic-art-be/internal/commission"
	"majestic-art-be/internal/metrics"
	"majestic-art-be/internal/newsletter"

	"github.com/gin-gonic/gin"
)

type subscribeRequest struct {
	Email string `json:"email" binding:"required"`
}

func (h *Handlers) SubscribeNewsletter(c *gin.Context) {
	var req subscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "please enter your email address"})
		return
	}

	sub, err := h.Newsletter.Subscribe(c.Request.Context(), req.Email)
	if err != nil {
		switch {
		case errors.Is(err, newsletter.ErrInvalidEmail):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, newsletter.ErrAlreadySubscribed):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong, please try again"})
		}
		return
	}

	metrics.NewsletterSignups.Inc()
	c.JSON(http.StatusCreated, gin.H{"subscriber": sub})
}

func (h *Handlers) ListCommissionTiers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tiers": h.Commission.ListTiers()})
}

func (h *Handlers) SubmitCommission(c *gin.Context) {
	var req commission.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	com, err := h.Commission.Submit(c.Request.Context(), req)
	if err != nil {
		var verr *commission.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": verr.Fields})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit commission request"})
		return
	}

	metrics.CommissionRequests.Inc()
	c.JSON(http.StatusCreated, gin.H{
		"success":       true,
		"commission_id": com.ID,
	})
}
