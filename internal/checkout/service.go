package checkout

import (
	"context"
	"fmt"
	"strings"

	"majestic-art-be/internal/cart"
	"majestic-art-be/internal/logger"
	"majestic-art-be/internal/metrics"
	"majestic-art-be/internal/payment"
	"majestic-art-be/internal/utils"

	"go.uber.org/zap"
)

// Fallback for providers that only hand back a session id.
const hostedCheckoutURLFormat = "https://checkout.stripe.com/c/pay/%s"

type Service interface {
	Submit(ctx context.Context, c *cart.Cart, buyer BuyerInfo) (*Result, error)
}

type service struct {
	gateway payment.Gateway
}

func NewService(gateway payment.Gateway) Service {
	return &service{gateway: gateway}
}

// ValidateBuyer checks the three required buyer fields. A nil result means
// the info is good to send.
func ValidateBuyer(buyer BuyerInfo) *ValidationError {
	fields := map[string]string{}

	if strings.TrimSpace(buyer.Name) == "" {
		fields["name"] = "name is required"
	}
	if !utils.IsValidEmail(buyer.Email) {
		fields["email"] = "a valid email is required"
	}
	if strings.TrimSpace(buyer.Address) == "" {
		fields["address"] = "shipping address is required"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Submit validates the buyer, translates the cart snapshot into the
// provider payload and creates a payment session. The gateway is called at
// most once per submit, there is no retry, and the cart is left untouched
// either way: clearing only happens after the buyer lands back on the
// success page.
func (s *service) Submit(ctx context.Context, c *cart.Cart, buyer BuyerInfo) (*Result, error) {
	items, totalItems, totalCents := c.Snapshot()
	if len(items) == 0 {
		return nil, ErrCartEmpty
	}

	if verr := ValidateBuyer(buyer); verr != nil {
		return nil, verr
	}

	log := logger.FromCtx(ctx).With(
		zap.String("email", buyer.Email),
		zap.Int("total_items", totalItems),
		zap.Float64("total_usd", utils.CentsToDollars(totalCents)),
	)

	payload := payment.CheckoutPayload{
		CustomerEmail:   buyer.Email,
		CustomerName:    buyer.Name,
		ShippingAddress: buyer.Address,
		Items:           make([]payment.Item, 0, len(items)),
	}
	for _, item := range items {
		payload.Items = append(payload.Items, payment.Item{
			ArtworkID:    item.ArtworkID,
			ArtworkTitle: item.Title,
			ProductType:  item.ProductType,
			Size:         item.Size,
			PriceCents:   item.PriceCents,
			Quantity:     item.Quantity,
			ImageURL:     item.Image,
		})
	}

	log.Info("Submitting checkout")

	timer := metrics.StartTimer()
	resp, err := s.gateway.CreateCheckoutSession(ctx, payload)
	if err != nil {
		log.Error("Payment session creation failed",
			zap.Error(err),
			zap.Duration("gateway_duration", timer.Duration()),
		)
		return &Result{Status: StatusFailed}, fmt.Errorf("%w: %v", ErrGatewayFailure, err)
	}

	url := resp.URL
	if url == "" && resp.SessionID != "" {
		url = fmt.Sprintf(hostedCheckoutURLFormat, resp.SessionID)
	}
	if url == "" {
		log.Error("Payment session response had no usable URL")
		return &Result{Status: StatusFailed}, ErrGatewayFailure
	}

	log.Info("Checkout redirect ready",
		zap.String("session_id", resp.SessionID),
		zap.Duration("gateway_duration", timer.Duration()),
	)

	return &Result{
		Status:    StatusRedirected,
		SessionID: resp.SessionID,
		URL:       url,
	}, nil
}
