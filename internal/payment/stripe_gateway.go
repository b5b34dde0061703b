package payment

import (
	"context"
	"encoding/json"
	"fmt"

	"majestic-art-be/internal/logger"

	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/checkout/session"
	"github.com/stripe/stripe-go/v80/webhook"
	"go.uber.org/zap"
)

type stripeGateway struct {
	webhookSecret string
	siteURL       string
}

// ----------------- Constructor -----------------

func NewStripeGateway(secretKey, webhookSecret, siteURL string) Gateway {
	if secretKey == "" {
		logger.L().Warn("Stripe secret key is empty")
	}
	stripe.Key = secretKey

	return &stripeGateway{
		webhookSecret: webhookSecret,
		siteURL:       siteURL,
	}
}

// ----------------- CreateCheckoutSession -----------------

func (g *stripeGateway) CreateCheckoutSession(ctx context.Context, payload CheckoutPayload) (*SessionResponse, error) {
	log := logger.L().With(
		zap.String("customer", payload.CustomerName),
		zap.String("email", payload.CustomerEmail),
		zap.Int("items", len(payload.Items)),
	)

	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(payload.Items))
	for _, item := range payload.Items {
		li := &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String("usd"),
				UnitAmount: stripe.Int64(item.PriceCents),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.DisplayName()),
				},
			},
			Quantity: stripe.Int64(int64(item.Quantity)),
		}
		if item.ImageURL != "" {
			li.PriceData.ProductData.Images = []*string{stripe.String(item.ImageURL)}
		}
		lineItems = append(lineItems, li)
	}

	itemsJSON, err := json.Marshal(payload.Items)
	if err != nil {
		log.Error("Failed to marshal checkout items", zap.Error(err))
		return nil, err
	}

	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:     lineItems,
		CustomerEmail: stripe.String(payload.CustomerEmail),
		ShippingAddressCollection: &stripe.CheckoutSessionShippingAddressCollectionParams{
			AllowedCountries: stripe.StringSlice([]string{"US", "CA", "GB", "AU"}),
		},
		SuccessURL: stripe.String(fmt.Sprintf("%s/checkout/success?session_id={CHECKOUT_SESSION_ID}", g.siteURL)),
		CancelURL:  stripe.String(fmt.Sprintf("%s/cart", g.siteURL)),
	}
	params.Context = ctx
	params.AddMetadata("customer_name", payload.CustomerName)
	params.AddMetadata("shipping_address", payload.ShippingAddress)
	params.AddMetadata("items", string(itemsJSON))

	log.Info("Creating Stripe checkout session")

	sess, err := session.New(params)
	if err != nil {
		log.Error("Stripe session creation failed", zap.Error(err))
		return nil, fmt.Errorf("stripe error: %w", err)
	}

	log.Info("Stripe checkout session created",
		zap.String("session_id", sess.ID),
	)

	return &SessionResponse{
		SessionID: sess.ID,
		URL:       sess.URL,
	}, nil
}

// ----------------- VerifyWebhook -----------------

func (g *stripeGateway) VerifyWebhook(body []byte, sigHeader string) (*Event, error) {
	event, err := webhook.ConstructEvent(body, sigHeader, g.webhookSecret)
	if err != nil {
		logger.L().Warn("Webhook signature verification failed", zap.Error(err))
		return nil, fmt.Errorf("invalid webhook signature: %w", err)
	}

	var sess struct {
		ID              string `json:"id"`
		PaymentStatus   string `json:"payment_status"`
		CustomerEmail   string `json:"customer_email"`
		AmountTotal     int64  `json:"amount_total"`
		Currency        string `json:"currency"`
		CustomerDetails struct {
			Email string `json:"email"`
		} `json:"customer_details"`
	}
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		logger.L().Error("Failed decoding webhook event", zap.Error(err))
		return nil, err
	}

	email := sess.CustomerEmail
	if email == "" {
		email = sess.CustomerDetails.Email
	}

	return &Event{
		Type:          string(event.Type),
		SessionID:     sess.ID,
		PaymentStatus: sess.PaymentStatus,
		CustomerEmail: email,
		AmountTotal:   sess.AmountTotal,
		Currency:      sess.Currency,
	}, nil
}
