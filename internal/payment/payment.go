package payment

import "context"

type Gateway interface {
	CreateCheckoutSession(ctx context.Context, payload CheckoutPayload) (*SessionResponse, error)
	VerifyWebhook(body []byte, sigHeader string) (*Event, error)
}
