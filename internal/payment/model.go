package payment

import "fmt"

// Item is one provider-facing line item, in the shape the checkout payload
// carries over the wire.
type Item struct {
	ArtworkID    string `json:"artwork_id"`
	ArtworkTitle string `json:"artwork_title"`
	ProductType  string `json:"product_type"`
	Size         string `json:"size"`
	PriceCents   int64  `json:"price"`
	Quantity     int    `json:"quantity"`
	ImageURL     string `json:"image_url"`
}

// DisplayName is the product name shown on the provider's checkout page.
func (i Item) DisplayName() string {
	return fmt.Sprintf("%s - %s (%s)", i.ArtworkTitle, i.ProductType, i.Size)
}

// CheckoutPayload is the normalized request for a payment session. It is
// only ever built from validated buyer fields.
type CheckoutPayload struct {
	CustomerEmail   string `json:"customer_email"`
	CustomerName    string `json:"customer_name"`
	ShippingAddress string `json:"shipping_address"`
	Items           []Item `json:"items"`
}

// SessionResponse is what a created payment session resolves to. URL is
// preferred; SessionID is kept as a fallback for providers that only
// return an id.
type SessionResponse struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

// Event is a provider webhook event, reduced to what fulfillment needs.
type Event struct {
	Type          string
	SessionID     string
	PaymentStatus string
	CustomerEmail string
	AmountTotal   int64
	Currency      string
}

const (
	EventCheckoutCompleted     = "checkout.session.completed"
	EventAsyncPaymentSucceeded = "checkout.session.async_payment_succeeded"
	PaymentStatusPaid          = "paid"
)

// Completed reports whether the event signals a finished checkout.
func (e Event) Completed() bool {
	return e.Type == EventCheckoutCompleted || e.Type == EventAsyncPaymentSucceeded
}
