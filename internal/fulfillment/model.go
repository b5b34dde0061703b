package fulfillment

import "time"

type OrderStatus string

const (
	OrderStatusPaid OrderStatus = "PAID"
)

// Order is a persisted record of a completed payment session.
type Order struct {
	ID            string      `json:"id"`
	SessionID     string      `json:"sessionId"`
	CustomerEmail string      `json:"customerEmail"`
	AmountCents   int64       `json:"amountCents"`
	Currency      string      `json:"currency"`
	Status        OrderStatus `json:"status"`
	CreatedAt     time.Time   `json:"createdAt"`
}
