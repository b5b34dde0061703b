package commission

import "time"

// Tier is one of the fixed commission offerings shown on the
// commissions page.
type Tier struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Price        string   `json:"price"`
	Description  string   `json:"description"`
	Features     []string `json:"features"`
	DeliveryTime string   `json:"deliveryTime"`
	Popular      bool     `json:"popular,omitempty"`
}

// Request is a commission intake submission. Size, timeline and budget
// are optional free-form fields.
type Request struct {
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	Tier          string `json:"tier"`
	PreferredSize string `json:"preferred_size"`
	Description   string `json:"description"`
	Timeline      string `json:"timeline"`
	Budget        string `json:"budget"`
}

// Commission is a persisted intake record.
type Commission struct {
	ID            string    `json:"id"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	Tier          string    `json:"tier"`
	PreferredSize string    `json:"preferredSize,omitempty"`
	Description   string    `json:"description"`
	Timeline      string    `json:"timeline,omitempty"`
	Budget        string    `json:"budget,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

const StatusPending = "PENDING"
