package checkout

// BuyerInfo holds the contact and shipping fields collected before a
// payment session is created.
type BuyerInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusSubmitted  Status = "SUBMITTED"
	StatusRedirected Status = "REDIRECTED"
	StatusFailed     Status = "FAILED"
)

// Result is the outcome of a submit attempt. URL is where the buyer must
// be sent to complete payment.
type Result struct {
	Status    Status `json:"status"`
	SessionID string `json:"sessionId,omitempty"`
	URL       string `json:"url,omitempty"`
}
