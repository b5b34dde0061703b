package checkout

import "errors"

var (
	ErrCartEmpty      = errors.New("cart is empty")
	ErrGatewayFailure = errors.New("failed to create payment session")
)

// ValidationError carries per-field messages for buyer info that failed
// validation. No payment call is made while one of these is pending.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "invalid buyer information"
}
