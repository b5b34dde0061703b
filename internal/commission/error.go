package commission

// ValidationError carries per-field messages for an intake form that
// failed validation.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "invalid commission request"
}
