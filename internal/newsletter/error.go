package newsletter

import "errors"

var (
	ErrInvalidEmail      = errors.New("please enter a valid email address")
	ErrAlreadySubscribed = errors.New("this email is already subscribed")
)
