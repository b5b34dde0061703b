package fulfillment

import "errors"

var ErrOrderNotFound = errors.New("order not found")
