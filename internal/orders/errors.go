package orders

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSize          = errors.New("selected size is not offered for this product")
	ErrInvalidPaymentMethod = errors.New("payment method must be cash or online")
	ErrNotCancellable       = errors.New("completed orders cannot be cancelled")
)

// ValidationError carries field-level validation messages so handlers can
// surface them inline instead of as a single opaque error.
type ValidationError struct {
	Fields map[string]string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid fields: %d", len(e.Fields))
}
