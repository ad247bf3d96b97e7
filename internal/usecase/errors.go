package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrOrderNotFound            = errors.New("order not found")
	ErrInvalidOrderID           = errors.New("invalid order_id")
	ErrInvalidCheckoutReference = errors.New("invalid checkout reference")
	ErrInvalidOperationUID      = errors.New("invalid operation uid")
	ErrInvalidGatewayResponse   = errors.New("invalid gateway response")
)

// UnholdError wraps a failed release operation. It never reaches the HTTP
// layer: the failure is recorded as an order note instead.
type UnholdError struct {
	OperationUID string
	Err          error
}

func (e *UnholdError) Error() string {
	return fmt.Sprintf("release operation %s failed: %v", e.OperationUID, e.Err)
}

func (e *UnholdError) Unwrap() error { return e.Err }

var errGatewayNotConfigured = errors.New("payment gateway not configured")
