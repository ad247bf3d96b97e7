package request

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/mobbexco/woocommerce-marketplace/internal/domain/entities"
)

var (
	ErrEmptyCheckoutPayload   = errors.New("checkout payload cannot be empty")
	ErrInvalidCheckoutPayload = errors.New("checkout payload must be a json object")
)

// ParseCheckoutData reads the checkout payload about to be sent to the
// gateway. Keys this service does not know are preserved.
func ParseCheckoutData(raw []byte) (entities.CheckoutData, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return entities.CheckoutData{}, ErrEmptyCheckoutPayload
	}
	if trimmed[0] != '{' || !json.Valid(trimmed) {
		return entities.CheckoutData{}, ErrInvalidCheckoutPayload
	}

	var checkout entities.CheckoutData
	if err := json.Unmarshal(trimmed, &checkout); err != nil {
		return entities.CheckoutData{}, err
	}
	return checkout, nil
}
