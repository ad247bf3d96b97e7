package request

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/mobbexco/woocommerce-marketplace/internal/domain/entities"
)

var ErrInvalidWebhookPayload = errors.New("webhook payload must be a json object")

// ParseGatewayResponse reads a webhook body. Both the gateway envelope
// {"type": ..., "data": {...}} and a bare checkout response are accepted.
func ParseGatewayResponse(raw []byte) (entities.GatewayResponse, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' || !json.Valid(trimmed) {
		return entities.GatewayResponse{}, ErrInvalidWebhookPayload
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return entities.GatewayResponse{}, err
	}
	if data, ok := envelope["data"]; ok {
		data = bytes.TrimSpace(data)
		if len(data) > 0 && data[0] == '{' {
			trimmed = data
		}
	}

	var resp entities.GatewayResponse
	if err := json.Unmarshal(trimmed, &resp); err != nil {
		return entities.GatewayResponse{}, err
	}
	return resp, nil
}
