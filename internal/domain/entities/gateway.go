package entities

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// GatewayResponse is the checkout result delivered by the gateway webhook.
//
// Split is kept raw so it can be persisted verbatim.
type GatewayResponse struct {
	ID          string          `json:"id,omitempty"`
	Description string          `json:"description,omitempty"`
	Total       decimal.Decimal `json:"total"`
	Split       json.RawMessage `json:"split,omitempty"`
}

// ConfirmedSplit is the subset of a confirmed split entry this service reads.
type ConfirmedSplit struct {
	TaxID     string          `json:"tax_id,omitempty"`
	Entity    string          `json:"entity,omitempty"`
	Reference string          `json:"reference,omitempty"`
	Total     decimal.Decimal `json:"total"`
	Hold      bool            `json:"hold"`
	UID       string          `json:"uid,omitempty"`
}

// ReleaseResult is the outcome of a release (unhold) operation.
type ReleaseResult struct {
	OperationUID string `json:"operation_uid"`
	Released     bool   `json:"released"`
	Message      string `json:"message,omitempty"`
}
