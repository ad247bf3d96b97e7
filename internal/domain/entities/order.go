package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Order is the host platform order the split is computed for.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Items and shippings are written by the host platform; this service only
// touches SplitData, Notes, FinancialCostAdjusted and Total (financial cost).

type Order struct {
	ID        string          `json:"id"`
	Total     decimal.Decimal `json:"total"`
	Items     []LineItem      `json:"items"`
	Shippings []ShippingItem  `json:"shippings"`

	// SplitData keeps the last split array confirmed by the gateway, verbatim.
	SplitData             json.RawMessage `json:"split_data,omitempty"`
	FinancialCostAdjusted bool            `json:"financial_cost_adjusted"`
	Notes                 []OrderNote     `json:"notes,omitempty"`
}

// LineItem is a product line of an order. VendorID is resolved by the host
// marketplace plugin and is empty in stand-alone mode.
type LineItem struct {
	ProductID   string          `json:"product_id"`
	VariationID string          `json:"variation_id,omitempty"`
	Quantity    int             `json:"quantity"`
	Total       decimal.Decimal `json:"total"`
	VendorID    string          `json:"vendor_id,omitempty"`
}

// ShippingItem is a shipping line of an order.
type ShippingItem struct {
	Name     string          `json:"name"`
	Total    decimal.Decimal `json:"total"`
	VendorID string          `json:"vendor_id,omitempty"`
}

// OrderNote is a human readable note attached to an order.
type OrderNote struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
