package entities

import "github.com/shopspring/decimal"

// Product carries the marketplace configuration saved on a product.
//
// TaxID and Fee are optional overrides; a zero Fee means "not configured".
// CategoryIDs keeps the order in which the host platform returns the
// product categories, which decides the category override precedence.
type Product struct {
	ID          string          `json:"id"`
	TaxID       string          `json:"tax_id,omitempty"`
	EntityUID   string          `json:"entity_uid,omitempty"`
	Fee         decimal.Decimal `json:"fee"`
	CategoryIDs []string        `json:"category_ids,omitempty"`
	VendorID    string          `json:"vendor_id,omitempty"`
}

// Category carries the marketplace configuration saved on a product category.
type Category struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	TaxID     string          `json:"tax_id,omitempty"`
	EntityUID string          `json:"entity_uid,omitempty"`
	Fee       decimal.Decimal `json:"fee"`
}

// CommissionMode is the way a vendor commission is computed.
type CommissionMode string

const (
	CommissionModeFixed        CommissionMode = "fixed"
	CommissionModePercent      CommissionMode = "percent"
	CommissionModePercentFixed CommissionMode = "percent_fixed"
	CommissionModeGlobal       CommissionMode = "global"
)

// Commission is a vendor commission setting. Percent is expressed in
// percentage points (10 means 10%).
type Commission struct {
	Mode    CommissionMode  `json:"mode"`
	Percent decimal.Decimal `json:"percent"`
	Fixed   decimal.Decimal `json:"fixed"`
}

// Vendor is a marketplace vendor profile.
//
// LegacyTaxID is the tax id stored by older WCFM profile settings
// (payment.mobbex.tax_id); it is only read when TaxID is empty.
type Vendor struct {
	ID          string     `json:"id"`
	StoreName   string     `json:"store_name"`
	TaxID       string     `json:"tax_id,omitempty"`
	LegacyTaxID string     `json:"legacy_tax_id,omitempty"`
	EntityUID   string     `json:"entity_uid,omitempty"`
	Hold        bool       `json:"hold"`
	Commission  Commission `json:"commission"`
}

// Catalog is the configuration snapshot needed to split one order.
// It is loaded once per checkout build and never mutated afterwards.
type Catalog struct {
	Products   map[string]Product
	Categories map[string]Category
	Vendors    map[string]Vendor
}
