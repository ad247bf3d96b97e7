package entities

import "github.com/shopspring/decimal"

// Integration is the marketplace plugin the vendors come from.
type Integration string

const (
	IntegrationNone  Integration = ""
	IntegrationDokan Integration = "dokan"
	IntegrationWCFM  Integration = "wcfm"
)

// ShippingManager decides who configures shipping recipients.
type ShippingManager string

const (
	ShippingManagerDefault ShippingManager = "default"
	ShippingManagerCustom  ShippingManager = "custom"
)

// ShippingRuleType is the recipient kind of a custom shipping rule.
type ShippingRuleType string

const (
	ShippingRuleCUIT   ShippingRuleType = "cuit"
	ShippingRuleVendor ShippingRuleType = "vendor"
	ShippingRuleAdmin  ShippingRuleType = "admin"
)

// CustomShippingRule assigns the revenue of a shipping method.
type CustomShippingRule struct {
	ShippingMethod string           `json:"shipping_method" yaml:"shipping_method"`
	Type           ShippingRuleType `json:"type" yaml:"type"`
	CUIT           string           `json:"cuit,omitempty" yaml:"cuit"`
}

// Settings are the plugin-wide options. A Settings value is built once at
// startup and shared read-only by every checkout build.
type Settings struct {
	APIKey      string
	AccessToken string

	Integration     Integration
	ShippingManager ShippingManager
	DefaultFee      decimal.Decimal
	CustomShipping  []CustomShippingRule

	// Marketplace platform options.
	DokanShippingFeeRecipient string
	WCFMGetShipping           bool
	// GlobalCommission applies to vendors whose commission mode is global.
	GlobalCommission Commission

	ExtensionName    string
	ExtensionVersion string
}
