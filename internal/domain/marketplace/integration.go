package marketplace

import (
	"github.com/mobbexco/woocommerce-marketplace/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Recipient is who keeps the revenue of a shipping line.
type Recipient string

const (
	RecipientNone   Recipient = ""
	RecipientSeller Recipient = "seller"
	RecipientAdmin  Recipient = "admin"
	RecipientCUIT   Recipient = "cuit"
)

// Integration is the marketplace platform variant vendors come from.
// Adding a platform means adding one implementation of this interface.
type Integration interface {
	Name() entities.Integration
	Active() bool
	// GroupByVendor partitions items by owning vendor. Items whose vendor
	// cannot be found are returned ungrouped.
	GroupByVendor(items []entities.LineItem, catalog entities.Catalog) VendorGroups
	// VendorIdentity is the split recipient of a vendor.
	VendorIdentity(v entities.Vendor) entities.RecipientIdentity
	// VendorFee is the admin fee for one line item sold by v.
	VendorFee(v entities.Vendor, item entities.LineItem) (decimal.Decimal, bool)
	// ShippingRecipient is the platform-wide shipping fee recipient.
	ShippingRecipient() Recipient
}

// NewIntegration returns the variant selected in settings.
func NewIntegration(s entities.Settings) Integration {
	switch s.Integration {
	case entities.IntegrationDokan:
		return dokan{settings: s}
	case entities.IntegrationWCFM:
		return wcfm{settings: s}
	default:
		return standalone{}
	}
}

// standalone splits by product and category configuration only.
type standalone struct{}

func (standalone) Name() entities.Integration { return entities.IntegrationNone }
func (standalone) Active() bool               { return false }

func (standalone) GroupByVendor(items []entities.LineItem, _ entities.Catalog) VendorGroups {
	return VendorGroups{Ungrouped: append([]entities.LineItem(nil), items...)}
}

func (standalone) VendorIdentity(entities.Vendor) entities.RecipientIdentity {
	return entities.RecipientIdentity{}
}

func (standalone) VendorFee(entities.Vendor, entities.LineItem) (decimal.Decimal, bool) {
	return decimal.Zero, false
}

func (standalone) ShippingRecipient() Recipient { return RecipientNone }

// dokan reads the admin commission straight from the vendor settings.
type dokan struct {
	settings entities.Settings
}

func (dokan) Name() entities.Integration { return entities.IntegrationDokan }
func (dokan) Active() bool               { return true }

func (dokan) GroupByVendor(items []entities.LineItem, catalog entities.Catalog) VendorGroups {
	return groupItemsByVendor(items, catalog)
}

func (dokan) VendorIdentity(v entities.Vendor) entities.RecipientIdentity {
	return entities.RecipientIdentity{TaxID: v.TaxID, Entity: v.EntityUID}
}

func (d dokan) VendorFee(v entities.Vendor, item entities.LineItem) (decimal.Decimal, bool) {
	return commissionAmount(v.Commission, d.settings.GlobalCommission, item.Total)
}

func (d dokan) ShippingRecipient() Recipient {
	if d.settings.DokanShippingFeeRecipient == string(RecipientAdmin) {
		return RecipientAdmin
	}
	return RecipientSeller
}

// wcfm configures what the vendor earns; the admin fee is the remainder.
type wcfm struct {
	settings entities.Settings
}

func (wcfm) Name() entities.Integration { return entities.IntegrationWCFM }
func (wcfm) Active() bool               { return true }

func (wcfm) GroupByVendor(items []entities.LineItem, catalog entities.Catalog) VendorGroups {
	return groupItemsByVendor(items, catalog)
}

func (wcfm) VendorIdentity(v entities.Vendor) entities.RecipientIdentity {
	taxID := v.TaxID
	if taxID == "" {
		taxID = v.LegacyTaxID
	}
	return entities.RecipientIdentity{TaxID: taxID, Entity: v.EntityUID}
}

func (w wcfm) VendorFee(v entities.Vendor, item entities.LineItem) (decimal.Decimal, bool) {
	earning, ok := commissionAmount(v.Commission, w.settings.GlobalCommission, item.Total)
	if !ok {
		return decimal.Zero, false
	}
	if earning.GreaterThan(item.Total) {
		earning = item.Total
	}
	return item.Total.Sub(earning), true
}

func (w wcfm) ShippingRecipient() Recipient {
	if w.settings.WCFMGetShipping {
		return RecipientSeller
	}
	return RecipientAdmin
}
