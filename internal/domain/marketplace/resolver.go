package marketplace

import (
	"github.com/mobbexco/woocommerce-marketplace/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type identityStrategy func(item entities.LineItem) (entities.RecipientIdentity, bool)

type feeStrategy func(item entities.LineItem) (decimal.Decimal, bool)

// Resolver resolves the split configuration of order items.
//
// Recipient and fee are resolved independently, each by an ordered chain of
// strategies where the first non-empty value wins:
//   - recipient: vendor profile when an integration is active, otherwise
//     product then first configured category
//   - fee: product, category, vendor commission, plugin default, zero
//
// Items grouped by vendor skip the fee chain and use CommissionFee.
//
// A Resolver only reads its catalog snapshot, so resolving the same item
// twice yields the same result.
type Resolver struct {
	catalog     entities.Catalog
	settings    entities.Settings
	integration Integration

	identityChain []identityStrategy
	feeChain      []feeStrategy
}

func NewResolver(catalog entities.Catalog, settings entities.Settings, integration Integration) *Resolver {
	r := &Resolver{catalog: catalog, settings: settings, integration: integration}

	if integration.Active() {
		r.identityChain = []identityStrategy{r.vendorIdentity}
	} else {
		r.identityChain = []identityStrategy{r.productIdentity, r.categoryIdentity}
	}
	r.feeChain = []feeStrategy{r.productFee, r.categoryFee, r.vendorFee, r.defaultFee}
	return r
}

func (r *Resolver) Integration() Integration { return r.integration }

func (r *Resolver) Catalog() entities.Catalog { return r.catalog }

// ResolveProduct resolves the configuration of a bare product reference.
func (r *Resolver) ResolveProduct(productID string) (entities.ResolvedConfig, error) {
	return r.Resolve(entities.LineItem{ProductID: productID})
}

// Resolve returns the configuration of item or a MissingRecipientError when
// no tax id nor entity can be found for it.
func (r *Resolver) Resolve(item entities.LineItem) (entities.ResolvedConfig, error) {
	identity := r.Identity(item)
	if identity.IsEmpty() {
		return entities.ResolvedConfig{}, &MissingRecipientError{ProductID: item.ProductID}
	}

	return entities.ResolvedConfig{
		TaxID:     identity.TaxID,
		EntityUID: identity.Entity,
		Fee:       r.Fee(item),
		Hold:      r.Hold(item),
	}, nil
}

// Identity walks the recipient chain; the result may be empty.
func (r *Resolver) Identity(item entities.LineItem) entities.RecipientIdentity {
	for _, strategy := range r.identityChain {
		if identity, ok := strategy(item); ok {
			return identity
		}
	}
	return entities.RecipientIdentity{}
}

// Fee walks the fee chain and falls back to zero.
func (r *Resolver) Fee(item entities.LineItem) decimal.Decimal {
	for _, strategy := range r.feeChain {
		if fee, ok := strategy(item); ok {
			return fee
		}
	}
	return decimal.Zero
}

// CommissionFee is the admin fee of an item sold inside a vendor group: the
// integration's own commission formula, zero when the vendor has none. The
// product, category and default fees do not apply to vendor groups.
func (r *Resolver) CommissionFee(item entities.LineItem) decimal.Decimal {
	vendor, ok := r.vendorOf(item)
	if !ok {
		return decimal.Zero
	}
	if fee, ok := r.integration.VendorFee(vendor, item); ok {
		return fee
	}
	return decimal.Zero
}

// Hold is only configurable per vendor.
func (r *Resolver) Hold(item entities.LineItem) *bool {
	vendor, ok := r.vendorOf(item)
	if !ok {
		return nil
	}
	hold := vendor.Hold
	return &hold
}

func (r *Resolver) vendorOf(item entities.LineItem) (entities.Vendor, bool) {
	if !r.integration.Active() {
		return entities.Vendor{}, false
	}
	vendorID := vendorIDOf(item, r.catalog)
	if vendorID == "" {
		return entities.Vendor{}, false
	}
	v, ok := r.catalog.Vendors[vendorID]
	return v, ok
}

func (r *Resolver) vendorIdentity(item entities.LineItem) (entities.RecipientIdentity, bool) {
	vendor, ok := r.vendorOf(item)
	if !ok {
		return entities.RecipientIdentity{}, false
	}
	identity := r.integration.VendorIdentity(vendor)
	return identity, !identity.IsEmpty()
}

func (r *Resolver) productIdentity(item entities.LineItem) (entities.RecipientIdentity, bool) {
	p := r.catalog.Products[item.ProductID]
	identity := entities.RecipientIdentity{TaxID: p.TaxID, Entity: p.EntityUID}
	return identity, !identity.IsEmpty()
}

func (r *Resolver) categoryIdentity(item entities.LineItem) (entities.RecipientIdentity, bool) {
	for _, c := range r.categoriesOf(item.ProductID) {
		identity := entities.RecipientIdentity{TaxID: c.TaxID, Entity: c.EntityUID}
		if !identity.IsEmpty() {
			return identity, true
		}
	}
	return entities.RecipientIdentity{}, false
}

func (r *Resolver) productFee(item entities.LineItem) (decimal.Decimal, bool) {
	fee := r.catalog.Products[item.ProductID].Fee
	return fee, !fee.IsZero()
}

func (r *Resolver) categoryFee(item entities.LineItem) (decimal.Decimal, bool) {
	for _, c := range r.categoriesOf(item.ProductID) {
		if !c.Fee.IsZero() {
			return c.Fee, true
		}
	}
	return decimal.Zero, false
}

func (r *Resolver) vendorFee(item entities.LineItem) (decimal.Decimal, bool) {
	vendor, ok := r.vendorOf(item)
	if !ok {
		return decimal.Zero, false
	}
	fee, ok := r.integration.VendorFee(vendor, item)
	return fee, ok && !fee.IsZero()
}

func (r *Resolver) defaultFee(entities.LineItem) (decimal.Decimal, bool) {
	return r.settings.DefaultFee, !r.settings.DefaultFee.IsZero()
}

// categoriesOf returns the known categories of a product in product order.
func (r *Resolver) categoriesOf(productID string) []entities.Category {
	ids := r.catalog.Products[productID].CategoryIDs
	out := make([]entities.Category, 0, len(ids))
	for _, id := range ids {
		if c, ok := r.catalog.Categories[id]; ok {
			out = append(out, c)
		}
	}
	return out
}
