package marketplace

import (
	"fmt"

	"github.com/mobbexco/woocommerce-marketplace/internal/domain/entities"
)

// ShippingPolicy decides how shipping revenue is assigned.
type ShippingPolicy string

const (
	// ShippingPolicyNone leaves shipping with the admin.
	ShippingPolicyNone ShippingPolicy = "none"
	// ShippingPolicyVendorNative asks the marketplace platform.
	ShippingPolicyVendorNative ShippingPolicy = "vendor-native"
	// ShippingPolicyCustom matches shipping names against custom rules.
	ShippingPolicyCustom ShippingPolicy = "custom"
)

// PolicyFor picks the shipping policy for the configured settings.
func PolicyFor(s entities.Settings, integration Integration) ShippingPolicy {
	switch {
	case s.ShippingManager == entities.ShippingManagerCustom:
		return ShippingPolicyCustom
	case integration.Active():
		return ShippingPolicyVendorNative
	default:
		return ShippingPolicyNone
	}
}

// ShippingDistributor allocates shipping lines onto split lines.
type ShippingDistributor struct {
	Policy      ShippingPolicy
	Rules       []entities.CustomShippingRule
	Integration Integration
	Catalog     entities.Catalog
	Reference   string
}

func NewShippingDistributor(s entities.Settings, r *Resolver, reference string) ShippingDistributor {
	return ShippingDistributor{
		Policy:      PolicyFor(s, r.Integration()),
		Rules:       s.CustomShipping,
		Integration: r.Integration(),
		Catalog:     r.Catalog(),
		Reference:   reference,
	}
}

// Distribute returns lines updated with the shipping amounts. lines is never
// modified.
func (d ShippingDistributor) Distribute(shippings []entities.ShippingItem, lines []entities.SplitLine) ([]entities.SplitLine, error) {
	out := append([]entities.SplitLine(nil), lines...)

	for _, shipping := range shippings {
		identity := d.vendorIdentity(shipping)
		recipient := d.recipient(shipping)
		if recipient == RecipientCUIT {
			identity = entities.RecipientIdentity{TaxID: d.rule(shipping).CUIT}
		}

		if i := indexOf(out, identity); i >= 0 {
			out[i].Total = out[i].Total.Add(shipping.Total)
			if recipient == RecipientAdmin {
				out[i].Fee = out[i].Fee.Add(shipping.Total)
			}
			continue
		}

		switch {
		case recipient == RecipientCUIT:
			out = append(out, entities.SplitLine{
				TaxID:       identity.TaxID,
				Description: fmt.Sprintf("Shipping Method %s. Cuit %s", shipping.Name, identity.TaxID),
				Total:       shipping.Total,
				Reference:   splitReference(d.Reference, identity),
			})
		case !d.Integration.Active():
			// Stand-alone mode: the admin keeps the shipping amount.
		default:
			return nil, &OrphanShippingError{ShippingMethod: shipping.Name, VendorID: shipping.VendorID}
		}
	}

	return out, nil
}

// DistributeShipping is Distribute for a one-off distributor.
func DistributeShipping(shippings []entities.ShippingItem, lines []entities.SplitLine, d ShippingDistributor) ([]entities.SplitLine, error) {
	return d.Distribute(shippings, lines)
}

func (d ShippingDistributor) recipient(shipping entities.ShippingItem) Recipient {
	switch d.Policy {
	case ShippingPolicyVendorNative:
		return d.Integration.ShippingRecipient()
	case ShippingPolicyCustom:
		rule := d.rule(shipping)
		switch rule.Type {
		case entities.ShippingRuleCUIT:
			return RecipientCUIT
		case entities.ShippingRuleAdmin:
			return RecipientAdmin
		case entities.ShippingRuleVendor:
			return RecipientSeller
		}
		return d.Integration.ShippingRecipient()
	default:
		return RecipientNone
	}
}

// rule returns the first custom rule for the shipping method, if any.
func (d ShippingDistributor) rule(shipping entities.ShippingItem) entities.CustomShippingRule {
	for _, r := range d.Rules {
		if r.ShippingMethod == shipping.Name {
			return r
		}
	}
	return entities.CustomShippingRule{}
}

func (d ShippingDistributor) vendorIdentity(shipping entities.ShippingItem) entities.RecipientIdentity {
	if !d.Integration.Active() || shipping.VendorID == "" {
		return entities.RecipientIdentity{}
	}
	vendor, ok := d.Catalog.Vendors[shipping.VendorID]
	if !ok {
		return entities.RecipientIdentity{}
	}
	return d.Integration.VendorIdentity(vendor)
}
