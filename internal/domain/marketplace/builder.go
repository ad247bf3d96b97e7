package marketplace

import (
	"fmt"
	"strings"

	"github.com/mobbexco/woocommerce-marketplace/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// BuildSplit adds the split lines of order to existing and returns the new
// list. existing is never modified, so on error the caller keeps its
// original split untouched.
func BuildSplit(existing []entities.SplitLine, order entities.Order, reference string, r *Resolver) ([]entities.SplitLine, error) {
	lines := append([]entities.SplitLine(nil), existing...)
	groups := GroupByVendor(order, r.Catalog(), r.Integration())

	for _, group := range groups.Groups {
		line, productIDs, err := vendorLine(group, reference, r)
		if err != nil {
			return nil, err
		}
		lines = mergeLine(lines, line, productIDs)
	}

	for _, item := range groups.Ungrouped {
		cfg, err := r.Resolve(item)
		if err != nil {
			return nil, err
		}
		identity := entities.RecipientIdentity{TaxID: cfg.TaxID, Entity: cfg.EntityUID}

		line := entities.SplitLine{
			TaxID:       cfg.TaxID,
			Entity:      cfg.EntityUID,
			Description: fmt.Sprintf("%s. Product IDs: %s", recipientLabel(identity), item.ProductID),
			Total:       item.Total,
			Fee:         cfg.Fee,
			Reference:   splitReference(reference, identity),
			Hold:        cfg.Hold != nil && *cfg.Hold,
		}
		lines = mergeLine(lines, line, []string{item.ProductID})
	}

	return lines, nil
}

// vendorLine sums the items and commission fees of one vendor into a single line.
func vendorLine(group VendorGroup, reference string, r *Resolver) (entities.SplitLine, []string, error) {
	var (
		line       entities.SplitLine
		productIDs = make([]string, 0, len(group.Items))
		total      = decimal.Zero
		fee        = decimal.Zero
	)

	for _, item := range group.Items {
		cfg, err := r.Resolve(item)
		if err != nil {
			return entities.SplitLine{}, nil, err
		}
		line.TaxID, line.Entity = cfg.TaxID, cfg.EntityUID
		line.Hold = line.Hold || (cfg.Hold != nil && *cfg.Hold)

		total = total.Add(item.Total)
		fee = fee.Add(r.CommissionFee(item))
		productIDs = append(productIDs, item.ProductID)
	}

	storeName := r.Catalog().Vendors[group.VendorID].StoreName
	if storeName == "" {
		storeName = group.VendorID
	}

	line.Total = total
	line.Fee = fee
	line.Reference = splitReference(reference, line.Identity())
	line.Description = fmt.Sprintf("Store %s. Product IDs: %s", storeName, strings.Join(productIDs, ", "))
	return line, productIDs, nil
}

// mergeLine folds line into the entry of the same recipient, or appends it.
func mergeLine(lines []entities.SplitLine, line entities.SplitLine, productIDs []string) []entities.SplitLine {
	i := indexOf(lines, line.Identity())
	if i < 0 {
		return append(lines, line)
	}

	current := lines[i]
	current.Total = current.Total.Add(line.Total)
	current.Fee = current.Fee.Add(line.Fee)
	current.Hold = current.Hold || line.Hold
	if len(productIDs) > 0 {
		current.Description += ", " + strings.Join(productIDs, ", ")
	}
	lines[i] = current
	return lines
}

func indexOf(lines []entities.SplitLine, identity entities.RecipientIdentity) int {
	for i, l := range lines {
		if l.Identity().Matches(identity) {
			return i
		}
	}
	return -1
}

func splitReference(base string, identity entities.RecipientIdentity) string {
	return base + "_split_" + identity.Key()
}

func recipientLabel(identity entities.RecipientIdentity) string {
	if identity.TaxID != "" {
		return "Cuit " + identity.TaxID
	}
	return "Entity " + identity.Entity
}
