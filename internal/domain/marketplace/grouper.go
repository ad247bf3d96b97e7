package marketplace

import "github.com/mobbexco/woocommerce-marketplace/internal/domain/entities"

// VendorGroup holds the items of one vendor in order of appearance.
type VendorGroup struct {
	VendorID string
	Items    []entities.LineItem
}

// VendorGroups is the result of partitioning an order by vendor.
// Groups keep first-seen vendor order and are never empty.
type VendorGroups struct {
	Groups    []VendorGroup
	Ungrouped []entities.LineItem
}

// GroupByVendor partitions the order items with the active integration.
func GroupByVendor(order entities.Order, catalog entities.Catalog, integration Integration) VendorGroups {
	return integration.GroupByVendor(order.Items, catalog)
}

func groupItemsByVendor(items []entities.LineItem, catalog entities.Catalog) VendorGroups {
	var out VendorGroups
	index := map[string]int{}

	for _, item := range items {
		vendorID := vendorIDOf(item, catalog)
		if vendorID == "" {
			out.Ungrouped = append(out.Ungrouped, item)
			continue
		}

		i, ok := index[vendorID]
		if !ok {
			i = len(out.Groups)
			index[vendorID] = i
			out.Groups = append(out.Groups, VendorGroup{VendorID: vendorID})
		}
		out.Groups[i].Items = append(out.Groups[i].Items, item)
	}
	return out
}

// vendorIDOf prefers the vendor stamped on the order item and falls back to
// the product owner.
func vendorIDOf(item entities.LineItem, catalog entities.Catalog) string {
	if item.VendorID != "" {
		return item.VendorID
	}
	return catalog.Products[item.ProductID].VendorID
}
