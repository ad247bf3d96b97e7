package marketplace

import "fmt"

// MissingRecipientError is returned when an item cannot be attributed to any
// tax id or entity. An unattributed payment cannot be routed, so the whole
// split build is aborted.
type MissingRecipientError struct {
	ProductID string
}

func (e *MissingRecipientError) Error() string {
	return fmt.Sprintf("no split recipient configured for product %s", e.ProductID)
}

// OrphanShippingError is returned when shipping revenue is assigned to a
// vendor that has no split line in the order.
type OrphanShippingError struct {
	ShippingMethod string
	VendorID       string
}

func (e *OrphanShippingError) Error() string {
	return fmt.Sprintf("shipping %q belongs to vendor %q without products in the order", e.ShippingMethod, e.VendorID)
}
