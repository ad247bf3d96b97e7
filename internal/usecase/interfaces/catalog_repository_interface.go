package interfaces

import (
	"context"

	"github.com/mobbexco/woocommerce-marketplace/internal/domain/entities"
)

// ICatalogRepository reads product and category marketplace configuration.
// Missing ids are left out of the returned maps.

type ICatalogRepository interface {
	GetProducts(ctx context.Context, ids []string) (map[string]entities.Product, error)
	GetCategories(ctx context.Context, ids []string) (map[string]entities.Category, error)
}

// IVendorRepository reads marketplace vendor profiles.

type IVendorRepository interface {
	GetVendors(ctx context.Context, ids []string) (map[string]entities.Vendor, error)
}
