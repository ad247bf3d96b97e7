package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/mobbexco/woocommerce-marketplace/internal/domain/entities"
	"github.com/mobbexco/woocommerce-marketplace/internal/domain/marketplace"
	"github.com/mobbexco/woocommerce-marketplace/internal/usecase/interfaces"
)

// ICheckoutSplitUseCase adds the marketplace split to a checkout payload.

type ICheckoutSplitUseCase interface {
	BuildCheckoutData(ctx context.Context, orderID string, checkout entities.CheckoutData) (entities.CheckoutData, error)
}

type CheckoutSplitUseCase struct {
	orders   interfaces.IOrderRepository
	catalog  interfaces.ICatalogRepository
	vendors  interfaces.IVendorRepository
	settings entities.Settings
}

var _ ICheckoutSplitUseCase = (*CheckoutSplitUseCase)(nil)

func NewCheckoutSplitUseCase(orders interfaces.IOrderRepository, catalog interfaces.ICatalogRepository, vendors interfaces.IVendorRepository, settings entities.Settings) *CheckoutSplitUseCase {
	return &CheckoutSplitUseCase{orders: orders, catalog: catalog, vendors: vendors, settings: settings}
}

// BuildCheckoutData returns checkout with the order split merged into its
// split list and the extension reported in options.platform.extensions.
// On error the caller must not send the checkout: no partial split is built.
func (u *CheckoutSplitUseCase) BuildCheckoutData(ctx context.Context, orderID string, checkout entities.CheckoutData) (entities.CheckoutData, error) {
	orderID = strings.TrimSpace(orderID)
	log.Printf("[split][usecase] build start order_id=%q reference=%q", orderID, checkout.Reference)
	if orderID == "" {
		return entities.CheckoutData{}, ErrInvalidOrderID
	}
	if strings.TrimSpace(checkout.Reference) == "" {
		log.Printf("[split][usecase] missing checkout reference order_id=%s", orderID)
		return entities.CheckoutData{}, ErrInvalidCheckoutReference
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		log.Printf("[split][usecase] failed loading order order_id=%s err=%v", orderID, err)
		return entities.CheckoutData{}, err
	}
	if order.ID == "" {
		log.Printf("[split][usecase] order not found order_id=%s", orderID)
		return entities.CheckoutData{}, ErrOrderNotFound
	}

	integration := marketplace.NewIntegration(u.settings)
	catalog, err := u.loadCatalog(ctx, order, integration)
	if err != nil {
		log.Printf("[split][usecase] failed loading catalog order_id=%s err=%v", orderID, err)
		return entities.CheckoutData{}, err
	}
	log.Printf("[split][usecase] catalog loaded order_id=%s integration=%q products=%d categories=%d vendors=%d",
		orderID, integration.Name(), len(catalog.Products), len(catalog.Categories), len(catalog.Vendors))

	resolver := marketplace.NewResolver(catalog, u.settings, integration)
	lines, err := marketplace.BuildSplit(checkout.Split, order, checkout.Reference, resolver)
	if err != nil {
		logSplitError(orderID, err)
		return entities.CheckoutData{}, err
	}

	distributor := marketplace.NewShippingDistributor(u.settings, resolver, checkout.Reference)
	lines, err = distributor.Distribute(order.Shippings, lines)
	if err != nil {
		logSplitError(orderID, err)
		return entities.CheckoutData{}, err
	}

	out := checkout
	out.Split = lines
	out.AddExtension(entities.Extension{Name: u.settings.ExtensionName, Version: u.settings.ExtensionVersion})

	log.Printf("[split][usecase] build success order_id=%s lines=%d shipping_policy=%s", orderID, len(lines), distributor.Policy)
	return out, nil
}

// loadCatalog fetches the configuration of every product, category and
// vendor the order refers to.
func (u *CheckoutSplitUseCase) loadCatalog(ctx context.Context, order entities.Order, integration marketplace.Integration) (entities.Catalog, error) {
	productIDs := make([]string, 0, len(order.Items))
	for _, item := range order.Items {
		productIDs = appendUnique(productIDs, item.ProductID)
	}

	products, err := u.catalog.GetProducts(ctx, productIDs)
	if err != nil {
		return entities.Catalog{}, err
	}

	var categoryIDs []string
	for _, id := range productIDs {
		for _, categoryID := range products[id].CategoryIDs {
			categoryIDs = appendUnique(categoryIDs, categoryID)
		}
	}
	categories := map[string]entities.Category{}
	if len(categoryIDs) > 0 {
		if categories, err = u.catalog.GetCategories(ctx, categoryIDs); err != nil {
			return entities.Catalog{}, err
		}
	}

	vendors := map[string]entities.Vendor{}
	if integration.Active() {
		var vendorIDs []string
		for _, item := range order.Items {
			vendorID := item.VendorID
			if vendorID == "" {
				vendorID = products[item.ProductID].VendorID
			}
			vendorIDs = appendUnique(vendorIDs, vendorID)
		}
		for _, shipping := range order.Shippings {
			vendorIDs = appendUnique(vendorIDs, shipping.VendorID)
		}
		if len(vendorIDs) > 0 {
			if vendors, err = u.vendors.GetVendors(ctx, vendorIDs); err != nil {
				return entities.Catalog{}, err
			}
		}
	}

	return entities.Catalog{Products: products, Categories: categories, Vendors: vendors}, nil
}

func logSplitError(orderID string, err error) {
	var missing *marketplace.MissingRecipientError
	var orphan *marketplace.OrphanShippingError
	switch {
	case errors.As(err, &missing):
		log.Printf("[split][usecase] ERROR missing recipient order_id=%s product_id=%s", orderID, missing.ProductID)
	case errors.As(err, &orphan):
		log.Printf("[split][usecase] ERROR orphan shipping order_id=%s vendor_id=%s shipping_method=%q", orderID, orphan.VendorID, orphan.ShippingMethod)
	default:
		log.Printf("[split][usecase] build failed order_id=%s err=%v", orderID, err)
	}
}

func appendUnique(ids []string, id string) []string {
	if id == "" {
		return ids
	}
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}
