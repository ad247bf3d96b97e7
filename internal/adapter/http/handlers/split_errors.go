package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/mobbexco/woocommerce-marketplace/internal/domain/marketplace"
	"github.com/mobbexco/woocommerce-marketplace/internal/usecase"
	"github.com/mobbexco/woocommerce-marketplace/pkg"
)

func mapSplitError(err error) *pkg.AppError {
	var missing *marketplace.MissingRecipientError
	var orphan *marketplace.OrphanShippingError

	switch {
	case errors.As(err, &missing):
		return pkg.NewDomainError("SPLIT_MISSING_RECIPIENT", fmt.Sprintf("No tax id or entity configured for product %s", missing.ProductID), err, http.StatusUnprocessableEntity)
	case errors.As(err, &orphan):
		return pkg.NewDomainError("SPLIT_ORPHAN_SHIPPING", fmt.Sprintf("Shipping %q belongs to a vendor without products in the order", orphan.ShippingMethod), err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidCheckoutReference), errors.Is(err, usecase.ErrInvalidOperationUID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidGatewayResponse):
		return pkg.NewDomainErrorSimple("INVALID_GATEWAY_RESPONSE", "Invalid gateway response", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
