package handlers

import (
	"log"
	"net/http"

	request "github.com/mobbexco/woocommerce-marketplace/internal/adapter/http/dto/request"
	response "github.com/mobbexco/woocommerce-marketplace/internal/adapter/http/dto/response"
	"github.com/mobbexco/woocommerce-marketplace/internal/usecase"
	"github.com/mobbexco/woocommerce-marketplace/pkg"

	"github.com/gin-gonic/gin"
)

// WebhookHandler records the split confirmed by the gateway and exposes it.

type WebhookHandler struct {
	usecase usecase.ISplitResponseUseCase
}

func NewWebhookHandler(uc usecase.ISplitResponseUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

// RecordSplit godoc
// @Summary      Record the split confirmed by Mobbex
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        order_id  path  string  false  "Order ID (falls back to the response description)"
// @Param        payload   body  object  true   "Gateway webhook payload"
// @Success      200  {object}  response.WebhookResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /webhooks/mobbex/{order_id} [post]
func (h *WebhookHandler) RecordSplit(c *gin.Context) {
	orderID := c.Param("order_id")
	log.Printf("[split][handler] webhook start order_id=%q", orderID)

	raw, err := c.GetRawData()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	gatewayResponse, err := request.ParseGatewayResponse(raw)
	if err != nil {
		log.Printf("[split][handler] invalid webhook payload order_id=%q err=%v", orderID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := h.usecase.Record(c.Request.Context(), gatewayResponse, orderID)
	if err != nil {
		appErr := mapSplitError(err)
		log.Printf("[split][handler] webhook failed order_id=%q code=%s err=%v", orderID, appErr.Code, err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[split][handler] webhook success order_id=%s split_saved=%t", result.OrderID, result.SplitSaved)

	c.JSON(http.StatusOK, response.FromRecordResult(result))
}

// GetOrderSplit godoc
// @Summary      Get the last confirmed split of an order
// @Tags         orders
// @Produce      json
// @Param        order_id  path  string  true  "Order ID"
// @Success      200  {object}  response.OrderSplitResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{order_id}/split [get]
func (h *WebhookHandler) GetOrderSplit(c *gin.Context) {
	orderID := c.Param("order_id")

	order, err := h.usecase.GetByOrderID(c.Request.Context(), orderID)
	if err != nil {
		appErr := mapSplitError(err)
		log.Printf("[split][handler] get split failed order_id=%s err=%v", orderID, err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrderSplit(order))
}
