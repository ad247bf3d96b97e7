package routes

import (
	"github.com/mobbexco/woocommerce-marketplace/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders   = "/orders"
	PathWebhooks = "/webhooks"
)

func addSplitRoutes(rg *gin.RouterGroup, checkoutHandler *handlers.CheckoutHandler, webhookHandler *handlers.WebhookHandler, operationHandler *handlers.OperationHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("/:order_id/checkout", checkoutHandler.BuildCheckout)
		orders.GET("/:order_id/split", webhookHandler.GetOrderSplit)
		orders.POST("/:order_id/operations/:operation_uid/release", operationHandler.ReleaseOperation)
	}

	webhooks := rg.Group(PathWebhooks)
	{
		// The order id is optional: the gateway description "Orden #<id>" is used otherwise.
		webhooks.POST("/mobbex", webhookHandler.RecordSplit)
		webhooks.POST("/mobbex/:order_id", webhookHandler.RecordSplit)
	}
}
