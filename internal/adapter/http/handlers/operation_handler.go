package handlers

import (
	"log"
	"net/http"

	response "github.com/mobbexco/woocommerce-marketplace/internal/adapter/http/dto/response"
	"github.com/mobbexco/woocommerce-marketplace/internal/usecase"

	"github.com/gin-gonic/gin"
)

// OperationHandler releases withheld split payments.

type OperationHandler struct {
	usecase usecase.IUnholdUseCase
}

func NewOperationHandler(uc usecase.IUnholdUseCase) *OperationHandler {
	return &OperationHandler{usecase: uc}
}

// ReleaseOperation godoc
// @Summary      Release a held split payment
// @Description  Gateway failures are recorded as an order note and reported with released=false.
// @Tags         orders
// @Produce      json
// @Param        order_id       path  string  true  "Order ID"
// @Param        operation_uid  path  string  true  "Mobbex operation uid"
// @Success      200  {object}  response.ReleaseResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{order_id}/operations/{operation_uid}/release [post]
func (h *OperationHandler) ReleaseOperation(c *gin.Context) {
	orderID := c.Param("order_id")
	operationUID := c.Param("operation_uid")
	log.Printf("[split][handler] release start order_id=%s operation_uid=%s", orderID, operationUID)

	result, err := h.usecase.Release(c.Request.Context(), orderID, operationUID)
	if err != nil {
		appErr := mapSplitError(err)
		log.Printf("[split][handler] release failed order_id=%s err=%v", orderID, err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReleaseResult(orderID, result))
}
