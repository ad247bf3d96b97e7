package handlers

import (
	"log"
	"net/http"

	request "github.com/mobbexco/woocommerce-marketplace/internal/adapter/http/dto/request"
	"github.com/mobbexco/woocommerce-marketplace/internal/usecase"
	"github.com/mobbexco/woocommerce-marketplace/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_CHECKOUT_PAYLOAD", "Invalid checkout payload", http.StatusBadRequest)

// CheckoutHandler adds the marketplace split to outgoing checkout payloads.

type CheckoutHandler struct {
	usecase usecase.ICheckoutSplitUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutSplitUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

// BuildCheckout godoc
// @Summary      Add the marketplace split to a checkout payload
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        order_id  path  string  true  "Order ID"
// @Param        checkout  body  object  true  "Checkout payload"
// @Success      200  {object}  object
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /orders/{order_id}/checkout [post]
func (h *CheckoutHandler) BuildCheckout(c *gin.Context) {
	orderID := c.Param("order_id")
	log.Printf("[split][handler] checkout start order_id=%s", orderID)

	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}
	checkout, err := request.ParseCheckoutData(raw)
	if err != nil {
		log.Printf("[split][handler] invalid checkout payload order_id=%s err=%v", orderID, err)
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	out, err := h.usecase.BuildCheckoutData(c.Request.Context(), orderID, checkout)
	if err != nil {
		appErr := mapSplitError(err)
		log.Printf("[split][handler] checkout failed order_id=%s code=%s err=%v", orderID, appErr.Code, err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[split][handler] checkout success order_id=%s lines=%d", orderID, len(out.Split))

	c.JSON(http.StatusOK, out)
}
