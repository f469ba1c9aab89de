package handlers

import (
	"log"
	"net/http"

	request "flex_billing/internal/adapter/http/dto/request"
	response "flex_billing/internal/adapter/http/dto/response"
	"flex_billing/internal/usecase"

	"github.com/gin-gonic/gin"
)

const defaultCancelReason = "Customer request"

// OrderHandler exposes refund and cancel on placed orders.
type OrderHandler struct {
	usecase usecase.IRefundUseCase
}

func NewOrderHandler(uc usecase.IRefundUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// RefundOrder godoc
// @Summary      Refund an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        invoice_number  path  string                      true  "Invoice number"
// @Param        body            body  request.RefundOrderRequest  true  "Refund amount in minor units"
// @Success      200  {object}  response.OrderResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /orders/{invoice_number}/refund [post]
func (h *OrderHandler) RefundOrder(c *gin.Context) {
	invoiceNumber := c.Param("invoice_number")
	log.Printf("[order][handler] refund start invoice_number=%s", invoiceNumber)

	var payload request.RefundOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[order][handler] invalid payload invoice_number=%s err=%v", invoiceNumber, err)
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	if err := payload.Validate(); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.Refund(c.Request.Context(), usecase.RefundRequest{
		InvoiceNumber: invoiceNumber,
		Amount:        payload.Amount,
		Reason:        payload.Reason,
	})
	if err != nil {
		log.Printf("[order][handler] refund failed invoice_number=%s err=%v", invoiceNumber, err)
		writeError(c, err)
		return
	}
	log.Printf("[order][handler] refund success invoice_number=%s refunded=%d", invoiceNumber, order.RefundedTotal())

	c.JSON(http.StatusOK, response.FromOrder(order))
}

// CancelOrder accepts an empty body; the reason defaults to a customer request.
//
// @Summary      Cancel an order before shipment
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        invoice_number  path  string                      true   "Invoice number"
// @Param        body            body  request.CancelOrderRequest  false  "Cancel reason"
// @Success      200  {object}  response.OrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /orders/{invoice_number}/cancel [post]
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	invoiceNumber := c.Param("invoice_number")
	log.Printf("[order][handler] cancel start invoice_number=%s", invoiceNumber)

	var payload request.CancelOrderRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			log.Printf("[order][handler] invalid payload invoice_number=%s err=%v", invoiceNumber, err)
			c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
			return
		}
	}

	order, err := h.usecase.Cancel(c.Request.Context(), invoiceNumber, payload.ResolveReason(defaultCancelReason))
	if err != nil {
		log.Printf("[order][handler] cancel failed invoice_number=%s err=%v", invoiceNumber, err)
		writeError(c, err)
		return
	}
	log.Printf("[order][handler] cancel success invoice_number=%s status=%s", invoiceNumber, order.Shipping.Status)

	c.JSON(http.StatusOK, response.FromOrder(order))
}
