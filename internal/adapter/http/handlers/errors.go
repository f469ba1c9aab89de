package handlers

import (
	"errors"
	"net/http"

	"flex_billing/internal/usecase"
	"flex_billing/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

func mapUseCaseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCustomerID), errors.Is(err, usecase.ErrInvalidPlanID), errors.Is(err, usecase.ErrInvalidInvoiceNumber):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuantity):
		return pkg.NewDomainErrorSimple("INVALID_QUANTITY", "Invalid item quantity", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMalformedDiscount):
		return pkg.NewDomainErrorSimple("MALFORMED_DISCOUNT", "Malformed discount", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPlanNotFound):
		return pkg.NewDomainErrorSimple("FLEX_PLAN_NOT_FOUND", "Flex plan not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrItemsNotFound), errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("ITEMS_NOT_FOUND", "Items not found", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidProductPrice):
		return pkg.NewDomainErrorSimple("INVALID_PRODUCT_PRICE", "Invalid product price", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrFlexDefaultMissing):
		return pkg.NewDomainErrorSimple("FLEX_DEFAULT_MISSING", "Flex default not configured", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPaymentProfileMissing):
		return pkg.NewDomainErrorSimple("PAYMENT_PROFILE_MISSING", "Customer payment profile missing", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrRefundExceedsOrder):
		return pkg.NewDomainErrorSimple("REFUND_EXCEEDS_ORDER", "Refund exceeds order", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPlanNotResumable):
		return pkg.NewDomainErrorSimple("FLEX_PLAN_NOT_RESUMABLE", "Flex plan not resumable", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderNotCancelable):
		return pkg.NewDomainErrorSimple("ORDER_NOT_CANCELABLE", "Order not cancelable", http.StatusConflict)
	case errors.Is(err, usecase.ErrChargeFailed):
		return pkg.NewDomainError("PAYMENT_DECLINED", "Payment declined", err, http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrRefundFailed):
		return pkg.NewDomainError("REFUND_FAILED", "Refund failed", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrOrderCommitFailed):
		return pkg.NewDomainError("ORDER_COMMIT_FAILED", "Order could not be recorded after charge", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, err error) {
	appErr := mapUseCaseError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
