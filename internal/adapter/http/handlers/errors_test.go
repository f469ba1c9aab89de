package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"flex_billing/internal/usecase"
)

func TestMapUseCaseError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"invalid id", usecase.ErrInvalidPlanID, http.StatusBadRequest, "INVALID_REQUEST"},
		{"items not found", &usecase.ItemsNotFoundError{SKUs: []string{"sku-x"}}, http.StatusUnprocessableEntity, "ITEMS_NOT_FOUND"},
		{"wrapped charge failure", fmt.Errorf("flex order: %w", usecase.ErrChargeFailed), http.StatusPaymentRequired, "PAYMENT_DECLINED"},
		{"commit after charge", usecase.ErrOrderCommitFailed, http.StatusInternalServerError, "ORDER_COMMIT_FAILED"},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := mapUseCaseError(tc.err)
			if got.HTTPStatus != tc.status || got.Code != tc.code {
				t.Fatalf("expected %d/%s, got %d/%s", tc.status, tc.code, got.HTTPStatus, got.Code)
			}
		})
	}
}
