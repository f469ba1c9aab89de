package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"flex_billing/internal/adapter/http/handlers/mocks"
	"flex_billing/internal/domain/entities"
	"flex_billing/internal/usecase"
	"flex_billing/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newOrderRouter(t *testing.T) (*gin.Engine, *mocks.MockIRefundUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIRefundUseCase(ctrl)
	h := NewOrderHandler(uc)

	r := gin.New()
	r.POST("/v1/orders/:invoice_number/refund", h.RefundOrder)
	r.POST("/v1/orders/:invoice_number/cancel", h.CancelOrder)
	return r, uc
}

func TestOrderHandler_RefundOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		r, _ := newOrderRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/VRB1001/refund", bytes.NewBufferString(`{"amount":-5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("refund exceeds order", func(t *testing.T) {
		r, uc := newOrderRouter(t)
		uc.EXPECT().Refund(gomock.Any(), usecase.RefundRequest{InvoiceNumber: "VRB1001", Amount: 9999, Reason: "damaged"}).
			Return(entities.Order{}, usecase.ErrRefundExceedsOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/VRB1001/refund", bytes.NewBufferString(`{"amount":9999,"reason":"damaged"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var body pkg.HTTPError
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body.Code != "REFUND_EXCEEDS_ORDER" {
			t.Fatalf("unexpected code %q", body.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newOrderRouter(t)
		uc.EXPECT().Refund(gomock.Any(), gomock.Any()).Return(entities.Order{
			InvoiceNumber: "VRB1001",
			Paid:          entities.Paid{Total: 2495},
			Refunds:       []entities.Refund{{RefundID: "re-1", Amount: 495, Status: entities.RefundStatusSucceeded}},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/VRB1001/refund", bytes.NewBufferString(`{"amount":495}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["refunded"] != float64(495) || body["refundable"] != float64(2000) {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestOrderHandler_CancelOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("default reason", func(t *testing.T) {
		r, uc := newOrderRouter(t)
		uc.EXPECT().Cancel(gomock.Any(), "VRB1001", defaultCancelReason).
			Return(entities.Order{InvoiceNumber: "VRB1001", Shipping: entities.Shipping{Status: entities.ShippingStatusCanceled}}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/VRB1001/cancel", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not cancelable", func(t *testing.T) {
		r, uc := newOrderRouter(t)
		uc.EXPECT().Cancel(gomock.Any(), "VRB1001", "duplicate").Return(entities.Order{}, usecase.ErrOrderNotCancelable)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/VRB1001/cancel", bytes.NewBufferString(`{"reason":"duplicate"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("refund failure", func(t *testing.T) {
		r, uc := newOrderRouter(t)
		uc.EXPECT().Cancel(gomock.Any(), "VRB1001", defaultCancelReason).
			Return(entities.Order{}, errors.Join(usecase.ErrRefundFailed, errors.New("gateway down")))

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/VRB1001/cancel", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}
