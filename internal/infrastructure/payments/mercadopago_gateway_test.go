package payments

import (
	"context"
	"errors"
	"testing"

	"flex_billing/internal/domain/entities"

	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/refund"
)

func TestMercadoPagoGateway_MockMode(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "true")

	g, err := NewMercadoPagoGateway("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	charge, err := g.Charge(context.Background(), "cus-token", 2495, "VRB1001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if charge.ID == "" || charge.Amount != 2495 || charge.Status != statusApproved {
		t.Fatalf("unexpected charge: %+v", charge)
	}
	res, err := g.Refund(context.Background(), charge.ID, 495)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != entities.RefundStatusSucceeded || res.Amount != 495 {
		t.Fatalf("unexpected refund: %+v", res)
	}
}

func TestMercadoPagoGateway_Configuration(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")

	if _, err := NewMercadoPagoGateway(""); !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
		t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
	}
	var g *MercadoPagoGateway
	if _, err := g.Charge(context.Background(), "tok", 100, "VRB1"); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
	}
	if _, err := g.Refund(context.Background(), "1", 100); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
	}
}

func TestChargeFromResponse(t *testing.T) {
	charge, err := chargeFromResponse(&payment.Response{ID: 42, Status: "approved", TransactionAmount: 24.95})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if charge.ID != "42" || charge.Amount != 2495 || len(charge.Raw) == 0 {
		t.Fatalf("unexpected charge: %+v", charge)
	}

	_, err = chargeFromResponse(&payment.Response{ID: 43, Status: "rejected"})
	var pe *ProviderError
	if !errors.As(err, &pe) || pe.Status != "rejected" || len(pe.Body) == 0 {
		t.Fatalf("expected provider error with body, got %v", err)
	}
}

func TestRefundFromResponse(t *testing.T) {
	res, err := refundFromResponse(&refund.Response{ID: 7, Status: "approved", Amount: 4.95})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ID != "7" || res.Amount != 495 || res.Status != entities.RefundStatusSucceeded {
		t.Fatalf("unexpected refund: %+v", res)
	}
	if _, err := refundFromResponse(&refund.Response{ID: 8, Status: "rejected"}); err == nil {
		t.Fatalf("expected error for rejected refund")
	}
}
