package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"flex_billing/internal/domain/entities"
	"flex_billing/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/refund"
	"github.com/shopspring/decimal"
)

const statusApproved = "approved"

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// ProviderError is a non-approved provider outcome. Body is the provider response.
type ProviderError struct {
	Operation string
	Status    string
	Body      json.RawMessage
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("mercado pago %s status=%s body=%s", e.Operation, e.Status, string(e.Body))
}

type MercadoPagoGateway struct {
	payments payment.Client
	refunds  refund.Client
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{payments: payment.NewClient(cfg), refunds: refund.NewClient(cfg)}, nil
}

// Charge charges the customer's saved payment method. The invoice number is
// sent as description and external reference.
func (g *MercadoPagoGateway) Charge(ctx context.Context, customerToken string, amount int64, description string) (entities.Charge, error) {
	if g != nil && g.mockMode {
		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		raw, _ := json.Marshal(map[string]any{
			"id":                 id,
			"status":             statusApproved,
			"status_detail":      "accredited",
			"transaction_amount": minorToMajor(amount),
			"external_reference": description,
		})
		log.Printf("[payment][gateway] mock charge success provider_payment_id=%s amount=%d", id, amount)
		return entities.Charge{ID: id, Status: statusApproved, Amount: amount, Raw: raw}, nil
	}
	if g == nil || g.payments == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return entities.Charge{}, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] charge start amount=%d reference=%s", amount, description)

	resp, err := g.payments.Create(ctx, payment.Request{
		TransactionAmount: minorToMajor(amount),
		Description:       description,
		ExternalReference: description,
		Installments:      1,
		Payer: &payment.PayerRequest{
			Type: "customer",
			ID:   customerToken,
		},
	})
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed err=%v", err)
		return entities.Charge{}, err
	}
	charge, err := chargeFromResponse(resp)
	if err != nil {
		log.Printf("[payment][gateway] charge declined reference=%s err=%v", description, err)
		return entities.Charge{}, err
	}
	log.Printf("[payment][gateway] charge success provider_payment_id=%s provider_status=%s", charge.ID, charge.Status)
	return charge, nil
}

func (g *MercadoPagoGateway) Refund(ctx context.Context, chargeID string, amount int64) (entities.RefundResult, error) {
	if g != nil && g.mockMode {
		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		raw, _ := json.Marshal(map[string]any{"id": id, "payment_id": chargeID, "status": statusApproved, "amount": minorToMajor(amount)})
		log.Printf("[payment][gateway] mock refund success provider_payment_id=%s amount=%d", chargeID, amount)
		return entities.RefundResult{ID: id, Status: entities.RefundStatusSucceeded, Amount: amount, Raw: raw}, nil
	}
	if g == nil || g.refunds == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return entities.RefundResult{}, ErrMercadoPagoGatewayNotConfigured
	}
	paymentID, err := strconv.Atoi(chargeID)
	if err != nil {
		return entities.RefundResult{}, fmt.Errorf("invalid provider payment id %q: %w", chargeID, err)
	}
	log.Printf("[payment][gateway] refund start provider_payment_id=%s amount=%d", chargeID, amount)

	resp, err := g.refunds.CreatePartialRefund(ctx, paymentID, minorToMajor(amount))
	if err != nil {
		log.Printf("[payment][gateway] sdk refund failed provider_payment_id=%s err=%v", chargeID, err)
		return entities.RefundResult{}, err
	}
	res, err := refundFromResponse(resp)
	if err != nil {
		log.Printf("[payment][gateway] refund not approved provider_payment_id=%s err=%v", chargeID, err)
		return entities.RefundResult{}, err
	}
	log.Printf("[payment][gateway] refund success provider_payment_id=%s refund_id=%s", chargeID, res.ID)
	return res, nil
}

func chargeFromResponse(resp *payment.Response) (entities.Charge, error) {
	raw, err := json.Marshal(resp)
	if err != nil {
		return entities.Charge{}, err
	}
	if resp.Status != statusApproved {
		return entities.Charge{}, &ProviderError{Operation: "charge", Status: resp.Status, Body: raw}
	}
	return entities.Charge{
		ID:     strconv.Itoa(resp.ID),
		Status: resp.Status,
		Amount: majorToMinor(resp.TransactionAmount),
		Raw:    raw,
	}, nil
}

func refundFromResponse(resp *refund.Response) (entities.RefundResult, error) {
	raw, err := json.Marshal(resp)
	if err != nil {
		return entities.RefundResult{}, err
	}
	if resp.Status != statusApproved {
		return entities.RefundResult{}, &ProviderError{Operation: "refund", Status: resp.Status, Body: raw}
	}
	return entities.RefundResult{
		ID:     strconv.Itoa(resp.ID),
		Status: entities.RefundStatusSucceeded,
		Amount: majorToMinor(resp.Amount),
		Raw:    raw,
	}, nil
}

func minorToMajor(amount int64) float64 {
	return decimal.New(amount, -2).InexactFloat64()
}

func majorToMinor(v float64) int64 {
	return decimal.NewFromFloat(v).Shift(2).Round(0).IntPart()
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
