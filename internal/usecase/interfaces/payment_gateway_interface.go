package interfaces

import (
	"context"
	"flex_billing/internal/domain/entities"
)

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// A non-success provider status must be returned as an error carrying the
// provider response body.
type IPaymentGateway interface {
	Charge(ctx context.Context, customerToken string, amount int64, description string) (entities.Charge, error)
	Refund(ctx context.Context, chargeID string, amount int64) (entities.RefundResult, error)
}
