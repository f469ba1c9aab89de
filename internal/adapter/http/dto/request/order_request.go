package request

import (
	"errors"
	"strings"
)

var ErrInvalidRefundAmount = errors.New("invalid refund amount")

// RefundOrderRequest asks for a partial or full refund, in minor units.
type RefundOrderRequest struct {
	Amount int64  `json:"amount" binding:"required"`
	Reason string `json:"reason"`
}

func (r RefundOrderRequest) Validate() error {
	if r.Amount <= 0 {
		return ErrInvalidRefundAmount
	}
	return nil
}

type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

// ResolveReason falls back to def when no reason was sent.
func (r CancelOrderRequest) ResolveReason(def string) string {
	if v := strings.TrimSpace(r.Reason); v != "" {
		return v
	}
	return def
}
