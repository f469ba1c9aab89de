package request

import (
	"errors"
	"strings"

	"flex_billing/internal/domain/entities"
)

var (
	ErrInvalidSkipDays  = errors.New("invalid skip days")
	ErrEmptyPlanItems   = errors.New("flex plan items required")
	ErrInvalidPlanItems = errors.New("invalid flex plan item")
)

type PlanItemRequest struct {
	ID       string `json:"id" binding:"required"`
	Quantity int    `json:"quantity" binding:"required"`
}

type PlanDiscountRequest struct {
	Code         string  `json:"code" binding:"required"`
	DiscountType string  `json:"discount_type" binding:"required"`
	Value        float64 `json:"value"`
}

// CreateFlexPlanRequest starts a plan and charges its first cycle.
type CreateFlexPlanRequest struct {
	CustomerID string                `json:"customer_id" binding:"required"`
	Items      []PlanItemRequest     `json:"items"`
	Discounts  []PlanDiscountRequest `json:"discounts"`
	Source     string                `json:"source"`
}

func (r CreateFlexPlanRequest) ItemRequests() ([]entities.ItemRequest, error) {
	if len(r.Items) == 0 {
		return nil, ErrEmptyPlanItems
	}
	out := make([]entities.ItemRequest, 0, len(r.Items))
	for _, it := range r.Items {
		id := strings.TrimSpace(it.ID)
		if id == "" || it.Quantity <= 0 {
			return nil, ErrInvalidPlanItems
		}
		out = append(out, entities.ItemRequest{ID: id, Quantity: it.Quantity})
	}
	return out, nil
}

// DiscountEntities marks every requested discount as a flex discount.
func (r CreateFlexPlanRequest) DiscountEntities() []entities.Discount {
	out := make([]entities.Discount, 0, len(r.Discounts))
	for _, d := range r.Discounts {
		out = append(out, entities.Discount{
			Code:         strings.ToUpper(strings.TrimSpace(d.Code)),
			DiscountType: entities.DiscountType(d.DiscountType),
			Value:        d.Value,
			Flex:         true,
		})
	}
	return out
}

// SkipRequest pushes a reminder date out. Zero uses the default skip window.
type SkipRequest struct {
	Days int `json:"days"`
}

func (r SkipRequest) Validate() error {
	if r.Days < 0 {
		return ErrInvalidSkipDays
	}
	return nil
}

// SourceRequest tags who triggered a charge (CRM, admin, customer...).
type SourceRequest struct {
	Source string `json:"source"`
}

func (r SourceRequest) ResolveSource(def string) string {
	if v := strings.TrimSpace(r.Source); v != "" {
		return v
	}
	return def
}
