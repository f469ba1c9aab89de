package request

import (
	"errors"
	"testing"

	"flex_billing/internal/domain/entities"
)

func TestCreateFlexPlanRequest_ItemRequests(t *testing.T) {
	r := CreateFlexPlanRequest{Items: []PlanItemRequest{{ID: " sku-a ", Quantity: 2}}}
	items, err := r.ItemRequests()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].ID != "sku-a" || items[0].Quantity != 2 {
		t.Fatalf("unexpected items: %+v", items)
	}

	if _, err := (CreateFlexPlanRequest{}).ItemRequests(); !errors.Is(err, ErrEmptyPlanItems) {
		t.Fatalf("expected ErrEmptyPlanItems, got %v", err)
	}
	bad := CreateFlexPlanRequest{Items: []PlanItemRequest{{ID: "sku-a", Quantity: 0}}}
	if _, err := bad.ItemRequests(); !errors.Is(err, ErrInvalidPlanItems) {
		t.Fatalf("expected ErrInvalidPlanItems, got %v", err)
	}
}

func TestCreateFlexPlanRequest_DiscountEntities(t *testing.T) {
	r := CreateFlexPlanRequest{Discounts: []PlanDiscountRequest{{Code: " flex10 ", DiscountType: "mult", Value: 0.1}}}
	got := r.DiscountEntities()
	if len(got) != 1 {
		t.Fatalf("expected 1 discount, got %d", len(got))
	}
	if got[0].Code != "FLEX10" || !got[0].Flex || got[0].DiscountType != entities.DiscountTypeMult {
		t.Fatalf("unexpected discount: %+v", got[0])
	}
}

func TestSkipAndSourceRequests(t *testing.T) {
	if err := (SkipRequest{Days: -1}).Validate(); !errors.Is(err, ErrInvalidSkipDays) {
		t.Fatalf("expected ErrInvalidSkipDays, got %v", err)
	}
	if err := (SkipRequest{}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := (SourceRequest{Source: "  "}).ResolveSource("CRM"); got != "CRM" {
		t.Fatalf("expected CRM, got %q", got)
	}
	if got := (SourceRequest{Source: "admin"}).ResolveSource("CRM"); got != "admin" {
		t.Fatalf("expected admin, got %q", got)
	}
	if got := (CancelOrderRequest{}).ResolveReason("Customer request"); got != "Customer request" {
		t.Fatalf("unexpected reason %q", got)
	}
	if err := (RefundOrderRequest{Amount: 0}).Validate(); !errors.Is(err, ErrInvalidRefundAmount) {
		t.Fatalf("expected ErrInvalidRefundAmount, got %v", err)
	}
}
