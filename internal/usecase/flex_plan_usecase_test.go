package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"flex_billing/internal/domain/entities"

	"go.uber.org/mock/gomock"
)

func TestFlexPlanUseCase_Process(t *testing.T) {
	ctx := context.Background()

	t.Run("success records the cycle", func(t *testing.T) {
		f := newFixture(t)
		f.putCustomer(func(c *entities.Customer) { c.FailedFlex = 2 })
		f.putPlan(func(p *entities.FlexPlan) {
			p.Discounts = []entities.Discount{
				{Code: "FLEX10", DiscountType: entities.DiscountTypeMult, Value: 10, Amount: 200, Flex: true},
				{Code: "ONCE", DiscountType: entities.DiscountTypeMinus, Value: 5, Amount: 500},
			}
		})

		f.gateway.EXPECT().Charge(gomock.Any(), "tok-1", int64(1300), gomock.Any()).Return(entities.Charge{ID: "ch-1"}, nil)

		order, err := f.plans.Process(ctx, "plan-1", "CRM")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.OrderType != entities.OrderTypeFlex || order.Paid.Shipping != 0 {
			t.Fatalf("unexpected order: %+v", order)
		}

		p := f.plan(t, "plan-1")
		if p.TotalOrders != 1 || p.TotalValue != 1300 || p.TotalPrice != 2500 {
			t.Fatalf("unexpected plan aggregates: orders=%d value=%d price=%d", p.TotalOrders, p.TotalValue, p.TotalPrice)
		}
		if len(p.Discounts) != 1 || p.Discounts[0].Code != "FLEX10" || p.Discounts[0].Value != 10 {
			t.Fatalf("expected only flex discounts to recur, got %+v", p.Discounts)
		}
		wantNext := time.Date(2024, time.April, 8, 14, 0, 0, 0, time.UTC)
		if p.NextOrder != nil || p.NextText == nil || !p.NextText.Equal(wantNext) {
			t.Fatalf("unexpected cadence next_text=%v next_order=%v", p.NextText, p.NextOrder)
		}
		if !p.HasOrder(order.InvoiceNumber) {
			t.Fatalf("expected order history entry")
		}
		if c := f.customer(t, "cus-1"); c.FailedFlex != 0 {
			t.Fatalf("expected failure counter reset, got %d", c.FailedFlex)
		}
	})

	t.Run("duplicate record is ignored", func(t *testing.T) {
		f := newFixture(t)
		f.putPlan(nil)
		rec := entities.PlanOrderRecord{Order: entities.OrderRef{InvoiceNumber: "VRB1"}, Total: 100, NextText: fixedNow}
		if p, _ := f.store.FlexPlans().RecordOrder(ctx, "plan-1", rec); p.ID == "" {
			t.Fatalf("expected first record to apply")
		}
		if p, _ := f.store.FlexPlans().RecordOrder(ctx, "plan-1", rec); p.ID != "" {
			t.Fatalf("expected duplicate record to be rejected")
		}
		if p := f.plan(t, "plan-1"); p.TotalOrders != 1 || len(p.Orders) != 1 {
			t.Fatalf("unexpected plan: %+v", p)
		}
	})

	t.Run("failure below threshold schedules a retry", func(t *testing.T) {
		f := newFixture(t)
		f.putCustomer(nil)
		f.putPlan(func(p *entities.FlexPlan) {
			next := fixedNow
			p.NextText = &next
			p.NextOrder = nil
		})
		f.gateway.EXPECT().Charge(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Charge{}, errors.New("declined"))

		_, err := f.plans.Process(ctx, "plan-1", "CRM")
		if !errors.Is(err, ErrChargeFailed) {
			t.Fatalf("expected ErrChargeFailed, got %v", err)
		}
		p := f.plan(t, "plan-1")
		if p.Status != entities.FlexPlanStatusActive || p.NextText != nil {
			t.Fatalf("unexpected plan state: %+v", p)
		}
		if p.NextOrder == nil || !p.NextOrder.Equal(fixedNow.Add(72*time.Hour)) {
			t.Fatalf("expected retry in 72h, got %v", p.NextOrder)
		}
		if c := f.customer(t, "cus-1"); c.FailedFlex != 1 {
			t.Fatalf("expected failure count 1, got %d", c.FailedFlex)
		}
	})

	t.Run("four consecutive failures pause the plan", func(t *testing.T) {
		f := newFixture(t)
		f.putCustomer(nil)
		f.putPlan(nil)
		f.gateway.EXPECT().Charge(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Charge{}, errors.New("declined")).Times(4)

		for i := 0; i < 4; i++ {
			if _, err := f.plans.Process(ctx, "plan-1", "CRM"); !errors.Is(err, ErrChargeFailed) {
				t.Fatalf("attempt %d: expected ErrChargeFailed, got %v", i+1, err)
			}
			if i < 3 {
				if p := f.plan(t, "plan-1"); p.Status != entities.FlexPlanStatusActive || p.NextOrder == nil {
					t.Fatalf("attempt %d: expected active plan with retry, got %+v", i+1, p)
				}
			}
		}
		p := f.plan(t, "plan-1")
		if p.Status != entities.FlexPlanStatusPaused || p.NextOrder != nil || p.NextText != nil {
			t.Fatalf("expected paused plan without cadence, got %+v", p)
		}
		if p.PausedOn == nil || !p.PausedOn.Equal(fixedNow) {
			t.Fatalf("expected paused_on stamp, got %v", p.PausedOn)
		}
	})

	t.Run("other errors leave the plan untouched", func(t *testing.T) {
		f := newFixture(t)
		f.putCustomer(nil)
		f.putPlan(func(p *entities.FlexPlan) {
			p.Items = []entities.CartItem{{ID: "gone", Quantity: 1}}
		})
		before := f.plan(t, "plan-1")

		_, err := f.plans.Process(ctx, "plan-1", "CRM")
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
		after := f.plan(t, "plan-1")
		if !after.NextOrder.Equal(*before.NextOrder) || after.Status != before.Status {
			t.Fatalf("expected untouched plan")
		}
		if c := f.customer(t, "cus-1"); c.FailedFlex != 0 {
			t.Fatalf("expected no failure counted")
		}
	})

	t.Run("validation", func(t *testing.T) {
		f := newFixture(t)
		f.putPlan(func(p *entities.FlexPlan) { p.ID = "orphan"; p.CustomerID = "" })
		f.putPlan(func(p *entities.FlexPlan) {
			p.ID = "bad-discount"
			p.Discounts = []entities.Discount{{Code: "X", DiscountType: entities.DiscountTypeMult, Value: 250}}
		})

		if _, err := f.plans.Process(ctx, "", "CRM"); !errors.Is(err, ErrInvalidPlanID) {
			t.Fatalf("expected ErrInvalidPlanID, got %v", err)
		}
		if _, err := f.plans.Process(ctx, "missing", "CRM"); !errors.Is(err, ErrPlanNotFound) {
			t.Fatalf("expected ErrPlanNotFound, got %v", err)
		}
		if _, err := f.plans.Process(ctx, "orphan", "CRM"); !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
		_, err := f.plans.Process(ctx, "bad-discount", "CRM")
		if !errors.Is(err, ErrMalformedDiscount) {
			t.Fatalf("expected ErrMalformedDiscount, got %v", err)
		}
		if key, value, _ := ErrorKey(err); key != "plan_id" || value != "bad-discount" {
			t.Fatalf("expected plan key, got %s=%s", key, value)
		}
	})
}

func TestFlexPlanUseCase_StateTransitions(t *testing.T) {
	ctx := context.Background()

	t.Run("pause clears both cadence markers", func(t *testing.T) {
		f := newFixture(t)
		f.putPlan(func(p *entities.FlexPlan) { p.Rushed = true })
		p, err := f.plans.Pause(ctx, "plan-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Status != entities.FlexPlanStatusPaused || p.NextOrder != nil || p.NextText != nil || p.Rushed {
			t.Fatalf("unexpected plan: %+v", p)
		}
		if _, err := f.plans.Pause(ctx, "missing"); !errors.Is(err, ErrPlanNotFound) {
			t.Fatalf("expected ErrPlanNotFound, got %v", err)
		}
	})

	t.Run("resume reactivates and fixes trial markers", func(t *testing.T) {
		f := newFixture(t)
		followup := fixedNow
		f.putCustomer(func(c *entities.Customer) {
			c.CustomerType = entities.CustomerTypeTrialToFlex
			c.FailedFlex = 4
			c.Trial.NoFollowup = &followup
		})
		plan := f.putPlan(func(p *entities.FlexPlan) { p.Status = entities.FlexPlanStatusPaused; p.NextOrder = nil })

		p, err := f.plans.Resume(ctx, "plan-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		wantNext := time.Date(2024, time.April, 7, 14, 0, 0, 0, time.UTC)
		if p.Status != entities.FlexPlanStatusActive || p.NextText == nil || !p.NextText.Equal(wantNext) || p.NextOrder != nil {
			t.Fatalf("unexpected plan: %+v", p)
		}
		c := f.customer(t, "cus-1")
		if c.Trial.ConvertedFlex == nil || !c.Trial.ConvertedFlex.Equal(plan.Started) || c.Trial.NoFollowup != nil {
			t.Fatalf("unexpected trial state: %+v", c.Trial)
		}
		if c.FailedFlex != 0 {
			t.Fatalf("expected failure counter reset")
		}

		if _, err := f.plans.Resume(ctx, "plan-1"); !errors.Is(err, ErrPlanNotResumable) {
			t.Fatalf("expected ErrPlanNotResumable, got %v", err)
		}
	})

	t.Run("skip forces active with a later reminder", func(t *testing.T) {
		f := newFixture(t)
		f.putPlan(func(p *entities.FlexPlan) { p.Status = entities.FlexPlanStatusPaused })

		p, err := f.plans.Skip(ctx, "plan-1", 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		wantNext := time.Date(2024, time.April, 7, 14, 0, 0, 0, time.UTC)
		if p.Status != entities.FlexPlanStatusActive || !p.NextText.Equal(wantNext) || p.NextOrder != nil {
			t.Fatalf("unexpected plan: %+v", p)
		}
		p, _ = f.plans.Skip(ctx, "plan-1", 7)
		if want := time.Date(2024, time.March, 17, 14, 0, 0, 0, time.UTC); !p.NextText.Equal(want) {
			t.Fatalf("expected %v, got %v", want, p.NextText)
		}
	})
}

func TestFlexPlanUseCase_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("cancels the last order and reverts the trial conversion", func(t *testing.T) {
		f := newFixture(t)
		converted := fixedNow.AddDate(0, -1, 0)
		f.putCustomer(func(c *entities.Customer) {
			c.CustomerType = entities.CustomerTypeTrialToFlex
			c.FlexPlans = []string{"plan-1"}
			c.Trial.ConvertedFlex = &converted
		})
		f.putPlan(func(p *entities.FlexPlan) {
			p.Orders = []entities.OrderRef{{InvoiceNumber: "VRB400"}, {InvoiceNumber: "VRB500"}}
		})
		seedOrder(f, nil)

		f.gateway.EXPECT().Refund(gomock.Any(), "ch-500", int64(2495)).Return(entities.RefundResult{ID: "re", Status: entities.RefundStatusSucceeded, Amount: 2495}, nil)

		c, err := f.plans.Cancel(ctx, "plan-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(c.FlexPlans) != 0 || c.Trial.ConvertedFlex != nil || c.Trial.NoFollowup == nil {
			t.Fatalf("unexpected customer: %+v", c)
		}
		if p := f.plan(t, "plan-1"); p.ID != "" {
			t.Fatalf("expected plan deleted")
		}
		o, _ := f.store.Orders().GetByInvoiceNumber(ctx, "VRB500")
		if o.Shipping.Status != entities.ShippingStatusCanceled || o.Refunds[0].Reason != cancelPlanReason {
			t.Fatalf("unexpected order: %+v", o)
		}
	})

	t.Run("shipped order is refunded instead", func(t *testing.T) {
		f := newFixture(t)
		f.putCustomer(func(c *entities.Customer) { c.FlexPlans = []string{"plan-1", "plan-2"} })
		f.putPlan(func(p *entities.FlexPlan) { p.Orders = []entities.OrderRef{{InvoiceNumber: "VRB500"}} })
		seedOrder(f, func(o *entities.Order) { o.Shipping.Status = "Shipped" })

		f.gateway.EXPECT().Refund(gomock.Any(), "ch-500", int64(2495)).Return(entities.RefundResult{ID: "re", Status: entities.RefundStatusSucceeded, Amount: 2495}, nil)

		c, err := f.plans.Cancel(ctx, "plan-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(c.FlexPlans) != 1 || c.FlexPlans[0] != "plan-2" || c.Trial.NoFollowup != nil {
			t.Fatalf("unexpected customer: %+v", c)
		}
	})

	t.Run("missing plan", func(t *testing.T) {
		f := newFixture(t)
		if _, err := f.plans.Cancel(ctx, "nope"); !errors.Is(err, ErrPlanNotFound) {
			t.Fatalf("expected ErrPlanNotFound, got %v", err)
		}
	})
}

func TestFlexPlanUseCase_Create(t *testing.T) {
	f := newFixture(t)
	f.putCustomer(func(c *entities.Customer) { c.Rushed = true })

	f.gateway.EXPECT().Charge(gomock.Any(), "tok-1", int64(1000), "VRB1001").Return(entities.Charge{ID: "ch-1"}, nil)

	plan, err := f.plans.Create(context.Background(), CreatePlanRequest{CustomerID: "cus-1", Items: []entities.ItemRequest{{ID: "A", Quantity: 1}}, Source: "web"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.ID == "" || plan.TotalPrice != 1000 || plan.TotalOrders != 1 || plan.Status != entities.FlexPlanStatusActive {
		t.Fatalf("unexpected plan: %+v", plan)
	}
	if want := fixedNow.AddDate(0, 1, 0); plan.NextText == nil || !plan.NextText.Equal(want) {
		t.Fatalf("expected next text %v, got %v", want, plan.NextText)
	}
	c := f.customer(t, "cus-1")
	if len(c.FlexPlans) != 1 || c.FlexPlans[0] != plan.ID || c.Trial.ConvertedFlex == nil || c.Rushed {
		t.Fatalf("unexpected customer: %+v", c)
	}
	o, _ := f.store.Orders().GetByInvoiceNumber(context.Background(), "VRB1001")
	if !o.Shipping.ShipDate.Equal(fixedNow) {
		t.Fatalf("expected rushed order to ship immediately, got %v", o.Shipping.ShipDate)
	}
}
