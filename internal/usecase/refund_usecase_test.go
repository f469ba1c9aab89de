package usecase

import (
	"context"
	"errors"
	"testing"

	"flex_billing/internal/domain/entities"

	"go.uber.org/mock/gomock"
)

func seedOrder(f *fixture, mut func(o *entities.Order)) entities.Order {
	o := entities.Order{
		ID:            "o-1",
		InvoiceNumber: "VRB500",
		CustomerID:    "cus-1",
		Paid:          entities.Paid{Subtotal: 2000, Shipping: 495, Total: 2495},
		ChargeID:      "ch-500",
		Shipping:      entities.Shipping{Status: entities.ShippingStatusPending},
	}
	if mut != nil {
		mut(&o)
	}
	f.store.PutOrder(o)
	return o
}

func TestRefundUseCase_Refund(t *testing.T) {
	ctx := context.Background()

	t.Run("over refund never reaches the gateway", func(t *testing.T) {
		f := newFixture(t)
		f.putCustomer(nil)
		seedOrder(f, func(o *entities.Order) {
			o.Refunds = []entities.Refund{{Amount: 2000, Status: entities.RefundStatusSucceeded}}
		})

		_, err := f.refunds.Refund(ctx, RefundRequest{InvoiceNumber: "VRB500", Amount: 600})
		if !errors.Is(err, ErrRefundExceedsOrder) {
			t.Fatalf("expected ErrRefundExceedsOrder, got %v", err)
		}
	})

	t.Run("full refund decrements the order count", func(t *testing.T) {
		f := newFixture(t)
		f.putCustomer(func(c *entities.Customer) { c.TotalOrders = 3; c.TotalValue = 9000 })
		seedOrder(f, func(o *entities.Order) {
			o.Refunds = []entities.Refund{
				{Amount: 495, Status: entities.RefundStatusSucceeded},
				{Amount: 1000, Status: "failed"},
			}
		})

		f.gateway.EXPECT().Refund(gomock.Any(), "ch-500", int64(2000)).
			Return(entities.RefundResult{ID: "re-1", Status: entities.RefundStatusSucceeded, Amount: 2000}, nil)

		order, err := f.refunds.Refund(ctx, RefundRequest{InvoiceNumber: " VRB500 "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.RefundableTotal() != 0 || len(order.Refunds) != 3 {
			t.Fatalf("unexpected refunds: %+v", order.Refunds)
		}
		if order.Refunds[2].Reason != defaultRefundReason || !order.Refunds[2].RefundDate.Equal(fixedNow) {
			t.Fatalf("unexpected refund record: %+v", order.Refunds[2])
		}
		c := f.customer(t, "cus-1")
		if c.TotalOrders != 2 || c.TotalValue != 7000 {
			t.Fatalf("unexpected aggregates: %+v", c)
		}
	})

	t.Run("partial refund keeps the order count", func(t *testing.T) {
		f := newFixture(t)
		f.putCustomer(func(c *entities.Customer) { c.TotalOrders = 3; c.TotalValue = 9000 })
		seedOrder(f, nil)

		f.gateway.EXPECT().Refund(gomock.Any(), "ch-500", int64(500)).
			Return(entities.RefundResult{ID: "re-2", Status: entities.RefundStatusSucceeded, Amount: 500}, nil)

		if _, err := f.refunds.Refund(ctx, RefundRequest{InvoiceNumber: "VRB500", Amount: 500, Reason: "damaged"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		c := f.customer(t, "cus-1")
		if c.TotalOrders != 3 || c.TotalValue != 8500 {
			t.Fatalf("unexpected aggregates: %+v", c)
		}
	})

	t.Run("gateway failure", func(t *testing.T) {
		f := newFixture(t)
		f.putCustomer(nil)
		seedOrder(f, nil)
		f.gateway.EXPECT().Refund(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.RefundResult{}, errors.New("charge_already_refunded"))

		_, err := f.refunds.Refund(ctx, RefundRequest{InvoiceNumber: "VRB500"})
		if !errors.Is(err, ErrRefundFailed) {
			t.Fatalf("expected ErrRefundFailed, got %v", err)
		}
		if o, _ := f.store.Orders().GetByInvoiceNumber(ctx, "VRB500"); len(o.Refunds) != 0 {
			t.Fatalf("expected no refund recorded")
		}
	})

	t.Run("order not found", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.refunds.Refund(ctx, RefundRequest{InvoiceNumber: "VRB404"})
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("empty invoice", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.refunds.Refund(ctx, RefundRequest{InvoiceNumber: " "})
		if !errors.Is(err, ErrInvalidInvoiceNumber) {
			t.Fatalf("expected ErrInvalidInvoiceNumber, got %v", err)
		}
	})
}

func TestRefundUseCase_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("shipped orders are not cancelable", func(t *testing.T) {
		f := newFixture(t)
		seedOrder(f, func(o *entities.Order) { o.Shipping.Status = "Shipped" })

		_, err := f.refunds.Cancel(ctx, "VRB500", "")
		if !errors.Is(err, ErrOrderNotCancelable) {
			t.Fatalf("expected ErrOrderNotCancelable, got %v", err)
		}
	})

	t.Run("cancel then refund in full", func(t *testing.T) {
		f := newFixture(t)
		f.putCustomer(func(c *entities.Customer) { c.TotalOrders = 1; c.TotalValue = 2495 })
		seedOrder(f, func(o *entities.Order) { o.Shipping.Status = entities.ShippingStatusOnHold })

		f.gateway.EXPECT().Refund(gomock.Any(), "ch-500", int64(2495)).
			Return(entities.RefundResult{ID: "re-3", Status: entities.RefundStatusSucceeded, Amount: 2495}, nil)

		order, err := f.refunds.Cancel(ctx, "VRB500", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.Shipping.Status != entities.ShippingStatusCanceled || order.Refunds[0].Reason != defaultCancelReason {
			t.Fatalf("unexpected order: %+v", order)
		}
		stored, _ := f.store.Orders().GetByInvoiceNumber(ctx, "VRB500")
		if stored.Shipping.Status != entities.ShippingStatusCanceled {
			t.Fatalf("expected stored order canceled")
		}
	})

	t.Run("refund failure after cancel is reported", func(t *testing.T) {
		f := newFixture(t)
		f.putCustomer(nil)
		seedOrder(f, nil)
		f.gateway.EXPECT().Refund(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.RefundResult{}, errors.New("timeout"))

		_, err := f.refunds.Cancel(ctx, "VRB500", "")
		if !errors.Is(err, ErrRefundFailed) {
			t.Fatalf("expected ErrRefundFailed, got %v", err)
		}
	})
}
