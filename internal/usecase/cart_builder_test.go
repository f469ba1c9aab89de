package usecase

import (
	"context"
	"errors"
	"testing"

	"flex_billing/internal/domain/entities"
)

func TestCartBuilder_Build(t *testing.T) {
	f := newFixture(t)
	builder := f.orders.carts
	ctx := context.Background()

	t.Run("default shipping without discounts", func(t *testing.T) {
		f.putCustomer(nil)
		cart, err := builder.Build(ctx, CartRequest{CustomerID: "cus-1", Items: []entities.ItemRequest{{ID: "A", Quantity: 2}}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := entities.Paid{Subtotal: 2000, Shipping: 495, DiscountTotal: 0, CreditUsed: 0, Total: 2495}
		if cart.Paid != want {
			t.Fatalf("expected %+v, got %+v", want, cart.Paid)
		}
		if len(cart.Items) != 1 || cart.Items[0].TotalPrice != 2000 || cart.Items[0].Product != "p-a" {
			t.Fatalf("unexpected items: %+v", cart.Items)
		}
	})

	t.Run("flex orders ship free", func(t *testing.T) {
		cart, err := builder.Build(ctx, CartRequest{CustomerID: "cus-1", OrderType: entities.OrderTypeFlex, Items: []entities.ItemRequest{{ID: "A", Quantity: 1}}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cart.Paid.Shipping != 0 || cart.Paid.Total != 1000 {
			t.Fatalf("unexpected paid: %+v", cart.Paid)
		}
	})

	t.Run("free shipping item only counts with quantity", func(t *testing.T) {
		cart, err := builder.Build(ctx, CartRequest{CustomerID: "cus-1", Items: []entities.ItemRequest{{ID: "A", Quantity: 1}, {ID: "sampler-pouch", Quantity: 0}}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cart.Paid.Shipping != 495 {
			t.Fatalf("expected default shipping, got %d", cart.Paid.Shipping)
		}
		cart, err = builder.Build(ctx, CartRequest{CustomerID: "cus-1", Items: []entities.ItemRequest{{ID: "A", Quantity: 1}, {ID: "sampler-pouch", Quantity: 1}}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cart.Paid.Shipping != 0 {
			t.Fatalf("expected free shipping, got %d", cart.Paid.Shipping)
		}
	})

	t.Run("shipping override wins", func(t *testing.T) {
		override := int64(250)
		cart, err := builder.Build(ctx, CartRequest{CustomerID: "cus-1", OrderType: entities.OrderTypeFlex, Shipping: &override, Items: []entities.ItemRequest{{ID: "A", Quantity: 1}}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cart.Paid.Shipping != 250 || cart.Paid.Total != 1250 {
			t.Fatalf("unexpected paid: %+v", cart.Paid)
		}
	})

	t.Run("discounts are capped at the order value", func(t *testing.T) {
		cart, err := builder.Build(ctx, CartRequest{
			CustomerID: "cus-1",
			Items:      []entities.ItemRequest{{ID: "A", Quantity: 1}},
			Discounts:  []entities.Discount{{Code: "BIG", DiscountType: entities.DiscountTypeMinus, Value: 50}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cart.Paid.DiscountTotal != 1495 || cart.Paid.Total != 0 {
			t.Fatalf("unexpected paid: %+v", cart.Paid)
		}
		if cart.Discounts[0].Amount != 5000 {
			t.Fatalf("expected computed amount to be kept, got %d", cart.Discounts[0].Amount)
		}
	})

	t.Run("credit applies before the minimum order threshold", func(t *testing.T) {
		c := f.putCustomer(func(c *entities.Customer) { c.ID = "cus-credit"; c.Credit = 2470 })
		cart, err := builder.Build(ctx, CartRequest{Customer: &c, Items: []entities.ItemRequest{{ID: "A", Quantity: 2}}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cart.Paid.CreditUsed != 2470 {
			t.Fatalf("expected credit 2470, got %d", cart.Paid.CreditUsed)
		}
		if cart.Paid.Total != 0 {
			t.Fatalf("expected sub-threshold remainder to be waived, got %d", cart.Paid.Total)
		}
	})

	t.Run("total identity holds", func(t *testing.T) {
		c := f.putCustomer(func(c *entities.Customer) { c.ID = "cus-ident"; c.Credit = 300 })
		cart, err := builder.Build(ctx, CartRequest{
			Customer:  &c,
			Items:     []entities.ItemRequest{{ID: "A", Quantity: 3}, {ID: "B", Quantity: 1}},
			Discounts: []entities.Discount{{Code: "TEN", DiscountType: entities.DiscountTypeMult, Value: 10}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		p := cart.Paid
		capped := min(p.DiscountTotal, p.Subtotal+p.Shipping)
		if p.Total != p.Subtotal+p.Shipping-capped-p.CreditUsed || p.Total < 0 {
			t.Fatalf("identity broken: %+v", p)
		}
		if p.DiscountTotal != 300 {
			t.Fatalf("expected 10%% of the discountable 3000, got %d", p.DiscountTotal)
		}
	})

	t.Run("customer not found", func(t *testing.T) {
		_, err := builder.Build(ctx, CartRequest{CustomerID: "nope", Items: []entities.ItemRequest{{ID: "A", Quantity: 1}}})
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
		if key, value, ok := ErrorKey(err); !ok || key != "customer_id" || value != "nope" {
			t.Fatalf("expected customer_id key, got %q=%q", key, value)
		}
	})

	t.Run("missing customer id", func(t *testing.T) {
		_, err := builder.Build(ctx, CartRequest{Items: []entities.ItemRequest{{ID: "A", Quantity: 1}}})
		if !errors.Is(err, ErrInvalidCustomerID) {
			t.Fatalf("expected ErrInvalidCustomerID, got %v", err)
		}
	})

	t.Run("product not found", func(t *testing.T) {
		_, err := builder.Build(ctx, CartRequest{CustomerID: "cus-1", Items: []entities.ItemRequest{{ID: "A", Quantity: 1}, {ID: "ZZZ", Quantity: 1}}})
		if !errors.Is(err, ErrProductNotFound) || !errors.Is(err, ErrItemsNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("negative quantity", func(t *testing.T) {
		_, err := builder.Build(ctx, CartRequest{CustomerID: "cus-1", Items: []entities.ItemRequest{{ID: "A", Quantity: -1}}})
		if !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})
}
