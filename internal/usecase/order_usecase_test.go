package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"flex_billing/internal/domain/entities"

	"go.uber.org/mock/gomock"
)

func TestOrderUseCase_PlaceOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("charges and commits the order", func(t *testing.T) {
		f := newFixture(t)
		f.putCustomer(func(c *entities.Customer) { c.Credit = 500 })

		f.gateway.EXPECT().Charge(gomock.Any(), "tok-1", int64(1995), "VRB1001").
			Return(entities.Charge{ID: "ch-1", Status: "approved", Amount: 1995}, nil)

		order, err := f.orders.PlaceOrder(ctx, PlaceOrderRequest{CustomerID: "cus-1", Items: []entities.ItemRequest{{ID: "A", Quantity: 2}}, Source: "web"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.InvoiceNumber != "VRB1001" || order.ChargeID != "ch-1" {
			t.Fatalf("unexpected order: %s charge=%s", order.InvoiceNumber, order.ChargeID)
		}
		if order.Shipping.Status != entities.ShippingStatusPending || order.CustomerInfo.Address.FirstName != "Ada" {
			t.Fatalf("unexpected snapshot: %+v", order.CustomerInfo)
		}

		stored, _ := f.store.Orders().GetByInvoiceNumber(ctx, "VRB1001")
		if stored.ChargeID != "ch-1" || stored.Paid.CreditUsed != 500 {
			t.Fatalf("unexpected stored order: %+v", stored)
		}
		c := f.customer(t, "cus-1")
		if c.Credit != 0 {
			t.Fatalf("expected credit debited, got %d", c.Credit)
		}
		if c.TotalOrders != 1 || c.TotalValue != 1995 || !c.HasOrder("VRB1001") {
			t.Fatalf("expected aggregates applied, got %+v", c)
		}
	})

	t.Run("rejected charge rolls everything back", func(t *testing.T) {
		f := newFixture(t)
		f.putCustomer(func(c *entities.Customer) { c.Credit = 500 })

		f.gateway.EXPECT().Charge(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.Charge{}, errors.New("card_declined"))

		_, err := f.orders.PlaceOrder(ctx, PlaceOrderRequest{CustomerID: "cus-1", Items: []entities.ItemRequest{{ID: "A", Quantity: 2}}})
		if !errors.Is(err, ErrChargeFailed) {
			t.Fatalf("expected ErrChargeFailed, got %v", err)
		}
		if f.store.OrderCount() != 0 {
			t.Fatalf("expected no orders, got %d", f.store.OrderCount())
		}
		if o, _ := f.store.Orders().GetByInvoiceNumber(ctx, "VRB1001"); o.InvoiceNumber != "" {
			t.Fatalf("expected no order for the allocated invoice")
		}
		if c := f.customer(t, "cus-1"); c.Credit != 500 || c.TotalOrders != 0 {
			t.Fatalf("expected customer untouched, got %+v", c)
		}
	})

	t.Run("rejected charge emits failed_payment", func(t *testing.T) {
		f := newFixture(t)
		f.putCustomer(func(c *entities.Customer) { c.Rushed = true })

		var (
			mu     sync.Mutex
			events []entities.DomainEvent
		)
		f.notifier.events = publisherFunc(func(_ context.Context, ev entities.DomainEvent) error {
			mu.Lock()
			defer mu.Unlock()
			events = append(events, ev)
			return nil
		})

		f.gateway.EXPECT().Charge(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Charge{}, errors.New("declined"))

		_, _ = f.orders.PlaceOrder(ctx, PlaceOrderRequest{CustomerID: "cus-1", OrderType: "Flex", Items: []entities.ItemRequest{{ID: "A", Quantity: 1}}})
		f.notifier.Wait()

		mu.Lock()
		defer mu.Unlock()
		if len(events) != 1 || events[0].Action != "failed_payment" || events[0].Customer.ID != "cus-1" {
			t.Fatalf("unexpected events: %+v", events)
		}
		if events[0].Properties["wasRushed"] != true {
			t.Fatalf("expected wasRushed property, got %+v", events[0].Properties)
		}
	})

	t.Run("commit failure after charge refunds the charge", func(t *testing.T) {
		f := newFixture(t)
		f.putCustomer(nil)
		f.store.BeforeCommit = func() error { return errors.New("write conflict") }

		gomock.InOrder(
			f.gateway.EXPECT().Charge(gomock.Any(), gomock.Any(), int64(2495), gomock.Any()).Return(entities.Charge{ID: "ch-9"}, nil),
			f.gateway.EXPECT().Refund(gomock.Any(), "ch-9", int64(2495)).Return(entities.RefundResult{ID: "re-9"}, nil),
		)

		_, err := f.orders.PlaceOrder(ctx, PlaceOrderRequest{CustomerID: "cus-1", Items: []entities.ItemRequest{{ID: "A", Quantity: 2}}})
		if !errors.Is(err, ErrOrderCommitFailed) {
			t.Fatalf("expected ErrOrderCommitFailed, got %v", err)
		}
		if key, value, _ := ErrorKey(err); key != "invoice_number" || value != "VRB1001" {
			t.Fatalf("expected invoice key, got %s=%s", key, value)
		}
	})

	t.Run("zero total is not charged", func(t *testing.T) {
		f := newFixture(t)
		f.putCustomer(func(c *entities.Customer) { c.Credit = 10000 })

		order, err := f.orders.PlaceOrder(ctx, PlaceOrderRequest{CustomerID: "cus-1", Items: []entities.ItemRequest{{ID: "A", Quantity: 1}}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.Paid.Total != 0 || order.ChargeID != "" {
			t.Fatalf("unexpected order: %+v", order.Paid)
		}
		if c := f.customer(t, "cus-1"); c.Credit != 10000-1495 {
			t.Fatalf("expected credit debit, got %d", c.Credit)
		}
	})

	t.Run("missing payment profile", func(t *testing.T) {
		f := newFixture(t)
		f.putCustomer(func(c *entities.Customer) { c.PaymentCustomerID = "" })

		_, err := f.orders.PlaceOrder(ctx, PlaceOrderRequest{CustomerID: "cus-1", Items: []entities.ItemRequest{{ID: "A", Quantity: 1}}})
		if !errors.Is(err, ErrPaymentProfileMissing) {
			t.Fatalf("expected ErrPaymentProfileMissing, got %v", err)
		}
	})

	t.Run("invoice numbers are unique across placements", func(t *testing.T) {
		f := newFixture(t)
		f.putCustomer(nil)
		f.gateway.EXPECT().Charge(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Charge{ID: "ch"}, nil).Times(5)

		var wg sync.WaitGroup
		seen := make(chan string, 5)
		for range 5 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				o, err := f.orders.PlaceOrder(ctx, PlaceOrderRequest{CustomerID: "cus-1", Items: []entities.ItemRequest{{ID: "A", Quantity: 1}}})
				if err != nil {
					t.Errorf("unexpected error: %v", err)
					return
				}
				seen <- o.InvoiceNumber
			}()
		}
		wg.Wait()
		close(seen)
		unique := map[string]bool{}
		for inv := range seen {
			unique[inv] = true
		}
		if len(unique) != 5 || f.store.OrderCount() != 5 {
			t.Fatalf("expected 5 distinct invoices, got %v", unique)
		}
	})
}

func TestOrderUseCase_ApplyPlacedOrder_Idempotent(t *testing.T) {
	f := newFixture(t)
	f.putCustomer(nil)
	order := entities.Order{InvoiceNumber: "VRB77", CustomerID: "cus-1", Paid: entities.Paid{Total: 1200}, CompletionDate: fixedNow}

	applied, err := f.orders.ApplyPlacedOrder(context.Background(), order)
	if err != nil || !applied {
		t.Fatalf("expected first update to apply, got %v %v", applied, err)
	}
	applied, err = f.orders.ApplyPlacedOrder(context.Background(), order)
	if err != nil || applied {
		t.Fatalf("expected second update to be a no-op, got %v %v", applied, err)
	}
	c := f.customer(t, "cus-1")
	if c.TotalOrders != 1 || c.TotalValue != 1200 || len(c.Orders) != 1 {
		t.Fatalf("unexpected aggregates: %+v", c)
	}
	if c.LastInteraction == nil || !c.LastInteraction.Equal(fixedNow) {
		t.Fatalf("expected last interaction stamp, got %v", c.LastInteraction)
	}
}

func TestComposeOrderEvent(t *testing.T) {
	order := entities.Order{
		ID:            "o-1",
		InvoiceNumber: "VRB5",
		CustomerID:    "cus-1",
		OrderType:     "Flex",
		Items: []entities.CartItem{
			{ID: "A", Name: "Bar", Quantity: 2, Price: 1000, TotalPrice: 2000, Metadata: entities.CartItemMetadata{Categories: []string{"bars"}}},
			{ID: "K", Quantity: 1, Metadata: entities.CartItemMetadata{Categories: []string{"bars"}, Fulfillment: []entities.FulfillmentItem{{SKU: "K1"}, {SKU: "K2"}}}},
		},
		Discounts: []entities.Discount{{Code: "HALF", DiscountType: entities.DiscountTypeMult, Amount: 1000}},
		Paid:      entities.Paid{Subtotal: 2000, Total: 1000, DiscountTotal: 1000},
	}
	ev := composeOrderEvent(order, map[string]any{"orderPath": "Flex Order"})
	if ev.Type != "order" || ev.Action != "placed" || ev.Customer.ID != "cus-1" {
		t.Fatalf("unexpected event header: %+v", ev)
	}
	if ev.Properties["paid_total"] != 10.0 || ev.Properties["orderPath"] != "Flex Order" {
		t.Fatalf("unexpected properties: %+v", ev.Properties)
	}
	cats := ev.Properties["itemCategories"].([]string)
	if len(cats) != 1 {
		t.Fatalf("expected categories to be deduplicated, got %v", cats)
	}
	ful := ev.Properties["fulfillmentSkus"].([]string)
	if len(ful) != 3 || ful[0] != "A" || ful[1] != "K1" {
		t.Fatalf("unexpected fulfillment skus: %v", ful)
	}
	if got := orderChatMessage(order); got != "Order VRB5 -  . Flex. $10.00" {
		t.Fatalf("unexpected chat message: %q", got)
	}
}

type publisherFunc func(ctx context.Context, ev entities.DomainEvent) error

func (f publisherFunc) Publish(ctx context.Context, ev entities.DomainEvent) error { return f(ctx, ev) }
