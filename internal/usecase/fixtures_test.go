package usecase

import (
	"testing"
	"time"

	"flex_billing/internal/adapter/persistence/memory"
	"flex_billing/internal/domain/entities"
	mock_interfaces "flex_billing/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, time.March, 10, 9, 30, 0, 0, time.UTC)

type fixture struct {
	store    *memory.Store
	gateway  *mock_interfaces.MockIPaymentGateway
	events   *mock_interfaces.MockIEventPublisher
	notifier *Notifier
	policy   Config
	orders   *OrderUseCase
	refunds  *RefundUseCase
	plans    *FlexPlanUseCase
	trials   *TrialUseCase
	sched    *SchedulerUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		store:   memory.New(),
		gateway: mock_interfaces.NewMockIPaymentGateway(ctrl),
		events:  mock_interfaces.NewMockIEventPublisher(ctrl),
		policy:  DefaultConfig(),
	}
	f.events.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.notifier = NewNotifier(f.events, nil, nil, time.Second)
	t.Cleanup(f.notifier.Wait)

	clock := func() time.Time { return fixedNow }
	resolver := NewProductResolver(f.store.Products(), nil)
	carts := NewCartBuilder(f.store.Customers(), resolver, NewDiscountEngine(resolver, f.policy.Discounts), f.policy)

	f.orders = NewOrderUseCase(f.store.Customers(), f.store.Transactor(), carts, f.gateway, f.notifier, f.policy)
	f.orders.now = clock
	f.refunds = NewRefundUseCase(f.store.Orders(), f.store.Customers(), f.gateway)
	f.refunds.now = clock
	f.plans = NewFlexPlanUseCase(f.store.FlexPlans(), f.store.Customers(), f.orders, f.refunds, f.notifier, f.policy)
	f.plans.now = clock
	f.trials = NewTrialUseCase(f.store.Customers(), f.orders, f.plans, f.notifier, f.policy)
	f.trials.now = clock
	f.sched = NewSchedulerUseCase(f.store.FlexPlans(), f.store.Customers(), f.plans, f.trials, f.policy)
	f.sched.now = clock

	f.store.SetInvoiceCounter(1000)
	f.store.PutProduct(entities.Product{ID: "p-a", SKU: "A", Name: "Energy Bar", Price: entities.Price{Value: 1000, Original: 1000}})
	f.store.PutProduct(entities.Product{ID: "p-b", SKU: "B", Name: "Bundle", Price: entities.Price{Value: 1500, Original: 2000}})
	f.store.PutProduct(entities.Product{ID: "p-s", SKU: "sampler-pouch", Name: "Sampler", Price: entities.Price{Value: 500, Original: 500}, FreeShipping: true})
	f.store.PutProduct(entities.Product{ID: "p-psl", SKU: "ps-pouch", Name: "PSL Pouch", Price: entities.Price{Value: 1200, Original: 1200}})
	return f
}

func (f *fixture) putCustomer(mut func(c *entities.Customer)) entities.Customer {
	c := entities.Customer{
		ID:                "cus-1",
		FirstName:         "Ada",
		LastName:          "Byron",
		Email:             "ada@example.com",
		PaymentCustomerID: "tok-1",
		ShippingAddress:   entities.Address{Address1: "1 Main St", City: "Boston", State: "MA", Zip: "02110"},
	}
	if mut != nil {
		mut(&c)
	}
	f.store.PutCustomer(c)
	return c
}

func (f *fixture) putPlan(mut func(p *entities.FlexPlan)) entities.FlexPlan {
	next := fixedNow.Add(-time.Hour)
	p := entities.FlexPlan{
		ID:         "plan-1",
		CustomerID: "cus-1",
		Email:      "ada@example.com",
		FirstName:  "Ada",
		Items:      []entities.CartItem{{ID: "A", Quantity: 2, Price: 1000, TotalPrice: 2000}},
		Discounts:  []entities.Discount{},
		Status:     entities.FlexPlanStatusActive,
		NextOrder:  &next,
		Started:    fixedNow.AddDate(0, -2, 0),
		TotalPrice: 2000,
	}
	if mut != nil {
		mut(&p)
	}
	f.store.PutPlan(p)
	return p
}

func (f *fixture) customer(t *testing.T, id string) entities.Customer {
	t.Helper()
	c, err := f.store.Customers().GetByID(t.Context(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c
}

func (f *fixture) plan(t *testing.T, id string) entities.FlexPlan {
	t.Helper()
	p, err := f.store.FlexPlans().GetByID(t.Context(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return p
}
