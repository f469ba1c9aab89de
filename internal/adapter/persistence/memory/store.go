// Package memory is an in-process store backing every repository interface.
// It is used for local runs (STORE_DRIVER=memory) and by use case tests.
package memory

import (
	"errors"
	"flex_billing/internal/domain/entities"
	"slices"
	"sync"
)

var (
	ErrDuplicateInvoice   = errors.New("memory: duplicate invoice number")
	ErrInsufficientCredit = errors.New("memory: insufficient customer credit")
	ErrCustomerMissing    = errors.New("memory: customer not found")
)

type Store struct {
	mu sync.RWMutex

	products  map[string]entities.Product
	customers map[string]entities.Customer
	orders    map[string]entities.Order
	plans     map[string]entities.FlexPlan
	invoice   int64

	// BeforeCommit, when set, runs before a transaction is applied; a non-nil
	// error aborts the commit.
	BeforeCommit func() error
}

func New() *Store {
	return &Store{
		products:  make(map[string]entities.Product),
		customers: make(map[string]entities.Customer),
		orders:    make(map[string]entities.Order),
		plans:     make(map[string]entities.FlexPlan),
	}
}

// SetInvoiceCounter sets the last allocated invoice number.
func (s *Store) SetInvoiceCounter(n int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invoice = n
}

func (s *Store) PutProduct(p entities.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[p.SKU] = p
}

func (s *Store) PutCustomer(c entities.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers[c.ID] = cloneCustomer(c)
}

func (s *Store) PutPlan(p entities.FlexPlan) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plans[p.ID] = clonePlan(p)
}

func (s *Store) PutOrder(o entities.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[o.InvoiceNumber] = cloneOrder(o)
}

// OrderCount returns the number of committed orders.
func (s *Store) OrderCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}

func (s *Store) Products() *ProductRepository   { return &ProductRepository{s: s} }
func (s *Store) Customers() *CustomerRepository { return &CustomerRepository{s: s} }
func (s *Store) Orders() *OrderRepository       { return &OrderRepository{s: s} }
func (s *Store) FlexPlans() *FlexPlanRepository { return &FlexPlanRepository{s: s} }
func (s *Store) Transactor() *Transactor        { return &Transactor{s: s} }

func cloneCustomer(c entities.Customer) entities.Customer {
	c.Orders = slices.Clone(c.Orders)
	c.FlexPlans = slices.Clone(c.FlexPlans)
	c.FlexDefault = slices.Clone(c.FlexDefault)
	return c
}

func clonePlan(p entities.FlexPlan) entities.FlexPlan {
	p.Items = slices.Clone(p.Items)
	p.Discounts = slices.Clone(p.Discounts)
	p.Orders = slices.Clone(p.Orders)
	return p
}

func cloneOrder(o entities.Order) entities.Order {
	o.Items = slices.Clone(o.Items)
	o.Discounts = slices.Clone(o.Discounts)
	o.Refunds = slices.Clone(o.Refunds)
	return o
}

func timePtr[T any](v T) *T { return &v }
