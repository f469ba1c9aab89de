package memory

import (
	"context"
	"flex_billing/internal/domain/entities"
	"flex_billing/internal/usecase/interfaces"
	"fmt"
	"slices"
)

type OrderRepository struct {
	s *Store
}

var _ interfaces.IOrderRepository = (*OrderRepository)(nil)

func (r *OrderRepository) GetByInvoiceNumber(_ context.Context, invoiceNumber string) (entities.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	o, ok := r.s.orders[invoiceNumber]
	if !ok {
		return entities.Order{}, nil
	}
	return cloneOrder(o), nil
}

func (r *OrderRepository) AppendRefund(_ context.Context, invoiceNumber string, refund entities.Refund) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.orders[invoiceNumber]
	if !ok {
		return fmt.Errorf("memory: order %s not found", invoiceNumber)
	}
	o.Refunds = append(slices.Clone(o.Refunds), refund)
	r.s.orders[invoiceNumber] = o
	return nil
}

func (r *OrderRepository) CancelShipment(_ context.Context, invoiceNumber string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.orders[invoiceNumber]
	if !ok || !o.Shipping.Status.Cancelable() {
		return false, nil
	}
	o.Shipping.Status = entities.ShippingStatusCanceled
	r.s.orders[invoiceNumber] = o
	return true, nil
}

// Transactor buffers order placement writes and applies them atomically
// under the store lock.
type Transactor struct {
	s *Store
}

var _ interfaces.ITransactor = (*Transactor)(nil)

func (t *Transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context, tx interfaces.IOrderTransaction) error) error {
	tx := &transaction{s: t.s, debits: map[string]int64{}}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	return tx.commit()
}

type transaction struct {
	s      *Store
	orders []entities.Order
	debits map[string]int64
}

func (tx *transaction) NextInvoiceNumber(context.Context) (int64, error) {
	tx.s.mu.Lock()
	defer tx.s.mu.Unlock()
	tx.s.invoice++
	return tx.s.invoice, nil
}

func (tx *transaction) InsertOrder(_ context.Context, order entities.Order) (entities.Order, error) {
	tx.orders = append(tx.orders, cloneOrder(order))
	return order, nil
}

func (tx *transaction) DebitCredit(_ context.Context, customerID string, amount int64) error {
	tx.debits[customerID] += amount
	return nil
}

func (tx *transaction) AttachCharge(_ context.Context, invoiceNumber, chargeID string) error {
	for i := range tx.orders {
		if tx.orders[i].InvoiceNumber == invoiceNumber {
			tx.orders[i].ChargeID = chargeID
			return nil
		}
	}
	return fmt.Errorf("memory: order %s not in transaction", invoiceNumber)
}

func (tx *transaction) commit() error {
	if tx.s.BeforeCommit != nil {
		if err := tx.s.BeforeCommit(); err != nil {
			return err
		}
	}
	tx.s.mu.Lock()
	defer tx.s.mu.Unlock()
	for _, o := range tx.orders {
		if _, exists := tx.s.orders[o.InvoiceNumber]; exists {
			return ErrDuplicateInvoice
		}
	}
	for id, amount := range tx.debits {
		c, ok := tx.s.customers[id]
		if !ok {
			return ErrCustomerMissing
		}
		if c.Credit < amount {
			return ErrInsufficientCredit
		}
	}
	for _, o := range tx.orders {
		tx.s.orders[o.InvoiceNumber] = o
	}
	for id, amount := range tx.debits {
		c := tx.s.customers[id]
		c.Credit -= amount
		tx.s.customers[id] = c
	}
	return nil
}
