package interfaces

import (
	"context"
	"flex_billing/internal/domain/entities"
)

// IOrderRepository abstracts persistence for orders outside of placement.
// GetByInvoiceNumber returns a zero Order when the invoice does not exist.

type IOrderRepository interface {
	GetByInvoiceNumber(ctx context.Context, invoiceNumber string) (entities.Order, error)
	AppendRefund(ctx context.Context, invoiceNumber string, refund entities.Refund) error
	// CancelShipment sets the shipping status to Canceled only when it is
	// Pending or On Hold. It reports whether a document was modified.
	CancelShipment(ctx context.Context, invoiceNumber string) (bool, error)
}

// ITransactor runs order placement inside one store transaction.
//
// fn's writes are committed only when fn returns nil; any error aborts them all.
type ITransactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context, tx IOrderTransaction) error) error
}

// IOrderTransaction is the set of writes an order placement performs atomically.
//
// NextInvoiceNumber is an atomic increment on the shared counter document. On
// stores without transactional reads it is applied immediately, so an aborted
// placement may leave a gap in the sequence but never a duplicate.
type IOrderTransaction interface {
	NextInvoiceNumber(ctx context.Context) (int64, error)
	InsertOrder(ctx context.Context, order entities.Order) (entities.Order, error)
	DebitCredit(ctx context.Context, customerID string, amount int64) error
	AttachCharge(ctx context.Context, invoiceNumber, chargeID string) error
}
