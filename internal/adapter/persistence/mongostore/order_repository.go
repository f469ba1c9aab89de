package mongostore

import (
	"context"
	"errors"
	"fmt"

	"flex_billing/internal/domain/entities"
	"flex_billing/internal/usecase/interfaces"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

var ErrInsufficientCredit = errors.New("mongo: insufficient customer credit")

type OrderRepository struct {
	coll *mongo.Collection
}

var _ interfaces.IOrderRepository = (*OrderRepository)(nil)

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{coll: db.Collection(ordersCollection)}
}

func (r *OrderRepository) GetByInvoiceNumber(ctx context.Context, invoiceNumber string) (entities.Order, error) {
	var o entities.Order
	err := r.coll.FindOne(ctx, bson.M{"invoice_number": invoiceNumber}).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return entities.Order{}, nil
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}
	return o, nil
}

func (r *OrderRepository) AppendRefund(ctx context.Context, invoiceNumber string, refund entities.Refund) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"invoice_number": invoiceNumber}, bson.M{"$push": bson.M{"refunds": refund}})
	if err != nil {
		return fmt.Errorf("failed to append refund: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("order %s not found", invoiceNumber)
	}
	return nil
}

func (r *OrderRepository) CancelShipment(ctx context.Context, invoiceNumber string) (bool, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{
			"invoice_number":  invoiceNumber,
			"shipping.status": bson.M{"$in": []entities.ShippingStatus{entities.ShippingStatusPending, entities.ShippingStatusOnHold}},
		},
		bson.M{"$set": bson.M{"shipping.status": entities.ShippingStatusCanceled}})
	if err != nil {
		return false, err
	}
	return res.ModifiedCount == 1, nil
}

// Transactor runs order placement in a manually driven multi-document
// transaction. The driver's WithTransaction helper is not used because it
// re-runs the callback on transient errors, and the callback charges the card.
type Transactor struct {
	client *mongo.Client
	db     *mongo.Database
}

var _ interfaces.ITransactor = (*Transactor)(nil)

func NewTransactor(client *mongo.Client, db *mongo.Database) *Transactor {
	return &Transactor{client: client, db: db}
}

func (t *Transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context, tx interfaces.IOrderTransaction) error) error {
	sess, err := t.client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	detached := context.WithoutCancel(ctx)
	defer sess.EndSession(detached)

	if err := sess.StartTransaction(); err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	tx := &transaction{outer: ctx, db: t.db}
	if err := fn(mongo.NewSessionContext(ctx, sess), tx); err != nil {
		_ = sess.AbortTransaction(detached)
		return err
	}
	return sess.CommitTransaction(detached)
}

type transaction struct {
	// outer has no session attached; the invoice counter is incremented
	// outside the transaction so concurrent placements do not conflict on it.
	outer context.Context
	db    *mongo.Database
}

func (tx *transaction) NextInvoiceNumber(context.Context) (int64, error) {
	var counter struct {
		Value int64 `json:"value"`
	}
	err := tx.db.Collection(countersCollection).FindOneAndUpdate(tx.outer,
		bson.M{"name": "invoice_number"},
		bson.M{"$inc": bson.M{"value": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("failed to increment invoice counter: %w", err)
	}
	return counter.Value, nil
}

func (tx *transaction) InsertOrder(ctx context.Context, order entities.Order) (entities.Order, error) {
	if _, err := tx.db.Collection(ordersCollection).InsertOne(ctx, order); err != nil {
		return entities.Order{}, fmt.Errorf("failed to insert order: %w", err)
	}
	return order, nil
}

func (tx *transaction) DebitCredit(ctx context.Context, customerID string, amount int64) error {
	res, err := tx.db.Collection(customersCollection).UpdateOne(ctx,
		bson.M{"id": customerID, "credit": bson.M{"$gte": amount}},
		bson.M{"$inc": bson.M{"credit": -amount}})
	if err != nil {
		return fmt.Errorf("failed to debit credit: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrInsufficientCredit
	}
	return nil
}

func (tx *transaction) AttachCharge(ctx context.Context, invoiceNumber, chargeID string) error {
	_, err := tx.db.Collection(ordersCollection).UpdateOne(ctx,
		bson.M{"invoice_number": invoiceNumber},
		bson.M{"$set": bson.M{"charge_id": chargeID}})
	return err
}
