package repository

import (
	"context"
	"fmt"
	"strconv"

	"flex_billing/internal/domain/entities"
	"flex_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName   = "orders"
	defaultCountersTableName = "counters"
	invoiceCounterName       = "invoice_number"
)

// OrderDynamoRepository persists Order documents in DynamoDB.
//
// Table requirements:
//   - PK: invoice_number (string)
type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) key(invoiceNumber string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{"invoice_number": str(invoiceNumber)}
}

func (r *OrderDynamoRepository) GetByInvoiceNumber(ctx context.Context, invoiceNumber string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            r.key(invoiceNumber),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}
	var o entities.Order
	if err := unmarshalItem(out.Item, &o); err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) AppendRefund(ctx context.Context, invoiceNumber string, refund entities.Refund) error {
	av, err := marshalValue(refund)
	if err != nil {
		return err
	}
	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                aws.String(r.tableName),
		Key:                      r.key(invoiceNumber),
		UpdateExpression:         aws.String("SET #refunds = list_append(if_not_exists(#refunds, :empty), :refund)"),
		ConditionExpression:      aws.String("attribute_exists(#inv)"),
		ExpressionAttributeNames: map[string]string{"#refunds": "refunds", "#inv": "invoice_number"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":empty":  &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":refund": &types.AttributeValueMemberL{Value: []types.AttributeValue{av}},
		},
	})
	if isConditionFailed(err) {
		return fmt.Errorf("order %s not found", invoiceNumber)
	}
	return err
}

func (r *OrderDynamoRepository) CancelShipment(ctx context.Context, invoiceNumber string) (bool, error) {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                aws.String(r.tableName),
		Key:                      r.key(invoiceNumber),
		UpdateExpression:         aws.String("SET #shipping.#status = :canceled"),
		ConditionExpression:      aws.String("#shipping.#status IN (:pending, :hold)"),
		ExpressionAttributeNames: map[string]string{"#shipping": "shipping", "#status": "status"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":canceled": str(string(entities.ShippingStatusCanceled)),
			":pending":  str(string(entities.ShippingStatusPending)),
			":hold":     str(string(entities.ShippingStatusOnHold)),
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// DynamoTransactor commits an order placement with a single TransactWriteItems call.
//
// The invoice counter is incremented outside the transaction, so an aborted
// placement leaves a gap in the sequence.
type DynamoTransactor struct {
	ddb            *dynamodb.Client
	ordersTable    string
	customersTable string
	countersTable  string
}

var _ interfaces.ITransactor = (*DynamoTransactor)(nil)

func NewDynamoTransactor(ddb *dynamodb.Client) *DynamoTransactor {
	return &DynamoTransactor{
		ddb:            ddb,
		ordersTable:    getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
		customersTable: getenvDefault("CUSTOMERS_TABLE", defaultCustomersTableName),
		countersTable:  getenvDefault("COUNTERS_TABLE", defaultCountersTableName),
	}
}

func (t *DynamoTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context, tx interfaces.IOrderTransaction) error) error {
	tx := &dynamoTransaction{t: t}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	return tx.commit(ctx)
}

type dynamoTransaction struct {
	t      *DynamoTransactor
	orders []entities.Order
	debits []types.TransactWriteItem
}

func (tx *dynamoTransaction) NextInvoiceNumber(ctx context.Context) (int64, error) {
	out, err := tx.t.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(tx.t.countersTable),
		Key:                       map[string]types.AttributeValue{"name": str(invoiceCounterName)},
		UpdateExpression:          aws.String("ADD #v :one"),
		ExpressionAttributeNames:  map[string]string{"#v": "value"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":one": num(1)},
		ReturnValues:              types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}
	v, ok := out.Attributes["value"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("invoice counter returned no value")
	}
	return strconv.ParseInt(v.Value, 10, 64)
}

func (tx *dynamoTransaction) InsertOrder(_ context.Context, order entities.Order) (entities.Order, error) {
	tx.orders = append(tx.orders, order)
	return order, nil
}

func (tx *dynamoTransaction) DebitCredit(_ context.Context, customerID string, amount int64) error {
	tx.debits = append(tx.debits, types.TransactWriteItem{
		Update: &types.Update{
			TableName:                aws.String(tx.t.customersTable),
			Key:                      map[string]types.AttributeValue{"id": str(customerID)},
			UpdateExpression:         aws.String("SET #credit = #credit - :amount"),
			ConditionExpression:      aws.String("#credit >= :amount"),
			ExpressionAttributeNames: map[string]string{"#credit": "credit"},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":amount": num(amount),
			},
		},
	})
	return nil
}

func (tx *dynamoTransaction) AttachCharge(_ context.Context, invoiceNumber, chargeID string) error {
	for i := range tx.orders {
		if tx.orders[i].InvoiceNumber == invoiceNumber {
			tx.orders[i].ChargeID = chargeID
			return nil
		}
	}
	return fmt.Errorf("order %s not in transaction", invoiceNumber)
}

func (tx *dynamoTransaction) commit(ctx context.Context) error {
	items := make([]types.TransactWriteItem, 0, len(tx.orders)+len(tx.debits))
	for _, o := range tx.orders {
		av, err := marshalItem(o)
		if err != nil {
			return err
		}
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{
				TableName:                aws.String(tx.t.ordersTable),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_not_exists(#inv)"),
				ExpressionAttributeNames: map[string]string{"#inv": "invoice_number"},
			},
		})
	}
	items = append(items, tx.debits...)
	if len(items) == 0 {
		return nil
	}
	_, err := tx.t.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	return err
}
