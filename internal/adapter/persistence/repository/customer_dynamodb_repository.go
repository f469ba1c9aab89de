package repository

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"flex_billing/internal/domain/entities"
	"flex_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCustomersTableName  = "customers"
	customersTrialDueIndex     = "customer_type-start_flex_at-index"
	removeFlexPlanMaxAttempts  = 3
	customerStartFlexAttribute = "start_flex_at"
)

// CustomerDynamoRepository persists Customer documents in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: customer_type-start_flex_at-index (PK: customer_type, SK: start_flex_at number)
//
// Besides the document fields, items carry start_flex_at (epoch seconds of
// trial.start_flex) and order_invoices (invoice numbers already applied).
type CustomerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICustomerRepository = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(ddb *dynamodb.Client) *CustomerDynamoRepository {
	return &CustomerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CUSTOMERS_TABLE", defaultCustomersTableName),
	}
}

func (r *CustomerDynamoRepository) key(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{"id": str(id)}
}

func (r *CustomerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            r.key(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Customer{}, err
	}
	if len(out.Item) == 0 {
		return entities.Customer{}, nil
	}
	var c entities.Customer
	if err := unmarshalItem(out.Item, &c); err != nil {
		return entities.Customer{}, err
	}
	return c, nil
}

// update runs a conditional UpdateItem returning the new document; a failed
// condition yields a zero Customer.
func (r *CustomerDynamoRepository) update(ctx context.Context, in *dynamodb.UpdateItemInput) (entities.Customer, error) {
	in.TableName = aws.String(r.tableName)
	in.ReturnValues = types.ReturnValueAllNew
	out, err := r.ddb.UpdateItem(ctx, in)
	if err != nil {
		if isConditionFailed(err) {
			return entities.Customer{}, nil
		}
		return entities.Customer{}, err
	}
	var c entities.Customer
	if err := unmarshalItem(out.Attributes, &c); err != nil {
		return entities.Customer{}, err
	}
	return c, nil
}

func (r *CustomerDynamoRepository) ApplyPlacedOrder(ctx context.Context, customerID string, ref entities.OrderRef, total int64, at time.Time) (bool, error) {
	refAV, err := marshalValue(ref)
	if err != nil {
		return false, err
	}
	c, err := r.update(ctx, &dynamodb.UpdateItemInput{
		Key: r.key(customerID),
		UpdateExpression: aws.String("SET #to = if_not_exists(#to, :zero) + :one, #tv = if_not_exists(#tv, :zero) + :total, " +
			"#orders = list_append(if_not_exists(#orders, :empty), :ref), " +
			"#inv = list_append(if_not_exists(#inv, :empty), :invl), #li = :at"),
		ConditionExpression: aws.String("attribute_exists(#id) AND NOT contains(#inv, :invs)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id", "#to": "total_orders", "#tv": "total_value", "#orders": "orders",
			"#inv": "order_invoices", "#li": "last_interaction",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":zero":  num(0),
			":one":   num(1),
			":total": num(total),
			":empty": &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":ref":   &types.AttributeValueMemberL{Value: []types.AttributeValue{refAV}},
			":invl":  &types.AttributeValueMemberL{Value: []types.AttributeValue{str(ref.InvoiceNumber)}},
			":invs":  str(ref.InvoiceNumber),
			":at":    timeValue(at),
		},
	})
	if err != nil {
		return false, err
	}
	return c.ID != "", nil
}

func (r *CustomerDynamoRepository) AdjustAggregates(ctx context.Context, customerID string, valueDelta int64, ordersDelta int) error {
	_, err := r.update(ctx, &dynamodb.UpdateItemInput{
		Key:                      r.key(customerID),
		UpdateExpression:         aws.String("ADD #tv :v, #to :o"),
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id", "#tv": "total_value", "#to": "total_orders"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": num(valueDelta),
			":o": num(int64(ordersDelta)),
		},
	})
	return err
}

func (r *CustomerDynamoRepository) IncrementFailedFlex(ctx context.Context, customerID string) (int, error) {
	c, err := r.update(ctx, &dynamodb.UpdateItemInput{
		Key:                       r.key(customerID),
		UpdateExpression:          aws.String("ADD #ff :one"),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames:  map[string]string{"#id": "id", "#ff": "failed_flex"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":one": num(1)},
	})
	if err != nil {
		return 0, err
	}
	if c.ID == "" {
		return 0, fmt.Errorf("customer %s not found", customerID)
	}
	return c.FailedFlex, nil
}

func (r *CustomerDynamoRepository) ResetFailedFlex(ctx context.Context, customerID string) error {
	_, err := r.update(ctx, &dynamodb.UpdateItemInput{
		Key:                       r.key(customerID),
		UpdateExpression:          aws.String("SET #ff = :zero"),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames:  map[string]string{"#id": "id", "#ff": "failed_flex"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":zero": num(0)},
	})
	return err
}

func (r *CustomerDynamoRepository) AddFlexPlan(ctx context.Context, customerID, planID string) error {
	c, err := r.update(ctx, &dynamodb.UpdateItemInput{
		Key:                      r.key(customerID),
		UpdateExpression:         aws.String("SET #fp = list_append(if_not_exists(#fp, :empty), :plan)"),
		ConditionExpression:      aws.String("attribute_exists(#id) AND NOT contains(#fp, :id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id", "#fp": "flex_plans"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":empty": &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":plan":  &types.AttributeValueMemberL{Value: []types.AttributeValue{str(planID)}},
			":id":    str(planID),
		},
	})
	if err != nil {
		return err
	}
	if c.ID == "" {
		current, err := r.GetByID(ctx, customerID)
		if err != nil {
			return err
		}
		if current.ID == "" {
			return fmt.Errorf("customer %s not found", customerID)
		}
	}
	return nil
}

// RemoveFlexPlan removes the plan by list index, guarded by the element value
// so a concurrent list change makes the write fail and retry.
func (r *CustomerDynamoRepository) RemoveFlexPlan(ctx context.Context, customerID, planID string) (entities.Customer, error) {
	for attempt := 0; attempt < removeFlexPlanMaxAttempts; attempt++ {
		current, err := r.GetByID(ctx, customerID)
		if err != nil {
			return entities.Customer{}, err
		}
		if current.ID == "" {
			return entities.Customer{}, fmt.Errorf("customer %s not found", customerID)
		}
		idx := slices.Index(current.FlexPlans, planID)
		if idx < 0 {
			return current, nil
		}
		path := "#fp[" + strconv.Itoa(idx) + "]"
		c, err := r.update(ctx, &dynamodb.UpdateItemInput{
			Key:                       r.key(customerID),
			UpdateExpression:          aws.String("REMOVE " + path),
			ConditionExpression:       aws.String(path + " = :id"),
			ExpressionAttributeNames:  map[string]string{"#fp": "flex_plans"},
			ExpressionAttributeValues: map[string]types.AttributeValue{":id": str(planID)},
		})
		if err != nil {
			return entities.Customer{}, err
		}
		if c.ID != "" {
			return c, nil
		}
	}
	return entities.Customer{}, fmt.Errorf("customer %s flex plans changed concurrently", customerID)
}

var trialMarkerAttributes = map[entities.TrialMarker]string{
	entities.MarkerStartFlex:     "start_flex",
	entities.MarkerFlexFollowup:  "flex_followup",
	entities.MarkerNoFollowup:    "no_followup",
	entities.MarkerConvertedFlex: "converted_flex",
}

func (r *CustomerDynamoRepository) UpdateTrialState(ctx context.Context, customerID string, update entities.TrialStateUpdate) (entities.Customer, error) {
	var sets, removes []string
	names := map[string]string{"#id": "id", "#trial": "trial"}
	values := map[string]types.AttributeValue{}

	setMarker := func(m entities.TrialMarker, t *time.Time) {
		if t == nil {
			return
		}
		attr := trialMarkerAttributes[m]
		names["#"+attr] = attr
		values[":"+attr] = timeValue(*t)
		sets = append(sets, "#trial.#"+attr+" = :"+attr)
		if m == entities.MarkerStartFlex {
			sets = append(sets, customerStartFlexAttribute+" = :sfa")
			values[":sfa"] = epoch(*t)
		}
	}
	setMarker(entities.MarkerStartFlex, update.StartFlex)
	setMarker(entities.MarkerFlexFollowup, update.FlexFollowup)
	setMarker(entities.MarkerNoFollowup, update.NoFollowup)
	setMarker(entities.MarkerConvertedFlex, update.ConvertedFlex)

	for _, m := range update.Clear {
		if m == entities.MarkerRushed {
			names["#rushed"] = "rushed"
			values[":false"] = &types.AttributeValueMemberBOOL{Value: false}
			sets = append(sets, "#rushed = :false")
			continue
		}
		attr, ok := trialMarkerAttributes[m]
		if !ok || values[":"+attr] != nil {
			continue
		}
		names["#"+attr] = attr
		removes = append(removes, "#trial.#"+attr)
		if m == entities.MarkerStartFlex {
			removes = append(removes, customerStartFlexAttribute)
		}
	}
	if update.IncFailedStart {
		names["#fs"] = "failed_start"
		values[":zero"] = num(0)
		values[":one"] = num(1)
		sets = append(sets, "#trial.#fs = if_not_exists(#trial.#fs, :zero) + :one")
	}
	if len(sets) == 0 && len(removes) == 0 {
		return r.GetByID(ctx, customerID)
	}

	var expr strings.Builder
	if len(sets) > 0 {
		expr.WriteString("SET " + strings.Join(sets, ", "))
	}
	if len(removes) > 0 {
		if expr.Len() > 0 {
			expr.WriteString(" ")
		}
		expr.WriteString("REMOVE " + strings.Join(removes, ", "))
	}
	in := &dynamodb.UpdateItemInput{
		Key:                      r.key(customerID),
		UpdateExpression:         aws.String(expr.String()),
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: names,
	}
	if len(values) > 0 {
		in.ExpressionAttributeValues = values
	}
	return r.update(ctx, in)
}

func (r *CustomerDynamoRepository) FindDueTrialConversions(ctx context.Context, now time.Time, limit int) ([]string, error) {
	var (
		ids  []string
		last map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:                aws.String(r.tableName),
			IndexName:                aws.String(customersTrialDueIndex),
			KeyConditionExpression:   aws.String("#ct = :ct AND #sfa < :now"),
			ProjectionExpression:     aws.String("#id"),
			ExpressionAttributeNames: map[string]string{"#ct": "customer_type", "#sfa": customerStartFlexAttribute, "#id": "id"},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":ct":  str(entities.CustomerTypeTrialToFlex),
				":now": epoch(now),
			},
			ExclusiveStartKey: last,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			if v, ok := raw["id"].(*types.AttributeValueMemberS); ok {
				ids = append(ids, v.Value)
			}
			if limit > 0 && len(ids) == limit {
				return ids, nil
			}
		}
		if len(out.LastEvaluatedKey) == 0 {
			return ids, nil
		}
		last = out.LastEvaluatedKey
	}
}

func (r *CustomerDynamoRepository) ClaimTrialConversion(ctx context.Context, customerID string, now time.Time) (bool, error) {
	c, err := r.update(ctx, &dynamodb.UpdateItemInput{
		Key:                 r.key(customerID),
		UpdateExpression:    aws.String("REMOVE #trial.#sf, #sfa"),
		ConditionExpression: aws.String("#ct = :ct AND #sfa < :now"),
		ExpressionAttributeNames: map[string]string{
			"#trial": "trial", "#sf": "start_flex", "#sfa": customerStartFlexAttribute, "#ct": "customer_type",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ct":  str(entities.CustomerTypeTrialToFlex),
			":now": epoch(now),
		},
	})
	if err != nil {
		return false, err
	}
	return c.ID != "", nil
}
