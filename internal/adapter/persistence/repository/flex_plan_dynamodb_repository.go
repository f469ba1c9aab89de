package repository

import (
	"context"
	"time"

	"flex_billing/internal/domain/entities"
	"flex_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultFlexPlansTableName = "flex_plans"
	flexPlansDueIndex         = "status-next_order_at-index"
	planNextOrderAttribute    = "next_order_at"
)

// flexPlanItem adds the index attributes kept next to the plan document.
type flexPlanItem struct {
	entities.FlexPlan
	NextOrderAt   *int64   `json:"next_order_at,omitempty"`
	OrderInvoices []string `json:"order_invoices"`
}

func toFlexPlanItem(p entities.FlexPlan) flexPlanItem {
	it := flexPlanItem{FlexPlan: p, OrderInvoices: make([]string, 0, len(p.Orders))}
	if p.NextOrder != nil {
		at := p.NextOrder.UTC().Unix()
		it.NextOrderAt = &at
	}
	for _, o := range p.Orders {
		it.OrderInvoices = append(it.OrderInvoices, o.InvoiceNumber)
	}
	return it
}

// FlexPlanDynamoRepository persists FlexPlan documents in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: status-next_order_at-index (PK: status, SK: next_order_at number)
type FlexPlanDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IFlexPlanRepository = (*FlexPlanDynamoRepository)(nil)

func NewFlexPlanDynamoRepository(ddb *dynamodb.Client) *FlexPlanDynamoRepository {
	return &FlexPlanDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("FLEX_PLANS_TABLE", defaultFlexPlansTableName),
	}
}

func (r *FlexPlanDynamoRepository) key(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{"id": str(id)}
}

func (r *FlexPlanDynamoRepository) GetByID(ctx context.Context, id string) (entities.FlexPlan, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            r.key(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.FlexPlan{}, err
	}
	if len(out.Item) == 0 {
		return entities.FlexPlan{}, nil
	}
	var p entities.FlexPlan
	if err := unmarshalItem(out.Item, &p); err != nil {
		return entities.FlexPlan{}, err
	}
	return p, nil
}

func (r *FlexPlanDynamoRepository) Create(ctx context.Context, plan entities.FlexPlan) (entities.FlexPlan, error) {
	av, err := marshalItem(toFlexPlanItem(plan))
	if err != nil {
		return entities.FlexPlan{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.FlexPlan{}, err
	}
	return plan, nil
}

func (r *FlexPlanDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       r.key(id),
	})
	return err
}

// update runs a conditional UpdateItem guarded by attribute_exists(id) and the
// optional extra condition. A failed condition yields a zero FlexPlan.
func (r *FlexPlanDynamoRepository) update(ctx context.Context, id, expr, cond string, names map[string]string, values map[string]types.AttributeValue) (entities.FlexPlan, error) {
	condition := "attribute_exists(#id)"
	if cond != "" {
		condition += " AND " + cond
	}
	names["#id"] = "id"
	in := &dynamodb.UpdateItemInput{
		TableName:                aws.String(r.tableName),
		Key:                      r.key(id),
		UpdateExpression:         aws.String(expr),
		ConditionExpression:      aws.String(condition),
		ExpressionAttributeNames: names,
		ReturnValues:             types.ReturnValueAllNew,
	}
	if len(values) > 0 {
		in.ExpressionAttributeValues = values
	}
	out, err := r.ddb.UpdateItem(ctx, in)
	if err != nil {
		if isConditionFailed(err) {
			return entities.FlexPlan{}, nil
		}
		return entities.FlexPlan{}, err
	}
	var p entities.FlexPlan
	if err := unmarshalItem(out.Attributes, &p); err != nil {
		return entities.FlexPlan{}, err
	}
	return p, nil
}

func (r *FlexPlanDynamoRepository) Pause(ctx context.Context, id string, at time.Time) (entities.FlexPlan, error) {
	return r.update(ctx, id,
		"SET #status = :paused, #paused_on = :at, #rushed = :false REMOVE #next_order, #next_order_at, #next_text",
		"",
		map[string]string{
			"#status": "status", "#paused_on": "paused_on", "#rushed": "rushed",
			"#next_order": "next_order", "#next_order_at": planNextOrderAttribute, "#next_text": "next_text",
		},
		map[string]types.AttributeValue{
			":paused": str(string(entities.FlexPlanStatusPaused)),
			":at":     timeValue(at),
			":false":  &types.AttributeValueMemberBOOL{Value: false},
		})
}

func (r *FlexPlanDynamoRepository) Resume(ctx context.Context, id string, at, nextText time.Time) (entities.FlexPlan, error) {
	return r.update(ctx, id,
		"SET #status = :active, #resumed_on = :at, #next_text = :nt REMOVE #next_order, #next_order_at",
		"#status <> :active",
		map[string]string{
			"#status": "status", "#resumed_on": "resumed_on", "#next_text": "next_text",
			"#next_order": "next_order", "#next_order_at": planNextOrderAttribute,
		},
		map[string]types.AttributeValue{
			":active": str(string(entities.FlexPlanStatusActive)),
			":at":     timeValue(at),
			":nt":     timeValue(nextText),
		})
}

func (r *FlexPlanDynamoRepository) Skip(ctx context.Context, id string, nextText time.Time) (entities.FlexPlan, error) {
	return r.update(ctx, id,
		"SET #status = :active, #next_text = :nt REMOVE #next_order, #next_order_at",
		"",
		map[string]string{
			"#status": "status", "#next_text": "next_text",
			"#next_order": "next_order", "#next_order_at": planNextOrderAttribute,
		},
		map[string]types.AttributeValue{
			":active": str(string(entities.FlexPlanStatusActive)),
			":nt":     timeValue(nextText),
		})
}

func (r *FlexPlanDynamoRepository) RecordOrder(ctx context.Context, id string, rec entities.PlanOrderRecord) (entities.FlexPlan, error) {
	refAV, err := marshalValue(rec.Order)
	if err != nil {
		return entities.FlexPlan{}, err
	}
	discounts := rec.FlexDiscounts
	if discounts == nil {
		discounts = []entities.Discount{}
	}
	discountsAV, err := marshalValue(discounts)
	if err != nil {
		return entities.FlexPlan{}, err
	}
	return r.update(ctx, id,
		"SET #to = #to + :one, #tv = #tv + :total, #tp = #tp + :adj, "+
			"#orders = list_append(if_not_exists(#orders, :empty), :ref), "+
			"#inv = list_append(if_not_exists(#inv, :empty), :invl), "+
			"#discounts = :discounts, #next_text = :nt, #rushed = :false "+
			"REMOVE #next_order, #next_order_at",
		"NOT contains(#inv, :invs)",
		map[string]string{
			"#to": "total_orders", "#tv": "total_value", "#tp": "total_price", "#orders": "orders",
			"#inv": "order_invoices", "#discounts": "discounts", "#next_text": "next_text", "#rushed": "rushed",
			"#next_order": "next_order", "#next_order_at": planNextOrderAttribute,
		},
		map[string]types.AttributeValue{
			":one":       num(1),
			":total":     num(rec.Total),
			":adj":       num(rec.PriceAdjustment),
			":empty":     &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":ref":       &types.AttributeValueMemberL{Value: []types.AttributeValue{refAV}},
			":invl":      &types.AttributeValueMemberL{Value: []types.AttributeValue{str(rec.Order.InvoiceNumber)}},
			":invs":      str(rec.Order.InvoiceNumber),
			":discounts": discountsAV,
			":nt":        timeValue(rec.NextText),
			":false":     &types.AttributeValueMemberBOOL{Value: false},
		})
}

func (r *FlexPlanDynamoRepository) ScheduleRetry(ctx context.Context, id string, nextOrder time.Time) error {
	_, err := r.update(ctx, id,
		"SET #next_order = :no, #next_order_at = :noa, #rushed = :false REMOVE #next_text",
		"",
		map[string]string{
			"#next_order": "next_order", "#next_order_at": planNextOrderAttribute,
			"#rushed": "rushed", "#next_text": "next_text",
		},
		map[string]types.AttributeValue{
			":no":    timeValue(nextOrder),
			":noa":   epoch(nextOrder),
			":false": &types.AttributeValueMemberBOOL{Value: false},
		})
	return err
}

func (r *FlexPlanDynamoRepository) FindDue(ctx context.Context, now time.Time, limit int) ([]string, error) {
	var (
		ids  []string
		last map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:                aws.String(r.tableName),
			IndexName:                aws.String(flexPlansDueIndex),
			KeyConditionExpression:   aws.String("#status = :active AND #noa <= :now"),
			ProjectionExpression:     aws.String("#id"),
			ExpressionAttributeNames: map[string]string{"#status": "status", "#noa": planNextOrderAttribute, "#id": "id"},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":active": str(string(entities.FlexPlanStatusActive)),
				":now":    epoch(now),
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

func (r *FlexPlanDynamoRepository) ClaimDue(ctx context.Context, id string, now time.Time) (bool, error) {
	p, err := r.update(ctx, id,
		"REMOVE #next_order, #noa",
		"#status = :active AND #noa <= :now",
		map[string]string{"#status": "status", "#next_order": "next_order", "#noa": planNextOrderAttribute},
		map[string]types.AttributeValue{
			":active": str(string(entities.FlexPlanStatusActive)),
			":now":    epoch(now),
		})
	if err != nil {
		return false, err
	}
	return p.ID != "", nil
}
