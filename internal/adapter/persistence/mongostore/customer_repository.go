package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"flex_billing/internal/domain/entities"
	"flex_billing/internal/usecase/interfaces"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type CustomerRepository struct {
	coll *mongo.Collection
}

var _ interfaces.ICustomerRepository = (*CustomerRepository)(nil)

func NewCustomerRepository(db *mongo.Database) *CustomerRepository {
	return &CustomerRepository{coll: db.Collection(customersCollection)}
}

// findOneAndUpdate returns the updated customer, or a zero Customer when the
// filter matched nothing.
func (r *CustomerRepository) findOneAndUpdate(ctx context.Context, filter, update bson.M) (entities.Customer, error) {
	var c entities.Customer
	err := r.coll.FindOneAndUpdate(ctx, filter, update, afterUpdate()).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return entities.Customer{}, nil
	}
	if err != nil {
		return entities.Customer{}, fmt.Errorf("failed to update customer: %w", err)
	}
	return c, nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	var c entities.Customer
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return entities.Customer{}, nil
	}
	if err != nil {
		return entities.Customer{}, fmt.Errorf("failed to get customer: %w", err)
	}
	return c, nil
}

func (r *CustomerRepository) ApplyPlacedOrder(ctx context.Context, customerID string, ref entities.OrderRef, total int64, at time.Time) (bool, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": customerID, "orders.invoice_number": bson.M{"$ne": ref.InvoiceNumber}},
		bson.M{
			"$inc":  bson.M{"total_orders": 1, "total_value": total},
			"$push": bson.M{"orders": ref},
			"$set":  bson.M{"last_interaction": at},
		})
	if err != nil {
		return false, fmt.Errorf("failed to apply placed order: %w", err)
	}
	return res.ModifiedCount == 1, nil
}

func (r *CustomerRepository) AdjustAggregates(ctx context.Context, customerID string, valueDelta int64, ordersDelta int) error {
	_, err := r.coll.UpdateOne(ctx, bson.M{"id": customerID},
		bson.M{"$inc": bson.M{"total_value": valueDelta, "total_orders": ordersDelta}})
	return err
}

func (r *CustomerRepository) IncrementFailedFlex(ctx context.Context, customerID string) (int, error) {
	c, err := r.findOneAndUpdate(ctx, bson.M{"id": customerID}, bson.M{"$inc": bson.M{"failed_flex": 1}})
	if err != nil {
		return 0, err
	}
	if c.ID == "" {
		return 0, fmt.Errorf("customer %s not found", customerID)
	}
	return c.FailedFlex, nil
}

func (r *CustomerRepository) ResetFailedFlex(ctx context.Context, customerID string) error {
	_, err := r.coll.UpdateOne(ctx, bson.M{"id": customerID}, bson.M{"$set": bson.M{"failed_flex": 0}})
	return err
}

func (r *CustomerRepository) AddFlexPlan(ctx context.Context, customerID, planID string) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": customerID}, bson.M{"$addToSet": bson.M{"flex_plans": planID}})
	if err != nil {
		return fmt.Errorf("failed to add flex plan: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("customer %s not found", customerID)
	}
	return nil
}

func (r *CustomerRepository) RemoveFlexPlan(ctx context.Context, customerID, planID string) (entities.Customer, error) {
	c, err := r.findOneAndUpdate(ctx, bson.M{"id": customerID}, bson.M{"$pull": bson.M{"flex_plans": planID}})
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, fmt.Errorf("customer %s not found", customerID)
	}
	return c, nil
}

var trialMarkerFields = map[entities.TrialMarker]string{
	entities.MarkerStartFlex:     "trial.start_flex",
	entities.MarkerFlexFollowup:  "trial.flex_followup",
	entities.MarkerNoFollowup:    "trial.no_followup",
	entities.MarkerConvertedFlex: "trial.converted_flex",
}

func (r *CustomerRepository) UpdateTrialState(ctx context.Context, customerID string, update entities.TrialStateUpdate) (entities.Customer, error) {
	set := bson.M{}
	unset := bson.M{}
	setMarker := func(m entities.TrialMarker, t *time.Time) {
		if t != nil {
			set[trialMarkerFields[m]] = *t
		}
	}
	setMarker(entities.MarkerStartFlex, update.StartFlex)
	setMarker(entities.MarkerFlexFollowup, update.FlexFollowup)
	setMarker(entities.MarkerNoFollowup, update.NoFollowup)
	setMarker(entities.MarkerConvertedFlex, update.ConvertedFlex)
	for _, m := range update.Clear {
		if m == entities.MarkerRushed {
			set["rushed"] = false
			continue
		}
		field, ok := trialMarkerFields[m]
		if _, isSet := set[field]; ok && !isSet {
			unset[field] = ""
		}
	}

	doc := bson.M{}
	if len(set) > 0 {
		doc["$set"] = set
	}
	if len(unset) > 0 {
		doc["$unset"] = unset
	}
	if update.IncFailedStart {
		doc["$inc"] = bson.M{"trial.failed_start": 1}
	}
	if len(doc) == 0 {
		return r.GetByID(ctx, customerID)
	}
	return r.findOneAndUpdate(ctx, bson.M{"id": customerID}, doc)
}

func trialDueFilter(now time.Time) bson.M {
	return bson.M{
		"customer_type":    entities.CustomerTypeTrialToFlex,
		"trial.start_flex": bson.M{"$lt": now},
	}
}

func (r *CustomerRepository) FindDueTrialConversions(ctx context.Context, now time.Time, limit int) ([]string, error) {
	return dueIDs(ctx, r.coll, trialDueFilter(now), limit)
}

func (r *CustomerRepository) ClaimTrialConversion(ctx context.Context, customerID string, now time.Time) (bool, error) {
	filter := trialDueFilter(now)
	filter["id"] = customerID
	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$unset": bson.M{"trial.start_flex": ""}})
	if err != nil {
		return false, err
	}
	return res.ModifiedCount == 1, nil
}
