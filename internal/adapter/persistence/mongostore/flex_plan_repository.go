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

type FlexPlanRepository struct {
	coll *mongo.Collection
}

var _ interfaces.IFlexPlanRepository = (*FlexPlanRepository)(nil)

func NewFlexPlanRepository(db *mongo.Database) *FlexPlanRepository {
	return &FlexPlanRepository{coll: db.Collection(plansCollection)}
}

func (r *FlexPlanRepository) findOneAndUpdate(ctx context.Context, filter, update bson.M) (entities.FlexPlan, error) {
	var p entities.FlexPlan
	err := r.coll.FindOneAndUpdate(ctx, filter, update, afterUpdate()).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return entities.FlexPlan{}, nil
	}
	if err != nil {
		return entities.FlexPlan{}, fmt.Errorf("failed to update flex plan: %w", err)
	}
	return p, nil
}

func (r *FlexPlanRepository) GetByID(ctx context.Context, id string) (entities.FlexPlan, error) {
	var p entities.FlexPlan
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return entities.FlexPlan{}, nil
	}
	if err != nil {
		return entities.FlexPlan{}, fmt.Errorf("failed to get flex plan: %w", err)
	}
	return p, nil
}

func (r *FlexPlanRepository) Create(ctx context.Context, plan entities.FlexPlan) (entities.FlexPlan, error) {
	if _, err := r.coll.InsertOne(ctx, plan); err != nil {
		return entities.FlexPlan{}, fmt.Errorf("failed to insert flex plan: %w", err)
	}
	return plan, nil
}

func (r *FlexPlanRepository) Delete(ctx context.Context, id string) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	return err
}

func (r *FlexPlanRepository) Pause(ctx context.Context, id string, at time.Time) (entities.FlexPlan, error) {
	return r.findOneAndUpdate(ctx, bson.M{"id": id}, bson.M{
		"$set":   bson.M{"status": entities.FlexPlanStatusPaused, "paused_on": at, "rushed": false},
		"$unset": bson.M{"next_order": "", "next_text": ""},
	})
}

func (r *FlexPlanRepository) Resume(ctx context.Context, id string, at, nextText time.Time) (entities.FlexPlan, error) {
	return r.findOneAndUpdate(ctx,
		bson.M{"id": id, "status": bson.M{"$ne": entities.FlexPlanStatusActive}},
		bson.M{
			"$set":   bson.M{"status": entities.FlexPlanStatusActive, "resumed_on": at, "next_text": nextText},
			"$unset": bson.M{"next_order": ""},
		})
}

func (r *FlexPlanRepository) Skip(ctx context.Context, id string, nextText time.Time) (entities.FlexPlan, error) {
	return r.findOneAndUpdate(ctx, bson.M{"id": id}, bson.M{
		"$set":   bson.M{"status": entities.FlexPlanStatusActive, "next_text": nextText},
		"$unset": bson.M{"next_order": ""},
	})
}

func (r *FlexPlanRepository) RecordOrder(ctx context.Context, id string, rec entities.PlanOrderRecord) (entities.FlexPlan, error) {
	discounts := rec.FlexDiscounts
	if discounts == nil {
		discounts = []entities.Discount{}
	}
	return r.findOneAndUpdate(ctx,
		bson.M{"id": id, "orders.invoice_number": bson.M{"$ne": rec.Order.InvoiceNumber}},
		bson.M{
			"$inc":   bson.M{"total_orders": 1, "total_value": rec.Total, "total_price": rec.PriceAdjustment},
			"$push":  bson.M{"orders": rec.Order},
			"$set":   bson.M{"discounts": discounts, "next_text": rec.NextText, "rushed": false},
			"$unset": bson.M{"next_order": ""},
		})
}

func (r *FlexPlanRepository) ScheduleRetry(ctx context.Context, id string, nextOrder time.Time) error {
	_, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{
		"$set":   bson.M{"next_order": nextOrder, "rushed": false},
		"$unset": bson.M{"next_text": ""},
	})
	return err
}

func planDueFilter(now time.Time) bson.M {
	return bson.M{"status": entities.FlexPlanStatusActive, "next_order": bson.M{"$lte": now}}
}

func (r *FlexPlanRepository) FindDue(ctx context.Context, now time.Time, limit int) ([]string, error) {
	return dueIDs(ctx, r.coll, planDueFilter(now), limit)
}

func (r *FlexPlanRepository) ClaimDue(ctx context.Context, id string, now time.Time) (bool, error) {
	filter := planDueFilter(now)
	filter["id"] = id
	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$unset": bson.M{"next_order": ""}})
	if err != nil {
		return false, err
	}
	return res.ModifiedCount == 1, nil
}
