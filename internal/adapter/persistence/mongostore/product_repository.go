package mongostore

import (
	"context"
	"fmt"

	"flex_billing/internal/domain/entities"
	"flex_billing/internal/usecase/interfaces"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type ProductRepository struct {
	coll *mongo.Collection
}

var _ interfaces.IProductRepository = (*ProductRepository)(nil)

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{coll: db.Collection(productsCollection)}
}

func (r *ProductRepository) FindBySKUs(ctx context.Context, skus []string) ([]entities.Product, error) {
	cur, err := r.coll.Find(ctx, bson.M{"sku": bson.M{"$in": skus}})
	if err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}
	products := make([]entities.Product, 0, len(skus))
	if err := cur.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	return products, nil
}
