// Package mongostore implements the repository interfaces on MongoDB.
// Multi-document order placement requires a replica set.
package mongostore

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	productsCollection  = "products"
	customersCollection = "customers"
	ordersCollection    = "orders"
	plansCollection     = "flexPlans"
	countersCollection  = "counters"
)

// ConnectMongoDB connects and pings the cluster. Documents use their json
// field names so they match the DynamoDB layout.
func ConnectMongoDB(ctx context.Context, uri, database string) (*mongo.Client, *mongo.Database, error) {
	clientOpts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(100).
		SetBSONOptions(&options.BSONOptions{UseJSONStructTags: true, NilSliceAsEmpty: true})

	client, err := mongo.Connect(clientOpts)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return client, client.Database(database), nil
}

// EnsureIndexes creates the lookup and scheduler indexes.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := func(field string) mongo.IndexModel {
		return mongo.IndexModel{Keys: bson.D{{Key: field, Value: 1}}, Options: options.Index().SetUnique(true)}
	}
	indexes := map[string][]mongo.IndexModel{
		productsCollection: {unique("sku")},
		customersCollection: {
			unique("id"),
			{Keys: bson.D{{Key: "customer_type", Value: 1}, {Key: "trial.start_flex", Value: 1}}},
		},
		ordersCollection: {unique("invoice_number")},
		plansCollection: {
			unique("id"),
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "next_order", Value: 1}}},
		},
		countersCollection: {unique("name")},
	}
	for coll, models := range indexes {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create %s indexes: %w", coll, err)
		}
	}
	return nil
}

func afterUpdate() *options.FindOneAndUpdateOptionsBuilder {
	return options.FindOneAndUpdate().SetReturnDocument(options.After)
}

// dueIDs runs a due-work query and returns the matching ids.
func dueIDs(ctx context.Context, coll *mongo.Collection, filter bson.M, limit int) ([]string, error) {
	opts := options.Find().
		SetProjection(bson.M{"id": 1}).
		SetSort(bson.D{{Key: "id", Value: 1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	cur, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var docs []struct {
		ID string `json:"id"`
	}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}
	return ids, nil
}
