package repository

import (
	"context"
	"fmt"

	"flex_billing/internal/domain/entities"
	"flex_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultProductsTableName = "products"
	batchGetLimit            = 100
	maxBatchGetAttempts      = 5
)

// ProductDynamoRepository reads the product catalog from DynamoDB.
//
// Table requirements:
//   - PK: sku (string)
type ProductDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProductRepository = (*ProductDynamoRepository)(nil)

func NewProductDynamoRepository(ddb *dynamodb.Client) *ProductDynamoRepository {
	return &ProductDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRODUCTS_TABLE", defaultProductsTableName),
	}
}

func (r *ProductDynamoRepository) FindBySKUs(ctx context.Context, skus []string) ([]entities.Product, error) {
	out := make([]entities.Product, 0, len(skus))
	for start := 0; start < len(skus); start += batchGetLimit {
		end := min(start+batchGetLimit, len(skus))
		keys := make([]map[string]types.AttributeValue, 0, end-start)
		for _, sku := range skus[start:end] {
			keys = append(keys, map[string]types.AttributeValue{"sku": str(sku)})
		}
		products, err := r.batchGet(ctx, keys)
		if err != nil {
			return nil, err
		}
		out = append(out, products...)
	}
	return out, nil
}

// batchGet follows UnprocessedKeys until the chunk is fully read.
func (r *ProductDynamoRepository) batchGet(ctx context.Context, keys []map[string]types.AttributeValue) ([]entities.Product, error) {
	var out []entities.Product
	request := map[string]types.KeysAndAttributes{r.tableName: {Keys: keys}}
	for attempt := 0; len(request) > 0; attempt++ {
		if attempt == maxBatchGetAttempts {
			return nil, fmt.Errorf("products batch read left %d keys unprocessed", len(request[r.tableName].Keys))
		}
		res, err := r.ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{RequestItems: request})
		if err != nil {
			return nil, err
		}
		for _, raw := range res.Responses[r.tableName] {
			var p entities.Product
			if err := unmarshalItem(raw, &p); err != nil {
				return nil, err
			}
			out = append(out, p)
		}
		request = res.UnprocessedKeys
	}
	return out, nil
}
