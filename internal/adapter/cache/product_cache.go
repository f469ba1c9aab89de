package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"flex_billing/internal/domain/entities"
	"flex_billing/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const defaultProductTTL = 10 * time.Minute

// ProductCache is a read-through cache of catalog entries keyed by sku.
type ProductCache struct {
	client  *redis.Client
	baseTTL time.Duration
}

var _ interfaces.IProductCache = (*ProductCache)(nil)

func NewProductCache(client *redis.Client, ttl time.Duration) *ProductCache {
	if ttl <= 0 {
		ttl = defaultProductTTL
	}
	return &ProductCache{client: client, baseTTL: ttl}
}

func (c *ProductCache) GetMany(ctx context.Context, skus []string) (map[string]entities.Product, error) {
	out := make(map[string]entities.Product, len(skus))
	if len(skus) == 0 {
		return out, nil
	}
	keys := make([]string, 0, len(skus))
	for _, sku := range skus {
		keys = append(keys, cacheKey(sku))
	}
	values, err := c.client.MGet(ctx, keys...).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("redis mget failed: %w", err)
	}
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var p entities.Product
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			return nil, fmt.Errorf("unmarshal product %s failed: %w", skus[i], err)
		}
		out[skus[i]] = p
	}
	return out, nil
}

func (c *ProductCache) SetMany(ctx context.Context, products []entities.Product) error {
	if len(products) == 0 {
		return nil
	}
	pipe := c.client.Pipeline()
	for _, p := range products {
		data, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("marshal product %s failed: %w", p.SKU, err)
		}
		jitter := time.Duration(rand.Intn(60)) * time.Second
		pipe.Set(ctx, cacheKey(p.SKU), data, c.baseTTL+jitter)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func cacheKey(sku string) string {
	return fmt.Sprintf("product:%s", sku)
}
