package interfaces

import (
	"context"
	"flex_billing/internal/domain/entities"
)

// IProductRepository abstracts the catalog read used to price carts.

type IProductRepository interface {
	// FindBySKUs returns every product matching one of the skus in a single batch read.
	// Unknown skus are simply absent from the result.
	FindBySKUs(ctx context.Context, skus []string) ([]entities.Product, error)
}

// IProductCache is an optional read-through cache in front of IProductRepository.
type IProductCache interface {
	// GetMany returns the cached products keyed by sku; misses are absent.
	GetMany(ctx context.Context, skus []string) (map[string]entities.Product, error)
	SetMany(ctx context.Context, products []entities.Product) error
}
