package memory

import (
	"context"
	"flex_billing/internal/domain/entities"
	"flex_billing/internal/usecase/interfaces"
)

type ProductRepository struct {
	s *Store
}

var _ interfaces.IProductRepository = (*ProductRepository)(nil)

func (r *ProductRepository) FindBySKUs(_ context.Context, skus []string) ([]entities.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.Product, 0, len(skus))
	for _, sku := range skus {
		if p, ok := r.s.products[sku]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}
