package usecase

import (
	"context"
	"flex_billing/internal/domain/entities"
	"flex_billing/internal/usecase/interfaces"
	"log"
	"sort"
	"strings"
)

// ProductResolver loads catalog products for requested skus in one batch read,
// going through the optional product cache first.
type ProductResolver struct {
	repo  interfaces.IProductRepository
	cache interfaces.IProductCache
}

func NewProductResolver(repo interfaces.IProductRepository, cache interfaces.IProductCache) *ProductResolver {
	return &ProductResolver{repo: repo, cache: cache}
}

// Resolve returns the product for every requested sku, keyed by sku.
// Missing skus fail with *ItemsNotFoundError listing all of them.
func (r *ProductResolver) Resolve(ctx context.Context, items []entities.ItemRequest) (map[string]entities.Product, error) {
	skus := uniqueSKUs(items)
	found := make(map[string]entities.Product, len(skus))
	if len(skus) == 0 {
		return found, nil
	}

	misses := skus
	if r.cache != nil {
		cached, err := r.cache.GetMany(ctx, skus)
		if err != nil {
			log.Printf("[catalog][usecase] cache read failed skus=%s err=%v", strings.Join(skus, ","), err)
		} else {
			misses = misses[:0:0]
			for _, sku := range skus {
				if p, ok := cached[sku]; ok {
					found[sku] = p
					continue
				}
				misses = append(misses, sku)
			}
		}
	}

	if len(misses) > 0 {
		products, err := r.repo.FindBySKUs(ctx, misses)
		if err != nil {
			log.Printf("[catalog][usecase] batch read failed skus=%s err=%v", strings.Join(misses, ","), err)
			return nil, err
		}
		for _, p := range products {
			found[p.SKU] = p
		}
		if r.cache != nil && len(products) > 0 {
			if err := r.cache.SetMany(ctx, products); err != nil {
				log.Printf("[catalog][usecase] cache write failed count=%d err=%v", len(products), err)
			}
		}
	}

	var missing []string
	for _, sku := range skus {
		if _, ok := found[sku]; !ok {
			missing = append(missing, sku)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		log.Printf("[catalog][usecase] items not found skus=%s", strings.Join(missing, ","))
		return nil, &ItemsNotFoundError{SKUs: missing}
	}
	return found, nil
}

func uniqueSKUs(items []entities.ItemRequest) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it.ID]; ok {
			continue
		}
		seen[it.ID] = struct{}{}
		out = append(out, it.ID)
	}
	return out
}
