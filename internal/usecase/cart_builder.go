package usecase

import (
	"context"
	"errors"
	"flex_billing/internal/domain/entities"
	"flex_billing/internal/usecase/interfaces"
	"log"
	"strings"
)

// CartRequest is the input of CartBuilder.Build. Customer takes precedence over
// CustomerID. A nil Shipping means the shipping policy decides.
type CartRequest struct {
	Items      []entities.ItemRequest
	Customer   *entities.Customer
	CustomerID string
	OrderType  string
	Source     string
	Discounts  []entities.Discount
	Shipping   *int64
}

// CartBuilder prices a cart. It performs no writes.
type CartBuilder struct {
	customers interfaces.ICustomerRepository
	resolver  *ProductResolver
	discounts *DiscountEngine
	policy    Config
}

func NewCartBuilder(customers interfaces.ICustomerRepository, resolver *ProductResolver, discounts *DiscountEngine, policy Config) *CartBuilder {
	return &CartBuilder{customers: customers, resolver: resolver, discounts: discounts, policy: policy}
}

func (b *CartBuilder) Build(ctx context.Context, req CartRequest) (entities.Cart, error) {
	customer, err := b.resolveCustomer(ctx, req)
	if err != nil {
		return entities.Cart{}, err
	}

	products, err := b.resolver.Resolve(ctx, req.Items)
	if err != nil {
		var notFound *ItemsNotFoundError
		if errors.As(err, &notFound) {
			return entities.Cart{}, newDomainError(ErrProductNotFound, "sku", strings.Join(notFound.SKUs, ","), err)
		}
		return entities.Cart{}, err
	}

	items := make([]entities.CartItem, 0, len(req.Items))
	var (
		subtotal     int64
		freeShipping bool
	)
	for _, it := range req.Items {
		p := products[it.ID]
		if it.Quantity < 0 {
			return entities.Cart{}, newDomainError(ErrInvalidQuantity, "sku", it.ID, nil)
		}
		if p.Price.Value < 0 {
			return entities.Cart{}, newDomainError(ErrInvalidProductPrice, "sku", it.ID, nil)
		}
		line := p.Price.Value * int64(it.Quantity)
		subtotal += line
		if p.FreeShipping && it.Quantity > 0 {
			freeShipping = true
		}
		items = append(items, entities.CartItem{
			ID:         p.SKU,
			Product:    p.ID,
			Name:       p.Name,
			Quantity:   it.Quantity,
			Price:      p.Price.Value,
			TotalPrice: line,
			Metadata: entities.CartItemMetadata{
				Categories:  p.Categories,
				Fulfillment: p.Fulfillment,
				Thumbnail:   p.Thumbnail,
				Savings:     p.Price.Savings(),
			},
		})
	}

	var shipping int64
	switch {
	case req.Shipping != nil:
		shipping = *req.Shipping
	case req.OrderType == entities.OrderTypeFlex || freeShipping:
		shipping = 0
	default:
		shipping = b.policy.DefaultShippingPrice
	}
	fullSubtotal := subtotal + shipping

	discounts, err := b.discounts.Compute(ctx, DiscountInput{
		Items:     items,
		Discounts: req.Discounts,
		Products:  products,
		OrderType: req.OrderType,
		Subtotal:  subtotal,
	})
	if err != nil {
		return entities.Cart{}, err
	}

	var discountTotal int64
	for _, d := range discounts {
		discountTotal += d.Amount
	}
	if discountTotal > fullSubtotal {
		discountTotal = fullSubtotal
	}
	total := fullSubtotal - discountTotal

	var creditUsed int64
	if customer.Credit > 0 {
		creditUsed = min(total, customer.Credit)
		total -= creditUsed
	}
	if total < b.policy.MinimumOrderTotal {
		total = 0
	}

	return entities.Cart{
		Items:     items,
		OrderType: req.OrderType,
		Source:    req.Source,
		Discounts: discounts,
		Paid: entities.Paid{
			Subtotal:      subtotal,
			Shipping:      shipping,
			DiscountTotal: discountTotal,
			CreditUsed:    creditUsed,
			Total:         total,
		},
	}, nil
}

func (b *CartBuilder) resolveCustomer(ctx context.Context, req CartRequest) (entities.Customer, error) {
	if req.Customer != nil {
		return *req.Customer, nil
	}
	id := strings.TrimSpace(req.CustomerID)
	if id == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}
	c, err := b.customers.GetByID(ctx, id)
	if err != nil {
		log.Printf("[cart][usecase] failed loading customer customer_id=%s err=%v", id, err)
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, newDomainError(ErrCustomerNotFound, "customer_id", id, nil)
	}
	return c, nil
}
