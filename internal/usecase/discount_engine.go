package usecase

import (
	"context"
	"flex_billing/internal/domain/entities"
	"log"

	"github.com/shopspring/decimal"
)

// DiscountInput is what the engine needs to price a discount list.
// Products may be nil, in which case they are resolved from Items.
type DiscountInput struct {
	Items     []entities.CartItem
	Discounts []entities.Discount
	Products  map[string]entities.Product
	OrderType string
	Subtotal  int64
}

// DiscountEngine computes discount amounts from the rule table in DiscountRules.
type DiscountEngine struct {
	resolver *ProductResolver
	rules    DiscountRules
}

func NewDiscountEngine(resolver *ProductResolver, rules DiscountRules) *DiscountEngine {
	return &DiscountEngine{resolver: resolver, rules: rules}
}

// Compute returns the discounts that apply to the cart with their Amount set.
//
// Discounts whose gate is not met are dropped. Auto codes supplied by the caller
// are ignored. Auto promotions are appended when their trigger sku is present.
func (e *DiscountEngine) Compute(ctx context.Context, in DiscountInput) ([]entities.Discount, error) {
	products := in.Products
	if products == nil {
		var err error
		products, err = e.resolver.Resolve(ctx, entities.ToItemRequests(in.Items))
		if err != nil {
			return nil, err
		}
	}

	var (
		discountable int64
		hasTrialItem bool
		hasStarter   bool
		promoTotals  = make(map[string]int64)
	)
	for _, item := range in.Items {
		p, ok := products[item.ID]
		if !ok {
			return nil, &ItemsNotFoundError{SKUs: []string{item.ID}}
		}
		if e.discountable(item.ID, p) {
			discountable += item.TotalPrice
		}
		if item.ID == e.rules.TrialSKU {
			hasTrialItem = true
		}
		if item.ID == e.rules.StarterSKU {
			hasStarter = true
		}
		for _, promo := range e.rules.AutoPromotions {
			if promo.SKU == item.ID {
				promoTotals[promo.Code] += p.Price.Value * int64(item.Quantity)
			}
		}
	}

	out := make([]entities.Discount, 0, len(in.Discounts)+len(e.rules.AutoPromotions))
	for _, d := range in.Discounts {
		if e.isAutoCode(d.Code) {
			continue
		}
		switch d.DiscountType {
		case entities.DiscountTypeTrial, entities.DiscountTypeReferral:
			if !hasTrialItem {
				continue
			}
			d.Amount = wholeUnitsToMinor(d.Value)
		case entities.DiscountTypeStarter:
			if !hasStarter {
				continue
			}
			d.Amount = wholeUnitsToMinor(d.Value)
		case entities.DiscountTypeMinus:
			d.Amount = wholeUnitsToMinor(d.Value)
		case entities.DiscountTypeMult:
			rate, err := normalizeRate(d)
			if err != nil {
				log.Printf("[discount][usecase] malformed discount code=%s value=%v", d.Code, d.Value)
				return nil, err
			}
			d.Amount = percentOf(discountable, rate)
		case entities.DiscountTypeOGVerbFam:
			switch {
			case discountable >= e.rules.LoyaltyHighThreshold:
				d.Amount = percentOf(discountable, e.rules.LoyaltyHighRate)
			case discountable >= e.rules.LoyaltyMidThreshold:
				d.Amount = percentOf(discountable, e.rules.LoyaltyMidRate)
			default:
				continue
			}
		default:
			log.Printf("[discount][usecase] unknown discount type dropped code=%s type=%s", d.Code, d.DiscountType)
			continue
		}
		out = append(out, d)
	}

	for _, promo := range e.rules.AutoPromotions {
		total, ok := promoTotals[promo.Code]
		if !ok {
			continue
		}
		out = append(out, entities.Discount{
			Code:         promo.Code,
			DiscountType: entities.DiscountTypeAuto,
			Value:        promo.Rate,
			Amount:       percentOf(total, promo.Rate),
		})
	}
	return out, nil
}

func (e *DiscountEngine) discountable(sku string, p entities.Product) bool {
	for _, s := range e.rules.NonDiscountableSKUs {
		if s == sku {
			return false
		}
	}
	return p.Price.Value >= p.Price.Original
}

func (e *DiscountEngine) isAutoCode(code string) bool {
	for _, c := range e.rules.AutoCodes {
		if c == code {
			return true
		}
	}
	return false
}

// normalizeRate accepts a fraction (0.2) or a whole percent (20) for mult discounts.
func normalizeRate(d entities.Discount) (float64, error) {
	rate := d.Value
	if rate > 1 {
		rate /= 100
	}
	if rate < 0 || rate > 1 {
		return 0, newDomainError(ErrMalformedDiscount, "code", d.Code, nil)
	}
	return rate, nil
}

// percentOf truncates toward zero.
func percentOf(amount int64, rate float64) int64 {
	return decimal.NewFromInt(amount).Mul(decimal.NewFromFloat(rate)).IntPart()
}

func wholeUnitsToMinor(v float64) int64 {
	return decimal.NewFromFloat(v).Shift(2).IntPart()
}
