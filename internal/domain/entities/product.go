package entities

// Price is the catalog pricing record of a product, in minor currency units.
//
// A product is "marked down" when Value is lower than Original or a
// Strikethrough price is present.
type Price struct {
	Value         int64 `json:"value"`
	Original      int64 `json:"original"`
	Strikethrough int64 `json:"strikethrough,omitempty"`
}

// MarkedDown reports whether the product sells below its reference price.
func (p Price) MarkedDown() bool {
	return p.Strikethrough > 0 || p.Value < p.Original
}

// Savings is the per-unit difference between the highest reference price and Value.
func (p Price) Savings() int64 {
	if !p.MarkedDown() {
		return 0
	}
	highest := p.Original
	if p.Strikethrough > highest {
		highest = p.Strikethrough
	}
	if highest < p.Value {
		return 0
	}
	return highest - p.Value
}

// FulfillmentItem is a physical sku shipped when a product is ordered.
type FulfillmentItem struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
}

// Product is a catalog entry. It is read-only for the order pipeline.
//
// Storage model (DynamoDB):
//   - PK: sku
type Product struct {
	ID           string            `json:"id"`
	SKU          string            `json:"sku"`
	Name         string            `json:"name"`
	Price        Price             `json:"price"`
	FreeShipping bool              `json:"free_shipping"`
	Categories   []string          `json:"categories,omitempty"`
	Fulfillment  []FulfillmentItem `json:"fulfillment,omitempty"`
	Thumbnail    string            `json:"thumbnail,omitempty"`
}
