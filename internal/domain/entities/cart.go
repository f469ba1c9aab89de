package entities

// OrderTypeFlex is the order type used for recurring plan charges and trial conversions.
const OrderTypeFlex = "Flex"

// ItemRequest is a requested sku and quantity, before pricing.
type ItemRequest struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

// CartItemMetadata carries catalog details snapshotted at pricing time.
type CartItemMetadata struct {
	Categories  []string          `json:"categories,omitempty"`
	Fulfillment []FulfillmentItem `json:"fulfillment,omitempty"`
	Thumbnail   string            `json:"thumbnail,omitempty"`
	Savings     int64             `json:"savings"`
}

// CartItem is a priced line. It is only ever persisted embedded in an Order or a FlexPlan.
type CartItem struct {
	ID         string           `json:"id"`
	Product    string           `json:"product,omitempty"`
	Name       string           `json:"name,omitempty"`
	Quantity   int              `json:"quantity"`
	Price      int64            `json:"price"`
	TotalPrice int64            `json:"total_price"`
	Metadata   CartItemMetadata `json:"metadata"`
}

// Paid is the monetary summary of a cart, in minor currency units.
type Paid struct {
	Subtotal      int64 `json:"subtotal"`
	Shipping      int64 `json:"shipping"`
	DiscountTotal int64 `json:"discount_total"`
	CreditUsed    int64 `json:"credit_used"`
	Total         int64 `json:"total"`
}

// Cart is a fully priced order candidate. It is built fresh for every order
// attempt and never mutated afterwards.
type Cart struct {
	Items     []CartItem `json:"items"`
	OrderType string     `json:"order_type"`
	Source    string     `json:"source,omitempty"`
	Discounts []Discount `json:"discounts"`
	Paid      Paid       `json:"paid"`
}

// ToItemRequests strips pricing from cart items so they can be re-priced.
func ToItemRequests(items []CartItem) []ItemRequest {
	out := make([]ItemRequest, 0, len(items))
	for _, it := range items {
		out = append(out, ItemRequest{ID: it.ID, Quantity: it.Quantity})
	}
	return out
}
