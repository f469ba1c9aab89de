package entities

// DiscountType selects the rule used to compute a discount amount.
type DiscountType string

const (
	DiscountTypeTrial     DiscountType = "Trial"
	DiscountTypeReferral  DiscountType = "Referral"
	DiscountTypeMult      DiscountType = "mult"
	DiscountTypeMinus     DiscountType = "minus"
	DiscountTypeStarter   DiscountType = "starter"
	DiscountTypeOGVerbFam DiscountType = "ogverbfam"
	DiscountTypeAuto      DiscountType = "auto"
)

// Discount is a discount code as supplied by a caller and, once applied, its
// computed Amount in minor currency units.
//
// Value is the declared value: a fraction or whole percent for mult discounts,
// whole currency units for flat discounts. Flex marks discounts that recur on
// every subsequent plan charge.
type Discount struct {
	Code         string       `json:"code"`
	DiscountType DiscountType `json:"discount_type"`
	Value        float64      `json:"value"`
	Amount       int64        `json:"amount"`
	Flex         bool         `json:"flex,omitempty"`
}
