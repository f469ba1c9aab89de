package usecase

import "time"

// AutoPromotion is a campaign discount appended whenever its trigger sku is in the cart.
type AutoPromotion struct {
	Code string
	SKU  string
	Rate float64
}

// DiscountRules configures the discount rule table.
type DiscountRules struct {
	// AutoCodes are applied by caller-level promotions and ignored when supplied explicitly.
	AutoCodes           []string
	NonDiscountableSKUs []string
	// TrialSKU gates Trial and Referral discounts, StarterSKU gates starter discounts.
	TrialSKU             string
	StarterSKU           string
	LoyaltyHighThreshold int64
	LoyaltyHighRate      float64
	LoyaltyMidThreshold  int64
	LoyaltyMidRate       float64
	AutoPromotions       []AutoPromotion
}

// Config is the business policy shared by every use case. It is built once
// at startup and passed to constructors.
type Config struct {
	MinimumOrderTotal    int64
	DefaultShippingPrice int64
	Discounts            DiscountRules

	// Cadence markers land on CadenceHour in Location.
	CadenceHour int
	Location    *time.Location

	ResumeCadenceDays     int
	SkipDays              int
	FlexFailureThreshold  int
	FlexRetryBackoff      time.Duration
	TrialFailureThreshold int
	TrialRetryDays        int
	FulfillmentDelay      time.Duration

	SchedulerBatchSize int
	SchedulerWorkers   int
	SchedulerSource    string

	OrdersChannel string
}

func DefaultConfig() Config {
	return Config{
		MinimumOrderTotal:    50,
		DefaultShippingPrice: 495,
		Discounts: DiscountRules{
			AutoCodes:            []string{"HOLIDAYBUNDLEPROMO"},
			TrialSKU:             "sampler-pouch",
			StarterSKU:           "starter-kit",
			LoyaltyHighThreshold: 5000,
			LoyaltyHighRate:      0.15,
			LoyaltyMidThreshold:  3000,
			LoyaltyMidRate:       0.10,
			AutoPromotions: []AutoPromotion{
				{Code: "PSLFALL2021", SKU: "ps-pouch", Rate: 0.2},
			},
		},
		CadenceHour:           14,
		Location:              time.UTC,
		ResumeCadenceDays:     28,
		SkipDays:              28,
		FlexFailureThreshold:  4,
		FlexRetryBackoff:      72 * time.Hour,
		TrialFailureThreshold: 2,
		TrialRetryDays:        2,
		FulfillmentDelay:      24 * time.Hour,
		SchedulerBatchSize:    20,
		SchedulerWorkers:      5,
		SchedulerSource:       "CRM",
	}
}

func (c Config) location() *time.Location {
	if c.Location == nil {
		return time.UTC
	}
	return c.Location
}

// atCadenceHour moves t to CadenceHour:00 on the same calendar day.
func (c Config) atCadenceHour(t time.Time) time.Time {
	t = t.In(c.location())
	y, m, d := t.Date()
	return time.Date(y, m, d, c.CadenceHour, 0, 0, 0, c.location())
}

// nextCycle is the reminder date after a successful charge: one month out, two days early.
func (c Config) nextCycle(now time.Time) time.Time {
	return c.atCadenceHour(now.AddDate(0, 1, -2))
}

func (c Config) daysOut(now time.Time, days int) time.Time {
	return c.atCadenceHour(now.AddDate(0, 0, days))
}
