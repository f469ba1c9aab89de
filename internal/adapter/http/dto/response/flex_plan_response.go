package response

import (
	"time"

	"flex_billing/internal/domain/entities"
	"flex_billing/internal/usecase"
)

type PlanItemResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name,omitempty"`
	Quantity   int    `json:"quantity"`
	TotalPrice int64  `json:"total_price"`
}

type FlexPlanResponse struct {
	ID           string             `json:"id"`
	CustomerID   string             `json:"customer_id"`
	Status       string             `json:"status"`
	Items        []PlanItemResponse `json:"items"`
	Discounts    []string           `json:"discounts"`
	TotalPrice   int64              `json:"total_price"`
	TotalDisplay string             `json:"total_display"`
	NextText     *time.Time         `json:"next_text,omitempty"`
	NextOrder    *time.Time         `json:"next_order,omitempty"`
	PausedOn     *time.Time         `json:"paused_on,omitempty"`
	ResumedOn    *time.Time         `json:"resumed_on,omitempty"`
	TotalOrders  int                `json:"total_orders"`
	TotalValue   int64              `json:"total_value"`
	Started      time.Time          `json:"started"`
}

func FromFlexPlan(p entities.FlexPlan) FlexPlanResponse {
	items := make([]PlanItemResponse, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, PlanItemResponse{ID: it.ID, Name: it.Name, Quantity: it.Quantity, TotalPrice: it.TotalPrice})
	}
	codes := make([]string, 0, len(p.Discounts))
	for _, d := range p.Discounts {
		codes = append(codes, d.Code)
	}
	return FlexPlanResponse{
		ID:           p.ID,
		CustomerID:   p.CustomerID,
		Status:       string(p.Status),
		Items:        items,
		Discounts:    codes,
		TotalPrice:   p.TotalPrice,
		TotalDisplay: formatMinor(p.TotalPrice),
		NextText:     p.NextText,
		NextOrder:    p.NextOrder,
		PausedOn:     p.PausedOn,
		ResumedOn:    p.ResumedOn,
		TotalOrders:  p.TotalOrders,
		TotalValue:   p.TotalValue,
		Started:      p.Started,
	}
}

// CustomerResponse is the customer view returned by plan cancel and trial routes.
type CustomerResponse struct {
	ID            string     `json:"id"`
	CustomerType  string     `json:"customer_type,omitempty"`
	FlexPlans     []string   `json:"flex_plans"`
	FailedFlex    int        `json:"failed_flex"`
	StartFlex     *time.Time `json:"start_flex,omitempty"`
	FlexFollowup  *time.Time `json:"flex_followup,omitempty"`
	NoFollowup    *time.Time `json:"no_followup,omitempty"`
	ConvertedFlex *time.Time `json:"converted_flex,omitempty"`
	FailedStart   int        `json:"failed_start"`
}

func FromCustomer(c entities.Customer) CustomerResponse {
	plans := c.FlexPlans
	if plans == nil {
		plans = []string{}
	}
	return CustomerResponse{
		ID:            c.ID,
		CustomerType:  c.CustomerType,
		FlexPlans:     plans,
		FailedFlex:    c.FailedFlex,
		StartFlex:     c.Trial.StartFlex,
		FlexFollowup:  c.Trial.FlexFollowup,
		NoFollowup:    c.Trial.NoFollowup,
		ConvertedFlex: c.Trial.ConvertedFlex,
		FailedStart:   c.Trial.FailedStart,
	}
}

type DispatchResponse struct {
	Job        string `json:"job"`
	Candidates int    `json:"candidates"`
	Claimed    int    `json:"claimed"`
	Succeeded  int    `json:"succeeded"`
	Failed     int    `json:"failed"`
}

func FromDispatchSummary(job string, s usecase.DispatchSummary) DispatchResponse {
	return DispatchResponse{Job: job, Candidates: s.Candidates, Claimed: s.Claimed, Succeeded: s.Succeeded, Failed: s.Failed}
}
