package models

// BillingInterval — период списания по тарифу.
type BillingInterval string

const (
	IntervalMonth BillingInterval = "month"
	IntervalYear  BillingInterval = "year"
)

// Plan описывает тариф из статического каталога.
type Plan struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    float64         `json:"price"`
	Interval BillingInterval `json:"interval"`
	Features []string        `json:"features"`
	Popular  bool            `json:"popular,omitempty"`
}

// SubscriptionState — выбранный тариф. Nil означает, что тариф не выбран.
type SubscriptionState struct {
	CurrentPlanID *string `json:"currentPlan"`
}

// HasPlan сообщает, выбран ли тариф.
func (s SubscriptionState) HasPlan() bool {
	return s.CurrentPlanID != nil && *s.CurrentPlanID != ""
}
