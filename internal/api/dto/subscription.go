package dto

import (
	"github.com/billinglens/billinglens/internal/validator"
)

// BillingPeriodDetails describes the current billing period of a
// subscription. PercentComplete here is the remaining-based form.
type BillingPeriodDetails struct {
	StartDate       string  `json:"startDate"`
	EndDate         string  `json:"endDate"`
	TotalDays       int64   `json:"totalDays"`
	DaysRemaining   int64   `json:"daysRemaining"`
	PercentComplete float64 `json:"percentComplete"`
}

// SubscriptionSummaryResponse is the single-subscription billing view.
type SubscriptionSummaryResponse struct {
	SubscriptionID       string               `json:"subscriptionId"`
	CustomerID           string               `json:"customerId"`
	Status               string               `json:"status"`
	CurrentPeriodStart   int64                `json:"currentPeriodStart"`
	CurrentPeriodEnd     int64                `json:"currentPeriodEnd"`
	BillingPeriodDetails BillingPeriodDetails `json:"billingPeriodDetails"`
	Amount               *int64               `json:"amount"`
	Interval             string               `json:"interval,omitempty"`
}

// ActiveSubscriptionSummary is one row of the active-subscription
// listing. Period end and price fields are omitted when the
// subscription has no line items to resolve them from.
type ActiveSubscriptionSummary struct {
	ID               string `json:"id"`
	Status           string `json:"status"`
	CurrentPeriodEnd *int64 `json:"currentPeriodEnd,omitempty"`
	Amount           *int64 `json:"amount,omitempty"`
	Interval         string `json:"interval,omitempty"`
}

// ActiveSubscriptionsResponse lists a customer's active subscriptions.
// TotalCount is counted over the returned page; HasMore marks a partial
// result.
type ActiveSubscriptionsResponse struct {
	CustomerID          string                      `json:"customerId"`
	ActiveSubscriptions []ActiveSubscriptionSummary `json:"activeSubscriptions"`
	TotalCount          int                         `json:"totalCount"`
	HasMore             bool                        `json:"hasMore"`
}

// SubscriptionMetricsRequest selects the customer to aggregate.
type SubscriptionMetricsRequest struct {
	CustomerID string `json:"customer_id" binding:"required" validate:"required"`
}

func (r *SubscriptionMetricsRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// SubscriptionStateCounts are the three reported lifecycle buckets.
type SubscriptionStateCounts struct {
	Active   int `json:"active"`
	PastDue  int `json:"pastDue"`
	Canceled int `json:"canceled"`
}

// SubscriptionMetricsResponse is the MRR roll-up for one customer.
type SubscriptionMetricsResponse struct {
	CustomerID               string                  `json:"customerId"`
	TotalSubscriptions       int                     `json:"totalSubscriptions"`
	Metrics                  SubscriptionStateCounts `json:"metrics"`
	MonthlyRecurringRevenue  int64                   `json:"monthlyRecurringRevenue"`
	AverageSubscriptionValue float64                 `json:"averageSubscriptionValue"`
}

// BillingCycleProgressRequest selects the subscriptions to analyze.
type BillingCycleProgressRequest struct {
	SubscriptionIDs []string `json:"subscription_ids" binding:"required,min=1" validate:"required,min=1,dive,required"`
}

func (r *BillingCycleProgressRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// SubscriptionCycleProgress is one subscription's progress row.
// PercentComplete here is the elapsed-based form.
type SubscriptionCycleProgress struct {
	SubscriptionID  string  `json:"subscriptionId"`
	Status          string  `json:"status"`
	PeriodStart     int64   `json:"periodStart"`
	PeriodEnd       int64   `json:"periodEnd"`
	DaysInPeriod    int64   `json:"daysInPeriod"`
	DaysElapsed     int64   `json:"daysElapsed"`
	PercentComplete float64 `json:"percentComplete"`
}

// BillingCycleProgressResponse is the batch progress report.
type BillingCycleProgressResponse struct {
	Subscriptions []SubscriptionCycleProgress `json:"subscriptions"`
	TotalAnalyzed int                         `json:"totalAnalyzed"`
}
