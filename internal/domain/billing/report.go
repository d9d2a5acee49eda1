package billing

// Progress describes how far along a billing period is at a given
// instant. Day counts are whole days, truncating.
type Progress struct {
	// Whole days between period start and end
	TotalDays int64 `json:"total_days"`
	// Whole days between period start and now; negative when now is
	// before the period starts (callers decide whether to clamp)
	DaysElapsed int64 `json:"days_elapsed"`
	// Whole days between now and period end, floored at 0
	DaysRemaining int64 `json:"days_remaining"`
	// round(daysElapsed/totalDays*100, 2); 0 when TotalDays <= 0.
	// Used by the billing-cycle-progress report.
	PercentElapsed float64 `json:"percent_elapsed"`
	// round((totalDays-rawRemaining)/totalDays*100, 2) where rawRemaining
	// is NOT floored; 0 when TotalDays <= 0. Used by the subscription
	// summary report. The two percent forms agree only while now is
	// inside the period.
	PercentRemainingBased float64 `json:"percent_remaining_based"`
}

// MRRReport aggregates a set of subscriptions into lifecycle-state
// counts and monthly-normalized recurring revenue.
type MRRReport struct {
	// Counts for the three reported lifecycle states; other states are
	// only reflected in TotalSubscriptions
	ActiveCount   int `json:"active"`
	PastDueCount  int `json:"past_due"`
	CanceledCount int `json:"canceled"`
	// Total population size including states outside the three counters
	TotalSubscriptions int `json:"total_subscriptions"`
	// Monthly recurring revenue in integer minor currency units
	TotalMRR int64 `json:"total_mrr"`
	// round(TotalMRR/ActiveCount, 2); 0 when there are no active
	// subscriptions
	AverageSubscriptionValue float64 `json:"average_subscription_value"`
}
