package billing

import (
	domain "github.com/billinglens/billinglens/internal/domain/billing"
	"github.com/billinglens/billinglens/internal/types"
	"github.com/shopspring/decimal"
)

var twelve = decimal.NewFromInt(12)

// MonthlyAmount converts a recurring unit amount to its monthly figure.
// Month passes through, year divides by 12 with half-up rounding. Any
// other interval (day, week, or unrecognized) takes the raw unit amount
// as-is, which is not a true monthly conversion but matches the reports
// this system replaces.
func MonthlyAmount(unitAmount int64, interval types.BillingInterval) int64 {
	switch interval {
	case types.BillingIntervalMonth:
		return unitAmount
	case types.BillingIntervalYear:
		return decimal.NewFromInt(unitAmount).DivRound(twelve, 0).IntPart()
	default:
		return unitAmount
	}
}

// AggregateMRR buckets subscriptions by lifecycle state and rolls up
// monthly recurring revenue over the active ones, using each active
// subscription's first line item. States outside the three reported
// counters only contribute to the total population size. A subscription
// without line items, or whose price fields are absent, counts toward
// its state but adds 0 to MRR.
func AggregateMRR(subscriptions []domain.Subscription) domain.MRRReport {
	report := domain.MRRReport{
		TotalSubscriptions: len(subscriptions),
	}

	for _, sub := range subscriptions {
		switch sub.Status {
		case types.SubscriptionStatusActive:
			report.ActiveCount++
			item := sub.FirstLineItem()
			if item == nil || item.UnitAmount == nil {
				continue
			}
			report.TotalMRR += MonthlyAmount(*item.UnitAmount, item.Interval)
		case types.SubscriptionStatusPastDue:
			report.PastDueCount++
		case types.SubscriptionStatusCanceled:
			report.CanceledCount++
		}
	}

	if report.ActiveCount > 0 {
		report.AverageSubscriptionValue = decimal.NewFromInt(report.TotalMRR).
			DivRound(decimal.NewFromInt(int64(report.ActiveCount)), 2).
			InexactFloat64()
	}

	return report
}
