// Package billing holds the pure billing metric computations: period
// progress, MRR aggregation and payment link resolution. Every function
// is a stateless transform over supplied inputs; "now" is always an
// explicit argument so concurrent evaluations and tests stay
// deterministic.
package billing

import (
	"time"

	domain "github.com/billinglens/billinglens/internal/domain/billing"
	"github.com/shopspring/decimal"
)

const hoursPerDay = 24 * time.Hour

// wholeDays is the number of whole days between two instants,
// truncating toward zero.
func wholeDays(from, to time.Time) int64 {
	return int64(to.Sub(from) / hoursPerDay)
}

// Progress computes how far along the period [start, end) is at the
// given instant. TotalDays and DaysElapsed truncate to whole days;
// DaysRemaining is floored at 0 and never negative, even when now is
// past the period end.
//
// Two percent-complete forms are computed because the reports that
// consume them use different formulas: the subscription summary uses
// the remaining-based form (with the raw, unfloored remaining count,
// so it can exceed 100 after the period ends) and the cycle-progress
// report uses the elapsed-based form. The forms agree only while now
// falls inside the period; callers must serialize the one their report
// documents.
func Progress(start, end, now time.Time) domain.Progress {
	totalDays := wholeDays(start, end)
	daysElapsed := wholeDays(start, now)
	rawRemaining := wholeDays(now, end)

	p := domain.Progress{
		TotalDays:     totalDays,
		DaysElapsed:   daysElapsed,
		DaysRemaining: max(0, rawRemaining),
	}

	if totalDays <= 0 {
		return p
	}

	total := decimal.NewFromInt(totalDays)
	p.PercentElapsed = decimal.NewFromInt(daysElapsed).
		Div(total).
		Mul(decimal.NewFromInt(100)).
		Round(2).
		InexactFloat64()
	p.PercentRemainingBased = decimal.NewFromInt(totalDays - rawRemaining).
		Div(total).
		Mul(decimal.NewFromInt(100)).
		Round(2).
		InexactFloat64()

	return p
}
