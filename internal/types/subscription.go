package types

import (
	ierr "github.com/billinglens/billinglens/internal/errors"
	"github.com/samber/lo"
)

// SubscriptionStatus is the lifecycle state of a subscription, following
// the upstream platform's status vocabulary.
type SubscriptionStatus string

const (
	SubscriptionStatusActive     SubscriptionStatus = "active"
	SubscriptionStatusPastDue    SubscriptionStatus = "past_due"
	SubscriptionStatusCanceled   SubscriptionStatus = "canceled"
	SubscriptionStatusTrialing   SubscriptionStatus = "trialing"
	SubscriptionStatusIncomplete SubscriptionStatus = "incomplete"
	SubscriptionStatusUnpaid     SubscriptionStatus = "unpaid"
)

func (s SubscriptionStatus) String() string {
	return string(s)
}

// BillingInterval is the recurrence unit of a recurring price.
type BillingInterval string

const (
	BillingIntervalDay   BillingInterval = "day"
	BillingIntervalWeek  BillingInterval = "week"
	BillingIntervalMonth BillingInterval = "month"
	BillingIntervalYear  BillingInterval = "year"
)

func (i BillingInterval) String() string {
	return string(i)
}

func (i BillingInterval) Validate() error {
	allowed := []BillingInterval{
		BillingIntervalDay,
		BillingIntervalWeek,
		BillingIntervalMonth,
		BillingIntervalYear,
	}
	if !lo.Contains(allowed, i) {
		return ierr.NewError("invalid billing interval").
			WithHint("Invalid billing interval").
			WithReportableDetails(map[string]any{
				"interval":          i,
				"allowed_intervals": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}
