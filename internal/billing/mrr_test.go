package billing

import (
	"testing"

	domain "github.com/billinglens/billinglens/internal/domain/billing"
	"github.com/billinglens/billinglens/internal/types"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func monthlySub(id string, status types.SubscriptionStatus, unitAmount int64, interval types.BillingInterval) domain.Subscription {
	return domain.Subscription{
		ID:     id,
		Status: status,
		LineItems: []domain.SubscriptionLineItem{
			{
				ID:         id + "_li",
				UnitAmount: lo.ToPtr(unitAmount),
				Interval:   interval,
			},
		},
	}
}

func TestMonthlyAmount(t *testing.T) {
	tests := []struct {
		name       string
		unitAmount int64
		interval   types.BillingInterval
		want       int64
	}{
		{"month passes through", 1000, types.BillingIntervalMonth, 1000},
		{"year divides by twelve", 1200, types.BillingIntervalYear, 100},
		{"year rounds down below half", 1250, types.BillingIntervalYear, 104},
		{"year rounds half up", 1254, types.BillingIntervalYear, 105},
		{"year rounds up past half", 1234, types.BillingIntervalYear, 103},
		{"week taken as-is", 250, types.BillingIntervalWeek, 250},
		{"day taken as-is", 50, types.BillingIntervalDay, 50},
		{"unknown interval taken as-is", 700, types.BillingInterval("quarter"), 700},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MonthlyAmount(tt.unitAmount, tt.interval))
		})
	}
}

func TestAggregateMRR(t *testing.T) {
	subs := []domain.Subscription{
		monthlySub("sub_1", types.SubscriptionStatusActive, 1000, types.BillingIntervalMonth),
		monthlySub("sub_2", types.SubscriptionStatusActive, 1000, types.BillingIntervalMonth),
		monthlySub("sub_3", types.SubscriptionStatusActive, 1200, types.BillingIntervalYear),
		monthlySub("sub_4", types.SubscriptionStatusPastDue, 5000, types.BillingIntervalMonth),
		monthlySub("sub_5", types.SubscriptionStatusCanceled, 3000, types.BillingIntervalMonth),
	}

	report := AggregateMRR(subs)

	assert.Equal(t, 3, report.ActiveCount)
	assert.Equal(t, 1, report.PastDueCount)
	assert.Equal(t, 1, report.CanceledCount)
	assert.Equal(t, 5, report.TotalSubscriptions)
	assert.Equal(t, int64(2100), report.TotalMRR)
	assert.Equal(t, 700.0, report.AverageSubscriptionValue)
}

func TestAggregateMRR_UnknownStatesOnlyCountInTotal(t *testing.T) {
	subs := []domain.Subscription{
		monthlySub("sub_1", types.SubscriptionStatusActive, 1000, types.BillingIntervalMonth),
		monthlySub("sub_2", types.SubscriptionStatusTrialing, 2000, types.BillingIntervalMonth),
		monthlySub("sub_3", types.SubscriptionStatusUnpaid, 2000, types.BillingIntervalMonth),
	}

	report := AggregateMRR(subs)

	assert.Equal(t, 1, report.ActiveCount)
	assert.Equal(t, 0, report.PastDueCount)
	assert.Equal(t, 0, report.CanceledCount)
	assert.Equal(t, 3, report.TotalSubscriptions)
	assert.Equal(t, int64(1000), report.TotalMRR)
}

func TestAggregateMRR_ActiveWithoutItems(t *testing.T) {
	subs := []domain.Subscription{
		{ID: "sub_1", Status: types.SubscriptionStatusActive},
		{
			ID:     "sub_2",
			Status: types.SubscriptionStatusActive,
			LineItems: []domain.SubscriptionLineItem{
				{ID: "sub_2_li"},
			},
		},
		monthlySub("sub_3", types.SubscriptionStatusActive, 900, types.BillingIntervalMonth),
	}

	report := AggregateMRR(subs)

	// itemless and priceless subscriptions still count as active but
	// add nothing to revenue
	assert.Equal(t, 3, report.ActiveCount)
	assert.Equal(t, int64(900), report.TotalMRR)
	assert.Equal(t, 300.0, report.AverageSubscriptionValue)
}

func TestAggregateMRR_Empty(t *testing.T) {
	report := AggregateMRR(nil)

	assert.Equal(t, 0, report.TotalSubscriptions)
	assert.Equal(t, int64(0), report.TotalMRR)
	assert.Equal(t, 0.0, report.AverageSubscriptionValue)
}
