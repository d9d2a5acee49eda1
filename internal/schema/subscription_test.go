package schema

import (
	"testing"
	"time"

	ierr "github.com/billinglens/billinglens/internal/errors"
	"github.com/billinglens/billinglens/internal/logger"
	"github.com/billinglens/billinglens/internal/types"
	"github.com/billinglens/billinglens/internal/upstream"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	periodStart = int64(1704067200) // 2024-01-01T00:00:00Z
	periodEnd   = int64(1706745600) // 2024-02-01T00:00:00Z
)

func newTestAdapter() *Adapter {
	return NewAdapter(logger.L)
}

func TestNormalizeSubscription_LegacyPeriodOnSubscription(t *testing.T) {
	adapter := newTestAdapter()

	sub, err := adapter.NormalizeSubscription(upstream.Subscription{
		ID:                 "sub_1",
		Customer:           "cus_1",
		Status:             "active",
		CurrentPeriodStart: &periodStart,
		CurrentPeriodEnd:   &periodEnd,
		SchemaVersion:      types.SchemaVersionLegacy,
	})
	require.NoError(t, err)

	assert.Equal(t, "sub_1", sub.ID)
	assert.Equal(t, "cus_1", sub.CustomerID)
	assert.Equal(t, types.SubscriptionStatusActive, sub.Status)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), sub.CurrentPeriodStart)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), sub.CurrentPeriodEnd)
}

func TestNormalizeSubscription_BasilPeriodOnItem(t *testing.T) {
	adapter := newTestAdapter()

	sub, err := adapter.NormalizeSubscription(upstream.Subscription{
		ID:     "sub_1",
		Status: "active",
		Items: []upstream.SubscriptionItem{
			{
				ID:                 "si_1",
				CurrentPeriodStart: &periodStart,
				CurrentPeriodEnd:   &periodEnd,
			},
		},
		SchemaVersion: types.SchemaVersionBasil,
	})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), sub.CurrentPeriodStart)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), sub.CurrentPeriodEnd)
}

func TestNormalizeSubscription_FallsBackAcrossLocations(t *testing.T) {
	adapter := newTestAdapter()

	// legacy-tagged record whose bounds only exist on the item
	sub, err := adapter.NormalizeSubscription(upstream.Subscription{
		ID:     "sub_1",
		Status: "active",
		Items: []upstream.SubscriptionItem{
			{
				ID:                 "si_1",
				CurrentPeriodStart: &periodStart,
				CurrentPeriodEnd:   &periodEnd,
			},
		},
		SchemaVersion: types.SchemaVersionLegacy,
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), sub.CurrentPeriodStart)

	// basil-tagged record whose bounds only exist at the subscription level
	sub, err = adapter.NormalizeSubscription(upstream.Subscription{
		ID:                 "sub_2",
		Status:             "active",
		CurrentPeriodStart: &periodStart,
		CurrentPeriodEnd:   &periodEnd,
		SchemaVersion:      types.SchemaVersionBasil,
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), sub.CurrentPeriodEnd)
}

func TestNormalizeSubscription_UnknownVersionUsesDefaultChain(t *testing.T) {
	adapter := newTestAdapter()

	otherStart := int64(1706745600)
	otherEnd := int64(1709251200)
	sub, err := adapter.NormalizeSubscription(upstream.Subscription{
		ID:                 "sub_1",
		Status:             "active",
		CurrentPeriodStart: &periodStart,
		CurrentPeriodEnd:   &periodEnd,
		Items: []upstream.SubscriptionItem{
			{
				ID:                 "si_1",
				CurrentPeriodStart: &otherStart,
				CurrentPeriodEnd:   &otherEnd,
			},
		},
		SchemaVersion: types.SchemaVersion("2030-01-01.future"),
	})
	require.NoError(t, err)

	// default chain probes the subscription level first
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), sub.CurrentPeriodStart)
}

func TestNormalizeSubscription_MissingPeriodData(t *testing.T) {
	adapter := newTestAdapter()

	_, err := adapter.NormalizeSubscription(upstream.Subscription{
		ID:            "sub_1",
		Status:        "active",
		SchemaVersion: types.SchemaVersionBasil,
	})
	assert.True(t, ierr.IsMissingPeriodData(err))

	// one-sided bounds are treated the same as absent ones
	_, err = adapter.NormalizeSubscription(upstream.Subscription{
		ID:                 "sub_2",
		Status:             "active",
		CurrentPeriodStart: &periodStart,
		SchemaVersion:      types.SchemaVersionLegacy,
	})
	assert.True(t, ierr.IsMissingPeriodData(err))
}

func TestNormalizeSubscription_InlineItemPrice(t *testing.T) {
	adapter := newTestAdapter()

	sub, err := adapter.NormalizeSubscription(upstream.Subscription{
		ID:                 "sub_1",
		Status:             "active",
		CurrentPeriodStart: &periodStart,
		CurrentPeriodEnd:   &periodEnd,
		Items: []upstream.SubscriptionItem{
			{
				ID: "si_1",
				Price: &upstream.Price{
					ID:         "price_1",
					UnitAmount: lo.ToPtr(int64(1500)),
					Currency:   "usd",
					Recurring:  &upstream.Recurring{Interval: "month"},
				},
			},
		},
		SchemaVersion: types.SchemaVersionLegacy,
	})
	require.NoError(t, err)
	require.Len(t, sub.LineItems, 1)

	item := sub.LineItems[0]
	require.NotNil(t, item.PriceID)
	assert.Equal(t, "price_1", *item.PriceID)
	require.NotNil(t, item.UnitAmount)
	assert.Equal(t, int64(1500), *item.UnitAmount)
	assert.Equal(t, "usd", item.Currency)
	assert.Equal(t, types.BillingIntervalMonth, item.Interval)
}

func TestNormalizeSubscription_NestedPricingTruncatesDecimal(t *testing.T) {
	adapter := newTestAdapter()

	amount := decimal.NewFromFloat(1999.99)
	sub, err := adapter.NormalizeSubscription(upstream.Subscription{
		ID:     "sub_1",
		Status: "active",
		Items: []upstream.SubscriptionItem{
			{
				ID:                 "si_1",
				CurrentPeriodStart: &periodStart,
				CurrentPeriodEnd:   &periodEnd,
				Pricing: &upstream.Pricing{
					UnitAmountDecimal: &amount,
					PriceDetails:      &upstream.PriceDetails{Price: "price_1"},
				},
			},
		},
		SchemaVersion: types.SchemaVersionBasil,
	})
	require.NoError(t, err)
	require.Len(t, sub.LineItems, 1)

	item := sub.LineItems[0]
	require.NotNil(t, item.PriceID)
	assert.Equal(t, "price_1", *item.PriceID)
	require.NotNil(t, item.UnitAmount)
	assert.Equal(t, int64(1999), *item.UnitAmount)
}

func TestNormalizeSubscription_DeterministicAndNonMutating(t *testing.T) {
	adapter := newTestAdapter()

	amount := decimal.NewFromFloat(1999.99)
	raw := upstream.Subscription{
		ID:       "sub_1",
		Customer: "cus_1",
		Status:   "active",
		Items: []upstream.SubscriptionItem{
			{
				ID:                 "si_1",
				CurrentPeriodStart: &periodStart,
				CurrentPeriodEnd:   &periodEnd,
				Pricing: &upstream.Pricing{
					UnitAmountDecimal: &amount,
					PriceDetails:      &upstream.PriceDetails{Price: "price_1"},
				},
			},
		},
		SchemaVersion: types.SchemaVersionBasil,
	}
	before := raw

	first, err := adapter.NormalizeSubscription(raw)
	require.NoError(t, err)
	second, err := adapter.NormalizeSubscription(raw)
	require.NoError(t, err)

	// same input, identical canonical output
	assert.Equal(t, first, second)
	// the raw record is read, never written
	assert.Equal(t, before, raw)
	assert.Equal(t, periodStart, *raw.Items[0].CurrentPeriodStart)
}

func TestNormalizeSubscription_PricelessItemStaysNil(t *testing.T) {
	adapter := newTestAdapter()

	sub, err := adapter.NormalizeSubscription(upstream.Subscription{
		ID:                 "sub_1",
		Status:             "active",
		CurrentPeriodStart: &periodStart,
		CurrentPeriodEnd:   &periodEnd,
		Items: []upstream.SubscriptionItem{
			{ID: "si_1"},
		},
		SchemaVersion: types.SchemaVersionLegacy,
	})
	require.NoError(t, err)
	require.Len(t, sub.LineItems, 1)

	assert.Nil(t, sub.LineItems[0].PriceID)
	assert.Nil(t, sub.LineItems[0].UnitAmount)
}
