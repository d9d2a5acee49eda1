package schema

import (
	"time"

	"github.com/billinglens/billinglens/internal/domain/billing"
	ierr "github.com/billinglens/billinglens/internal/errors"
	"github.com/billinglens/billinglens/internal/types"
	"github.com/billinglens/billinglens/internal/upstream"
)

// periodStrategy attempts to locate billing period bounds on a raw
// subscription. Both bounds must be present for a strategy to yield.
type periodStrategy struct {
	name    string
	extract func(raw upstream.Subscription) (start, end *int64)
}

var (
	subscriptionLevelPeriod = periodStrategy{
		name: "subscription_level",
		extract: func(raw upstream.Subscription) (*int64, *int64) {
			return raw.CurrentPeriodStart, raw.CurrentPeriodEnd
		},
	}

	firstItemPeriod = periodStrategy{
		name: "first_item",
		extract: func(raw upstream.Subscription) (*int64, *int64) {
			if len(raw.Items) == 0 {
				return nil, nil
			}
			return raw.Items[0].CurrentPeriodStart, raw.Items[0].CurrentPeriodEnd
		},
	}

	// Legacy keeps bounds on the subscription; basil moved them to the
	// subscription items. Each version tries its own location first and
	// falls back to the other before giving up.
	periodStrategies = map[types.SchemaVersion][]periodStrategy{
		types.SchemaVersionLegacy: {subscriptionLevelPeriod, firstItemPeriod},
		types.SchemaVersionBasil:  {firstItemPeriod, subscriptionLevelPeriod},
	}

	defaultPeriodChain = []periodStrategy{subscriptionLevelPeriod, firstItemPeriod}
)

// itemPriceStrategy attempts to locate the recurring price of a raw
// subscription item. A strategy yields when it finds either a price id
// or a unit amount.
type itemPriceStrategy struct {
	name    string
	extract func(item upstream.SubscriptionItem) (priceID *string, unitAmount *int64, currency string, interval types.BillingInterval, ok bool)
}

var (
	inlineItemPrice = itemPriceStrategy{
		name: "inline_price",
		extract: func(item upstream.SubscriptionItem) (*string, *int64, string, types.BillingInterval, bool) {
			if item.Price == nil {
				return nil, nil, "", "", false
			}
			interval := types.BillingInterval("")
			if item.Price.Recurring != nil {
				interval = types.BillingInterval(item.Price.Recurring.Interval)
			}
			priceID := item.Price.ID
			var idPtr *string
			if priceID != "" {
				idPtr = &priceID
			}
			return idPtr, item.Price.UnitAmount, item.Price.Currency, interval, idPtr != nil || item.Price.UnitAmount != nil
		},
	}

	nestedItemPricing = itemPriceStrategy{
		name: "nested_pricing",
		extract: func(item upstream.SubscriptionItem) (*string, *int64, string, types.BillingInterval, bool) {
			if item.Pricing == nil {
				return nil, nil, "", "", false
			}
			var idPtr *string
			if item.Pricing.PriceDetails != nil && item.Pricing.PriceDetails.Price != "" {
				priceID := item.Pricing.PriceDetails.Price
				idPtr = &priceID
			}
			var amountPtr *int64
			if item.Pricing.UnitAmountDecimal != nil {
				amount := item.Pricing.UnitAmountDecimal.IntPart()
				amountPtr = &amount
			}
			return idPtr, amountPtr, "", "", idPtr != nil || amountPtr != nil
		},
	}

	itemPriceStrategies = map[types.SchemaVersion][]itemPriceStrategy{
		types.SchemaVersionLegacy: {inlineItemPrice, nestedItemPricing},
		types.SchemaVersionBasil:  {inlineItemPrice, nestedItemPricing},
	}

	defaultItemPriceChain = []itemPriceStrategy{inlineItemPrice, nestedItemPricing}
)

// NormalizeSubscription extracts the canonical subscription view from a
// raw record. Period bounds are resolved through the version's strategy
// chain; when no known location carries them the record is rejected
// with a missing-period-data error. Absent price fields stay nil and
// never fail normalization.
func (a *Adapter) NormalizeSubscription(raw upstream.Subscription) (billing.Subscription, error) {
	var start, end *int64
	for _, strategy := range chainFor(periodStrategies, raw.SchemaVersion, defaultPeriodChain) {
		s, e := strategy.extract(raw)
		if s != nil && e != nil {
			start, end = s, e
			break
		}
	}
	if start == nil || end == nil {
		return billing.Subscription{}, ierr.NewError("no billing period bounds found").
			WithHint("Subscription carries no billing period in any known schema location").
			WithReportableDetails(map[string]any{
				"subscription_id": raw.ID,
				"schema_version":  raw.SchemaVersion,
				"line_items":      len(raw.Items),
			}).
			Mark(ierr.ErrMissingPeriodData)
	}

	sub := billing.Subscription{
		ID:                 raw.ID,
		CustomerID:         raw.Customer,
		Status:             types.SubscriptionStatus(raw.Status),
		CurrentPeriodStart: time.Unix(*start, 0).UTC(),
		CurrentPeriodEnd:   time.Unix(*end, 0).UTC(),
		LineItems:          make([]billing.SubscriptionLineItem, 0, len(raw.Items)),
	}

	priceChain := chainFor(itemPriceStrategies, raw.SchemaVersion, defaultItemPriceChain)
	for _, item := range raw.Items {
		line := billing.SubscriptionLineItem{ID: item.ID}
		for _, strategy := range priceChain {
			priceID, unitAmount, currency, interval, ok := strategy.extract(item)
			if !ok {
				continue
			}
			line.PriceID = priceID
			line.UnitAmount = unitAmount
			line.Currency = currency
			line.Interval = interval
			break
		}
		sub.LineItems = append(sub.LineItems, line)
	}

	return sub, nil
}
