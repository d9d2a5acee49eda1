package billing

import (
	"time"

	"github.com/billinglens/billinglens/internal/types"
)

// Subscription is the canonical, version-independent view of an upstream
// subscription. It is an immutable snapshot derived from one fetch; the
// schema adapter is the only producer.
type Subscription struct {
	// Unique identifier of the subscription
	ID string `json:"id"`
	// The customer this subscription bills
	CustomerID string `json:"customer_id"`
	// Lifecycle state as reported upstream; values outside the canonical
	// vocabulary are carried through untouched
	Status types.SubscriptionStatus `json:"status"`
	// Start of the current billing period, resolved across schema versions
	CurrentPeriodStart time.Time `json:"current_period_start"`
	// End of the current billing period, always >= CurrentPeriodStart
	CurrentPeriodEnd time.Time `json:"current_period_end"`
	// Ordered line items in upstream list order; empty is valid
	LineItems []SubscriptionLineItem `json:"line_items"`
}

// SubscriptionLineItem is one recurring position on a subscription.
// Price fields are nil when no known schema location carried a value.
type SubscriptionLineItem struct {
	ID         string                `json:"id"`
	PriceID    *string               `json:"price_id,omitempty"`
	UnitAmount *int64                `json:"unit_amount,omitempty"`
	Currency   string                `json:"currency,omitempty"`
	Interval   types.BillingInterval `json:"interval,omitempty"`
}

// FirstLineItem returns the first line item in upstream order, or nil
// when the subscription has none.
func (s *Subscription) FirstLineItem() *SubscriptionLineItem {
	if len(s.LineItems) == 0 {
		return nil
	}
	return &s.LineItems[0]
}
