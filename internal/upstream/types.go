package upstream

import (
	"github.com/billinglens/billinglens/internal/types"
	"github.com/shopspring/decimal"
)

// Raw records mirror the upstream payment platform's object shapes as
// fetched, before normalization. Every record carries the schema version
// that produced it; fields that exist only in one version are pointers
// and stay nil for the other.

// Subscription is a raw upstream subscription.
type Subscription struct {
	ID       string
	Customer string
	Status   string
	// Period bounds at the subscription level (legacy schema only),
	// unix seconds
	CurrentPeriodStart *int64
	CurrentPeriodEnd   *int64
	Items              []SubscriptionItem
	SchemaVersion      types.SchemaVersion
}

// SubscriptionItem is a raw subscription line item. In the basil schema
// the billing period bounds live here instead of on the subscription.
type SubscriptionItem struct {
	ID                 string
	CurrentPeriodStart *int64
	CurrentPeriodEnd   *int64
	Price              *Price
	Pricing            *Pricing
}

// Price is the legacy inline price object.
type Price struct {
	ID         string
	UnitAmount *int64
	Currency   string
	Recurring  *Recurring
}

type Recurring struct {
	Interval string
}

// Pricing is the basil nested pricing structure that replaced inline
// price objects on line items.
type Pricing struct {
	UnitAmountDecimal *decimal.Decimal
	PriceDetails      *PriceDetails
}

type PriceDetails struct {
	Price string
}

// SubscriptionList is one page of subscriptions.
type SubscriptionList struct {
	Data    []Subscription
	HasMore bool
}

// Invoice is a raw upstream invoice.
type Invoice struct {
	ID         string
	Number     string
	Status     string
	AmountDue  int64
	AmountPaid int64
	Total      int64
	Subtotal   int64
	// Direct payment reference (legacy schema only; removed in basil)
	PaymentIntent *string
	// Directly exposed out-of-band flag (legacy schema only). Never
	// trusted verbatim; the resolver recomputes it.
	PaidOutOfBand *bool
	Lines         []InvoiceLine
	SchemaVersion types.SchemaVersion
}

// InvoiceLine is a raw invoice line item. Legacy carries Price inline,
// basil nests it under Pricing.
type InvoiceLine struct {
	ID          string
	Description string
	Amount      int64
	Currency    string
	Quantity    int64
	Price       *Price
	Pricing     *Pricing
}

// InvoicePayment is a raw payment record linking an invoice to the
// payment that settles it (basil schema's replacement for the direct
// invoice.payment_intent reference).
type InvoicePayment struct {
	ID            string
	Invoice       string
	PaymentIntent *string
	// "paid" once the linked payment settled
	Status        string
	SchemaVersion types.SchemaVersion
}

// PaymentIntent is a raw upstream payment intent.
type PaymentIntent struct {
	ID           string
	Amount       int64
	Currency     string
	Status       string
	ClientSecret string
	Created      int64
	// Back-reference to the settled invoice (legacy schema only)
	Invoice *string
	// Charges embedded on the intent (legacy schema only)
	Charges []Charge
	// Expanded latest charge (basil schema only)
	LatestCharge  *Charge
	SchemaVersion types.SchemaVersion
}

// Charge is a raw upstream charge.
type Charge struct {
	ID     string
	Amount int64
	Status string
	Paid   bool
	// Back-reference to the payment intent that produced this charge
	PaymentIntent  *string
	Refunded       bool
	FailureMessage *string
	ReceiptURL     *string
	SchemaVersion  types.SchemaVersion
}
