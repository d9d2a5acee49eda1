package upstream

import (
	"context"
)

// Client is the read/list/create surface of the payment platform API
// that the reporting core consumes. Implementations own networking,
// auth and retries; the core never talks to the platform directly.
type Client interface {
	GetSubscription(ctx context.Context, id string) (*Subscription, error)
	ListSubscriptions(ctx context.Context, params ListSubscriptionsParams) (*SubscriptionList, error)

	GetInvoice(ctx context.Context, id string) (*Invoice, error)
	ListInvoicePayments(ctx context.Context, params ListInvoicePaymentsParams) ([]InvoicePayment, error)

	GetPaymentIntent(ctx context.Context, id string) (*PaymentIntent, error)
	CreatePaymentIntent(ctx context.Context, params CreatePaymentIntentParams) (*PaymentIntent, error)
	ListCharges(ctx context.Context, params ListChargesParams) ([]Charge, error)

	// PublishableKey returns the client-side key the front end uses to
	// initialize the platform's browser SDK.
	PublishableKey(ctx context.Context) (string, error)
}

// ListSubscriptionsParams filters a subscription listing. Status "all"
// includes canceled subscriptions.
type ListSubscriptionsParams struct {
	CustomerID string
	Status     string
	Limit      int64
}

// ListInvoicePaymentsParams filters payment records either by invoice or
// by settling payment intent. Exactly one filter should be set.
type ListInvoicePaymentsParams struct {
	InvoiceID       string
	PaymentIntentID string
}

type ListChargesParams struct {
	PaymentIntentID string
}

type CreatePaymentIntentParams struct {
	Amount   int64
	Currency string
	Confirm  bool
}
