package upstream

import (
	"context"
	"time"

	"github.com/billinglens/billinglens/internal/config"
	ierr "github.com/billinglens/billinglens/internal/errors"
	"github.com/billinglens/billinglens/internal/logger"
	"github.com/billinglens/billinglens/internal/types"
	goCache "github.com/patrickmn/go-cache"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
)

const (
	subscriptionCacheTTL = 30 * time.Second
	cacheCleanupInterval = 5 * time.Minute
)

func subscriptionCacheKey(id string) string {
	return "stripe:subscription:" + id
}

// StripeClient implements Client over the Stripe SDK. Records it fetches
// are tagged with the configured schema version; retries and auth stay
// inside the SDK.
type StripeClient struct {
	client  *stripe.Client
	cfg     *config.Configuration
	version types.SchemaVersion
	cache   *goCache.Cache
	logger  *logger.Logger
}

// NewStripeClient creates a Stripe-backed upstream client.
func NewStripeClient(cfg *config.Configuration, log *logger.Logger) (Client, error) {
	if cfg.Stripe.SecretKey == "" {
		return nil, ierr.NewError("stripe secret key not configured").
			WithHint("Set the Stripe secret key in the configuration").
			Mark(ierr.ErrValidation)
	}

	return &StripeClient{
		client:  stripe.NewClient(cfg.Stripe.SecretKey, nil),
		cfg:     cfg,
		version: cfg.Stripe.SchemaVersion,
		cache:   goCache.New(subscriptionCacheTTL, cacheCleanupInterval),
		logger:  log,
	}, nil
}

// GetSubscription retrieves a subscription, serving repeat lookups from
// a short-TTL cache. Batch reports fetch the same subscriptions in
// quick succession; the TTL is short enough that period bounds stay
// fresh within a request burst.
func (c *StripeClient) GetSubscription(ctx context.Context, id string) (*Subscription, error) {
	if cached, found := c.cache.Get(subscriptionCacheKey(id)); found {
		if raw, ok := cached.(Subscription); ok {
			return &raw, nil
		}
	}

	params := &stripe.SubscriptionRetrieveParams{
		Expand: []*string{
			stripe.String("items.data.price"),
		},
	}

	sub, err := c.client.V1Subscriptions.Retrieve(ctx, id, params)
	if err != nil {
		return nil, c.wrapErr(err, "failed to retrieve subscription", map[string]any{
			"subscription_id": id,
		})
	}

	raw := c.convertSubscription(sub)
	c.cache.Set(subscriptionCacheKey(id), raw, goCache.DefaultExpiration)
	return &raw, nil
}

func (c *StripeClient) ListSubscriptions(ctx context.Context, p ListSubscriptionsParams) (*SubscriptionList, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = 100
	}

	params := &stripe.SubscriptionListParams{}
	if p.CustomerID != "" {
		params.Customer = stripe.String(p.CustomerID)
	}
	if p.Status != "" {
		params.Status = stripe.String(p.Status)
	}
	params.Limit = stripe.Int64(limit)

	list := &SubscriptionList{Data: make([]Subscription, 0)}
	for sub, err := range c.client.V1Subscriptions.List(ctx, params) {
		if err != nil {
			return nil, c.wrapErr(err, "failed to list subscriptions", map[string]any{
				"customer_id": p.CustomerID,
			})
		}
		if int64(len(list.Data)) >= limit {
			// The iterator auto-paginates; stopping at the page limit is
			// what marks the result as partial.
			list.HasMore = true
			break
		}
		list.Data = append(list.Data, c.convertSubscription(sub))
	}

	return list, nil
}

func (c *StripeClient) GetInvoice(ctx context.Context, id string) (*Invoice, error) {
	inv, err := c.client.V1Invoices.Retrieve(ctx, id, nil)
	if err != nil {
		return nil, c.wrapErr(err, "failed to retrieve invoice", map[string]any{
			"invoice_id": id,
		})
	}

	raw := c.convertInvoice(inv)
	return &raw, nil
}

func (c *StripeClient) ListInvoicePayments(ctx context.Context, p ListInvoicePaymentsParams) ([]InvoicePayment, error) {
	params := &stripe.InvoicePaymentListParams{
		Expand: []*string{stripe.String("data.payment")},
	}
	if p.InvoiceID != "" {
		params.Invoice = stripe.String(p.InvoiceID)
	}
	if p.PaymentIntentID != "" {
		params.Payment = &stripe.InvoicePaymentListPaymentParams{
			Type:          stripe.String("payment_intent"),
			PaymentIntent: stripe.String(p.PaymentIntentID),
		}
	}

	payments := make([]InvoicePayment, 0)
	for ip, err := range c.client.V1InvoicePayments.List(ctx, params) {
		if err != nil {
			return nil, c.wrapErr(err, "failed to list invoice payments", map[string]any{
				"invoice_id":        p.InvoiceID,
				"payment_intent_id": p.PaymentIntentID,
			})
		}
		payments = append(payments, c.convertInvoicePayment(ip))
	}

	return payments, nil
}

func (c *StripeClient) GetPaymentIntent(ctx context.Context, id string) (*PaymentIntent, error) {
	params := &stripe.PaymentIntentRetrieveParams{
		Expand: []*string{stripe.String("latest_charge")},
	}

	pi, err := c.client.V1PaymentIntents.Retrieve(ctx, id, params)
	if err != nil {
		return nil, c.wrapErr(err, "failed to retrieve payment intent", map[string]any{
			"payment_intent_id": id,
		})
	}

	raw := c.convertPaymentIntent(pi)
	return &raw, nil
}

func (c *StripeClient) CreatePaymentIntent(ctx context.Context, p CreatePaymentIntentParams) (*PaymentIntent, error) {
	currency := p.Currency
	if currency == "" {
		currency = "usd"
	}

	params := &stripe.PaymentIntentCreateParams{
		Amount:             stripe.Int64(p.Amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: []*string{stripe.String("card")},
		Confirm:            stripe.Bool(p.Confirm),
	}

	pi, err := c.client.V1PaymentIntents.Create(ctx, params)
	if err != nil {
		return nil, c.wrapErr(err, "failed to create payment intent", map[string]any{
			"amount":   p.Amount,
			"currency": currency,
		})
	}

	raw := c.convertPaymentIntent(pi)
	return &raw, nil
}

func (c *StripeClient) ListCharges(ctx context.Context, p ListChargesParams) ([]Charge, error) {
	params := &stripe.ChargeListParams{}
	if p.PaymentIntentID != "" {
		params.PaymentIntent = stripe.String(p.PaymentIntentID)
	}

	charges := make([]Charge, 0)
	for ch, err := range c.client.V1Charges.List(ctx, params) {
		if err != nil {
			return nil, c.wrapErr(err, "failed to list charges", map[string]any{
				"payment_intent_id": p.PaymentIntentID,
			})
		}
		charges = append(charges, c.convertCharge(ch))
	}

	return charges, nil
}

func (c *StripeClient) PublishableKey(_ context.Context) (string, error) {
	key := c.cfg.Stripe.PublishableKey
	if key == "" {
		return "", ierr.NewError("publishable key not configured").
			WithHint("Set the Stripe publishable key in the configuration").
			Mark(ierr.ErrNotFound)
	}
	return key, nil
}

func (c *StripeClient) convertSubscription(sub *stripe.Subscription) Subscription {
	raw := Subscription{
		ID:            sub.ID,
		Status:        string(sub.Status),
		SchemaVersion: c.version,
	}
	if sub.Customer != nil {
		raw.Customer = sub.Customer.ID
	}
	if sub.Items == nil {
		return raw
	}

	for _, item := range sub.Items.Data {
		rawItem := SubscriptionItem{ID: item.ID}
		if item.CurrentPeriodStart > 0 {
			rawItem.CurrentPeriodStart = lo.ToPtr(item.CurrentPeriodStart)
		}
		if item.CurrentPeriodEnd > 0 {
			rawItem.CurrentPeriodEnd = lo.ToPtr(item.CurrentPeriodEnd)
		}
		if item.Price != nil {
			price := &Price{
				ID:         item.Price.ID,
				UnitAmount: lo.ToPtr(item.Price.UnitAmount),
				Currency:   string(item.Price.Currency),
			}
			if item.Price.Recurring != nil {
				price.Recurring = &Recurring{
					Interval: string(item.Price.Recurring.Interval),
				}
			}
			rawItem.Price = price
		}
		raw.Items = append(raw.Items, rawItem)
	}

	return raw
}

func (c *StripeClient) convertInvoice(inv *stripe.Invoice) Invoice {
	raw := Invoice{
		ID:            inv.ID,
		Number:        inv.Number,
		Status:        string(inv.Status),
		AmountDue:     inv.AmountDue,
		AmountPaid:    inv.AmountPaid,
		Total:         inv.Total,
		Subtotal:      inv.Subtotal,
		SchemaVersion: c.version,
	}
	if inv.Lines == nil {
		return raw
	}

	for _, line := range inv.Lines.Data {
		rawLine := InvoiceLine{
			ID:          line.ID,
			Description: line.Description,
			Amount:      line.Amount,
			Currency:    string(line.Currency),
			Quantity:    line.Quantity,
		}
		if line.Pricing != nil {
			pricing := &Pricing{}
			if line.Pricing.UnitAmountDecimal != 0 {
				pricing.UnitAmountDecimal = lo.ToPtr(decimal.NewFromFloat(line.Pricing.UnitAmountDecimal))
			}
			if line.Pricing.PriceDetails != nil {
				pricing.PriceDetails = &PriceDetails{
					Price: line.Pricing.PriceDetails.Price,
				}
			}
			rawLine.Pricing = pricing
		}
		raw.Lines = append(raw.Lines, rawLine)
	}

	return raw
}

func (c *StripeClient) convertInvoicePayment(ip *stripe.InvoicePayment) InvoicePayment {
	raw := InvoicePayment{
		ID:            ip.ID,
		Status:        string(ip.Status),
		SchemaVersion: c.version,
	}
	if ip.Invoice != nil {
		raw.Invoice = ip.Invoice.ID
	}
	if ip.Payment != nil && ip.Payment.PaymentIntent != nil {
		raw.PaymentIntent = lo.ToPtr(ip.Payment.PaymentIntent.ID)
	}
	return raw
}

func (c *StripeClient) convertPaymentIntent(pi *stripe.PaymentIntent) PaymentIntent {
	raw := PaymentIntent{
		ID:            pi.ID,
		Amount:        pi.Amount,
		Currency:      string(pi.Currency),
		Status:        string(pi.Status),
		ClientSecret:  pi.ClientSecret,
		Created:       pi.Created,
		SchemaVersion: c.version,
	}
	if pi.LatestCharge != nil {
		raw.LatestCharge = lo.ToPtr(c.convertCharge(pi.LatestCharge))
	}
	return raw
}

func (c *StripeClient) convertCharge(ch *stripe.Charge) Charge {
	raw := Charge{
		ID:            ch.ID,
		Amount:        ch.Amount,
		Status:        string(ch.Status),
		Paid:          ch.Paid,
		Refunded:      ch.Refunded,
		SchemaVersion: c.version,
	}
	if ch.PaymentIntent != nil {
		raw.PaymentIntent = lo.ToPtr(ch.PaymentIntent.ID)
	}
	if ch.FailureMessage != "" {
		raw.FailureMessage = lo.ToPtr(ch.FailureMessage)
	}
	if ch.ReceiptURL != "" {
		raw.ReceiptURL = lo.ToPtr(ch.ReceiptURL)
	}
	return raw
}

func (c *StripeClient) wrapErr(err error, msg string, details map[string]any) error {
	upstreamMsg := err.Error()
	if stripeErr, ok := err.(*stripe.Error); ok && stripeErr.Msg != "" {
		upstreamMsg = stripeErr.Msg
	}
	details["error"] = upstreamMsg

	c.logger.Errorw(msg, "error", err)

	return ierr.NewError(msg).
		WithHint(upstreamMsg).
		WithReportableDetails(details).
		Mark(ierr.ErrUpstream)
}
