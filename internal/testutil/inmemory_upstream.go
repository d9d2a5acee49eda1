package testutil

import (
	"context"
	"fmt"
	"sync"

	ierr "github.com/billinglens/billinglens/internal/errors"
	"github.com/billinglens/billinglens/internal/upstream"
	"github.com/samber/lo"
)

// InMemoryUpstream implements upstream.Client against maps, so service
// tests run without the payment platform. Records are returned as
// stored; callers seed raw records tagged with whatever schema version
// the scenario needs.
type InMemoryUpstream struct {
	mu              sync.RWMutex
	subscriptions   map[string]*upstream.Subscription
	invoices        map[string]*upstream.Invoice
	paymentIntents  map[string]*upstream.PaymentIntent
	invoicePayments []upstream.InvoicePayment
	charges         []upstream.Charge
	publishableKey  string
	nextIntent      int
}

func NewInMemoryUpstream() *InMemoryUpstream {
	return &InMemoryUpstream{
		subscriptions:  make(map[string]*upstream.Subscription),
		invoices:       make(map[string]*upstream.Invoice),
		paymentIntents: make(map[string]*upstream.PaymentIntent),
		publishableKey: "pk_test_inmemory",
	}
}

// Clear resets all stored data
func (m *InMemoryUpstream) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subscriptions = make(map[string]*upstream.Subscription)
	m.invoices = make(map[string]*upstream.Invoice)
	m.paymentIntents = make(map[string]*upstream.PaymentIntent)
	m.invoicePayments = nil
	m.charges = nil
	m.nextIntent = 0
}

func (m *InMemoryUpstream) AddSubscription(sub upstream.Subscription) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subscriptions[sub.ID] = &sub
}

func (m *InMemoryUpstream) AddInvoice(inv upstream.Invoice) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invoices[inv.ID] = &inv
}

func (m *InMemoryUpstream) AddPaymentIntent(pi upstream.PaymentIntent) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.paymentIntents[pi.ID] = &pi
}

func (m *InMemoryUpstream) AddInvoicePayment(ip upstream.InvoicePayment) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invoicePayments = append(m.invoicePayments, ip)
}

func (m *InMemoryUpstream) AddCharge(ch upstream.Charge) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.charges = append(m.charges, ch)
}

func (m *InMemoryUpstream) GetSubscription(ctx context.Context, id string) (*upstream.Subscription, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sub, ok := m.subscriptions[id]
	if !ok {
		return nil, notFound("subscription", id)
	}
	copied := *sub
	return &copied, nil
}

func (m *InMemoryUpstream) ListSubscriptions(ctx context.Context, params upstream.ListSubscriptionsParams) (*upstream.SubscriptionList, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	subs := lo.Filter(lo.Values(m.subscriptions), func(sub *upstream.Subscription, _ int) bool {
		if params.CustomerID != "" && sub.Customer != params.CustomerID {
			return false
		}
		if params.Status != "" && params.Status != "all" && sub.Status != params.Status {
			return false
		}
		return true
	})

	data := lo.Map(subs, func(sub *upstream.Subscription, _ int) upstream.Subscription {
		return *sub
	})

	hasMore := false
	if params.Limit > 0 && int64(len(data)) > params.Limit {
		data = data[:params.Limit]
		hasMore = true
	}

	return &upstream.SubscriptionList{Data: data, HasMore: hasMore}, nil
}

func (m *InMemoryUpstream) GetInvoice(ctx context.Context, id string) (*upstream.Invoice, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	inv, ok := m.invoices[id]
	if !ok {
		return nil, notFound("invoice", id)
	}
	copied := *inv
	return &copied, nil
}

func (m *InMemoryUpstream) ListInvoicePayments(ctx context.Context, params upstream.ListInvoicePaymentsParams) ([]upstream.InvoicePayment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return lo.Filter(m.invoicePayments, func(ip upstream.InvoicePayment, _ int) bool {
		if params.InvoiceID != "" && ip.Invoice != params.InvoiceID {
			return false
		}
		if params.PaymentIntentID != "" {
			if ip.PaymentIntent == nil || *ip.PaymentIntent != params.PaymentIntentID {
				return false
			}
		}
		return true
	}), nil
}

func (m *InMemoryUpstream) GetPaymentIntent(ctx context.Context, id string) (*upstream.PaymentIntent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	pi, ok := m.paymentIntents[id]
	if !ok {
		return nil, notFound("payment intent", id)
	}
	copied := *pi
	return &copied, nil
}

func (m *InMemoryUpstream) CreatePaymentIntent(ctx context.Context, params upstream.CreatePaymentIntentParams) (*upstream.PaymentIntent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextIntent++
	pi := &upstream.PaymentIntent{
		ID:           fmt.Sprintf("pi_test_%d", m.nextIntent),
		Amount:       params.Amount,
		Currency:     params.Currency,
		Status:       "requires_payment_method",
		ClientSecret: fmt.Sprintf("pi_test_%d_secret", m.nextIntent),
	}
	if params.Confirm {
		pi.Status = "succeeded"
	}
	m.paymentIntents[pi.ID] = pi

	copied := *pi
	return &copied, nil
}

func (m *InMemoryUpstream) ListCharges(ctx context.Context, params upstream.ListChargesParams) ([]upstream.Charge, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return lo.Filter(m.charges, func(ch upstream.Charge, _ int) bool {
		if params.PaymentIntentID == "" {
			return true
		}
		return ch.PaymentIntent != nil && *ch.PaymentIntent == params.PaymentIntentID
	}), nil
}

func (m *InMemoryUpstream) PublishableKey(ctx context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.publishableKey, nil
}

func notFound(kind, id string) error {
	return ierr.NewError(kind + " not found").
		WithHint("Resource not found").
		WithReportableDetails(map[string]any{
			"id": id,
		}).
		Mark(ierr.ErrNotFound)
}
