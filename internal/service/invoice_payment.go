package service

import (
	"context"

	"github.com/billinglens/billinglens/internal/api/dto"
	"github.com/billinglens/billinglens/internal/billing"
	domain "github.com/billinglens/billinglens/internal/domain/billing"
	ierr "github.com/billinglens/billinglens/internal/errors"
	"github.com/billinglens/billinglens/internal/logger"
	"github.com/billinglens/billinglens/internal/schema"
	"github.com/billinglens/billinglens/internal/upstream"
	"github.com/samber/lo"
)

// InvoicePaymentService resolves the bidirectional link between
// invoices and the payments that settle them, across schema versions.
type InvoicePaymentService interface {
	GetPaymentIntentFromInvoice(ctx context.Context, invoiceID string) (*dto.InvoicePaymentIntentResponse, error)
	CheckOutOfBandPayment(ctx context.Context, invoiceID string) (*dto.OutOfBandCheckResponse, error)
	GetInvoiceFromPaymentIntent(ctx context.Context, paymentIntentID string) (*dto.InvoiceFromPaymentIntentResponse, error)
}

type invoicePaymentService struct {
	client  upstream.Client
	adapter *schema.Adapter
	logger  *logger.Logger
}

func NewInvoicePaymentService(client upstream.Client, adapter *schema.Adapter, log *logger.Logger) InvoicePaymentService {
	return &invoicePaymentService{
		client:  client,
		adapter: adapter,
		logger:  log,
	}
}

// GetPaymentIntentFromInvoice finds the payment intent settling an
// invoice. Older schema invoices carry the reference directly; newer
// ones need the payment record lookup, which the service fetches and
// hands to the adapter.
func (s *invoicePaymentService) GetPaymentIntentFromInvoice(ctx context.Context, invoiceID string) (*dto.InvoicePaymentIntentResponse, error) {
	raw, payments, err := s.fetchInvoiceWithPayments(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	inv, err := s.adapter.NormalizeInvoice(*raw, payments)
	if err != nil {
		return nil, err
	}

	if inv.PaymentIntentID == nil {
		return nil, ierr.NewError("no payment intent found for invoice").
			WithHint("No payment intent found for this invoice").
			WithReportableDetails(map[string]any{
				"invoice_id": invoiceID,
			}).
			Mark(ierr.ErrNotFound)
	}

	pi, err := s.client.GetPaymentIntent(ctx, *inv.PaymentIntentID)
	if err != nil {
		return nil, err
	}

	return &dto.InvoicePaymentIntentResponse{
		InvoiceID:       inv.ID,
		PaymentIntentID: pi.ID,
		Amount:          pi.Amount,
		Status:          pi.Status,
		Currency:        pi.Currency,
		Created:         pi.Created,
		ClientSecret:    pi.ClientSecret,
	}, nil
}

// CheckOutOfBandPayment reports whether an invoice was settled outside
// the platform. The out-of-band flag is always derived from the paid
// state plus the absence of payment records; the legacy schema's direct
// flag is never trusted verbatim.
func (s *invoicePaymentService) CheckOutOfBandPayment(ctx context.Context, invoiceID string) (*dto.OutOfBandCheckResponse, error) {
	raw, err := s.client.GetInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	payments, err := s.client.ListInvoicePayments(ctx, upstream.ListInvoicePaymentsParams{
		InvoiceID: invoiceID,
	})
	if err != nil {
		return nil, err
	}

	inv, err := s.adapter.NormalizeInvoice(*raw, payments)
	if err != nil {
		return nil, err
	}

	records := lo.Map(payments, func(p upstream.InvoicePayment, _ int) domain.PaymentRecord {
		return s.adapter.NormalizePaymentRecord(p)
	})

	outOfBand := billing.IsPaidOutOfBand(inv, records)

	return &dto.OutOfBandCheckResponse{
		InvoiceID:           inv.ID,
		Status:              inv.Status.String(),
		Paid:                inv.IsPaid(),
		HasPaymentIntent:    inv.PaymentIntentID != nil,
		HasOutOfBandPayment: outOfBand,
		AmountPaid:          inv.AmountPaid,
		AmountDue:           inv.AmountDue,
		PaidOutOfBand:       outOfBand,
	}, nil
}

// GetInvoiceFromPaymentIntent finds the invoice a payment intent
// settled, with its line items resolved across schema versions.
func (s *invoicePaymentService) GetInvoiceFromPaymentIntent(ctx context.Context, paymentIntentID string) (*dto.InvoiceFromPaymentIntentResponse, error) {
	pi, err := s.client.GetPaymentIntent(ctx, paymentIntentID)
	if err != nil {
		return nil, err
	}

	var payments []upstream.InvoicePayment
	invoiceID := ""
	if pi.Invoice != nil {
		invoiceID = *pi.Invoice
	} else {
		payments, err = s.client.ListInvoicePayments(ctx, upstream.ListInvoicePaymentsParams{
			PaymentIntentID: paymentIntentID,
		})
		if err != nil {
			return nil, err
		}

		records := lo.Map(payments, func(p upstream.InvoicePayment, _ int) domain.PaymentRecord {
			return s.adapter.NormalizePaymentRecord(p)
		})
		invoiceID, err = billing.ResolveInvoiceForPaymentIntent(paymentIntentID, records)
		if err != nil {
			return nil, err
		}
	}

	raw, err := s.client.GetInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	inv, err := s.adapter.NormalizeInvoice(*raw, payments)
	if err != nil {
		return nil, err
	}

	lineItems := lo.Map(inv.LineItems, func(item domain.InvoiceLineItem, _ int) dto.InvoiceLineItemResponse {
		return dto.InvoiceLineItemResponse{
			ID:          item.ID,
			Description: item.Description,
			Amount:      item.Amount,
			Currency:    item.Currency,
			Quantity:    item.Quantity,
			PriceID:     item.PriceID,
			UnitAmount:  item.UnitAmount,
		}
	})

	return &dto.InvoiceFromPaymentIntentResponse{
		PaymentIntentID: paymentIntentID,
		InvoiceID:       inv.ID,
		InvoiceNumber:   inv.Number,
		Status:          inv.Status.String(),
		Total:           inv.Total,
		Subtotal:        inv.Subtotal,
		AmountDue:       inv.AmountDue,
		AmountPaid:      inv.AmountPaid,
		LineItems:       lineItems,
	}, nil
}

// fetchInvoiceWithPayments retrieves an invoice and, when its schema
// version carries no direct payment reference, the payment record set
// needed to resolve one.
func (s *invoicePaymentService) fetchInvoiceWithPayments(ctx context.Context, invoiceID string) (*upstream.Invoice, []upstream.InvoicePayment, error) {
	raw, err := s.client.GetInvoice(ctx, invoiceID)
	if err != nil {
		return nil, nil, err
	}

	if raw.PaymentIntent != nil {
		return raw, nil, nil
	}

	payments, err := s.client.ListInvoicePayments(ctx, upstream.ListInvoicePaymentsParams{
		InvoiceID: invoiceID,
	})
	if err != nil {
		return nil, nil, err
	}

	return raw, payments, nil
}
