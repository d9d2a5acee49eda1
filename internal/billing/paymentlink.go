package billing

import (
	domain "github.com/billinglens/billinglens/internal/domain/billing"
	ierr "github.com/billinglens/billinglens/internal/errors"
)

// ResolvePaymentForInvoice finds the payment record that settles the
// given invoice. When several records exist the first in upstream list
// order wins; partial payments beyond the first match are not
// reconciled. A missing record is a not-found outcome, not a failure of
// the invoice itself.
func ResolvePaymentForInvoice(invoiceID string, records []domain.PaymentRecord) (*domain.PaymentRecord, error) {
	for i := range records {
		if records[i].InvoiceID == invoiceID {
			return &records[i], nil
		}
	}
	return nil, ierr.NewError("no payment found for invoice").
		WithHint("No payments found for this invoice").
		WithReportableDetails(map[string]any{
			"invoice_id": invoiceID,
		}).
		Mark(ierr.ErrNotFound)
}

// ResolveInvoiceForPaymentIntent finds the invoice settled by the given
// payment intent, first match in upstream list order.
func ResolveInvoiceForPaymentIntent(paymentIntentID string, records []domain.PaymentRecord) (string, error) {
	for _, record := range records {
		if record.PaymentIntentID != nil && *record.PaymentIntentID == paymentIntentID {
			return record.InvoiceID, nil
		}
	}
	return "", ierr.NewError("no invoice found for payment intent").
		WithHint("No invoice found for this payment intent").
		WithReportableDetails(map[string]any{
			"payment_intent_id": paymentIntentID,
		}).
		Mark(ierr.ErrNotFound)
}

// IsPaidOutOfBand reports whether the invoice was settled outside the
// payment platform: it is paid yet no payment record exists for it and
// no direct payment reference was resolvable. This is always recomputed
// from the invoice state and its payment records; older schema versions
// expose an equivalent flag directly but it is never trusted verbatim.
func IsPaidOutOfBand(invoice domain.Invoice, records []domain.PaymentRecord) bool {
	if !invoice.IsPaid() {
		return false
	}
	if invoice.PaymentIntentID != nil {
		return false
	}
	for _, record := range records {
		if record.InvoiceID == invoice.ID {
			return false
		}
	}
	return true
}
