package billing

import (
	"github.com/billinglens/billinglens/internal/types"
)

// Invoice is the canonical, version-independent view of an upstream
// invoice. Amounts are integer minor currency units.
type Invoice struct {
	ID     string              `json:"id"`
	Number string              `json:"number,omitempty"`
	Status types.InvoiceStatus `json:"status"`
	// The amount still owed on the invoice
	AmountDue int64 `json:"amount_due"`
	// The amount already collected
	AmountPaid int64 `json:"amount_paid"`
	Total      int64 `json:"total"`
	Subtotal   int64 `json:"subtotal"`
	// Ordered line items in upstream list order
	LineItems []InvoiceLineItem `json:"line_items"`
	// Reference to the payment intent that settles this invoice. Nil when
	// no payment is linked in any schema location (possibly out of band).
	PaymentIntentID *string `json:"payment_intent_id,omitempty"`
}

// InvoiceLineItem is one billed position on an invoice. PriceID and
// UnitAmount are resolved across schema versions and nil when absent.
type InvoiceLineItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description,omitempty"`
	Amount      int64   `json:"amount"`
	Currency    string  `json:"currency"`
	Quantity    int64   `json:"quantity"`
	PriceID     *string `json:"price_id,omitempty"`
	UnitAmount  *int64  `json:"unit_amount,omitempty"`
}

// IsPaid reports whether the invoice lifecycle has reached paid.
func (i *Invoice) IsPaid() bool {
	return i.Status == types.InvoiceStatusPaid
}
