package billing

// Charge is the canonical view of a settled or attempted charge.
type Charge struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Status   string `json:"status"`
	Paid     bool   `json:"paid"`
	Refunded bool   `json:"refunded"`
	// Populated only when the charge failed
	FailureMessage *string `json:"failure_message,omitempty"`
	ReceiptURL     *string `json:"receipt_url,omitempty"`
}

// PaymentRecord is the canonical association between an invoice and the
// payment that settles it. Newer schema versions expose these as a
// standalone record list; older versions derive one from the invoice's
// direct payment reference.
type PaymentRecord struct {
	ID        string `json:"id"`
	InvoiceID string `json:"invoice_id"`
	// The settling payment intent; nil for payment records without one
	PaymentIntentID *string `json:"payment_intent_id,omitempty"`
	// Whether the payment has actually settled (a record may exist for a
	// payment that is still in flight)
	Settled bool `json:"settled"`
}
