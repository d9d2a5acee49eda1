package dto

// InvoicePaymentIntentResponse describes the payment intent that
// settles an invoice.
type InvoicePaymentIntentResponse struct {
	InvoiceID       string `json:"invoiceId"`
	PaymentIntentID string `json:"paymentIntentId"`
	Amount          int64  `json:"amount"`
	Status          string `json:"status"`
	Currency        string `json:"currency"`
	Created         int64  `json:"created"`
	ClientSecret    string `json:"clientSecret"`
}

// OutOfBandCheckResponse reports whether an invoice was settled outside
// the payment platform. HasOutOfBandPayment and PaidOutOfBand carry the
// same derived value; both names are kept for front-end compatibility.
type OutOfBandCheckResponse struct {
	InvoiceID           string `json:"invoiceId"`
	Status              string `json:"status"`
	Paid                bool   `json:"paid"`
	HasPaymentIntent    bool   `json:"hasPaymentIntent"`
	HasOutOfBandPayment bool   `json:"hasOutOfBandPayment"`
	AmountPaid          int64  `json:"amountPaid"`
	AmountDue           int64  `json:"amountDue"`
	PaidOutOfBand       bool   `json:"paidOutOfBand"`
}

// InvoiceLineItemResponse is one billed position on an invoice.
// PriceID and UnitAmount are null when no schema location carried them.
type InvoiceLineItemResponse struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      int64   `json:"amount"`
	Currency    string  `json:"currency"`
	Quantity    int64   `json:"quantity"`
	PriceID     *string `json:"priceId"`
	UnitAmount  *int64  `json:"unitAmount"`
}

// InvoiceFromPaymentIntentResponse is the invoice settled by a payment
// intent, with its line items.
type InvoiceFromPaymentIntentResponse struct {
	PaymentIntentID string                    `json:"paymentIntentId"`
	InvoiceID       string                    `json:"invoiceId"`
	InvoiceNumber   string                    `json:"invoiceNumber"`
	Status          string                    `json:"status"`
	Total           int64                     `json:"total"`
	Subtotal        int64                     `json:"subtotal"`
	AmountDue       int64                     `json:"amountDue"`
	AmountPaid      int64                     `json:"amountPaid"`
	LineItems       []InvoiceLineItemResponse `json:"lineItems"`
}
