package types

// InvoiceStatus is the lifecycle state of an invoice. The lifecycle is
// read-only here: draft -> open -> paid|void|uncollectible.
type InvoiceStatus string

const (
	InvoiceStatusDraft         InvoiceStatus = "draft"
	InvoiceStatusOpen          InvoiceStatus = "open"
	InvoiceStatusPaid          InvoiceStatus = "paid"
	InvoiceStatusVoid          InvoiceStatus = "void"
	InvoiceStatusUncollectible InvoiceStatus = "uncollectible"
)

func (s InvoiceStatus) String() string {
	return string(s)
}

// ChargeStatusSucceeded is the charge status that marks a settled charge.
const ChargeStatusSucceeded = "succeeded"
