// Package schema normalizes raw upstream records into canonical,
// version-independent representations. Field lookup is driven by small
// strategy tables keyed by the record's schema version: each version
// maps to an ordered list of named extraction strategies, and the first
// strategy that yields a value wins. Records tagged with an unknown
// version run the full chain, legacy locations first.
package schema

import (
	"github.com/billinglens/billinglens/internal/domain/billing"
	"github.com/billinglens/billinglens/internal/logger"
	"github.com/billinglens/billinglens/internal/types"
	"github.com/billinglens/billinglens/internal/upstream"
)

// Adapter is a pure, stateless transform over already-fetched records.
// It never calls the upstream API; secondary record sets needed for
// newer-schema resolution are supplied by the caller.
type Adapter struct {
	logger *logger.Logger
}

func NewAdapter(log *logger.Logger) *Adapter {
	return &Adapter{logger: log}
}

// chainFor selects the strategy chain for a version, falling back to the
// full default chain when the version is unknown.
func chainFor[S any](table map[types.SchemaVersion][]S, version types.SchemaVersion, fallback []S) []S {
	if chain, ok := table[version]; ok {
		return chain
	}
	return fallback
}

// NormalizeCharge maps a raw charge onto its canonical form. Charges
// have not moved fields between schema versions, so no strategy table
// is involved.
func (a *Adapter) NormalizeCharge(raw upstream.Charge) billing.Charge {
	return billing.Charge{
		ID:             raw.ID,
		Amount:         raw.Amount,
		Status:         raw.Status,
		Paid:           raw.Paid,
		Refunded:       raw.Refunded,
		FailureMessage: raw.FailureMessage,
		ReceiptURL:     raw.ReceiptURL,
	}
}

// NormalizePaymentRecord maps a raw invoice payment onto its canonical
// form. A record is settled once its status reaches paid.
func (a *Adapter) NormalizePaymentRecord(raw upstream.InvoicePayment) billing.PaymentRecord {
	return billing.PaymentRecord{
		ID:              raw.ID,
		InvoiceID:       raw.Invoice,
		PaymentIntentID: raw.PaymentIntent,
		Settled:         raw.Status == "paid",
	}
}
