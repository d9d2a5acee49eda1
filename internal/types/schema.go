package types

import (
	ierr "github.com/billinglens/billinglens/internal/errors"
	"github.com/samber/lo"
)

// SchemaVersion identifies which revision of the payment platform's API
// produced a given record. Field locations differ between revisions, so
// every raw record is tagged with the version that produced it.
type SchemaVersion string

const (
	// SchemaVersionLegacy is the 2022-08-01 API. Billing period bounds live
	// on the subscription itself, invoices carry a direct payment_intent
	// reference and invoice lines expose price objects inline.
	SchemaVersionLegacy SchemaVersion = "2022-08-01"

	// SchemaVersionBasil is the 2025-03-31 "basil" API. Period bounds moved
	// to subscription items, invoice payment references moved to a separate
	// payment record list and line-item pricing is nested.
	SchemaVersionBasil SchemaVersion = "2025-03-31.basil"
)

func (v SchemaVersion) String() string {
	return string(v)
}

func (v SchemaVersion) Validate() error {
	allowed := []SchemaVersion{
		SchemaVersionLegacy,
		SchemaVersionBasil,
	}
	if !lo.Contains(allowed, v) {
		return ierr.NewError("invalid schema version").
			WithHint("Unknown upstream schema version").
			WithReportableDetails(map[string]any{
				"schema_version":   v,
				"allowed_versions": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}
