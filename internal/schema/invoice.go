package schema

import (
	"github.com/billinglens/billinglens/internal/domain/billing"
	"github.com/billinglens/billinglens/internal/types"
	"github.com/billinglens/billinglens/internal/upstream"
)

// paymentRefStrategy attempts to locate the payment intent that settles
// an invoice. The secondary payment record set comes from the caller;
// the adapter never fetches it.
type paymentRefStrategy struct {
	name    string
	extract func(raw upstream.Invoice, payments []upstream.InvoicePayment) *string
}

var (
	directPaymentRef = paymentRefStrategy{
		name: "direct_field",
		extract: func(raw upstream.Invoice, _ []upstream.InvoicePayment) *string {
			return raw.PaymentIntent
		},
	}

	// First matching payment record in upstream list order. An empty
	// result means "no payment", never an error.
	paymentRecordLookup = paymentRefStrategy{
		name: "payment_record_lookup",
		extract: func(raw upstream.Invoice, payments []upstream.InvoicePayment) *string {
			for _, p := range payments {
				if p.Invoice != "" && p.Invoice != raw.ID {
					continue
				}
				if p.PaymentIntent != nil {
					return p.PaymentIntent
				}
			}
			return nil
		},
	}

	paymentRefStrategies = map[types.SchemaVersion][]paymentRefStrategy{
		types.SchemaVersionLegacy: {directPaymentRef, paymentRecordLookup},
		types.SchemaVersionBasil:  {paymentRecordLookup, directPaymentRef},
	}

	defaultPaymentRefChain = []paymentRefStrategy{directPaymentRef, paymentRecordLookup}
)

// linePriceStrategy attempts to locate price id and unit amount on a
// raw invoice line.
type linePriceStrategy struct {
	name    string
	extract func(line upstream.InvoiceLine) (priceID *string, unitAmount *int64, ok bool)
}

var (
	inlineLinePrice = linePriceStrategy{
		name: "inline_price",
		extract: func(line upstream.InvoiceLine) (*string, *int64, bool) {
			if line.Price == nil {
				return nil, nil, false
			}
			var idPtr *string
			if line.Price.ID != "" {
				priceID := line.Price.ID
				idPtr = &priceID
			}
			return idPtr, line.Price.UnitAmount, idPtr != nil || line.Price.UnitAmount != nil
		},
	}

	nestedLinePricing = linePriceStrategy{
		name: "nested_pricing",
		extract: func(line upstream.InvoiceLine) (*string, *int64, bool) {
			if line.Pricing == nil {
				return nil, nil, false
			}
			var idPtr *string
			if line.Pricing.PriceDetails != nil && line.Pricing.PriceDetails.Price != "" {
				priceID := line.Pricing.PriceDetails.Price
				idPtr = &priceID
			}
			var amountPtr *int64
			if line.Pricing.UnitAmountDecimal != nil {
				amount := line.Pricing.UnitAmountDecimal.IntPart()
				amountPtr = &amount
			}
			return idPtr, amountPtr, idPtr != nil || amountPtr != nil
		},
	}

	linePriceStrategies = map[types.SchemaVersion][]linePriceStrategy{
		types.SchemaVersionLegacy: {inlineLinePrice, nestedLinePricing},
		types.SchemaVersionBasil:  {nestedLinePricing, inlineLinePrice},
	}

	defaultLinePriceChain = []linePriceStrategy{inlineLinePrice, nestedLinePricing}
)

// NormalizeInvoice extracts the canonical invoice view from a raw
// record. The payments slice is the secondary record set for versions
// whose invoices no longer carry a direct payment reference; callers
// that already know the invoice has none may pass nil. Price fields on
// lines stay nil when no known location carries them.
func (a *Adapter) NormalizeInvoice(raw upstream.Invoice, payments []upstream.InvoicePayment) (billing.Invoice, error) {
	inv := billing.Invoice{
		ID:         raw.ID,
		Number:     raw.Number,
		Status:     types.InvoiceStatus(raw.Status),
		AmountDue:  raw.AmountDue,
		AmountPaid: raw.AmountPaid,
		Total:      raw.Total,
		Subtotal:   raw.Subtotal,
		LineItems:  make([]billing.InvoiceLineItem, 0, len(raw.Lines)),
	}

	for _, strategy := range chainFor(paymentRefStrategies, raw.SchemaVersion, defaultPaymentRefChain) {
		if ref := strategy.extract(raw, payments); ref != nil {
			inv.PaymentIntentID = ref
			break
		}
	}

	priceChain := chainFor(linePriceStrategies, raw.SchemaVersion, defaultLinePriceChain)
	for _, line := range raw.Lines {
		item := billing.InvoiceLineItem{
			ID:          line.ID,
			Description: line.Description,
			Amount:      line.Amount,
			Currency:    line.Currency,
			Quantity:    line.Quantity,
		}
		for _, strategy := range priceChain {
			priceID, unitAmount, ok := strategy.extract(line)
			if !ok {
				continue
			}
			item.PriceID = priceID
			item.UnitAmount = unitAmount
			break
		}
		inv.LineItems = append(inv.LineItems, item)
	}

	return inv, nil
}
