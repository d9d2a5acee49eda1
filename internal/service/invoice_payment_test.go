package service

import (
	"testing"

	ierr "github.com/billinglens/billinglens/internal/errors"
	"github.com/billinglens/billinglens/internal/testutil"
	"github.com/billinglens/billinglens/internal/types"
	"github.com/billinglens/billinglens/internal/upstream"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

type InvoicePaymentServiceSuite struct {
	testutil.BaseServiceSuite
	service InvoicePaymentService
}

func TestInvoicePaymentService(t *testing.T) {
	suite.Run(t, new(InvoicePaymentServiceSuite))
}

func (s *InvoicePaymentServiceSuite) SetupTest() {
	s.BaseServiceSuite.SetupTest()
	s.service = NewInvoicePaymentService(s.GetUpstream(), s.GetAdapter(), s.GetLogger())
}

func (s *InvoicePaymentServiceSuite) TestGetPaymentIntentFromInvoiceLegacy() {
	s.GetUpstream().AddInvoice(upstream.Invoice{
		ID:            "in_1",
		Status:        "paid",
		AmountDue:     2000,
		AmountPaid:    2000,
		PaymentIntent: lo.ToPtr("pi_1"),
		SchemaVersion: types.SchemaVersionLegacy,
	})
	s.GetUpstream().AddPaymentIntent(upstream.PaymentIntent{
		ID:            "pi_1",
		Amount:        2000,
		Currency:      "usd",
		Status:        "succeeded",
		ClientSecret:  "pi_1_secret",
		Created:       1704153600,
		SchemaVersion: types.SchemaVersionLegacy,
	})

	resp, err := s.service.GetPaymentIntentFromInvoice(s.GetContext(), "in_1")
	s.NoError(err)

	s.Equal("in_1", resp.InvoiceID)
	s.Equal("pi_1", resp.PaymentIntentID)
	s.Equal(int64(2000), resp.Amount)
	s.Equal("succeeded", resp.Status)
	s.Equal("usd", resp.Currency)
	s.Equal("pi_1_secret", resp.ClientSecret)
}

func (s *InvoicePaymentServiceSuite) TestGetPaymentIntentFromInvoiceBasil() {
	s.GetUpstream().AddInvoice(upstream.Invoice{
		ID:            "in_1",
		Status:        "paid",
		SchemaVersion: types.SchemaVersionBasil,
	})
	s.GetUpstream().AddInvoicePayment(upstream.InvoicePayment{
		ID:            "inpay_1",
		Invoice:       "in_1",
		PaymentIntent: lo.ToPtr("pi_1"),
		Status:        "paid",
		SchemaVersion: types.SchemaVersionBasil,
	})
	s.GetUpstream().AddPaymentIntent(upstream.PaymentIntent{
		ID:            "pi_1",
		Amount:        2000,
		Status:        "succeeded",
		SchemaVersion: types.SchemaVersionBasil,
	})

	resp, err := s.service.GetPaymentIntentFromInvoice(s.GetContext(), "in_1")
	s.NoError(err)
	s.Equal("pi_1", resp.PaymentIntentID)
}

func (s *InvoicePaymentServiceSuite) TestGetPaymentIntentFromInvoiceNone() {
	s.GetUpstream().AddInvoice(upstream.Invoice{
		ID:            "in_1",
		Status:        "paid",
		SchemaVersion: types.SchemaVersionBasil,
	})

	_, err := s.service.GetPaymentIntentFromInvoice(s.GetContext(), "in_1")
	s.True(ierr.IsNotFound(err))
}

func (s *InvoicePaymentServiceSuite) TestCheckOutOfBandPayment() {
	s.GetUpstream().AddInvoice(upstream.Invoice{
		ID:         "in_1",
		Status:     "paid",
		AmountDue:  2000,
		AmountPaid: 2000,
		// the direct flag from older schema versions is ignored
		PaidOutOfBand: lo.ToPtr(false),
		SchemaVersion: types.SchemaVersionLegacy,
	})

	resp, err := s.service.CheckOutOfBandPayment(s.GetContext(), "in_1")
	s.NoError(err)

	s.True(resp.Paid)
	s.False(resp.HasPaymentIntent)
	s.True(resp.HasOutOfBandPayment)
	s.True(resp.PaidOutOfBand)
	s.Equal(int64(2000), resp.AmountPaid)
}

func (s *InvoicePaymentServiceSuite) TestCheckOutOfBandPaymentOpenInvoice() {
	s.GetUpstream().AddInvoice(upstream.Invoice{
		ID:            "in_1",
		Status:        "open",
		SchemaVersion: types.SchemaVersionBasil,
	})

	resp, err := s.service.CheckOutOfBandPayment(s.GetContext(), "in_1")
	s.NoError(err)

	s.False(resp.Paid)
	s.False(resp.HasOutOfBandPayment)
}

func (s *InvoicePaymentServiceSuite) TestCheckOutOfBandPaymentWithRecord() {
	s.GetUpstream().AddInvoice(upstream.Invoice{
		ID:            "in_1",
		Status:        "paid",
		SchemaVersion: types.SchemaVersionBasil,
	})
	s.GetUpstream().AddInvoicePayment(upstream.InvoicePayment{
		ID:            "inpay_1",
		Invoice:       "in_1",
		PaymentIntent: lo.ToPtr("pi_1"),
		Status:        "paid",
		SchemaVersion: types.SchemaVersionBasil,
	})

	resp, err := s.service.CheckOutOfBandPayment(s.GetContext(), "in_1")
	s.NoError(err)

	s.True(resp.Paid)
	s.True(resp.HasPaymentIntent)
	s.False(resp.HasOutOfBandPayment)
	s.False(resp.PaidOutOfBand)
}

func (s *InvoicePaymentServiceSuite) TestGetInvoiceFromPaymentIntentLegacy() {
	s.GetUpstream().AddPaymentIntent(upstream.PaymentIntent{
		ID:            "pi_1",
		Invoice:       lo.ToPtr("in_1"),
		SchemaVersion: types.SchemaVersionLegacy,
	})
	s.GetUpstream().AddInvoice(upstream.Invoice{
		ID:         "in_1",
		Number:     "INV-0001",
		Status:     "paid",
		Total:      1500,
		Subtotal:   1500,
		AmountPaid: 1500,
		Lines: []upstream.InvoiceLine{
			{
				ID:          "il_1",
				Description: "Starter plan",
				Amount:      1500,
				Currency:    "usd",
				Quantity:    1,
				Price: &upstream.Price{
					ID:         "price_1",
					UnitAmount: lo.ToPtr(int64(1500)),
				},
			},
		},
		SchemaVersion: types.SchemaVersionLegacy,
	})

	resp, err := s.service.GetInvoiceFromPaymentIntent(s.GetContext(), "pi_1")
	s.NoError(err)

	s.Equal("pi_1", resp.PaymentIntentID)
	s.Equal("in_1", resp.InvoiceID)
	s.Equal("INV-0001", resp.InvoiceNumber)
	s.Equal("paid", resp.Status)
	s.Len(resp.LineItems, 1)
	s.NotNil(resp.LineItems[0].PriceID)
	s.Equal("price_1", *resp.LineItems[0].PriceID)
}

func (s *InvoicePaymentServiceSuite) TestGetInvoiceFromPaymentIntentBasil() {
	s.GetUpstream().AddPaymentIntent(upstream.PaymentIntent{
		ID:            "pi_1",
		SchemaVersion: types.SchemaVersionBasil,
	})
	s.GetUpstream().AddInvoicePayment(upstream.InvoicePayment{
		ID:            "inpay_1",
		Invoice:       "in_1",
		PaymentIntent: lo.ToPtr("pi_1"),
		Status:        "paid",
		SchemaVersion: types.SchemaVersionBasil,
	})
	s.GetUpstream().AddInvoice(upstream.Invoice{
		ID:            "in_1",
		Number:        "INV-0002",
		Status:        "paid",
		SchemaVersion: types.SchemaVersionBasil,
	})

	resp, err := s.service.GetInvoiceFromPaymentIntent(s.GetContext(), "pi_1")
	s.NoError(err)
	s.Equal("in_1", resp.InvoiceID)
	s.Equal("INV-0002", resp.InvoiceNumber)
}

func (s *InvoicePaymentServiceSuite) TestGetInvoiceFromPaymentIntentNoLink() {
	s.GetUpstream().AddPaymentIntent(upstream.PaymentIntent{
		ID:            "pi_1",
		SchemaVersion: types.SchemaVersionBasil,
	})

	_, err := s.service.GetInvoiceFromPaymentIntent(s.GetContext(), "pi_1")
	s.True(ierr.IsNotFound(err))
}
