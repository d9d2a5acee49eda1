package service

import (
	"testing"

	"github.com/billinglens/billinglens/internal/api/dto"
	ierr "github.com/billinglens/billinglens/internal/errors"
	"github.com/billinglens/billinglens/internal/testutil"
	"github.com/billinglens/billinglens/internal/types"
	"github.com/billinglens/billinglens/internal/upstream"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

type ChargeReportServiceSuite struct {
	testutil.BaseServiceSuite
	service ChargeReportService
}

func TestChargeReportService(t *testing.T) {
	suite.Run(t, new(ChargeReportServiceSuite))
}

func (s *ChargeReportServiceSuite) SetupTest() {
	s.BaseServiceSuite.SetupTest()
	s.service = NewChargeReportService(s.GetUpstream(), s.GetAdapter(), s.GetLogger())
}

func (s *ChargeReportServiceSuite) TestCreatePaymentIntentDefaults() {
	resp, err := s.service.CreatePaymentIntent(s.GetContext(), &dto.CreatePaymentIntentRequest{})
	s.NoError(err)

	s.NotEmpty(resp.PaymentIntentID)
	s.NotEmpty(resp.ClientSecret)

	pi, err := s.GetUpstream().GetPaymentIntent(s.GetContext(), resp.PaymentIntentID)
	s.NoError(err)
	s.Equal(int64(2000), pi.Amount)
	s.Equal("usd", pi.Currency)
}

func (s *ChargeReportServiceSuite) TestCreatePaymentIntentExplicitAmount() {
	resp, err := s.service.CreatePaymentIntent(s.GetContext(), &dto.CreatePaymentIntentRequest{
		Amount:   4500,
		Currency: "eur",
	})
	s.NoError(err)

	pi, err := s.GetUpstream().GetPaymentIntent(s.GetContext(), resp.PaymentIntentID)
	s.NoError(err)
	s.Equal(int64(4500), pi.Amount)
	s.Equal("eur", pi.Currency)
}

func (s *ChargeReportServiceSuite) TestCreatePaymentIntentRejectsInvalidRequest() {
	_, err := s.service.CreatePaymentIntent(s.GetContext(), &dto.CreatePaymentIntentRequest{
		Amount: -100,
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))

	_, err = s.service.CreatePaymentIntent(s.GetContext(), &dto.CreatePaymentIntentRequest{
		Amount:   2000,
		Currency: "us",
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *ChargeReportServiceSuite) TestGetPaymentDetailsLegacyEmbeddedCharges() {
	s.GetUpstream().AddPaymentIntent(upstream.PaymentIntent{
		ID:     "pi_1",
		Amount: 2000,
		Status: "succeeded",
		Charges: []upstream.Charge{
			{ID: "ch_1", Amount: 2000, Status: "succeeded", Paid: true, ReceiptURL: lo.ToPtr("https://pay.example.com/receipts/ch_1")},
		},
		SchemaVersion: types.SchemaVersionLegacy,
	})

	resp, err := s.service.GetPaymentDetails(s.GetContext(), "pi_1")
	s.NoError(err)

	s.Equal("pi_1", resp.PaymentIntentID)
	s.Equal(1, resp.ChargeCount)
	s.Len(resp.Charges, 1)
	s.Equal("ch_1", resp.Charges[0].ID)
	s.NotNil(resp.Charges[0].ReceiptURL)
}

func (s *ChargeReportServiceSuite) TestGetPaymentDetailsBasilListedCharges() {
	s.GetUpstream().AddPaymentIntent(upstream.PaymentIntent{
		ID:            "pi_1",
		Amount:        2000,
		Status:        "succeeded",
		SchemaVersion: types.SchemaVersionBasil,
	})
	s.GetUpstream().AddCharge(upstream.Charge{ID: "ch_1", Amount: 1200, Status: "failed", PaymentIntent: lo.ToPtr("pi_1")})
	s.GetUpstream().AddCharge(upstream.Charge{ID: "ch_2", Amount: 2000, Status: "succeeded", Paid: true, PaymentIntent: lo.ToPtr("pi_1")})
	// belongs to another intent and must not leak into the report
	s.GetUpstream().AddCharge(upstream.Charge{ID: "ch_other", Amount: 900, Status: "succeeded", PaymentIntent: lo.ToPtr("pi_other")})

	resp, err := s.service.GetPaymentDetails(s.GetContext(), "pi_1")
	s.NoError(err)

	s.Equal(2, resp.ChargeCount)
	s.Len(resp.Charges, 2)
	for _, ch := range resp.Charges {
		s.NotEqual("ch_other", ch.ID)
	}
}

func (s *ChargeReportServiceSuite) TestGetLatestChargeDetails() {
	s.GetUpstream().AddPaymentIntent(upstream.PaymentIntent{
		ID:     "pi_basil",
		Status: "requires_payment_method",
		LatestCharge: &upstream.Charge{
			ID:             "ch_latest",
			Amount:         2000,
			Status:         "failed",
			FailureMessage: lo.ToPtr("Your card was declined."),
		},
		SchemaVersion: types.SchemaVersionBasil,
	})
	s.GetUpstream().AddPaymentIntent(upstream.PaymentIntent{
		ID:     "pi_legacy",
		Status: "succeeded",
		Charges: []upstream.Charge{
			{ID: "ch_first", Amount: 2000, Status: "succeeded", Paid: true},
			{ID: "ch_older", Amount: 2000, Status: "failed"},
		},
		SchemaVersion: types.SchemaVersionLegacy,
	})

	resp, err := s.service.GetLatestChargeDetails(s.GetContext(), "pi_basil")
	s.NoError(err)
	s.Equal("ch_latest", resp.ChargeID)
	s.False(resp.Paid)
	s.NotNil(resp.FailureMessage)
	s.Equal("Your card was declined.", *resp.FailureMessage)

	resp, err = s.service.GetLatestChargeDetails(s.GetContext(), "pi_legacy")
	s.NoError(err)
	s.Equal("ch_first", resp.ChargeID)
	s.True(resp.Paid)
	s.Nil(resp.FailureMessage)
}

func (s *ChargeReportServiceSuite) TestGetLatestChargeDetailsNoCharges() {
	s.GetUpstream().AddPaymentIntent(upstream.PaymentIntent{
		ID:            "pi_1",
		Status:        "requires_payment_method",
		SchemaVersion: types.SchemaVersionLegacy,
	})

	_, err := s.service.GetLatestChargeDetails(s.GetContext(), "pi_1")
	s.True(ierr.IsNotFound(err))
}

func (s *ChargeReportServiceSuite) TestCheckPaymentStatus() {
	s.GetUpstream().AddPaymentIntent(upstream.PaymentIntent{
		ID:     "pi_1",
		Status: "succeeded",
		Charges: []upstream.Charge{
			{ID: "ch_1", Status: "failed"},
			{ID: "ch_2", Status: "succeeded", Paid: true},
		},
		SchemaVersion: types.SchemaVersionLegacy,
	})

	resp, err := s.service.CheckPaymentStatus(s.GetContext(), "pi_1")
	s.NoError(err)

	s.True(resp.HasCharges)
	s.True(resp.HasSuccessfulCharge)
	s.Equal(2, resp.TotalCharges)
}

func (s *ChargeReportServiceSuite) TestCheckPaymentStatusNoSuccess() {
	s.GetUpstream().AddPaymentIntent(upstream.PaymentIntent{
		ID:            "pi_1",
		Status:        "requires_payment_method",
		SchemaVersion: types.SchemaVersionBasil,
	})

	resp, err := s.service.CheckPaymentStatus(s.GetContext(), "pi_1")
	s.NoError(err)

	s.False(resp.HasCharges)
	s.False(resp.HasSuccessfulCharge)
	s.Equal(0, resp.TotalCharges)
}
