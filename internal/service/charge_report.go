package service

import (
	"context"

	"github.com/billinglens/billinglens/internal/api/dto"
	domain "github.com/billinglens/billinglens/internal/domain/billing"
	ierr "github.com/billinglens/billinglens/internal/errors"
	"github.com/billinglens/billinglens/internal/logger"
	"github.com/billinglens/billinglens/internal/schema"
	"github.com/billinglens/billinglens/internal/types"
	"github.com/billinglens/billinglens/internal/upstream"
	"github.com/samber/lo"
)

const defaultPaymentIntentAmount = 2000

// ChargeReportService creates payment intents and reports on their
// charges across schema versions: older versions embed the charge list
// on the intent, newer ones serve charges separately.
type ChargeReportService interface {
	CreatePaymentIntent(ctx context.Context, req *dto.CreatePaymentIntentRequest) (*dto.CreatePaymentIntentResponse, error)
	GetPaymentDetails(ctx context.Context, paymentIntentID string) (*dto.PaymentDetailsResponse, error)
	GetLatestChargeDetails(ctx context.Context, paymentIntentID string) (*dto.LatestChargeResponse, error)
	CheckPaymentStatus(ctx context.Context, paymentIntentID string) (*dto.PaymentStatusResponse, error)
}

type chargeReportService struct {
	client  upstream.Client
	adapter *schema.Adapter
	logger  *logger.Logger
}

func NewChargeReportService(client upstream.Client, adapter *schema.Adapter, log *logger.Logger) ChargeReportService {
	return &chargeReportService{
		client:  client,
		adapter: adapter,
		logger:  log,
	}
}

func (s *chargeReportService) CreatePaymentIntent(ctx context.Context, req *dto.CreatePaymentIntentRequest) (*dto.CreatePaymentIntentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	amount := req.Amount
	if amount <= 0 {
		amount = defaultPaymentIntentAmount
	}
	currency := req.Currency
	if currency == "" {
		currency = "usd"
	}

	pi, err := s.client.CreatePaymentIntent(ctx, upstream.CreatePaymentIntentParams{
		Amount:   amount,
		Currency: currency,
		Confirm:  req.Confirm,
	})
	if err != nil {
		return nil, err
	}

	return &dto.CreatePaymentIntentResponse{
		ClientSecret:    pi.ClientSecret,
		PaymentIntentID: pi.ID,
	}, nil
}

func (s *chargeReportService) GetPaymentDetails(ctx context.Context, paymentIntentID string) (*dto.PaymentDetailsResponse, error) {
	pi, err := s.client.GetPaymentIntent(ctx, paymentIntentID)
	if err != nil {
		return nil, err
	}

	charges, err := s.chargesFor(ctx, pi)
	if err != nil {
		return nil, err
	}

	summaries := lo.Map(charges, func(ch domain.Charge, _ int) dto.ChargeSummary {
		return dto.ChargeSummary{
			ID:         ch.ID,
			Amount:     ch.Amount,
			Status:     ch.Status,
			ReceiptURL: ch.ReceiptURL,
		}
	})

	return &dto.PaymentDetailsResponse{
		PaymentIntentID: pi.ID,
		Status:          pi.Status,
		Amount:          pi.Amount,
		Charges:         summaries,
		ChargeCount:     len(summaries),
	}, nil
}

func (s *chargeReportService) GetLatestChargeDetails(ctx context.Context, paymentIntentID string) (*dto.LatestChargeResponse, error) {
	pi, err := s.client.GetPaymentIntent(ctx, paymentIntentID)
	if err != nil {
		return nil, err
	}

	latest := s.latestCharge(pi)
	if latest == nil {
		return nil, ierr.NewError("no charges found").
			WithHint("No charges found").
			WithReportableDetails(map[string]any{
				"payment_intent_id": paymentIntentID,
			}).
			Mark(ierr.ErrNotFound)
	}

	return &dto.LatestChargeResponse{
		ChargeID:       latest.ID,
		Amount:         latest.Amount,
		Paid:           latest.Paid,
		Refunded:       latest.Refunded,
		FailureMessage: latest.FailureMessage,
	}, nil
}

func (s *chargeReportService) CheckPaymentStatus(ctx context.Context, paymentIntentID string) (*dto.PaymentStatusResponse, error) {
	pi, err := s.client.GetPaymentIntent(ctx, paymentIntentID)
	if err != nil {
		return nil, err
	}

	charges, err := s.chargesFor(ctx, pi)
	if err != nil {
		return nil, err
	}

	hasSuccessfulCharge := lo.SomeBy(charges, func(ch domain.Charge) bool {
		return ch.Status == types.ChargeStatusSucceeded
	})

	return &dto.PaymentStatusResponse{
		PaymentIntentID:     pi.ID,
		Status:              pi.Status,
		HasCharges:          len(charges) > 0,
		HasSuccessfulCharge: hasSuccessfulCharge,
		TotalCharges:        len(charges),
	}, nil
}

// chargesFor returns the canonical charges of a payment intent. Legacy
// intents embed their charge list; newer versions require a separate
// charge listing filtered by payment intent.
func (s *chargeReportService) chargesFor(ctx context.Context, pi *upstream.PaymentIntent) ([]domain.Charge, error) {
	raw := pi.Charges
	if pi.SchemaVersion != types.SchemaVersionLegacy {
		listed, err := s.client.ListCharges(ctx, upstream.ListChargesParams{
			PaymentIntentID: pi.ID,
		})
		if err != nil {
			return nil, err
		}
		raw = listed
	}

	return lo.Map(raw, func(ch upstream.Charge, _ int) domain.Charge {
		return s.adapter.NormalizeCharge(ch)
	}), nil
}

// latestCharge picks the newest charge visible on the intent: the
// expanded latest-charge reference when the version serves one, else
// the first embedded charge.
func (s *chargeReportService) latestCharge(pi *upstream.PaymentIntent) *domain.Charge {
	if pi.LatestCharge != nil {
		ch := s.adapter.NormalizeCharge(*pi.LatestCharge)
		return &ch
	}
	if len(pi.Charges) > 0 {
		ch := s.adapter.NormalizeCharge(pi.Charges[0])
		return &ch
	}
	return nil
}
