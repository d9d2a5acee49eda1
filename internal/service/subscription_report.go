package service

import (
	"context"
	"time"

	"github.com/billinglens/billinglens/internal/api/dto"
	"github.com/billinglens/billinglens/internal/billing"
	domain "github.com/billinglens/billinglens/internal/domain/billing"
	ierr "github.com/billinglens/billinglens/internal/errors"
	"github.com/billinglens/billinglens/internal/logger"
	"github.com/billinglens/billinglens/internal/schema"
	"github.com/billinglens/billinglens/internal/types"
	"github.com/billinglens/billinglens/internal/upstream"
)

const listPageLimit = 100

// SubscriptionReportService assembles the subscription-facing reports:
// single-subscription summary, active listing, MRR metrics and batch
// cycle progress. Each report is a pure function of freshly fetched
// upstream records plus the injected clock.
type SubscriptionReportService interface {
	GetSubscriptionSummary(ctx context.Context, subscriptionID string) (*dto.SubscriptionSummaryResponse, error)
	ListActiveSubscriptions(ctx context.Context, customerID string) (*dto.ActiveSubscriptionsResponse, error)
	GetSubscriptionMetrics(ctx context.Context, customerID string) (*dto.SubscriptionMetricsResponse, error)
	GetBillingCycleProgress(ctx context.Context, subscriptionIDs []string) (*dto.BillingCycleProgressResponse, error)
}

type subscriptionReportService struct {
	client  upstream.Client
	adapter *schema.Adapter
	logger  *logger.Logger
	now     func() time.Time
}

func NewSubscriptionReportService(client upstream.Client, adapter *schema.Adapter, log *logger.Logger) SubscriptionReportService {
	return &subscriptionReportService{
		client:  client,
		adapter: adapter,
		logger:  log,
		now:     time.Now,
	}
}

// WithClock replaces the time source. Reports must be reproducible, so
// tests pin the clock instead of sleeping.
func (s *subscriptionReportService) WithClock(now func() time.Time) SubscriptionReportService {
	s.now = now
	return s
}

// GetSubscriptionSummary reports the billing period of one
// subscription. The percent-complete figure is the remaining-based
// form: (totalDays - rawRemaining) / totalDays.
func (s *subscriptionReportService) GetSubscriptionSummary(ctx context.Context, subscriptionID string) (*dto.SubscriptionSummaryResponse, error) {
	raw, err := s.client.GetSubscription(ctx, subscriptionID)
	if err != nil {
		return nil, err
	}

	sub, err := s.adapter.NormalizeSubscription(*raw)
	if err != nil {
		return nil, err
	}

	progress := billing.Progress(sub.CurrentPeriodStart, sub.CurrentPeriodEnd, s.now())

	resp := &dto.SubscriptionSummaryResponse{
		SubscriptionID:     sub.ID,
		CustomerID:         sub.CustomerID,
		Status:             sub.Status.String(),
		CurrentPeriodStart: sub.CurrentPeriodStart.Unix(),
		CurrentPeriodEnd:   sub.CurrentPeriodEnd.Unix(),
		BillingPeriodDetails: dto.BillingPeriodDetails{
			StartDate:       sub.CurrentPeriodStart.Format(time.DateOnly),
			EndDate:         sub.CurrentPeriodEnd.Format(time.DateOnly),
			TotalDays:       progress.TotalDays,
			DaysRemaining:   progress.DaysRemaining,
			PercentComplete: progress.PercentRemainingBased,
		},
	}

	if item := sub.FirstLineItem(); item != nil {
		resp.Amount = item.UnitAmount
		resp.Interval = item.Interval.String()
	}

	return resp, nil
}

// ListActiveSubscriptions lists a customer's active subscriptions.
// TotalCount is counted over the returned page because newer schema
// versions no longer serve an upstream total; HasMore marks partial
// pages. Rows whose period bounds are unresolvable are still listed
// with their id and status, matching how the upstream listing behaves
// for item-less subscriptions.
func (s *subscriptionReportService) ListActiveSubscriptions(ctx context.Context, customerID string) (*dto.ActiveSubscriptionsResponse, error) {
	list, err := s.client.ListSubscriptions(ctx, upstream.ListSubscriptionsParams{
		CustomerID: customerID,
		Status:     "active",
		Limit:      listPageLimit,
	})
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.ActiveSubscriptionSummary, 0, len(list.Data))
	for _, raw := range list.Data {
		summary := dto.ActiveSubscriptionSummary{
			ID:     raw.ID,
			Status: raw.Status,
		}

		sub, err := s.adapter.NormalizeSubscription(raw)
		if err != nil {
			if ierr.IsMissingPeriodData(err) {
				summaries = append(summaries, summary)
				continue
			}
			return nil, err
		}

		periodEnd := sub.CurrentPeriodEnd.Unix()
		summary.CurrentPeriodEnd = &periodEnd
		if item := sub.FirstLineItem(); item != nil {
			summary.Amount = item.UnitAmount
			summary.Interval = item.Interval.String()
		}
		summaries = append(summaries, summary)
	}

	return &dto.ActiveSubscriptionsResponse{
		CustomerID:          customerID,
		ActiveSubscriptions: summaries,
		TotalCount:          len(summaries),
		HasMore:             list.HasMore,
	}, nil
}

// GetSubscriptionMetrics aggregates all of a customer's subscriptions
// into lifecycle-state counts and MRR. Subscriptions whose period
// bounds are unresolvable still count toward their state bucket; only
// the period is unusable, not the record.
func (s *subscriptionReportService) GetSubscriptionMetrics(ctx context.Context, customerID string) (*dto.SubscriptionMetricsResponse, error) {
	list, err := s.client.ListSubscriptions(ctx, upstream.ListSubscriptionsParams{
		CustomerID: customerID,
		Status:     "all",
		Limit:      listPageLimit,
	})
	if err != nil {
		return nil, err
	}

	subs := make([]domain.Subscription, 0, len(list.Data))
	for _, raw := range list.Data {
		sub, err := s.adapter.NormalizeSubscription(raw)
		if err != nil {
			if ierr.IsMissingPeriodData(err) {
				subs = append(subs, domain.Subscription{
					ID:     raw.ID,
					Status: types.SubscriptionStatus(raw.Status),
				})
				continue
			}
			return nil, err
		}
		subs = append(subs, sub)
	}

	report := billing.AggregateMRR(subs)

	return &dto.SubscriptionMetricsResponse{
		CustomerID:         customerID,
		TotalSubscriptions: report.TotalSubscriptions,
		Metrics: dto.SubscriptionStateCounts{
			Active:   report.ActiveCount,
			PastDue:  report.PastDueCount,
			Canceled: report.CanceledCount,
		},
		MonthlyRecurringRevenue:  report.TotalMRR,
		AverageSubscriptionValue: report.AverageSubscriptionValue,
	}, nil
}

// GetBillingCycleProgress reports period progress for a batch of
// subscriptions. The percent-complete figure here is the elapsed-based
// form: daysElapsed / totalDays. It intentionally differs from the
// summary report's remaining-based form once now falls outside the
// period.
func (s *subscriptionReportService) GetBillingCycleProgress(ctx context.Context, subscriptionIDs []string) (*dto.BillingCycleProgressResponse, error) {
	now := s.now()
	results := make([]dto.SubscriptionCycleProgress, 0, len(subscriptionIDs))

	for _, id := range subscriptionIDs {
		raw, err := s.client.GetSubscription(ctx, id)
		if err != nil {
			return nil, err
		}

		sub, err := s.adapter.NormalizeSubscription(*raw)
		if err != nil {
			return nil, err
		}

		progress := billing.Progress(sub.CurrentPeriodStart, sub.CurrentPeriodEnd, now)

		results = append(results, dto.SubscriptionCycleProgress{
			SubscriptionID:  sub.ID,
			Status:          sub.Status.String(),
			PeriodStart:     sub.CurrentPeriodStart.Unix(),
			PeriodEnd:       sub.CurrentPeriodEnd.Unix(),
			DaysInPeriod:    progress.TotalDays,
			DaysElapsed:     progress.DaysElapsed,
			PercentComplete: progress.PercentElapsed,
		})
	}

	return &dto.BillingCycleProgressResponse{
		Subscriptions: results,
		TotalAnalyzed: len(results),
	}, nil
}
