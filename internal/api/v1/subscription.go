package v1

import (
	"net/http"

	"github.com/billinglens/billinglens/internal/api/dto"
	ierr "github.com/billinglens/billinglens/internal/errors"
	"github.com/billinglens/billinglens/internal/logger"
	"github.com/billinglens/billinglens/internal/service"
	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	service service.SubscriptionReportService
	log     *logger.Logger
}

func NewSubscriptionHandler(service service.SubscriptionReportService, log *logger.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{service: service, log: log}
}

// @Summary Get a subscription billing summary
// @Description Get the billing period bounds and progress for a subscription
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param subscription_id query string true "Subscription ID"
// @Success 200 {object} dto.SubscriptionSummaryResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 422 {object} ierr.ErrorResponse
// @Router /v1/subscriptions/summary [get]
func (h *SubscriptionHandler) GetSummary(c *gin.Context) {
	subscriptionID := c.Query("subscription_id")
	if subscriptionID == "" {
		c.Error(ierr.NewError("subscription_id is required").
			WithHint("Subscription ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.GetSubscriptionSummary(c.Request.Context(), subscriptionID)
	if err != nil {
		h.log.Errorw("failed to get subscription summary", "error", err, "subscription_id", subscriptionID)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List active subscriptions
// @Description List active subscriptions for a customer with billing period details
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param customer_id query string true "Customer ID"
// @Success 200 {object} dto.ActiveSubscriptionsResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /v1/subscriptions/active [get]
func (h *SubscriptionHandler) ListActive(c *gin.Context) {
	customerID := c.Query("customer_id")
	if customerID == "" {
		c.Error(ierr.NewError("customer_id is required").
			WithHint("Customer ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListActiveSubscriptions(c.Request.Context(), customerID)
	if err != nil {
		h.log.Errorw("failed to list active subscriptions", "error", err, "customer_id", customerID)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Get subscription metrics
// @Description Compute MRR and state counts over all of a customer's subscriptions
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param request body dto.SubscriptionMetricsRequest true "Metrics request"
// @Success 200 {object} dto.SubscriptionMetricsResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /v1/subscriptions/metrics [post]
func (h *SubscriptionHandler) GetMetrics(c *gin.Context) {
	var req dto.SubscriptionMetricsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	if err := req.Validate(); err != nil {
		c.Error(err)
		return
	}

	resp, err := h.service.GetSubscriptionMetrics(c.Request.Context(), req.CustomerID)
	if err != nil {
		h.log.Errorw("failed to get subscription metrics", "error", err, "customer_id", req.CustomerID)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Get billing cycle progress
// @Description Report days elapsed and remaining for a batch of subscriptions
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param request body dto.BillingCycleProgressRequest true "Cycle progress request"
// @Success 200 {object} dto.BillingCycleProgressResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /v1/subscriptions/cycle-progress [post]
func (h *SubscriptionHandler) GetCycleProgress(c *gin.Context) {
	var req dto.BillingCycleProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	if err := req.Validate(); err != nil {
		c.Error(err)
		return
	}

	resp, err := h.service.GetBillingCycleProgress(c.Request.Context(), req.SubscriptionIDs)
	if err != nil {
		h.log.Errorw("failed to get billing cycle progress", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
