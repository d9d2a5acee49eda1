package v1

import (
	"net/http"

	"github.com/billinglens/billinglens/internal/api/dto"
	ierr "github.com/billinglens/billinglens/internal/errors"
	"github.com/billinglens/billinglens/internal/logger"
	"github.com/billinglens/billinglens/internal/service"
	"github.com/billinglens/billinglens/internal/upstream"
	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	service service.ChargeReportService
	client  upstream.Client
	log     *logger.Logger
}

func NewPaymentHandler(service service.ChargeReportService, client upstream.Client, log *logger.Logger) *PaymentHandler {
	return &PaymentHandler{service: service, client: client, log: log}
}

// @Summary Get front-end configuration
// @Description Return the publishable key the browser SDK needs
// @Tags Config
// @Produce json
// @Success 200 {object} dto.ConfigResponse
// @Router /config [get]
func (h *PaymentHandler) GetConfig(c *gin.Context) {
	key, err := h.client.PublishableKey(c.Request.Context())
	if err != nil {
		h.log.Errorw("failed to fetch publishable key", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ConfigResponse{PublishableKey: key})
}

// @Summary Create a payment intent
// @Description Create a new payment intent and return its client secret
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body dto.CreatePaymentIntentRequest true "Payment intent configuration"
// @Success 201 {object} dto.CreatePaymentIntentResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /v1/payment-intents [post]
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	var req dto.CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreatePaymentIntent(c.Request.Context(), &req)
	if err != nil {
		h.log.Errorw("failed to create payment intent", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get payment details
// @Description List the charges attached to a payment intent
// @Tags Payments
// @Accept json
// @Produce json
// @Param payment_intent_id query string true "Payment intent ID"
// @Success 200 {object} dto.PaymentDetailsResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /v1/payment-intents/details [get]
func (h *PaymentHandler) GetPaymentDetails(c *gin.Context) {
	paymentIntentID := c.Query("payment_intent_id")
	if paymentIntentID == "" {
		c.Error(ierr.NewError("payment_intent_id is required").
			WithHint("Payment intent ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.GetPaymentDetails(c.Request.Context(), paymentIntentID)
	if err != nil {
		h.log.Errorw("failed to get payment details", "error", err, "payment_intent_id", paymentIntentID)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Get the latest charge on a payment intent
// @Description Return the most recent charge, including its failure message when it failed
// @Tags Payments
// @Accept json
// @Produce json
// @Param payment_intent_id query string true "Payment intent ID"
// @Success 200 {object} dto.LatestChargeResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /v1/payment-intents/latest-charge [get]
func (h *PaymentHandler) GetLatestCharge(c *gin.Context) {
	paymentIntentID := c.Query("payment_intent_id")
	if paymentIntentID == "" {
		c.Error(ierr.NewError("payment_intent_id is required").
			WithHint("Payment intent ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.GetLatestChargeDetails(c.Request.Context(), paymentIntentID)
	if err != nil {
		h.log.Errorw("failed to get latest charge", "error", err, "payment_intent_id", paymentIntentID)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Check payment status
// @Description Report whether a payment intent has any successful charges
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body dto.CheckPaymentStatusRequest true "Status check request"
// @Success 200 {object} dto.PaymentStatusResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /v1/payment-intents/status [post]
func (h *PaymentHandler) CheckPaymentStatus(c *gin.Context) {
	var req dto.CheckPaymentStatusRequest
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

	resp, err := h.service.CheckPaymentStatus(c.Request.Context(), req.PaymentIntentID)
	if err != nil {
		h.log.Errorw("failed to check payment status", "error", err, "payment_intent_id", req.PaymentIntentID)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
