package v1

import (
	"net/http"

	ierr "github.com/billinglens/billinglens/internal/errors"
	"github.com/billinglens/billinglens/internal/logger"
	"github.com/billinglens/billinglens/internal/service"
	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	service service.InvoicePaymentService
	log     *logger.Logger
}

func NewInvoiceHandler(service service.InvoicePaymentService, log *logger.Logger) *InvoiceHandler {
	return &InvoiceHandler{service: service, log: log}
}

// @Summary Get the payment intent behind an invoice
// @Description Resolve the payment intent that settles an invoice
// @Tags Invoices
// @Accept json
// @Produce json
// @Param invoice_id query string true "Invoice ID"
// @Success 200 {object} dto.InvoicePaymentIntentResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /v1/invoices/payment-intent [get]
func (h *InvoiceHandler) GetPaymentIntent(c *gin.Context) {
	invoiceID := c.Query("invoice_id")
	if invoiceID == "" {
		c.Error(ierr.NewError("invoice_id is required").
			WithHint("Invoice ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.GetPaymentIntentFromInvoice(c.Request.Context(), invoiceID)
	if err != nil {
		h.log.Errorw("failed to resolve payment intent for invoice", "error", err, "invoice_id", invoiceID)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Check whether an invoice was paid out of band
// @Description Report whether an invoice settled outside the payment platform
// @Tags Invoices
// @Accept json
// @Produce json
// @Param invoice_id query string true "Invoice ID"
// @Success 200 {object} dto.OutOfBandCheckResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /v1/invoices/out-of-band [get]
func (h *InvoiceHandler) CheckOutOfBand(c *gin.Context) {
	invoiceID := c.Query("invoice_id")
	if invoiceID == "" {
		c.Error(ierr.NewError("invoice_id is required").
			WithHint("Invoice ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CheckOutOfBandPayment(c.Request.Context(), invoiceID)
	if err != nil {
		h.log.Errorw("failed to check out-of-band payment", "error", err, "invoice_id", invoiceID)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Find the invoice settled by a payment intent
// @Description Resolve the invoice a payment intent paid and return its line items
// @Tags Invoices
// @Accept json
// @Produce json
// @Param payment_intent_id query string true "Payment intent ID"
// @Success 200 {object} dto.InvoiceFromPaymentIntentResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /v1/invoices/by-payment-intent [get]
func (h *InvoiceHandler) GetByPaymentIntent(c *gin.Context) {
	paymentIntentID := c.Query("payment_intent_id")
	if paymentIntentID == "" {
		c.Error(ierr.NewError("payment_intent_id is required").
			WithHint("Payment intent ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.GetInvoiceFromPaymentIntent(c.Request.Context(), paymentIntentID)
	if err != nil {
		h.log.Errorw("failed to resolve invoice for payment intent", "error", err, "payment_intent_id", paymentIntentID)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
