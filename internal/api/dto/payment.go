package dto

import (
	"github.com/billinglens/billinglens/internal/validator"
)

// CreatePaymentIntentRequest creates a new payment intent. Amount
// defaults to 2000 minor units and currency to "usd" when omitted.
type CreatePaymentIntentRequest struct {
	Amount   int64  `json:"amount" validate:"gte=0"`
	Currency string `json:"currency" validate:"omitempty,len=3"`
	Confirm  bool   `json:"confirm"`
}

func (r *CreatePaymentIntentRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// CreatePaymentIntentResponse returns the client secret the front end
// needs to confirm the payment.
type CreatePaymentIntentResponse struct {
	ClientSecret    string `json:"clientSecret"`
	PaymentIntentID string `json:"paymentIntentId"`
}

// ChargeSummary is one charge on a payment intent.
type ChargeSummary struct {
	ID         string  `json:"id"`
	Amount     int64   `json:"amount"`
	Status     string  `json:"status"`
	ReceiptURL *string `json:"receipt_url"`
}

// PaymentDetailsResponse lists a payment intent's charges.
type PaymentDetailsResponse struct {
	PaymentIntentID string          `json:"paymentIntentId"`
	Status          string          `json:"status"`
	Amount          int64           `json:"amount"`
	Charges         []ChargeSummary `json:"charges"`
	ChargeCount     int             `json:"chargeCount"`
}

// LatestChargeResponse describes the most recent charge on a payment
// intent. FailureMessage is null unless the charge failed.
type LatestChargeResponse struct {
	ChargeID       string  `json:"chargeId"`
	Amount         int64   `json:"amount"`
	Paid           bool    `json:"paid"`
	Refunded       bool    `json:"refunded"`
	FailureMessage *string `json:"failureMessage"`
}

// CheckPaymentStatusRequest selects the payment intent to check.
type CheckPaymentStatusRequest struct {
	PaymentIntentID string `json:"payment_intent_id" binding:"required" validate:"required"`
}

func (r *CheckPaymentStatusRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// PaymentStatusResponse summarizes the settlement state of a payment
// intent.
type PaymentStatusResponse struct {
	PaymentIntentID     string `json:"paymentIntentId"`
	Status              string `json:"status"`
	HasCharges          bool   `json:"hasCharges"`
	HasSuccessfulCharge bool   `json:"hasSuccessfulCharge"`
	TotalCharges        int    `json:"totalCharges"`
}

// ConfigResponse exposes the publishable key to the front end.
type ConfigResponse struct {
	PublishableKey string `json:"publishableKey"`
}
