package command

import (
	"context"
	"errors"

	"github.com/tair/gog-commerce/internal/payment/domain"
	"github.com/tair/gog-commerce/pkg/apperror"
	"github.com/tair/gog-commerce/pkg/logger"
)

// VerifyPaymentCommand carries the fields the checkout widget posts back
type VerifyPaymentCommand struct {
	OrderID   string
	PaymentID string
	Signature string
}

// VerifyPaymentHandler handles verify payment command
type VerifyPaymentHandler struct {
	keySecret string
}

// NewVerifyPaymentHandler creates a new verify payment handler. A handler
// built with an empty key secret rejects every verification.
func NewVerifyPaymentHandler(keySecret string) *VerifyPaymentHandler {
	return &VerifyPaymentHandler{keySecret: keySecret}
}

var (
	errInvalidSignature = apperror.New(apperror.ErrBadRequest, "Invalid signature sent!")
	errMissingKeySecret = errors.New("razorpay key secret is not configured")
)

// Handle checks the signature against hmac(secret, orderId|paymentId)
func (h *VerifyPaymentHandler) Handle(ctx context.Context, cmd VerifyPaymentCommand) error {
	if h.keySecret == "" {
		logger.Error(ctx).Msg("Payment verification refused: RAZORPAY_KEY_SECRET is empty")
		return errMissingKeySecret
	}
	if cmd.OrderID == "" || cmd.PaymentID == "" || cmd.Signature == "" {
		return errInvalidSignature
	}
	if !domain.ValidSignature(h.keySecret, cmd.OrderID, cmd.PaymentID, cmd.Signature) {
		logger.Warn(ctx).
			Str("order_id", cmd.OrderID).
			Str("payment_id", cmd.PaymentID).
			Msg("Payment signature mismatch")
		return errInvalidSignature
	}

	logger.Info(ctx).
		Str("order_id", cmd.OrderID).
		Str("payment_id", cmd.PaymentID).
		Msg("Payment verified")
	return nil
}
