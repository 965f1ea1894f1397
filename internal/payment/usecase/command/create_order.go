package command

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tair/gog-commerce/internal/payment/domain"
	"github.com/tair/gog-commerce/pkg/apperror"
)

// CreateOrderCommand represents a request to open a gateway order
type CreateOrderCommand struct {
	Amount float64 // major currency units
}

// CreateOrderHandler handles create order command
type CreateOrderHandler struct {
	gateway domain.Gateway
	receipt func() (string, error)
}

// NewCreateOrderHandler creates a new create order handler
func NewCreateOrderHandler(gateway domain.Gateway) *CreateOrderHandler {
	return &CreateOrderHandler{gateway: gateway, receipt: newReceipt}
}

// Handle converts the amount to minor units and creates the order in INR
func (h *CreateOrderHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (domain.GatewayOrder, error) {
	amount := decimal.NewFromFloat(cmd.Amount)
	if !amount.IsPositive() {
		return nil, apperror.New(apperror.ErrBadRequest, "Amount must be greater than zero")
	}

	receipt, err := h.receipt()
	if err != nil {
		return nil, fmt.Errorf("failed to generate receipt: %w", err)
	}

	order, err := h.gateway.CreateOrder(ctx, domain.OrderRequest{
		Amount:   amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart(),
		Currency: domain.CurrencyINR,
		Receipt:  receipt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gateway order: %w", err)
	}
	return order, nil
}

// newReceipt returns 20 random hex characters
func newReceipt() (string, error) {
	b := make([]byte, 10)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
