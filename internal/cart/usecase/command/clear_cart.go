package command

import (
	"context"
	"fmt"

	"github.com/tair/gog-commerce/internal/cart/domain"
)

// ClearCartCommand represents the command to drop a user's cart
type ClearCartCommand struct {
	UserID uint
}

// ClearCartHandler handles clear cart command
type ClearCartHandler struct {
	carts domain.CartRepository
}

// NewClearCartHandler creates a new clear cart handler
func NewClearCartHandler(carts domain.CartRepository) *ClearCartHandler {
	return &ClearCartHandler{carts: carts}
}

// Handle executes the clear cart command
func (h *ClearCartHandler) Handle(ctx context.Context, cmd ClearCartCommand) error {
	if err := h.carts.DeleteByUserID(ctx, cmd.UserID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
