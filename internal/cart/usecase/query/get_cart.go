package query

import (
	"context"

	"github.com/tair/gog-commerce/internal/cart/domain"
	"github.com/tair/gog-commerce/pkg/apperror"
)

// GetCartQuery represents the query for a user's cart
type GetCartQuery struct {
	UserID uint
}

// GetCartHandler handles get cart query
type GetCartHandler struct {
	carts domain.CartRepository
}

// NewGetCartHandler creates a new get cart handler
func NewGetCartHandler(carts domain.CartRepository) *GetCartHandler {
	return &GetCartHandler{carts: carts}
}

// Handle executes the get cart query
func (h *GetCartHandler) Handle(ctx context.Context, q GetCartQuery) (*domain.Cart, error) {
	if q.UserID == 0 {
		return nil, apperror.New(apperror.ErrBadRequest, "Invalid user ID")
	}
	return h.carts.FindByUserID(ctx, q.UserID)
}
