package query

import (
	"context"
	"fmt"

	"github.com/tair/gog-commerce/internal/order/domain"
)

// ListOrdersQuery lists the ledger. A zero UserID lists every user's orders.
type ListOrdersQuery struct {
	UserID uint
}

// ListOrdersHandler handles list orders query
type ListOrdersHandler struct {
	repo domain.OrderRepository
}

// NewListOrdersHandler creates a new list orders handler
func NewListOrdersHandler(repo domain.OrderRepository) *ListOrdersHandler {
	return &ListOrdersHandler{repo: repo}
}

// Handle executes the list orders query
func (h *ListOrdersHandler) Handle(ctx context.Context, q ListOrdersQuery) ([]domain.Order, error) {
	var (
		orders []domain.Order
		err    error
	)
	if q.UserID == 0 {
		orders, err = h.repo.FindAll(ctx)
	} else {
		orders, err = h.repo.FindByUserID(ctx, q.UserID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}
