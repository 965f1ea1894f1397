package query

import (
	"context"

	"github.com/tair/gog-commerce/internal/catalog/domain"
	"github.com/tair/gog-commerce/pkg/apperror"
)

// GetProductQuery represents the query to fetch one product
type GetProductQuery struct {
	ID uint
}

// GetProductHandler handles get product query
type GetProductHandler struct {
	repo domain.ProductRepository
}

// NewGetProductHandler creates a new get product handler
func NewGetProductHandler(repo domain.ProductRepository) *GetProductHandler {
	return &GetProductHandler{repo: repo}
}

// Handle executes the get product query
func (h *GetProductHandler) Handle(ctx context.Context, q GetProductQuery) (*domain.Product, error) {
	if q.ID == 0 {
		return nil, apperror.New(apperror.ErrBadRequest, "Invalid product ID")
	}
	return h.repo.FindByID(ctx, q.ID)
}
