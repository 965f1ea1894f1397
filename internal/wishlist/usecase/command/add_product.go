package command

import (
	"context"
	"fmt"

	"github.com/tair/gog-commerce/internal/wishlist/domain"
	"github.com/tair/gog-commerce/pkg/apperror"
)

// AddProductCommand represents the command to add a product snapshot to a wishlist
type AddProductCommand struct {
	WishlistID uint
	Item       domain.Item
}

// AddProductHandler handles add product command
type AddProductHandler struct {
	repo domain.WishlistRepository
}

// NewAddProductHandler creates a new add product handler
func NewAddProductHandler(repo domain.WishlistRepository) *AddProductHandler {
	return &AddProductHandler{repo: repo}
}

// Handle executes the add product command
func (h *AddProductHandler) Handle(ctx context.Context, cmd AddProductCommand) (*domain.Wishlist, error) {
	if cmd.Item.ProductID == 0 {
		return nil, apperror.New(apperror.ErrBadRequest, "productId is required")
	}

	w, err := h.repo.FindByID(ctx, cmd.WishlistID)
	if err != nil {
		return nil, err
	}

	if !w.Add(cmd.Item) {
		return nil, apperror.New(apperror.ErrConflict, "Product already exists in the wishlist")
	}

	if err := h.repo.Update(ctx, w); err != nil {
		return nil, fmt.Errorf("failed to add product to wishlist: %w", err)
	}
	return w, nil
}
