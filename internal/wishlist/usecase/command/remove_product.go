package command

import (
	"context"
	"fmt"

	"github.com/tair/gog-commerce/internal/wishlist/domain"
	"github.com/tair/gog-commerce/pkg/apperror"
)

// RemoveProductCommand represents the command to take a product off a wishlist
type RemoveProductCommand struct {
	WishlistID uint
	ProductID  uint
}

// RemoveProductResult reports whether the wishlist was dropped with its last item
type RemoveProductResult struct {
	Wishlist *domain.Wishlist
	Deleted  bool
}

// RemoveProductHandler handles remove product command
type RemoveProductHandler struct {
	repo domain.WishlistRepository
}

// NewRemoveProductHandler creates a new remove product handler
func NewRemoveProductHandler(repo domain.WishlistRepository) *RemoveProductHandler {
	return &RemoveProductHandler{repo: repo}
}

// Handle executes the remove product command. An emptied wishlist is deleted.
func (h *RemoveProductHandler) Handle(ctx context.Context, cmd RemoveProductCommand) (*RemoveProductResult, error) {
	w, err := h.repo.FindByID(ctx, cmd.WishlistID)
	if err != nil {
		return nil, err
	}

	if !w.Remove(cmd.ProductID) {
		return nil, apperror.New(apperror.ErrNotFound, "Product not found in wishlist")
	}

	if w.IsEmpty() {
		if err := h.repo.Delete(ctx, w.ID); err != nil {
			return nil, fmt.Errorf("failed to delete empty wishlist: %w", err)
		}
		return &RemoveProductResult{Wishlist: w, Deleted: true}, nil
	}

	if err := h.repo.Update(ctx, w); err != nil {
		return nil, fmt.Errorf("failed to remove product from wishlist: %w", err)
	}
	return &RemoveProductResult{Wishlist: w}, nil
}
