package query

import (
	"context"
	"fmt"

	"github.com/tair/gog-commerce/internal/wishlist/domain"
)

// ListWishlistsQuery represents the query for a user's wishlists
type ListWishlistsQuery struct {
	UserID uint
}

// ListWishlistsHandler handles list wishlists query
type ListWishlistsHandler struct {
	repo domain.WishlistRepository
}

// NewListWishlistsHandler creates a new list wishlists handler
func NewListWishlistsHandler(repo domain.WishlistRepository) *ListWishlistsHandler {
	return &ListWishlistsHandler{repo: repo}
}

// Handle executes the list wishlists query
func (h *ListWishlistsHandler) Handle(ctx context.Context, q ListWishlistsQuery) ([]domain.Wishlist, error) {
	lists, err := h.repo.FindByUserID(ctx, q.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list wishlists: %w", err)
	}
	if lists == nil {
		lists = []domain.Wishlist{}
	}
	return lists, nil
}
