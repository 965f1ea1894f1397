package command

import (
	"context"
	"fmt"
	"strings"

	user "github.com/tair/gog-commerce/internal/user/domain"
	"github.com/tair/gog-commerce/internal/wishlist/domain"
	"github.com/tair/gog-commerce/pkg/apperror"
)

// CreateWishlistCommand represents the command to create an empty wishlist
type CreateWishlistCommand struct {
	UserID uint
	Name   string
}

// CreateWishlistHandler handles create wishlist command
type CreateWishlistHandler struct {
	repo  domain.WishlistRepository
	users user.UserRepository
}

// NewCreateWishlistHandler creates a new create wishlist handler
func NewCreateWishlistHandler(repo domain.WishlistRepository, users user.UserRepository) *CreateWishlistHandler {
	return &CreateWishlistHandler{repo: repo, users: users}
}

// Handle executes the create wishlist command
func (h *CreateWishlistHandler) Handle(ctx context.Context, cmd CreateWishlistCommand) (*domain.Wishlist, error) {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return nil, apperror.New(apperror.ErrBadRequest, "Wishlist name is required")
	}
	if cmd.UserID == 0 {
		return nil, apperror.New(apperror.ErrBadRequest, "Invalid user ID")
	}

	if _, err := h.users.FindByID(ctx, cmd.UserID); err != nil {
		return nil, err
	}

	w := &domain.Wishlist{UserID: cmd.UserID, Name: name, Items: []domain.Item{}}
	if err := h.repo.Create(ctx, w); err != nil {
		return nil, fmt.Errorf("failed to create wishlist: %w", err)
	}
	return w, nil
}
