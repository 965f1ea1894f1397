package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/tair/gog-commerce/internal/cart/domain"
	catalog "github.com/tair/gog-commerce/internal/catalog/domain"
	"github.com/tair/gog-commerce/pkg/apperror"
	"github.com/tair/gog-commerce/pkg/logger"
)

// AddToCartCommand represents the command to add one unit of a product
type AddToCartCommand struct {
	UserID    uint
	ProductID uint
}

// AddToCartHandler handles add to cart command
type AddToCartHandler struct {
	carts    domain.CartRepository
	products catalog.ProductRepository
}

// NewAddToCartHandler creates a new add to cart handler
func NewAddToCartHandler(carts domain.CartRepository, products catalog.ProductRepository) *AddToCartHandler {
	return &AddToCartHandler{carts: carts, products: products}
}

// Handle executes the add to cart command and returns the updated cart
func (h *AddToCartHandler) Handle(ctx context.Context, cmd AddToCartCommand) (*domain.Cart, error) {
	if cmd.UserID == 0 || cmd.ProductID == 0 {
		return nil, apperror.New(apperror.ErrBadRequest, "userId and productId are required")
	}

	cart, err := h.carts.FindByUserID(ctx, cmd.UserID)
	switch {
	case errors.Is(err, apperror.ErrNotFound):
		cart = &domain.Cart{UserID: cmd.UserID}
	case err != nil:
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	if cart.Has(cmd.ProductID) {
		cart.Add(domain.LineItem{ProductID: cmd.ProductID})
	} else {
		product, err := h.products.FindByID(ctx, cmd.ProductID)
		if err != nil {
			return nil, err
		}
		cart.Add(domain.LineItem{
			ProductID:   product.ID,
			Qty:         1,
			Price:       product.Price,
			Title:       product.Title,
			ImagePath:   product.ImagePath,
			ProductCode: product.ProductCode,
		})
	}

	if err := h.carts.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}

	logger.Debug(ctx).
		Uint("user_id", cmd.UserID).
		Uint("product_id", cmd.ProductID).
		Int("total_qty", cart.TotalQty).
		Msg("Cart updated")
	return cart, nil
}
