package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	cart "github.com/tair/gog-commerce/internal/cart/domain"
	cartcmd "github.com/tair/gog-commerce/internal/cart/usecase/command"
	"github.com/tair/gog-commerce/internal/order/domain"
	"github.com/tair/gog-commerce/kafka"
	"github.com/tair/gog-commerce/pkg/apperror"
	"github.com/tair/gog-commerce/pkg/logger"
)

// EventPublisher announces committed orders
type EventPublisher interface {
	PublishOrderPlaced(ctx context.Context, event kafka.OrderPlacedEvent) error
}

// CheckoutCommand represents a checkout request. TotalQty and TotalCost are
// the caller's view and are never persisted as given.
type CheckoutCommand struct {
	UserID    uint
	TotalQty  int
	TotalCost float64
	Items     []cart.LineItem
}

// CheckoutHandler turns a cart into an order
type CheckoutHandler struct {
	uow       domain.UnitOfWork
	publisher EventPublisher
	now       func() time.Time
}

// NewCheckoutHandler creates a new checkout handler. publisher may be nil.
func NewCheckoutHandler(uow domain.UnitOfWork, publisher EventPublisher) *CheckoutHandler {
	return &CheckoutHandler{uow: uow, publisher: publisher, now: time.Now}
}

// Handle records the order, increments sold counters and deletes the cart in
// one transaction, then publishes the order placed event
func (h *CheckoutHandler) Handle(ctx context.Context, cmd CheckoutCommand) (*domain.Order, error) {
	if cmd.UserID == 0 {
		return nil, apperror.New(apperror.ErrBadRequest, "user is required")
	}

	var order *domain.Order
	err := h.uow.Transaction(ctx, func(stores domain.CheckoutStores) error {
		items, err := h.checkoutItems(ctx, stores.Carts, cmd)
		if err != nil {
			return err
		}

		qty, cost := cart.Totals(items)
		o := &domain.Order{
			Reference: uuid.NewString(),
			UserID:    cmd.UserID,
			TotalQty:  qty,
			TotalCost: cost,
			Items:     items,
			CreatedAt: h.now().UTC(),
		}
		if err := stores.Orders.Create(ctx, o); err != nil {
			return fmt.Errorf("failed to record order: %w", err)
		}

		for _, item := range o.Items {
			found, err := stores.Products.IncrementSold(ctx, item.ProductID, item.Qty)
			if err != nil {
				return fmt.Errorf("failed to increment sold counter of product %d: %w", item.ProductID, err)
			}
			if !found {
				logger.Warn(ctx).
					Uint("product_id", item.ProductID).
					Uint("order_id", o.ID).
					Msg("Ordered product no longer in catalog, sold counter skipped")
			}
		}

		if err := cartcmd.NewClearCartHandler(stores.Carts).Handle(ctx, cartcmd.ClearCartCommand{UserID: cmd.UserID}); err != nil {
			return err
		}

		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx).
		Uint("order_id", order.ID).
		Uint("user_id", order.UserID).
		Int("total_qty", order.TotalQty).
		Float64("total_cost", order.TotalCost).
		Msg("Checkout completed")

	h.publish(ctx, order)
	return order, nil
}

// checkoutItems prefers the stored cart over the caller's items
func (h *CheckoutHandler) checkoutItems(ctx context.Context, carts cart.CartRepository, cmd CheckoutCommand) ([]cart.LineItem, error) {
	stored, err := carts.FindByUserID(ctx, cmd.UserID)
	switch {
	case err == nil:
		if cmd.TotalQty != stored.TotalQty || (cmd.TotalCost != 0 && cmd.TotalCost != stored.TotalCost) {
			logger.Warn(ctx).
				Uint("user_id", cmd.UserID).
				Int("client_total_qty", cmd.TotalQty).
				Float64("client_total_cost", cmd.TotalCost).
				Int("cart_total_qty", stored.TotalQty).
				Float64("cart_total_cost", stored.TotalCost).
				Msg("Checkout totals differ from stored cart, using cart")
		}
		if len(stored.Items) == 0 {
			return nil, apperror.New(apperror.ErrBadRequest, "Cart is empty")
		}
		return append([]cart.LineItem(nil), stored.Items...), nil
	case errors.Is(err, apperror.ErrNotFound):
	default:
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	if len(cmd.Items) == 0 {
		return nil, apperror.New(apperror.ErrBadRequest, "No items to checkout")
	}
	for _, item := range cmd.Items {
		if item.ProductID == 0 || item.Qty < 1 || item.Price < 0 {
			return nil, apperror.New(apperror.ErrBadRequest, "Invalid checkout item")
		}
	}
	return append([]cart.LineItem(nil), cmd.Items...), nil
}

func (h *CheckoutHandler) publish(ctx context.Context, order *domain.Order) {
	if h.publisher == nil {
		return
	}

	items := make([]kafka.OrderEventItem, 0, len(order.Items))
	for _, it := range order.Items {
		items = append(items, kafka.OrderEventItem{ProductID: it.ProductID, Qty: it.Qty, Price: it.Price})
	}

	event := kafka.OrderPlacedEvent{
		OrderID:   order.ID,
		Reference: order.Reference,
		UserID:    order.UserID,
		TotalQty:  order.TotalQty,
		TotalCost: order.TotalCost,
		Items:     items,
		Timestamp: order.CreatedAt,
	}
	if err := h.publisher.PublishOrderPlaced(ctx, event); err != nil {
		logger.Error(ctx).Err(err).Uint("order_id", order.ID).Msg("Failed to publish order placed event")
	}
}
