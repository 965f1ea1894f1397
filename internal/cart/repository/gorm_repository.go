package repository

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tair/gog-commerce/internal/cart/domain"
	"github.com/tair/gog-commerce/pkg/apperror"
	"github.com/tair/gog-commerce/pkg/tracing"
)

var tracer = otel.Tracer("cart-repository")

// GormCartRepository implements CartRepository using GORM
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GORM cart repository
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// FindByUserID retrieves the cart of a user
func (r *GormCartRepository) FindByUserID(ctx context.Context, userID uint) (*domain.Cart, error) {
	ctx, span := tracer.Start(ctx, "repository.FindCartByUserID",
		trace.WithAttributes(attribute.Int("user.id", int(userID))),
	)
	defer span.End()

	var cart domain.Cart
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(apperror.ErrNotFound, "Cart not found")
		}
		return nil, tracing.RecordError(span, fmt.Errorf("failed to find cart: %w", err))
	}
	return &cart, nil
}

// Save creates the cart when it has no id yet, otherwise updates it
func (r *GormCartRepository) Save(ctx context.Context, cart *domain.Cart) error {
	ctx, span := tracer.Start(ctx, "repository.SaveCart",
		trace.WithAttributes(
			attribute.Int("user.id", int(cart.UserID)),
			attribute.Int("cart.items", len(cart.Items)),
		),
	)
	defer span.End()

	if err := r.db.WithContext(ctx).Save(cart).Error; err != nil {
		return tracing.RecordError(span, fmt.Errorf("failed to save cart: %w", err))
	}
	span.SetAttributes(attribute.Int("cart.id", int(cart.ID)))
	return nil
}

// DeleteByUserID hard deletes the user's cart
func (r *GormCartRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	ctx, span := tracer.Start(ctx, "repository.DeleteCart",
		trace.WithAttributes(attribute.Int("user.id", int(userID))),
	)
	defer span.End()

	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&domain.Cart{}).Error; err != nil {
		return tracing.RecordError(span, fmt.Errorf("failed to delete cart: %w", err))
	}
	return nil
}

// AutoMigrate runs database migrations
func (r *GormCartRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Cart{})
}
