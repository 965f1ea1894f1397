package repository

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tair/gog-commerce/internal/wishlist/domain"
	"github.com/tair/gog-commerce/pkg/apperror"
	"github.com/tair/gog-commerce/pkg/tracing"
)

var tracer = otel.Tracer("wishlist-repository")

var errWishlistNotFound = apperror.New(apperror.ErrNotFound, "Wishlist not found")

// GormWishlistRepository implements WishlistRepository using GORM
type GormWishlistRepository struct {
	db *gorm.DB
}

// NewGormWishlistRepository creates a new GORM wishlist repository
func NewGormWishlistRepository(db *gorm.DB) *GormWishlistRepository {
	return &GormWishlistRepository{db: db}
}

// Create inserts a wishlist
func (r *GormWishlistRepository) Create(ctx context.Context, w *domain.Wishlist) error {
	ctx, span := tracer.Start(ctx, "repository.CreateWishlist",
		trace.WithAttributes(attribute.Int("user.id", int(w.UserID))),
	)
	defer span.End()

	if err := r.db.WithContext(ctx).Create(w).Error; err != nil {
		return tracing.RecordError(span, fmt.Errorf("failed to create wishlist: %w", err))
	}
	span.SetAttributes(attribute.Int("wishlist.id", int(w.ID)))
	return nil
}

// FindByID retrieves a wishlist by ID
func (r *GormWishlistRepository) FindByID(ctx context.Context, id uint) (*domain.Wishlist, error) {
	ctx, span := tracer.Start(ctx, "repository.FindWishlistByID",
		trace.WithAttributes(attribute.Int("wishlist.id", int(id))),
	)
	defer span.End()

	var w domain.Wishlist
	if err := r.db.WithContext(ctx).First(&w, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errWishlistNotFound
		}
		return nil, tracing.RecordError(span, fmt.Errorf("failed to find wishlist: %w", err))
	}
	return &w, nil
}

// FindByUserID lists a user's wishlists in creation order
func (r *GormWishlistRepository) FindByUserID(ctx context.Context, userID uint) ([]domain.Wishlist, error) {
	ctx, span := tracer.Start(ctx, "repository.FindWishlistsByUserID",
		trace.WithAttributes(attribute.Int("user.id", int(userID))),
	)
	defer span.End()

	var lists []domain.Wishlist
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&lists).Error; err != nil {
		return nil, tracing.RecordError(span, fmt.Errorf("failed to find wishlists: %w", err))
	}
	span.SetAttributes(attribute.Int("result.count", len(lists)))
	return lists, nil
}

// Update saves items and totals of an existing wishlist
func (r *GormWishlistRepository) Update(ctx context.Context, w *domain.Wishlist) error {
	ctx, span := tracer.Start(ctx, "repository.UpdateWishlist",
		trace.WithAttributes(attribute.Int("wishlist.id", int(w.ID))),
	)
	defer span.End()

	if err := r.db.WithContext(ctx).Save(w).Error; err != nil {
		return tracing.RecordError(span, fmt.Errorf("failed to update wishlist: %w", err))
	}
	return nil
}

// Delete removes a wishlist
func (r *GormWishlistRepository) Delete(ctx context.Context, id uint) error {
	ctx, span := tracer.Start(ctx, "repository.DeleteWishlist",
		trace.WithAttributes(attribute.Int("wishlist.id", int(id))),
	)
	defer span.End()

	result := r.db.WithContext(ctx).Delete(&domain.Wishlist{}, id)
	if result.Error != nil {
		return tracing.RecordError(span, fmt.Errorf("failed to delete wishlist: %w", result.Error))
	}
	if result.RowsAffected == 0 {
		return errWishlistNotFound
	}
	return nil
}

// AutoMigrate runs database migrations
func (r *GormWishlistRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Wishlist{})
}
