package repository

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tair/gog-commerce/internal/catalog/domain"
	"github.com/tair/gog-commerce/pkg/apperror"
	"github.com/tair/gog-commerce/pkg/tracing"
)

var tracer = otel.Tracer("catalog-repository")

// GormProductRepository implements ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM product repository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindAll returns every product ordered by id
func (r *GormProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.FindAllProducts")
	defer span.End()

	var products []domain.Product
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&products).Error; err != nil {
		return nil, tracing.RecordError(span, fmt.Errorf("failed to find products: %w", err))
	}

	span.SetAttributes(attribute.Int("result.count", len(products)))
	return products, nil
}

// FindByID retrieves a product by ID
func (r *GormProductRepository) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.FindProductByID",
		trace.WithAttributes(attribute.Int("product.id", int(id))),
	)
	defer span.End()

	var product domain.Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(apperror.ErrNotFound, "Product not found")
		}
		return nil, tracing.RecordError(span, fmt.Errorf("failed to find product: %w", err))
	}
	return &product, nil
}

// IncrementSold atomically adds qty to the product's sold counter
func (r *GormProductRepository) IncrementSold(ctx context.Context, id uint, qty int) (bool, error) {
	ctx, span := tracer.Start(ctx, "repository.IncrementSold",
		trace.WithAttributes(
			attribute.Int("product.id", int(id)),
			attribute.Int("product.qty", qty),
		),
	)
	defer span.End()

	result := r.db.WithContext(ctx).
		Model(&domain.Product{}).
		Where("id = ?", id).
		UpdateColumn("sold", gorm.Expr("sold + ?", qty))
	if result.Error != nil {
		return false, tracing.RecordError(span, fmt.Errorf("failed to increment sold counter: %w", result.Error))
	}
	return result.RowsAffected > 0, nil
}

// AutoMigrate runs database migrations
func (r *GormProductRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Product{})
}
