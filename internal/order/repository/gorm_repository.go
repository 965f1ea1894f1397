package repository

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	cartrepo "github.com/tair/gog-commerce/internal/cart/repository"
	catalogrepo "github.com/tair/gog-commerce/internal/catalog/repository"
	"github.com/tair/gog-commerce/internal/order/domain"
	"github.com/tair/gog-commerce/pkg/tracing"
)

var tracer = otel.Tracer("order-repository")

// GormOrderRepository implements OrderRepository and UnitOfWork using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Create appends an order to the ledger
func (r *GormOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	ctx, span := tracer.Start(ctx, "repository.CreateOrder",
		trace.WithAttributes(
			attribute.Int("user.id", int(order.UserID)),
			attribute.Int("order.items", len(order.Items)),
		),
	)
	defer span.End()

	if err := r.db.WithContext(ctx).Create(order).Error; err != nil {
		return tracing.RecordError(span, fmt.Errorf("failed to create order: %w", err))
	}
	span.SetAttributes(attribute.Int("order.id", int(order.ID)))
	return nil
}

// FindAll returns every order, oldest first
func (r *GormOrderRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	ctx, span := tracer.Start(ctx, "repository.FindAllOrders")
	defer span.End()

	var orders []domain.Order
	if err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&orders).Error; err != nil {
		return nil, tracing.RecordError(span, fmt.Errorf("failed to find orders: %w", err))
	}
	span.SetAttributes(attribute.Int("result.count", len(orders)))
	return orders, nil
}

// FindByUserID returns the orders of one user, oldest first
func (r *GormOrderRepository) FindByUserID(ctx context.Context, userID uint) ([]domain.Order, error) {
	ctx, span := tracer.Start(ctx, "repository.FindOrdersByUserID",
		trace.WithAttributes(attribute.Int("user.id", int(userID))),
	)
	defer span.End()

	var orders []domain.Order
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&orders).Error
	if err != nil {
		return nil, tracing.RecordError(span, fmt.Errorf("failed to find orders: %w", err))
	}
	span.SetAttributes(attribute.Int("result.count", len(orders)))
	return orders, nil
}

// SalesByDay groups orders in [from, to) by their UTC calendar day
func (r *GormOrderRepository) SalesByDay(ctx context.Context, from, to time.Time) ([]domain.DailySales, error) {
	ctx, span := tracer.Start(ctx, "repository.SalesByDay",
		trace.WithAttributes(
			attribute.String("window.from", from.UTC().Format(time.RFC3339)),
			attribute.String("window.to", to.UTC().Format(time.RFC3339)),
		),
	)
	defer span.End()

	var rows []struct {
		Day   string
		Total float64
	}
	err := r.db.WithContext(ctx).
		Model(&domain.Order{}).
		Select("to_char(created_at AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS day, SUM(total_cost) AS total").
		Where("created_at >= ? AND created_at < ?", from, to).
		Group("day").
		Order("day ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, tracing.RecordError(span, fmt.Errorf("failed to aggregate sales: %w", err))
	}

	sales := make([]domain.DailySales, 0, len(rows))
	for _, row := range rows {
		sales = append(sales, domain.DailySales{Day: row.Day, Total: row.Total})
	}
	return sales, nil
}

// Transaction runs fn inside a database transaction with every checkout
// store bound to it
func (r *GormOrderRepository) Transaction(ctx context.Context, fn func(stores domain.CheckoutStores) error) error {
	ctx, span := tracer.Start(ctx, "repository.CheckoutTransaction")
	defer span.End()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(domain.CheckoutStores{
			Orders:   NewGormOrderRepository(tx),
			Carts:    cartrepo.NewGormCartRepository(tx),
			Products: catalogrepo.NewGormProductRepository(tx),
		})
	})
	if err != nil {
		return tracing.RecordError(span, err)
	}
	return nil
}

// AutoMigrate runs database migrations
func (r *GormOrderRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Order{})
}
