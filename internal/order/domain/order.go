package domain

import (
	"context"
	"time"

	cart "github.com/tair/gog-commerce/internal/cart/domain"
)

// Order is an immutable record of a completed checkout
type Order struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	Reference string          `json:"reference" gorm:"type:varchar(36);uniqueIndex;not null"`
	UserID    uint            `json:"user" gorm:"not null;index"`
	TotalQty  int             `json:"totalQty" gorm:"not null"`
	TotalCost float64         `json:"totalCost" gorm:"not null"`
	Items     []cart.LineItem `json:"items" gorm:"type:jsonb;serializer:json"`
	CreatedAt time.Time       `json:"createdAt" gorm:"not null;index"`
}

// TableName specifies the table name
func (Order) TableName() string {
	return "orders"
}

// DailySales is the revenue of one UTC calendar day, formatted YYYY-MM-DD
type DailySales struct {
	Day   string
	Total float64
}

// OrderRepository defines the contract for the order ledger
type OrderRepository interface {
	Create(ctx context.Context, order *Order) error
	FindAll(ctx context.Context) ([]Order, error)
	FindByUserID(ctx context.Context, userID uint) ([]Order, error)
	// SalesByDay sums totalCost of orders created in [from, to) per day, ascending
	SalesByDay(ctx context.Context, from, to time.Time) ([]DailySales, error)
}

// SoldCounter bumps catalog sold counters
type SoldCounter interface {
	IncrementSold(ctx context.Context, productID uint, qty int) (bool, error)
}

// CheckoutStores are the stores a checkout writes to, bound to one transaction
type CheckoutStores struct {
	Orders   OrderRepository
	Carts    cart.CartRepository
	Products SoldCounter
}

// UnitOfWork runs fn atomically. Returning an error from fn rolls back every
// write made through the stores it was given.
type UnitOfWork interface {
	Transaction(ctx context.Context, fn func(stores CheckoutStores) error) error
}
