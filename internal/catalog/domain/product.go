package domain

import (
	"context"
	"time"
)

// Product represents a catalog entry
type Product struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	Price       float64   `json:"price" gorm:"not null;check:price >= 0"`
	ImagePath   string    `json:"imagePath"`
	ProductCode string    `json:"productCode" gorm:"index"`
	Sold        int       `json:"sold" gorm:"not null;default:0"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// ProductRepository defines the contract for catalog data access
type ProductRepository interface {
	FindAll(ctx context.Context) ([]Product, error)
	FindByID(ctx context.Context, id uint) (*Product, error)
	// IncrementSold adds qty to the sold counter and reports whether the product exists
	IncrementSold(ctx context.Context, id uint, qty int) (bool, error)
}
