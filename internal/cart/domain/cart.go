package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is a product snapshot taken when it was first added to the cart
type LineItem struct {
	ProductID   uint    `json:"productId"`
	Qty         int     `json:"qty"`
	Price       float64 `json:"price"`
	Title       string  `json:"title"`
	ImagePath   string  `json:"imagePath"`
	ProductCode string  `json:"productCode"`
}

// Cart is the single active cart of a user
type Cart struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	UserID    uint       `json:"user" gorm:"not null;uniqueIndex"`
	Items     []LineItem `json:"items" gorm:"type:jsonb;serializer:json"`
	TotalQty  int        `json:"totalQty" gorm:"not null;default:0"`
	TotalCost float64    `json:"totalCost" gorm:"not null;default:0"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// TableName specifies the table name
func (Cart) TableName() string {
	return "carts"
}

// Add merges item into the cart. A product already present gets its qty
// bumped by one and keeps its original snapshot.
func (c *Cart) Add(item LineItem) {
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			c.Items[i].Qty++
			c.Recalculate()
			return
		}
	}

	if item.Qty < 1 {
		item.Qty = 1
	}
	c.Items = append(c.Items, item)
	c.Recalculate()
}

// Has reports whether productID already has a line item
func (c *Cart) Has(productID uint) bool {
	for _, it := range c.Items {
		if it.ProductID == productID {
			return true
		}
	}
	return false
}

// Recalculate recomputes the totals from the line items
func (c *Cart) Recalculate() {
	c.TotalQty, c.TotalCost = Totals(c.Items)
}

// Totals reduces items to their total quantity and cost
func Totals(items []LineItem) (int, float64) {
	qty := 0
	cost := decimal.Zero
	for _, it := range items {
		qty += it.Qty
		cost = cost.Add(decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Qty))))
	}
	total, _ := cost.Round(2).Float64()
	return qty, total
}

// CartRepository defines the contract for cart persistence
type CartRepository interface {
	FindByUserID(ctx context.Context, userID uint) (*Cart, error)
	// Save inserts a new cart or updates an existing one
	Save(ctx context.Context, cart *Cart) error
	// DeleteByUserID removes the user's cart; a missing cart is not an error
	DeleteByUserID(ctx context.Context, userID uint) error
}
