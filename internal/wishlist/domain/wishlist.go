package domain

import (
	"context"
	"time"
)

// Item is a product snapshot kept in a wishlist
type Item struct {
	ProductID   uint    `json:"productId"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	ImagePath   string  `json:"imagePath"`
	ProductCode string  `json:"productCode"`
}

// Wishlist is a named list of products owned by one user
type Wishlist struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user" gorm:"not null;index"`
	Name      string    `json:"name" gorm:"not null"`
	Items     []Item    `json:"items" gorm:"type:jsonb;serializer:json"`
	TotalQty  int       `json:"totalQty" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName specifies the table name
func (Wishlist) TableName() string {
	return "wishlists"
}

// Contains reports whether productID is already in the wishlist
func (w *Wishlist) Contains(productID uint) bool {
	for _, it := range w.Items {
		if it.ProductID == productID {
			return true
		}
	}
	return false
}

// Add appends item and keeps TotalQty in step. It reports false for a duplicate.
func (w *Wishlist) Add(item Item) bool {
	if w.Contains(item.ProductID) {
		return false
	}
	w.Items = append(w.Items, item)
	w.TotalQty = len(w.Items)
	return true
}

// Remove drops productID and reports whether it was present
func (w *Wishlist) Remove(productID uint) bool {
	for i, it := range w.Items {
		if it.ProductID == productID {
			w.Items = append(w.Items[:i:i], w.Items[i+1:]...)
			w.TotalQty = len(w.Items)
			return true
		}
	}
	return false
}

// IsEmpty reports whether the wishlist has no items left
func (w *Wishlist) IsEmpty() bool {
	return len(w.Items) == 0
}

// WishlistRepository defines the contract for wishlist persistence
type WishlistRepository interface {
	Create(ctx context.Context, w *Wishlist) error
	FindByID(ctx context.Context, id uint) (*Wishlist, error)
	FindByUserID(ctx context.Context, userID uint) ([]Wishlist, error)
	Update(ctx context.Context, w *Wishlist) error
	Delete(ctx context.Context, id uint) error
}
