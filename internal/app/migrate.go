package app

import (
	"fmt"

	"gorm.io/gorm"

	cartRepo "github.com/tair/gog-commerce/internal/cart/repository"
	catalogRepo "github.com/tair/gog-commerce/internal/catalog/repository"
	contactRepo "github.com/tair/gog-commerce/internal/contact/repository"
	orderRepo "github.com/tair/gog-commerce/internal/order/repository"
	userRepo "github.com/tair/gog-commerce/internal/user/repository"
	wishlistRepo "github.com/tair/gog-commerce/internal/wishlist/repository"
)

type migrator interface {
	AutoMigrate() error
}

// Migrate creates or updates every table the API owns
func Migrate(db *gorm.DB) error {
	steps := []struct {
		name string
		repo migrator
	}{
		{"users", userRepo.NewGormUserRepository(db)},
		{"products", catalogRepo.NewGormProductRepository(db)},
		{"carts", cartRepo.NewGormCartRepository(db)},
		{"orders", orderRepo.NewGormOrderRepository(db)},
		{"wishlists", wishlistRepo.NewGormWishlistRepository(db)},
		{"contact_messages", contactRepo.NewGormMessageRepository(db)},
	}
	for _, step := range steps {
		if err := step.repo.AutoMigrate(); err != nil {
			return fmt.Errorf("failed to migrate %s: %w", step.name, err)
		}
	}
	return nil
}
