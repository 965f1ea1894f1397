//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	cartHTTP "github.com/tair/gog-commerce/internal/cart/delivery/http"
	cartCommand "github.com/tair/gog-commerce/internal/cart/usecase/command"
	cartQuery "github.com/tair/gog-commerce/internal/cart/usecase/query"
	catalogHTTP "github.com/tair/gog-commerce/internal/catalog/delivery/http"
	catalogQuery "github.com/tair/gog-commerce/internal/catalog/usecase/query"
	"github.com/tair/gog-commerce/internal/config"
	contactHTTP "github.com/tair/gog-commerce/internal/contact/delivery/http"
	contactCommand "github.com/tair/gog-commerce/internal/contact/usecase/command"
	contactQuery "github.com/tair/gog-commerce/internal/contact/usecase/query"
	orderHTTP "github.com/tair/gog-commerce/internal/order/delivery/http"
	orderCommand "github.com/tair/gog-commerce/internal/order/usecase/command"
	orderQuery "github.com/tair/gog-commerce/internal/order/usecase/query"
	paymentHTTP "github.com/tair/gog-commerce/internal/payment/delivery/http"
	paymentCommand "github.com/tair/gog-commerce/internal/payment/usecase/command"
	userHTTP "github.com/tair/gog-commerce/internal/user/delivery/http"
	userCommand "github.com/tair/gog-commerce/internal/user/usecase/command"
	userQuery "github.com/tair/gog-commerce/internal/user/usecase/query"
	wishlistHTTP "github.com/tair/gog-commerce/internal/wishlist/delivery/http"
	wishlistCommand "github.com/tair/gog-commerce/internal/wishlist/usecase/command"
	wishlistQuery "github.com/tair/gog-commerce/internal/wishlist/usecase/query"
)

// Use case sets, one per context
var (
	CatalogSet = wire.NewSet(
		catalogQuery.NewListProductsHandler,
		catalogQuery.NewGetProductHandler,
		catalogHTTP.NewCatalogHandler,
	)

	CartSet = wire.NewSet(
		cartCommand.NewAddToCartHandler,
		cartQuery.NewGetCartHandler,
		cartHTTP.NewCartHandler,
	)

	OrderSet = wire.NewSet(
		orderCommand.NewCheckoutHandler,
		orderQuery.NewListOrdersHandler,
		orderQuery.NewSalesReportHandler,
		orderHTTP.NewOrderHandler,
	)

	UserSet = wire.NewSet(
		userCommand.NewRegisterUserHandler,
		userCommand.NewLoginUserHandler,
		userCommand.NewUpdateProfileHandler,
		userQuery.NewGetUserHandler,
		userQuery.NewListUsersHandler,
		userHTTP.NewUserHandler,
	)

	WishlistSet = wire.NewSet(
		wishlistCommand.NewCreateWishlistHandler,
		wishlistCommand.NewAddProductHandler,
		wishlistCommand.NewRemoveProductHandler,
		wishlistQuery.NewListWishlistsHandler,
		wishlistHTTP.NewWishlistHandler,
	)

	ContactSet = wire.NewSet(
		contactCommand.NewSubmitMessageHandler,
		contactCommand.NewDeleteMessageHandler,
		contactQuery.NewListMessagesHandler,
		contactHTTP.NewContactHandler,
	)

	PaymentSet = wire.NewSet(
		paymentCommand.NewCreateOrderHandler,
		paymentHTTP.NewPaymentHandler,
	)
)

// InitializeServer wires every context onto the shared infrastructure.
// publisher may be nil when Kafka is not configured.
func InitializeServer(
	cfg config.Config,
	db *gorm.DB,
	redisClient *redis.Client,
	publisher orderCommand.EventPublisher,
	registry *prometheus.Registry,
) (*Server, error) {
	wire.Build(
		RepositorySet,
		InfrastructureSet,
		CatalogSet,
		CartSet,
		OrderSet,
		UserSet,
		WishlistSet,
		ContactSet,
		PaymentSet,
		NewServer,
	)
	return nil, nil
}
