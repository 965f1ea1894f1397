package app

import (
	"time"

	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	cartDomain "github.com/tair/gog-commerce/internal/cart/domain"
	cartRepo "github.com/tair/gog-commerce/internal/cart/repository"
	catalogDomain "github.com/tair/gog-commerce/internal/catalog/domain"
	catalogRepo "github.com/tair/gog-commerce/internal/catalog/repository"
	"github.com/tair/gog-commerce/internal/config"
	contactDomain "github.com/tair/gog-commerce/internal/contact/domain"
	contactRepo "github.com/tair/gog-commerce/internal/contact/repository"
	orderDomain "github.com/tair/gog-commerce/internal/order/domain"
	orderHTTP "github.com/tair/gog-commerce/internal/order/delivery/http"
	orderRepo "github.com/tair/gog-commerce/internal/order/repository"
	paymentCommand "github.com/tair/gog-commerce/internal/payment/usecase/command"
	paymentDomain "github.com/tair/gog-commerce/internal/payment/domain"
	"github.com/tair/gog-commerce/internal/payment/gateway"
	userDomain "github.com/tair/gog-commerce/internal/user/domain"
	userRepo "github.com/tair/gog-commerce/internal/user/repository"
	wishlistDomain "github.com/tair/gog-commerce/internal/wishlist/domain"
	wishlistRepo "github.com/tair/gog-commerce/internal/wishlist/repository"
	"github.com/tair/gog-commerce/pkg/auth"
	"github.com/tair/gog-commerce/pkg/middleware"
)

// MetricsNamespace prefixes the HTTP request collectors
const MetricsNamespace = "gog_commerce"

// ProvideTokenManager builds the JWT issuer from the configured secret
func ProvideTokenManager(cfg config.Config) *auth.TokenManager {
	return auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)
}

// ProvideCatalogCache caches the product routes in Redis. A nil client disables it.
func ProvideCatalogCache(cfg config.Config, client *redis.Client) *middleware.ResponseCache {
	return middleware.NewResponseCache(client, "catalog", cfg.CatalogCacheTTL)
}

// ProvideAuthRateLimiter limits register and login attempts per client IP
func ProvideAuthRateLimiter(cfg config.Config, client *redis.Client) *middleware.RateLimiter {
	return middleware.NewRateLimiter(client, "auth", cfg.RateLimitPerMinute, time.Minute)
}

// ProvidePaymentGateway builds the Razorpay client
func ProvidePaymentGateway(cfg config.Config) *gateway.RazorpayClient {
	return gateway.NewRazorpayClient(cfg.Razorpay)
}

// ProvideVerifyPaymentHandler verifies signatures with the Razorpay key secret
func ProvideVerifyPaymentHandler(cfg config.Config) *paymentCommand.VerifyPaymentHandler {
	return paymentCommand.NewVerifyPaymentHandler(cfg.Razorpay.KeySecret)
}

// ProvideHTTPMetrics registers the per-route request collectors
func ProvideHTTPMetrics(reg prometheus.Registerer) *middleware.Metrics {
	return middleware.NewMetrics(reg, MetricsNamespace)
}

// RepositorySet binds every GORM repository to its domain interface
var RepositorySet = wire.NewSet(
	catalogRepo.NewGormProductRepository,
	wire.Bind(new(catalogDomain.ProductRepository), new(*catalogRepo.GormProductRepository)),
	cartRepo.NewGormCartRepository,
	wire.Bind(new(cartDomain.CartRepository), new(*cartRepo.GormCartRepository)),
	orderRepo.NewGormOrderRepository,
	wire.Bind(new(orderDomain.OrderRepository), new(*orderRepo.GormOrderRepository)),
	wire.Bind(new(orderDomain.UnitOfWork), new(*orderRepo.GormOrderRepository)),
	userRepo.NewGormUserRepository,
	wire.Bind(new(userDomain.UserRepository), new(*userRepo.GormUserRepository)),
	wishlistRepo.NewGormWishlistRepository,
	wire.Bind(new(wishlistDomain.WishlistRepository), new(*wishlistRepo.GormWishlistRepository)),
	contactRepo.NewGormMessageRepository,
	wire.Bind(new(contactDomain.MessageRepository), new(*contactRepo.GormMessageRepository)),
)

// InfrastructureSet provides the cross-cutting collaborators of the handlers
var InfrastructureSet = wire.NewSet(
	ProvideTokenManager,
	middleware.NewAuthenticator,
	ProvideCatalogCache,
	wire.Bind(new(orderHTTP.CacheInvalidator), new(*middleware.ResponseCache)),
	ProvideAuthRateLimiter,
	ProvidePaymentGateway,
	wire.Bind(new(paymentDomain.Gateway), new(*gateway.RazorpayClient)),
	ProvideVerifyPaymentHandler,
	wire.Bind(new(prometheus.Registerer), new(*prometheus.Registry)),
	ProvideHTTPMetrics,
)
