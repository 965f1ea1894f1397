// Package app assembles the HTTP API from the bounded contexts.
package app

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"gorm.io/gorm"

	cartHTTP "github.com/tair/gog-commerce/internal/cart/delivery/http"
	catalogHTTP "github.com/tair/gog-commerce/internal/catalog/delivery/http"
	contactHTTP "github.com/tair/gog-commerce/internal/contact/delivery/http"
	orderHTTP "github.com/tair/gog-commerce/internal/order/delivery/http"
	paymentHTTP "github.com/tair/gog-commerce/internal/payment/delivery/http"
	"github.com/tair/gog-commerce/internal/payment/gateway"
	userHTTP "github.com/tair/gog-commerce/internal/user/delivery/http"
	wishlistHTTP "github.com/tair/gog-commerce/internal/wishlist/delivery/http"
	"github.com/tair/gog-commerce/pkg/logger"
	"github.com/tair/gog-commerce/pkg/middleware"
	"github.com/tair/gog-commerce/pkg/response"
)

// healthTimeout bounds the database ping behind /health
const healthTimeout = 2 * time.Second

// Server owns the handlers of every context and builds the router over them
type Server struct {
	db       *gorm.DB
	registry *prometheus.Registry
	metrics  *middleware.Metrics
	authn    *middleware.Authenticator
	limiter  *middleware.RateLimiter
	gateway  *gateway.RazorpayClient

	catalog  *catalogHTTP.CatalogHandler
	cart     *cartHTTP.CartHandler
	order    *orderHTTP.OrderHandler
	user     *userHTTP.UserHandler
	wishlist *wishlistHTTP.WishlistHandler
	contact  *contactHTTP.ContactHandler
	payment  *paymentHTTP.PaymentHandler
}

// NewServer creates a new server
func NewServer(
	db *gorm.DB,
	registry *prometheus.Registry,
	metrics *middleware.Metrics,
	authn *middleware.Authenticator,
	limiter *middleware.RateLimiter,
	gw *gateway.RazorpayClient,
	catalog *catalogHTTP.CatalogHandler,
	cart *cartHTTP.CartHandler,
	order *orderHTTP.OrderHandler,
	user *userHTTP.UserHandler,
	wishlist *wishlistHTTP.WishlistHandler,
	contact *contactHTTP.ContactHandler,
	payment *paymentHTTP.PaymentHandler,
) *Server {
	return &Server{
		db:       db,
		registry: registry,
		metrics:  metrics,
		authn:    authn,
		limiter:  limiter,
		gateway:  gw,
		catalog:  catalog,
		cart:     cart,
		order:    order,
		user:     user,
		wishlist: wishlist,
		contact:  contact,
		payment:  payment,
	}
}

// Router returns the root handler: business routes under /api plus the
// operational endpoints
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()

	// Logging runs inside Tracing so request logs carry the trace_id
	api := router.PathPrefix("/api").Subrouter()
	api.Use(middleware.Tracing("gog-commerce-api"))
	api.Use(middleware.Logging)
	api.Use(s.metrics.Middleware)

	s.user.RegisterRoutes(api, s.authn, s.limiter)
	s.catalog.RegisterRoutes(api)
	s.cart.RegisterRoutes(api)
	s.order.RegisterRoutes(api, s.authn)
	s.wishlist.RegisterRoutes(api)
	s.contact.RegisterRoutes(api, s.authn)
	s.payment.RegisterRoutes(api)

	router.Handle("/health", middleware.Logging(http.HandlerFunc(s.health))).Methods(http.MethodGet)
	router.Handle("/metrics", middleware.Logging(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))).Methods(http.MethodGet)
	router.PathPrefix("/swagger/").Handler(httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return router
}

// health godoc
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,payment_gateway=object}
// @Failure 503 {object} object{status=string,error=string,payment_gateway=object}
// @Router /health [get]
func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := s.ping(ctx); err != nil {
		logger.Warn(ctx).Err(err).Msg("Health check failed")
		response.JSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":          "unhealthy",
			"error":           "database unavailable",
			"payment_gateway": s.gateway.CircuitStats(),
		})
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"status":          "healthy",
		"payment_gateway": s.gateway.CircuitStats(),
	})
}

func (s *Server) ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
