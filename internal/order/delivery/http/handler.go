package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	cart "github.com/tair/gog-commerce/internal/cart/domain"
	"github.com/tair/gog-commerce/internal/order/usecase/command"
	"github.com/tair/gog-commerce/internal/order/usecase/query"
	"github.com/tair/gog-commerce/pkg/logger"
	"github.com/tair/gog-commerce/pkg/middleware"
	"github.com/tair/gog-commerce/pkg/response"
)

// CacheInvalidator drops cached catalog responses
type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

// OrderHandler handles HTTP requests for checkout and the order ledger
type OrderHandler struct {
	checkoutHandler *command.CheckoutHandler
	listHandler     *query.ListOrdersHandler
	salesHandler    *query.SalesReportHandler
	catalogCache    CacheInvalidator

	checkouts *prometheus.CounterVec
	revenue   prometheus.Counter
}

// NewOrderHandler creates a new order handler and registers its collectors on reg
func NewOrderHandler(
	checkoutHandler *command.CheckoutHandler,
	listHandler *query.ListOrdersHandler,
	salesHandler *query.SalesReportHandler,
	catalogCache CacheInvalidator,
	reg prometheus.Registerer,
) *OrderHandler {
	checkouts := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_checkouts_total",
			Help: "Total number of checkout attempts by result",
		},
		[]string{"result"},
	)
	revenue := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "order_revenue_total",
			Help: "Sum of totalCost over committed orders",
		},
	)
	reg.MustRegister(checkouts, revenue)

	return &OrderHandler{
		checkoutHandler: checkoutHandler,
		listHandler:     listHandler,
		salesHandler:    salesHandler,
		catalogCache:    catalogCache,
		checkouts:       checkouts,
		revenue:         revenue,
	}
}

// RegisterRoutes registers the checkout, ledger and admin reporting routes
func (h *OrderHandler) RegisterRoutes(router *mux.Router, authn *middleware.Authenticator) {
	router.HandleFunc("/checkout", h.Checkout).Methods(http.MethodPost)
	router.HandleFunc("/checkouts", h.ListCheckouts).Methods(http.MethodGet)
	router.HandleFunc("/checkouts/{userId}", h.ListUserCheckouts).Methods(http.MethodGet)

	router.HandleFunc("/admin/checkout", authn.RequireAdmin(h.Checkout)).Methods(http.MethodPost)
	router.HandleFunc("/admin/orders", authn.RequireAdmin(h.ListOrders)).Methods(http.MethodGet)
	router.HandleFunc("/admin/sales/{period}", authn.RequireAdmin(h.SalesReport)).Methods(http.MethodGet)
}

type checkoutRequest struct {
	TotalQty  int             `json:"totalQty"`
	TotalCost float64         `json:"totalCost"`
	Items     []cart.LineItem `json:"items"`
	User      uint            `json:"user"`
}

// Checkout godoc
// @Summary Check out the user's cart
// @Description Records an order from the stored cart (or the given items), bumps sold counters and clears the cart
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body checkoutRequest true "Checkout"
// @Success 201 {object} object{message=string,checkout=domain.Order}
// @Failure 400 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /api/checkout [post]
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx := r.Context()
	order, err := h.checkoutHandler.Handle(ctx, command.CheckoutCommand{
		UserID:    req.User,
		TotalQty:  req.TotalQty,
		TotalCost: req.TotalCost,
		Items:     req.Items,
	})
	if err != nil {
		h.checkouts.WithLabelValues("failure").Inc()
		response.Failure(ctx, w, err, "Internal server error")
		return
	}

	h.checkouts.WithLabelValues("success").Inc()
	h.revenue.Add(order.TotalCost)

	if h.catalogCache != nil {
		if err := h.catalogCache.Invalidate(ctx); err != nil {
			logger.Warn(ctx).Err(err).Msg("Failed to invalidate catalog cache")
		}
	}

	response.JSON(w, http.StatusCreated, map[string]interface{}{
		"message":  "Checkout successful",
		"checkout": order,
	})
}

// ListUserCheckouts godoc
// @Summary List the items a user has checked out
// @Tags Orders
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} object{checkoutItems=[]domain.LineItem}
// @Failure 404 {object} object{error=string}
// @Router /api/checkouts/{userId} [get]
func (h *OrderHandler) ListUserCheckouts(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseUint(mux.Vars(r)["userId"], 10, 32)
	if err != nil || userID == 0 {
		response.Error(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	orders, err := h.listHandler.Handle(r.Context(), query.ListOrdersQuery{UserID: uint(userID)})
	if err != nil {
		response.Failure(r.Context(), w, err, "Internal server error")
		return
	}
	if len(orders) == 0 {
		response.Error(w, http.StatusNotFound, "Checkouts not found")
		return
	}

	items := make([]cart.LineItem, 0)
	for _, o := range orders {
		items = append(items, o.Items...)
	}
	response.JSON(w, http.StatusOK, map[string]interface{}{"checkoutItems": items})
}

// ListCheckouts godoc
// @Summary List every order
// @Tags Orders
// @Produce json
// @Success 200 {object} object{checkouts=[]domain.Order}
// @Failure 404 {object} object{error=string}
// @Router /api/checkouts [get]
func (h *OrderHandler) ListCheckouts(w http.ResponseWriter, r *http.Request) {
	orders, err := h.listHandler.Handle(r.Context(), query.ListOrdersQuery{})
	if err != nil {
		response.Failure(r.Context(), w, err, "Internal server error")
		return
	}
	if len(orders) == 0 {
		response.Error(w, http.StatusNotFound, "Checkouts not found")
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{"checkouts": orders})
}

// ListOrders godoc
// @Summary List every order (admin)
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.Order
// @Failure 401 {object} object{message=string}
// @Failure 403 {object} object{message=string}
// @Router /api/admin/orders [get]
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.listHandler.Handle(r.Context(), query.ListOrdersQuery{})
	if err != nil {
		response.Failure(r.Context(), w, err, "Internal server error")
		return
	}

	response.JSON(w, http.StatusOK, orders)
}

// SalesReport godoc
// @Summary Revenue per day over a period
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param period path string true "day, week, month or year"
// @Success 200 {object} query.SalesReport
// @Failure 400 {object} object{error=string}
// @Router /api/admin/sales/{period} [get]
func (h *OrderHandler) SalesReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.salesHandler.Handle(r.Context(), query.SalesReportQuery{Period: mux.Vars(r)["period"]})
	if err != nil {
		response.Failure(r.Context(), w, err, "Internal server error")
		return
	}

	response.JSON(w, http.StatusOK, report)
}
