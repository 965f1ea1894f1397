package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tair/gog-commerce/internal/cart/usecase/command"
	"github.com/tair/gog-commerce/internal/cart/usecase/query"
	"github.com/tair/gog-commerce/pkg/response"
)

// CartHandler handles HTTP requests for carts
type CartHandler struct {
	addHandler *command.AddToCartHandler
	getHandler *query.GetCartHandler
}

// NewCartHandler creates a new cart handler
func NewCartHandler(addHandler *command.AddToCartHandler, getHandler *query.GetCartHandler) *CartHandler {
	return &CartHandler{addHandler: addHandler, getHandler: getHandler}
}

// RegisterRoutes registers the cart routes
func (h *CartHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/carts/addToCart", h.AddToCart).Methods(http.MethodPost)
	router.HandleFunc("/carts/{userId}", h.GetCart).Methods(http.MethodGet)
}

type addToCartRequest struct {
	ProductID uint `json:"productId"`
	UserID    uint `json:"userId"`
}

// AddToCart godoc
// @Summary Add a product to the user's cart
// @Description Adds one unit of the product, merging with an existing line item
// @Tags Carts
// @Accept json
// @Produce json
// @Param request body addToCartRequest true "Product and user"
// @Success 200 {object} object{message=string,cartId=int}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /api/carts/addToCart [post]
func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req addToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cart, err := h.addHandler.Handle(r.Context(), command.AddToCartCommand{
		UserID:    req.UserID,
		ProductID: req.ProductID,
	})
	if err != nil {
		response.Failure(r.Context(), w, err, "Internal server error")
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Product added to cart successfully",
		"cartId":  cart.ID,
	})
}

// GetCart godoc
// @Summary Get the user's cart items
// @Tags Carts
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} object{cartItems=[]domain.LineItem}
// @Failure 404 {object} object{error=string}
// @Router /api/carts/{userId} [get]
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseUint(mux.Vars(r)["userId"], 10, 32)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	cart, err := h.getHandler.Handle(r.Context(), query.GetCartQuery{UserID: uint(userID)})
	if err != nil {
		response.Failure(r.Context(), w, err, "Internal server error")
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{"cartItems": cart.Items})
}
