package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tair/gog-commerce/internal/wishlist/domain"
	"github.com/tair/gog-commerce/internal/wishlist/usecase/command"
	"github.com/tair/gog-commerce/internal/wishlist/usecase/query"
	"github.com/tair/gog-commerce/pkg/response"
)

// WishlistHandler handles HTTP requests for wishlists
type WishlistHandler struct {
	createHandler *command.CreateWishlistHandler
	addHandler    *command.AddProductHandler
	removeHandler *command.RemoveProductHandler
	listHandler   *query.ListWishlistsHandler
}

// NewWishlistHandler creates a new wishlist handler
func NewWishlistHandler(
	createHandler *command.CreateWishlistHandler,
	addHandler *command.AddProductHandler,
	removeHandler *command.RemoveProductHandler,
	listHandler *query.ListWishlistsHandler,
) *WishlistHandler {
	return &WishlistHandler{
		createHandler: createHandler,
		addHandler:    addHandler,
		removeHandler: removeHandler,
		listHandler:   listHandler,
	}
}

// RegisterRoutes registers the wishlist routes
func (h *WishlistHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/wishlists/{userId}", h.ListWishlists).Methods(http.MethodGet)
	router.HandleFunc("/wishlists/create/{userId}", h.CreateWishlist).Methods(http.MethodPost)
	router.HandleFunc("/wishlists/addProduct/{wishlistId}", h.AddProduct).Methods(http.MethodPost)
	router.HandleFunc("/wishlists/{wishlistId}/removeProduct/{productId}", h.RemoveProduct).Methods(http.MethodDelete)
}

func pathID(r *http.Request, name string) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)[name], 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// ListWishlists godoc
// @Summary List a user's wishlists
// @Tags Wishlists
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} object{wishlists=[]domain.Wishlist}
// @Failure 500 {object} object{error=string}
// @Router /api/wishlists/{userId} [get]
func (h *WishlistHandler) ListWishlists(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "userId")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	lists, err := h.listHandler.Handle(r.Context(), query.ListWishlistsQuery{UserID: userID})
	if err != nil {
		response.Failure(r.Context(), w, err, "Failed to fetch wishlists")
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{"wishlists": lists})
}

type createWishlistRequest struct {
	Name string `json:"name"`
}

// CreateWishlist godoc
// @Summary Create an empty wishlist
// @Tags Wishlists
// @Accept json
// @Produce json
// @Param userId path int true "User ID"
// @Param request body createWishlistRequest true "Wishlist"
// @Success 200 {object} object{message=string,wishlist=domain.Wishlist}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /api/wishlists/create/{userId} [post]
func (h *WishlistHandler) CreateWishlist(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "userId")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req createWishlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	list, err := h.createHandler.Handle(r.Context(), command.CreateWishlistCommand{UserID: userID, Name: req.Name})
	if err != nil {
		response.Failure(r.Context(), w, err, "Failed to create wishlist")
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"message":  "Wishlist created successfully",
		"wishlist": list,
	})
}

type addProductRequest struct {
	ProductID   uint    `json:"productId"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	ImagePath   string  `json:"imagePath"`
	ProductCode string  `json:"productCode"`
}

// AddProduct godoc
// @Summary Add a product to a wishlist
// @Tags Wishlists
// @Accept json
// @Produce json
// @Param wishlistId path int true "Wishlist ID"
// @Param request body addProductRequest true "Product snapshot"
// @Success 200 {object} object{message=string,wishlist=domain.Wishlist}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /api/wishlists/addProduct/{wishlistId} [post]
func (h *WishlistHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	wishlistID, ok := pathID(r, "wishlistId")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid wishlist ID")
		return
	}

	var req addProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	list, err := h.addHandler.Handle(r.Context(), command.AddProductCommand{
		WishlistID: wishlistID,
		Item: domain.Item{
			ProductID:   req.ProductID,
			Title:       req.Title,
			Price:       req.Price,
			ImagePath:   req.ImagePath,
			ProductCode: req.ProductCode,
		},
	})
	if err != nil {
		response.Failure(r.Context(), w, err, "Failed to add product to wishlist")
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"message":  "Product added to wishlist successfully",
		"wishlist": list,
	})
}

// RemoveProduct godoc
// @Summary Remove a product from a wishlist
// @Description The wishlist is deleted when its last product is removed
// @Tags Wishlists
// @Produce json
// @Param wishlistId path int true "Wishlist ID"
// @Param productId path int true "Product ID"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} object{error=string}
// @Router /api/wishlists/{wishlistId}/removeProduct/{productId} [delete]
func (h *WishlistHandler) RemoveProduct(w http.ResponseWriter, r *http.Request) {
	wishlistID, ok := pathID(r, "wishlistId")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid wishlist ID")
		return
	}
	productID, ok := pathID(r, "productId")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	result, err := h.removeHandler.Handle(r.Context(), command.RemoveProductCommand{
		WishlistID: wishlistID,
		ProductID:  productID,
	})
	if err != nil {
		response.Failure(r.Context(), w, err, "Internal server error")
		return
	}

	if result.Deleted {
		response.Message(w, http.StatusOK, "Wishlist deleted as no products are left")
		return
	}
	response.Message(w, http.StatusOK, "Product removed from wishlist successfully")
}
