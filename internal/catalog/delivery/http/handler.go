package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tair/gog-commerce/internal/catalog/usecase/query"
	"github.com/tair/gog-commerce/pkg/middleware"
	"github.com/tair/gog-commerce/pkg/response"
)

// CatalogHandler handles HTTP requests for products
type CatalogHandler struct {
	listHandler       *query.ListProductsHandler
	getProductHandler *query.GetProductHandler
	cache             *middleware.ResponseCache
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(
	listHandler *query.ListProductsHandler,
	getProductHandler *query.GetProductHandler,
	cache *middleware.ResponseCache,
) *CatalogHandler {
	return &CatalogHandler{
		listHandler:       listHandler,
		getProductHandler: getProductHandler,
		cache:             cache,
	}
}

// RegisterRoutes registers the public catalog routes behind the response cache
func (h *CatalogHandler) RegisterRoutes(router *mux.Router) {
	router.Handle("/products", h.cache.Middleware(http.HandlerFunc(h.ListProducts))).Methods(http.MethodGet)
	router.Handle("/products/{id}", h.cache.Middleware(http.HandlerFunc(h.GetProduct))).Methods(http.MethodGet)
}

// ListProducts godoc
// @Summary List products
// @Tags Products
// @Produce json
// @Success 200 {object} object{products=[]domain.Product}
// @Failure 500 {object} object{error=string}
// @Router /api/products [get]
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.listHandler.Handle(r.Context(), query.ListProductsQuery{})
	if err != nil {
		response.Failure(r.Context(), w, err, "Failed to list products")
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{"products": products})
}

// GetProduct godoc
// @Summary Get a product
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} object{product=domain.Product}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /api/products/{id} [get]
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	product, err := h.getProductHandler.Handle(r.Context(), query.GetProductQuery{ID: uint(id)})
	if err != nil {
		response.Failure(r.Context(), w, err, "Failed to get product")
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{"product": product})
}
