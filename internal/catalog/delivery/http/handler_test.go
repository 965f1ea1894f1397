package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"

	"github.com/tair/gog-commerce/internal/catalog/domain"
	"github.com/tair/gog-commerce/internal/catalog/usecase/query"
	"github.com/tair/gog-commerce/pkg/apperror"
)

type fakeProducts struct {
	products map[uint]domain.Product
	err      error
}

func (f *fakeProducts) FindAll(ctx context.Context) ([]domain.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.Product
	for id := uint(1); id <= uint(len(f.products)); id++ {
		out = append(out, f.products[id])
	}
	return out, nil
}

func (f *fakeProducts) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.products[id]
	if !ok {
		return nil, apperror.New(apperror.ErrNotFound, "Product not found")
	}
	return &p, nil
}

func (f *fakeProducts) IncrementSold(ctx context.Context, id uint, qty int) (bool, error) {
	return false, nil
}

func newTestRouter(repo domain.ProductRepository) *mux.Router {
	h := NewCatalogHandler(query.NewListProductsHandler(repo), query.NewGetProductHandler(repo), nil)
	router := mux.NewRouter()
	h.RegisterRoutes(router.PathPrefix("/api").Subrouter())
	return router
}

func TestListProducts(t *testing.T) {
	repo := &fakeProducts{products: map[uint]domain.Product{
		1: {ID: 1, Title: "Witcher 3", Price: 29.99},
		2: {ID: 2, Title: "Cyberpunk", Price: 49.99},
	}}

	rec := httptest.NewRecorder()
	newTestRouter(repo).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body struct {
		Products []domain.Product `json:"products"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Products) != 2 || body.Products[0].Title != "Witcher 3" {
		t.Fatalf("unexpected products: %+v", body.Products)
	}
}

func TestListProductsEmptyCatalogIsEmptyArray(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(&fakeProducts{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))

	if got := rec.Body.String(); got != "{\"products\":[]}\n" {
		t.Fatalf("body = %q", got)
	}
}

func TestGetProduct(t *testing.T) {
	repo := &fakeProducts{products: map[uint]domain.Product{1: {ID: 1, Title: "Witcher 3"}}}

	tests := []struct {
		name string
		path string
		want int
	}{
		{"found", "/api/products/1", http.StatusOK},
		{"missing", "/api/products/9", http.StatusNotFound},
		{"non numeric", "/api/products/abc", http.StatusBadRequest},
		{"zero", "/api/products/0", http.StatusBadRequest},
	}

	router := newTestRouter(repo)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d (%s)", rec.Code, tt.want, rec.Body.String())
			}
		})
	}
}

func TestListProductsStoreFailureIsInternal(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(&fakeProducts{err: fmt.Errorf("connection reset")}).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	var body map[string]string
	json.NewDecoder(rec.Body).Decode(&body)
	if body["error"] != "Failed to list products" {
		t.Fatalf("error message = %q", body["error"])
	}
}
