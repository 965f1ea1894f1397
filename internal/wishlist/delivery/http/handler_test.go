package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"

	user "github.com/tair/gog-commerce/internal/user/domain"
	"github.com/tair/gog-commerce/internal/wishlist/domain"
	"github.com/tair/gog-commerce/internal/wishlist/usecase/command"
	"github.com/tair/gog-commerce/internal/wishlist/usecase/query"
	"github.com/tair/gog-commerce/pkg/apperror"
)

type wishlists struct {
	byID   map[uint]domain.Wishlist
	nextID uint
}

func (s *wishlists) Create(ctx context.Context, w *domain.Wishlist) error {
	s.nextID++
	w.ID = s.nextID
	s.byID[w.ID] = *w
	return nil
}

func (s *wishlists) FindByID(ctx context.Context, id uint) (*domain.Wishlist, error) {
	w, ok := s.byID[id]
	if !ok {
		return nil, apperror.New(apperror.ErrNotFound, "Wishlist not found")
	}
	w.Items = append([]domain.Item(nil), w.Items...)
	return &w, nil
}

func (s *wishlists) FindByUserID(ctx context.Context, userID uint) ([]domain.Wishlist, error) {
	var out []domain.Wishlist
	for id := uint(1); id <= s.nextID; id++ {
		if w, ok := s.byID[id]; ok && w.UserID == userID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (s *wishlists) Update(ctx context.Context, w *domain.Wishlist) error {
	s.byID[w.ID] = *w
	return nil
}

func (s *wishlists) Delete(ctx context.Context, id uint) error {
	if _, ok := s.byID[id]; !ok {
		return apperror.New(apperror.ErrNotFound, "Wishlist not found")
	}
	delete(s.byID, id)
	return nil
}

// owners knows user 1 only
type owners struct{}

func (owners) Create(ctx context.Context, u *user.User) error { return nil }

func (owners) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if id != 1 {
		return nil, apperror.New(apperror.ErrNotFound, "User not found")
	}
	return &user.User{ID: 1}, nil
}

func (owners) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, apperror.ErrNotFound
}

func (owners) FindAll(ctx context.Context) ([]user.User, error) { return nil, nil }

func (owners) Update(ctx context.Context, u *user.User) error { return nil }

func newRouter(store *wishlists) *mux.Router {
	h := NewWishlistHandler(
		command.NewCreateWishlistHandler(store, owners{}),
		command.NewAddProductHandler(store),
		command.NewRemoveProductHandler(store),
		query.NewListWishlistsHandler(store),
	)
	router := mux.NewRouter()
	h.RegisterRoutes(router.PathPrefix("/api").Subrouter())
	return router
}

func call(router http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, path, &buf))

	var out map[string]interface{}
	json.Unmarshal(rec.Body.Bytes(), &out)
	return rec, out
}

func TestWishlistLifecycle(t *testing.T) {
	store := &wishlists{byID: map[uint]domain.Wishlist{}}
	router := newRouter(store)

	rec, body := call(router, http.MethodPost, "/api/wishlists/create/1", map[string]string{"name": "Backlog"})
	if rec.Code != http.StatusOK || body["message"] != "Wishlist created successfully" {
		t.Fatalf("create = %d %v", rec.Code, body)
	}

	product := map[string]interface{}{"productId": 4, "title": "Disco Elysium", "price": 39.99, "productCode": "DE-1"}
	rec, body = call(router, http.MethodPost, "/api/wishlists/addProduct/1", product)
	if rec.Code != http.StatusOK {
		t.Fatalf("add = %d %v", rec.Code, body)
	}
	if got := body["wishlist"].(map[string]interface{})["totalQty"]; got != float64(1) {
		t.Errorf("totalQty = %v, want 1", got)
	}

	rec, body = call(router, http.MethodPost, "/api/wishlists/addProduct/1", product)
	if rec.Code != http.StatusBadRequest || body["error"] != "Product already exists in the wishlist" {
		t.Fatalf("duplicate = %d %v", rec.Code, body)
	}
	if stored := store.byID[1]; len(stored.Items) != 1 || stored.TotalQty != 1 {
		t.Fatalf("duplicate changed the wishlist: %+v", stored)
	}

	rec, body = call(router, http.MethodDelete, "/api/wishlists/1/removeProduct/4", nil)
	if rec.Code != http.StatusOK || body["message"] != "Wishlist deleted as no products are left" {
		t.Fatalf("remove = %d %v", rec.Code, body)
	}

	rec, body = call(router, http.MethodGet, "/api/wishlists/1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list = %d", rec.Code)
	}
	if lists := body["wishlists"].([]interface{}); len(lists) != 0 {
		t.Fatalf("wishlists = %v, want empty", lists)
	}
}

func TestRemoveProductKeepsNonEmptyWishlist(t *testing.T) {
	store := &wishlists{byID: map[uint]domain.Wishlist{}}
	router := newRouter(store)
	call(router, http.MethodPost, "/api/wishlists/create/1", map[string]string{"name": "Gifts"})
	call(router, http.MethodPost, "/api/wishlists/addProduct/1", map[string]interface{}{"productId": 1})
	call(router, http.MethodPost, "/api/wishlists/addProduct/1", map[string]interface{}{"productId": 2})

	rec, body := call(router, http.MethodDelete, "/api/wishlists/1/removeProduct/1", nil)
	if rec.Code != http.StatusOK || body["message"] != "Product removed from wishlist successfully" {
		t.Fatalf("remove = %d %v", rec.Code, body)
	}
	if stored := store.byID[1]; stored.TotalQty != 1 || stored.Items[0].ProductID != 2 {
		t.Fatalf("stored = %+v", stored)
	}
}

func TestWishlistNotFoundCases(t *testing.T) {
	store := &wishlists{byID: map[uint]domain.Wishlist{}}
	router := newRouter(store)
	call(router, http.MethodPost, "/api/wishlists/create/1", map[string]string{"name": "Gifts"})
	call(router, http.MethodPost, "/api/wishlists/addProduct/1", map[string]interface{}{"productId": 1})

	tests := []struct {
		name   string
		method string
		path   string
		body   interface{}
		want   int
		msg    string
	}{
		{"unknown owner", http.MethodPost, "/api/wishlists/create/7", map[string]string{"name": "x"}, http.StatusNotFound, "User not found"},
		{"missing name", http.MethodPost, "/api/wishlists/create/1", map[string]string{"name": " "}, http.StatusBadRequest, "Wishlist name is required"},
		{"add to missing wishlist", http.MethodPost, "/api/wishlists/addProduct/9", map[string]interface{}{"productId": 1}, http.StatusNotFound, "Wishlist not found"},
		{"remove from missing wishlist", http.MethodDelete, "/api/wishlists/9/removeProduct/1", nil, http.StatusNotFound, "Wishlist not found"},
		{"remove missing product", http.MethodDelete, "/api/wishlists/1/removeProduct/5", nil, http.StatusNotFound, "Product not found in wishlist"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := call(router, tt.method, tt.path, tt.body)
			if rec.Code != tt.want || body["error"] != tt.msg {
				t.Fatalf("got %d %v, want %d %q", rec.Code, body, tt.want, tt.msg)
			}
		})
	}
}

func TestAddProductAcceptsLowercaseProductCode(t *testing.T) {
	store := &wishlists{byID: map[uint]domain.Wishlist{}}
	router := newRouter(store)
	call(router, http.MethodPost, "/api/wishlists/create/1", map[string]string{"name": "Gifts"})

	rec, body := call(router, http.MethodPost, "/api/wishlists/addProduct/1",
		map[string]interface{}{"productId": 3, "productcode": "LMP-3"})
	if rec.Code != http.StatusOK {
		t.Fatalf("add = %d %v", rec.Code, body)
	}
	if got := store.byID[1].Items[0].ProductCode; got != "LMP-3" {
		t.Errorf("ProductCode = %q, want LMP-3", got)
	}
}
