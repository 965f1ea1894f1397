package command

import (
	"context"
	"errors"
	"testing"

	"github.com/tair/gog-commerce/internal/cart/domain"
	catalog "github.com/tair/gog-commerce/internal/catalog/domain"
	"github.com/tair/gog-commerce/pkg/apperror"
)

type memoryCarts struct {
	byUser  map[uint]*domain.Cart
	nextID  uint
	saveErr error
}

func newMemoryCarts() *memoryCarts {
	return &memoryCarts{byUser: map[uint]*domain.Cart{}}
}

func (m *memoryCarts) FindByUserID(ctx context.Context, userID uint) (*domain.Cart, error) {
	c, ok := m.byUser[userID]
	if !ok {
		return nil, apperror.New(apperror.ErrNotFound, "Cart not found")
	}
	cp := *c
	cp.Items = append([]domain.LineItem(nil), c.Items...)
	return &cp, nil
}

func (m *memoryCarts) Save(ctx context.Context, cart *domain.Cart) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	if cart.ID == 0 {
		m.nextID++
		cart.ID = m.nextID
	}
	cp := *cart
	cp.Items = append([]domain.LineItem(nil), cart.Items...)
	m.byUser[cart.UserID] = &cp
	return nil
}

func (m *memoryCarts) DeleteByUserID(ctx context.Context, userID uint) error {
	delete(m.byUser, userID)
	return nil
}

type stubProducts map[uint]catalog.Product

func (s stubProducts) FindAll(ctx context.Context) ([]catalog.Product, error) { return nil, nil }

func (s stubProducts) FindByID(ctx context.Context, id uint) (*catalog.Product, error) {
	p, ok := s[id]
	if !ok {
		return nil, apperror.New(apperror.ErrNotFound, "Product not found")
	}
	return &p, nil
}

func (s stubProducts) IncrementSold(ctx context.Context, id uint, qty int) (bool, error) {
	return true, nil
}

var catalogFixture = stubProducts{
	1: {ID: 1, Title: "Hades", Price: 24.99, ImagePath: "/img/hades.png", ProductCode: "HAD-01"},
	2: {ID: 2, Title: "Celeste", Price: 19.99, ProductCode: "CEL-01"},
}

func TestAddToCartTwiceMergesLineItem(t *testing.T) {
	carts := newMemoryCarts()
	h := NewAddToCartHandler(carts, catalogFixture)
	ctx := context.Background()

	first, err := h.Handle(ctx, AddToCartCommand{UserID: 5, ProductID: 1})
	if err != nil {
		t.Fatalf("first add: %v", err)
	}
	second, err := h.Handle(ctx, AddToCartCommand{UserID: 5, ProductID: 1})
	if err != nil {
		t.Fatalf("second add: %v", err)
	}

	if first.ID != second.ID {
		t.Errorf("cart id changed: %d -> %d", first.ID, second.ID)
	}
	if len(carts.byUser) != 1 {
		t.Fatalf("carts = %d, want 1", len(carts.byUser))
	}

	stored := carts.byUser[5]
	if len(stored.Items) != 1 || stored.Items[0].Qty != 2 {
		t.Fatalf("items = %+v, want one item with qty 2", stored.Items)
	}
	if stored.TotalQty != 2 || stored.TotalCost != 49.98 {
		t.Errorf("totals = %d/%v, want 2/49.98", stored.TotalQty, stored.TotalCost)
	}
	if stored.Items[0].ProductCode != "HAD-01" || stored.Items[0].ImagePath != "/img/hades.png" {
		t.Errorf("snapshot not copied: %+v", stored.Items[0])
	}
}

func TestAddToCartAppendsDistinctProducts(t *testing.T) {
	carts := newMemoryCarts()
	h := NewAddToCartHandler(carts, catalogFixture)
	ctx := context.Background()

	for _, pid := range []uint{1, 2, 1} {
		if _, err := h.Handle(ctx, AddToCartCommand{UserID: 9, ProductID: pid}); err != nil {
			t.Fatalf("add %d: %v", pid, err)
		}
	}

	stored := carts.byUser[9]
	if len(stored.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(stored.Items))
	}
	if stored.Items[0].ProductID != 1 || stored.Items[1].ProductID != 2 {
		t.Errorf("insertion order lost: %+v", stored.Items)
	}
	if stored.TotalQty != 3 || stored.TotalCost != 69.97 {
		t.Errorf("totals = %d/%v, want 3/69.97", stored.TotalQty, stored.TotalCost)
	}
}

func TestAddToCartUnknownProduct(t *testing.T) {
	carts := newMemoryCarts()
	h := NewAddToCartHandler(carts, catalogFixture)

	_, err := h.Handle(context.Background(), AddToCartCommand{UserID: 5, ProductID: 42})
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("err = %v, want not found", err)
	}
	if len(carts.byUser) != 0 {
		t.Error("cart must not be created for an unknown product")
	}
}

func TestAddToCartValidation(t *testing.T) {
	h := NewAddToCartHandler(newMemoryCarts(), catalogFixture)

	for _, cmd := range []AddToCartCommand{{UserID: 0, ProductID: 1}, {UserID: 1, ProductID: 0}} {
		if _, err := h.Handle(context.Background(), cmd); !errors.Is(err, apperror.ErrBadRequest) {
			t.Errorf("Handle(%+v) err = %v, want bad request", cmd, err)
		}
	}
}

func TestAddToCartStoreFailureIsInternal(t *testing.T) {
	carts := newMemoryCarts()
	carts.saveErr = errors.New("connection refused")
	h := NewAddToCartHandler(carts, catalogFixture)

	_, err := h.Handle(context.Background(), AddToCartCommand{UserID: 5, ProductID: 1})
	if !apperror.IsInternal(err) {
		t.Fatalf("err = %v, want internal", err)
	}
}

func TestClearCart(t *testing.T) {
	carts := newMemoryCarts()
	add := NewAddToCartHandler(carts, catalogFixture)
	if _, err := add.Handle(context.Background(), AddToCartCommand{UserID: 3, ProductID: 2}); err != nil {
		t.Fatal(err)
	}

	if err := NewClearCartHandler(carts).Handle(context.Background(), ClearCartCommand{UserID: 3}); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := carts.FindByUserID(context.Background(), 3); !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("cart still present: %v", err)
	}
	// clearing a missing cart is not an error
	if err := NewClearCartHandler(carts).Handle(context.Background(), ClearCartCommand{UserID: 3}); err != nil {
		t.Fatalf("second clear: %v", err)
	}
}
