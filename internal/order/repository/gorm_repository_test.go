package repository

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	cart "github.com/tair/gog-commerce/internal/cart/domain"
	cartrepo "github.com/tair/gog-commerce/internal/cart/repository"
	catalog "github.com/tair/gog-commerce/internal/catalog/domain"
	catalogrepo "github.com/tair/gog-commerce/internal/catalog/repository"
	"github.com/tair/gog-commerce/internal/order/domain"
	"github.com/tair/gog-commerce/internal/order/usecase/command"
	"github.com/tair/gog-commerce/pkg/apperror"
)

// testDB is set when TEST_DATABASE_DSN points at a disposable Postgres database
var testDB *gorm.DB

func setupTestDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	// Reset tables
	_ = db.Migrator().DropTable(&domain.Order{}, &cart.Cart{}, &catalog.Product{})
	if err := db.AutoMigrate(&domain.Order{}, &cart.Cart{}, &catalog.Product{}); err != nil {
		return nil, err
	}
	return db, nil
}

func TestMain(m *testing.M) {
	if dsn := os.Getenv("TEST_DATABASE_DSN"); dsn != "" {
		var err error
		testDB, err = setupTestDB(dsn)
		if err != nil {
			panic("failed to connect to test database: " + err.Error())
		}
	}
	os.Exit(m.Run())
}

func requireDB(t *testing.T) *gorm.DB {
	t.Helper()
	if testDB == nil {
		t.Skip("TEST_DATABASE_DSN not set")
	}
	for _, table := range []string{"orders", "carts", "products"} {
		if err := testDB.Exec("TRUNCATE TABLE " + table + " RESTART IDENTITY").Error; err != nil {
			t.Fatalf("truncate %s: %v", table, err)
		}
	}
	return testDB
}

func TestCheckoutCommitsAllThreeStores(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()

	lamp := catalog.Product{Title: "Lamp", Price: 12.5, ProductCode: "LMP"}
	if err := db.Create(&lamp).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	carts := cartrepo.NewGormCartRepository(db)
	c := &cart.Cart{UserID: 4}
	c.Add(cart.LineItem{ProductID: lamp.ID, Qty: 1, Price: lamp.Price, Title: lamp.Title})
	c.Add(cart.LineItem{ProductID: lamp.ID})
	if err := carts.Save(ctx, c); err != nil {
		t.Fatalf("seed cart: %v", err)
	}

	orders := NewGormOrderRepository(db)
	order, err := command.NewCheckoutHandler(orders, nil).Handle(ctx, command.CheckoutCommand{UserID: 4})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if order.TotalQty != 2 || order.TotalCost != 25 {
		t.Errorf("order totals = %d / %v", order.TotalQty, order.TotalCost)
	}

	if _, err := carts.FindByUserID(ctx, 4); !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("cart after checkout: err = %v, want NotFound", err)
	}

	stored, err := catalogrepo.NewGormProductRepository(db).FindByID(ctx, lamp.ID)
	if err != nil {
		t.Fatalf("reload product: %v", err)
	}
	if stored.Sold != 2 {
		t.Errorf("sold = %d, want 2", stored.Sold)
	}

	history, err := orders.FindByUserID(ctx, 4)
	if err != nil || len(history) != 1 || len(history[0].Items) != 1 {
		t.Fatalf("history = %+v, err %v", history, err)
	}
}

func TestTransactionRollsBack(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	orders := NewGormOrderRepository(db)

	errAbort := errors.New("abort")
	err := orders.Transaction(ctx, func(stores domain.CheckoutStores) error {
		if err := stores.Orders.Create(ctx, &domain.Order{Reference: "ref-1", UserID: 1, TotalQty: 1, TotalCost: 5}); err != nil {
			return err
		}
		return errAbort
	})
	if !errors.Is(err, errAbort) {
		t.Fatalf("err = %v, want abort", err)
	}

	all, err := orders.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("rolled back order is visible: %+v", all)
	}
}

func TestSalesByDay(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	orders := NewGormOrderRepository(db)

	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	for i, o := range []domain.Order{
		{CreatedAt: day.Add(2 * time.Hour), TotalCost: 10},
		{CreatedAt: day.Add(20 * time.Hour), TotalCost: 5.5},
		{CreatedAt: day.Add(26 * time.Hour), TotalCost: 7},
		{CreatedAt: day.Add(-time.Hour), TotalCost: 100}, // before the window
	} {
		o.Reference = string(rune('a'+i)) + "-ref"
		o.UserID = 1
		if err := orders.Create(ctx, &o); err != nil {
			t.Fatalf("seed order: %v", err)
		}
	}

	sales, err := orders.SalesByDay(ctx, day, day.AddDate(0, 0, 7))
	if err != nil {
		t.Fatalf("SalesByDay: %v", err)
	}
	want := []domain.DailySales{{Day: "2026-03-10", Total: 15.5}, {Day: "2026-03-11", Total: 7}}
	if len(sales) != len(want) {
		t.Fatalf("sales = %+v, want %+v", sales, want)
	}
	for i := range want {
		if sales[i] != want[i] {
			t.Errorf("sales[%d] = %+v, want %+v", i, sales[i], want[i])
		}
	}
}
