package domain

import "testing"

func TestAddMergesRepeatedProduct(t *testing.T) {
	var c Cart
	item := LineItem{ProductID: 7, Price: 19.99, Title: "Hades"}

	c.Add(item)
	c.Add(item)

	if len(c.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(c.Items))
	}
	if c.Items[0].Qty != 2 {
		t.Errorf("qty = %d, want 2", c.Items[0].Qty)
	}
	if c.TotalQty != 2 || c.TotalCost != 39.98 {
		t.Errorf("totals = %d/%v, want 2/39.98", c.TotalQty, c.TotalCost)
	}
}

func TestAddKeepsOriginalSnapshot(t *testing.T) {
	var c Cart
	c.Add(LineItem{ProductID: 1, Price: 10, Title: "Old"})
	c.Add(LineItem{ProductID: 1, Price: 99, Title: "New"})

	if c.Items[0].Price != 10 || c.Items[0].Title != "Old" {
		t.Fatalf("snapshot overwritten: %+v", c.Items[0])
	}
	if c.TotalCost != 20 {
		t.Fatalf("totalCost = %v, want 20", c.TotalCost)
	}
}

func TestTotalsAvoidsFloatDrift(t *testing.T) {
	items := []LineItem{
		{ProductID: 1, Qty: 3, Price: 0.1},
		{ProductID: 2, Qty: 1, Price: 0.2},
	}

	qty, cost := Totals(items)
	if qty != 4 {
		t.Errorf("qty = %d, want 4", qty)
	}
	if cost != 0.5 {
		t.Errorf("cost = %v, want 0.5", cost)
	}
}

func TestTotalsEmpty(t *testing.T) {
	qty, cost := Totals(nil)
	if qty != 0 || cost != 0 {
		t.Fatalf("totals = %d/%v, want 0/0", qty, cost)
	}
}
