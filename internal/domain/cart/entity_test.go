package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/your-org/storefront/internal/domain/catalog"
)

func testProduct(id int64, price float64) catalog.Product {
	return catalog.Product{
		ID:       id,
		Title:    "Test Product",
		Price:    decimal.NewFromFloat(price),
		Category: "electronics",
	}
}

func TestAddItem(t *testing.T) {
	t.Run("rejects quantity below one", func(t *testing.T) {
		c := New(1)
		if err := c.AddItem(testProduct(1, 9.99), 0, "", ""); err != ErrInvalidQuantity {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
		if !c.IsEmpty() {
			t.Fatal("cart should stay empty after rejected add")
		}
	})

	t.Run("same product and variant merges into one line", func(t *testing.T) {
		c := New(1)
		p := testProduct(1, 10)

		if err := c.AddItem(p, 2, "", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := c.AddItem(p, 3, "", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(c.Items) != 1 {
			t.Fatalf("expected 1 line, got %d", len(c.Items))
		}
		if c.Items[0].Quantity != 5 {
			t.Fatalf("expected quantity 5, got %d", c.Items[0].Quantity)
		}
		if want := decimal.NewFromInt(50); !c.Items[0].TotalPrice().Equal(want) {
			t.Fatalf("expected line total %s, got %s", want, c.Items[0].TotalPrice())
		}
	})

	t.Run("same product with different size stays a separate line", func(t *testing.T) {
		c := New(1)
		p := testProduct(1, 10)

		_ = c.AddItem(p, 1, "M", "")
		_ = c.AddItem(p, 1, "L", "")

		if len(c.Items) != 2 {
			t.Fatalf("expected 2 lines, got %d", len(c.Items))
		}
	})
}

func TestSetQuantity(t *testing.T) {
	t.Run("absent line -> ErrItemNotFound", func(t *testing.T) {
		c := New(1)
		if err := c.SetQuantity(42, "", "", 3); err != ErrItemNotFound {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})

	t.Run("updates quantity in place", func(t *testing.T) {
		c := New(1)
		_ = c.AddItem(testProduct(1, 10), 2, "", "")

		if err := c.SetQuantity(1, "", "", 7); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Items[0].Quantity != 7 {
			t.Fatalf("expected quantity 7, got %d", c.Items[0].Quantity)
		}
	})

	t.Run("zero quantity removes the line", func(t *testing.T) {
		c := New(1)
		_ = c.AddItem(testProduct(1, 10), 2, "", "")

		if err := c.SetQuantity(1, "", "", 0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !c.IsEmpty() {
			t.Fatal("expected empty cart after setting quantity to zero")
		}
	})

	t.Run("negative quantity also removes the line", func(t *testing.T) {
		c := New(1)
		_ = c.AddItem(testProduct(1, 10), 2, "", "")

		if err := c.SetQuantity(1, "", "", -4); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !c.IsEmpty() {
			t.Fatal("expected empty cart after negative quantity")
		}
	})
}

func TestRemoveItem(t *testing.T) {
	t.Run("removing absent line is a no-op", func(t *testing.T) {
		c := New(1)
		_ = c.AddItem(testProduct(1, 10), 1, "", "")

		c.RemoveItem(99, "", "")

		if len(c.Items) != 1 {
			t.Fatalf("expected cart untouched, got %d lines", len(c.Items))
		}
	})

	t.Run("removes the matching line only", func(t *testing.T) {
		c := New(1)
		_ = c.AddItem(testProduct(1, 10), 1, "", "")
		_ = c.AddItem(testProduct(2, 20), 1, "", "")

		c.RemoveItem(1, "", "")

		if len(c.Items) != 1 || c.Items[0].Product.ID != 2 {
			t.Fatalf("expected only product 2 left, got %+v", c.Items)
		}
	})
}

func TestTotals(t *testing.T) {
	t.Run("empty cart -> all zero", func(t *testing.T) {
		totals := New(1).Totals()
		if totals.TotalItems != 0 || !totals.Subtotal.IsZero() || !totals.Tax.IsZero() || !totals.Total.IsZero() {
			t.Fatalf("expected zero totals, got %+v", totals)
		}
	})

	t.Run("total equals subtotal plus tax", func(t *testing.T) {
		c := New(1)
		_ = c.AddItem(testProduct(1, 30), 2, "", "")
		_ = c.AddItem(testProduct(2, 40), 1, "", "")

		totals := c.Totals()

		if want := decimal.NewFromInt(100); !totals.Subtotal.Equal(want) {
			t.Fatalf("expected subtotal %s, got %s", want, totals.Subtotal)
		}
		if want := decimal.NewFromInt(8); !totals.Tax.Equal(want) {
			t.Fatalf("expected tax %s, got %s", want, totals.Tax)
		}
		if !totals.Total.Equal(totals.Subtotal.Add(totals.Tax)) {
			t.Fatal("total must equal subtotal + tax")
		}
		if totals.TotalItems != 3 {
			t.Fatalf("expected 3 total items, got %d", totals.TotalItems)
		}
	})
}

func TestRemoteLines(t *testing.T) {
	t.Run("variant lines with one product collapse into one wire line", func(t *testing.T) {
		c := New(1)
		p := testProduct(1, 10)
		_ = c.AddItem(p, 2, "M", "")
		_ = c.AddItem(p, 3, "L", "")
		_ = c.AddItem(testProduct(2, 5), 1, "", "")

		lines := c.RemoteLines()

		if len(lines) != 2 {
			t.Fatalf("expected 2 wire lines, got %d", len(lines))
		}
		if lines[0].ProductID != 1 || lines[0].Quantity != 5 {
			t.Fatalf("expected product 1 with quantity 5, got %+v", lines[0])
		}
	})
}

func TestClone(t *testing.T) {
	c := New(1)
	_ = c.AddItem(testProduct(1, 10), 2, "", "")

	snapshot := c.Clone()
	_ = c.SetQuantity(1, "", "", 9)

	if snapshot.Items[0].Quantity != 2 {
		t.Fatalf("snapshot must not see later mutations, got quantity %d", snapshot.Items[0].Quantity)
	}
}
