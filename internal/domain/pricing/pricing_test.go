package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestSubtotal(t *testing.T) {
	t.Run("empty item list -> zero", func(t *testing.T) {
		if got := Subtotal(nil); !got.IsZero() {
			t.Fatalf("expected zero subtotal, got %s", got)
		}
	})

	t.Run("sums price times quantity", func(t *testing.T) {
		items := []LineItem{
			{UnitPrice: decimal.NewFromFloat(19.99), Quantity: 2},
			{UnitPrice: decimal.NewFromFloat(5.01), Quantity: 3},
		}
		want := decimal.NewFromFloat(55.01)
		if got := Subtotal(items); !got.Equal(want) {
			t.Fatalf("expected %s, got %s", want, got)
		}
	})
}

func TestTax(t *testing.T) {
	t.Run("eight percent of subtotal is exact", func(t *testing.T) {
		subtotal := decimal.NewFromInt(100)
		want := decimal.NewFromInt(8)
		if got := Tax(subtotal, DefaultTaxRate); !got.Equal(want) {
			t.Fatalf("expected %s, got %s", want, got)
		}
	})

	t.Run("zero subtotal -> zero tax", func(t *testing.T) {
		if got := Tax(decimal.Zero, DefaultTaxRate); !got.IsZero() {
			t.Fatalf("expected zero tax, got %s", got)
		}
	})
}

func TestTotal(t *testing.T) {
	subtotal := decimal.NewFromInt(100)
	tax := Tax(subtotal, DefaultTaxRate)

	t.Run("without extras", func(t *testing.T) {
		want := decimal.NewFromInt(108)
		if got := Total(subtotal, tax); !got.Equal(want) {
			t.Fatalf("expected %s, got %s", want, got)
		}
	})

	t.Run("with shipping extra", func(t *testing.T) {
		shipping := decimal.NewFromFloat(9.99)
		want := decimal.NewFromFloat(117.99)
		if got := Total(subtotal, tax, shipping); !got.Equal(want) {
			t.Fatalf("expected %s, got %s", want, got)
		}
	})
}
