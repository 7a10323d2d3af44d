// internal/domain/pricing/pricing.go
package pricing

import "github.com/shopspring/decimal"

// DefaultTaxRate is the flat tax rate applied to cart subtotals (8%).
var DefaultTaxRate = decimal.NewFromFloat(0.08)

// LineItem is the minimal view of a priced line the calculator needs.
type LineItem struct {
	UnitPrice decimal.Decimal
	Quantity  int
}

// LineTotal returns the extended price of a single line
func LineTotal(item LineItem) decimal.Decimal {
	return item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
}

// Subtotal sums the extended price of every line. An empty item list
// yields zero.
func Subtotal(items []LineItem) decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(LineTotal(item))
	}
	return subtotal
}

// Tax computes the tax owed on a subtotal at the given rate. Amounts
// are exact decimals; rounding to currency precision is a presentation
// concern and is never performed here.
func Tax(subtotal, rate decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(rate)
}

// Total sums subtotal, tax and any extra costs (shipping, fees).
func Total(subtotal, tax decimal.Decimal, extraCosts ...decimal.Decimal) decimal.Decimal {
	total := subtotal.Add(tax)
	for _, extra := range extraCosts {
		total = total.Add(extra)
	}
	return total
}
