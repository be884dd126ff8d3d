package domain

import "github.com/shopspring/decimal"

// Prices are stored as float64 but all arithmetic and display formatting go
// through decimal so $0.40 x 2 renders as exactly $0.80.

// Subtotal returns price x quantity for one cart line.
func (ci CartItem) Subtotal() float64 {
	return lineTotal(ci.Price, ci.Quantity).InexactFloat64()
}

// SubtotalUSD formats the line subtotal as "$0.80".
func (ci CartItem) SubtotalUSD() string {
	return "$" + lineTotal(ci.Price, ci.Quantity).StringFixed(2)
}

// Total sums price x quantity over items. Empty input totals zero.
func Total(items []CartItem) float64 {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(lineTotal(it.Price, it.Quantity))
	}
	return sum.InexactFloat64()
}

// USD formats an amount as "$1.75".
func USD(amount float64) string {
	return "$" + decimal.NewFromFloat(amount).StringFixed(2)
}

func lineTotal(price float64, qty int) decimal.Decimal {
	return decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(qty)))
}
