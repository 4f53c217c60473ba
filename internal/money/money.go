// Package money formats decimal amounts for display in the configured
// currency. Arithmetic stays in decimal; this is presentation only.
package money

import (
	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Format renders amount in the given ISO currency code, e.g. "COP 1.234,56".
// Unknown codes fall back to a plain two-decimal rendering.
func Format(amount decimal.Decimal, code string) string {
	cur := gomoney.GetCurrency(code)
	if cur == nil {
		return amount.StringFixed(2)
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	return gomoney.New(minor.IntPart(), code).Display()
}
