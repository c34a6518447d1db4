// Package money implements monetary derivations at currency-minor-unit
// precision. Amounts cross package boundaries as float64 but all arithmetic
// and rounding happens on decimals, half-up to 2 places.
package money

import "github.com/shopspring/decimal"

// Round2 rounds an amount to 2 decimal places, half away from zero.
func Round2(amount float64) float64 {
	out, _ := decimal.NewFromFloat(amount).Round(2).Float64()
	return out
}

// FromGross derives net and tax amounts from a VAT-inclusive gross total:
// net = gross / (1 + rate), tax = gross - net, both rounded to 2 places.
func FromGross(gross, taxRate float64) (net, tax float64) {
	g := decimal.NewFromFloat(gross)
	divisor := decimal.NewFromFloat(taxRate).Add(decimal.NewFromInt(1))

	n := g.Div(divisor)
	t := g.Sub(n)

	net, _ = n.Round(2).Float64()
	tax, _ = t.Round(2).Float64()
	return net, tax
}
