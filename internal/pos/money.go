package pos

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// percentOf returns pct percent of v.
func percentOf(v, pct decimal.Decimal) decimal.Decimal {
	return v.Mul(pct).Div(hundred)
}

func fromFloat(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

// toFloat converts for the wire. Amounts are rounded to cents first so the
// ERP never sees binary noise.
func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}

func validPercent(pct decimal.Decimal) bool {
	return !pct.IsNegative() && pct.LessThanOrEqual(hundred)
}
