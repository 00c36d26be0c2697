package receipt

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencySymbol prefixes every printed amount.
const CurrencySymbol = "GH₵"

// FormatMoney formats an amount like "GH₵ 12,500.00": two decimals, comma
// thousands separators, and a leading minus for negative amounts.
func FormatMoney(amount decimal.Decimal) string {
	s := amount.Round(2).Abs().StringFixed(2)
	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	b.Grow(len(whole) + len(whole)/3 + len(frac) + len(CurrencySymbol) + 3)
	if amount.Round(2).IsNegative() {
		b.WriteByte('-')
	}
	b.WriteString(CurrencySymbol)
	b.WriteByte(' ')

	rem := len(whole) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(whole[:rem])
	for i := rem; i < len(whole); i += 3 {
		b.WriteByte(',')
		b.WriteString(whole[i : i+3])
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}
