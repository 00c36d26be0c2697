package pos

import "github.com/shopspring/decimal"

// Totals is the order summary shown next to the cart.
//
// The order-level discount is taken from the subtotal, which already
// carries each line's own discount; the two layers stack.
type Totals struct {
	SubTotal   decimal.Decimal `json:"subTotal"`
	Discount   decimal.Decimal `json:"discount"`
	Tax        decimal.Decimal `json:"tax"`
	GrandTotal decimal.Decimal `json:"grandTotal"`
	Payments   decimal.Decimal `json:"payments"`
	Balance    decimal.Decimal `json:"balance"`
}

// ComputeTotals sums saved order lines and cart lines. customerRate and
// taxRate are percentages. Balance may go negative on overpayment.
func ComputeTotals(saved, cart []LineItem, payments []Payment, customerRate, taxRate decimal.Decimal) Totals {
	sub := decimal.Zero
	for _, l := range saved {
		sub = sub.Add(l.Total())
	}
	for _, l := range cart {
		sub = sub.Add(l.Total())
	}
	discount := percentOf(sub, customerRate)
	tax := percentOf(sub.Sub(discount), taxRate)
	grand := sub.Sub(discount).Add(tax)
	paid := sumPayments(payments)
	return Totals{
		SubTotal:   sub,
		Discount:   discount,
		Tax:        tax,
		GrandTotal: grand,
		Payments:   paid,
		Balance:    grand.Sub(paid),
	}
}

// Covered reports whether the payments meet the grand total once both are
// rounded to cents.
func (t Totals) Covered() bool {
	return t.Payments.Round(2).GreaterThanOrEqual(t.GrandTotal.Round(2))
}
