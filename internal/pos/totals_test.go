package pos

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func cartOf(lines ...LineItem) []LineItem {
	return lines
}

func TestTotalsFullyPaid(t *testing.T) {
	cart := cartOf(LineItem{ProductID: "1", UnitPrice: dec("10"), Quantity: 2})
	totals := ComputeTotals(nil, cart, []Payment{{Amount: dec("20")}}, decimal.Zero, decimal.Zero)

	assert.Equal(t, "20.00", totals.GrandTotal.StringFixed(2))
	assert.Equal(t, "0.00", totals.Balance.StringFixed(2))
	assert.True(t, totals.Covered())
	assert.True(t, totals.GrandTotal.Round(2).Equal(totals.Payments.Round(2)))
}

func TestTotalsUnpaidDiscountedLine(t *testing.T) {
	cart := cartOf(LineItem{ProductID: "1", UnitPrice: dec("10"), Quantity: 1, Discount: dec("10")})
	totals := ComputeTotals(nil, cart, nil, decimal.Zero, decimal.Zero)

	assert.Equal(t, "9.00", totals.GrandTotal.StringFixed(2))
	assert.Equal(t, "9.00", totals.Balance.StringFixed(2))
	assert.False(t, totals.Covered())
}

func TestTotalsOrderDiscountStacksOnLineDiscount(t *testing.T) {
	cart := cartOf(LineItem{ProductID: "1", UnitPrice: dec("100"), Quantity: 1, Discount: dec("10")})
	totals := ComputeTotals(nil, cart, nil, dec("10"), decimal.Zero)

	assert.Equal(t, "90.00", totals.SubTotal.StringFixed(2))
	assert.Equal(t, "9.00", totals.Discount.StringFixed(2))
	assert.Equal(t, "81.00", totals.GrandTotal.StringFixed(2))
}

func TestTotalsTaxAfterDiscount(t *testing.T) {
	cart := cartOf(LineItem{ProductID: "1", UnitPrice: dec("50"), Quantity: 2})
	totals := ComputeTotals(nil, cart, nil, dec("10"), dec("5"))

	assert.Equal(t, "10.00", totals.Discount.StringFixed(2))
	assert.Equal(t, "4.50", totals.Tax.StringFixed(2))
	assert.Equal(t, "94.50", totals.GrandTotal.StringFixed(2))
}

func TestTotalsIncludeSavedLines(t *testing.T) {
	stored := dec("30")
	saved := []LineItem{{ProductID: "7", UnitPrice: dec("15"), Quantity: 2, StoredTotal: &stored, Saved: true}}
	cart := cartOf(LineItem{ProductID: "1", UnitPrice: dec("5"), Quantity: 1})

	totals := ComputeTotals(saved, cart, []Payment{{Amount: dec("40")}}, decimal.Zero, decimal.Zero)
	assert.Equal(t, "35.00", totals.GrandTotal.StringFixed(2))
	assert.Equal(t, "-5.00", totals.Balance.StringFixed(2))
	assert.True(t, totals.Covered())
}

func TestCoveredComparesRoundedCents(t *testing.T) {
	cart := cartOf(LineItem{ProductID: "1", UnitPrice: dec("3.333"), Quantity: 3})
	totals := ComputeTotals(nil, cart, []Payment{{Amount: dec("10.00")}}, decimal.Zero, decimal.Zero)
	assert.True(t, totals.Covered())

	totals = ComputeTotals(nil, cart, []Payment{{Amount: dec("9.99")}}, decimal.Zero, decimal.Zero)
	assert.False(t, totals.Covered())
}
