package pos

import (
	"time"

	"github.com/shopspring/decimal"

	"kamakpos/m/domain"
)

type Method string

const (
	MethodCash   Method = "cash"
	MethodCard   Method = "card"
	MethodMobile Method = "mobile"
)

// Payment is one completed tender.
type Payment struct {
	Method       Method          `json:"method"`
	User         string          `json:"user"`
	Date         time.Time       `json:"paymentDate"`
	Amount       decimal.Decimal `json:"amount"`
	Change       decimal.Decimal `json:"cashChange"`
	TotalBill    decimal.Decimal `json:"totalBill"`
	Balance      decimal.Decimal `json:"balance"`
	SalesOrderID domain.ID       `json:"salesOrderId"`
}

func sumPayments(payments []Payment) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range payments {
		sum = sum.Add(p.Amount)
	}
	return sum
}

// wirePayment drops the card split, which the save endpoint does not take.
func wirePayment(p Payment) domain.SavedPayment {
	out := domain.SavedPayment{
		User:         p.User,
		PaymentDate:  p.Date.UTC().Format(time.RFC3339),
		Amount:       toFloat(p.Amount),
		CashChange:   toFloat(p.Change),
		TotalBill:    toFloat(p.TotalBill),
		TotalPayment: toFloat(p.Amount),
		Balance:      toFloat(p.Balance),
		SalesOrderID: p.SalesOrderID,
	}
	switch p.Method {
	case MethodCash:
		out.CashPayment = toFloat(p.Amount)
	case MethodMobile:
		out.MobileMoneyPayment = toFloat(p.Amount)
	}
	return out
}
