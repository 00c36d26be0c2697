package pos

import (
	"strconv"

	"github.com/shopspring/decimal"

	"kamakpos/m/domain"
)

// LineItem is one product in the cart or in a saved order.
//
// UnitPrice is the single current effective unit price before the line
// discount. Every derived amount is computed from it.
type LineItem struct {
	ProductID domain.ID       `json:"productId"`
	Name      string          `json:"productName"`
	BarCode   string          `json:"barCode"`
	Category  string          `json:"category"`
	ImagePath string          `json:"defaultImagePath,omitempty"`
	DetailID  domain.ID       `json:"orderDetailID,omitempty"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Discount  decimal.Decimal `json:"discount"`
	Quantity  int             `json:"quantity"`
	Tax       decimal.Decimal `json:"tax"`
	// StoredTotal is the total the ERP reported for a saved line. Nil means
	// the ERP never reported one and the total is computed.
	StoredTotal *decimal.Decimal `json:"storedTotal,omitempty"`
	Confirmed   bool             `json:"confirmed"`
	// Saved lines came from the ERP's order details.
	Saved bool `json:"saved"`
}

// NetUnitPrice is the unit price after the line discount.
func (l LineItem) NetUnitPrice() decimal.Decimal {
	return l.UnitPrice.Sub(percentOf(l.UnitPrice, l.Discount))
}

// Total is the line total after the line discount.
func (l LineItem) Total() decimal.Decimal {
	if l.StoredTotal != nil {
		return *l.StoredTotal
	}
	return l.NetUnitPrice().Mul(decimal.NewFromInt(int64(l.Quantity)))
}

func newCartLine(p domain.Product) LineItem {
	return LineItem{
		ProductID: p.ProductID,
		Name:      p.ProductName,
		BarCode:   p.BarCode,
		Category:  p.Category,
		ImagePath: p.DefaultImagePath,
		UnitPrice: fromFloat(p.Price()),
		Discount:  fromFloat(p.Discount),
		Tax:       fromFloat(p.Tax),
		Quantity:  1,
	}
}

// savedLine converts an order detail from the ERP. Details count as
// confirmed unless the ERP explicitly says otherwise.
func savedLine(p domain.Product) LineItem {
	l := newCartLine(p)
	l.Quantity = p.Quantity
	l.DetailID = p.OrderDetailID
	l.Saved = true
	l.Confirmed = p.Confirmed == nil || *p.Confirmed
	if p.Total != nil {
		t := fromFloat(*p.Total)
		l.StoredTotal = &t
	}
	return l
}

// wireLine is the product shape sent with a save. index is the position in
// the cart and yields the synthetic detail id.
func wireLine(l LineItem, index int) domain.Product {
	confirmed := l.Confirmed
	return domain.Product{
		ProductID:     l.ProductID,
		ProductName:   l.Name,
		Category:      l.Category,
		Discount:      toFloat(l.Discount),
		ProductPrice:  toFloat(l.UnitPrice),
		UnitPrice:     toFloat(l.UnitPrice),
		Quantity:      l.Quantity,
		Tax:           toFloat(l.Tax),
		Total:         floatPtr(toFloat(l.Total())),
		OrderDetailID: domain.ID("id" + strconv.Itoa(index+1)),
		StockAffected: true,
		Confirmed:     &confirmed,
	}
}

func floatPtr(f float64) *float64 {
	return &f
}
