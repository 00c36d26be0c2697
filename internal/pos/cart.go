package pos

import (
	"github.com/shopspring/decimal"

	"kamakpos/m/domain"
)

// Cart holds at most one line per product id, in insertion order.
type Cart struct {
	order []domain.ID
	lines map[domain.ID]*LineItem
}

func NewCart() *Cart {
	return &Cart{lines: make(map[domain.ID]*LineItem)}
}

// Add puts one unit of p in the cart. A product already in the cart has its
// quantity incremented instead of getting a second line.
func (c *Cart) Add(p domain.Product) (LineItem, error) {
	if l, ok := c.lines[p.ProductID]; ok {
		if l.Confirmed {
			return *l, ErrLineConfirmed
		}
		l.Quantity++
		return *l, nil
	}
	l := newCartLine(p)
	c.lines[p.ProductID] = &l
	c.order = append(c.order, p.ProductID)
	return l, nil
}

// Remove takes one unit out. A line with a single unit is deleted.
// The returned amount is what the cart total went down by.
func (c *Cart) Remove(id domain.ID) (decimal.Decimal, error) {
	l, err := c.editable(id)
	if err != nil {
		return decimal.Zero, err
	}
	removed := l.NetUnitPrice()
	if l.Quantity > 1 {
		l.Quantity--
		return removed, nil
	}
	c.drop(id)
	return removed, nil
}

func (c *Cart) SetQuantity(id domain.ID, qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	l, err := c.editable(id)
	if err != nil {
		return err
	}
	l.Quantity = qty
	return nil
}

func (c *Cart) SetPrice(id domain.ID, price decimal.Decimal) error {
	if price.IsNegative() {
		return ErrInvalidPrice
	}
	l, err := c.editable(id)
	if err != nil {
		return err
	}
	l.UnitPrice = price
	return nil
}

func (c *Cart) SetDiscount(id domain.ID, pct decimal.Decimal) error {
	if !validPercent(pct) {
		return ErrInvalidDiscount
	}
	l, err := c.editable(id)
	if err != nil {
		return err
	}
	l.Discount = pct
	return nil
}

func (c *Cart) Get(id domain.ID) (LineItem, bool) {
	l, ok := c.lines[id]
	if !ok {
		return LineItem{}, false
	}
	return *l, true
}

// Lines returns a copy of the lines in insertion order.
func (c *Cart) Lines() []LineItem {
	out := make([]LineItem, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.lines[id])
	}
	return out
}

func (c *Cart) Len() int {
	return len(c.order)
}

func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, id := range c.order {
		total = total.Add(c.lines[id].Total())
	}
	return total
}

func (c *Cart) ConfirmAll() {
	for _, l := range c.lines {
		l.Confirmed = true
	}
}

// AllConfirmed reports whether every line is confirmed. An empty cart
// trivially is.
func (c *Cart) AllConfirmed() bool {
	for _, l := range c.lines {
		if !l.Confirmed {
			return false
		}
	}
	return true
}

func (c *Cart) Clear() {
	c.order = nil
	c.lines = make(map[domain.ID]*LineItem)
}

func (c *Cart) editable(id domain.ID) (*LineItem, error) {
	l, ok := c.lines[id]
	if !ok {
		return nil, ErrLineNotFound
	}
	if l.Confirmed {
		return nil, ErrLineConfirmed
	}
	return l, nil
}

func (c *Cart) drop(id domain.ID) {
	delete(c.lines, id)
	for i, o := range c.order {
		if o == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}
