package pos

import (
	"context"

	"kamakpos/m/domain"
	"kamakpos/m/internal/devicestate"
)

// View is a snapshot of everything the POS screen renders.
type View struct {
	Orders       []OrderTag              `json:"orders"`
	Selected     domain.ID               `json:"selectedOrderId"`
	Header       OrderHeader             `json:"header"`
	Details      []LineItem              `json:"orderDetails"`
	Cart         []LineItem              `json:"cart"`
	Payments     []Payment               `json:"payments"`
	Totals       Totals                  `json:"totals"`
	Customer     CustomerInfo            `json:"customer"`
	Addresses    []domain.PartnerAddress `json:"addresses"`
	AllConfirmed bool                    `json:"allConfirmed"`
}

func (t *Terminal) View() View {
	t.mu.Lock()
	defer t.mu.Unlock()
	return View{
		Orders:       append([]OrderTag{}, t.orders...),
		Selected:     t.selected,
		Header:       t.header,
		Details:      append([]LineItem{}, t.details...),
		Cart:         t.cart.Lines(),
		Payments:     append([]Payment{}, t.payments...),
		Totals:       t.totals(),
		Customer:     t.customer,
		Addresses:    append([]domain.PartnerAddress{}, t.addresses...),
		AllConfirmed: t.allConfirmed(),
	}
}

func (t *Terminal) allConfirmed() bool {
	for _, l := range t.details {
		if !l.Confirmed {
			return false
		}
	}
	return t.cart.AllConfirmed()
}

// ReceiptSnapshot is what the receipt prints: the order lines plus the
// summary last published to device state.
type ReceiptSnapshot struct {
	OrderID  domain.ID           `json:"orderId"`
	Header   OrderHeader         `json:"header"`
	Customer CustomerInfo        `json:"customer"`
	Cashier  string              `json:"cashier"`
	Lines    []LineItem          `json:"lines"`
	Summary  devicestate.Summary `json:"summary"`
}

// Receipt requires every line of the order to be confirmed.
func (t *Terminal) Receipt(ctx context.Context) (ReceiptSnapshot, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	lines := append(append([]LineItem{}, t.details...), t.cart.Lines()...)
	if len(lines) == 0 {
		return ReceiptSnapshot{}, ErrEmptyOrder
	}
	if !t.allConfirmed() {
		return ReceiptSnapshot{}, ErrNotAllConfirmed
	}
	summary, err := t.device.Summary(ctx)
	if err != nil {
		return ReceiptSnapshot{}, err
	}
	return ReceiptSnapshot{
		OrderID:  t.selected,
		Header:   t.header,
		Customer: t.customer,
		Cashier:  t.session.Username,
		Lines:    lines,
		Summary:  summary,
	}, nil
}
