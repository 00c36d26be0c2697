package receipt

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"kamakpos/m/internal/config"
	"kamakpos/m/internal/pos"
)

//go:embed templates/receipt.html
var templates embed.FS

var receiptTemplate = template.Must(template.ParseFS(templates, "templates/receipt.html"))

// Line is one printed product row.
type Line struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
	Discount  string `json:"discount"`
	Total     string `json:"total"`
}

// Receipt holds the formatted values of a printable receipt.
type Receipt struct {
	Company     config.Company `json:"company"`
	OrderID     string         `json:"orderId"`
	OrderNumber string         `json:"orderNumber"`
	OrderDate   string         `json:"orderDate"`
	Cashier     string         `json:"cashier"`
	Customer    string         `json:"customer"`
	Telephone   string         `json:"telephone"`
	Lines       []Line         `json:"lines"`
	SubTotal    string         `json:"subTotal"`
	Discount    string         `json:"discount"`
	Taxes       string         `json:"taxes"`
	GrandTotal  string         `json:"grandTotal"`
	Payments    string         `json:"payments"`
	Balance     string         `json:"balance"`
}

// Build formats a receipt snapshot. Every line must be confirmed.
func Build(snap pos.ReceiptSnapshot, company config.Company) (Receipt, error) {
	if len(snap.Lines) == 0 {
		return Receipt{}, pos.ErrEmptyOrder
	}

	lines := make([]Line, 0, len(snap.Lines))
	for _, l := range snap.Lines {
		if !l.Confirmed {
			return Receipt{}, pos.ErrNotAllConfirmed
		}
		lines = append(lines, Line{
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: FormatMoney(l.UnitPrice),
			Discount:  l.Discount.StringFixed(2) + "%",
			Total:     FormatMoney(l.Total()),
		})
	}

	customer := snap.Customer.Name
	if customer == "" {
		customer = snap.Header.CustomerName
	}
	telephone := snap.Customer.Telephone
	if telephone == "" {
		telephone = snap.Header.CustomerTelephone
	}
	number := snap.Header.OrderNumber
	if number == "" {
		number = snap.OrderID.String()
	}

	s := snap.Summary
	return Receipt{
		Company:     company,
		OrderID:     snap.OrderID.String(),
		OrderNumber: number,
		OrderDate:   snap.Header.OrderDate,
		Cashier:     snap.Cashier,
		Customer:    customer,
		Telephone:   telephone,
		Lines:       lines,
		SubTotal:    FormatMoney(s.SubTotal),
		Discount:    FormatMoney(s.Discount),
		Taxes:       FormatMoney(s.Taxes),
		GrandTotal:  FormatMoney(s.GrandTotal),
		Payments:    FormatMoney(s.Payments),
		Balance:     FormatMoney(s.Balance),
	}, nil
}

// Filename is the suggested download name of the printed receipt.
func (r Receipt) Filename() string {
	if r.OrderNumber == "" {
		return "receipt.pdf"
	}
	return fmt.Sprintf("receipt-%s.pdf", r.OrderNumber)
}

// RenderHTML renders the receipt page.
func RenderHTML(r Receipt) (string, error) {
	var buf bytes.Buffer
	if err := receiptTemplate.Execute(&buf, r); err != nil {
		return "", fmt.Errorf("failed to execute receipt template: %w", err)
	}
	return buf.String(), nil
}
