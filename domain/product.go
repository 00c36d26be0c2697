package domain

import "encoding/json"

// Product is a catalog or order line as the ERP exchanges it.
type Product struct {
	ProductID                 ID              `json:"productId"`
	ProductName               string          `json:"productName"`
	BarCode                   string          `json:"barCode,omitempty"`
	Category                  string          `json:"category,omitempty"`
	DefaultImagePath          string          `json:"defaultImagePath,omitempty"`
	SellingPriceActual        float64         `json:"sellingPriceActual,omitempty"`
	Discount                  float64         `json:"discount"`
	ApplyProductLevelDiscount json.RawMessage `json:"applyProductLevelDiscount,omitempty"`
	OrderDetailID             ID              `json:"orderDetailID,omitempty"`
	ProductPrice              float64         `json:"productPrice,omitempty"`
	UnitPrice                 float64         `json:"unitPrice,omitempty"`
	Tax                       float64         `json:"tax"`
	Quantity                  int             `json:"quantity,omitempty"`
	Total                     *float64        `json:"total,omitempty"`
	StockAffected             bool            `json:"stockAffected,omitempty"`
	Confirmed                 *bool           `json:"confirmed,omitempty"`
}

// Price returns the best known unit price of the product. Catalog rows carry
// sellingPriceActual, saved order lines carry productPrice or unitPrice.
func (p Product) Price() float64 {
	switch {
	case p.SellingPriceActual != 0:
		return p.SellingPriceActual
	case p.ProductPrice != 0:
		return p.ProductPrice
	default:
		return p.UnitPrice
	}
}

// InventoryResponse wraps the inventory listing.
type InventoryResponse struct {
	PosInventories []Product `json:"posInventories"`
}
