package domain

// Partner is a customer or sales agent maintained by the ERP.
type Partner struct {
	ID               ID      `json:"id"`
	FullName         string  `json:"fullName"`
	PartnerTelephone string  `json:"partnerTelephone"`
	BarCode          string  `json:"barCode"`
	Discount         float64 `json:"discount"`
}

type PartnerAddress struct {
	ID       ID     `json:"id"`
	Address1 string `json:"address1"`
}

// Ref is a bare reference by id.
type Ref struct {
	ID ID `json:"id"`
}

// SalesOrderUpdate attaches customer, agent and addresses to a saved order.
type SalesOrderUpdate struct {
	Partner        Ref `json:"partner"`
	Agent          Ref `json:"agent"`
	BillingAddress Ref `json:"billingAddress"`
	ShipToAddress  Ref `json:"shipToAddress"`
}
