package domain

// PosOrder is one entry of a cashier's order list.
type PosOrder struct {
	OrderID       ID     `json:"orderId"`
	OrderNumber   string `json:"orderNumber"`
	CreatedOn     string `json:"created_on"`
	CreatorUserID ID     `json:"creator_userID"`
}

type PosOrders struct {
	Status        int        `json:"status"`
	Message       string     `json:"message"`
	SalesPersonID ID         `json:"salesPerson_userID"`
	GrandTotal    float64    `json:"grandTotal"`
	CompanyName   string     `json:"companyName"`
	PosOrders     []PosOrder `json:"posOrders"`
}

type OrderDetailsResponse struct {
	Status              int       `json:"status"`
	Message             string    `json:"message"`
	OrderID             ID        `json:"orderId"`
	OrderNumber         string    `json:"orderNumber"`
	OrderUser           string    `json:"orderUser"`
	CustomerName        *string   `json:"customerName"`
	CustomerNumber      *string   `json:"customerNumber"`
	CustomerTelephone   *string   `json:"customerTelephone"`
	OrderDate           string    `json:"orderDate"`
	PosOrderHeadDetails []Product `json:"posOrderHeadDetails"`
}

// OrderData is the payload of a create or update save.
type OrderData struct {
	AffectStock           string         `json:"affectStock"`
	OrderID               ID             `json:"orderId"`
	StaffID               ID             `json:"staffid"`
	CompanyID             ID             `json:"companyid"`
	CustomerName          string         `json:"customerName"`
	CustomerNumber        string         `json:"customerNumber"`
	CustomerTelephone     string         `json:"customerTelephone"`
	SubTotal              float64        `json:"subTotal"`
	Discount              float64        `json:"discount"`
	Tax                   float64        `json:"tax"`
	GrandTotal            float64        `json:"grandTotal"`
	Payments              float64        `json:"payments"`
	CustomerExtraDiscount float64        `json:"customerExtraDiscount"`
	CustomerDiscountRate  float64        `json:"customerDiscountRate"`
	InProgress            bool           `json:"inprogress"`
	PaymentList           []SavedPayment `json:"paymentList"`
	Products              []Product      `json:"products"`
}

// SavedPayment is one tender as submitted with a save. The card split is
// not part of the payload.
type SavedPayment struct {
	PaymentID          int64   `json:"paymentId"`
	User               string  `json:"user,omitempty"`
	PaymentDate        string  `json:"paymentDate,omitempty"`
	Amount             float64 `json:"amount"`
	CashPayment        float64 `json:"cashPayment"`
	MobileMoneyPayment float64 `json:"mobileMoneyPayment"`
	CashChange         float64 `json:"cashChange"`
	TotalBill          float64 `json:"totalBill"`
	TotalPayment       float64 `json:"totalPayment"`
	Balance            float64 `json:"balance"`
	SalesOrderID       ID      `json:"salesOrderId,omitempty"`
}

type SaveOrderResponse struct {
	Success any    `json:"success,omitempty"`
	Message string `json:"message,omitempty"`
	OrderID ID     `json:"orderId"`
	Error   any    `json:"error,omitempty"`
}
