package erp

import (
	"context"
	"net/http"

	"kamakpos/m/domain"
	"kamakpos/m/pkg/logx"
)

// Login authenticates a cashier against the ERP.
func (c *Client) Login(ctx context.Context, username, password string) (*domain.LoginResponse, error) {
	const op = "login"
	r, err := c.send(ctx, op, http.MethodPost, []string{"users", "login"}, domain.LoginRequest{Username: username, Password: password})
	if err != nil {
		return nil, err
	}
	if !r.ok() {
		msg := MsgUnexpectedLogin
		switch r.status {
		case http.StatusUnauthorized:
			msg = MsgInvalidCredentials
		case http.StatusInternalServerError:
			msg = MsgServerError
		}
		return nil, &APIError{Op: op, Status: r.status, Message: msg}
	}
	var out domain.LoginResponse
	if err := decode(op, r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListInventory returns the sellable products of a company. A response
// without the posInventories array degrades to an empty catalog.
func (c *Client) ListInventory(ctx context.Context, companyID domain.ID, criteria string) ([]domain.Product, error) {
	const op = "list inventory"
	r, err := c.send(ctx, op, http.MethodGet, []string{"pos", "my_inventories", companyID.String(), criteria}, nil)
	if err != nil {
		return nil, err
	}
	if !r.ok() {
		return nil, &APIError{Op: op, Status: r.status, Message: "Failed to fetch inventories"}
	}
	var out domain.InventoryResponse
	if err := decode(op, r, &out); err != nil {
		return nil, err
	}
	if out.PosInventories == nil {
		logx.Warn().Str("op", op).Str("companyId", companyID.String()).Msg("response has no posInventories array")
		return []domain.Product{}, nil
	}
	return out.PosInventories, nil
}

// ListOrders returns the orders of a staff member.
func (c *Client) ListOrders(ctx context.Context, staffID domain.ID) (*domain.PosOrders, error) {
	const op = "list orders"
	r, err := c.send(ctx, op, http.MethodGet, []string{"pos", "my_orders", staffID.String()}, nil)
	if err != nil {
		return nil, err
	}
	if !r.ok() {
		return nil, &APIError{Op: op, Status: r.status, Message: "Failed to fetch orders"}
	}
	var out domain.PosOrders
	if err := decode(op, r, &out); err != nil {
		return nil, err
	}
	if out.PosOrders == nil {
		logx.Warn().Str("op", op).Str("staffId", staffID.String()).Msg("response has no posOrders array")
		return &domain.PosOrders{
			Status:        0,
			Message:       "No orders found",
			SalesPersonID: staffID,
			PosOrders:     []domain.PosOrder{},
		}, nil
	}
	return &out, nil
}

// OrderDetails fetches a saved order. Saved lines count as confirmed unless
// the ERP says otherwise.
func (c *Client) OrderDetails(ctx context.Context, orderID domain.ID) (*domain.OrderDetailsResponse, error) {
	const op = "order details"
	r, err := c.send(ctx, op, http.MethodGet, []string{"pos", "order_details", orderID.String()}, nil)
	if err != nil {
		return nil, err
	}
	if !r.ok() {
		return nil, &APIError{Op: op, Status: r.status, Message: "Failed to fetch order details"}
	}
	var out domain.OrderDetailsResponse
	if err := decode(op, r, &out); err != nil {
		return nil, err
	}
	if out.PosOrderHeadDetails == nil {
		logx.Warn().Str("op", op).Str("orderId", orderID.String()).Msg("response has no posOrderHeadDetails array")
		out.PosOrderHeadDetails = []domain.Product{}
	}
	for i := range out.PosOrderHeadDetails {
		if out.PosOrderHeadDetails[i].Confirmed == nil {
			confirmed := true
			out.PosOrderHeadDetails[i].Confirmed = &confirmed
		}
	}
	return &out, nil
}

// SaveOrder creates (POST /pos/save) or updates (PATCH /pos/save/{id}) an
// order. A create always sends the "000" placeholder id.
func (c *Client) SaveOrder(ctx context.Context, order domain.OrderData, isUpdate bool) (*domain.SaveOrderResponse, error) {
	const op = "save order"
	method := http.MethodPost
	segments := []string{"pos", "save"}
	if isUpdate {
		method = http.MethodPatch
		segments = append(segments, order.OrderID.String())
	} else {
		order.OrderID = domain.NewOrderID
	}

	r, err := c.send(ctx, op, method, segments, order)
	if err != nil {
		return nil, err
	}
	if !r.ok() {
		return nil, &APIError{Op: op, Status: r.status, Message: serverMessage(r.body, "Failed to save order")}
	}
	var out domain.SaveOrderResponse
	if err := decode(op, r, &out); err != nil {
		return nil, err
	}
	if out.OrderID.IsNewOrder() {
		return nil, &APIError{Op: op, Status: r.status, Message: MsgInvalidOrderID}
	}
	return &out, nil
}

// DeleteOrderDetail removes one saved line from an order.
func (c *Client) DeleteOrderDetail(ctx context.Context, detailID domain.ID) error {
	const op = "delete order detail"
	r, err := c.send(ctx, op, http.MethodDelete, []string{"pos", "delete_order_detail", detailID.String()}, nil)
	if err != nil {
		return err
	}
	if !r.ok() {
		return &APIError{Op: op, Status: r.status, Message: jsonMessage(r.body, "Failed to delete order detail")}
	}
	return nil
}

// DeleteOrder removes a saved order.
func (c *Client) DeleteOrder(ctx context.Context, orderID domain.ID) error {
	const op = "delete order"
	r, err := c.send(ctx, op, http.MethodDelete, []string{"pos", "delete_order", orderID.String()}, nil)
	if err != nil {
		return err
	}
	if !r.ok() {
		return &APIError{Op: op, Status: r.status, Message: jsonMessage(r.body, "Failed to delete order")}
	}
	return nil
}
