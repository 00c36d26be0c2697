package erp

import (
	"context"
	"net/http"

	"kamakpos/m/domain"
)

func (c *Client) ListCustomers(ctx context.Context) ([]domain.Partner, error) {
	return c.listPartners(ctx, "list customers", "customers", "Failed to fetch partners")
}

func (c *Client) ListAgents(ctx context.Context) ([]domain.Partner, error) {
	return c.listPartners(ctx, "list agents", "agents", "Failed to fetch agents")
}

func (c *Client) listPartners(ctx context.Context, op, kind, failure string) ([]domain.Partner, error) {
	r, err := c.send(ctx, op, http.MethodGet, []string{"api", "partners", kind}, nil)
	if err != nil {
		return nil, err
	}
	if !r.ok() {
		return nil, &APIError{Op: op, Status: r.status, Message: failure}
	}
	var out []domain.Partner
	if err := decode(op, r, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.Partner{}
	}
	return out, nil
}

func (c *Client) ListPartnerAddresses(ctx context.Context, partnerID domain.ID) ([]domain.PartnerAddress, error) {
	const op = "list partner addresses"
	r, err := c.send(ctx, op, http.MethodGet, []string{"api", "partner-addresses", "partner", partnerID.String()}, nil)
	if err != nil {
		return nil, err
	}
	if !r.ok() {
		return nil, &APIError{Op: op, Status: r.status, Message: "Failed to fetch addresses"}
	}
	var out []domain.PartnerAddress
	if err := decode(op, r, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.PartnerAddress{}
	}
	return out, nil
}

// UpdateSalesOrder attaches customer, agent and addresses to a saved order.
func (c *Client) UpdateSalesOrder(ctx context.Context, orderID domain.ID, update domain.SalesOrderUpdate) error {
	const op = "update sales order"
	r, err := c.send(ctx, op, http.MethodPatch, []string{"pos", "update_sales_order", orderID.String()}, update)
	if err != nil {
		return err
	}
	if !r.ok() {
		return &APIError{Op: op, Status: r.status, Message: serverMessage(r.body, "Failed to save customer info")}
	}
	return nil
}
