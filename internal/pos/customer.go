package pos

import (
	"context"

	"github.com/shopspring/decimal"

	"kamakpos/m/domain"
	"kamakpos/m/pkg/logx"
)

// CustomerInfo is the customer panel of the active order.
type CustomerInfo struct {
	PartnerID          domain.ID       `json:"partnerId"`
	Name               string          `json:"customerName"`
	Telephone          string          `json:"telephone"`
	LoyaltyBarcode     string          `json:"loyaltyBarcode"`
	DiscountPercentage decimal.Decimal `json:"discountPercentage"`
	AgentID            domain.ID       `json:"agentId"`
	BillingAddressID   domain.ID       `json:"billingAddressId"`
	ShippingAddressID  domain.ID       `json:"shippingAddressId"`
}

// Customers lists the ERP's customers, loading them once per session.
func (t *Terminal) Customers(ctx context.Context) ([]domain.Partner, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.loadCustomers(ctx); err != nil {
		return nil, err
	}
	return append([]domain.Partner(nil), t.customers...), nil
}

func (t *Terminal) loadCustomers(ctx context.Context) error {
	if t.customers != nil {
		return nil
	}
	customers, err := t.erp.ListCustomers(ctx)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	t.customers = customers
	return nil
}

// Agents lists the ERP's sales agents, loading them once per session.
func (t *Terminal) Agents(ctx context.Context) ([]domain.Partner, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.agents == nil {
		agents, err := t.erp.ListAgents(ctx)
		if err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		t.agents = agents
	}
	return append([]domain.Partner(nil), t.agents...), nil
}

// SelectCustomer fills the customer panel from a partner and loads its
// addresses. An empty id clears the panel. Address lookup failures leave
// the address list empty.
func (t *Terminal) SelectCustomer(ctx context.Context, partnerID domain.ID) (CustomerInfo, []domain.PartnerAddress, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if partnerID.IsZero() {
		t.customer.PartnerID = ""
		t.customer.Name = ""
		t.customer.Telephone = ""
		t.customer.LoyaltyBarcode = ""
		t.customer.DiscountPercentage = decimal.Zero
		t.customer.BillingAddressID = ""
		t.customer.ShippingAddressID = ""
		t.addresses = []domain.PartnerAddress{}
		t.publish(ctx)
		return t.customer, t.addresses, nil
	}

	if err := t.loadCustomers(ctx); err != nil {
		return CustomerInfo{}, nil, err
	}
	var partner *domain.Partner
	for i := range t.customers {
		if t.customers[i].ID == partnerID {
			partner = &t.customers[i]
			break
		}
	}
	if partner == nil {
		return CustomerInfo{}, nil, ErrUnknownCustomer
	}

	addresses, err := t.erp.ListPartnerAddresses(ctx, partnerID)
	if cerr := ctx.Err(); cerr != nil {
		return CustomerInfo{}, nil, cerr
	}
	if err != nil {
		logx.Warn().Err(err).Str("partnerId", partnerID.String()).Msg("unable to load partner addresses")
		addresses = []domain.PartnerAddress{}
	}

	t.customer.PartnerID = partner.ID
	t.customer.Name = partner.FullName
	t.customer.Telephone = partner.PartnerTelephone
	t.customer.LoyaltyBarcode = partner.BarCode
	t.customer.DiscountPercentage = fromFloat(partner.Discount)
	t.customer.BillingAddressID = ""
	t.customer.ShippingAddressID = ""
	t.addresses = addresses
	t.publish(ctx)
	return t.customer, append([]domain.PartnerAddress(nil), addresses...), nil
}

// SetCustomerRefs records the agent and the billing and shipping addresses.
func (t *Terminal) SetCustomerRefs(agentID, billingID, shippingID domain.ID) CustomerInfo {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.customer.AgentID = agentID
	t.customer.BillingAddressID = billingID
	t.customer.ShippingAddressID = shippingID
	return t.customer
}

// SaveCustomerInfo attaches the customer panel to the selected saved order.
func (t *Terminal) SaveCustomerInfo(ctx context.Context) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.selected.IsNewOrder() || t.selectedPending() {
		return "", ErrNoOrderSelected
	}
	c := t.customer
	if c.PartnerID.IsZero() || c.AgentID.IsZero() || c.BillingAddressID.IsZero() || c.ShippingAddressID.IsZero() {
		return "", ErrMissingCustomerInfo
	}
	update := domain.SalesOrderUpdate{
		Partner:        domain.Ref{ID: c.PartnerID},
		Agent:          domain.Ref{ID: c.AgentID},
		BillingAddress: domain.Ref{ID: c.BillingAddressID},
		ShipToAddress:  domain.Ref{ID: c.ShippingAddressID},
	}
	if err := t.erp.UpdateSalesOrder(ctx, t.selected, update); err != nil {
		logx.Error().Err(err).Str("orderId", t.selected.String()).Msg("unable to save customer info")
		return "", err
	}
	return "Customer info saved successfully!", nil
}
