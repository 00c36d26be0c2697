package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"kamakpos/m/domain"
	"kamakpos/m/internal/pos"
)

func (h *Handler) view(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, terminalFrom(r).View())
}

func (h *Handler) reload(w http.ResponseWriter, r *http.Request) {
	t := terminalFrom(r)
	if err := t.ReloadView(r.Context()); err != nil {
		respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, t.View())
}

// Products

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	size, _ := strconv.Atoi(q.Get("pageSize"))
	respondJSON(w, http.StatusOK, terminalFrom(r).Products(pos.ProductFilter{
		Search:   q.Get("search"),
		Category: q.Get("category"),
		Page:     page,
		PageSize: size,
	}))
}

func (h *Handler) refreshProducts(w http.ResponseWriter, r *http.Request) {
	t := terminalFrom(r)
	if err := t.RefreshProducts(r.Context()); err != nil {
		respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, t.Products(pos.ProductFilter{}))
}

// Orders

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := terminalFrom(r).LoadOrders(r.Context())
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

func (h *Handler) newOrder(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusCreated, terminalFrom(r).NewOrder(r.Context()))
}

func (h *Handler) selectOrder(w http.ResponseWriter, r *http.Request) {
	t := terminalFrom(r)
	if err := t.SelectOrder(r.Context(), domain.ID(chi.URLParam(r, "id"))); err != nil {
		respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, t.View())
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	t := terminalFrom(r)
	if err := t.DeleteOrder(r.Context(), domain.ID(chi.URLParam(r, "id"))); err != nil {
		respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, t.View())
}

func (h *Handler) saveOrder(w http.ResponseWriter, r *http.Request) {
	res, err := terminalFrom(r).Save(r.Context())
	if err != nil {
		respondErr(w, r, err)
		return
	}
	status := http.StatusOK
	if res.Created {
		status = http.StatusCreated
	}
	respondJSON(w, status, res)
}

// Cart

type addProductRequest struct {
	ProductID domain.ID `json:"productId"`
}

func (h *Handler) addProduct(w http.ResponseWriter, r *http.Request) {
	var req addProductRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.ProductID.IsZero() {
		respondError(w, http.StatusBadRequest, "productId is required")
		return
	}
	line, err := terminalFrom(r).AddProduct(r.Context(), req.ProductID)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, line)
}

type editLineRequest struct {
	Quantity *int             `json:"quantity"`
	Price    *decimal.Decimal `json:"price"`
	Discount *decimal.Decimal `json:"discount"`
}

func (h *Handler) editLine(w http.ResponseWriter, r *http.Request) {
	var req editLineRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	line, err := terminalFrom(r).EditLine(r.Context(), domain.ID(chi.URLParam(r, "productID")), pos.LineEdit{
		Quantity: req.Quantity,
		Price:    req.Price,
		Discount: req.Discount,
	})
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, line)
}

func (h *Handler) removeProduct(w http.ResponseWriter, r *http.Request) {
	t := terminalFrom(r)
	if err := t.RemoveProduct(r.Context(), domain.ID(chi.URLParam(r, "productID"))); err != nil {
		respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, t.View())
}

func (h *Handler) confirm(w http.ResponseWriter, r *http.Request) {
	totals, err := terminalFrom(r).Confirm(r.Context())
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, totals)
}

func (h *Handler) totals(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, terminalFrom(r).Totals())
}

// Payments

type paymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Method pos.Method      `json:"method"`
}

func (h *Handler) addPayment(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	p, err := terminalFrom(r).AddPayment(r.Context(), req.Amount, req.Method)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, p)
}

// Customers

func (h *Handler) listCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := terminalFrom(r).Customers(r.Context())
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, customers)
}

func (h *Handler) listAgents(w http.ResponseWriter, r *http.Request) {
	agents, err := terminalFrom(r).Agents(r.Context())
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, agents)
}

type selectCustomerRequest struct {
	PartnerID domain.ID `json:"partnerId"`
}

type customerResponse struct {
	Customer  pos.CustomerInfo        `json:"customer"`
	Addresses []domain.PartnerAddress `json:"addresses"`
}

func (h *Handler) selectCustomer(w http.ResponseWriter, r *http.Request) {
	var req selectCustomerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	info, addresses, err := terminalFrom(r).SelectCustomer(r.Context(), req.PartnerID)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, customerResponse{Customer: info, Addresses: addresses})
}

type customerRefsRequest struct {
	AgentID           domain.ID `json:"agentId"`
	BillingAddressID  domain.ID `json:"billingAddressId"`
	ShippingAddressID domain.ID `json:"shippingAddressId"`
}

func (h *Handler) setCustomerRefs(w http.ResponseWriter, r *http.Request) {
	var req customerRefsRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, terminalFrom(r).SetCustomerRefs(req.AgentID, req.BillingAddressID, req.ShippingAddressID))
}

func (h *Handler) saveCustomerInfo(w http.ResponseWriter, r *http.Request) {
	msg, err := terminalFrom(r).SaveCustomerInfo(r.Context())
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondMessage(w, http.StatusOK, msg)
}
