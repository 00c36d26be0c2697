package api

import (
	"net/http"

	"kamakpos/m/internal/support"
)

// The screens are served as JSON documents; rendering is the client's job.

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"page": "login"})
}

func (h *Handler) registerPage(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"page": "register"})
}

func (h *Handler) homePage(w http.ResponseWriter, r *http.Request) {
	s := terminalFrom(r).Session()
	respondJSON(w, http.StatusOK, map[string]any{
		"page":      "home",
		"username":  s.Username,
		"companyId": s.CompanyID,
		"company":   h.opts.Company.Name,
	})
}

func (h *Handler) posPage(w http.ResponseWriter, r *http.Request) {
	t := terminalFrom(r)
	if _, err := t.LoadOrders(r.Context()); err != nil {
		respondErr(w, r, err)
		return
	}
	if err := t.RefreshProducts(r.Context()); err != nil {
		respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"page": "pos", "view": t.View()})
}

func (h *Handler) supportPage(w http.ResponseWriter, r *http.Request) {
	tickets, err := h.tickets.Search(r.Context(), support.SearchParams{})
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"page": "customer_support", "tickets": tickets})
}
