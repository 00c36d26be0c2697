package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"kamakpos/m/domain"
	"kamakpos/m/internal/support"
)

const dateLayout = "2006-01-02"

func (h *Handler) searchTickets(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := support.SearchParams{Customer: strings.TrimSpace(q.Get("customer"))}

	if from := strings.TrimSpace(q.Get("from")); from != "" {
		t, err := time.Parse(dateLayout, from)
		if err != nil {
			respondError(w, http.StatusBadRequest, "from must be in YYYY-MM-DD format")
			return
		}
		params.From = t
	}
	if to := strings.TrimSpace(q.Get("to")); to != "" {
		t, err := time.Parse(dateLayout, to)
		if err != nil {
			respondError(w, http.StatusBadRequest, "to must be in YYYY-MM-DD format")
			return
		}
		params.To = t
	}
	if !params.From.IsZero() && !params.To.IsZero() && params.To.Before(params.From) {
		respondError(w, http.StatusBadRequest, "to must not be before from")
		return
	}

	tickets, err := h.tickets.Search(r.Context(), params)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, tickets)
}

func (h *Handler) createTicket(w http.ResponseWriter, r *http.Request) {
	var req domain.SupportTicket
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.User) == "" {
		req.User = terminalFrom(r).Session().Username
	}
	ticket, err := h.tickets.Create(r.Context(), req)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, ticket)
}

func (h *Handler) getTicket(w http.ResponseWriter, r *http.Request) {
	ticket, err := h.tickets.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, ticket)
}

func (h *Handler) updateTicket(w http.ResponseWriter, r *http.Request) {
	var req domain.SupportTicket
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	req.ID = chi.URLParam(r, "id")
	req.LastModifiedBy = terminalFrom(r).Session().Username
	ticket, err := h.tickets.Update(r.Context(), req)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, ticket)
}
