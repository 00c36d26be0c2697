package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/shopspring/decimal"

	"kamakpos/m/domain"
	"kamakpos/m/internal/config"
	"kamakpos/m/internal/core/errx"
	"kamakpos/m/internal/devicestate"
	"kamakpos/m/internal/pos"
	"kamakpos/m/internal/support"
	"kamakpos/m/pkg/logx"
)

type ctxKey string

const (
	ctxSessionID ctxKey = "sessionID"
	ctxTerminal  ctxKey = "terminal"
)

// ERP is the part of the ERP API the handlers need: login plus everything a
// terminal calls.
type ERP interface {
	pos.ERP
	Login(ctx context.Context, username, password string) (*domain.LoginResponse, error)
}

// PDFPrinter turns rendered receipt HTML into a PDF.
type PDFPrinter interface {
	PDF(ctx context.Context, html string) ([]byte, error)
}

type Options struct {
	Secret     string
	SessionTTL time.Duration
	TaxRate    decimal.Decimal
	Company    config.Company
	// SecureCookie marks the session cookie Secure; set outside development.
	SecureCookie bool
	Now          func() time.Time
}

// Handler bundles dependencies for HTTP handlers.
type Handler struct {
	erp       ERP
	store     devicestate.Store
	terminals *pos.Registry
	tickets   *support.Repository
	printer   PDFPrinter
	opts      Options
}

// New constructs a Handler.
func New(erp ERP, store devicestate.Store, tickets *support.Repository, printer PDFPrinter, opts Options) *Handler {
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = 12 * time.Hour
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Handler{
		erp:       erp,
		store:     store,
		terminals: pos.NewRegistry(),
		tickets:   tickets,
		printer:   printer,
		opts:      opts,
	}
}

// Router wires up the HTTP API.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", h.health)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.login)
		r.Post("/logout", h.logout)
	})

	// Screens. Protected ones bounce to /login; login and register bounce
	// to / once a session exists.
	r.Group(func(pages chi.Router) {
		pages.Use(h.redirectAuthenticated)
		pages.Get("/login", h.loginPage)
		pages.Get("/register", h.registerPage)
	})
	r.Group(func(pages chi.Router) {
		pages.Use(h.requirePage)
		pages.Get("/", h.homePage)
		pages.Get("/pos", h.posPage)
		pages.Get("/customer_support", h.supportPage)
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(h.requireSession)

		r.Get("/view", h.view)
		r.Post("/reload", h.reload)

		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.listProducts)
			r.Post("/refresh", h.refreshProducts)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", h.listOrders)
			r.Post("/", h.newOrder)
			r.Post("/{id}/select", h.selectOrder)
			r.Delete("/{id}", h.deleteOrder)
			r.Post("/save", h.saveOrder)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Post("/items", h.addProduct)
			r.Patch("/items/{productID}", h.editLine)
			r.Delete("/items/{productID}", h.removeProduct)
			r.Post("/confirm", h.confirm)
			r.Get("/totals", h.totals)
		})

		r.Post("/payments", h.addPayment)

		r.Route("/customers", func(r chi.Router) {
			r.Get("/", h.listCustomers)
			r.Get("/agents", h.listAgents)
			r.Post("/select", h.selectCustomer)
			r.Put("/refs", h.setCustomerRefs)
			r.Post("/save", h.saveCustomerInfo)
		})

		r.Route("/receipt", func(r chi.Router) {
			r.Get("/", h.receiptJSON)
			r.Get("/html", h.receiptHTML)
			r.Get("/pdf", h.receiptPDF)
		})

		r.Route("/support/tickets", func(r chi.Router) {
			r.Get("/", h.searchTickets)
			r.Post("/", h.createTicket)
			r.Get("/{id}", h.getTicket)
			r.Put("/{id}", h.updateTicket)
		})
	})

	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func terminalFrom(r *http.Request) *pos.Terminal {
	return r.Context().Value(ctxTerminal).(*pos.Terminal)
}

// Helpers

func decodeJSON(r *http.Request, dest interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dest)
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	_ = encoder.Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondErr maps err to its status and user-facing message. Server side
// failures are logged with the full error.
func respondErr(w http.ResponseWriter, r *http.Request, err error) {
	status := errx.Status(err)
	if status >= http.StatusInternalServerError {
		logx.Error().Err(err).Str("path", r.URL.Path).Int("status", status).Msg("request failed")
	}
	respondError(w, status, errx.Message(err))
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}
