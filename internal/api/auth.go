package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"kamakpos/m/domain"
	"kamakpos/m/internal/core/errx"
	"kamakpos/m/internal/devicestate"
	"kamakpos/m/internal/pos"
	"kamakpos/m/pkg/logx"
)

// SessionCookie carries the signed session token.
const SessionCookie = "userAuth"

var errSessionExpired = errx.Unauthorized("Your session has expired. Please log in again.")

// Authentication helpers

type authClaims struct {
	Username  string    `json:"username"`
	UserID    domain.ID `json:"user_id"`
	CompanyID domain.ID `json:"company_id"`
	jwt.RegisteredClaims
}

func (h *Handler) generateToken(sessionID string, s devicestate.Session) (string, error) {
	now := h.opts.Now()
	claims := authClaims{
		Username:  s.Username,
		UserID:    s.UserID,
		CompanyID: s.CompanyID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			ExpiresAt: jwt.NewNumericDate(now.Add(h.opts.SessionTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.opts.Secret))
}

// sessionClaims returns the claims of a valid session cookie, or nil.
func (h *Handler) sessionClaims(r *http.Request) *authClaims {
	cookie, err := r.Cookie(SessionCookie)
	if err != nil || cookie.Value == "" {
		return nil
	}
	token, err := jwt.ParseWithClaims(cookie.Value, &authClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(h.opts.Secret), nil
	}, jwt.WithTimeFunc(h.opts.Now))
	if err != nil || !token.Valid {
		return nil
	}
	claims, ok := token.Claims.(*authClaims)
	if !ok || claims.ID == "" {
		return nil
	}
	return claims
}

// terminal returns the terminal of a session. After a restart the session
// is rebuilt from device state, including the selected order; concurrent
// rebuilds of one session settle on the first one registered.
func (h *Handler) terminal(ctx context.Context, sessionID string) (*pos.Terminal, error) {
	if t, ok := h.terminals.Get(sessionID); ok {
		return t, nil
	}
	device := devicestate.NewDevice(h.store, sessionID)
	session, err := device.Session(ctx)
	if err != nil {
		return nil, err
	}
	if session.UserID.IsZero() || session.CompanyID.IsZero() {
		return nil, errSessionExpired
	}
	t := h.newTerminal(device, session)
	if selected, err := device.SelectedOrder(ctx); err == nil && !selected.IsZero() {
		if _, err := t.LoadOrders(ctx); err != nil {
			logx.Warn().Err(err).Msg("unable to restore orders")
		} else if err := t.SelectOrder(ctx, selected); err != nil {
			logx.Warn().Err(err).Str("orderId", selected.String()).Msg("unable to restore selected order")
		}
	}
	t, _ = h.terminals.LoadOrStore(sessionID, t)
	return t, nil
}

func (h *Handler) newTerminal(device *devicestate.Device, s devicestate.Session) *pos.Terminal {
	return pos.NewTerminal(h.erp, device, s, pos.Options{TaxRate: h.opts.TaxRate, Now: h.opts.Now})
}

func (h *Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := h.sessionClaims(r)
		if claims == nil {
			respondError(w, http.StatusUnauthorized, "missing or invalid session")
			return
		}
		t, err := h.terminal(r.Context(), claims.ID)
		if err != nil {
			respondErr(w, r, err)
			return
		}
		ctx := context.WithValue(r.Context(), ctxSessionID, claims.ID)
		ctx = context.WithValue(ctx, ctxTerminal, t)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) requirePage(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := h.sessionClaims(r)
		if claims == nil {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		t, err := h.terminal(r.Context(), claims.ID)
		if err != nil {
			h.clearCookie(w)
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		ctx := context.WithValue(r.Context(), ctxSessionID, claims.ID)
		ctx = context.WithValue(ctx, ctxTerminal, t)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) redirectAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.sessionClaims(r) != nil {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) setCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  h.opts.Now().Add(h.opts.SessionTTL),
		HttpOnly: true,
		Secure:   h.opts.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.opts.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

// Auth Handlers

type loginResponse struct {
	User      domain.User `json:"user"`
	CompanyID domain.ID   `json:"companyId"`
	Redirect  string      `json:"redirect"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	res, err := h.erp.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		respondErr(w, r, err)
		return
	}

	userID := res.UserID
	if userID.IsZero() {
		userID = res.User.ID
	}
	session := devicestate.Session{
		AuthToken: res.Token,
		Username:  req.Username,
		CompanyID: res.CompanyID,
		UserID:    userID,
	}
	sessionID := uuid.NewString()
	device := devicestate.NewDevice(h.store, sessionID)
	if err := device.SaveSession(r.Context(), session); err != nil {
		respondErr(w, r, err)
		return
	}

	token, err := h.generateToken(sessionID, session)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to generate token")
		return
	}
	h.terminals.Put(sessionID, h.newTerminal(device, session))
	h.setCookie(w, token)

	logx.Info().Str("username", req.Username).Str("companyId", res.CompanyID.String()).Msg("cashier logged in")
	user := res.User
	user.ID = userID
	respondJSON(w, http.StatusOK, loginResponse{User: user, CompanyID: res.CompanyID, Redirect: "/"})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if claims := h.sessionClaims(r); claims != nil {
		h.terminals.Remove(claims.ID)
		if err := devicestate.NewDevice(h.store, claims.ID).Forget(r.Context()); err != nil {
			logx.Warn().Err(err).Msg("unable to clear device state on logout")
		}
	}
	h.clearCookie(w)
	respondJSON(w, http.StatusOK, map[string]string{"status": "logged out", "redirect": "/login"})
}
