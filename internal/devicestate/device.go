package devicestate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"kamakpos/m/domain"
	"kamakpos/m/internal/core/errx"
)

const (
	KeyAuthToken     = "authToken"
	KeyUsername      = "username"
	KeyCompanyID     = "companyId"
	KeyUserID        = "userID"
	KeySelectedOrder = "selectedOrderId"
	KeyOrderSummary  = "orderSummary"
)

// Session holds the identifiers captured at login.
type Session struct {
	AuthToken string    `json:"authToken"`
	Username  string    `json:"username"`
	CompanyID domain.ID `json:"companyId"`
	UserID    domain.ID `json:"userID"`
}

// Summary is the last computed order summary. It is written by the POS
// terminal and only read back by the receipt view.
type Summary struct {
	OrderID    domain.ID       `json:"orderId"`
	SubTotal   decimal.Decimal `json:"total"`
	Discount   decimal.Decimal `json:"discount"`
	Taxes      decimal.Decimal `json:"taxes"`
	GrandTotal decimal.Decimal `json:"grandTotal"`
	Payments   decimal.Decimal `json:"payments"`
	Balance    decimal.Decimal `json:"balance"`
}

// Device is the typed view of one cashier's namespace.
type Device struct {
	store     Store
	namespace string
}

func NewDevice(store Store, namespace string) *Device {
	return &Device{store: store, namespace: namespace}
}

func (d *Device) SaveSession(ctx context.Context, s Session) error {
	values := map[string]string{
		KeyAuthToken: s.AuthToken,
		KeyUsername:  s.Username,
		KeyCompanyID: s.CompanyID.String(),
		KeyUserID:    s.UserID.String(),
	}
	for k, v := range values {
		if err := d.store.Set(ctx, d.namespace, k, v); err != nil {
			return fmt.Errorf("save %s: %w", k, err)
		}
	}
	return nil
}

// Session reads the stored session. Missing keys read as empty values.
func (d *Device) Session(ctx context.Context) (Session, error) {
	var s Session
	fields := []struct {
		key string
		set func(string)
	}{
		{KeyAuthToken, func(v string) { s.AuthToken = v }},
		{KeyUsername, func(v string) { s.Username = v }},
		{KeyCompanyID, func(v string) { s.CompanyID = domain.ID(v) }},
		{KeyUserID, func(v string) { s.UserID = domain.ID(v) }},
	}
	for _, f := range fields {
		v, err := d.get(ctx, f.key)
		if err != nil {
			return Session{}, err
		}
		f.set(v)
	}
	return s, nil
}

func (d *Device) SetSelectedOrder(ctx context.Context, id domain.ID) error {
	if id.IsZero() {
		return d.store.Delete(ctx, d.namespace, KeySelectedOrder)
	}
	return d.store.Set(ctx, d.namespace, KeySelectedOrder, id.String())
}

func (d *Device) SelectedOrder(ctx context.Context) (domain.ID, error) {
	v, err := d.get(ctx, KeySelectedOrder)
	return domain.ID(v), err
}

func (d *Device) SaveSummary(ctx context.Context, s Summary) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return d.store.Set(ctx, d.namespace, KeyOrderSummary, string(raw))
}

// Summary returns the last saved summary, or a zero summary when none was
// written yet.
func (d *Device) Summary(ctx context.Context) (Summary, error) {
	v, err := d.get(ctx, KeyOrderSummary)
	if err != nil || v == "" {
		return Summary{}, err
	}
	var s Summary
	if err := json.Unmarshal([]byte(v), &s); err != nil {
		return Summary{}, fmt.Errorf("decode order summary: %w", err)
	}
	return s, nil
}

// Forget drops everything stored for the cashier.
func (d *Device) Forget(ctx context.Context) error {
	return d.store.Clear(ctx, d.namespace)
}

func (d *Device) get(ctx context.Context, key string) (string, error) {
	v, err := d.store.Get(ctx, d.namespace, key)
	if errors.Is(err, errx.ErrNotFound) {
		return "", nil
	}
	return v, err
}
