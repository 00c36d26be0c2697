package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kamakpos/m/domain"
	"kamakpos/m/internal/config"
	"kamakpos/m/internal/core/errx"
	"kamakpos/m/internal/database"
	"kamakpos/m/internal/devicestate"
	"kamakpos/m/internal/migrations"
	"kamakpos/m/internal/pos"
	"kamakpos/m/internal/support"
)

// fakeERP is an in-memory ERP that remembers saved orders.
type fakeERP struct {
	mu        sync.Mutex
	inventory []domain.Product
	orders    []domain.PosOrder
	details   map[domain.ID][]domain.Product
	saves     []domain.OrderData
}

func newFakeERP() *fakeERP {
	return &fakeERP{
		inventory: []domain.Product{
			{ProductID: "1", ProductName: "Paracetamol", BarCode: "6001", Category: "Pharmacy", SellingPriceActual: 10},
			{ProductID: "2", ProductName: "Bandage", BarCode: "6002", Category: "First aid", SellingPriceActual: 4.5},
		},
		details: map[domain.ID][]domain.Product{},
	}
}

func (f *fakeERP) Login(ctx context.Context, username, password string) (*domain.LoginResponse, error) {
	if password != "secret" {
		return nil, errx.Unauthorized("Invalid username or password")
	}
	return &domain.LoginResponse{
		UserID:    "7",
		User:      domain.User{ID: "7", Name: "Ama Serwaa", Username: username},
		Token:     "erp-token",
		CompanyID: "3",
	}, nil
}

func (f *fakeERP) ListInventory(ctx context.Context, companyID domain.ID, criteria string) ([]domain.Product, error) {
	return f.inventory, nil
}

func (f *fakeERP) ListOrders(ctx context.Context, staffID domain.ID) (*domain.PosOrders, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &domain.PosOrders{SalesPersonID: staffID, PosOrders: append([]domain.PosOrder(nil), f.orders...)}, nil
}

func (f *fakeERP) OrderDetails(ctx context.Context, orderID domain.ID) (*domain.OrderDetailsResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	lines, ok := f.details[orderID]
	if !ok {
		return nil, errx.NotFound("Order not found.")
	}
	return &domain.OrderDetailsResponse{OrderID: orderID, OrderNumber: "SO-" + orderID.String(), OrderDate: "2024-05-01", PosOrderHeadDetails: lines}, nil
}

func (f *fakeERP) SaveOrder(ctx context.Context, order domain.OrderData, isUpdate bool) (*domain.SaveOrderResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saves = append(f.saves, order)
	id := order.OrderID
	if !isUpdate {
		id = "42"
		f.orders = append(f.orders, domain.PosOrder{OrderID: id, OrderNumber: "SO-42"})
	}
	f.details[id] = append(f.details[id], order.Products...)
	return &domain.SaveOrderResponse{OrderID: id, Message: "ok"}, nil
}

func (f *fakeERP) DeleteOrderDetail(ctx context.Context, detailID domain.ID) error {
	return nil
}

func (f *fakeERP) DeleteOrder(ctx context.Context, orderID domain.ID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.details, orderID)
	kept := f.orders[:0]
	for _, o := range f.orders {
		if o.OrderID != orderID {
			kept = append(kept, o)
		}
	}
	f.orders = kept
	return nil
}

func (f *fakeERP) ListCustomers(ctx context.Context) ([]domain.Partner, error) {
	return []domain.Partner{{ID: "11", FullName: "Kofi Mensah", PartnerTelephone: "0244123456", Discount: 10}}, nil
}

func (f *fakeERP) ListAgents(ctx context.Context) ([]domain.Partner, error) {
	return []domain.Partner{{ID: "21", FullName: "Yaw Agent"}}, nil
}

func (f *fakeERP) ListPartnerAddresses(ctx context.Context, partnerID domain.ID) ([]domain.PartnerAddress, error) {
	return []domain.PartnerAddress{{ID: "31", Address1: "12 Ring Road"}}, nil
}

func (f *fakeERP) UpdateSalesOrder(ctx context.Context, orderID domain.ID, update domain.SalesOrderUpdate) error {
	return nil
}

type fakePrinter struct {
	html string
}

func (p *fakePrinter) PDF(ctx context.Context, html string) ([]byte, error) {
	p.html = html
	return []byte("%PDF-1.4 fake"), nil
}

type fixture struct {
	erp     *fakeERP
	store   devicestate.Store
	tickets *support.Repository
	printer *fakePrinter
	handler *Handler
	server  http.Handler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := database.Connect("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, migrations.Run(db))

	f := &fixture{
		erp:     newFakeERP(),
		store:   devicestate.NewSQLStore(db),
		tickets: support.NewRepository(db),
		printer: &fakePrinter{},
	}
	f.handler = f.newHandler()
	f.server = f.handler.Router()
	return f
}

func (f *fixture) newHandler() *Handler {
	return New(f.erp, f.store, f.tickets, f.printer, Options{
		Secret:     "test-secret",
		SessionTTL: time.Hour,
		Company:    config.Company{Name: "Kamak POS"},
	})
}

func (f *fixture) do(t *testing.T, method, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	f.server.ServeHTTP(rec, req)
	return rec
}

func (f *fixture) login(t *testing.T) *http.Cookie {
	t.Helper()
	rec := f.do(t, http.MethodPost, "/auth/login", map[string]string{"username": "ama", "password": "secret"}, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookie {
			return c
		}
	}
	t.Fatal("login did not set the session cookie")
	return nil
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dest any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dest), rec.Body.String())
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	decodeBody(t, rec, &body)
	return body["error"]
}

func TestHealth(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestPageGuard(t *testing.T) {
	f := newFixture(t)

	for _, path := range []string{"/", "/pos", "/customer_support"} {
		rec := f.do(t, http.MethodGet, path, nil, nil)
		assert.Equal(t, http.StatusFound, rec.Code, path)
		assert.Equal(t, "/login", rec.Header().Get("Location"), path)
	}
	for _, path := range []string{"/login", "/register"} {
		rec := f.do(t, http.MethodGet, path, nil, nil)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}

	cookie := f.login(t)
	for _, path := range []string{"/login", "/register"} {
		rec := f.do(t, http.MethodGet, path, nil, cookie)
		assert.Equal(t, http.StatusFound, rec.Code, path)
		assert.Equal(t, "/", rec.Header().Get("Location"), path)
	}
	for _, path := range []string{"/", "/pos", "/customer_support"} {
		rec := f.do(t, http.MethodGet, path, nil, cookie)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}

	forged := &http.Cookie{Name: SessionCookie, Value: "not-a-token"}
	rec := f.do(t, http.MethodGet, "/pos", nil, forged)
	assert.Equal(t, http.StatusFound, rec.Code)
}

func TestAPIRequiresSession(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, http.MethodGet, "/api/view", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "missing or invalid session", errorMessage(t, rec))
}

func TestLoginFailures(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/auth/login", map[string]string{"username": "ama", "password": "wrong"}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid username or password", errorMessage(t, rec))
	assert.Empty(t, rec.Result().Cookies())

	rec = f.do(t, http.MethodPost, "/auth/login", map[string]string{"username": " "}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodPost, "/auth/login", map[string]string{"username": "ama", "password": "secret", "extra": "x"}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginStoresSession(t *testing.T) {
	f := newFixture(t)
	cookie := f.login(t)
	assert.True(t, cookie.HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value})
	claims := f.handler.sessionClaims(req)
	require.NotNil(t, claims)

	session, err := devicestate.NewDevice(f.store, claims.ID).Session(context.Background())
	require.NoError(t, err)
	assert.Equal(t, devicestate.Session{AuthToken: "erp-token", Username: "ama", CompanyID: "3", UserID: "7"}, session)
}

func TestCheckoutFlow(t *testing.T) {
	f := newFixture(t)
	cookie := f.login(t)

	rec := f.do(t, http.MethodPost, "/api/products/refresh", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = f.do(t, http.MethodGet, "/api/products?search=para", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	var page struct {
		Products []domain.Product `json:"products"`
		Total    int              `json:"total"`
	}
	decodeBody(t, rec, &page)
	assert.Equal(t, 1, page.Total)

	rec = f.do(t, http.MethodPost, "/api/cart/items", map[string]string{"productId": "1"}, cookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	rec = f.do(t, http.MethodPost, "/api/cart/items", map[string]string{"productId": "1"}, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = f.do(t, http.MethodPost, "/api/cart/items", map[string]string{"productId": "2"}, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodPatch, "/api/cart/items/2", map[string]any{"discount": 100}, cookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	rec = f.do(t, http.MethodPatch, "/api/cart/items/2", map[string]any{"discount": 120}, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = f.do(t, http.MethodDelete, "/api/cart/items/2", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/cart/totals", nil, cookie)
	var totals struct {
		GrandTotal decimal.Decimal `json:"grandTotal"`
	}
	decodeBody(t, rec, &totals)
	assert.True(t, totals.GrandTotal.Equal(decimal.NewFromInt(20)), totals.GrandTotal.String())

	rec = f.do(t, http.MethodPost, "/api/cart/confirm", nil, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Payment not complete.", errorMessage(t, rec))

	rec = f.do(t, http.MethodGet, "/api/receipt", nil, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "All products must be confirmed to print the receipt.", errorMessage(t, rec))

	rec = f.do(t, http.MethodPost, "/api/payments", map[string]any{"amount": 0}, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = f.do(t, http.MethodPost, "/api/payments", map[string]any{"amount": 25, "method": "cash"}, cookie)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var payment struct {
		Change decimal.Decimal `json:"cashChange"`
	}
	decodeBody(t, rec, &payment)
	assert.True(t, payment.Change.Equal(decimal.NewFromInt(5)))

	rec = f.do(t, http.MethodPost, "/api/cart/confirm", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = f.do(t, http.MethodGet, "/api/receipt", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var receiptBody struct {
		GrandTotal string `json:"grandTotal"`
		Payments   string `json:"payments"`
		Cashier    string `json:"cashier"`
	}
	decodeBody(t, rec, &receiptBody)
	assert.Equal(t, "GH₵ 20.00", receiptBody.GrandTotal)
	assert.Equal(t, "GH₵ 25.00", receiptBody.Payments)
	assert.Equal(t, "ama", receiptBody.Cashier)

	rec = f.do(t, http.MethodGet, "/api/receipt/html", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "Paracetamol")

	rec = f.do(t, http.MethodGet, "/api/receipt/pdf", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF"))
	assert.Contains(t, f.printer.html, "GH₵ 20.00")

	rec = f.do(t, http.MethodPost, "/api/orders/save", nil, cookie)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var saved struct {
		OrderID domain.ID `json:"orderId"`
		Message string    `json:"message"`
	}
	decodeBody(t, rec, &saved)
	assert.Equal(t, domain.ID("42"), saved.OrderID)
	assert.Equal(t, "Order created successfully!", saved.Message)
	require.Len(t, f.erp.saves, 1)
	assert.Equal(t, domain.NewOrderID, f.erp.saves[0].OrderID)
	assert.Len(t, f.erp.saves[0].Products, 1)
	assert.Len(t, f.erp.saves[0].PaymentList, 1)

	rec = f.do(t, http.MethodGet, "/api/view", nil, cookie)
	var view struct {
		Selected domain.ID `json:"selectedOrderId"`
		Details  []any     `json:"orderDetails"`
		Cart     []any     `json:"cart"`
	}
	decodeBody(t, rec, &view)
	assert.Equal(t, domain.ID("42"), view.Selected)
	assert.Len(t, view.Details, 1)
	assert.Empty(t, view.Cart)
}

func TestOrdersAndCustomers(t *testing.T) {
	f := newFixture(t)
	f.erp.orders = []domain.PosOrder{{OrderID: "9", OrderNumber: "SO-9"}}
	f.erp.details["9"] = []domain.Product{{ProductID: "1", ProductName: "Paracetamol", ProductPrice: 10, Quantity: 1, OrderDetailID: "90"}}
	cookie := f.login(t)

	rec := f.do(t, http.MethodGet, "/api/orders", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodPost, "/api/orders", nil, cookie)
	require.Equal(t, http.StatusCreated, rec.Code)
	var pending struct {
		ID      domain.ID `json:"orderId"`
		Pending bool      `json:"pending"`
	}
	decodeBody(t, rec, &pending)
	assert.True(t, pending.Pending)

	rec = f.do(t, http.MethodPost, "/api/customers/save", nil, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Please select an order first.", errorMessage(t, rec))

	rec = f.do(t, http.MethodDelete, "/api/orders/"+url.PathEscape(pending.ID.String()), nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodPost, "/api/orders/404/select", nil, cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(t, http.MethodPost, "/api/orders/9/select", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = f.do(t, http.MethodGet, "/api/customers", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = f.do(t, http.MethodGet, "/api/customers/agents", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodPost, "/api/customers/select", map[string]string{"partnerId": "11"}, cookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var selected customerResponse
	decodeBody(t, rec, &selected)
	assert.Equal(t, "Kofi Mensah", selected.Customer.Name)
	require.Len(t, selected.Addresses, 1)

	rec = f.do(t, http.MethodPost, "/api/customers/save", nil, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing required fields for saving customer info.", errorMessage(t, rec))

	rec = f.do(t, http.MethodPut, "/api/customers/refs", map[string]string{"agentId": "21", "billingAddressId": "31", "shippingAddressId": "31"}, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = f.do(t, http.MethodPost, "/api/customers/save", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"message":"Customer info saved successfully!"}`, rec.Body.String())

	rec = f.do(t, http.MethodDelete, "/api/orders/9", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, f.erp.orders)
}

func TestSessionSurvivesRestart(t *testing.T) {
	f := newFixture(t)
	f.erp.orders = []domain.PosOrder{{OrderID: "9", OrderNumber: "SO-9"}}
	f.erp.details["9"] = []domain.Product{{ProductID: "1", ProductName: "Paracetamol", ProductPrice: 10, Quantity: 1, OrderDetailID: "90"}}
	cookie := f.login(t)

	rec := f.do(t, http.MethodPost, "/api/orders/9/select", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	// A new handler shares only the device store.
	f.handler = f.newHandler()
	f.server = f.handler.Router()

	rec = f.do(t, http.MethodGet, "/api/view", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var view struct {
		Selected domain.ID `json:"selectedOrderId"`
	}
	decodeBody(t, rec, &view)
	assert.Equal(t, domain.ID("9"), view.Selected)
}

func TestConcurrentRestoreSharesTerminal(t *testing.T) {
	f := newFixture(t)
	cookie := f.login(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	claims := f.handler.sessionClaims(req)
	require.NotNil(t, claims)

	f.handler = f.newHandler()

	const n = 8
	got := make([]*pos.Terminal, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			term, err := f.handler.terminal(context.Background(), claims.ID)
			assert.NoError(t, err)
			got[i] = term
		}(i)
	}
	wg.Wait()

	require.NotNil(t, got[0])
	for _, term := range got[1:] {
		assert.Same(t, got[0], term)
	}
	assert.Equal(t, 1, f.handler.terminals.Len())
}

func TestLogout(t *testing.T) {
	f := newFixture(t)
	cookie := f.login(t)

	rec := f.do(t, http.MethodPost, "/auth/logout", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	cleared := rec.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Equal(t, SessionCookie, cleared[0].Name)
	assert.True(t, cleared[0].MaxAge < 0)
	assert.Equal(t, 0, f.handler.terminals.Len())

	// The token is still signed, but its device state is gone.
	rec = f.do(t, http.MethodGet, "/api/view", nil, cookie)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Your session has expired. Please log in again.", errorMessage(t, rec))
}

func TestSupportTickets(t *testing.T) {
	f := newFixture(t)
	cookie := f.login(t)

	rec := f.do(t, http.MethodPost, "/api/support/tickets", map[string]string{"customerName": "Kofi"}, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodPost, "/api/support/tickets", map[string]string{
		"customerName": "Kofi Mensah",
		"email":        "kofi@example.com",
		"module":       "POS",
		"message":      "Printer offline",
	}, cookie)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created domain.SupportTicket
	decodeBody(t, rec, &created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "ama", created.User)
	assert.Equal(t, domain.TicketStatusOpen, created.Status)

	rec = f.do(t, http.MethodGet, "/api/support/tickets/"+created.ID, nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/support/tickets/missing", nil, cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	update := map[string]any{
		"customerName": "Kofi Mensah",
		"email":        "kofi@example.com",
		"message":      "Printer offline",
		"status":       "Closed",
	}
	rec = f.do(t, http.MethodPut, "/api/support/tickets/"+created.ID, update, cookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var updated domain.SupportTicket
	decodeBody(t, rec, &updated)
	assert.Equal(t, "Closed", updated.Status)
	assert.Equal(t, "ama", updated.LastModifiedBy)
	assert.NotNil(t, updated.LastModifiedDate)

	rec = f.do(t, http.MethodGet, "/api/support/tickets?customer=KOFI", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	var found []domain.SupportTicket
	decodeBody(t, rec, &found)
	assert.Len(t, found, 1)

	rec = f.do(t, http.MethodGet, "/api/support/tickets?customer=nobody", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = f.do(t, http.MethodGet, "/api/support/tickets?from=01-05-2024", nil, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/support/tickets?from=2024-05-02&to=2024-05-01", nil, cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReceiptPDFWithoutPrinter(t *testing.T) {
	f := newFixture(t)
	f.handler = New(f.erp, f.store, f.tickets, nil, Options{Secret: "test-secret"})
	f.server = f.handler.Router()
	cookie := f.login(t)

	rec := f.do(t, http.MethodGet, "/api/receipt/pdf", nil, cookie)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRespondErrHidesInternalErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	respondErr(rec, httptest.NewRequest(http.MethodGet, "/x", nil), errors.New("db password leaked"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
}
