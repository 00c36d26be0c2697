package pos

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"kamakpos/m/domain"
	"kamakpos/m/internal/core/errx"
	"kamakpos/m/internal/devicestate"
	"kamakpos/m/pkg/logx"
)

// DefaultCriteria is the inventory criteria used to load the full catalog.
const DefaultCriteria = "All"

// ERP is the part of the ERP API a terminal talks to.
type ERP interface {
	ListInventory(ctx context.Context, companyID domain.ID, criteria string) ([]domain.Product, error)
	ListOrders(ctx context.Context, staffID domain.ID) (*domain.PosOrders, error)
	OrderDetails(ctx context.Context, orderID domain.ID) (*domain.OrderDetailsResponse, error)
	SaveOrder(ctx context.Context, order domain.OrderData, isUpdate bool) (*domain.SaveOrderResponse, error)
	DeleteOrderDetail(ctx context.Context, detailID domain.ID) error
	DeleteOrder(ctx context.Context, orderID domain.ID) error
	ListCustomers(ctx context.Context) ([]domain.Partner, error)
	ListAgents(ctx context.Context) ([]domain.Partner, error)
	ListPartnerAddresses(ctx context.Context, partnerID domain.ID) ([]domain.PartnerAddress, error)
	UpdateSalesOrder(ctx context.Context, orderID domain.ID, update domain.SalesOrderUpdate) error
}

type Options struct {
	// TaxRate is a percentage applied after the order discount.
	TaxRate  decimal.Decimal
	Criteria string
	Now      func() time.Time
}

// OrderTag is an entry of the order strip. Pending tags were opened on this
// terminal and have not been saved yet.
type OrderTag struct {
	ID        domain.ID `json:"orderId"`
	Number    string    `json:"orderNumber"`
	CreatedOn string    `json:"createdOn,omitempty"`
	Pending   bool      `json:"pending"`
}

// OrderHeader describes the selected saved order.
type OrderHeader struct {
	OrderID           domain.ID `json:"orderId"`
	OrderNumber       string    `json:"orderNumber"`
	OrderUser         string    `json:"orderUser"`
	CustomerName      string    `json:"customerName"`
	CustomerNumber    string    `json:"customerNumber"`
	CustomerTelephone string    `json:"customerTelephone"`
	OrderDate         string    `json:"orderDate"`
}

// Terminal owns the POS state of one cashier session. Operations are
// serialized; a result that arrives after the caller's context is done is
// discarded without touching state.
type Terminal struct {
	mu      sync.Mutex
	erp     ERP
	device  *devicestate.Device
	session devicestate.Session
	opts    Options

	catalog  []domain.Product
	orders   []OrderTag
	selected domain.ID
	header   OrderHeader
	details  []LineItem
	cart     *Cart
	payments []Payment
	// submitted counts the leading payments already sent with a save.
	submitted int
	customer  CustomerInfo
	customers []domain.Partner
	agents    []domain.Partner
	addresses []domain.PartnerAddress
}

func NewTerminal(erp ERP, device *devicestate.Device, session devicestate.Session, opts Options) *Terminal {
	if opts.Criteria == "" {
		opts.Criteria = DefaultCriteria
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Terminal{
		erp:     erp,
		device:  device,
		session: session,
		opts:    opts,
		cart:    NewCart(),
	}
}

func (t *Terminal) Session() devicestate.Session {
	return t.session
}

// RefreshProducts reloads the catalog from the ERP.
func (t *Terminal) RefreshProducts(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.refreshProducts(ctx)
}

func (t *Terminal) refreshProducts(ctx context.Context) error {
	if t.session.CompanyID.IsZero() {
		return ErrMissingSession
	}
	products, err := t.erp.ListInventory(ctx, t.session.CompanyID, t.opts.Criteria)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	t.catalog = products
	return nil
}

// Products returns one page of the catalog.
func (t *Terminal) Products(f ProductFilter) ProductPage {
	t.mu.Lock()
	defer t.mu.Unlock()
	return FilterProducts(t.catalog, f)
}

// LoadOrders reloads the cashier's saved orders. Pending tags survive.
func (t *Terminal) LoadOrders(ctx context.Context) ([]OrderTag, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.loadOrders(ctx); err != nil {
		return nil, err
	}
	return append([]OrderTag(nil), t.orders...), nil
}

func (t *Terminal) loadOrders(ctx context.Context) error {
	if t.session.UserID.IsZero() {
		return ErrMissingSession
	}
	resp, err := t.erp.ListOrders(ctx, t.session.UserID)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	tags := make([]OrderTag, 0, len(resp.PosOrders))
	for _, o := range resp.PosOrders {
		tags = append(tags, OrderTag{ID: o.OrderID, Number: o.OrderNumber, CreatedOn: o.CreatedOn})
	}
	for _, o := range t.orders {
		if o.Pending {
			tags = append(tags, o)
		}
	}
	t.orders = tags
	return nil
}

// NewOrder opens a pending order on this terminal and selects it.
func (t *Terminal) NewOrder(ctx context.Context) OrderTag {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.newOrder(ctx)
}

func (t *Terminal) newOrder(ctx context.Context) OrderTag {
	tag := t.pendingTag()
	t.clearSelection()
	t.selected = tag.ID
	t.publish(ctx)
	return tag
}

func (t *Terminal) pendingTag() OrderTag {
	tag := OrderTag{ID: domain.ID("local-" + uuid.NewString()), Number: "New order", Pending: true}
	t.orders = append(t.orders, tag)
	return tag
}

// SelectOrder makes id the active order and loads its saved lines.
func (t *Terminal) SelectOrder(ctx context.Context, id domain.ID) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	tag, ok := t.tag(id)
	if !ok {
		return ErrUnknownOrder
	}
	if tag.Pending {
		t.clearSelection()
		t.selected = id
		t.publish(ctx)
		return nil
	}
	if err := t.loadDetails(ctx, id); err != nil {
		return err
	}
	t.payments, t.submitted = nil, 0
	if err := t.device.SetSelectedOrder(ctx, id); err != nil {
		logx.Warn().Err(err).Str("orderId", id.String()).Msg("unable to store selected order")
	}
	t.publish(ctx)
	return nil
}

func (t *Terminal) loadDetails(ctx context.Context, id domain.ID) error {
	resp, err := t.erp.OrderDetails(ctx, id)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	details := make([]LineItem, 0, len(resp.PosOrderHeadDetails))
	for _, p := range resp.PosOrderHeadDetails {
		details = append(details, savedLine(p))
	}
	t.details = details
	t.selected = id
	t.header = OrderHeader{
		OrderID:           resp.OrderID,
		OrderNumber:       resp.OrderNumber,
		OrderUser:         resp.OrderUser,
		CustomerName:      deref(resp.CustomerName),
		CustomerNumber:    deref(resp.CustomerNumber),
		CustomerTelephone: deref(resp.CustomerTelephone),
		OrderDate:         resp.OrderDate,
	}
	return nil
}

// AddProduct puts one unit of a catalog product in the cart.
func (t *Terminal) AddProduct(ctx context.Context, productID domain.ID) (LineItem, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	p, ok := t.catalogProduct(productID)
	if !ok {
		return LineItem{}, errx.NotFound("Product not found.")
	}
	line, err := t.cart.Add(p)
	if err != nil {
		return LineItem{}, err
	}
	t.publish(ctx)
	return line, nil
}

// RemoveProduct takes one unit of a product out of the order. A saved line
// is deleted on the ERP first and dropped whole; if that call fails the
// order is left as it was.
func (t *Terminal) RemoveProduct(ctx context.Context, productID domain.ID) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.cart.Get(productID); ok {
		if _, err := t.cart.Remove(productID); err != nil {
			return err
		}
		t.publish(ctx)
		return nil
	}

	idx := t.detailIndex(productID)
	if idx < 0 {
		return ErrLineNotFound
	}
	line := t.details[idx]
	if line.Confirmed {
		return ErrLineConfirmed
	}
	if !line.DetailID.IsZero() {
		if err := t.erp.DeleteOrderDetail(ctx, line.DetailID); err != nil {
			logx.Error().Err(err).Str("detailId", line.DetailID.String()).Msg("unable to delete order detail")
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	t.details = append(t.details[:idx], t.details[idx+1:]...)
	t.publish(ctx)
	return nil
}

// LineEdit carries the inline edits of one line. Nil fields are unchanged.
type LineEdit struct {
	Quantity *int
	Price    *decimal.Decimal
	Discount *decimal.Decimal
}

// EditLine applies e to a cart line. All fields are validated before any is
// applied.
func (t *Terminal) EditLine(ctx context.Context, productID domain.ID, e LineEdit) (LineItem, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	line, ok := t.cart.Get(productID)
	if !ok {
		if idx := t.detailIndex(productID); idx >= 0 {
			return LineItem{}, ErrLineConfirmed
		}
		return LineItem{}, ErrLineNotFound
	}
	if line.Confirmed {
		return LineItem{}, ErrLineConfirmed
	}
	switch {
	case e.Quantity != nil && *e.Quantity <= 0:
		return LineItem{}, ErrInvalidQuantity
	case e.Price != nil && e.Price.IsNegative():
		return LineItem{}, ErrInvalidPrice
	case e.Discount != nil && !validPercent(*e.Discount):
		return LineItem{}, ErrInvalidDiscount
	}
	if e.Quantity != nil {
		_ = t.cart.SetQuantity(productID, *e.Quantity)
	}
	if e.Price != nil {
		_ = t.cart.SetPrice(productID, *e.Price)
	}
	if e.Discount != nil {
		_ = t.cart.SetDiscount(productID, *e.Discount)
	}
	t.publish(ctx)
	line, _ = t.cart.Get(productID)
	return line, nil
}

// AddPayment records a tender against the active order.
func (t *Terminal) AddPayment(ctx context.Context, amount decimal.Decimal, method Method) (Payment, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !amount.IsPositive() {
		return Payment{}, ErrInvalidAmount
	}
	if method == "" {
		method = MethodCash
	}
	switch method {
	case MethodCash, MethodCard, MethodMobile:
	default:
		return Payment{}, ErrInvalidMethod
	}

	before := t.totals()
	p := Payment{
		Method:    method,
		User:      t.session.Username,
		Date:      t.opts.Now(),
		Amount:    amount,
		TotalBill: before.GrandTotal,
		Balance:   before.Balance.Sub(amount),
	}
	if !t.selectedPending() {
		p.SalesOrderID = t.selected
	}
	if method == MethodCash && p.Balance.IsNegative() {
		p.Change = p.Balance.Neg()
		if before.Balance.IsNegative() {
			p.Change = amount
		}
	}
	t.payments = append(t.payments, p)
	t.publish(ctx)
	return p, nil
}

// Confirm flags every line of the order confirmed, saved or not, when the
// payments cover the grand total. Otherwise nothing changes.
func (t *Terminal) Confirm(ctx context.Context) (Totals, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	totals := t.totals()
	if !totals.Covered() {
		return totals, ErrPaymentIncomplete
	}
	for i := range t.details {
		t.details[i].Confirmed = true
	}
	t.cart.ConfirmAll()
	t.publish(ctx)
	return totals, nil
}

func (t *Terminal) Totals() Totals {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.totals()
}

func (t *Terminal) totals() Totals {
	return ComputeTotals(t.details, t.cart.Lines(), t.payments, t.customer.DiscountPercentage, t.opts.TaxRate)
}

// SaveResult reports the outcome of Save.
type SaveResult struct {
	OrderID domain.ID `json:"orderId"`
	Created bool      `json:"created"`
	Message string    `json:"message"`
}

// Save persists the cart. An order that was never saved is created and its
// pending tag takes the id the ERP assigned; a saved order is updated.
// Payments stay with the order until another one is selected, and each is
// sent once.
//
// Once the ERP has accepted the save its outcome is recorded even if the
// caller has gone away, so a retry neither duplicates the order nor resends
// its lines; only the reload of the saved order is skipped.
func (t *Terminal) Save(ctx context.Context) (SaveResult, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.session.UserID.IsZero() || t.session.CompanyID.IsZero() {
		return SaveResult{}, ErrMissingSession
	}

	isUpdate := !t.selected.IsNewOrder() && !t.selectedPending()
	if !isUpdate && t.selected.IsZero() {
		t.selected = t.pendingTag().ID
	}
	pendingID := t.selected

	payload := t.orderData(isUpdate)
	resp, err := t.erp.SaveOrder(ctx, payload, isUpdate)
	if err != nil {
		logx.Error().Err(err).Str("orderId", pendingID.String()).Bool("update", isUpdate).Msg("unable to save order")
		return SaveResult{}, err
	}

	orderID := pendingID
	if !isUpdate {
		orderID = resp.OrderID
		t.replaceTag(pendingID, OrderTag{ID: orderID, Number: orderID.String()})
	}
	t.cart.Clear()
	t.submitted = len(t.payments)
	t.selected = orderID
	if err := ctx.Err(); err != nil {
		if serr := t.device.SetSelectedOrder(context.WithoutCancel(ctx), orderID); serr != nil {
			logx.Warn().Err(serr).Str("orderId", orderID.String()).Msg("unable to store selected order")
		}
		return SaveResult{}, err
	}

	if err := t.device.SetSelectedOrder(ctx, orderID); err != nil {
		logx.Warn().Err(err).Str("orderId", orderID.String()).Msg("unable to store selected order")
	}
	if err := t.loadDetails(ctx, orderID); err != nil {
		logx.Warn().Err(err).Str("orderId", orderID.String()).Msg("unable to reload saved order")
		t.details = nil
	}
	t.publish(ctx)

	res := SaveResult{OrderID: orderID, Created: !isUpdate, Message: "Order saved successfully!"}
	if !isUpdate {
		res.Message = "Order created successfully!"
	}
	logx.Info().Str("orderId", orderID.String()).Bool("created", res.Created).Msg("order saved")
	return res, nil
}

func (t *Terminal) orderData(isUpdate bool) domain.OrderData {
	totals := t.totals()
	lines := t.cart.Lines()
	products := make([]domain.Product, 0, len(lines))
	for i, l := range lines {
		products = append(products, wireLine(l, i))
	}
	payments := make([]domain.SavedPayment, 0, len(t.payments)-t.submitted)
	for _, p := range t.payments[t.submitted:] {
		payments = append(payments, wirePayment(p))
	}
	orderID := domain.NewOrderID
	if isUpdate {
		orderID = t.selected
	}
	return domain.OrderData{
		AffectStock:           "no",
		OrderID:               orderID,
		StaffID:               t.session.UserID,
		CompanyID:             t.session.CompanyID,
		CustomerName:          t.customer.Name,
		CustomerNumber:        t.customer.LoyaltyBarcode,
		CustomerTelephone:     t.customer.Telephone,
		SubTotal:              toFloat(totals.SubTotal),
		Discount:              toFloat(totals.Discount),
		Tax:                   toFloat(totals.Tax),
		GrandTotal:            toFloat(totals.GrandTotal),
		Payments:              toFloat(totals.Payments),
		CustomerExtraDiscount: toFloat(totals.Discount),
		CustomerDiscountRate:  toFloat(t.customer.DiscountPercentage),
		InProgress:            true,
		PaymentList:           payments,
		Products:              products,
	}
}

// DeleteOrder removes an order. A pending order is only dropped from the
// strip; a saved one is deleted on the ERP and the whole view reloaded.
func (t *Terminal) DeleteOrder(ctx context.Context, id domain.ID) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	tag, ok := t.tag(id)
	if ok && tag.Pending {
		t.dropTag(id)
		if t.selected == id {
			t.resetOrder()
			t.publish(ctx)
		}
		return nil
	}

	if err := t.erp.DeleteOrder(ctx, id); err != nil {
		logx.Error().Err(err).Str("orderId", id.String()).Msg("unable to delete order")
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return t.reloadView(ctx)
}

// ReloadView drops all local order state and reloads orders and catalog.
func (t *Terminal) ReloadView(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.reloadView(ctx)
}

func (t *Terminal) reloadView(ctx context.Context) error {
	t.resetOrder()
	t.customer = CustomerInfo{}
	t.addresses = nil
	t.orders = nil
	if err := t.device.SetSelectedOrder(ctx, ""); err != nil {
		logx.Warn().Err(err).Msg("unable to clear selected order")
	}
	t.publish(ctx)
	if err := t.loadOrders(ctx); err != nil {
		return err
	}
	return t.refreshProducts(ctx)
}

// clearSelection forgets the active order but keeps the cart, which
// follows the cashier to whichever order is selected next.
func (t *Terminal) clearSelection() {
	t.selected = ""
	t.header = OrderHeader{}
	t.details = nil
	t.payments, t.submitted = nil, 0
}

// resetOrder clears the active order and the cart without touching the
// order strip.
func (t *Terminal) resetOrder() {
	t.clearSelection()
	t.cart.Clear()
}

// publish writes the current summary to device state for the receipt view.
func (t *Terminal) publish(ctx context.Context) {
	totals := t.totals()
	summary := devicestate.Summary{
		OrderID:    t.selected,
		SubTotal:   totals.SubTotal,
		Discount:   totals.Discount,
		Taxes:      totals.Tax,
		GrandTotal: totals.GrandTotal,
		Payments:   totals.Payments,
		Balance:    totals.Balance,
	}
	if err := t.device.SaveSummary(ctx, summary); err != nil {
		logx.Warn().Err(err).Msg("unable to store order summary")
	}
}

func (t *Terminal) tag(id domain.ID) (OrderTag, bool) {
	for _, o := range t.orders {
		if o.ID == id {
			return o, true
		}
	}
	return OrderTag{}, false
}

func (t *Terminal) replaceTag(id domain.ID, tag OrderTag) {
	for i, o := range t.orders {
		if o.ID == id {
			t.orders[i] = tag
			return
		}
	}
	t.orders = append(t.orders, tag)
}

func (t *Terminal) dropTag(id domain.ID) {
	for i, o := range t.orders {
		if o.ID == id {
			t.orders = append(t.orders[:i], t.orders[i+1:]...)
			return
		}
	}
}

func (t *Terminal) selectedPending() bool {
	tag, ok := t.tag(t.selected)
	return ok && tag.Pending
}

func (t *Terminal) catalogProduct(id domain.ID) (domain.Product, bool) {
	for _, p := range t.catalog {
		if p.ProductID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

func (t *Terminal) detailIndex(id domain.ID) int {
	for i, l := range t.details {
		if l.ProductID == id {
			return i
		}
	}
	return -1
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
