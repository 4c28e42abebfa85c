package payments

import (
	"context"
	"fmt"
	"time"

	"github.com/velora-shop/velora-backend/internal/cart"
	"github.com/velora-shop/velora-backend/internal/orders"
	"github.com/velora-shop/velora-backend/internal/pricing"
	pkgerrors "github.com/velora-shop/velora-backend/pkg/errors"
	"github.com/velora-shop/velora-backend/pkg/logger"
	"github.com/velora-shop/velora-backend/pkg/types"
)

// Order is a finalized checkout handed to the dispatcher. Totals are not
// part of the input: the dispatcher prices the items itself immediately
// before submission so a stale quote can never be charged.
type Order struct {
	Contact        types.ContactInfo
	Items          []cart.LineItem
	ShippingMethod pricing.ShippingMethod
	Method         Method
	Card           CardDetails
}

// Result is the normalized outcome of a dispatch. Card payments complete
// inline and carry a receipt; wallet payments return a redirect the caller
// must navigate to, with confirmation happening out of band.
type Result struct {
	Method            Method    `json:"method"`
	Completed         bool      `json:"completed"`
	OrderID           string    `json:"order_id"`
	TrackingNumber    string    `json:"tracking_number,omitempty"`
	EstimatedDelivery time.Time `json:"estimated_delivery,omitempty"`
	TotalCents        int64     `json:"total_cents"`
	PaymentURL        string    `json:"payment_url,omitempty"`
	TransactionID     string    `json:"transaction_id,omitempty"`
}

// Dispatcher routes a finalized checkout to the right payment strategy.
type Dispatcher struct {
	processor     orders.Processor
	wallet        WalletGateway
	pending       PendingStore
	logg          *logger.Logger
	walletTimeout time.Duration
	redirectBase  string
	now           func() time.Time
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithWalletTimeout bounds how long a wallet gateway call may take.
func WithWalletTimeout(d time.Duration) DispatcherOption {
	return func(dp *Dispatcher) { dp.walletTimeout = d }
}

// WithDispatcherClock overrides the clock, for tests.
func WithDispatcherClock(now func() time.Time) DispatcherOption {
	return func(dp *Dispatcher) { dp.now = now }
}

func NewDispatcher(
	processor orders.Processor,
	wallet WalletGateway,
	pending PendingStore,
	redirectBase string,
	logg *logger.Logger,
	opts ...DispatcherOption,
) (*Dispatcher, error) {
	if processor == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "order processor required")
	}
	if wallet == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "wallet gateway required")
	}
	if pending == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "pending order store required")
	}

	d := &Dispatcher{
		processor:     processor,
		wallet:        wallet,
		pending:       pending,
		logg:          logg,
		walletTimeout: 10 * time.Second,
		redirectBase:  redirectBase,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Dispatch prices the order and executes the selected payment strategy.
func (d *Dispatcher) Dispatch(ctx context.Context, order Order) (Result, error) {
	if len(order.Items) == 0 {
		return Result{}, pkgerrors.New(pkgerrors.CodeStateConflict, "cannot dispatch an empty order")
	}
	if !order.Method.Valid() {
		return Result{}, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown payment method %q", order.Method))
	}

	totals, err := pricing.Totals(subtotalCents(order.Items), order.ShippingMethod, order.Contact.State, d.now())
	if err != nil {
		return Result{}, err
	}

	switch order.Method {
	case MethodWallet:
		return d.dispatchWallet(ctx, order, totals)
	default:
		return d.dispatchCard(ctx, order, totals)
	}
}

func (d *Dispatcher) dispatchCard(ctx context.Context, order Order, totals pricing.OrderTotals) (Result, error) {
	payload := buildPayload(order, totals)
	payload.Payment = orders.PaymentSummary{
		Method:     string(MethodCard),
		CardLast4:  order.Card.Last4(),
		CardHolder: order.Card.HolderName,
	}

	receipt, err := d.processor.SubmitOrder(ctx, payload)
	if err != nil {
		return Result{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "card order submission failed")
	}

	if d.logg != nil {
		d.logg.Info(d.logg.WithOrderID(ctx, receipt.OrderID), "payments.card_completed")
	}
	return Result{
		Method:            MethodCard,
		Completed:         true,
		OrderID:           receipt.OrderID,
		TrackingNumber:    receipt.TrackingNumber,
		EstimatedDelivery: receipt.EstimatedDelivery,
		TotalCents:        totals.TotalCents,
	}, nil
}

func (d *Dispatcher) dispatchWallet(ctx context.Context, order Order, totals pricing.OrderTotals) (Result, error) {
	phone, err := NormalizeWalletPhone(order.Contact.Phone)
	if err != nil {
		return Result{}, err
	}

	orderID := fmt.Sprintf("ORD-%d", d.now().UnixMilli())

	wctx := ctx
	if d.walletTimeout > 0 {
		var cancel context.CancelFunc
		wctx, cancel = context.WithTimeout(ctx, d.walletTimeout)
		defer cancel()
	}

	payment, err := d.wallet.CreatePayment(wctx, CreatePaymentRequest{
		AmountCents: totals.TotalCents,
		OrderID:     orderID,
		Phone:       phone,
		Customer:    order.Contact,
		RedirectURL: d.redirectBase + "/payment/status",
	})
	if err != nil {
		return Result{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "wallet payment initialization failed")
	}

	payload := buildPayload(order, totals)
	payload.Payment = orders.PaymentSummary{
		Method:        string(MethodWallet),
		TransactionID: payment.TransactionID,
	}
	pending := PendingOrder{
		OrderID:       orderID,
		TransactionID: payment.TransactionID,
		Payload:       payload,
		CreatedAt:     d.now(),
	}
	if err := d.pending.Put(ctx, pending); err != nil {
		// Without a parked order the redirect can never be redeemed.
		return Result{}, err
	}

	if d.logg != nil {
		d.logg.Info(d.logg.WithOrderID(ctx, orderID), "payments.wallet_redirect_opened")
	}
	return Result{
		Method:            MethodWallet,
		Completed:         false,
		OrderID:           orderID,
		EstimatedDelivery: totals.EstimatedDelivery,
		TotalCents:        totals.TotalCents,
		PaymentURL:        payment.PaymentURL,
		TransactionID:     payment.TransactionID,
	}, nil
}

// ConfirmWallet redeems a parked redirect order once the customer returns.
// It polls the gateway, submits the order on success and deletes the parked
// record so a second confirmation cannot double-submit.
func (d *Dispatcher) ConfirmWallet(ctx context.Context, orderID string) (Result, error) {
	pending, err := d.pending.Get(ctx, orderID)
	if err != nil {
		return Result{}, err
	}

	status, err := d.wallet.CheckStatus(ctx, pending.TransactionID)
	if err != nil {
		return Result{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "wallet status check failed")
	}
	if !status.Succeeded {
		return Result{}, pkgerrors.New(pkgerrors.CodeConflict, "wallet payment was not completed")
	}

	receipt, err := d.processor.SubmitOrder(ctx, pending.Payload)
	if err != nil {
		return Result{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "wallet order submission failed")
	}

	if err := d.pending.Delete(ctx, orderID); err != nil && d.logg != nil {
		d.logg.Error(ctx, "payments.pending_cleanup_failed", err)
	}

	if d.logg != nil {
		d.logg.Info(d.logg.WithOrderID(ctx, receipt.OrderID), "payments.wallet_completed")
	}
	return Result{
		Method:            MethodWallet,
		Completed:         true,
		OrderID:           receipt.OrderID,
		TrackingNumber:    receipt.TrackingNumber,
		EstimatedDelivery: receipt.EstimatedDelivery,
		TotalCents:        pending.Payload.TotalCents,
		TransactionID:     pending.TransactionID,
	}, nil
}

func buildPayload(order Order, totals pricing.OrderTotals) orders.Payload {
	items := make([]orders.LineItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orders.LineItem{
			ProductID:      item.ProductID,
			Name:           item.Name,
			Variant:        item.Variant,
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPriceCents,
		})
	}
	return orders.Payload{
		Contact:           order.Contact,
		ShippingMethod:    string(order.ShippingMethod),
		Items:             items,
		SubtotalCents:     totals.SubtotalCents,
		ShippingCents:     totals.ShippingCents,
		TaxCents:          totals.TaxCents,
		TotalCents:        totals.TotalCents,
		EstimatedDelivery: totals.EstimatedDelivery,
	}
}

func subtotalCents(items []cart.LineItem) int64 {
	var total int64
	for _, item := range items {
		total += item.LineTotalCents()
	}
	return total
}
