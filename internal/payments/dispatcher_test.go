package payments

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velora-shop/velora-backend/internal/cart"
	"github.com/velora-shop/velora-backend/internal/orders"
	pkgerrors "github.com/velora-shop/velora-backend/pkg/errors"
	"github.com/velora-shop/velora-backend/pkg/types"
)

type stubProcessor struct {
	submitted []orders.Payload
	receipt   orders.Receipt
	err       error
}

func (s *stubProcessor) SubmitOrder(_ context.Context, payload orders.Payload) (orders.Receipt, error) {
	s.submitted = append(s.submitted, payload)
	if s.err != nil {
		return orders.Receipt{}, s.err
	}
	return s.receipt, nil
}

type stubGateway struct {
	created   []CreatePaymentRequest
	payment   WalletPayment
	createErr error
	status    WalletStatus
	statusErr error
}

func (s *stubGateway) CreatePayment(_ context.Context, req CreatePaymentRequest) (WalletPayment, error) {
	s.created = append(s.created, req)
	if s.createErr != nil {
		return WalletPayment{}, s.createErr
	}
	return s.payment, nil
}

func (s *stubGateway) CheckStatus(_ context.Context, _ string) (WalletStatus, error) {
	if s.statusErr != nil {
		return WalletStatus{}, s.statusErr
	}
	return s.status, nil
}

type memPendingStore struct {
	orders map[string]PendingOrder
	putErr error
}

func newMemPendingStore() *memPendingStore {
	return &memPendingStore{orders: map[string]PendingOrder{}}
}

func (s *memPendingStore) Put(_ context.Context, pending PendingOrder) error {
	if s.putErr != nil {
		return s.putErr
	}
	s.orders[pending.OrderID] = pending
	return nil
}

func (s *memPendingStore) Get(_ context.Context, orderID string) (PendingOrder, error) {
	pending, ok := s.orders[orderID]
	if !ok {
		return PendingOrder{}, pkgerrors.New(pkgerrors.CodeNotFound, "pending order not found or expired")
	}
	return pending, nil
}

func (s *memPendingStore) Delete(_ context.Context, orderID string) error {
	delete(s.orders, orderID)
	return nil
}

func testItems() []cart.LineItem {
	return []cart.LineItem{
		{
			ID:             uuid.New(),
			ProductID:      1,
			Name:           "Premium Wireless Headphones",
			UnitPriceCents: 29999,
			Quantity:       1,
			Variant:        types.Variant{Color: "Black"},
		},
		{
			ID:             uuid.New(),
			ProductID:      5,
			Name:           "Insulated Water Bottle",
			UnitPriceCents: 3499,
			Quantity:       2,
		},
	}
}

func testContact() types.ContactInfo {
	return types.ContactInfo{
		Email:     "ava@example.com",
		FirstName: "Ava",
		LastName:  "Stone",
		Address:   "100 Market Street",
		City:      "San Francisco",
		State:     "CA",
		ZipCode:   "94103",
		Phone:     "9876543210",
	}
}

func newTestDispatcher(t *testing.T, proc *stubProcessor, gw *stubGateway, pending PendingStore, opts ...DispatcherOption) *Dispatcher {
	t.Helper()
	opts = append([]DispatcherOption{
		WithDispatcherClock(func() time.Time {
			return time.Date(2026, time.March, 9, 12, 0, 0, 0, time.UTC)
		}),
	}, opts...)
	d, err := NewDispatcher(proc, gw, pending, "https://shop.velora.test", nil, opts...)
	require.NoError(t, err)
	return d
}

func TestDispatchCard(t *testing.T) {
	t.Parallel()

	proc := &stubProcessor{receipt: orders.Receipt{
		OrderID:        "ORD-1",
		TrackingNumber: "TRK1",
	}}
	d := newTestDispatcher(t, proc, &stubGateway{}, newMemPendingStore())

	res, err := d.Dispatch(context.Background(), Order{
		Contact:        testContact(),
		Items:          testItems(),
		ShippingMethod: "standard",
		Method:         MethodCard,
		Card: CardDetails{
			Number:     "4242 4242 4242 4242",
			HolderName: "Ava Stone",
			Expiry:     "12/27",
			CVV:        "123",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, MethodCard, res.Method)
	assert.True(t, res.Completed)
	assert.Equal(t, "ORD-1", res.OrderID)
	assert.Equal(t, "TRK1", res.TrackingNumber)

	// Subtotal 36997 clears the free-shipping threshold; CA tax 7.25%.
	require.Len(t, proc.submitted, 1)
	payload := proc.submitted[0]
	assert.Equal(t, int64(36997), payload.SubtotalCents)
	assert.Equal(t, int64(0), payload.ShippingCents)
	assert.Equal(t, int64(2682), payload.TaxCents)
	assert.Equal(t, int64(39679), payload.TotalCents)
	assert.Equal(t, res.TotalCents, payload.TotalCents)

	// Only the masked card survives into the payload.
	assert.Equal(t, "card", payload.Payment.Method)
	assert.Equal(t, "4242", payload.Payment.CardLast4)
	assert.Equal(t, "Ava Stone", payload.Payment.CardHolder)
}

func TestDispatchCardProcessorFailure(t *testing.T) {
	t.Parallel()

	proc := &stubProcessor{err: pkgerrors.New(pkgerrors.CodeDependency, "oms unavailable")}
	d := newTestDispatcher(t, proc, &stubGateway{}, newMemPendingStore())

	_, err := d.Dispatch(context.Background(), Order{
		Contact:        testContact(),
		Items:          testItems(),
		ShippingMethod: "standard",
		Method:         MethodCard,
	})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeDependency, pkgerrors.As(err).Code())
}

func TestDispatchWallet(t *testing.T) {
	t.Parallel()

	proc := &stubProcessor{}
	gw := &stubGateway{payment: WalletPayment{
		PaymentURL:    "https://wallet.test/pay/abc",
		TransactionID: "abc",
	}}
	pending := newMemPendingStore()
	d := newTestDispatcher(t, proc, gw, pending)

	res, err := d.Dispatch(context.Background(), Order{
		Contact:        testContact(),
		Items:          testItems(),
		ShippingMethod: "express",
		Method:         MethodWallet,
	})
	require.NoError(t, err)

	assert.Equal(t, MethodWallet, res.Method)
	assert.False(t, res.Completed)
	assert.Equal(t, "ORD-1773057600000", res.OrderID)
	assert.Equal(t, "https://wallet.test/pay/abc", res.PaymentURL)
	assert.Equal(t, "abc", res.TransactionID)

	// The gateway is asked for the full grand total with a normalized phone.
	require.Len(t, gw.created, 1)
	assert.Equal(t, res.TotalCents, gw.created[0].AmountCents)
	assert.Equal(t, "9876543210", gw.created[0].Phone)
	assert.Equal(t, "https://shop.velora.test/payment/status", gw.created[0].RedirectURL)

	// Nothing is submitted yet; the order is parked for confirmation.
	assert.Empty(t, proc.submitted)
	parked, err := pending.Get(context.Background(), res.OrderID)
	require.NoError(t, err)
	assert.Equal(t, "abc", parked.TransactionID)
	assert.Equal(t, "wallet", parked.Payload.Payment.Method)
	assert.Equal(t, res.TotalCents, parked.Payload.TotalCents)
}

func TestDispatchWalletGatewayFailure(t *testing.T) {
	t.Parallel()

	gw := &stubGateway{createErr: pkgerrors.New(pkgerrors.CodeDependency, "gateway down")}
	pending := newMemPendingStore()
	d := newTestDispatcher(t, &stubProcessor{}, gw, pending)

	_, err := d.Dispatch(context.Background(), Order{
		Contact:        testContact(),
		Items:          testItems(),
		ShippingMethod: "standard",
		Method:         MethodWallet,
	})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeDependency, pkgerrors.As(err).Code())
	assert.Empty(t, pending.orders)
}

func TestDispatchWalletBadPhone(t *testing.T) {
	t.Parallel()

	d := newTestDispatcher(t, &stubProcessor{}, &stubGateway{}, newMemPendingStore())

	contact := testContact()
	contact.Phone = "12345"
	_, err := d.Dispatch(context.Background(), Order{
		Contact:        contact,
		Items:          testItems(),
		ShippingMethod: "standard",
		Method:         MethodWallet,
	})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestDispatchGuards(t *testing.T) {
	t.Parallel()

	d := newTestDispatcher(t, &stubProcessor{}, &stubGateway{}, newMemPendingStore())

	_, err := d.Dispatch(context.Background(), Order{Method: MethodCard})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeStateConflict, pkgerrors.As(err).Code())

	_, err = d.Dispatch(context.Background(), Order{
		Items:  testItems(),
		Method: Method("crypto"),
	})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestConfirmWallet(t *testing.T) {
	t.Parallel()

	proc := &stubProcessor{receipt: orders.Receipt{
		OrderID:        "ORD-9",
		TrackingNumber: "TRK9",
	}}
	gw := &stubGateway{status: WalletStatus{Succeeded: true, Code: "PAYMENT_SUCCESS"}}
	pending := newMemPendingStore()
	d := newTestDispatcher(t, proc, gw, pending)

	require.NoError(t, pending.Put(context.Background(), PendingOrder{
		OrderID:       "ORD-42",
		TransactionID: "tx-42",
		Payload: orders.Payload{
			Items:      []orders.LineItem{{ProductID: 1, Quantity: 1, UnitPriceCents: 29999}},
			TotalCents: 32999,
			Payment:    orders.PaymentSummary{Method: "wallet", TransactionID: "tx-42"},
		},
	}))

	res, err := d.ConfirmWallet(context.Background(), "ORD-42")
	require.NoError(t, err)

	assert.True(t, res.Completed)
	assert.Equal(t, "ORD-9", res.OrderID)
	assert.Equal(t, int64(32999), res.TotalCents)
	require.Len(t, proc.submitted, 1)

	// The parked record is consumed.
	_, err = pending.Get(context.Background(), "ORD-42")
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestConfirmWalletNotPaid(t *testing.T) {
	t.Parallel()

	gw := &stubGateway{status: WalletStatus{Succeeded: false, Code: "PAYMENT_PENDING"}}
	pending := newMemPendingStore()
	d := newTestDispatcher(t, &stubProcessor{}, gw, pending)

	require.NoError(t, pending.Put(context.Background(), PendingOrder{
		OrderID:       "ORD-42",
		TransactionID: "tx-42",
	}))

	_, err := d.ConfirmWallet(context.Background(), "ORD-42")
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeConflict, pkgerrors.As(err).Code())

	// Unpaid orders stay parked until they expire.
	_, err = pending.Get(context.Background(), "ORD-42")
	require.NoError(t, err)
}

func TestConfirmWalletUnknownOrder(t *testing.T) {
	t.Parallel()

	d := newTestDispatcher(t, &stubProcessor{}, &stubGateway{}, newMemPendingStore())

	_, err := d.ConfirmWallet(context.Background(), "ORD-missing")
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestSimulatedWalletGateway(t *testing.T) {
	t.Parallel()

	gw := NewSimulatedWalletGateway("https://shop.velora.test")

	payment, err := gw.CreatePayment(context.Background(), CreatePaymentRequest{
		AmountCents: 39679,
		OrderID:     "ORD-7",
		Phone:       "9876543210",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://shop.velora.test/wallet/pay/ORD-7", payment.PaymentURL)
	assert.Equal(t, "ORD-7", payment.TransactionID)

	status, err := gw.CheckStatus(context.Background(), "ORD-7")
	require.NoError(t, err)
	assert.True(t, status.Succeeded)
	assert.Equal(t, int64(39679), status.AmountCents)

	_, err = gw.CheckStatus(context.Background(), "ORD-8")
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}
