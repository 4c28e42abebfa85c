package checkout

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/velora-shop/velora-backend/internal/cart"
	"github.com/velora-shop/velora-backend/internal/payments"
	"github.com/velora-shop/velora-backend/internal/pricing"
	pkgerrors "github.com/velora-shop/velora-backend/pkg/errors"
	"github.com/velora-shop/velora-backend/pkg/logger"
	"github.com/velora-shop/velora-backend/pkg/types"
)

// cartStore is the cart surface the checkout machine consumes.
type cartStore interface {
	Items() []cart.LineItem
	TotalCents() int64
	IsEmpty() bool
	Clear(ctx context.Context) error
}

// dispatcher executes the payment strategy for a finalized checkout and
// redeems parked wallet redirects once the gateway confirms.
type dispatcher interface {
	Dispatch(ctx context.Context, order payments.Order) (payments.Result, error)
	ConfirmWallet(ctx context.Context, orderID string) (payments.Result, error)
}

// Service drives checkout sessions through the three wizard steps and into
// order submission. Sessions live in memory for the life of the process,
// like the cart they are built over.
type Service struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*session
	cart     cartStore
	dispatch dispatcher
	logg     *logger.Logger
	now      func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(cartStore cartStore, dispatch dispatcher, logg *logger.Logger, opts ...Option) (*Service, error) {
	if cartStore == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "cart store required")
	}
	if dispatch == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "payment dispatcher required")
	}

	s := &Service{
		sessions: map[uuid.UUID]*session{},
		cart:     cartStore,
		dispatch: dispatch,
		logg:     logg,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Start opens a checkout session over the current cart. An empty cart
// cannot enter checkout.
func (s *Service) Start(ctx context.Context) (View, error) {
	if s.cart.IsEmpty() {
		return View{}, pkgerrors.New(pkgerrors.CodeStateConflict, "cart is empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess := &session{
		id:       uuid.New(),
		status:   StatusActive,
		step:     StepContact,
		shipping: pricing.MethodStandard,
		// Wallet is the preselected payment method, matching the storefront.
		payment:   payments.MethodWallet,
		createdAt: s.now(),
	}
	s.sessions[sess.id] = sess

	if s.logg != nil {
		s.logg.Info(s.logg.WithSessionID(ctx, sess.id.String()), "checkout.session_started")
	}
	return s.viewLocked(sess)
}

// Get returns the session with freshly computed totals.
func (s *Service) Get(ctx context.Context, sessionID uuid.UUID) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.activeLocked(sessionID)
	if err != nil {
		return View{}, err
	}
	if sess.status != StatusActive && sess.result != nil {
		return s.viewWithTotals(sess, sess.result.TotalCents)
	}
	return s.viewLocked(sess)
}

// SetContact stores the step-one fields. Values are accepted as-is; they
// are judged when the customer advances.
func (s *Service) SetContact(ctx context.Context, sessionID uuid.UUID, contact types.ContactInfo) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.activeLocked(sessionID)
	if err != nil {
		return View{}, err
	}
	sess.contact = contact
	sess.fieldErrors = nil
	return s.viewLocked(sess)
}

// SetShippingMethod stores the step-two selection.
func (s *Service) SetShippingMethod(ctx context.Context, sessionID uuid.UUID, method pricing.ShippingMethod) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.activeLocked(sessionID)
	if err != nil {
		return View{}, err
	}
	sess.shipping = method
	sess.fieldErrors = nil
	return s.viewLocked(sess)
}

// SetPaymentMethod stores the step-three selection and, for cards, the
// card fields.
func (s *Service) SetPaymentMethod(ctx context.Context, sessionID uuid.UUID, method payments.Method, card payments.CardDetails) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.activeLocked(sessionID)
	if err != nil {
		return View{}, err
	}
	sess.payment = method
	sess.card = card
	sess.fieldErrors = nil
	return s.viewLocked(sess)
}

// Advance validates the current step and moves the wizard forward. On
// validation failure the session stays put and the view carries one message
// per offending field.
func (s *Service) Advance(ctx context.Context, sessionID uuid.UUID) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.activeLocked(sessionID)
	if err != nil {
		return View{}, err
	}

	if errs := validateStep(sess, s.now()); len(errs) > 0 {
		sess.fieldErrors = errs
		view, verr := s.viewLocked(sess)
		if verr != nil {
			return View{}, verr
		}
		return view, pkgerrors.New(pkgerrors.CodeValidation, "please correct the highlighted fields")
	}
	sess.fieldErrors = nil

	if sess.step < StepPayment {
		sess.step++
	}
	return s.viewLocked(sess)
}

// Back moves the wizard one step toward the contact step. Validation never
// blocks going backwards; entered values are kept.
func (s *Service) Back(ctx context.Context, sessionID uuid.UUID) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.activeLocked(sessionID)
	if err != nil {
		return View{}, err
	}
	if sess.step == StepContact {
		return View{}, pkgerrors.New(pkgerrors.CodeStateConflict, "already at the first step")
	}
	sess.step--
	sess.fieldErrors = nil
	return s.viewLocked(sess)
}

// Submit finalizes the session: it re-validates the payment step, prices
// the live cart and dispatches. A card failure or a wallet fallback leaves
// the session on the payment step so the customer can retry.
func (s *Service) Submit(ctx context.Context, sessionID uuid.UUID) (View, error) {
	s.mu.Lock()
	sess, err := s.activeLocked(sessionID)
	if err != nil {
		s.mu.Unlock()
		return View{}, err
	}
	if sess.inFlight {
		s.mu.Unlock()
		return View{}, pkgerrors.New(pkgerrors.CodeConflict, "order submission already in progress")
	}
	if sess.status != StatusActive {
		s.mu.Unlock()
		return View{}, pkgerrors.New(pkgerrors.CodeStateConflict, "checkout session is already finalized")
	}
	if sess.step != StepPayment {
		s.mu.Unlock()
		return View{}, pkgerrors.New(pkgerrors.CodeStateConflict, "checkout is not on the payment step")
	}

	if errs := validatePayment(sess.payment, sess.card, sess.contact.Phone, s.now()); len(errs) > 0 {
		sess.fieldErrors = errs
		view, verr := s.viewLocked(sess)
		s.mu.Unlock()
		if verr != nil {
			return View{}, verr
		}
		return view, pkgerrors.New(pkgerrors.CodeValidation, "please correct the highlighted fields")
	}
	sess.fieldErrors = nil
	sess.inFlight = true

	order := payments.Order{
		Contact:        sess.contact,
		Items:          s.cart.Items(),
		ShippingMethod: sess.shipping,
		Method:         sess.payment,
		Card:           sess.card,
	}
	s.mu.Unlock()

	result, dispatchErr := s.dispatch.Dispatch(ctx, order)

	s.mu.Lock()
	defer s.mu.Unlock()
	sess.inFlight = false

	if dispatchErr != nil {
		if sess.payment == payments.MethodWallet {
			// Wallet initialization failed; drop the customer back on the
			// payment step with card preselected instead of dead-ending.
			sess.payment = payments.MethodCard
			sess.card = payments.CardDetails{}
			if s.logg != nil {
				s.logg.Warn(s.logg.WithSessionID(ctx, sess.id.String()), "checkout.wallet_fallback_to_card")
			}
			return View{}, pkgerrors.Wrap(pkgerrors.CodeDependency, dispatchErr, "wallet payment failed, please try card payment")
		}
		return View{}, pkgerrors.Wrap(pkgerrors.CodeDependency, dispatchErr, "order submission failed")
	}

	sess.result = &result
	sess.card = payments.CardDetails{}

	if !result.Completed {
		// Wallet redirect opened. The cart survives until the gateway
		// confirms out of band.
		sess.status = StatusAwaitingPayment
		return s.viewWithTotals(sess, result.TotalCents)
	}

	sess.status = StatusCompleted
	if err := s.cart.Clear(ctx); err != nil {
		// The order is placed either way; an unclearable cart is loud but
		// not fatal.
		if s.logg != nil {
			s.logg.Error(ctx, "checkout.cart_clear_failed", err)
		}
	}
	if s.logg != nil {
		s.logg.Info(s.logg.WithOrderID(ctx, result.OrderID), "checkout.order_placed")
	}
	return s.viewWithTotals(sess, result.TotalCents)
}

// ConfirmWalletOrder redeems a wallet redirect once the customer returns
// from the gateway. The session id is not required: the customer may come
// back in a fresh tab, so the parked order id is the handle. Any session
// awaiting this order is finalized and the cart is cleared.
func (s *Service) ConfirmWalletOrder(ctx context.Context, orderID string) (payments.Result, error) {
	result, err := s.dispatch.ConfirmWallet(ctx, orderID)
	if err != nil {
		return payments.Result{}, err
	}

	s.mu.Lock()
	for _, sess := range s.sessions {
		if sess.status == StatusAwaitingPayment && sess.result != nil && sess.result.OrderID == orderID {
			sess.status = StatusCompleted
			sess.result = &result
		}
	}
	s.mu.Unlock()

	if err := s.cart.Clear(ctx); err != nil {
		if s.logg != nil {
			s.logg.Error(ctx, "checkout.cart_clear_failed", err)
		}
	}
	if s.logg != nil {
		s.logg.Info(s.logg.WithOrderID(ctx, result.OrderID), "checkout.wallet_order_placed")
	}
	return result, nil
}

// Abandon discards a session without submitting.
func (s *Service) Abandon(ctx context.Context, sessionID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return pkgerrors.New(pkgerrors.CodeNotFound, "checkout session not found")
	}
	delete(s.sessions, sessionID)
	return nil
}

// activeLocked resolves a session that can still be acted on, aborting it
// when the cart has emptied underneath it.
func (s *Service) activeLocked(sessionID uuid.UUID) (*session, error) {
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "checkout session not found")
	}
	if sess.status == StatusActive && s.cart.IsEmpty() {
		delete(s.sessions, sessionID)
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "cart is empty")
	}
	return sess, nil
}

// viewLocked renders the session with totals priced off the live cart.
func (s *Service) viewLocked(sess *session) (View, error) {
	totals, err := pricing.Totals(s.cart.TotalCents(), sess.shipping, sess.contact.State, s.now())
	if err != nil {
		// An unknown shipping method still renders; the view prices at
		// standard shipping until a valid method is selected.
		totals, err = pricing.Totals(s.cart.TotalCents(), pricing.MethodStandard, sess.contact.State, s.now())
		if err != nil {
			return View{}, err
		}
	}
	return sess.view(totals, len(s.cart.Items())), nil
}

// viewWithTotals renders a terminal session against the totals that were
// actually dispatched, since the cart may already be cleared.
func (s *Service) viewWithTotals(sess *session, totalCents int64) (View, error) {
	view := sess.view(pricing.OrderTotals{TotalCents: totalCents}, 0)
	if sess.result != nil {
		view.Totals.EstimatedDelivery = sess.result.EstimatedDelivery
	}
	return view, nil
}
