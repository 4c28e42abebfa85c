package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/velora-shop/velora-backend/api/responses"
	"github.com/velora-shop/velora-backend/api/validators"
	"github.com/velora-shop/velora-backend/internal/checkout"
	"github.com/velora-shop/velora-backend/internal/payments"
	"github.com/velora-shop/velora-backend/internal/pricing"
	pkgerrors "github.com/velora-shop/velora-backend/pkg/errors"
	"github.com/velora-shop/velora-backend/pkg/logger"
	"github.com/velora-shop/velora-backend/pkg/types"
)

type contactRequest struct {
	Email     string `json:"email" validate:"required"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Address   string `json:"address" validate:"required"`
	City      string `json:"city" validate:"required"`
	State     string `json:"state" validate:"required"`
	ZipCode   string `json:"zip_code" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	Country   string `json:"country"`
}

func (req contactRequest) contact() types.ContactInfo {
	return types.ContactInfo{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Address:   req.Address,
		City:      req.City,
		State:     req.State,
		ZipCode:   req.ZipCode,
		Phone:     req.Phone,
		Country:   req.Country,
	}
}

type shippingRequest struct {
	Method string `json:"method" validate:"required,oneof=standard express overnight"`
}

type cardRequest struct {
	Number     string `json:"number"`
	HolderName string `json:"holder_name"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
}

type paymentRequest struct {
	Method string      `json:"method" validate:"required,oneof=card wallet"`
	Card   cardRequest `json:"card"`
}

type confirmWalletRequest struct {
	OrderID string `json:"order_id" validate:"required"`
}

func sessionIDFromPath(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "sessionId"))
	if err != nil {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, "session id must be a valid uuid")
	}
	return id, nil
}

// withFieldErrors copies the session's per-field messages onto a validation
// error so the client can highlight the offending inputs.
func withFieldErrors(err error, view checkout.View) error {
	typed := pkgerrors.As(err)
	if typed != nil && typed.Code() == pkgerrors.CodeValidation && len(view.FieldErrors) > 0 {
		return typed.WithDetails(view.FieldErrors)
	}
	return err
}

// CheckoutStart opens a checkout session over the current cart.
func CheckoutStart(svc *checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		view, err := svc.Start(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, view)
	}
}

// CheckoutFetch serves the session with freshly priced totals.
func CheckoutFetch(svc *checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		id, err := sessionIDFromPath(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// CheckoutSetContact stores the step-one contact and address fields.
func CheckoutSetContact(svc *checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		id, err := sessionIDFromPath(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload contactRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.SetContact(r.Context(), id, payload.contact())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// CheckoutSetShipping stores the step-two shipping selection.
func CheckoutSetShipping(svc *checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		id, err := sessionIDFromPath(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload shippingRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.SetShippingMethod(r.Context(), id, pricing.ShippingMethod(payload.Method))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// CheckoutSetPayment stores the step-three payment selection.
func CheckoutSetPayment(svc *checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		id, err := sessionIDFromPath(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload paymentRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.SetPaymentMethod(r.Context(), id, payments.Method(payload.Method), payments.CardDetails{
			Number:     payload.Card.Number,
			HolderName: payload.Card.HolderName,
			Expiry:     payload.Card.Expiry,
			CVV:        payload.Card.CVV,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// CheckoutAdvance validates the current step and moves forward.
func CheckoutAdvance(svc *checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		id, err := sessionIDFromPath(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.Advance(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, withFieldErrors(err, view))
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// CheckoutBack moves one step toward the contact step.
func CheckoutBack(svc *checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		id, err := sessionIDFromPath(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.Back(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// CheckoutSubmit finalizes the session and dispatches payment.
func CheckoutSubmit(svc *checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		id, err := sessionIDFromPath(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := svc.Submit(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, withFieldErrors(err, view))
			return
		}
		responses.WriteSuccess(w, view)
	}
}

// CheckoutConfirmWallet redeems a wallet redirect after the customer
// returns from the gateway.
func CheckoutConfirmWallet(svc *checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		var payload confirmWalletRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.ConfirmWalletOrder(r.Context(), payload.OrderID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// CheckoutAbandon discards a session without submitting.
func CheckoutAbandon(svc *checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		id, err := sessionIDFromPath(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Abandon(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "abandoned"})
	}
}
