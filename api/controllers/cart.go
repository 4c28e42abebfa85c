package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/velora-shop/velora-backend/api/responses"
	"github.com/velora-shop/velora-backend/api/validators"
	"github.com/velora-shop/velora-backend/internal/cart"
	"github.com/velora-shop/velora-backend/internal/catalog"
	"github.com/velora-shop/velora-backend/internal/pricing"
	pkgerrors "github.com/velora-shop/velora-backend/pkg/errors"
	"github.com/velora-shop/velora-backend/pkg/logger"
	"github.com/velora-shop/velora-backend/pkg/types"
)

type addItemRequest struct {
	ProductID int64         `json:"product_id" validate:"required,gt=0"`
	Quantity  int           `json:"quantity" validate:"required,gt=0"`
	Variant   types.Variant `json:"variant"`
}

type setQuantityRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

type cartView struct {
	Items              []cart.LineItem `json:"items"`
	SubtotalCents      int64           `json:"subtotal_cents"`
	Count              int             `json:"count"`
	NotificationActive bool            `json:"notification_active"`
}

func newCartView(store *cart.Store) cartView {
	return cartView{
		Items:              store.Items(),
		SubtotalCents:      store.TotalCents(),
		Count:              store.Count(),
		NotificationActive: store.NotificationActive(),
	}
}

// CartFetch serves the current cart contents and running subtotal.
func CartFetch(store *cart.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart unavailable"))
			return
		}
		responses.WriteSuccess(w, newCartView(store))
	}
}

// CartAddItem resolves the product in the catalog and merges it into the
// cart, bumping quantity when the same product and variant already exist.
func CartAddItem(store *cart.Store, catalogSvc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil || catalogSvc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart unavailable"))
			return
		}

		var payload addItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, _, err := catalogSvc.GetProduct(r.Context(), payload.ProductID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if !product.InStock {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeConflict, "product is out of stock"))
			return
		}

		line, err := store.AddItem(r.Context(), cart.ProductRef{
			ProductID:      product.ID,
			Name:           product.Name,
			UnitPriceCents: product.PriceCents,
			ImageURL:       product.ImageURL,
		}, payload.Quantity, payload.Variant)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]any{
			"line": line,
			"cart": newCartView(store),
		})
	}
}

// CartSetQuantity replaces a line's quantity; zero removes the line.
func CartSetQuantity(store *cart.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart unavailable"))
			return
		}

		lineID, err := uuid.Parse(chi.URLParam(r, "lineId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "line id must be a valid uuid"))
			return
		}

		var payload setQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := store.SetQuantity(r.Context(), lineID, payload.Quantity); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartView(store))
	}
}

// CartRemoveItem drops a line from the cart.
func CartRemoveItem(store *cart.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart unavailable"))
			return
		}

		lineID, err := uuid.Parse(chi.URLParam(r, "lineId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "line id must be a valid uuid"))
			return
		}

		if err := store.RemoveItem(r.Context(), lineID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartView(store))
	}
}

// CartClear empties the cart.
func CartClear(store *cart.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart unavailable"))
			return
		}

		if err := store.Clear(r.Context()); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartView(store))
	}
}

// ShippingOptions quotes every shipping tier against the current subtotal.
func ShippingOptions(store *cart.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart unavailable"))
			return
		}
		subtotal := store.TotalCents()
		responses.WriteSuccess(w, map[string]any{
			"subtotal_cents": subtotal,
			"methods":        pricing.Methods(subtotal),
		})
	}
}
