package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/velora-shop/velora-backend/api/responses"
	"github.com/velora-shop/velora-backend/internal/orders"
	pkgerrors "github.com/velora-shop/velora-backend/pkg/errors"
	"github.com/velora-shop/velora-backend/pkg/logger"
)

// ListOrders serves the customer's order history.
func ListOrders(svc *orders.HistoryService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		list, err := svc.ListOrders(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"orders": list})
	}
}

// TrackOrder resolves a tracking number to shipment progress.
func TrackOrder(svc *orders.HistoryService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		info, err := svc.Track(r.Context(), chi.URLParam(r, "trackingNumber"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, info)
	}
}
