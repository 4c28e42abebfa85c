package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/velora-shop/velora-backend/api/responses"
	"github.com/velora-shop/velora-backend/api/validators"
	"github.com/velora-shop/velora-backend/internal/catalog"
	pkgerrors "github.com/velora-shop/velora-backend/pkg/errors"
	"github.com/velora-shop/velora-backend/pkg/logger"
)

// ListProducts serves the shop grid with filtering and sorting.
func ListProducts(svc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		minPrice, err := validators.ParseQueryCents(r, "min_price_cents")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		maxPrice, err := validators.ParseQueryCents(r, "max_price_cents")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		filters := catalog.Filters{
			Category:      r.URL.Query().Get("category"),
			MinPriceCents: minPrice,
			MaxPriceCents: maxPrice,
			Search:        r.URL.Query().Get("search"),
			SortBy:        r.URL.Query().Get("sort"),
		}

		products, err := svc.ListProducts(r.Context(), filters)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"products": products, "count": len(products)})
	}
}

// GetProduct serves one product with up to four related picks.
func GetProduct(svc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		id, err := validators.ParseProductID(chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, related, err := svc.GetProduct(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"product": product, "related_products": related})
	}
}

// ListProductReviews serves the review feed for one product.
func ListProductReviews(svc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		id, err := validators.ParseProductID(chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		reviews, err := svc.ListReviews(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"reviews": reviews})
	}
}

// FeaturedProducts serves the home page shelves.
func FeaturedProducts(svc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		trending, bestSellers, err := svc.Featured(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"trending": trending, "best_sellers": bestSellers})
	}
}
