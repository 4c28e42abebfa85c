package catalog

import (
	"context"
	"sort"
	"strings"
	"time"

	pkgerrors "github.com/velora-shop/velora-backend/pkg/errors"
)

// Sort orders accepted by ListProducts.
const (
	SortPriceLowHigh = "price-low-high"
	SortPriceHighLow = "price-high-low"
	SortNewest       = "newest"
)

const maxRelatedProducts = 4

// Filters narrows a product listing.
type Filters struct {
	Category      string
	MinPriceCents *int64
	MaxPriceCents *int64
	Search        string
	SortBy        string
}

// Service serves the static catalog the storefront browses. Reads simulate
// backend latency, matching the mock API this replaces.
type Service struct {
	products []Product
	reviews  []Review
	latency  time.Duration
}

// NewService builds the catalog around the seed fixtures.
func NewService(latency time.Duration) *Service {
	return &Service{
		products: seedProducts,
		reviews:  seedReviews,
		latency:  latency,
	}
}

// ListProducts applies the filters and sort order to the catalog.
func (s *Service) ListProducts(ctx context.Context, filters Filters) ([]Product, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	out := make([]Product, 0, len(s.products))
	query := strings.ToLower(strings.TrimSpace(filters.Search))
	for _, p := range s.products {
		if filters.Category != "" && filters.Category != "All" && p.Category != filters.Category {
			continue
		}
		if filters.MinPriceCents != nil && p.PriceCents < *filters.MinPriceCents {
			continue
		}
		if filters.MaxPriceCents != nil && p.PriceCents > *filters.MaxPriceCents {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		out = append(out, p)
	}

	switch filters.SortBy {
	case SortPriceLowHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].PriceCents < out[j].PriceCents })
	case SortPriceHighLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].PriceCents > out[j].PriceCents })
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	}

	return out, nil
}

// GetProduct returns the product and up to four related entries from the same category.
func (s *Service) GetProduct(ctx context.Context, id int64) (Product, []Product, error) {
	if err := s.wait(ctx); err != nil {
		return Product{}, nil, err
	}

	var found *Product
	for i := range s.products {
		if s.products[i].ID == id {
			found = &s.products[i]
			break
		}
	}
	if found == nil {
		return Product{}, nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}

	related := make([]Product, 0, maxRelatedProducts)
	for _, p := range s.products {
		if p.Category == found.Category && p.ID != found.ID {
			related = append(related, p)
			if len(related) == maxRelatedProducts {
				break
			}
		}
	}
	return *found, related, nil
}

// ListReviews returns the reviews recorded for the product.
func (s *Service) ListReviews(ctx context.Context, productID int64) ([]Review, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	out := make([]Review, 0)
	for _, r := range s.reviews {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out, nil
}

// Featured splits the catalog into its trending and best-seller shelves.
func (s *Service) Featured(ctx context.Context) (trending, bestSellers []Product, err error) {
	if err := s.wait(ctx); err != nil {
		return nil, nil, err
	}

	for _, p := range s.products {
		if p.Trending {
			trending = append(trending, p)
		}
		if p.BestSeller {
			bestSellers = append(bestSellers, p)
		}
	}
	return trending, bestSellers, nil
}

func (s *Service) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return nil
	}
	select {
	case <-time.After(s.latency):
		return nil
	case <-ctx.Done():
		return pkgerrors.Wrap(pkgerrors.CodeDependency, ctx.Err(), "catalog read cancelled")
	}
}
