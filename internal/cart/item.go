package cart

import (
	"github.com/google/uuid"

	"github.com/velora-shop/velora-backend/pkg/types"
)

// ProductRef carries the product fields a cart line snapshots at add time.
type ProductRef struct {
	ProductID      int64  `json:"product_id"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	ImageURL       string `json:"image_url"`
}

// LineItem is one cart entry for a product+variant combination.
type LineItem struct {
	ID             uuid.UUID     `json:"id"`
	ProductID      int64         `json:"product_id"`
	Name           string        `json:"name"`
	UnitPriceCents int64         `json:"unit_price_cents"`
	ImageURL       string        `json:"image_url"`
	Quantity       int           `json:"quantity"`
	Variant        types.Variant `json:"variant"`
}

// LineTotalCents is the extended price of the line.
func (li LineItem) LineTotalCents() int64 {
	return li.UnitPriceCents * int64(li.Quantity)
}

func (li LineItem) matches(productID int64, variant types.Variant) bool {
	return li.ProductID == productID && li.Variant == variant
}
