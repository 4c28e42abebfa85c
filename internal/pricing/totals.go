package pricing

import "time"

// OrderTotals is the full price breakdown for an order about to be placed.
type OrderTotals struct {
	SubtotalCents     int64     `json:"subtotal_cents"`
	ShippingCents     int64     `json:"shipping_cents"`
	TaxCents          int64     `json:"tax_cents"`
	TotalCents        int64     `json:"total_cents"`
	EstimatedDelivery time.Time `json:"estimated_delivery"`
}

// Totals composes the shipping quote, tax, and delivery estimate into one
// breakdown. Callers recompute it on every cart, method, or region change;
// nothing here is cached.
func Totals(subtotalCents int64, method ShippingMethod, region string, from time.Time) (OrderTotals, error) {
	quote, err := Quote(subtotalCents, method)
	if err != nil {
		return OrderTotals{}, err
	}
	delivery, err := DeliveryDate(method, from)
	if err != nil {
		return OrderTotals{}, err
	}

	tax := Tax(subtotalCents, region)
	return OrderTotals{
		SubtotalCents:     subtotalCents,
		ShippingCents:     quote.CostCents,
		TaxCents:          tax,
		TotalCents:        subtotalCents + quote.CostCents + tax,
		EstimatedDelivery: delivery,
	}, nil
}
