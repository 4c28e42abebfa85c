package pricing

import (
	"time"

	pkgerrors "github.com/velora-shop/velora-backend/pkg/errors"
)

// ShippingMethod enumerates the carrier tiers offered at checkout.
type ShippingMethod string

const (
	MethodStandard  ShippingMethod = "standard"
	MethodExpress   ShippingMethod = "express"
	MethodOvernight ShippingMethod = "overnight"
)

type shippingRate struct {
	Name               string
	BaseCostCents      int64
	FreeThresholdCents *int64 // nil means the method is never free
	MinBusinessDays    int
	MaxBusinessDays    int
	Description        string
}

var shippingRates = map[ShippingMethod]shippingRate{
	MethodStandard: {
		Name:               "Standard Shipping",
		BaseCostCents:      999,
		FreeThresholdCents: centsPtr(5000),
		MinBusinessDays:    5,
		MaxBusinessDays:    7,
		Description:        "Standard shipping with tracking",
	},
	MethodExpress: {
		Name:               "Express Shipping",
		BaseCostCents:      1500,
		FreeThresholdCents: centsPtr(10000),
		MinBusinessDays:    2,
		MaxBusinessDays:    3,
		Description:        "Fast express delivery",
	},
	MethodOvernight: {
		Name:            "Overnight Shipping",
		BaseCostCents:   2500,
		MinBusinessDays: 1,
		MaxBusinessDays: 1,
		Description:     "Next business day delivery",
	},
}

// Valid reports whether the method is one of the offered tiers.
func (m ShippingMethod) Valid() bool {
	_, ok := shippingRates[m]
	return ok
}

// ShippingQuote is the priced outcome of a method at a given subtotal.
type ShippingQuote struct {
	Method             ShippingMethod `json:"method"`
	Name               string         `json:"name"`
	Description        string         `json:"description"`
	CostCents          int64          `json:"cost_cents"`
	Free               bool           `json:"free"`
	FreeThresholdCents *int64         `json:"free_threshold_cents,omitempty"`
	MinBusinessDays    int            `json:"min_business_days"`
	MaxBusinessDays    int            `json:"max_business_days"`
}

// Quote prices the method against the subtotal. Cost drops to zero only when
// the method carries a free threshold and the subtotal meets it.
func Quote(subtotalCents int64, method ShippingMethod) (ShippingQuote, error) {
	rate, ok := shippingRates[method]
	if !ok {
		return ShippingQuote{}, pkgerrors.New(pkgerrors.CodeValidation, "unknown shipping method")
	}

	quote := ShippingQuote{
		Method:             method,
		Name:               rate.Name,
		Description:        rate.Description,
		CostCents:          rate.BaseCostCents,
		FreeThresholdCents: copyCentsPtr(rate.FreeThresholdCents),
		MinBusinessDays:    rate.MinBusinessDays,
		MaxBusinessDays:    rate.MaxBusinessDays,
	}
	if rate.FreeThresholdCents != nil && subtotalCents >= *rate.FreeThresholdCents {
		quote.CostCents = 0
		quote.Free = true
	}
	return quote, nil
}

// Methods quotes every offered tier at the given subtotal, cheapest tier first.
func Methods(subtotalCents int64) []ShippingQuote {
	ordered := []ShippingMethod{MethodStandard, MethodExpress, MethodOvernight}
	quotes := make([]ShippingQuote, 0, len(ordered))
	for _, method := range ordered {
		quote, err := Quote(subtotalCents, method)
		if err != nil {
			continue
		}
		quotes = append(quotes, quote)
	}
	return quotes
}

// DeliveryDate walks forward from the given date one calendar day at a time,
// consuming only Mondays through Fridays, until the method's minimum business
// day count has elapsed.
func DeliveryDate(method ShippingMethod, from time.Time) (time.Time, error) {
	rate, ok := shippingRates[method]
	if !ok {
		return time.Time{}, pkgerrors.New(pkgerrors.CodeValidation, "unknown shipping method")
	}

	date := from
	remaining := rate.MinBusinessDays
	for remaining > 0 {
		date = date.AddDate(0, 0, 1)
		if wd := date.Weekday(); wd != time.Saturday && wd != time.Sunday {
			remaining--
		}
	}
	return date, nil
}

func centsPtr(value int64) *int64 {
	return &value
}

func copyCentsPtr(src *int64) *int64 {
	if src == nil {
		return nil
	}
	val := *src
	return &val
}
