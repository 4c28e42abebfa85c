package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Flat per-region sales tax rates. Regions absent from the table fall back to
// the default rate.
var taxRates = map[string]decimal.Decimal{
	"CA": decimal.RequireFromString("0.0725"),
	"NY": decimal.RequireFromString("0.08"),
	"TX": decimal.RequireFromString("0.0625"),
	"FL": decimal.RequireFromString("0.06"),
	"IL": decimal.RequireFromString("0.0625"),
}

var defaultTaxRate = decimal.RequireFromString("0.08")

// TaxRate returns the flat rate for the region, case-insensitive.
func TaxRate(region string) decimal.Decimal {
	if rate, ok := taxRates[strings.ToUpper(strings.TrimSpace(region))]; ok {
		return rate
	}
	return defaultTaxRate
}

// Tax computes the sales tax on the subtotal, rounded to whole cents.
func Tax(subtotalCents int64, region string) int64 {
	return decimal.NewFromInt(subtotalCents).
		Mul(TaxRate(region)).
		Round(0).
		IntPart()
}
