package types

import "strings"

// Variant is a buyer-selected option combination for a product.
// The zero value means "no options chosen" and is a valid selection.
type Variant struct {
	Color string `json:"color,omitempty"`
	Size  string `json:"size,omitempty"`
}

func (v Variant) IsZero() bool {
	return v == Variant{}
}

// Label renders the selection for order line display, e.g. "Black / M".
func (v Variant) Label() string {
	parts := make([]string, 0, 2)
	if v.Color != "" {
		parts = append(parts, v.Color)
	}
	if v.Size != "" {
		parts = append(parts, v.Size)
	}
	return strings.Join(parts, " / ")
}
