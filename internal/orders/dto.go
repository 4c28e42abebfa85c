package orders

import (
	"time"

	"github.com/velora-shop/velora-backend/pkg/types"
)

// LineItem is a purchased line as recorded on a submitted order.
type LineItem struct {
	ProductID      int64         `json:"product_id"`
	Name           string        `json:"name"`
	Variant        types.Variant `json:"variant"`
	Quantity       int           `json:"quantity"`
	UnitPriceCents int64         `json:"unit_price_cents"`
}

// PaymentSummary is the payment record attached to an order. For card
// payments only the last four digits and the holder name are retained;
// the full number, expiry and CVV never leave the dispatcher.
type PaymentSummary struct {
	Method        string `json:"method"`
	CardLast4     string `json:"card_last4,omitempty"`
	CardHolder    string `json:"card_holder,omitempty"`
	TransactionID string `json:"transaction_id,omitempty"`
}

// Payload is the full order submission handed to the order processor.
type Payload struct {
	Contact           types.ContactInfo `json:"contact"`
	ShippingMethod    string            `json:"shipping_method"`
	Payment           PaymentSummary    `json:"payment"`
	Items             []LineItem        `json:"items"`
	SubtotalCents     int64             `json:"subtotal_cents"`
	ShippingCents     int64             `json:"shipping_cents"`
	TaxCents          int64             `json:"tax_cents"`
	TotalCents        int64             `json:"total_cents"`
	EstimatedDelivery time.Time         `json:"estimated_delivery"`
}

// Receipt is returned by the processor once an order is accepted.
type Receipt struct {
	OrderID           string    `json:"order_id"`
	TrackingNumber    string    `json:"tracking_number"`
	EstimatedDelivery time.Time `json:"estimated_delivery"`
}
