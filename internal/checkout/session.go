package checkout

import (
	"time"

	"github.com/google/uuid"

	"github.com/velora-shop/velora-backend/internal/payments"
	"github.com/velora-shop/velora-backend/internal/pricing"
	"github.com/velora-shop/velora-backend/pkg/types"
)

// Step is the checkout wizard position.
type Step int

const (
	// StepContact collects email, name and shipping address.
	StepContact Step = 1
	// StepShipping selects the shipping method.
	StepShipping Step = 2
	// StepPayment selects the payment method and, for cards, its details.
	StepPayment Step = 3
)

func (s Step) Valid() bool {
	return s >= StepContact && s <= StepPayment
}

// Status is the lifecycle state of a checkout session.
type Status string

const (
	// StatusActive means the customer is still moving through the steps.
	StatusActive Status = "active"
	// StatusAwaitingPayment means a wallet redirect was opened and the
	// session is parked until the gateway confirms out of band.
	StatusAwaitingPayment Status = "awaiting_payment"
	// StatusCompleted means an order was accepted and the cart cleared.
	StatusCompleted Status = "completed"
)

// session is the internal mutable state for one checkout attempt. Card
// details live only here and are dropped once the session ends.
type session struct {
	id          uuid.UUID
	status      Status
	step        Step
	contact     types.ContactInfo
	shipping    pricing.ShippingMethod
	payment     payments.Method
	card        payments.CardDetails
	fieldErrors map[string]string
	inFlight    bool
	result      *payments.Result
	createdAt   time.Time
}

// View is the session snapshot returned to callers. Card details are never
// echoed back; only live totals and the wizard position are.
type View struct {
	ID             uuid.UUID           `json:"id"`
	Status         Status              `json:"status"`
	Step           Step                `json:"step"`
	Contact        types.ContactInfo   `json:"contact"`
	ShippingMethod string              `json:"shipping_method"`
	PaymentMethod  string              `json:"payment_method"`
	FieldErrors    map[string]string   `json:"field_errors,omitempty"`
	ItemCount      int                 `json:"item_count"`
	Totals         pricing.OrderTotals `json:"totals"`
	Result         *payments.Result    `json:"result,omitempty"`
}

func (s *session) view(totals pricing.OrderTotals, itemCount int) View {
	v := View{
		ID:             s.id,
		Status:         s.status,
		Step:           s.step,
		Contact:        s.contact,
		ShippingMethod: string(s.shipping),
		PaymentMethod:  string(s.payment),
		ItemCount:      itemCount,
		Totals:         totals,
		Result:         s.result,
	}
	if len(s.fieldErrors) > 0 {
		v.FieldErrors = make(map[string]string, len(s.fieldErrors))
		for k, msg := range s.fieldErrors {
			v.FieldErrors[k] = msg
		}
	}
	return v
}
