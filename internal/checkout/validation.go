package checkout

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/velora-shop/velora-backend/internal/payments"
	"github.com/velora-shop/velora-backend/internal/pricing"
	"github.com/velora-shop/velora-backend/pkg/types"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	zipPattern   = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
)

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}

func tooShort(value string, min int) bool {
	return len(strings.TrimSpace(value)) < min
}

// validateContact checks the step-one contact and address fields, returning
// one message per offending field.
func validateContact(c types.ContactInfo) map[string]string {
	errs := map[string]string{}

	if !emailPattern.MatchString(c.Email) {
		errs["email"] = "Please enter a valid email address"
	}
	if tooShort(c.FirstName, 2) {
		errs["first_name"] = "Please enter your first name"
	}
	if tooShort(c.LastName, 2) {
		errs["last_name"] = "Please enter your last name"
	}
	if tooShort(c.Address, 5) {
		errs["address"] = "Please enter a valid street address"
	}
	if tooShort(c.City, 2) {
		errs["city"] = "Please enter a valid city"
	}
	if tooShort(c.State, 2) {
		errs["state"] = "Please enter a valid state"
	}
	if !zipPattern.MatchString(c.ZipCode) {
		errs["zip_code"] = "Please enter a valid ZIP code"
	}
	if countDigits(c.Phone) < 10 {
		errs["phone"] = "Please enter a valid phone number"
	}
	if c.Country != "" && tooShort(c.Country, 2) {
		errs["country"] = "Please enter a valid country"
	}
	return errs
}

// validateShipping checks the step-two shipping selection.
func validateShipping(method pricing.ShippingMethod) map[string]string {
	errs := map[string]string{}
	if method == "" {
		errs["shipping_method"] = "Please select a shipping method"
	} else if !method.Valid() {
		errs["shipping_method"] = "Please select a valid shipping method"
	}
	return errs
}

// validatePayment checks the step-three payment selection. Wallet payments
// only need a normalizable phone; card payments need the full card fields.
func validatePayment(method payments.Method, card payments.CardDetails, phone string, now time.Time) map[string]string {
	errs := map[string]string{}

	switch method {
	case payments.MethodWallet:
		if _, err := payments.NormalizeWalletPhone(phone); err != nil {
			errs["phone"] = "Please enter a valid 10-digit phone number"
		}
	case payments.MethodCard:
		if !payments.ValidCardNumber(card.Number) {
			errs["card_number"] = "Please enter a valid card number"
		}
		if tooShort(card.HolderName, 3) {
			errs["card_name"] = "Please enter the cardholder name"
		}
		if !payments.ValidExpiry(card.Expiry, now) {
			errs["expiry_date"] = "Please enter a valid expiry date"
		}
		if !payments.ValidCVV(card.CVV) {
			errs["cvv"] = "Please enter a valid CVV"
		}
	default:
		errs["payment_method"] = "Please select a payment method"
	}
	return errs
}

// validateStep runs the validator for the session's current step.
func validateStep(s *session, now time.Time) map[string]string {
	switch s.step {
	case StepContact:
		return validateContact(s.contact)
	case StepShipping:
		return validateShipping(s.shipping)
	default:
		return validatePayment(s.payment, s.card, s.contact.Phone, now)
	}
}
