package payments

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	pkgerrors "github.com/velora-shop/velora-backend/pkg/errors"
)

// Method identifies how the customer pays.
type Method string

const (
	// MethodCard is an inline card payment collected at step three.
	MethodCard Method = "card"
	// MethodWallet is a redirect-based wallet payment (UPI style).
	MethodWallet Method = "wallet"
)

func (m Method) Valid() bool {
	return m == MethodCard || m == MethodWallet
}

// CardDetails are the raw card fields collected at checkout. They are
// validated and reduced to a masked summary before any order leaves the
// dispatcher; the struct itself is never serialized.
type CardDetails struct {
	Number     string `json:"-"`
	HolderName string `json:"-"`
	Expiry     string `json:"-"`
	CVV        string `json:"-"`
}

// Last4 returns the trailing four digits of the card number.
func (c CardDetails) Last4() string {
	cleaned := digitsOnly(c.Number)
	if len(cleaned) < 4 {
		return cleaned
	}
	return cleaned[len(cleaned)-4:]
}

var (
	cardNumberPattern = regexp.MustCompile(`^\d{13,19}$`)
	cvvPattern        = regexp.MustCompile(`^\d{3,4}$`)
	nonDigitPattern   = regexp.MustCompile(`\D`)
)

func digitsOnly(s string) string {
	return nonDigitPattern.ReplaceAllString(s, "")
}

// ValidCardNumber reports whether the number is 13 to 19 digits once
// spaces are removed.
func ValidCardNumber(number string) bool {
	return cardNumberPattern.MatchString(strings.ReplaceAll(number, " ", ""))
}

// ValidCVV reports whether the security code is 3 or 4 digits.
func ValidCVV(cvv string) bool {
	return cvvPattern.MatchString(cvv)
}

// ValidExpiry reports whether an MM/YY expiry parses and is not in the
// past relative to now's month and year.
func ValidExpiry(expiry string, now time.Time) bool {
	parts := strings.Split(expiry, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return false
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return false
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return false
	}

	currentYear := now.Year() % 100
	currentMonth := int(now.Month())
	if year < currentYear {
		return false
	}
	if year == currentYear && month < currentMonth {
		return false
	}
	return true
}

// NormalizeWalletPhone reduces a phone number to the ten digits wallet
// gateways expect, stripping the country code when it is present as a
// "91" prefix on a twelve-digit number.
func NormalizeWalletPhone(phone string) (string, error) {
	cleaned := digitsOnly(phone)
	if len(cleaned) == 12 && strings.HasPrefix(cleaned, "91") {
		cleaned = cleaned[2:]
	}
	if len(cleaned) != 10 {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "phone number must be 10 digits for wallet payments")
	}
	return cleaned, nil
}
