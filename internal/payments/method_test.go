package payments

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/velora-shop/velora-backend/pkg/errors"
)

func TestValidCardNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		number string
		want   bool
	}{
		{name: "sixteen digits", number: "4242424242424242", want: true},
		{name: "spaces are ignored", number: "4242 4242 4242 4242", want: true},
		{name: "thirteen digits accepted", number: "4222222222222", want: true},
		{name: "nineteen digits accepted", number: "4242424242424242424", want: true},
		{name: "too short", number: "424242424242", want: false},
		{name: "too long", number: "42424242424242424242", want: false},
		{name: "letters rejected", number: "4242abcd42424242", want: false},
		{name: "empty", number: "", want: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ValidCardNumber(tc.number))
		})
	}
}

func TestValidCVV(t *testing.T) {
	t.Parallel()

	assert.True(t, ValidCVV("123"))
	assert.True(t, ValidCVV("1234"))
	assert.False(t, ValidCVV("12"))
	assert.False(t, ValidCVV("12345"))
	assert.False(t, ValidCVV("12a"))
}

func TestValidExpiry(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		expiry string
		want   bool
	}{
		{name: "future year", expiry: "01/27", want: true},
		{name: "current month", expiry: "06/26", want: true},
		{name: "later month same year", expiry: "12/26", want: true},
		{name: "previous month same year", expiry: "05/26", want: false},
		{name: "previous year", expiry: "12/25", want: false},
		{name: "month zero", expiry: "00/27", want: false},
		{name: "month thirteen", expiry: "13/27", want: false},
		{name: "missing slash", expiry: "0627", want: false},
		{name: "empty", expiry: "", want: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ValidExpiry(tc.expiry, now))
		})
	}
}

func TestNormalizeWalletPhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		phone   string
		want    string
		wantErr bool
	}{
		{name: "plain ten digits", phone: "9876543210", want: "9876543210"},
		{name: "formatted input", phone: "(987) 654-3210", want: "9876543210"},
		{name: "country code stripped", phone: "919876543210", want: "9876543210"},
		{name: "plus country code stripped", phone: "+91 98765 43210", want: "9876543210"},
		{name: "nine digits rejected", phone: "987654321", wantErr: true},
		{name: "eleven digits rejected", phone: "19876543210", wantErr: true},
		{name: "twelve digits without country code rejected", phone: "129876543210", wantErr: true},
		{name: "empty rejected", phone: "", wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := NormalizeWalletPhone(tc.phone)
			if tc.wantErr {
				require.Error(t, err)
				assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCardDetailsLast4(t *testing.T) {
	t.Parallel()

	card := CardDetails{Number: "4242 4242 4242 4242"}
	assert.Equal(t, "4242", card.Last4())

	assert.Equal(t, "123", CardDetails{Number: "123"}.Last4())
}
