package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	donationv1 "github.com/you-humble/donation-checkout/internal/api/donation/v1"
	"github.com/you-humble/donation-checkout/internal/model"
)

func TestCreateDonationOrderRequestToModel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		amount        donationv1.Scalar
		variant       donationv1.Scalar
		wantAmount    string
		wantVariant   string
		wantErrField  string
		wantErrSubstr string
	}{
		{name: "decimal string", amount: "12.50", variant: " 123 ", wantAmount: "12.5", wantVariant: "123"},
		{name: "padded", amount: " 7 ", variant: "123", wantAmount: "7", wantVariant: "123"},
		{name: "trailing zeros past cents", amount: "10.500", variant: "123", wantAmount: "10.5", wantVariant: "123"},
		{name: "maximum", amount: "1000000.00", variant: "123", wantAmount: "1000000", wantVariant: "123"},
		{name: "negative left to service", amount: "-5", variant: "123", wantAmount: "-5", wantVariant: "123"},
		{name: "leading zeros in variant", amount: "5", variant: "0123", wantAmount: "5", wantVariant: "123"},
		{name: "missing", amount: "", variant: "123", wantErrField: "donationAmount", wantErrSubstr: "required"},
		{name: "not a number", amount: "ten", variant: "123", wantErrField: "donationAmount", wantErrSubstr: "number"},
		{name: "exponent", amount: "1e5", variant: "123", wantErrField: "donationAmount", wantErrSubstr: "plain decimal"},
		{name: "huge exponent", amount: "1e200000000", variant: "123", wantErrField: "donationAmount", wantErrSubstr: "plain decimal"},
		{name: "upper case exponent", amount: "2E3", variant: "123", wantErrField: "donationAmount", wantErrSubstr: "plain decimal"},
		{name: "sub cent", amount: "0.004", variant: "123", wantErrField: "donationAmount", wantErrSubstr: "two decimal"},
		{name: "three decimals", amount: "12.345", variant: "123", wantErrField: "donationAmount", wantErrSubstr: "two decimal"},
		{name: "above maximum", amount: "99999999999", variant: "123", wantErrField: "donationAmount", wantErrSubstr: "exceed"},
		{name: "overlong", amount: "1000000000000000000000000000000000", variant: "123", wantErrField: "donationAmount", wantErrSubstr: "too long"},
		{name: "missing variant", amount: "5", variant: " ", wantErrField: "variantId", wantErrSubstr: "required"},
		{name: "non-numeric variant", amount: "5", variant: "12a", wantErrField: "variantId", wantErrSubstr: "numeric"},
		{name: "signed variant", amount: "5", variant: "-12", wantErrField: "variantId", wantErrSubstr: "numeric"},
		{name: "zero variant", amount: "5", variant: "000", wantErrField: "variantId", wantErrSubstr: "greater than zero"},
		{name: "variant overflow", amount: "5", variant: "18446744073709551616", wantErrField: "variantId", wantErrSubstr: "out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := CreateDonationOrderRequestToModel(&donationv1.CreateDonationOrderRequest{
				DonationAmount: tt.amount,
				VariantID:      tt.variant,
				FullName:       "Jan de Vries",
				Email:          "jan@example.org",
			}, "203.0.113.7")

			if tt.wantErrField != "" {
				require.ErrorIs(t, err, model.ErrValidation)
				var verr *model.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tt.wantErrField, verr.Field)
				assert.Contains(t, verr.Message, tt.wantErrSubstr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAmount, got.Amount.String())
			assert.Equal(t, tt.wantVariant, got.VariantID)
			assert.Equal(t, "203.0.113.7", got.ClientIP)
		})
	}
}
