package model

import (
	"errors"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// maxAmountLen bounds the raw input before it reaches the decimal parser.
	maxAmountLen = 32
	// maxIntegerDigits is the digit count of MaxDonationAmount.
	maxIntegerDigits = 7
	amountDecimals   = 2
)

// MaxDonationAmount is the largest amount accepted for a single donation.
var MaxDonationAmount = decimal.NewFromInt(1_000_000)

// ParseAmount accepts plain decimal notation with at most two fractional
// digits, up to MaxDonationAmount. The sign is left to the caller.
func ParseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	switch {
	case raw == "":
		return decimal.Zero, NewValidationError("donationAmount", "donationAmount is required")
	case len(raw) > maxAmountLen:
		return decimal.Zero, NewValidationError("donationAmount", "donationAmount is too long")
	case strings.ContainsAny(raw, "eE"):
		return decimal.Zero, NewValidationError("donationAmount", "donationAmount must be a plain decimal number")
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, NewValidationError("donationAmount", "donationAmount must be a number")
	}

	if err := CheckAmountBounds(amount); err != nil {
		return decimal.Zero, err
	}
	return amount, nil
}

// CheckAmountBounds rejects sub-cent precision and amounts above the maximum.
// Magnitude and scale are checked on the exponent first, so a value such as
// 1e200000000 is refused without being expanded.
func CheckAmountBounds(amount decimal.Decimal) error {
	if amount.Sign() > 0 && amount.NumDigits()+int(amount.Exponent()) > maxIntegerDigits {
		return NewValidationError("donationAmount", "donationAmount must not exceed "+MaxDonationAmount.String())
	}
	if amount.Exponent() < -maxAmountLen || !amount.Equal(amount.Round(amountDecimals)) {
		return NewValidationError("donationAmount", "donationAmount must have at most two decimal places")
	}
	if amount.GreaterThan(MaxDonationAmount) {
		return NewValidationError("donationAmount", "donationAmount must not exceed "+MaxDonationAmount.String())
	}
	return nil
}

// NormalizeVariantID returns the canonical decimal form of a numeric
// variant id, so "0123" becomes "123".
func NormalizeVariantID(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", NewValidationError("variantId", "variantId is required")
	}

	n, err := strconv.ParseUint(raw, 10, 64)
	switch {
	case errors.Is(err, strconv.ErrRange):
		return "", NewValidationError("variantId", "variantId is out of range")
	case err != nil:
		return "", NewValidationError("variantId", "variantId must be numeric")
	case n == 0:
		return "", NewValidationError("variantId", "variantId must be greater than zero")
	}

	return strconv.FormatUint(n, 10), nil
}
