package model

import "github.com/shopspring/decimal"

type DonationRequest struct {
	FullName  string
	Email     string
	Amount    decimal.Decimal
	VariantID string
	Phone     string
	// ISO 3166-1 alpha-2, optional.
	Country  string
	ClientIP string
}

type CheckoutResult struct {
	URL     string
	OrderID string
}
