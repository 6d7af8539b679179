package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type (
	PaymentMethod string
	APIVersion    string
	CurrencyCase  string
)

const PaymentMethodCreditCard PaymentMethod = "credit_card"

const (
	APIVersionV2 APIVersion = "v2"
	APIVersionV3 APIVersion = "v3"
)

const (
	CurrencyUpper CurrencyCase = "upper"
	CurrencyLower CurrencyCase = "lower"
)

func (v APIVersion) Valid() bool {
	return v == APIVersionV2 || v == APIVersionV3
}

// OrderDocument is the order sent to the checkout provider.
type OrderDocument struct {
	Email     string
	Phone     string
	FirstName string
	LastName  string
	Currency  string
	Subtotal  decimal.Decimal
	Total     decimal.Decimal
	LineItems []LineItem
	Billing   Address
	Shipping  Address
	Payment   Payment
	ReturnURL string
}

type LineItem struct {
	VariantID string
	Quantity  int
	Price     decimal.Decimal
}

// Payment holds the method plus boleto fields the provider validates
// even for card payments. The boleto values never work.
type Payment struct {
	Method               PaymentMethod
	Amount               decimal.Decimal
	BoletoBarcode        string
	BoletoLink           string
	BoletoExpirationDate time.Time
}

// CreatedOrder is the provider's answer to an order creation, normalized
// across API versions.
type CreatedOrder struct {
	ID                string
	OrderCheckoutLink string
	CheckoutLink      string
}

type OrderStatus struct {
	ID        string
	RawStatus string
	Paid      bool
}

// CheckoutSettings is the immutable per-deployment configuration of the
// order builder and dispatcher.
type CheckoutSettings struct {
	ShopSlug       string
	Currency       string
	CurrencyCase   CurrencyCase
	DefaultCountry string
	ReturnURL      string
	TestMode       bool
	TestVariantID  string
	TestAmount     decimal.Decimal
}
