package envconfig

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/shopspring/decimal"

	"github.com/you-humble/donation-checkout/internal/model"
)

type checkoutEnv struct {
	Currency        string `env:"CHECKOUT_CURRENCY" envDefault:"EUR"`
	CurrencyCase    string `env:"CURRENCY_CASE" envDefault:"upper"`
	DefaultCountry  string `env:"DEFAULT_COUNTRY" envDefault:"NL"`
	AddressStrategy string `env:"ADDRESS_STRATEGY" envDefault:"static"`
	ReturnURL       string `env:"CHECKOUT_RETURN_URL,required"`
	SuccessPageURL  string `env:"SUCCESS_PAGE_URL,required"`
	ErrorPageURL    string `env:"ERROR_PAGE_URL,required"`

	TestMode      bool   `env:"TEST_MODE" envDefault:"false"`
	TestVariantID string `env:"TEST_VARIANT_ID"`
	TestAmount    string `env:"TEST_AMOUNT" envDefault:"1.00"`
}

type checkout struct {
	raw        checkoutEnv
	testAmount decimal.Decimal
}

func NewCheckoutConfig() (*checkout, error) {
	var raw checkoutEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}

	if !model.AddressStrategy(raw.AddressStrategy).Valid() {
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownStrategy, raw.AddressStrategy)
	}

	switch model.CurrencyCase(raw.CurrencyCase) {
	case model.CurrencyUpper, model.CurrencyLower:
	default:
		return nil, fmt.Errorf("unknown currency case %q", raw.CurrencyCase)
	}

	testAmount, err := model.ParseAmount(raw.TestAmount)
	if err != nil {
		return nil, fmt.Errorf("TEST_AMOUNT: %w", err)
	}
	if testAmount.Sign() <= 0 {
		return nil, fmt.Errorf("TEST_AMOUNT must be greater than zero")
	}

	if raw.TestMode {
		if raw.TestVariantID == "" {
			return nil, fmt.Errorf("TEST_VARIANT_ID is required when TEST_MODE is on")
		}
		if raw.TestVariantID, err = model.NormalizeVariantID(raw.TestVariantID); err != nil {
			return nil, fmt.Errorf("TEST_VARIANT_ID: %w", err)
		}
	}

	raw.DefaultCountry = strings.ToUpper(strings.TrimSpace(raw.DefaultCountry))

	return &checkout{raw: raw, testAmount: testAmount}, nil
}

func (cfg *checkout) Settings(shopSlug string) model.CheckoutSettings {
	return model.CheckoutSettings{
		ShopSlug:       shopSlug,
		Currency:       cfg.raw.Currency,
		CurrencyCase:   model.CurrencyCase(cfg.raw.CurrencyCase),
		DefaultCountry: cfg.raw.DefaultCountry,
		ReturnURL:      cfg.raw.ReturnURL,
		TestMode:       cfg.raw.TestMode,
		TestVariantID:  cfg.raw.TestVariantID,
		TestAmount:     cfg.testAmount,
	}
}

func (cfg *checkout) AddressStrategy() model.AddressStrategy {
	return model.AddressStrategy(cfg.raw.AddressStrategy)
}

func (cfg *checkout) SuccessPageURL() string { return cfg.raw.SuccessPageURL }
func (cfg *checkout) ErrorPageURL() string   { return cfg.raw.ErrorPageURL }
