package donation

import (
	"strings"
	"time"

	"github.com/you-humble/donation-checkout/internal/model"
)

const (
	dummyBoletoBarcode = "00000000000000000000000000000000000000000000000"
	dummyBoletoLink    = "https://boleto.invalid/placeholder"
	boletoValidFor     = 72 * time.Hour
)

// validate returns req with its variant id in canonical form.
func validate(req model.DonationRequest) (model.DonationRequest, error) {
	if req.Amount.Sign() <= 0 {
		return req, model.NewValidationError("donationAmount", "donationAmount must be greater than zero")
	}
	if err := model.CheckAmountBounds(req.Amount); err != nil {
		return req, err
	}

	variantID, err := model.NormalizeVariantID(req.VariantID)
	if err != nil {
		return req, err
	}
	req.VariantID = variantID

	switch {
	case strings.TrimSpace(req.FullName) == "":
		return req, model.NewValidationError("fullName", "fullName is required")
	case strings.TrimSpace(req.Email) == "":
		return req, model.NewValidationError("email", "email is required")
	}
	return req, nil
}

// splitName keeps the first token as the first name and joins the rest.
func splitName(fullName string) (first, last string) {
	parts := strings.Fields(fullName)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

func normalizeCurrency(currency string, c model.CurrencyCase) string {
	currency = strings.TrimSpace(currency)
	if c == model.CurrencyLower {
		return strings.ToLower(currency)
	}
	return strings.ToUpper(currency)
}

func buildOrder(
	req model.DonationRequest,
	addr model.Address,
	settings model.CheckoutSettings,
	now time.Time,
) model.OrderDocument {
	first, last := splitName(req.FullName)

	return model.OrderDocument{
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		FirstName: first,
		LastName:  last,
		Currency:  normalizeCurrency(settings.Currency, settings.CurrencyCase),
		Subtotal:  req.Amount,
		Total:     req.Amount,
		LineItems: []model.LineItem{{
			VariantID: req.VariantID,
			Quantity:  1,
			Price:     req.Amount,
		}},
		Billing:  addr,
		Shipping: addr,
		Payment: model.Payment{
			Method:               model.PaymentMethodCreditCard,
			Amount:               req.Amount,
			BoletoBarcode:        dummyBoletoBarcode,
			BoletoLink:           dummyBoletoLink,
			BoletoExpirationDate: now.Add(boletoValidFor),
		},
		ReturnURL: settings.ReturnURL,
	}
}
