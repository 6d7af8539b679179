package converter

import (
	donationv1 "github.com/you-humble/donation-checkout/internal/api/donation/v1"
	"github.com/you-humble/donation-checkout/internal/model"
)

// CreateDonationOrderRequestToModel bounds the amount and canonicalizes the
// variant id before anything downstream logs or formats them.
func CreateDonationOrderRequestToModel(
	req *donationv1.CreateDonationOrderRequest,
	clientIP string,
) (model.DonationRequest, error) {
	amount, err := model.ParseAmount(string(req.DonationAmount))
	if err != nil {
		return model.DonationRequest{}, err
	}

	variantID, err := model.NormalizeVariantID(string(req.VariantID))
	if err != nil {
		return model.DonationRequest{}, err
	}

	return model.DonationRequest{
		FullName:  req.FullName,
		Email:     req.Email,
		Amount:    amount,
		VariantID: variantID,
		Phone:     req.Phone,
		Country:   req.Country,
		ClientIP:  clientIP,
	}, nil
}

func CheckoutResultToResponse(res model.CheckoutResult) *donationv1.CreateDonationOrderResponse {
	return &donationv1.CreateDonationOrderResponse{CheckoutURL: res.URL}
}
