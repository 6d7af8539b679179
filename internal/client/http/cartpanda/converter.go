package cartpanda

import (
	"encoding/json"

	"github.com/you-humble/donation-checkout/internal/model"
)

func orderDocumentToRequest(doc model.OrderDocument) orderRequest {
	items := make([]lineItem, len(doc.LineItems))
	for i, li := range doc.LineItems {
		items[i] = lineItem{
			VariantID: json.Number(li.VariantID),
			Quantity:  li.Quantity,
			Price:     li.Price.StringFixed(2),
		}
	}

	return orderRequest{
		Email:          doc.Email,
		Phone:          doc.Phone,
		Currency:       doc.Currency,
		SubtotalAmount: doc.Subtotal.StringFixed(2),
		TotalAmount:    doc.Total.StringFixed(2),
		LineItems:      items,
		Customer: customer{
			FirstName: doc.FirstName,
			LastName:  doc.LastName,
			Email:     doc.Email,
			Phone:     doc.Phone,
		},
		BillingAddress:  addressToDTO(doc, doc.Billing),
		ShippingAddress: addressToDTO(doc, doc.Shipping),
		Payment: paymentDetails{
			Method:               string(doc.Payment.Method),
			Amount:               doc.Payment.Amount.StringFixed(2),
			BoletoBarcode:        doc.Payment.BoletoBarcode,
			BoletoLink:           doc.Payment.BoletoLink,
			BoletoExpirationDate: doc.Payment.BoletoExpirationDate.Format(boletoDateLayout),
		},
		ReturnURL: doc.ReturnURL,
	}
}

func addressToDTO(doc model.OrderDocument, a model.Address) address {
	return address{
		FirstName:    doc.FirstName,
		LastName:     doc.LastName,
		Phone:        doc.Phone,
		Address1:     a.Street,
		City:         a.City,
		Province:     a.Region,
		ProvinceCode: a.RegionCode,
		Zip:          a.PostalCode,
		Country:      a.Country,
		CountryCode:  a.CountryCode,
	}
}
