package cartpanda

import (
	"bytes"
	"encoding/json"
	"fmt"
)

const boletoDateLayout = "2006-01-02"

type orderRequest struct {
	Email           string         `json:"email"`
	Phone           string         `json:"phone,omitempty"`
	Currency        string         `json:"currency"`
	SubtotalAmount  string         `json:"subtotal_amount"`
	TotalAmount     string         `json:"total_amount"`
	LineItems       []lineItem     `json:"line_items"`
	Customer        customer       `json:"customer"`
	BillingAddress  address        `json:"billing_address"`
	ShippingAddress address        `json:"shipping_address"`
	Payment         paymentDetails `json:"payment"`
	ReturnURL       string         `json:"return_url"`
}

type lineItem struct {
	VariantID json.Number `json:"variant_id"`
	Quantity  int         `json:"quantity"`
	Price     string      `json:"price"`
}

type customer struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
}

type address struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Phone        string `json:"phone,omitempty"`
	Address1     string `json:"address1"`
	City         string `json:"city"`
	Province     string `json:"province"`
	ProvinceCode string `json:"province_code"`
	Zip          string `json:"zip"`
	Country      string `json:"country"`
	CountryCode  string `json:"country_code"`
}

type paymentDetails struct {
	Method               string `json:"payment_method"`
	Amount               string `json:"amount"`
	BoletoBarcode        string `json:"boleto_barcode"`
	BoletoLink           string `json:"boleto_link"`
	BoletoExpirationDate string `json:"boleto_expiration_date"`
}

// flexString accepts a JSON string or number. The provider is not
// consistent about ids and status codes.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("flexString: %w", err)
	}
	*f = flexString(n.String())
	return nil
}

// v2 wraps the order in "order".
type v2Envelope struct {
	Order *struct {
		ID            flexString `json:"id"`
		CheckoutLink  string     `json:"checkout_link"`
		PaymentStatus flexString `json:"payment_status"`
	} `json:"order"`
	CheckoutLink string `json:"checkout_link"`
}

// v3 wraps the order in "data".
type v3Envelope struct {
	Data *struct {
		ID           flexString `json:"id"`
		CheckoutLink string     `json:"checkout_link"`
		Status       flexString `json:"status"`
	} `json:"data"`
	CheckoutLink string `json:"checkout_link"`
}
