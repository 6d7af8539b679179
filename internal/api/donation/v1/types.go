// Package donationv1 holds the JSON wire types of the public donation API.
package donationv1

import (
	"bytes"
	"encoding/json"
	"errors"
)

var errNotScalar = errors.New("expected a string or a number")

type CreateDonationOrderRequest struct {
	DonationAmount Scalar `json:"donationAmount"`
	VariantID      Scalar `json:"variantId"`
	FullName       string `json:"fullName"`
	Email          string `json:"email"`
	Phone          string `json:"phone,omitempty"`
	Country        string `json:"country,omitempty"`
}

type CreateDonationOrderResponse struct {
	CheckoutURL string `json:"checkoutUrl"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

// Scalar is a form value that browsers send either quoted or bare.
type Scalar string

func (s *Scalar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0, bytes.Equal(data, []byte("null")):
		*s = ""
		return nil
	case data[0] == '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = Scalar(v)
		return nil
	case data[0] == '-' || (data[0] >= '0' && data[0] <= '9'):
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*s = Scalar(n.String())
		return nil
	default:
		return errNotScalar
	}
}
