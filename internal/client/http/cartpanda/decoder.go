package cartpanda

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/you-humble/donation-checkout/internal/model"
)

type decoder interface {
	ordersPath(shop string) string
	decodeCreated(body []byte) (model.CreatedOrder, error)
	decodeStatus(body []byte) (model.OrderStatus, error)
}

func decoderFor(version model.APIVersion) (decoder, error) {
	switch version {
	case model.APIVersionV2:
		return v2Decoder{}, nil
	case model.APIVersionV3:
		return v3Decoder{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownAPIVersion, version)
	}
}

type v2Decoder struct{}

func (v2Decoder) ordersPath(shop string) string {
	return "/" + url.PathEscape(shop) + "/order"
}

func (v2Decoder) decodeCreated(body []byte) (model.CreatedOrder, error) {
	var env v2Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return model.CreatedOrder{}, err
	}

	res := model.CreatedOrder{CheckoutLink: env.CheckoutLink}
	if env.Order != nil {
		res.ID = string(env.Order.ID)
		res.OrderCheckoutLink = env.Order.CheckoutLink
	}
	return res, nil
}

func (v2Decoder) decodeStatus(body []byte) (model.OrderStatus, error) {
	var env v2Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return model.OrderStatus{}, err
	}
	if env.Order == nil {
		return model.OrderStatus{}, model.ErrOrderNotFound
	}

	return model.OrderStatus{
		ID:        string(env.Order.ID),
		RawStatus: string(env.Order.PaymentStatus),
	}, nil
}

type v3Decoder struct{}

func (v3Decoder) ordersPath(shop string) string {
	return "/v3/" + url.PathEscape(shop) + "/order"
}

func (v3Decoder) decodeCreated(body []byte) (model.CreatedOrder, error) {
	var env v3Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return model.CreatedOrder{}, err
	}

	res := model.CreatedOrder{CheckoutLink: env.CheckoutLink}
	if env.Data != nil {
		res.ID = string(env.Data.ID)
		res.OrderCheckoutLink = env.Data.CheckoutLink
	}
	return res, nil
}

func (v3Decoder) decodeStatus(body []byte) (model.OrderStatus, error) {
	var env v3Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return model.OrderStatus{}, err
	}
	if env.Data == nil {
		return model.OrderStatus{}, model.ErrOrderNotFound
	}

	return model.OrderStatus{
		ID:        string(env.Data.ID),
		RawStatus: string(env.Data.Status),
	}, nil
}
