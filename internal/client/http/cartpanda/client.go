package cartpanda

import (
	"context"
	"fmt"
	"net/url"

	"github.com/go-resty/resty/v2"

	"github.com/you-humble/donation-checkout/internal/model"
	"github.com/you-humble/donation-checkout/platform/logger"
)

const maxLoggedBody = 512

type client struct {
	http *resty.Client
	shop string
	dec  decoder
}

// NewClient expects http to carry the base URL, bearer token and timeout.
func NewClient(http *resty.Client, shop string, version model.APIVersion) (*client, error) {
	dec, err := decoderFor(version)
	if err != nil {
		return nil, err
	}

	return &client{http: http, shop: shop, dec: dec}, nil
}

func (c *client) CreateOrder(ctx context.Context, doc model.OrderDocument) (model.CreatedOrder, error) {
	const op = "cartpanda.client.CreateOrder"

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetBody(orderDocumentToRequest(doc)).
		Post(c.dec.ordersPath(c.shop))
	if err != nil {
		return model.CreatedOrder{}, fmt.Errorf("%s: %w: %w", op, model.ErrBadGateway, err)
	}

	if !resp.IsSuccess() {
		logger.Warn(ctx, "cartpanda rejected order",
			logger.Int("status", resp.StatusCode()),
			logger.String("body", truncate(resp.Body())),
		)
		return model.CreatedOrder{}, fmt.Errorf("%s: status %d: %w", op, resp.StatusCode(), model.ErrBadGateway)
	}

	created, err := c.dec.decodeCreated(resp.Body())
	if err != nil {
		return model.CreatedOrder{}, fmt.Errorf("%s: decode: %w: %w", op, model.ErrBadGateway, err)
	}

	return created, nil
}

func (c *client) GetOrder(ctx context.Context, orderID string) (model.OrderStatus, error) {
	const op = "cartpanda.client.GetOrder"

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(c.dec.ordersPath(c.shop) + "/" + url.PathEscape(orderID))
	if err != nil {
		return model.OrderStatus{}, fmt.Errorf("%s: %w: %w", op, model.ErrBadGateway, err)
	}

	if !resp.IsSuccess() {
		logger.Warn(ctx, "cartpanda order lookup failed",
			logger.String("order_id", orderID),
			logger.Int("status", resp.StatusCode()),
		)
		return model.OrderStatus{}, fmt.Errorf("%s: status %d: %w", op, resp.StatusCode(), model.ErrBadGateway)
	}

	status, err := c.dec.decodeStatus(resp.Body())
	if err != nil {
		return model.OrderStatus{}, fmt.Errorf("%s: decode: %w", op, err)
	}

	return status, nil
}

func truncate(b []byte) string {
	if len(b) > maxLoggedBody {
		return string(b[:maxLoggedBody]) + "..."
	}
	return string(b)
}
