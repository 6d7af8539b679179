package donation

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/you-humble/donation-checkout/internal/model"
	"github.com/you-humble/donation-checkout/platform/logger"
)

type AddressResolver interface {
	Resolve(ctx context.Context, req model.DonationRequest) model.Address
}

type OrderDispatcher interface {
	CreateOrder(ctx context.Context, doc model.OrderDocument) (model.CreatedOrder, error)
}

type service struct {
	resolver   AddressResolver
	dispatcher OrderDispatcher
	settings   model.CheckoutSettings
	timeout    time.Duration
	now        func() time.Time
}

func NewDonationService(
	resolver AddressResolver,
	dispatcher OrderDispatcher,
	settings model.CheckoutSettings,
	timeout time.Duration,
) *service {
	return &service{
		resolver:   resolver,
		dispatcher: dispatcher,
		settings:   settings,
		timeout:    timeout,
		now:        time.Now,
	}
}

func (svc *service) CreateCheckout(ctx context.Context, req model.DonationRequest) (model.CheckoutResult, error) {
	const op = "donation.service.CreateCheckout"

	req, err := validate(req)
	if err != nil {
		logger.Info(ctx, "invalid donation", logger.ErrorF(err))
		return model.CheckoutResult{}, fmt.Errorf("%s: %w", op, err)
	}

	log := logger.With(
		logger.String("variant_id", req.VariantID),
		logger.String("amount", req.Amount.StringFixed(2)),
	)

	if svc.settings.TestMode {
		log.Warn(ctx, "test mode overrides variant and amount",
			logger.String("test_variant_id", svc.settings.TestVariantID),
			logger.String("test_amount", svc.settings.TestAmount.String()),
		)
		req.VariantID = svc.settings.TestVariantID
		req.Amount = svc.settings.TestAmount
	}

	addr := svc.resolver.Resolve(ctx, req)
	doc := buildOrder(req, addr, svc.settings, svc.now())

	ctx, cancel := context.WithTimeout(ctx, svc.timeout)
	defer cancel()

	created, err := svc.dispatcher.CreateOrder(ctx, doc)
	if err != nil {
		log.Error(ctx, "create provider order", logger.ErrorF(err))
		return model.CheckoutResult{}, fmt.Errorf("%s: %w", op, err)
	}

	checkoutURL, err := resolveCheckoutURL(created, svc.settings.ShopSlug)
	if err != nil {
		log.Error(ctx, "resolve checkout url", logger.String("order_id", created.ID), logger.ErrorF(err))
		return model.CheckoutResult{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info(ctx, "checkout created", logger.String("order_id", created.ID))

	return model.CheckoutResult{URL: checkoutURL, OrderID: created.ID}, nil
}

// resolveCheckoutURL prefers the order-level link, then the top-level link,
// then a link built from the order id.
func resolveCheckoutURL(created model.CreatedOrder, shop string) (string, error) {
	switch {
	case created.OrderCheckoutLink != "":
		return created.OrderCheckoutLink, nil
	case created.CheckoutLink != "":
		return created.CheckoutLink, nil
	case created.ID != "" && shop != "":
		return fmt.Sprintf("https://%s.mycartpanda.com/checkout?order_id=%s",
			shop, url.QueryEscape(created.ID)), nil
	default:
		return "", model.ErrCheckoutURLMissing
	}
}
