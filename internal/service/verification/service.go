package verification

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/you-humble/donation-checkout/internal/model"
	"github.com/you-humble/donation-checkout/platform/logger"
)

const (
	v3PaidStatus = "paid"
	maxStatusLen = 16
)

var v2PaidStatus = decimal.NewFromInt(3)

type OrderFetcher interface {
	GetOrder(ctx context.Context, orderID string) (model.OrderStatus, error)
}

type service struct {
	fetcher OrderFetcher
	version model.APIVersion
	timeout time.Duration
}

func NewVerificationService(fetcher OrderFetcher, version model.APIVersion, timeout time.Duration) *service {
	return &service{fetcher: fetcher, version: version, timeout: timeout}
}

// IsPaid reports whether the provider marks the order paid. Any lookup
// failure is reported alongside false.
func (svc *service) IsPaid(ctx context.Context, orderID string) (bool, error) {
	const op = "verification.service.IsPaid"
	log := logger.With(logger.String("order_id", orderID))

	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return false, fmt.Errorf("%s: %w", op, model.NewValidationError("order_id", "order_id is required"))
	}

	ctx, cancel := context.WithTimeout(ctx, svc.timeout)
	defer cancel()

	status, err := svc.fetcher.GetOrder(ctx, orderID)
	if err != nil {
		log.Error(ctx, "fetch order", logger.ErrorF(err))
		return false, fmt.Errorf("%s: %w", op, err)
	}

	paid := isPaidStatus(svc.version, status.RawStatus)
	log.Info(ctx, "order status checked",
		logger.String("raw_status", status.RawStatus),
		logger.Bool("paid", paid),
	)

	return paid, nil
}

func isPaidStatus(version model.APIVersion, raw string) bool {
	raw = strings.TrimSpace(raw)
	switch version {
	case model.APIVersionV2:
		return isNumericPaid(raw)
	case model.APIVersionV3:
		return strings.EqualFold(raw, v3PaidStatus) || isNumericPaid(raw)
	default:
		return false
	}
}

// isNumericPaid matches "3" in any plain decimal spelling, such as "3.0".
func isNumericPaid(raw string) bool {
	if raw == "" || len(raw) > maxStatusLen || strings.ContainsAny(raw, "eE") {
		return false
	}
	status, err := decimal.NewFromString(raw)
	if err != nil {
		return false
	}
	return status.Equal(v2PaidStatus)
}
