package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/you-humble/donation-checkout/internal/model"
	"github.com/you-humble/donation-checkout/platform/logger"
)

type EventSender interface {
	SendProviderEvent(ctx context.Context, event model.ProviderEvent) error
}

type service struct {
	sender EventSender
	now    func() time.Time
}

// NewWebhookService takes a nil sender when publishing is disabled; events
// are then only logged.
func NewWebhookService(sender EventSender) *service {
	return &service{sender: sender, now: time.Now}
}

func (svc *service) Handle(ctx context.Context, body []byte) error {
	const op = "webhook.service.Handle"

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil || payload == nil {
		logger.Warn(ctx, "webhook body is not a JSON object", logger.Int("body_bytes", len(body)))
		return fmt.Errorf("%s: %w", op, model.NewValidationError("body", "webhook body must be a JSON object"))
	}

	event := model.ProviderEvent{
		ID:         uuid.New(),
		Type:       eventType(payload),
		OrderID:    orderID(payload),
		ReceivedAt: svc.now(),
		Payload:    payload,
	}

	log := logger.With(
		logger.String("event_id", event.ID.String()),
		logger.String("event_type", event.Type),
		logger.String("order_id", event.OrderID),
	)
	log.Info(ctx, "cartpanda webhook received", logger.Any("payload", payload))

	if svc.sender == nil {
		return nil
	}

	if err := svc.sender.SendProviderEvent(ctx, event); err != nil {
		log.Error(ctx, "publish webhook event", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func eventType(payload map[string]any) string {
	for _, key := range []string{"event", "type", "topic"} {
		if s, ok := payload[key].(string); ok && s != "" {
			return s
		}
	}
	return "unknown"
}

func orderID(payload map[string]any) string {
	if order, ok := payload["order"].(map[string]any); ok {
		if id := scalarString(order["id"]); id != "" {
			return id
		}
	}
	return scalarString(payload["order_id"])
}

func scalarString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}
