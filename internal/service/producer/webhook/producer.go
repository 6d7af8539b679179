package whproducer

import (
	"context"
	"fmt"

	"github.com/you-humble/donation-checkout/internal/model"
	"github.com/you-humble/donation-checkout/platform/kafka"
)

const headerEventType = "event_type"

type Converter interface {
	ProviderEventToPayload(e model.ProviderEvent) ([]byte, error)
}

type service struct {
	producer kafka.Producer
	conv     Converter
}

func NewWebhookProducer(producer kafka.Producer, conv Converter) *service {
	return &service{producer: producer, conv: conv}
}

func (s *service) SendProviderEvent(ctx context.Context, event model.ProviderEvent) error {
	payload, err := s.conv.ProviderEventToPayload(event)
	if err != nil {
		return fmt.Errorf("converter provider_event_to_proto error: %w", err)
	}

	if err := s.producer.Send(ctx, event.ID[:], payload,
		kafka.StringHeader(headerEventType, event.Type),
	); err != nil {
		return fmt.Errorf("producer to webhook events topic error: %w", err)
	}

	return nil
}
