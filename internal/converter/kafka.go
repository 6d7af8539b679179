package converter

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/you-humble/donation-checkout/internal/model"
)

const (
	fieldEventID    = "event_id"
	fieldType       = "type"
	fieldOrderID    = "order_id"
	fieldReceivedAt = "received_at"
	fieldPayload    = "payload"
)

type kafkaConverter struct{}

func NewKafkaConverter() *kafkaConverter { return &kafkaConverter{} }

func (c *kafkaConverter) ProviderEventToPayload(e model.ProviderEvent) ([]byte, error) {
	payload, err := structpb.NewStruct(e.Payload)
	if err != nil {
		return nil, fmt.Errorf("failed to convert webhook payload: %w", err)
	}

	pb := &structpb.Struct{Fields: map[string]*structpb.Value{
		fieldEventID:    structpb.NewStringValue(e.ID.String()),
		fieldType:       structpb.NewStringValue(e.Type),
		fieldOrderID:    structpb.NewStringValue(e.OrderID),
		fieldReceivedAt: structpb.NewStringValue(e.ReceivedAt.UTC().Format(time.RFC3339Nano)),
		fieldPayload:    structpb.NewStructValue(payload),
	}}

	data, err := proto.Marshal(pb)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal protobuf: %w", err)
	}

	return data, nil
}

func (c *kafkaConverter) PayloadToProviderEvent(data []byte) (model.ProviderEvent, error) {
	var pb structpb.Struct
	if err := proto.Unmarshal(data, &pb); err != nil {
		return model.ProviderEvent{}, fmt.Errorf("failed to unmarshal protobuf: %w", err)
	}

	fields := pb.GetFields()

	id, err := uuid.Parse(fields[fieldEventID].GetStringValue())
	if err != nil {
		return model.ProviderEvent{}, fmt.Errorf("event id: %w", err)
	}

	receivedAt, err := time.Parse(time.RFC3339Nano, fields[fieldReceivedAt].GetStringValue())
	if err != nil {
		return model.ProviderEvent{}, fmt.Errorf("received at: %w", err)
	}

	return model.ProviderEvent{
		ID:         id,
		Type:       fields[fieldType].GetStringValue(),
		OrderID:    fields[fieldOrderID].GetStringValue(),
		ReceivedAt: receivedAt,
		Payload:    fields[fieldPayload].GetStructValue().AsMap(),
	}, nil
}
