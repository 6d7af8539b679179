package converter

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/donation-checkout/internal/model"
)

func TestKafkaConverter_ProviderEvent(t *testing.T) {
	t.Parallel()

	conv := NewKafkaConverter()
	in := model.ProviderEvent{
		ID:         uuid.New(),
		Type:       "order.paid",
		OrderID:    "4711",
		ReceivedAt: time.Date(2026, 5, 4, 10, 11, 12, 0, time.UTC),
		Payload: map[string]any{
			"event": "order.paid",
			"order": map[string]any{"id": float64(4711), "tags": []any{"a", "b"}},
		},
	}

	data, err := conv.ProviderEventToPayload(in)
	require.NoError(t, err)

	out, err := conv.PayloadToProviderEvent(data)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestKafkaConverter_UnsupportedPayload(t *testing.T) {
	t.Parallel()

	_, err := NewKafkaConverter().ProviderEventToPayload(model.ProviderEvent{
		Payload: map[string]any{"ch": make(chan int)},
	})
	require.Error(t, err)
}
