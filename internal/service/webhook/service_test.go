package webhook

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/donation-checkout/internal/model"
	"github.com/you-humble/donation-checkout/internal/service/mocks"
	"github.com/you-humble/donation-checkout/platform/logger"
)

var _ EventSender = (*mocks.MockEventSender)(nil)

func TestServiceHandle(t *testing.T) {
	t.Parallel()
	logger.SetNopLogger()

	tests := []struct {
		name    string
		body    string
		setup   func(s *mocks.MockEventSender)
		wantErr error
	}{
		{
			name: "publishes parsed event",
			body: `{"event":"order.paid","order":{"id":4711,"status":"paid"}}`,
			setup: func(s *mocks.MockEventSender) {
				s.On("SendProviderEvent", mock.Anything, mock.MatchedBy(func(e model.ProviderEvent) bool {
					return e.Type == "order.paid" && e.OrderID == "4711" && e.Payload["event"] == "order.paid"
				})).Return(nil).Once()
			},
		},
		{
			name: "top-level order id and unknown type",
			body: `{"order_id":"abc"}`,
			setup: func(s *mocks.MockEventSender) {
				s.On("SendProviderEvent", mock.Anything, mock.MatchedBy(func(e model.ProviderEvent) bool {
					return e.Type == "unknown" && e.OrderID == "abc"
				})).Return(nil).Once()
			},
		},
		{
			name:    "not json",
			body:    `order=1`,
			wantErr: model.ErrValidation,
		},
		{
			name:    "json array is rejected",
			body:    `[1,2]`,
			wantErr: model.ErrValidation,
		},
		{
			name: "publish failure",
			body: `{"event":"order.created"}`,
			setup: func(s *mocks.MockEventSender) {
				s.On("SendProviderEvent", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()
			},
			wantErr: errors.New("broker down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sender := &mocks.MockEventSender{}
			if tt.setup != nil {
				tt.setup(sender)
			}

			err := NewWebhookService(sender).Handle(context.Background(), []byte(tt.body))
			switch {
			case tt.wantErr == nil:
				require.NoError(t, err)
			case errors.Is(tt.wantErr, model.ErrValidation):
				require.ErrorIs(t, err, model.ErrValidation)
			default:
				require.ErrorContains(t, err, tt.wantErr.Error())
			}
			sender.AssertExpectations(t)
		})
	}
}

func TestServiceHandle_WithoutSender(t *testing.T) {
	t.Parallel()
	logger.SetNopLogger()

	err := NewWebhookService(nil).Handle(context.Background(), []byte(`{"event":"order.paid"}`))
	assert.NoError(t, err)
}
