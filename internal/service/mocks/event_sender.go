package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/you-humble/donation-checkout/internal/model"
)

type MockEventSender struct {
	mock.Mock
}

func (m *MockEventSender) SendProviderEvent(ctx context.Context, event model.ProviderEvent) error {
	return m.Called(ctx, event).Error(0)
}
