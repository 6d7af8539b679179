package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/you-humble/donation-checkout/internal/model"
)

// MockCartPandaClient covers both order creation and lookup.
type MockCartPandaClient struct {
	mock.Mock
}

func (m *MockCartPandaClient) CreateOrder(ctx context.Context, doc model.OrderDocument) (model.CreatedOrder, error) {
	args := m.Called(ctx, doc)
	return args.Get(0).(model.CreatedOrder), args.Error(1)
}

func (m *MockCartPandaClient) GetOrder(ctx context.Context, orderID string) (model.OrderStatus, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(model.OrderStatus), args.Error(1)
}
