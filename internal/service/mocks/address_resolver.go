package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/you-humble/donation-checkout/internal/model"
)

type MockAddressResolver struct {
	mock.Mock
}

func (m *MockAddressResolver) Resolve(ctx context.Context, req model.DonationRequest) model.Address {
	args := m.Called(ctx, req)
	return args.Get(0).(model.Address)
}
