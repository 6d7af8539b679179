package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/you-humble/donation-checkout/internal/model"
)

type MockGeoLocator struct {
	mock.Mock
}

func (m *MockGeoLocator) Lookup(ctx context.Context, ip string) (model.GeoLocation, error) {
	args := m.Called(ctx, ip)
	return args.Get(0).(model.GeoLocation), args.Error(1)
}
