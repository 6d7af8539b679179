package address

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

var _ GeoLocator = (*mocks.MockGeoLocator)(nil)

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()
	logger.SetNopLogger()

	type testCase struct {
		name     string
		strategy model.AddressStrategy
		req      model.DonationRequest
		setup    func(geo *mocks.MockGeoLocator)
		assert   func(t *testing.T, got model.Address, geo *mocks.MockGeoLocator)
	}

	tests := []testCase{
		{
			name:     "static uses placeholders and default country",
			strategy: model.AddressStrategyStatic,
			req:      model.DonationRequest{Country: "DE"},
			assert: func(t *testing.T, got model.Address, geo *mocks.MockGeoLocator) {
				require.Equal(t, model.Address{
					Street:      "N/A",
					City:        "N/A",
					Region:      "N/A",
					RegionCode:  "N/A",
					PostalCode:  "N/A",
					Country:     "Netherlands",
					CountryCode: "NL",
				}, got)
				geo.AssertNotCalled(t, "Lookup", mock.Anything, mock.Anything)
			},
		},
		{
			name:     "country prefers the request value",
			strategy: model.AddressStrategyCountry,
			req:      model.DonationRequest{Country: " be "},
			assert: func(t *testing.T, got model.Address, _ *mocks.MockGeoLocator) {
				assert.Equal(t, "BE", got.CountryCode)
				assert.Equal(t, "Belgium", got.Country)
				assert.Equal(t, "N/A", got.City)
				assert.Equal(t, "N/A", got.Street)
			},
		},
		{
			name:     "country falls back to default",
			strategy: model.AddressStrategyCountry,
			req:      model.DonationRequest{},
			assert: func(t *testing.T, got model.Address, _ *mocks.MockGeoLocator) {
				assert.Equal(t, "NL", got.CountryCode)
				assert.Equal(t, "Netherlands", got.Country)
			},
		},
		{
			name:     "geolocation fills from lookup",
			strategy: model.AddressStrategyGeolocation,
			req:      model.DonationRequest{ClientIP: "203.0.113.7"},
			setup: func(geo *mocks.MockGeoLocator) {
				geo.On("Lookup", mock.Anything, "203.0.113.7").
					Return(model.GeoLocation{
						City:        "Antwerp",
						Region:      "Flanders",
						RegionCode:  "VLG",
						PostalCode:  "2000",
						Country:     "Belgium",
						CountryCode: "BE",
					}, nil).
					Once()
			},
			assert: func(t *testing.T, got model.Address, geo *mocks.MockGeoLocator) {
				assert.Equal(t, "Antwerp", got.City)
				assert.Equal(t, "Flanders", got.Region)
				assert.Equal(t, "VLG", got.RegionCode)
				assert.Equal(t, "2000", got.PostalCode)
				assert.Equal(t, "BE", got.CountryCode)
				assert.Equal(t, "Belgium", got.Country)
				assert.NotEmpty(t, got.Street)
				assert.NotEqual(t, "N/A", got.Street)
				geo.AssertExpectations(t)
			},
		},
		{
			name:     "geolocation request country wins over lookup",
			strategy: model.AddressStrategyGeolocation,
			req:      model.DonationRequest{ClientIP: "203.0.113.7", Country: "fr"},
			setup: func(geo *mocks.MockGeoLocator) {
				geo.On("Lookup", mock.Anything, "203.0.113.7").
					Return(model.GeoLocation{City: "Antwerp", CountryCode: "BE"}, nil).
					Once()
			},
			assert: func(t *testing.T, got model.Address, _ *mocks.MockGeoLocator) {
				assert.Equal(t, "FR", got.CountryCode)
				assert.Equal(t, "France", got.Country)
				assert.Equal(t, "Antwerp", got.City)
			},
		},
		{
			name:     "geolocation failure fabricates instead of failing",
			strategy: model.AddressStrategyGeolocation,
			req:      model.DonationRequest{ClientIP: "10.0.0.1"},
			setup: func(geo *mocks.MockGeoLocator) {
				geo.On("Lookup", mock.Anything, "10.0.0.1").
					Return(model.GeoLocation{}, errors.New("reserved range")).
					Once()
			},
			assert: func(t *testing.T, got model.Address, _ *mocks.MockGeoLocator) {
				for _, v := range []string{got.Street, got.City, got.Region, got.RegionCode, got.PostalCode} {
					assert.NotEmpty(t, v)
				}
				assert.Equal(t, "NL", got.CountryCode)
				assert.Equal(t, "Netherlands", got.Country)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			geo := &mocks.MockGeoLocator{}
			if tt.setup != nil {
				tt.setup(geo)
			}

			r, err := NewResolver(tt.strategy, geo, "nl")
			require.NoError(t, err)

			tt.assert(t, r.Resolve(context.Background(), tt.req), geo)
		})
	}
}

func TestNewResolver(t *testing.T) {
	t.Parallel()

	_, err := NewResolver("random", nil, "NL")
	require.ErrorIs(t, err, model.ErrUnknownStrategy)

	_, err = NewResolver(model.AddressStrategyGeolocation, nil, "NL")
	require.Error(t, err)

	_, err = NewResolver(model.AddressStrategyStatic, nil, "NL")
	require.NoError(t, err)
}

func TestCountryName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code string
		want string
	}{
		{"NL", "Netherlands"},
		{"US", "United States"},
		{"", ""},
		{"not-a-code", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CountryName(tt.code), tt.code)
	}
}
