package address

import (
	"context"
	"fmt"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/samber/lo"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/you-humble/donation-checkout/internal/model"
	"github.com/you-humble/donation-checkout/platform/logger"
)

type GeoLocator interface {
	Lookup(ctx context.Context, ip string) (model.GeoLocation, error)
}

type resolver struct {
	strategy       model.AddressStrategy
	geo            GeoLocator
	defaultCountry string
}

// NewResolver builds the resolver for one strategy. geo is only used by
// the geolocation strategy and may be nil otherwise.
func NewResolver(strategy model.AddressStrategy, geo GeoLocator, defaultCountry string) (*resolver, error) {
	const op = "address.NewResolver"

	if !strategy.Valid() {
		return nil, fmt.Errorf("%s: %w: %q", op, model.ErrUnknownStrategy, strategy)
	}
	if strategy == model.AddressStrategyGeolocation && geo == nil {
		return nil, fmt.Errorf("%s: geolocation strategy needs a locator", op)
	}

	return &resolver{
		strategy:       strategy,
		geo:            geo,
		defaultCountry: strings.ToUpper(strings.TrimSpace(defaultCountry)),
	}, nil
}

func (r *resolver) Resolve(ctx context.Context, req model.DonationRequest) model.Address {
	switch r.strategy {
	case model.AddressStrategyGeolocation:
		return r.geolocated(ctx, req)
	case model.AddressStrategyCountry:
		return r.placeholders(lo.CoalesceOrEmpty(normalizeCode(req.Country), r.defaultCountry))
	default:
		return r.placeholders(r.defaultCountry)
	}
}

func (r *resolver) placeholders(code string) model.Address {
	return model.Address{
		Street:      model.AddressPlaceholder,
		City:        model.AddressPlaceholder,
		Region:      model.AddressPlaceholder,
		RegionCode:  model.AddressPlaceholder,
		PostalCode:  model.AddressPlaceholder,
		Country:     lo.CoalesceOrEmpty(CountryName(code), model.AddressPlaceholder),
		CountryCode: lo.CoalesceOrEmpty(code, model.AddressPlaceholder),
	}
}

func (r *resolver) geolocated(ctx context.Context, req model.DonationRequest) model.Address {
	loc, err := r.geo.Lookup(ctx, req.ClientIP)
	if err != nil {
		logger.Warn(ctx, "geolocation lookup failed, fabricating address",
			logger.String("client_ip", req.ClientIP),
			logger.ErrorF(err),
		)
		loc = model.GeoLocation{}
	}

	// One faker per request, nothing shared between goroutines.
	f := gofakeit.New(0)

	code := lo.CoalesceOrEmpty(normalizeCode(req.Country), normalizeCode(loc.CountryCode), r.defaultCountry)

	return model.Address{
		Street:      lo.CoalesceOrEmpty(f.Street(), model.AddressPlaceholder),
		City:        lo.CoalesceOrEmpty(loc.City, f.City(), model.AddressPlaceholder),
		Region:      lo.CoalesceOrEmpty(loc.Region, f.State(), model.AddressPlaceholder),
		RegionCode:  lo.CoalesceOrEmpty(loc.RegionCode, f.StateAbr(), model.AddressPlaceholder),
		PostalCode:  lo.CoalesceOrEmpty(loc.PostalCode, f.Zip(), model.AddressPlaceholder),
		Country:     lo.CoalesceOrEmpty(CountryName(code), loc.Country, model.AddressPlaceholder),
		CountryCode: lo.CoalesceOrEmpty(code, model.AddressPlaceholder),
	}
}

// CountryName returns the English name of an ISO 3166-1 alpha-2 code,
// or "" when the code is unknown.
func CountryName(code string) string {
	if code == "" {
		return ""
	}

	region, err := language.ParseRegion(code)
	if err != nil {
		return ""
	}

	return display.English.Regions().Name(region)
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
