package geoip

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/go-resty/resty/v2"

	"github.com/you-humble/donation-checkout/internal/model"
)

const lookupFields = "status,message,country,countryCode,region,regionName,city,zip"

type lookupResponse struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	Country     string `json:"country"`
	CountryCode string `json:"countryCode"`
	Region      string `json:"region"`
	RegionName  string `json:"regionName"`
	City        string `json:"city"`
	Zip         string `json:"zip"`
}

type client struct {
	http *resty.Client
}

// NewClient speaks the ip-api.com JSON API. http must carry the base URL.
func NewClient(http *resty.Client) *client {
	return &client{http: http}
}

func (c *client) Lookup(ctx context.Context, ip string) (model.GeoLocation, error) {
	const op = "geoip.client.Lookup"

	if ip == "" {
		return model.GeoLocation{}, fmt.Errorf("%s: empty ip: %w", op, model.ErrGeoLookup)
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("fields", lookupFields).
		Get("/json/" + url.PathEscape(ip))
	if err != nil {
		return model.GeoLocation{}, fmt.Errorf("%s: %w: %w", op, model.ErrGeoLookup, err)
	}
	if !resp.IsSuccess() {
		return model.GeoLocation{}, fmt.Errorf("%s: status %d: %w", op, resp.StatusCode(), model.ErrGeoLookup)
	}

	var lr lookupResponse
	if err := json.Unmarshal(resp.Body(), &lr); err != nil {
		return model.GeoLocation{}, fmt.Errorf("%s: decode: %w: %w", op, model.ErrGeoLookup, err)
	}
	if lr.Status != "success" {
		return model.GeoLocation{}, fmt.Errorf("%s: %q: %w", op, lr.Message, model.ErrGeoLookup)
	}

	return model.GeoLocation{
		City:        lr.City,
		Region:      lr.RegionName,
		RegionCode:  lr.Region,
		PostalCode:  lr.Zip,
		Country:     lr.Country,
		CountryCode: lr.CountryCode,
	}, nil
}
