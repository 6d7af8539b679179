package model

type AddressStrategy string

const (
	// Every field is a static placeholder.
	AddressStrategyStatic AddressStrategy = "static"
	// Client IP lookup, gaps filled with fabricated values.
	AddressStrategyGeolocation AddressStrategy = "geolocation"
	// Client-supplied country or the configured default.
	AddressStrategyCountry AddressStrategy = "country"
)

const AddressPlaceholder = "N/A"

func (s AddressStrategy) Valid() bool {
	switch s {
	case AddressStrategyStatic, AddressStrategyGeolocation, AddressStrategyCountry:
		return true
	default:
		return false
	}
}

type Address struct {
	Street      string
	City        string
	Region      string
	RegionCode  string
	PostalCode  string
	Country     string
	CountryCode string
}

// GeoLocation is what an IP lookup could tell about a client.
type GeoLocation struct {
	City        string
	Region      string
	RegionCode  string
	PostalCode  string
	Country     string
	CountryCode string
}
