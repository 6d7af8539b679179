package envconfig

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type geoEnv struct {
	BaseURL string        `env:"GEOIP_BASE_URL" envDefault:"http://ip-api.com"`
	Timeout time.Duration `env:"GEOIP_TIMEOUT" envDefault:"2s"`
}

type geo struct {
	raw geoEnv
}

func NewGeoConfig() (*geo, error) {
	var raw geoEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &geo{raw: raw}, nil
}

func (cfg *geo) BaseURL() string        { return cfg.raw.BaseURL }
func (cfg *geo) Timeout() time.Duration { return cfg.raw.Timeout }
