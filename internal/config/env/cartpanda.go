package envconfig

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/you-humble/donation-checkout/internal/model"
)

type cartpandaEnv struct {
	APIKey     string        `env:"CARTPANDA_API_KEY,required"`
	ShopSlug   string        `env:"CARTPANDA_SHOP_SLUG,required"`
	BaseURL    string        `env:"CARTPANDA_BASE_URL" envDefault:"https://accounts.cartpanda.com/api"`
	APIVersion string        `env:"CARTPANDA_API_VERSION" envDefault:"v3"`
	Timeout    time.Duration `env:"CARTPANDA_TIMEOUT" envDefault:"10s"`
}

type cartpanda struct {
	raw cartpandaEnv
}

func NewCartPandaConfig() (*cartpanda, error) {
	var raw cartpandaEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}

	raw.APIVersion = strings.ToLower(strings.TrimSpace(raw.APIVersion))
	if !model.APIVersion(raw.APIVersion).Valid() {
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownAPIVersion, raw.APIVersion)
	}
	raw.BaseURL = strings.TrimRight(raw.BaseURL, "/")

	return &cartpanda{raw: raw}, nil
}

func (cfg *cartpanda) APIKey() string         { return cfg.raw.APIKey }
func (cfg *cartpanda) ShopSlug() string       { return cfg.raw.ShopSlug }
func (cfg *cartpanda) BaseURL() string        { return cfg.raw.BaseURL }
func (cfg *cartpanda) Timeout() time.Duration { return cfg.raw.Timeout }

func (cfg *cartpanda) APIVersion() model.APIVersion {
	return model.APIVersion(cfg.raw.APIVersion)
}
