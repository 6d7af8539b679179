package envconfig

import "github.com/caarlos0/env/v11"

type tracingEnv struct {
	Enabled     bool   `env:"OTEL_ENABLED" envDefault:"false"`
	Endpoint    string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:"localhost:4317"`
	ServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"donation-checkout"`
}

type tracing struct {
	raw tracingEnv
}

func NewTracingConfig() (*tracing, error) {
	var raw tracingEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &tracing{raw: raw}, nil
}

func (cfg *tracing) Enabled() bool       { return cfg.raw.Enabled }
func (cfg *tracing) Endpoint() string    { return cfg.raw.Endpoint }
func (cfg *tracing) ServiceName() string { return cfg.raw.ServiceName }
