package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	envconfig "github.com/you-humble/donation-checkout/internal/config/env"
)

var cfg *config

type config struct {
	Server    Server
	Logger    Logger
	CartPanda CartPanda
	Checkout  Checkout
	Geo       Geo
	Kafka     Kafka
	Tracing   Tracing
}

func Load(path ...string) error {
	const op = "config.Load"

	if shouldLoadDotenv() {
		if err := godotenv.Load(path...); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s: load .env: %w", op, err)
		}
	}

	serverCfg, err := envconfig.NewHTTPServerConfig()
	if err != nil {
		return fmt.Errorf("%s Server: %w", op, err)
	}

	loggerCfg, err := envconfig.NewLoggerConfig()
	if err != nil {
		return fmt.Errorf("%s Logger: %w", op, err)
	}

	cartpandaCfg, err := envconfig.NewCartPandaConfig()
	if err != nil {
		return fmt.Errorf("%s CartPanda: %w", op, err)
	}

	checkoutCfg, err := envconfig.NewCheckoutConfig()
	if err != nil {
		return fmt.Errorf("%s Checkout: %w", op, err)
	}

	geoCfg, err := envconfig.NewGeoConfig()
	if err != nil {
		return fmt.Errorf("%s Geo: %w", op, err)
	}

	kafkaCfg, err := envconfig.NewKafkaConfig()
	if err != nil {
		return fmt.Errorf("%s Kafka: %w", op, err)
	}

	tracingCfg, err := envconfig.NewTracingConfig()
	if err != nil {
		return fmt.Errorf("%s Tracing: %w", op, err)
	}

	cfg = &config{
		Server:    serverCfg,
		Logger:    loggerCfg,
		CartPanda: cartpandaCfg,
		Checkout:  checkoutCfg,
		Geo:       geoCfg,
		Kafka:     kafkaCfg,
		Tracing:   tracingCfg,
	}

	return nil
}

func C() *config { return cfg }

func shouldLoadDotenv() bool {
	return os.Getenv("APP_ENV") == "local"
}
