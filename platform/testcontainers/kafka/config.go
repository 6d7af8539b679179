package kafka

import (
	"context"

	"go.uber.org/zap"

	"github.com/you-humble/donation-checkout/platform/logger"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type Config struct {
	ImageName string
	ClusterID string
	Topics    []string
	Logger    Logger

	Brokers []string
}

func buildConfig(opts ...Option) *Config {
	cfg := &Config{
		ImageName: defaultImage,
		ClusterID: defaultClusterID,
		Logger:    &logger.NoopLogger{},
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}
