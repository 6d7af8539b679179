package kafka

import (
	"context"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"go.uber.org/zap"
)

const (
	defaultImage     = "confluentinc/cp-kafka:7.6.1"
	defaultClusterID = "Mk3OEYBSD34fcwNTJENDM2Qk"
	adminTimeout     = 10 * time.Second
)

type Container struct {
	container testcontainers.Container
	cfg       *Config
}

func NewContainer(ctx context.Context, opts ...Option) (*Container, error) {
	cfg := buildConfig(opts...)

	container, err := startKafkaContainer(ctx, cfg)
	if err != nil {
		return nil, err
	}

	success := false
	defer func() {
		if !success {
			if err = container.Terminate(ctx); err != nil {
				cfg.Logger.Error(ctx, "failed to terminate kafka container", zap.Error(err))
			}
		}
	}()

	cfg.Brokers, err = container.Brokers(ctx)
	if err != nil {
		return nil, err
	}

	if err = createTopics(cfg.Brokers, cfg.Topics...); err != nil {
		return nil, err
	}

	cfg.Logger.Info(ctx, "Kafka container started", zap.Strings("brokers", cfg.Brokers))
	success = true

	return &Container{
		container: container,
		cfg:       cfg,
	}, nil
}

func (c *Container) Brokers() []string {
	return c.cfg.Brokers
}

func (c *Container) Config() *Config {
	return c.cfg
}

func (c *Container) Terminate(ctx context.Context) error {
	if err := c.container.Terminate(ctx); err != nil {
		c.cfg.Logger.Error(ctx, "failed to terminate kafka container", zap.Error(err))
		return err
	}

	c.cfg.Logger.Info(ctx, "Kafka container terminated")

	return nil
}
