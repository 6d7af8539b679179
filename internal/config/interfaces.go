package config

import (
	"time"

	"github.com/IBM/sarama"

	"github.com/you-humble/donation-checkout/internal/model"
)

type Server interface {
	Host() string
	Port() int
	Address() string
	ReadTimeout() time.Duration
	ShutdownTimeout() time.Duration
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type CartPanda interface {
	APIKey() string
	ShopSlug() string
	BaseURL() string
	APIVersion() model.APIVersion
	Timeout() time.Duration
}

type Checkout interface {
	Settings(shopSlug string) model.CheckoutSettings
	AddressStrategy() model.AddressStrategy
	SuccessPageURL() string
	ErrorPageURL() string
}

type Geo interface {
	BaseURL() string
	Timeout() time.Duration
}

type Kafka interface {
	Enabled() bool
	Brokers() []string
	WebhookEventsTopic() string
	WebhookEventsProducerConfig() *sarama.Config
}

type Tracing interface {
	Enabled() bool
	Endpoint() string
	ServiceName() string
}
