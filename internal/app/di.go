package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/IBM/sarama"
	"github.com/go-chi/chi/v5"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	cpclient "github.com/you-humble/donation-checkout/internal/client/http/cartpanda"
	geoclient "github.com/you-humble/donation-checkout/internal/client/http/geoip"
	"github.com/you-humble/donation-checkout/internal/config"
	"github.com/you-humble/donation-checkout/internal/converter"
	"github.com/you-humble/donation-checkout/internal/model"
	"github.com/you-humble/donation-checkout/internal/service/address"
	"github.com/you-humble/donation-checkout/internal/service/donation"
	whproducer "github.com/you-humble/donation-checkout/internal/service/producer/webhook"
	"github.com/you-humble/donation-checkout/internal/service/verification"
	"github.com/you-humble/donation-checkout/internal/service/webhook"
	thttp "github.com/you-humble/donation-checkout/internal/transport/http/donation/v1"
	"github.com/you-humble/donation-checkout/platform/closer"
	"github.com/you-humble/donation-checkout/platform/kafka"
	"github.com/you-humble/donation-checkout/platform/kafka/producer"
	"github.com/you-humble/donation-checkout/platform/logger"
)

type CartPandaClient interface {
	donation.OrderDispatcher
	verification.OrderFetcher
}

type DonationHandler interface {
	CreateDonationOrder(w http.ResponseWriter, r *http.Request)
	CartPandaReturn(w http.ResponseWriter, r *http.Request)
	CartPandaWebhook(w http.ResponseWriter, r *http.Request)
}

type di struct {
	cartpandaClient CartPandaClient
	geoLocator      address.GeoLocator
	addressResolver donation.AddressResolver

	syncProducer          sarama.SyncProducer
	webhookEventsProducer kafka.Producer
	webhookProducer       webhook.EventSender

	donationService     thttp.DonationService
	verificationService thttp.VerificationService
	webhookService      thttp.WebhookService

	handler DonationHandler
	router  *chi.Mux
}

func NewDI() *di { return &di{} }

func newRestyClient(baseURL string) *resty.Client {
	return resty.New().
		SetBaseURL(baseURL).
		SetRetryCount(0).
		SetTransport(otelhttp.NewTransport(http.DefaultTransport))
}

func (d *di) CartPandaClient(_ context.Context) CartPandaClient {
	if d.cartpandaClient == nil {
		cfg := config.C().CartPanda

		rc := newRestyClient(cfg.BaseURL()).
			SetAuthToken(cfg.APIKey()).
			SetTimeout(cfg.Timeout())

		c, err := cpclient.NewClient(rc, cfg.ShopSlug(), cfg.APIVersion())
		if err != nil {
			panic(fmt.Sprintf("failed to create cartpanda client: %v", err))
		}

		d.cartpandaClient = c
	}

	return d.cartpandaClient
}

func (d *di) GeoLocator(_ context.Context) address.GeoLocator {
	if d.geoLocator == nil {
		cfg := config.C().Geo

		d.geoLocator = geoclient.NewClient(
			newRestyClient(cfg.BaseURL()).SetTimeout(cfg.Timeout()),
		)
	}

	return d.geoLocator
}

func (d *di) AddressResolver(ctx context.Context) donation.AddressResolver {
	if d.addressResolver == nil {
		cfg := config.C().Checkout

		var geo address.GeoLocator
		if cfg.AddressStrategy() == model.AddressStrategyGeolocation {
			geo = d.GeoLocator(ctx)
		}

		r, err := address.NewResolver(
			cfg.AddressStrategy(),
			geo,
			cfg.Settings(config.C().CartPanda.ShopSlug()).DefaultCountry,
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create address resolver: %v", err))
		}

		d.addressResolver = r
	}

	return d.addressResolver
}

func (d *di) SyncProducer(_ context.Context) sarama.SyncProducer {
	if d.syncProducer == nil {
		cfg := config.C().Kafka

		p, err := sarama.NewSyncProducer(
			cfg.Brokers(),
			cfg.WebhookEventsProducerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create sync producer: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka sync producer", func(ctx context.Context) error {
			return p.Close()
		})

		d.syncProducer = p
	}

	return d.syncProducer
}

func (d *di) WebhookEventsProducer(ctx context.Context) kafka.Producer {
	if d.webhookEventsProducer == nil {
		d.webhookEventsProducer = producer.NewProducer(
			d.SyncProducer(ctx),
			config.C().Kafka.WebhookEventsTopic(),
			logger.L(),
		)
	}

	return d.webhookEventsProducer
}

// WebhookProducer returns nil when publishing is disabled.
func (d *di) WebhookProducer(ctx context.Context) webhook.EventSender {
	if !config.C().Kafka.Enabled() {
		return nil
	}

	if d.webhookProducer == nil {
		d.webhookProducer = whproducer.NewWebhookProducer(
			d.WebhookEventsProducer(ctx),
			converter.NewKafkaConverter(),
		)
	}

	return d.webhookProducer
}

func (d *di) DonationService(ctx context.Context) thttp.DonationService {
	if d.donationService == nil {
		cfg := config.C()

		d.donationService = donation.NewDonationService(
			d.AddressResolver(ctx),
			d.CartPandaClient(ctx),
			cfg.Checkout.Settings(cfg.CartPanda.ShopSlug()),
			cfg.CartPanda.Timeout(),
		)
	}

	return d.donationService
}

func (d *di) VerificationService(ctx context.Context) thttp.VerificationService {
	if d.verificationService == nil {
		cfg := config.C().CartPanda

		d.verificationService = verification.NewVerificationService(
			d.CartPandaClient(ctx),
			cfg.APIVersion(),
			cfg.Timeout(),
		)
	}

	return d.verificationService
}

func (d *di) WebhookService(ctx context.Context) thttp.WebhookService {
	if d.webhookService == nil {
		d.webhookService = webhook.NewWebhookService(d.WebhookProducer(ctx))
	}

	return d.webhookService
}

func (d *di) DonationHandler(ctx context.Context) DonationHandler {
	if d.handler == nil {
		cfg := config.C().Checkout

		d.handler = thttp.NewDonationHandler(
			d.DonationService(ctx),
			d.VerificationService(ctx),
			d.WebhookService(ctx),
			thttp.RedirectPages{
				Success: cfg.SuccessPageURL(),
				Error:   cfg.ErrorPageURL(),
			},
		)
	}

	return d.handler
}

func (d *di) Router(_ context.Context) *chi.Mux {
	if d.router == nil {
		d.router = chi.NewRouter()
	}

	return d.router
}
