package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/errgroup"

	"github.com/you-humble/donation-checkout/internal/config"
	"github.com/you-humble/donation-checkout/internal/transport/http/health"
	"github.com/you-humble/donation-checkout/platform/closer"
	"github.com/you-humble/donation-checkout/platform/logger"
	"github.com/you-humble/donation-checkout/platform/tracing"
)

type app struct {
	di     *di
	server *http.Server
}

func New(ctx context.Context) (*app, error) {
	a := &app{}

	if err := a.init(ctx); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *app) Run(ctx context.Context) error { return a.run(ctx) }

// Handler exposes the fully wired router.
func (a *app) Handler() http.Handler { return a.server.Handler }

func (a *app) init(ctx context.Context) error {
	inits := []func(context.Context) error{
		a.initConfig,
		a.initLogger,
		a.initCloser,
		a.initTracing,
		a.initDI,
		a.initServer,
	}

	for _, initFn := range inits {
		if err := initFn(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) initConfig(_ context.Context) error {
	return config.Load()
}

func (a *app) initLogger(_ context.Context) error {
	return logger.Init(
		config.C().Logger.Level(),
		config.C().Logger.AsJSON(),
	)
}

func (a *app) initCloser(_ context.Context) error {
	closer.SetLogger(logger.L())
	closer.AddNamed("Logger", func(context.Context) error {
		_ = logger.Sync()
		return nil
	})
	return nil
}

func (a *app) initTracing(ctx context.Context) error {
	cfg := config.C().Tracing
	if !cfg.Enabled() {
		return nil
	}

	tp, err := tracing.InitProvider(ctx, cfg.Endpoint(), cfg.ServiceName())
	if err != nil {
		logger.Error(ctx, "failed to init tracer provider", logger.ErrorF(err))
		return err
	}

	closer.AddNamed("Tracer provider", tp.Shutdown)
	return nil
}

func (a *app) initDI(_ context.Context) error {
	a.di = NewDI()
	return nil
}

func (a *app) initServer(ctx context.Context) error {
	cfg := config.C()
	h := a.di.DonationHandler(ctx)

	r := a.di.Router(ctx)
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)

	r.Post("/create-donation-order", h.CreateDonationOrder)
	r.Get("/cartpanda_return", h.CartPandaReturn)
	r.Post("/cartpanda-webhook", h.CartPandaWebhook)
	r.Get("/health", health.HealthCheck)

	a.server = &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           otelhttp.NewHandler(r, "donation-checkout"),
		ReadHeaderTimeout: cfg.Server.ReadTimeout(),
	}

	closer.AddNamed("HTTP server", a.server.Shutdown)
	return nil
}

func (a *app) run(ctx context.Context) error {
	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		logger.Info(egCtx,
			"🚀 donation server listening",
			logger.String("address", config.C().Server.Address()),
			logger.String("address_strategy", string(config.C().Checkout.AddressStrategy())),
			logger.String("api_version", string(config.C().CartPanda.APIVersion())),
		)
		err := a.server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	eg.Go(func() error {
		<-egCtx.Done()
		logger.Info(egCtx, "🛑 Server shutdown...")
		gracefulShutdown()
		return nil
	})

	if err := eg.Wait(); err != nil {
		return err
	}
	return nil
}

//nolint:contextcheck
func gracefulShutdown() {
	ctx, cancel := context.WithTimeout(
		context.Background(), // do not inherit cancellation from ctx
		config.C().Server.ShutdownTimeout(),
	)
	defer cancel()

	err := closer.CloseAll(ctx)
	if err != nil {
		logger.Error(ctx, "❌ Error during server shutdown", logger.ErrorF(err))
		logger.Error(ctx, "❌😵‍💫 Server stopped")
		return
	}
	logger.Info(ctx, "✅ Server stopped")
}
