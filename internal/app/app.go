package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/you-humble/shape-shop/internal/config"
	"github.com/you-humble/shape-shop/internal/transport/http/health"
	"github.com/you-humble/shape-shop/platform/closer"
	"github.com/you-humble/shape-shop/platform/logger"
)

type app struct {
	di       *di
	server   *http.Server
	consumer CheckoutCompletedConsumer
}

func New(ctx context.Context) (*app, error) {
	a := &app{}

	if err := a.init(ctx); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *app) Run(ctx context.Context) error { return a.run(ctx) }

func (a *app) init(ctx context.Context) error {
	inits := []func(context.Context) error{
		a.initConfig,
		a.initLogger,
		a.initCloser,
		a.initDI,
		a.initTables,
		a.initClassifier,
		a.initConsumer,
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
	return nil
}

func (a *app) initDI(_ context.Context) error {
	a.di = NewDI()
	return nil
}

func (a *app) initTables(ctx context.Context) error {
	applied, err := a.di.Migrator(ctx).Up(ctx)
	if err != nil {
		logger.Error(ctx, "failed to apply migrations", logger.ErrorF(err))
		return err
	}
	if len(applied) > 0 {
		logger.Info(ctx, "migrations applied", logger.Any("versions", applied))
	}
	return nil
}

func (a *app) initClassifier(ctx context.Context) error {
	if _, err := a.di.Classifier(ctx); err != nil {
		logger.Error(ctx, "failed to load model",
			logger.String("model_path", config.C().Model.Path()),
			logger.ErrorF(err),
		)
		return err
	}
	return nil
}

// initConsumer starts nothing when kafka is disabled; the purchase ledger
// then stays empty.
func (a *app) initConsumer(ctx context.Context) error {
	if !config.C().Kafka.Enabled() {
		return nil
	}

	a.consumer = a.di.CheckoutCompletedConsumer(ctx)
	return nil
}

func (a *app) initServer(ctx context.Context) error {
	cfg := config.C()

	shop, err := a.di.ShopHandler(ctx)
	if err != nil {
		logger.Error(ctx, "failed to build shop handler", logger.ErrorF(err))
		return err
	}

	r := a.di.Router(ctx)
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Logger,
		middleware.Recoverer,
	)
	// cors treats an empty origin list as "*", so no origins means no CORS.
	if origins := cfg.Server.CORSAllowedOrigins(); len(origins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   origins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
			AllowedHeaders:   []string{"Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	r.Get("/health", health.HealthCheck(a.di.DBPool(ctx), cfg.Server.DBReadTimeout()))
	r.Handle("/metrics", promhttp.Handler())
	r.Mount("/", shop)

	a.server = &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           r,
		ReadHeaderTimeout: cfg.Server.ReadTimeout(),
	}
	return nil
}

func (a *app) run(ctx context.Context) error {
	defer gracefulShutdown()

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		logger.Info(egCtx,
			"🚀 shop server listening",
			logger.String("address", config.C().Server.Address()),
		)
		err := a.server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	if a.consumer != nil {
		eg.Go(func() error {
			return a.consumer.RunCheckoutCompletedConsume(egCtx)
		})
	}

	eg.Go(func() error {
		<-egCtx.Done()
		logger.Info(egCtx, "shutting down")

		//nolint:contextcheck
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.C().Server.ShutdownTimeout())
		defer cancel()

		return a.server.Shutdown(shutdownCtx)
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
