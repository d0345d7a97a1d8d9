package main

import (
	"context"
	"log/slog"
	"os"

	"venture/config"
	"venture/internal/delivery"
	"venture/internal/delivery/api"
	"venture/internal/delivery/api/middleware"
	"venture/internal/delivery/api/router/handler"
	"venture/internal/infra/auth"
	"venture/internal/infra/cache"
	logs "venture/internal/infra/log"
	"venture/internal/infra/metrics"
	"venture/internal/infra/persistence/postgres"
	"venture/internal/infra/pubsub"
	"venture/internal/infra/qrcode"
	"venture/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		newMetrics,
	)
}

// newMetrics returns nil when metrics are disabled; consumers take it as optional
func newMetrics(cfg *config.Config) *metrics.Metrics {
	if !cfg.Metrics.Enabled {
		return nil
	}

	return metrics.New()
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewProfileRepository,
			postgres.NewConnectionRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			cache.New,
			pubsub.NewEventPublisher,
			qrcode.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewProximityService,
			impl.NewConnectionService,
			impl.NewProfileService,
			impl.NewMarketService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewNearbyHandler,
			handler.NewConnectionHandler,
			handler.NewProfileHandler,
			handler.NewMarketHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
