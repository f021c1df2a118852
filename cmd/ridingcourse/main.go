package main

import (
	"context"
	"log/slog"
	"os"

	"ridingcourse/config"
	"ridingcourse/internal/delivery"
	"ridingcourse/internal/delivery/api"
	"ridingcourse/internal/delivery/api/middleware"
	"ridingcourse/internal/delivery/api/router/handler"
	"ridingcourse/internal/infra/auth"
	logs "ridingcourse/internal/infra/log"
	"ridingcourse/internal/infra/metrics"
	"ridingcourse/internal/infra/persistence/postgres"
	"ridingcourse/internal/infra/pubsub"
	"ridingcourse/internal/infra/qrcode"
	"ridingcourse/internal/infra/shortlink"
	"ridingcourse/internal/infra/storage"
	"ridingcourse/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

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
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		metrics.Module,
		storage.Module,
		shortlink.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewRouteRepository,
			postgres.NewRouteStatsRepository,
			postgres.NewCommentRepository,
			postgres.NewPhotoRepository,
			postgres.NewBookmarkRepository,
			postgres.NewReportRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewLinkService,
			impl.NewRoutingService,
			impl.NewRouteService,
			impl.NewRouteStatsService,
			impl.NewCommentService,
			impl.NewPhotoService,
			impl.NewBookmarkService,
			impl.NewReportService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewMetricsMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewLinkHandler,
			handler.NewRouteHandler,
			handler.NewPhotoHandler,
			handler.NewCommentHandler,
			handler.NewBookmarkHandler,
			handler.NewReportHandler,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
