package main

import (
	"context"
	"log/slog"

	"printshop/config"
	"printshop/internal/delivery"
	"printshop/internal/delivery/api"
	"printshop/internal/delivery/api/middleware"
	"printshop/internal/delivery/api/router/handler"
	"printshop/internal/delivery/scheduler"
	"printshop/internal/domain/service"
	"printshop/internal/infra/auth"
	"printshop/internal/infra/auth/google"
	"printshop/internal/infra/document"
	logs "printshop/internal/infra/log"
	"printshop/internal/infra/metrics"
	"printshop/internal/infra/notification"
	"printshop/internal/infra/persistence/postgres"
	"printshop/internal/infra/pubsub"
	"printshop/internal/infra/qrcode"
	"printshop/internal/infra/realtime"
	"printshop/internal/infra/storage"
	"printshop/internal/usecase"
	"printshop/internal/usecase/impl"

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
			metrics.New,
			metrics.NewMetrics,
		),
		storage.Module,
		realtime.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewShopRepository,
			postgres.NewOrderRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			google.NewIdentityVerifier,
			qrcode.NewFromConfig,
			notification.NewNotifier,
		),
		document.Module,
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewShopService,
			impl.NewUploadService,
			impl.NewOrderService,
			impl.NewConversionService,
			impl.NewCleanupService,
			asJobHandler,
		),
	)
}

// asJobHandler lets the in-process queue run conversions in this process.
func asJobHandler(uc usecase.ConversionUsecase) service.ConversionJobHandler {
	return uc
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
			handler.NewAuthHandler,
			handler.NewShopHandler,
			handler.NewUploadHandler,
			handler.NewOrderHandler,
			handler.NewRealtimeHandler,
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
			fx.Annotate(
				scheduler.New,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, d := range params.Deliveries {
		go func() {
			if err := d.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				_ = params.Shutdown(fx.ExitCode(1))
			}
		}()
	}
}
