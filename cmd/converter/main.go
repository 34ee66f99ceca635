// Command converter is the Pub/Sub push worker that converts paid orders to PDF.
package main

import (
	"context"
	"log/slog"
	"os"

	"printshop/config"
	"printshop/internal/delivery"
	"printshop/internal/delivery/worker"
	"printshop/internal/delivery/worker/handler"
	"printshop/internal/domain/service"
	"printshop/internal/infra/document"
	logs "printshop/internal/infra/log"
	"printshop/internal/infra/metrics"
	"printshop/internal/infra/notification"
	"printshop/internal/infra/persistence/postgres"
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
		injectHandler(),
		injectDelivery(),
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
		// Events reach API clients through the Redis relay when configured.
		realtime.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewOrderRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			notification.NewNotifier,
		),
		document.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewConversionService,
			func(uc usecase.ConversionUsecase) service.ConversionJobHandler { return uc },
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
