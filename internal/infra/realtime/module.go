package realtime

import (
	"context"
	"log/slog"

	"printshop/config"
	"printshop/internal/domain/service"

	"go.uber.org/fx"
)

// BroadcasterParams holds dependencies for the real-time broadcaster
type BroadcasterParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Hub    *Hub
	Logger *slog.Logger
}

// NewBroadcaster returns the hub itself for single-instance deployments and a
// Redis relay in front of it when realtime.redis is configured.
func NewBroadcaster(params BroadcasterParams) service.Notifier {
	cfg := params.Config.Realtime
	if cfg == nil || cfg.Redis == nil || cfg.Redis.Addr == "" {
		return params.Hub
	}

	relay := NewRedisRelay(cfg.Redis, params.Hub, params.Logger)
	params.Lc.Append(fx.Hook{
		OnStart: relay.Start,
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Stopping Redis event relay")

			return relay.Stop(ctx)
		},
	})

	return relay
}

// Module provides the hub and the broadcaster tagged name:"realtime"
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewHub,
		fx.Annotate(
			NewBroadcaster,
			fx.ResultTags(`name:"realtime"`),
		),
	),
)
