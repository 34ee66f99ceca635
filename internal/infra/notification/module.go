package notification

import (
	"context"
	"log/slog"

	"printshop/config"
	"printshop/internal/domain/service"

	"go.uber.org/fx"
)

// NotifierParams holds dependencies for the composed Notifier, injected by Fx
type NotifierParams struct {
	fx.In

	Ctx      context.Context
	Config   *config.Config
	Logger   *slog.Logger
	Metrics  service.Metrics
	Realtime service.Notifier `name:"realtime"`
}

// NewNotifier builds the notifier injected into every event emitter
func NewNotifier(params NotifierParams) (service.Notifier, error) {
	channels := []service.Notifier{params.Realtime}

	if fb := params.Config.Firebase; fb != nil && (fb.ProjectID != "" || fb.CredentialsPath != "") {
		push, err := NewFirebaseNotifier(params.Ctx, fb.ProjectID, fb.CredentialsPath, params.Logger)
		if err != nil {
			return nil, err
		}
		params.Logger.Info("Firebase topic notifications enabled", slog.String("project_id", fb.ProjectID))
		channels = append(channels, push)
	}

	return NewFanout(params.Logger, params.Metrics, channels...), nil
}
