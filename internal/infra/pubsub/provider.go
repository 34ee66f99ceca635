package pubsub

import (
	"context"
	"log/slog"

	"printshop/config"
	"printshop/internal/domain/constants"
	"printshop/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// QueueParams holds dependencies for ConversionQueue, injected by Fx
type QueueParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger

	// Handler is only required by the in-process provider.
	Handler service.ConversionJobHandler `optional:"true"`
}

// NewConversionQueue creates a ConversionQueue based on configuration
func NewConversionQueue(params QueueParams) (service.ConversionQueue, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	provider := constants.QueueProviderInProcess
	if cfg != nil && cfg.Provider != "" {
		provider = cfg.Provider
	}

	var queue service.ConversionQueue
	var err error

	switch provider {
	case constants.QueueProviderInProcess:
		if params.Handler == nil {
			return nil, errors.New("conversion job handler is required for inprocess provider")
		}
		conv := params.Config.Conversion
		// A job converts items sequentially, so allow one convert timeout per item on a typical order.
		jobTimeout := 10 * params.Config.Document.ConvertTimeout
		logger.Info("Using in-process conversion queue",
			slog.Int("workers", conv.Workers),
			slog.Int("queue_size", conv.QueueSize),
			slog.Duration("job_timeout", jobTimeout),
		)

		queue = NewInProcessQueue(params.Handler, conv.Workers, conv.QueueSize, jobTimeout, logger)

	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for conversion jobs",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		queue = NewLocalHTTPQueue(cfg.LocalEndpoint, logger)

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher for conversion jobs",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		queue, err = NewGoogleConversionQueue(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing conversion queue")

			done := make(chan error, 1)
			go func() { done <- queue.Close() }()

			select {
			case err := <-done:
				return err
			case <-ctx.Done():
				return errors.Wrap(ctx.Err(), "conversion queue did not drain")
			}
		},
	})

	return queue, nil
}

// Module provides the conversion queue FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewConversionQueue),
)
