// Package notification composes the real-time and push channels behind a
// single service.Notifier.
package notification

import (
	"context"
	stderrors "errors"
	"log/slog"

	deliverycontext "printshop/internal/delivery/context"
	"printshop/internal/domain/service"
)

func joinErrors(errs []error) error {
	return stderrors.Join(errs...)
}

// fanout publishes every event batch to all channels. A failing channel never
// stops the others.
type fanout struct {
	channels []service.Notifier
	metrics  service.Metrics
	logger   *slog.Logger
}

// NewFanout composes channels. A nil metrics records nothing.
func NewFanout(logger *slog.Logger, metrics service.Metrics, channels ...service.Notifier) service.Notifier {
	if metrics == nil {
		metrics = service.NopMetrics{}
	}

	return &fanout{channels: channels, metrics: metrics, logger: logger}
}

func (f *fanout) Publish(ctx context.Context, events ...service.Event) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, f.logger)

	var errs []error
	for _, ch := range f.channels {
		if err := ch.Publish(ctx, events...); err != nil {
			logger.Warn("Notification channel failed", slog.Any("error", err))
			errs = append(errs, err)
		}
	}

	ok := len(errs) == 0
	for _, event := range events {
		f.metrics.EventPublished(event.Name, ok)
	}

	return joinErrors(errs)
}
