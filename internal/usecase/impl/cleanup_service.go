package impl

import (
	"context"
	"log/slog"
	"time"

	"printshop/config"
	deliverycontext "printshop/internal/delivery/context"
	"printshop/internal/domain/service"
	"printshop/internal/domain/storagekey"
	"printshop/internal/usecase"
	"printshop/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cleanupService implements the CleanupUsecase interface.
type cleanupService struct {
	store   service.ObjectStore
	policy  service.StoragePolicy
	metrics service.Metrics
	config  *config.CleanupConfig
	logger  *slog.Logger
	now     func() time.Time
}

// CleanupServiceParams holds dependencies for CleanupService, injected by Fx.
type CleanupServiceParams struct {
	fx.In

	Store   service.ObjectStore
	Policy  service.StoragePolicy
	Metrics service.Metrics
	Config  *config.Config
	Logger  *slog.Logger
}

// NewCleanupService creates a new cleanup service.
func NewCleanupService(params CleanupServiceParams) usecase.CleanupUsecase {
	return &cleanupService{
		store:   params.Store,
		policy:  params.Policy,
		metrics: params.Metrics,
		config:  params.Config.Cleanup,
		logger:  params.Logger,
		now:     time.Now,
	}
}

func (srv *cleanupService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Sweep lists the whole bucket and deletes temp and order objects older than
// the retention window. Profile images and unrecognised keys are kept.
func (srv *cleanupService) Sweep(ctx context.Context, opts usecase.SweepOptions) (*usecase.SweepReport, error) {
	retention := opts.Retention
	if retention <= 0 {
		retention = srv.config.Retention
	}
	cutoff := srv.now().Add(-retention)

	objects, err := srv.store.List(ctx, "")
	if err != nil {
		storageErr := asStorageError(service.StorageOpList, "", err)
		if srv.policy.Decide(storageErr) == service.Abort {
			return nil, errors.Wrap(storageErr, "failed to list bucket")
		}
	}

	report := &usecase.SweepReport{
		ByClass: make(map[string]int),
		Expired: []string{},
		DryRun:  opts.DryRun,
	}
	for _, obj := range objects {
		report.Scanned++
		class := storagekey.Classify(obj.Key)
		report.ByClass[class.String()]++

		if class.Expirable() && obj.ModTime.Before(cutoff) {
			report.Expired = append(report.Expired, obj.Key)
		}
	}

	logger := srv.log(ctx).With(
		slog.String("retention", util.FormatDuration(retention)),
		slog.Bool("dry_run", opts.DryRun),
	)

	if opts.DryRun || len(report.Expired) == 0 {
		logger.Info("Storage sweep finished",
			slog.Int("scanned", report.Scanned),
			slog.Int("expired", len(report.Expired)),
		)

		return report, nil
	}

	batchSize := srv.config.BatchSize
	if batchSize <= 0 {
		batchSize = len(report.Expired)
	}
	for start := 0; start < len(report.Expired); start += batchSize {
		end := min(start+batchSize, len(report.Expired))
		for _, res := range srv.store.DeleteMany(ctx, report.Expired[start:end]) {
			if res.Err == nil {
				report.Deleted++

				continue
			}

			report.Failed++
			logger.Warn("Failed to delete expired object", slog.String("key", res.Key), slog.Any("error", res.Err))
			if srv.policy.Decide(res.Err) == service.Abort {
				return report, errors.Wrap(res.Err, "sweep aborted")
			}
		}
	}

	srv.metrics.SweepDeleted(report.Deleted)
	logger.Info("Storage sweep finished",
		slog.Int("scanned", report.Scanned),
		slog.Int("expired", len(report.Expired)),
		slog.Int("deleted", report.Deleted),
		slog.Int("failed", report.Failed),
	)

	return report, nil
}
