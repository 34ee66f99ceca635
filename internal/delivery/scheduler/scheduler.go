// Package scheduler runs periodic maintenance jobs on a cron schedule.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"printshop/config"
	"printshop/internal/delivery"
	deliverycontext "printshop/internal/delivery/context"
	"printshop/internal/domain/lifecycle"
	"printshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// Job is one unit of scheduled work.
type Job interface {
	Name() string
	Run(ctx context.Context) error
}

type scheduler struct {
	cron   *cron.Cron
	logger *slog.Logger
}

// Params holds dependencies for the scheduler, injected by Fx.
type Params struct {
	fx.In

	Lc        fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
	CleanupUC usecase.CleanupUsecase
}

// New registers the storage sweep and returns the scheduler as a delivery.
func New(params Params) (delivery.Delivery, error) {
	s := newScheduler(params.Logger)

	cfg := params.Config.Cleanup
	if cfg.Enabled {
		if err := s.Add(cfg.Schedule, NewSweepJob(params.CleanupUC)); err != nil {
			return nil, err
		}
	} else {
		params.Logger.Info("Storage sweep disabled")
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

func newScheduler(logger *slog.Logger) *scheduler {
	cronLogger := &cronLogger{logger: logger}

	return &scheduler{
		cron: cron.New(
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		logger: logger,
	}
}

// Add schedules job with a standard five-field cron spec.
func (s *scheduler) Add(spec string, job Job) error {
	if _, err := s.cron.AddJob(spec, s.wrap(job)); err != nil {
		return errors.Wrapf(err, "invalid schedule %q for job %s", spec, job.Name())
	}

	s.logger.Info("Scheduled job", slog.String("job", job.Name()), slog.String("schedule", spec))

	return nil
}

// wrap gives every run its own request id and logs its outcome.
func (s *scheduler) wrap(job Job) cron.Job {
	return cron.FuncJob(func() {
		runID := uuid.NewString()
		logger := s.logger.With(slog.String("job", job.Name()), slog.String("request_id", runID))
		ctx := deliverycontext.WithLogger(deliverycontext.WithRequestID(context.Background(), runID), logger)

		start := time.Now()
		logger.Debug("Job started")
		if err := job.Run(ctx); err != nil {
			logger.Error("Job failed", slog.Any("error", err), slog.Duration("elapsed", time.Since(start)))

			return
		}
		logger.Debug("Job finished", slog.Duration("elapsed", time.Since(start)))
	})
}

// Serve starts the cron loop; it does not block.
func (s *scheduler) Serve(_ context.Context) error {
	s.logger.Info("Starting scheduler", slog.Int("jobs", len(s.cron.Entries())))
	s.cron.Start()

	return nil
}

// stop waits for running jobs to finish, bounded by the shutdown timeout.
func (s *scheduler) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Stopping scheduler")

	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-shutdownCtx.Done():
		return errors.Wrap(shutdownCtx.Err(), "scheduler jobs still running")
	}
}

// sweepJob runs the storage cleanup.
type sweepJob struct {
	cleanupUC usecase.CleanupUsecase
}

// NewSweepJob adapts the cleanup usecase to a Job.
func NewSweepJob(cleanupUC usecase.CleanupUsecase) Job {
	return &sweepJob{cleanupUC: cleanupUC}
}

func (j *sweepJob) Name() string {
	return "storage-sweep"
}

func (j *sweepJob) Run(ctx context.Context) error {
	_, err := j.cleanupUC.Sweep(ctx, usecase.SweepOptions{})

	return err
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	logger *slog.Logger
}

func (l *cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l *cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append([]any{slog.Any("error", err)}, keysAndValues...)...)
}
