package scheduler

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"printshop/config"
	deliverycontext "printshop/internal/delivery/context"
	mockUC "printshop/internal/mocks/usecase"
	"printshop/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type countingJob struct {
	runs atomic.Int32
	err  error
}

func (j *countingJob) Name() string { return "counting" }

func (j *countingJob) Run(ctx context.Context) error {
	if deliverycontext.GetRequestIDFromContext(ctx) == "" {
		return errors.New("missing run id")
	}
	j.runs.Add(1)

	return j.err
}

func TestScheduler_RunsJobWithRunID(t *testing.T) {
	s := newScheduler(newDiscardLogger())
	job := &countingJob{}

	require.NoError(t, s.Add("@every 1s", job))
	require.NoError(t, s.Serve(context.Background()))
	t.Cleanup(func() { _ = s.stop(context.Background()) })

	assert.Eventually(t, func() bool { return job.runs.Load() > 0 }, 3*time.Second, 50*time.Millisecond)
}

func TestScheduler_FailingJobKeepsSchedule(t *testing.T) {
	s := newScheduler(newDiscardLogger())
	job := &countingJob{err: errors.New("bucket unreachable")}

	require.NoError(t, s.Add("@every 1s", job))
	require.NoError(t, s.Serve(context.Background()))
	t.Cleanup(func() { _ = s.stop(context.Background()) })

	assert.Eventually(t, func() bool { return job.runs.Load() >= 2 }, 4*time.Second, 50*time.Millisecond)
}

func TestScheduler_RejectsBadSpec(t *testing.T) {
	s := newScheduler(newDiscardLogger())

	assert.Error(t, s.Add("every hour", &countingJob{}))
}

func TestNew_RegistersSweepWhenEnabled(t *testing.T) {
	tests := []struct {
		name        string
		enabled     bool
		wantEntries int
	}{
		{name: "enabled", enabled: true, wantEntries: 1},
		{name: "disabled", enabled: false, wantEntries: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{Cleanup: &config.CleanupConfig{Enabled: tt.enabled, Schedule: "0 * * * *"}}
			lc := fxtest.NewLifecycle(t)

			d, err := New(Params{Lc: lc, Config: cfg, Logger: newDiscardLogger(), CleanupUC: mockUC.NewMockCleanupUsecase(t)})
			require.NoError(t, err)

			assert.Len(t, d.(*scheduler).cron.Entries(), tt.wantEntries)
			lc.RequireStart().RequireStop()
		})
	}
}

func TestSweepJob_RunsDefaultSweep(t *testing.T) {
	cleanupUC := mockUC.NewMockCleanupUsecase(t)
	cleanupUC.EXPECT().Sweep(mock.Anything, usecase.SweepOptions{}).Return(&usecase.SweepReport{}, nil)

	job := NewSweepJob(cleanupUC)

	assert.Equal(t, "storage-sweep", job.Name())
	assert.NoError(t, job.Run(context.Background()))
}
