package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"printshop/config"
	logs "printshop/internal/infra/log"
	"printshop/internal/infra/metrics"
	"printshop/internal/infra/storage"
	"printshop/internal/usecase"
	"printshop/internal/usecase/impl"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

var (
	dryRun    bool
	retention time.Duration
	timeout   time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Delete expired upload and order files from the storage bucket",
	Long: `Sweep lists the configured bucket once and removes temp uploads and
order files older than the retention window. Shop profile images and
unrecognised keys are never touched.

The report is printed as JSON on stdout.`,
	SilenceUsage: true,
	RunE:         runSweep,
}

func init() {
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "report what would be deleted without deleting")
	rootCmd.Flags().DurationVar(&retention, "retention", 0, "override the configured retention window (e.g. 48h)")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 10*time.Minute, "abort the run after this long")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runSweep(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	var cleanupUC usecase.CleanupUsecase
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			func() context.Context { return ctx },
			metrics.New,
			metrics.NewMetrics,
			impl.NewCleanupService,
		),
		storage.Module,
		fx.Populate(&cleanupUC),
	)
	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start")
	}
	defer func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer stopCancel()
		_ = app.Stop(stopCtx)
	}()

	report, err := cleanupUC.Sweep(ctx, usecase.SweepOptions{DryRun: dryRun, Retention: retention})
	if err != nil {
		return errors.Wrap(err, "sweep failed")
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")

	return enc.Encode(report)
}
