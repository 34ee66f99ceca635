package usecase

import (
	"context"
	"time"
)

// SweepOptions tunes one cleanup run. A zero Retention uses the configured window.
type SweepOptions struct {
	DryRun    bool
	Retention time.Duration
}

// SweepReport is the outcome of one cleanup run.
type SweepReport struct {
	Scanned int            `json:"scanned"`
	ByClass map[string]int `json:"byClass"`
	Expired []string       `json:"expired"`
	Deleted int            `json:"deleted"`
	Failed  int            `json:"failed"`
	DryRun  bool           `json:"dryRun"`
}

// CleanupUsecase deletes stale temp and order objects from the bucket.
type CleanupUsecase interface {
	Sweep(ctx context.Context, opts SweepOptions) (*SweepReport, error)
}
