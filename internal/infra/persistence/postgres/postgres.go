package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"printshop/config"
	"printshop/internal/domain/lifecycle"
	"printshop/internal/errors"
	"printshop/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// openFunc opens a connection; replaced in tests.
type openFunc func() (*gorm.DB, error)

// New connects to PostgreSQL, retrying a fixed number of times before giving up.
func New(params Params) (*gorm.DB, error) {
	open := func() (*gorm.DB, error) {
		return pgLib.New(params.Config.Postgres)
	}

	db, err := connectWithRetry(open, params.Config.Database.ConnectAttempts, params.Config.Database.ConnectDelay, params.Logger, time.Sleep)
	if err != nil {
		return nil, err
	}

	db = db.Session(&gorm.Session{
		// Explicit transactions go through txManager.Execute.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	if params.Config.Database.AutoMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// Migrate creates or updates the users, shops and orders tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.UserModel{}, &model.ShopModel{}, &model.OrderModel{}); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}

func connectWithRetry(open openFunc, attempts int, delay time.Duration, logger *slog.Logger, sleep func(time.Duration)) (*gorm.DB, error) {
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		db, err := open()
		if err == nil {
			if attempt > 1 {
				logger.Info("Connected to PostgreSQL after retry", slog.Int("attempt", attempt))
			}

			return db, nil
		}

		lastErr = err
		logger.Warn("PostgreSQL connection failed",
			slog.Int("attempt", attempt),
			slog.Int("maxAttempts", attempts),
			slog.Any("error", err),
		)

		if attempt < attempts {
			sleep(delay)
		}
	}

	return nil, errors.Wrapf(lastErr, "failed to connect to PostgreSQL after %d attempts", attempts)
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration

			if waitDelta > 0 {
				attrs := []slog.Attr{
					slog.Int64("waitCountDelta", waitDelta),
					slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
					slog.Int("openConns", cur.OpenConnections),
					slog.Int("inUseConns", cur.InUse),
				}
				level := slog.LevelDebug
				if waitDurationDelta >= dbPoolWarnDurationThreshold {
					level = slog.LevelWarn
				}
				logger.LogAttrs(ctx, level, "Postgres pool wait", attrs...)
			}

			prev = cur
		}
	}
}
