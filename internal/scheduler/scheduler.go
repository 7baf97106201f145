package scheduler

import (
	"context"
	"log/slog"
	"time"

	"church_sync/internal/domain"
)

// Syncer is one content pipeline the scheduler drives.
type Syncer interface {
	SourceID() string
	Sync(ctx context.Context) (*domain.SyncResult, error)
}

// Scheduler runs every registered syncer once per interval. One syncer's
// failure does not stop the loop or the other syncers.
type Scheduler struct {
	syncers  []Syncer
	interval time.Duration
	logger   *slog.Logger
}

func NewScheduler(syncers []Syncer, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		syncers:  syncers,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval, "syncers", len(s.syncers))

	s.runAll(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Scheduler) runAll(ctx context.Context) {
	for _, syncer := range s.syncers {
		syncCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
		result, err := syncer.Sync(syncCtx)
		cancel()

		if err != nil {
			s.logger.Error("sync failed", "source", syncer.SourceID(), "error", err)
			continue
		}
		if len(result.Errors) > 0 {
			s.logger.Warn("sync completed with errors",
				"source", syncer.SourceID(),
				"synced", result.Synced,
				"errors", len(result.Errors),
			)
		}
	}
}
