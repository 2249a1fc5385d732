package scheduler

import (
	"context"
	"time"

	"github.com/jteo/listify-backend/internal/app/repository"
	"github.com/jteo/listify-backend/pkg/logger"
	"github.com/robfig/cron/v3"
)

// DraftSweeper periodically evicts abandoned drafts from the store.
// With the Redis store this is a no-op since keys carry a TTL; the
// in-memory store relies on it.
type DraftSweeper struct {
	cron      *cron.Cron
	draftRepo repository.DraftRepository
}

func NewDraftSweeper(draftRepo repository.DraftRepository) *DraftSweeper {
	return &DraftSweeper{
		cron:      cron.New(),
		draftRepo: draftRepo,
	}
}

// Start schedules the sweep every 15 minutes.
func (s *DraftSweeper) Start() error {
	_, err := s.cron.AddFunc("*/15 * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		purged, err := s.draftRepo.PurgeExpired(ctx)
		if err != nil {
			logger.Error("Failed to purge expired drafts", err, nil)
			return
		}

		if purged > 0 {
			logger.Info("Purged expired drafts", map[string]interface{}{
				"count": purged,
			})
		}
	})

	if err != nil {
		logger.Error("Failed to add cron job for draft sweeping", err, nil)
		return err
	}

	s.cron.Start()
	logger.Info("Draft sweeper started (every 15 minutes)", nil)

	return nil
}

// Stop stops the scheduler.
func (s *DraftSweeper) Stop() {
	logger.Info("Stopping draft sweeper...", nil)
	s.cron.Stop()
	logger.Info("Draft sweeper stopped", nil)
}
