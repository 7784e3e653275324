package jobs

import (
	"context"
	"log/slog"
	"time"

	"eats/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PromotionExpiryJob manages the scheduled demotion of restaurants whose paid
// promotion window has lapsed. Runs every minute.
type PromotionExpiryJob struct {
	handler commands.ExpirePromotionsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPromotionExpiryJob creates a new job for expiring restaurant promotions.
// Uses ExpirePromotionsCommandHandler to demote lapsed restaurants.
func NewPromotionExpiryJob(handler commands.ExpirePromotionsCommandHandler, logger *slog.Logger) *PromotionExpiryJob {
	return &PromotionExpiryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "promotion_expiry_job"),
	}
}

// Start begins the promotion expiry job to run at the top of every minute.
func (j *PromotionExpiryJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewExpirePromotionsCommand(time.Now().UTC())
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Promotion expiry command construction failed", "error", cmdErr)
			return
		}

		demoted, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Promotion expiry job failed", "error", handleErr)
			return
		}

		if demoted > 0 {
			j.logger.InfoContext(ctx, "Expired restaurant promotions", "demoted", demoted)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Promotion expiry job started (running every minute)")
	return nil
}

// Stop stops the promotion expiry job.
func (j *PromotionExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Promotion expiry job stopped")
}
