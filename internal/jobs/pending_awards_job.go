package jobs

import (
	"context"
	"log/slog"

	"evaluation/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// PendingAwardsJob periodically reports how many awards are still awaiting an
// evaluation decision. Purely observational: it never touches award state, the
// count it logs is the operational signal for stalled evaluations.
type PendingAwardsJob struct {
	handler queries.CountPendingAwardsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPendingAwardsJob creates a job that counts undecided awards every minute.
func NewPendingAwardsJob(handler queries.CountPendingAwardsQueryHandler, logger *slog.Logger) *PendingAwardsJob {
	return &PendingAwardsJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "pending_awards_job"),
	}
}

// Start begins the pending awards job to run every minute.
func (j *PendingAwardsJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		query := queries.NewCountPendingAwardsQuery()

		count, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Pending awards job failed", "error", err)
			return
		}

		if count > 0 {
			j.logger.InfoContext(ctx, "Awards awaiting evaluation decision", "count", count)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending awards job started (running every minute)")
	return nil
}

// Stop stops the pending awards job.
func (j *PendingAwardsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending awards job stopped")
}
