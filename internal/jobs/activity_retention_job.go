package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"

	"shopadmin/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ActivityRetentionJob prunes activity log entries older than the configured
// retention window. Runs nightly; the delete is a single statement so no
// explicit transaction is needed.
type ActivityRetentionJob struct {
	uowFactory    commands.UoWFactory
	retentionDays int
	cron          *cron.Cron
	logger        *zap.Logger
}

// NewActivityRetentionJob creates the retention job.
func NewActivityRetentionJob(
	uowFactory commands.UoWFactory,
	retentionDays int,
	logger *zap.Logger,
) *ActivityRetentionJob {
	return &ActivityRetentionJob{
		uowFactory:    uowFactory,
		retentionDays: retentionDays,
		cron:          cron.New(cron.WithSeconds()),
		logger:        logger.With(zap.String("component", "activity_retention_job")),
	}
}

// Start schedules the job to run every night at 03:00.
func (j *ActivityRetentionJob) Start() error {
	_, err := j.cron.AddFunc("0 0 3 * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("activity retention job started (running daily)",
		zap.Int("retention_days", j.retentionDays))
	return nil
}

// Stop stops the job.
func (j *ActivityRetentionJob) Stop() {
	j.cron.Stop()
	j.logger.Info("activity retention job stopped")
}

func (j *ActivityRetentionJob) run() {
	ctx := context.Background()
	cutoff := time.Now().UTC().AddDate(0, 0, -j.retentionDays)

	uow := j.uowFactory.Create()

	deleted, err := uow.ActivityRepository().DeleteOlderThan(ctx, cutoff)
	if err != nil {
		j.logger.Error("pruning activity log failed", zap.Error(err))
		return
	}

	if deleted > 0 {
		j.logger.Info("activity log pruned", zap.Int64("deleted", deleted))
	}
}
