package jobs

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"shopadmin/internal/core/application/usecases/commands"
	"shopadmin/internal/core/domain/model/kernel"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	staleOrderJob *StaleOrderCancellationJob
	retentionJob  *ActivityRetentionJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers and factories as dependencies to wire up the jobs.
func NewJobManager(
	orderUoWFactory commands.OrderUoWFactory,
	uowFactory commands.UoWFactory,
	cancelHandler commands.CancelOrderCommandHandler,
	systemActorID kernel.UUID,
	maxPendingAge time.Duration,
	activityRetentionDays int,
	logger *zap.Logger,
) *JobManager {
	return &JobManager{
		staleOrderJob: NewStaleOrderCancellationJob(
			orderUoWFactory, cancelHandler, systemActorID, maxPendingAge, logger),
		retentionJob: NewActivityRetentionJob(
			uowFactory, activityRetentionDays, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.staleOrderJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale order cancellation job: %w", err)
	}

	if err := jm.retentionJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.staleOrderJob.Stop()
		return fmt.Errorf("failed to start activity retention job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.retentionJob.Stop()
	jm.staleOrderJob.Stop()
}
