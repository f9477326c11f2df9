package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"

	"shopadmin/internal/core/application/usecases/commands"
	"shopadmin/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// staleCancellationReason is recorded on orders cancelled by the job and is
// visible to admins in the order detail and the activity log.
const staleCancellationReason = "not confirmed in time"

// StaleOrderCancellationJob cancels Pending orders that were never confirmed.
// Runs hourly and cancels through the regular cancellation command so the
// activity log and the status-changed event are produced the same way as for
// a manual cancellation.
type StaleOrderCancellationJob struct {
	uowFactory    commands.OrderUoWFactory
	handler       commands.CancelOrderCommandHandler
	systemActorID kernel.UUID
	maxPendingAge time.Duration
	cron          *cron.Cron
	logger        *zap.Logger
}

// NewStaleOrderCancellationJob creates the job. systemActorID identifies the
// scheduler in the activity log; maxPendingAge is how long an order may stay
// Pending before it is cancelled.
func NewStaleOrderCancellationJob(
	uowFactory commands.OrderUoWFactory,
	handler commands.CancelOrderCommandHandler,
	systemActorID kernel.UUID,
	maxPendingAge time.Duration,
	logger *zap.Logger,
) *StaleOrderCancellationJob {
	return &StaleOrderCancellationJob{
		uowFactory:    uowFactory,
		handler:       handler,
		systemActorID: systemActorID,
		maxPendingAge: maxPendingAge,
		cron:          cron.New(cron.WithSeconds()),
		logger:        logger.With(zap.String("component", "stale_order_cancellation_job")),
	}
}

// Start schedules the job to run at the top of every hour.
func (j *StaleOrderCancellationJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("stale order cancellation job started (running hourly)",
		zap.Duration("max_pending_age", j.maxPendingAge))
	return nil
}

// Stop stops the job.
func (j *StaleOrderCancellationJob) Stop() {
	j.cron.Stop()
	j.logger.Info("stale order cancellation job stopped")
}

func (j *StaleOrderCancellationJob) run() {
	ctx := context.Background()
	cutoff := time.Now().UTC().Add(-j.maxPendingAge)

	uow := j.uowFactory.Create()

	stale, err := uow.OrderRepository().GetAllPendingOlderThan(ctx, cutoff)
	if err != nil {
		j.logger.Error("listing stale pending orders failed", zap.Error(err))
		return
	}
	if len(stale) == 0 {
		return
	}

	cancelled := 0
	for _, ord := range stale {
		command, err := commands.NewCancelOrderCommand(
			ord.ID(), staleCancellationReason, j.systemActorID, true)
		if err != nil {
			j.logger.Error("building cancellation command failed",
				zap.String("order_id", ord.ID().String()), zap.Error(err))
			continue
		}

		if err := j.handler.Handle(ctx, command); err != nil {
			j.logger.Error("cancelling stale order failed",
				zap.String("order_id", ord.ID().String()), zap.Error(err))
			continue
		}
		cancelled++
	}

	j.logger.Info("stale pending orders cancelled",
		zap.Int("found", len(stale)), zap.Int("cancelled", cancelled))
}
