package commands

import (
	"context"
	"log/slog"
	"time"

	"meeting-scheduler/internal/pkg/clock"
	"meeting-scheduler/internal/pkg/config"
	"meeting-scheduler/internal/pkg/errs"
	"meeting-scheduler/internal/usecase/shared"
)

const (
	defaultDispatchBatch = 50
	defaultMaxAttempts   = 5
	retryBase            = 30 * time.Second
	maxRetryDelay        = time.Hour
)

type NotificationCommands interface {
	// DispatchDue publishes queued jobs whose run time has passed and reports how many were sent.
	DispatchDue(ctx context.Context) (int, error)
}

type notificationCommandsImpl struct {
	uow         shared.UnitOfWork
	publisher   shared.NotificationPublisher
	clock       clock.Clock
	batchSize   int32
	maxAttempts int32
	logger      *slog.Logger
}

func NewNotificationCommands(
	uow shared.UnitOfWork,
	publisher shared.NotificationPublisher,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) NotificationCommands {
	batch := cfg.AMQP.BatchSize
	if batch <= 0 {
		batch = defaultDispatchBatch
	}
	attempts := cfg.AMQP.MaxAttempts
	if attempts <= 0 {
		attempts = defaultMaxAttempts
	}
	return &notificationCommandsImpl{
		uow:         uow,
		publisher:   publisher,
		clock:       clk,
		batchSize:   batch,
		maxAttempts: attempts,
		logger:      logger,
	}
}

func (c *notificationCommandsImpl) DispatchDue(ctx context.Context) (int, error) {
	sent := 0

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sent = 0
		now := c.clock.Now()

		jobs, err := tx.Notifications().ClaimDue(ctx, tx.DB(), now, c.batchSize)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		for _, job := range jobs {
			if pubErr := c.publisher.Publish(ctx, job); pubErr != nil {
				retryAt := c.nextAttempt(job.Attempts, now)
				if retryAt == nil {
					c.logger.Error("notification failed permanently",
						"job_id", job.ID.String(),
						"topic", job.Topic,
						"attempts", job.Attempts+1,
						"error", pubErr.Error(),
					)
				} else {
					c.logger.Warn("notification publish failed, will retry",
						"job_id", job.ID.String(),
						"topic", job.Topic,
						"retry_at", *retryAt,
						"error", pubErr.Error(),
					)
				}
				if err := tx.Notifications().MarkFailed(ctx, tx.DB(), job.ID, pubErr.Error(), retryAt); err != nil {
					return errs.Mark(err, errs.ErrDatabaseOperationFailed)
				}
				continue
			}

			if err := tx.Notifications().MarkSent(ctx, tx.DB(), job.ID); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
			sent++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return sent, nil
}

// nextAttempt doubles the delay per attempt; nil once the job is out of attempts.
func (c *notificationCommandsImpl) nextAttempt(attempts int32, now time.Time) *time.Time {
	if attempts+1 >= c.maxAttempts {
		return nil
	}
	delay := retryBase << attempts
	if delay <= 0 || delay > maxRetryDelay {
		delay = maxRetryDelay
	}
	at := now.Add(delay)
	return &at
}
