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

const defaultRetentionDays = 90

type MaintenanceCommands interface {
	// PruneBookings deletes bookings that started before the retention cutoff.
	PruneBookings(ctx context.Context) (int64, error)
}

type maintenanceCommandsImpl struct {
	uow       shared.UnitOfWork
	clock     clock.Clock
	retention time.Duration
	logger    *slog.Logger
}

func NewMaintenanceCommands(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config, logger *slog.Logger) MaintenanceCommands {
	days := cfg.Retention.BookingDays
	if days <= 0 {
		days = defaultRetentionDays
	}
	return &maintenanceCommandsImpl{
		uow:       uow,
		clock:     clk,
		retention: time.Duration(days) * 24 * time.Hour,
		logger:    logger,
	}
}

func (c *maintenanceCommandsImpl) PruneBookings(ctx context.Context) (int64, error) {
	cutoff := c.clock.Now().Add(-c.retention)

	var deleted int64
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Bookings().DeleteStartedBefore(ctx, tx.DB(), cutoff)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		deleted = n
		return nil
	})
	if err != nil {
		return 0, err
	}

	c.logger.Info("old bookings pruned", "deleted", deleted, "cutoff", cutoff)
	return deleted, nil
}
