package components

import (
	"context"
	"log/slog"

	"meeting-scheduler/internal/infra/notifier"
	"meeting-scheduler/internal/infra/worker"
	"meeting-scheduler/internal/pkg/config"
	"meeting-scheduler/internal/usecase/commands"
	"meeting-scheduler/internal/usecase/shared"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewNotificationPublisher,
	),
	fx.Invoke(
		startNotificationDispatcher,
		startBookingPruner,
	),
)

func NewNotificationPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.NotificationPublisher, error) {
	if !cfg.AMQP.Enabled {
		logger.Info("AMQP disabled, notifications are only logged")
		return notifier.NewLogPublisher(logger), nil
	}

	pub, err := notifier.NewAMQPPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub, nil
}

func startNotificationDispatcher(lc fx.Lifecycle, cfg config.Config, cmds commands.NotificationCommands, logger *slog.Logger) {
	w := worker.NewPeriodic("notification_dispatcher", cfg.AMQP.PollInterval, func(ctx context.Context) error {
		sent, err := cmds.DispatchDue(ctx)
		if err != nil {
			return err
		}
		if sent > 0 {
			logger.Debug("notifications dispatched", "count", sent)
		}
		return nil
	}, logger)
	appendWorker(lc, w)
}

func startBookingPruner(lc fx.Lifecycle, cfg config.Config, cmds commands.MaintenanceCommands, logger *slog.Logger) {
	w := worker.NewPeriodic("booking_pruner", cfg.Retention.PruneInterval, func(ctx context.Context) error {
		_, err := cmds.PruneBookings(ctx)
		return err
	}, logger)
	appendWorker(lc, w)
}

func appendWorker(lc fx.Lifecycle, w *worker.Periodic) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			w.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			w.Stop()
			return nil
		},
	})
}
