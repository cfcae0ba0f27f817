package notifier

import (
	"context"
	"log/slog"

	"meeting-scheduler/internal/usecase/shared"
)

// LogPublisher only logs notifications. It stands in when no broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, n shared.QueuedNotification) error {
	p.logger.Info("notification published",
		"job_id", n.ID.String(),
		"kind", n.Kind,
		"topic", n.Topic,
		"run_at", n.RunAt,
	)
	return nil
}
