package busytime

import (
	"context"
	"time"

	"meeting-scheduler/internal/domain/interval"
	"meeting-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

// NoopProvider treats every participant as free.
type NoopProvider struct{}

func NewNoopProvider() NoopProvider {
	return NoopProvider{}
}

func (NoopProvider) BusyTimes(context.Context, uuid.UUID, time.Time, time.Time) ([]interval.Range, error) {
	return nil, nil
}

func (NoopProvider) Invalidate(context.Context, uuid.UUID) error {
	return nil
}

// NoopEventWriter keeps no remote events.
type NoopEventWriter struct{}

func (NoopEventWriter) CreateEvent(context.Context, uuid.UUID, shared.CalendarEvent) (string, error) {
	return "", nil
}

func (NoopEventWriter) DeleteEvent(context.Context, uuid.UUID, string) error {
	return nil
}
