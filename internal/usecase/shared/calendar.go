package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CalendarEvent is the entry written to a participant's own calendar for a booking.
type CalendarEvent struct {
	Title       string
	Description string
	Start       time.Time
	End         time.Time
}

// CalendarEventWriter mirrors bookings into participants' external calendars.
// CreateEvent returns an empty id when the writer keeps no remote event.
type CalendarEventWriter interface {
	CreateEvent(ctx context.Context, participant uuid.UUID, event CalendarEvent) (string, error)
	DeleteEvent(ctx context.Context, participant uuid.UUID, eventID string) error
}
