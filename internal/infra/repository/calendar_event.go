package repository

import (
	"context"

	"meeting-scheduler/internal/infra"
	sqlc "meeting-scheduler/internal/infra/sqlc/generated"
	"meeting-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

type CalendarEventQueries interface {
	CreateBookingCalendarEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingCalendarEventParams) error
	ListBookingCalendarEvents(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) ([]sqlc.ListBookingCalendarEventsRow, error)
}

type CalendarEventRepository struct {
	queries CalendarEventQueries
	db      sqlc.DBTX
}

func NewCalendarEventRepository(queries CalendarEventQueries, db sqlc.DBTX) *CalendarEventRepository {
	return &CalendarEventRepository{
		queries: queries,
		db:      db,
	}
}

// Save replaces any event id already stored for the same booking and member.
func (r *CalendarEventRepository) Save(ctx context.Context, tx sqlc.DBTX, ref shared.CalendarEventRef) error {
	err := r.queries.CreateBookingCalendarEvent(ctx, tx, sqlc.CreateBookingCalendarEventParams{
		BookingID:     ref.BookingID,
		UserID:        ref.UserID,
		GoogleEventID: ref.EventID,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to save calendar event", err)
	}
	return nil
}

func (r *CalendarEventRepository) ListForBooking(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID) ([]shared.CalendarEventRef, error) {
	rows, err := r.queries.ListBookingCalendarEvents(ctx, tx, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list calendar events", err)
	}

	refs := make([]shared.CalendarEventRef, 0, len(rows))
	for _, row := range rows {
		refs = append(refs, shared.CalendarEventRef{
			BookingID: bookingID,
			UserID:    row.UserID,
			EventID:   row.GoogleEventID,
		})
	}
	return refs, nil
}
