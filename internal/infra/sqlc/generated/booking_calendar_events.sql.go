// Written to match `sqlc generate` (v1.29.0, pgx/v5) output for sqlc.yaml;
// regenerating replaces this file. queries_test.go keeps it in step with
// internal/infra/sqlc/queries.
// source: booking_calendar_events.sql

package sqlc

import (
	"context"

	"github.com/google/uuid"
)

const createBookingCalendarEvent = `-- name: CreateBookingCalendarEvent :exec
INSERT INTO booking_calendar_events (booking_id, user_id, google_event_id)
VALUES ($1, $2, $3)
ON CONFLICT (booking_id, user_id) DO UPDATE
SET google_event_id = EXCLUDED.google_event_id
`

type CreateBookingCalendarEventParams struct {
	BookingID     uuid.UUID `json:"booking_id"`
	UserID        uuid.UUID `json:"user_id"`
	GoogleEventID string    `json:"google_event_id"`
}

func (q *Queries) CreateBookingCalendarEvent(ctx context.Context, db DBTX, arg CreateBookingCalendarEventParams) error {
	_, err := db.Exec(ctx, createBookingCalendarEvent, arg.BookingID, arg.UserID, arg.GoogleEventID)
	return err
}

const listBookingCalendarEvents = `-- name: ListBookingCalendarEvents :many
SELECT user_id, google_event_id
FROM booking_calendar_events
WHERE booking_id = $1
ORDER BY created_at, user_id
`

type ListBookingCalendarEventsRow struct {
	UserID        uuid.UUID `json:"user_id"`
	GoogleEventID string    `json:"google_event_id"`
}

func (q *Queries) ListBookingCalendarEvents(ctx context.Context, db DBTX, bookingID uuid.UUID) ([]ListBookingCalendarEventsRow, error) {
	rows, err := db.Query(ctx, listBookingCalendarEvents, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListBookingCalendarEventsRow
	for rows.Next() {
		var i ListBookingCalendarEventsRow
		if err := rows.Scan(&i.UserID, &i.GoogleEventID); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
