// Written to match `sqlc generate` (v1.29.0, pgx/v5) output for sqlc.yaml;
// regenerating replaces this file. queries_test.go keeps it in step with
// internal/infra/sqlc/queries.
// source: bookings.sql

package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const cancelBooking = `-- name: CancelBooking :execrows
UPDATE bookings
SET status = 'cancelled', cancelled_at = $2
WHERE id = $1 AND status = 'confirmed'
`

type CancelBookingParams struct {
	ID          uuid.UUID          `json:"id"`
	CancelledAt pgtype.Timestamptz `json:"cancelled_at"`
}

func (q *Queries) CancelBooking(ctx context.Context, db DBTX, arg CancelBookingParams) (int64, error) {
	result, err := db.Exec(ctx, cancelBooking, arg.ID, arg.CancelledAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const createBooking = `-- name: CreateBooking :one
INSERT INTO bookings (
    id, link_id, start_time, end_time, status, requester_name, requester_email,
    requester_timezone, notes, contact_id, created_at
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
)
RETURNING id
`

type CreateBookingParams struct {
	ID                uuid.UUID          `json:"id"`
	LinkID            uuid.UUID          `json:"link_id"`
	StartTime         pgtype.Timestamptz `json:"start_time"`
	EndTime           pgtype.Timestamptz `json:"end_time"`
	Status            string             `json:"status"`
	RequesterName     string             `json:"requester_name"`
	RequesterEmail    string             `json:"requester_email"`
	RequesterTimezone string             `json:"requester_timezone"`
	Notes             pgtype.Text        `json:"notes"`
	ContactID         pgtype.UUID        `json:"contact_id"`
	CreatedAt         pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateBooking(ctx context.Context, db DBTX, arg CreateBookingParams) (uuid.UUID, error) {
	row := db.QueryRow(ctx, createBooking,
		arg.ID,
		arg.LinkID,
		arg.StartTime,
		arg.EndTime,
		arg.Status,
		arg.RequesterName,
		arg.RequesterEmail,
		arg.RequesterTimezone,
		arg.Notes,
		arg.ContactID,
		arg.CreatedAt,
	)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

const deleteBookingsStartedBefore = `-- name: DeleteBookingsStartedBefore :execrows
DELETE FROM bookings
WHERE start_time < $1
`

func (q *Queries) DeleteBookingsStartedBefore(ctx context.Context, db DBTX, startTime pgtype.Timestamptz) (int64, error) {
	result, err := db.Exec(ctx, deleteBookingsStartedBefore, startTime)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getBookingByID = `-- name: GetBookingByID :one
SELECT id, link_id, start_time, end_time, status, requester_name, requester_email,
       requester_timezone, notes, contact_id, created_at, cancelled_at
FROM bookings
WHERE id = $1
`

func (q *Queries) GetBookingByID(ctx context.Context, db DBTX, id uuid.UUID) (Bookings, error) {
	row := db.QueryRow(ctx, getBookingByID, id)
	var i Bookings
	err := row.Scan(
		&i.ID,
		&i.LinkID,
		&i.StartTime,
		&i.EndTime,
		&i.Status,
		&i.RequesterName,
		&i.RequesterEmail,
		&i.RequesterTimezone,
		&i.Notes,
		&i.ContactID,
		&i.CreatedAt,
		&i.CancelledAt,
	)
	return i, err
}

const getBookingForLink = `-- name: GetBookingForLink :one
SELECT b.id, b.link_id, b.start_time, b.end_time, b.status, b.requester_name, b.requester_email,
       b.requester_timezone, b.notes, b.contact_id, b.created_at, b.cancelled_at
FROM bookings b
JOIN schedule_links l ON l.id = b.link_id
WHERE b.id = $1 AND l.slug = $2
`

type GetBookingForLinkParams struct {
	ID   uuid.UUID `json:"id"`
	Slug string    `json:"slug"`
}

type GetBookingForLinkRow struct {
	ID                uuid.UUID          `json:"id"`
	LinkID            uuid.UUID          `json:"link_id"`
	StartTime         pgtype.Timestamptz `json:"start_time"`
	EndTime           pgtype.Timestamptz `json:"end_time"`
	Status            string             `json:"status"`
	RequesterName     string             `json:"requester_name"`
	RequesterEmail    string             `json:"requester_email"`
	RequesterTimezone string             `json:"requester_timezone"`
	Notes             pgtype.Text        `json:"notes"`
	ContactID         pgtype.UUID        `json:"contact_id"`
	CreatedAt         pgtype.Timestamptz `json:"created_at"`
	CancelledAt       pgtype.Timestamptz `json:"cancelled_at"`
}

func (q *Queries) GetBookingForLink(ctx context.Context, db DBTX, arg GetBookingForLinkParams) (GetBookingForLinkRow, error) {
	row := db.QueryRow(ctx, getBookingForLink, arg.ID, arg.Slug)
	var i GetBookingForLinkRow
	err := row.Scan(
		&i.ID,
		&i.LinkID,
		&i.StartTime,
		&i.EndTime,
		&i.Status,
		&i.RequesterName,
		&i.RequesterEmail,
		&i.RequesterTimezone,
		&i.Notes,
		&i.ContactID,
		&i.CreatedAt,
		&i.CancelledAt,
	)
	return i, err
}

const listConfirmedBookingsOverlapping = `-- name: ListConfirmedBookingsOverlapping :many
SELECT start_time, end_time
FROM bookings
WHERE link_id = $1
  AND status = 'confirmed'
  AND start_time < $2
  AND end_time > $3
ORDER BY start_time
`

type ListConfirmedBookingsOverlappingParams struct {
	LinkID     uuid.UUID          `json:"link_id"`
	RangeEnd   pgtype.Timestamptz `json:"range_end"`
	RangeStart pgtype.Timestamptz `json:"range_start"`
}

type ListConfirmedBookingsOverlappingRow struct {
	StartTime pgtype.Timestamptz `json:"start_time"`
	EndTime   pgtype.Timestamptz `json:"end_time"`
}

func (q *Queries) ListConfirmedBookingsOverlapping(ctx context.Context, db DBTX, arg ListConfirmedBookingsOverlappingParams) ([]ListConfirmedBookingsOverlappingRow, error) {
	rows, err := db.Query(ctx, listConfirmedBookingsOverlapping, arg.LinkID, arg.RangeEnd, arg.RangeStart)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListConfirmedBookingsOverlappingRow
	for rows.Next() {
		var i ListConfirmedBookingsOverlappingRow
		if err := rows.Scan(&i.StartTime, &i.EndTime); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
