// Written to match `sqlc generate` (v1.29.0, pgx/v5) output for sqlc.yaml;
// regenerating replaces this file. queries_test.go keeps it in step with
// internal/infra/sqlc/queries.
// source: schedule_links.sql

package sqlc

import (
	"context"

	"github.com/google/uuid"
)

const getScheduleLinkByID = `-- name: GetScheduleLinkByID :one
SELECT id, slug, name, duration_minutes, buffer_minutes, timezone, max_future_days,
       max_bookings_per_day, status, workflow_id, created_at, updated_at
FROM schedule_links
WHERE id = $1
`

func (q *Queries) GetScheduleLinkByID(ctx context.Context, db DBTX, id uuid.UUID) (ScheduleLinks, error) {
	row := db.QueryRow(ctx, getScheduleLinkByID, id)
	var i ScheduleLinks
	err := row.Scan(
		&i.ID,
		&i.Slug,
		&i.Name,
		&i.DurationMinutes,
		&i.BufferMinutes,
		&i.Timezone,
		&i.MaxFutureDays,
		&i.MaxBookingsPerDay,
		&i.Status,
		&i.WorkflowID,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getScheduleLinkBySlug = `-- name: GetScheduleLinkBySlug :one
SELECT id, slug, name, duration_minutes, buffer_minutes, timezone, max_future_days,
       max_bookings_per_day, status, workflow_id, created_at, updated_at
FROM schedule_links
WHERE slug = $1
`

func (q *Queries) GetScheduleLinkBySlug(ctx context.Context, db DBTX, slug string) (ScheduleLinks, error) {
	row := db.QueryRow(ctx, getScheduleLinkBySlug, slug)
	var i ScheduleLinks
	err := row.Scan(
		&i.ID,
		&i.Slug,
		&i.Name,
		&i.DurationMinutes,
		&i.BufferMinutes,
		&i.Timezone,
		&i.MaxFutureDays,
		&i.MaxBookingsPerDay,
		&i.Status,
		&i.WorkflowID,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listLinkMembers = `-- name: ListLinkMembers :many
SELECT m.user_id, u.name, u.email, m.is_creator
FROM schedule_link_members m
JOIN users u ON u.id = m.user_id
WHERE m.link_id = $1
ORDER BY m.position, u.email
`

type ListLinkMembersRow struct {
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	IsCreator bool      `json:"is_creator"`
}

func (q *Queries) ListLinkMembers(ctx context.Context, db DBTX, linkID uuid.UUID) ([]ListLinkMembersRow, error) {
	rows, err := db.Query(ctx, listLinkMembers, linkID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListLinkMembersRow
	for rows.Next() {
		var i ListLinkMembersRow
		if err := rows.Scan(
			&i.UserID,
			&i.Name,
			&i.Email,
			&i.IsCreator,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listWindowsByLinkAndDay = `-- name: ListWindowsByLinkAndDay :many
SELECT id, link_id, user_id, day_of_week, start_minute, end_minute
FROM availability_windows
WHERE link_id = $1 AND day_of_week = $2
ORDER BY user_id, start_minute
`

type ListWindowsByLinkAndDayParams struct {
	LinkID    uuid.UUID `json:"link_id"`
	DayOfWeek int16     `json:"day_of_week"`
}

func (q *Queries) ListWindowsByLinkAndDay(ctx context.Context, db DBTX, arg ListWindowsByLinkAndDayParams) ([]AvailabilityWindows, error) {
	rows, err := db.Query(ctx, listWindowsByLinkAndDay, arg.LinkID, arg.DayOfWeek)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []AvailabilityWindows
	for rows.Next() {
		var i AvailabilityWindows
		if err := rows.Scan(
			&i.ID,
			&i.LinkID,
			&i.UserID,
			&i.DayOfWeek,
			&i.StartMinute,
			&i.EndMinute,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
