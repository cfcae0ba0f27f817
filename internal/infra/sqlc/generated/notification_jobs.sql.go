// Written to match `sqlc generate` (v1.29.0, pgx/v5) output for sqlc.yaml;
// regenerating replaces this file. queries_test.go keeps it in step with
// internal/infra/sqlc/queries.
// source: notification_jobs.sql

package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const cancelQueuedJobsForBooking = `-- name: CancelQueuedJobsForBooking :execrows
UPDATE notification_jobs
SET status = 'cancelled', updated_at = now()
WHERE booking_id = $1 AND status = 'queued'
`

func (q *Queries) CancelQueuedJobsForBooking(ctx context.Context, db DBTX, bookingID pgtype.UUID) (int64, error) {
	result, err := db.Exec(ctx, cancelQueuedJobsForBooking, bookingID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const claimDueNotificationJobs = `-- name: ClaimDueNotificationJobs :many
SELECT id, kind, topic, payload, run_at, status, attempts, last_error, booking_id, created_at, updated_at
FROM notification_jobs
WHERE status = 'queued' AND run_at <= $1
ORDER BY run_at
LIMIT $2
FOR UPDATE SKIP LOCKED
`

type ClaimDueNotificationJobsParams struct {
	RunAt pgtype.Timestamptz `json:"run_at"`
	Limit int32              `json:"limit"`
}

func (q *Queries) ClaimDueNotificationJobs(ctx context.Context, db DBTX, arg ClaimDueNotificationJobsParams) ([]NotificationJobs, error) {
	rows, err := db.Query(ctx, claimDueNotificationJobs, arg.RunAt, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []NotificationJobs
	for rows.Next() {
		var i NotificationJobs
		if err := rows.Scan(
			&i.ID,
			&i.Kind,
			&i.Topic,
			&i.Payload,
			&i.RunAt,
			&i.Status,
			&i.Attempts,
			&i.LastError,
			&i.BookingID,
			&i.CreatedAt,
			&i.UpdatedAt,
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

const createNotificationJob = `-- name: CreateNotificationJob :exec
INSERT INTO notification_jobs (kind, topic, payload, run_at, status, booking_id)
VALUES ($1, $2, $3, $4, $5, $6)
`

type CreateNotificationJobParams struct {
	Kind      string             `json:"kind"`
	Topic     string             `json:"topic"`
	Payload   []byte             `json:"payload"`
	RunAt     pgtype.Timestamptz `json:"run_at"`
	Status    string             `json:"status"`
	BookingID pgtype.UUID        `json:"booking_id"`
}

func (q *Queries) CreateNotificationJob(ctx context.Context, db DBTX, arg CreateNotificationJobParams) error {
	_, err := db.Exec(ctx, createNotificationJob,
		arg.Kind,
		arg.Topic,
		arg.Payload,
		arg.RunAt,
		arg.Status,
		arg.BookingID,
	)
	return err
}

const updateNotificationJobStatus = `-- name: UpdateNotificationJobStatus :exec
UPDATE notification_jobs
SET status = $1,
    last_error = $2,
    run_at = COALESCE($3, run_at),
    attempts = attempts + 1,
    updated_at = now()
WHERE id = $4
`

type UpdateNotificationJobStatusParams struct {
	Status    string             `json:"status"`
	LastError pgtype.Text        `json:"last_error"`
	NextRunAt pgtype.Timestamptz `json:"next_run_at"`
	ID        uuid.UUID          `json:"id"`
}

func (q *Queries) UpdateNotificationJobStatus(ctx context.Context, db DBTX, arg UpdateNotificationJobStatusParams) error {
	_, err := db.Exec(ctx, updateNotificationJobStatus,
		arg.Status,
		arg.LastError,
		arg.NextRunAt,
		arg.ID,
	)
	return err
}
