package repository

import (
	"context"
	"time"

	"meeting-scheduler/internal/infra"
	sqlc "meeting-scheduler/internal/infra/sqlc/generated"
	"meeting-scheduler/internal/pkg/pgconv"
	"meeting-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	jobStatusQueued = "queued"
	jobStatusSent   = "sent"
	jobStatusFailed = "failed"
)

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error
	CancelQueuedJobsForBooking(ctx context.Context, db sqlc.DBTX, bookingID pgtype.UUID) (int64, error)
	ClaimDueNotificationJobs(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimDueNotificationJobsParams) ([]sqlc.NotificationJobs, error)
	UpdateNotificationJobStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateNotificationJobStatusParams) error
}

type NotificationRepository struct {
	queries NotificationWriteQueries
	db      sqlc.DBTX
}

func NewNotificationRepository(queries NotificationWriteQueries, db sqlc.DBTX) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx sqlc.DBTX, job shared.NotificationJob) error {
	params := sqlc.CreateNotificationJobParams{
		Kind:      job.Kind,
		Topic:     job.Topic,
		Payload:   job.Payload,
		RunAt:     pgconv.TimeToPgtype(job.RunAt),
		Status:    jobStatusQueued,
		BookingID: pgconv.UUIDPtrToPgtype(job.BookingID),
	}

	err := r.queries.CreateNotificationJob(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}

	return nil
}

func (r *NotificationRepository) CancelJobsForBooking(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID) (int64, error) {
	cancelled, err := r.queries.CancelQueuedJobsForBooking(ctx, tx, pgconv.UUIDToPgtype(bookingID))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to cancel notification jobs", err)
	}

	return cancelled, nil
}

func (r *NotificationRepository) ClaimDue(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]shared.QueuedNotification, error) {
	rows, err := r.queries.ClaimDueNotificationJobs(ctx, tx, sqlc.ClaimDueNotificationJobsParams{
		RunAt: pgconv.TimeToPgtype(now),
		Limit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}

	jobs := make([]shared.QueuedNotification, len(rows))
	for i, row := range rows {
		jobs[i] = shared.QueuedNotification{
			ID:        row.ID,
			Kind:      row.Kind,
			Topic:     row.Topic,
			Payload:   row.Payload,
			RunAt:     pgconv.TimeFromPgtype(row.RunAt),
			Attempts:  row.Attempts,
			BookingID: pgconv.UUIDPtrFromPgtype(row.BookingID),
		}
	}

	return jobs, nil
}

func (r *NotificationRepository) MarkSent(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	err := r.queries.UpdateNotificationJobStatus(ctx, tx, sqlc.UpdateNotificationJobStatusParams{
		ID:     id,
		Status: jobStatusSent,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification job sent", err)
	}

	return nil
}

func (r *NotificationRepository) MarkFailed(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, reason string, retryAt *time.Time) error {
	params := sqlc.UpdateNotificationJobStatusParams{
		ID:        id,
		Status:    jobStatusFailed,
		LastError: pgconv.StringToPgtype(reason),
	}
	if retryAt != nil {
		params.Status = jobStatusQueued
		params.NextRunAt = pgconv.TimeToPgtype(*retryAt)
	}

	err := r.queries.UpdateNotificationJobStatus(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification job failed", err)
	}

	return nil
}
