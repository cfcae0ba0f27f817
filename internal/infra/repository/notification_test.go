//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"meeting-scheduler/internal/infra"
	"meeting-scheduler/internal/infra/repository"
	sqlc "meeting-scheduler/internal/infra/sqlc/generated"
	"meeting-scheduler/internal/usecase/shared"
	repositorymock "meeting-scheduler/tests/mock/repository"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotificationRepository_CreateJob(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewNotificationRepository(mockQueries, mockDB)

	bookingID := uuid.New()
	runAt := time.Date(2030, 5, 1, 8, 45, 0, 0, time.UTC)

	mockQueries.EXPECT().CreateNotificationJob(ctx, mockDB, sqlc.CreateNotificationJobParams{
		Kind:      "workflow",
		Topic:     "send_reminder",
		Payload:   []byte(`{"booking_id":"x"}`),
		RunAt:     pgtype.Timestamptz{Time: runAt, Valid: true},
		Status:    "queued",
		BookingID: pgtype.UUID{Bytes: bookingID, Valid: true},
	}).Return(nil)

	err := repo.CreateJob(ctx, mockDB, shared.NotificationJob{
		Kind:      "workflow",
		Topic:     "send_reminder",
		Payload:   []byte(`{"booking_id":"x"}`),
		RunAt:     runAt,
		BookingID: &bookingID,
	})
	require.NoError(t, err)
}

func TestNotificationRepository_ClaimDue(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2030, 5, 1, 9, 0, 0, 0, time.UTC)
	bookingID := uuid.New()
	jobID := uuid.New()

	t.Run("success: rows are mapped to queued notifications", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewNotificationRepository(mockQueries, mockDB)

		mockQueries.EXPECT().ClaimDueNotificationJobs(ctx, mockDB, sqlc.ClaimDueNotificationJobsParams{
			RunAt: pgtype.Timestamptz{Time: now, Valid: true},
			Limit: 10,
		}).Return([]sqlc.NotificationJobs{{
			ID:        jobID,
			Kind:      "email",
			Topic:     "booking_confirmed",
			Payload:   []byte(`{}`),
			RunAt:     pgtype.Timestamptz{Time: now.Add(-time.Minute), Valid: true},
			Status:    "queued",
			Attempts:  2,
			BookingID: pgtype.UUID{Bytes: bookingID, Valid: true},
		}}, nil)

		jobs, err := repo.ClaimDue(ctx, mockDB, now, 10)
		require.NoError(t, err)

		expected := []shared.QueuedNotification{{
			ID:        jobID,
			Kind:      "email",
			Topic:     "booking_confirmed",
			Payload:   []byte(`{}`),
			RunAt:     now.Add(-time.Minute),
			Attempts:  2,
			BookingID: &bookingID,
		}}
		if diff := cmp.Diff(expected, jobs); diff != "" {
			t.Errorf("claimed jobs mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewNotificationRepository(mockQueries, mockDB)

		mockQueries.EXPECT().ClaimDueNotificationJobs(ctx, mockDB, gomock.Any()).Return(nil, errors.New("lock timeout"))

		jobs, err := repo.ClaimDue(ctx, mockDB, now, 10)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Nil(t, jobs)
	})
}

func TestNotificationRepository_MarkFailed(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	retryAt := time.Date(2030, 5, 1, 9, 1, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		retryAt  *time.Time
		expected sqlc.UpdateNotificationJobStatusParams
	}{
		{
			name:    "retry scheduled: job goes back to the queue",
			retryAt: &retryAt,
			expected: sqlc.UpdateNotificationJobStatusParams{
				ID:        id,
				Status:    "queued",
				LastError: pgtype.Text{String: "broker unreachable", Valid: true},
				NextRunAt: pgtype.Timestamptz{Time: retryAt, Valid: true},
			},
		},
		{
			name:    "attempts exhausted: job fails for good",
			retryAt: nil,
			expected: sqlc.UpdateNotificationJobStatusParams{
				ID:        id,
				Status:    "failed",
				LastError: pgtype.Text{String: "broker unreachable", Valid: true},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewNotificationRepository(mockQueries, mockDB)

			mockQueries.EXPECT().UpdateNotificationJobStatus(ctx, mockDB, tc.expected).Return(nil)

			err := repo.MarkFailed(ctx, mockDB, id, "broker unreachable", tc.retryAt)
			require.NoError(t, err)
		})
	}
}

func TestNotificationRepository_MarkSent(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewNotificationRepository(mockQueries, mockDB)

	id := uuid.New()
	mockQueries.EXPECT().UpdateNotificationJobStatus(ctx, mockDB, sqlc.UpdateNotificationJobStatusParams{
		ID:     id,
		Status: "sent",
	}).Return(errors.New("connection reset"))

	err := repo.MarkSent(ctx, mockDB, id)
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}
