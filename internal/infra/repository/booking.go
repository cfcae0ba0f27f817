package repository

import (
	"context"
	"time"

	"meeting-scheduler/internal/domain/booking"
	"meeting-scheduler/internal/infra"
	sqlc "meeting-scheduler/internal/infra/sqlc/generated"
	"meeting-scheduler/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (uuid.UUID, error)
	CancelBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CancelBookingParams) (int64, error)
	DeleteBookingsStartedBefore(ctx context.Context, db sqlc.DBTX, startTime pgtype.Timestamptz) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

// Create inserts a confirmed booking. A second confirmed booking for the same
// link and start surfaces as KindDuplicateKey.
func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (uuid.UUID, error) {
	requester := b.Requester()
	params := sqlc.CreateBookingParams{
		ID:                b.ID(),
		LinkID:            b.LinkID(),
		StartTime:         pgconv.TimeToPgtype(b.Start()),
		EndTime:           pgconv.TimeToPgtype(b.End()),
		Status:            string(b.Status()),
		RequesterName:     requester.Name(),
		RequesterEmail:    requester.Email().Value(),
		RequesterTimezone: requester.Timezone().String(),
		Notes:             pgconv.StringToPgtype(requester.Notes()),
		ContactID:         pgconv.UUIDPtrToPgtype(b.ContactID()),
		CreatedAt:         pgconv.TimeToPgtype(b.CreatedAt()),
	}

	id, err := r.queries.CreateBooking(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}

	return id, nil
}

func (r *BookingRepository) Cancel(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, at time.Time) (bool, error) {
	affected, err := r.queries.CancelBooking(ctx, tx, sqlc.CancelBookingParams{
		ID:          id,
		CancelledAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to cancel booking", err)
	}

	return affected > 0, nil
}

func (r *BookingRepository) DeleteStartedBefore(ctx context.Context, tx sqlc.DBTX, cutoff time.Time) (int64, error) {
	deleted, err := r.queries.DeleteBookingsStartedBefore(ctx, tx, pgconv.TimeToPgtype(cutoff))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete old bookings", err)
	}

	return deleted, nil
}
