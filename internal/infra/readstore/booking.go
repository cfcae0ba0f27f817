package readstore

import (
	"context"

	"meeting-scheduler/internal/domain/booking"
	"meeting-scheduler/internal/infra"
	sqlc "meeting-scheduler/internal/infra/sqlc/generated"
	"meeting-scheduler/internal/pkg/pgconv"
	"meeting-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingQueries interface {
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	GetBookingForLink(ctx context.Context, db sqlc.DBTX, arg sqlc.GetBookingForLinkParams) (sqlc.GetBookingForLinkRow, error)
}

type BookingReadStore struct {
	queries BookingQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

// FindForLink only returns the booking when it belongs to the link with slug.
func (r *BookingReadStore) FindForLink(ctx context.Context, slug string, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingForLink(ctx, r.db, sqlc.GetBookingForLinkParams{ID: id, Slug: slug})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking for link", err)
	}

	view := &queries.BookingView{
		ID:        row.ID,
		LinkID:    row.LinkID,
		Start:     pgconv.TimeFromPgtype(row.StartTime),
		End:       pgconv.TimeFromPgtype(row.EndTime),
		Status:    row.Status,
		Name:      row.RequesterName,
		Email:     row.RequesterEmail,
		Timezone:  row.RequesterTimezone,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}
	if row.Notes.Valid {
		notes := row.Notes.String
		view.Notes = &notes
	}

	return view, nil
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	requester, err := booking.NewRequester(
		row.RequesterName,
		row.RequesterEmail,
		row.RequesterTimezone,
		pgconv.StringFromPgtype(row.Notes),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("stored booking requester is invalid", err, infra.KindDBFailure)
	}

	status := booking.Status(row.Status)
	if !status.IsValid() {
		return nil, infra.WrapRepoErr("stored booking status is invalid", booking.ErrInvalidStatus, infra.KindDBFailure)
	}

	return booking.ReconstructBooking(
		row.ID,
		row.LinkID,
		pgconv.TimeFromPgtype(row.StartTime),
		pgconv.TimeFromPgtype(row.EndTime),
		status,
		requester,
		pgconv.UUIDPtrFromPgtype(row.ContactID),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimePtrFromPgtype(row.CancelledAt),
	), nil
}
