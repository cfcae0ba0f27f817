package queries

import (
	"context"
	"time"

	"meeting-scheduler/internal/domain/availability"
	"meeting-scheduler/internal/domain/schedulelink"
	"meeting-scheduler/internal/infra"
	"meeting-scheduler/internal/pkg/errs"
	"meeting-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

type SlotView struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type AvailabilityView struct {
	Date     string     `json:"date"`
	Timezone string     `json:"timezone"`
	Slots    []SlotView `json:"slots"`
}

type BookingView struct {
	ID        uuid.UUID `json:"id"`
	LinkID    uuid.UUID `json:"link_id"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Status    string    `json:"status"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Timezone  string    `json:"timezone"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type AvailabilityQueries interface {
	// Slots lists bookable slots of an active link for a date, rendered in viewerTZ
	// (the link timezone when empty).
	Slots(ctx context.Context, slug, date, viewerTZ string) (*AvailabilityView, error)
	// Booking returns a booking of the link rendered in the requester's timezone.
	Booking(ctx context.Context, slug string, bookingID uuid.UUID) (*BookingView, error)
}

type BookingReadStore interface {
	FindForLink(ctx context.Context, slug string, id uuid.UUID) (*BookingView, error)
}

type availabilityQueriesImpl struct {
	uow        shared.UnitOfWork
	bookings   BookingReadStore
	snapshots  *shared.SnapshotBuilder
	calculator *availability.Calculator
}

func NewAvailabilityQueries(
	uow shared.UnitOfWork,
	bookings BookingReadStore,
	snapshots *shared.SnapshotBuilder,
	calculator *availability.Calculator,
) AvailabilityQueries {
	return &availabilityQueriesImpl{
		uow:        uow,
		bookings:   bookings,
		snapshots:  snapshots,
		calculator: calculator,
	}
}

func (q *availabilityQueriesImpl) Slots(ctx context.Context, slug, date, viewerTZ string) (*AvailabilityView, error) {
	reads := q.uow.CommandReads()

	link, err := ActiveLink(ctx, reads, slug)
	if err != nil {
		return nil, err
	}

	day, err := availability.ParseDate(date)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidDate)
	}

	viewer := link.Location()
	if viewerTZ != "" {
		viewer, err = schedulelink.LoadLocation(viewerTZ)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrInvalidTimezone)
		}
	}

	snapshot, err := q.snapshots.Build(ctx, reads, link, day)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	slots, err := q.calculator.Slots(snapshot)
	if err != nil {
		return nil, err
	}

	view := &AvailabilityView{
		Date:     day.String(),
		Timezone: viewer.String(),
		Slots:    make([]SlotView, len(slots)),
	}
	for i, s := range slots {
		view.Slots[i] = SlotView{Start: s.Start.In(viewer), End: s.End.In(viewer)}
	}
	return view, nil
}

func (q *availabilityQueriesImpl) Booking(ctx context.Context, slug string, bookingID uuid.UUID) (*BookingView, error) {
	view, err := q.bookings.FindForLink(ctx, slug, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if loc, err := time.LoadLocation(view.Timezone); err == nil {
		view.Start = view.Start.In(loc)
		view.End = view.End.In(loc)
	}
	return view, nil
}

// ActiveLink loads a link by slug and rejects unknown and inactive ones.
func ActiveLink(ctx context.Context, reads shared.ScheduleReads, slug string) (*schedulelink.Link, error) {
	link, err := reads.LinkBySlug(ctx, slug)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrLinkNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !link.IsActive() {
		return nil, errs.ErrLinkInactive
	}
	return link, nil
}
