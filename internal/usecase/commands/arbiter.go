package commands

import (
	"context"
	"time"

	"meeting-scheduler/internal/domain/availability"
	"meeting-scheduler/internal/domain/booking"
	"meeting-scheduler/internal/domain/contact"
	"meeting-scheduler/internal/domain/schedulelink"
	"meeting-scheduler/internal/infra"
	"meeting-scheduler/internal/pkg/clock"
	"meeting-scheduler/internal/pkg/errs"
	"meeting-scheduler/internal/usecase/shared"
)

type BookingRequest struct {
	Start    time.Time
	End      time.Time
	Name     string
	Email    string
	Timezone string
	Notes    string
}

// TxStep runs inside the booking transaction after the booking row is written.
type TxStep func(ctx context.Context, tx shared.Tx, b *booking.Booking) error

// Arbiter commits a booking only if its slot is still offered. The partial
// unique index on (link, start) settles concurrent commits; the losing
// transaction is reported as ErrSlotUnavailable and never retried here.
type Arbiter struct {
	uow        shared.UnitOfWork
	snapshots  *shared.SnapshotBuilder
	calculator *availability.Calculator
	clock      clock.Clock
}

func NewArbiter(uow shared.UnitOfWork, snapshots *shared.SnapshotBuilder, calculator *availability.Calculator, clk clock.Clock) *Arbiter {
	return &Arbiter{
		uow:        uow,
		snapshots:  snapshots,
		calculator: calculator,
		clock:      clk,
	}
}

func (a *Arbiter) Commit(ctx context.Context, link *schedulelink.Link, req BookingRequest, steps ...TxStep) (*booking.Booking, error) {
	var committed *booking.Booking

	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := a.clock.Now()

		requester, err := booking.NewRequester(req.Name, req.Email, req.Timezone, req.Notes)
		if err != nil {
			return errs.Mark(err, errs.ErrInvalidBooking)
		}

		b, err := booking.NewBooking(link.ID(), req.Start, req.End, link.Duration(), requester, now)
		if err != nil {
			if errs.Is(err, booking.ErrStartNotInFuture) {
				return errs.Mark(err, errs.ErrSlotUnavailable)
			}
			return errs.Mark(err, errs.ErrInvalidBooking)
		}

		date := availability.DateOf(b.Start(), link.Location())
		snapshot, err := a.snapshots.Build(ctx, tx.Reads(), link, date)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		offered, err := a.calculator.Offers(snapshot, b.Start())
		if err != nil {
			return err
		}
		if !offered {
			return errs.ErrSlotUnavailable
		}

		if err := a.recordContacts(ctx, tx, link, b, now); err != nil {
			return err
		}

		if _, err := tx.Bookings().Create(ctx, tx.DB(), b); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, errs.ErrSlotUnavailable)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		for _, step := range steps {
			if err := step(ctx, tx, b); err != nil {
				return err
			}
		}

		committed = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	return committed, nil
}

// recordContacts adds the requester to every participant's contacts and links
// the booking to the creator's entry.
func (a *Arbiter) recordContacts(ctx context.Context, tx shared.Tx, link *schedulelink.Link, b *booking.Booking, now time.Time) error {
	requester := b.Requester()
	creator := link.Creator()

	for _, p := range link.Participants() {
		c, err := contact.NewContact(p.UserID, requester.Email().Normalized(), requester.Name())
		if err != nil {
			return errs.Mark(err, errs.ErrInvalidBooking)
		}
		c.RecordBooking(requester.Name(), now)

		id, err := tx.Contacts().Upsert(ctx, tx.DB(), c)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if p.UserID == creator.UserID {
			b.AttachContact(id)
		}
	}
	return nil
}
