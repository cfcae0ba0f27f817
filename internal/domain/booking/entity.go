package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTimeRange = errors.New("start time must be before end time")
	ErrDurationMismatch = errors.New("booking length does not match the meeting duration")
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
	ErrStartNotInFuture = errors.New("start time must be in the future")
	ErrInvalidStatus    = errors.New("invalid booking status")
)

type Booking struct {
	id          uuid.UUID
	linkID      uuid.UUID
	start       time.Time
	end         time.Time
	status      Status
	requester   Requester
	contactID   *uuid.UUID
	createdAt   time.Time
	cancelledAt *time.Time
}

// NewBooking validates a request for a meeting of the given duration starting at start.
func NewBooking(linkID uuid.UUID, start, end time.Time, duration time.Duration, requester Requester, now time.Time) (*Booking, error) {
	if !start.Before(end) {
		return nil, ErrInvalidTimeRange
	}
	if end.Sub(start) != duration {
		return nil, ErrDurationMismatch
	}
	if !start.After(now) {
		return nil, ErrStartNotInFuture
	}

	return &Booking{
		id:        uuid.New(),
		linkID:    linkID,
		start:     start.UTC(),
		end:       end.UTC(),
		status:    StatusConfirmed,
		requester: requester,
		createdAt: now,
	}, nil
}

func ReconstructBooking(
	id, linkID uuid.UUID,
	start, end time.Time,
	status Status,
	requester Requester,
	contactID *uuid.UUID,
	createdAt time.Time,
	cancelledAt *time.Time,
) *Booking {
	return &Booking{
		id:          id,
		linkID:      linkID,
		start:       start,
		end:         end,
		status:      status,
		requester:   requester,
		contactID:   contactID,
		createdAt:   createdAt,
		cancelledAt: cancelledAt,
	}
}

// Cancel moves a confirmed booking to cancelled. Cancelled is terminal.
func (b *Booking) Cancel(now time.Time) error {
	if b.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	b.status = StatusCancelled
	b.cancelledAt = &now
	return nil
}

func (b *Booking) AttachContact(contactID uuid.UUID) {
	b.contactID = &contactID
}

func (b *Booking) IsConfirmed() bool {
	return b.status == StatusConfirmed
}

func (b *Booking) IsCancelled() bool {
	return b.status == StatusCancelled
}

func (b *Booking) ID() uuid.UUID           { return b.id }
func (b *Booking) LinkID() uuid.UUID       { return b.linkID }
func (b *Booking) Start() time.Time        { return b.start }
func (b *Booking) End() time.Time          { return b.end }
func (b *Booking) Status() Status          { return b.status }
func (b *Booking) Requester() Requester    { return b.requester }
func (b *Booking) ContactID() *uuid.UUID   { return b.contactID }
func (b *Booking) CreatedAt() time.Time    { return b.createdAt }
func (b *Booking) CancelledAt() *time.Time { return b.cancelledAt }
