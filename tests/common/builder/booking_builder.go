//go:build unit || e2e

package builder

import (
	"time"

	"meeting-scheduler/internal/domain/booking"
	reqdto "meeting-scheduler/internal/handler/dto/request"
	sqlc "meeting-scheduler/internal/infra/sqlc/generated"
	"meeting-scheduler/internal/usecase/commands"
	"meeting-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingBuilder struct {
	ID        uuid.UUID
	LinkID    uuid.UUID
	Start     time.Time
	End       time.Time
	Status    booking.Status
	Name      string
	Email     string
	Timezone  string
	Notes     string
	CreatedAt time.Time
}

func NewBookingBuilder() *BookingBuilder {
	start := time.Now().UTC().Add(48 * time.Hour).Truncate(time.Hour)
	return &BookingBuilder{
		ID:        uuid.New(),
		LinkID:    uuid.New(),
		Start:     start,
		End:       start.Add(30 * time.Minute),
		Status:    booking.StatusConfirmed,
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		Timezone:  "America/New_York",
		CreatedAt: time.Now().UTC(),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithSlot(start time.Time, length time.Duration) *BookingBuilder {
	b.Start = start
	b.End = start.Add(length)
	return b
}

func (b *BookingBuilder) WithName(name string) *BookingBuilder {
	b.Name = name
	return b
}

func (b *BookingBuilder) WithEmail(email string) *BookingBuilder {
	b.Email = email
	return b
}

func (b *BookingBuilder) WithTimezone(tz string) *BookingBuilder {
	b.Timezone = tz
	return b
}

func (b *BookingBuilder) WithNotes(notes string) *BookingBuilder {
	b.Notes = notes
	return b
}

func (b *BookingBuilder) WithStatus(s booking.Status) *BookingBuilder {
	b.Status = s
	return b
}

// Build methods
func (b *BookingBuilder) BuildRequester() (booking.Requester, error) {
	return booking.NewRequester(b.Name, b.Email, b.Timezone, b.Notes)
}

// BuildDomain validates the booking against now as a fresh request would be.
func (b *BookingBuilder) BuildDomain(now time.Time) (*booking.Booking, error) {
	return b.BuildDomainWithDuration(now, b.End.Sub(b.Start))
}

// BuildDomainWithDuration validates against a link whose meetings last duration.
func (b *BookingBuilder) BuildDomainWithDuration(now time.Time, duration time.Duration) (*booking.Booking, error) {
	requester, err := b.BuildRequester()
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(b.LinkID, b.Start, b.End, duration, requester, now)
}

// BuildStored skips request validation, as when a row is read back.
func (b *BookingBuilder) BuildStored() (*booking.Booking, error) {
	requester, err := b.BuildRequester()
	if err != nil {
		return nil, err
	}
	var cancelledAt *time.Time
	if b.Status == booking.StatusCancelled {
		at := b.CreatedAt.Add(time.Hour)
		cancelledAt = &at
	}
	return booking.ReconstructBooking(b.ID, b.LinkID, b.Start, b.End, b.Status, requester, nil, b.CreatedAt, cancelledAt), nil
}

func (b *BookingBuilder) BuildInfra() sqlc.Bookings {
	row := sqlc.Bookings{
		ID:                b.ID,
		LinkID:            b.LinkID,
		StartTime:         pgtype.Timestamptz{Time: b.Start, Valid: true},
		EndTime:           pgtype.Timestamptz{Time: b.End, Valid: true},
		Status:            string(b.Status),
		RequesterName:     b.Name,
		RequesterEmail:    b.Email,
		RequesterTimezone: b.Timezone,
		CreatedAt:         pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
	if b.Notes != "" {
		row.Notes = pgtype.Text{String: b.Notes, Valid: true}
	}
	if b.Status == booking.StatusCancelled {
		row.CancelledAt = pgtype.Timestamptz{Time: b.CreatedAt.Add(time.Hour), Valid: true}
	}
	return row
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	req := reqdto.CreateBookingRequest{
		Start:    b.Start,
		End:      b.End,
		Name:     b.Name,
		Email:    b.Email,
		Timezone: b.Timezone,
	}
	if b.Notes != "" {
		notes := b.Notes
		req.Notes = &notes
	}
	return req
}

func (b *BookingBuilder) BuildCommand() commands.BookingRequest {
	return commands.BookingRequest{
		Start:    b.Start,
		End:      b.End,
		Name:     b.Name,
		Email:    b.Email,
		Timezone: b.Timezone,
		Notes:    b.Notes,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	view := &queries.BookingView{
		ID:        b.ID,
		LinkID:    b.LinkID,
		Start:     b.Start,
		End:       b.End,
		Status:    string(b.Status),
		Name:      b.Name,
		Email:     b.Email,
		Timezone:  b.Timezone,
		CreatedAt: b.CreatedAt,
	}
	if b.Notes != "" {
		notes := b.Notes
		view.Notes = &notes
	}
	return view
}
