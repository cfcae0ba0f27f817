package shared

import (
	"context"
	"time"

	"meeting-scheduler/internal/domain/booking"
	"meeting-scheduler/internal/domain/contact"
	"meeting-scheduler/internal/domain/interval"
	"meeting-scheduler/internal/domain/schedulelink"
	"meeting-scheduler/internal/domain/workflow"
	sqlc "meeting-scheduler/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within runs fn in a write transaction, retrying transient conflicts.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads reads outside any transaction.
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Contacts() ContactRepository
	Notifications() NotificationRepository
	CalendarEvents() CalendarEventRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// ScheduleReads is what an availability calculation needs from storage.
type ScheduleReads interface {
	LinkBySlug(ctx context.Context, slug string) (*schedulelink.Link, error)
	WindowsForDay(ctx context.Context, linkID uuid.UUID, weekday schedulelink.Weekday) ([]schedulelink.Window, error)
	ConfirmedBookingsBetween(ctx context.Context, linkID uuid.UUID, span interval.Range) ([]interval.Range, error)
}

type CommandReads interface {
	ScheduleReads
	LinkByID(ctx context.Context, id uuid.UUID) (*schedulelink.Link, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	ActiveWorkflowSteps(ctx context.Context, workflowID uuid.UUID) ([]workflow.Step, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (uuid.UUID, error)
	// Cancel reports false when the booking was not confirmed anymore.
	Cancel(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, at time.Time) (bool, error)
	DeleteStartedBefore(ctx context.Context, tx sqlc.DBTX, cutoff time.Time) (int64, error)
}

type ContactRepository interface {
	Upsert(ctx context.Context, tx sqlc.DBTX, c *contact.Contact) (uuid.UUID, error)
}

// CalendarEventRef links a booking to the event written on one member's calendar.
type CalendarEventRef struct {
	BookingID uuid.UUID
	UserID    uuid.UUID
	EventID   string
}

type CalendarEventRepository interface {
	Save(ctx context.Context, tx sqlc.DBTX, ref CalendarEventRef) error
	ListForBooking(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID) ([]CalendarEventRef, error)
}

type NotificationJob struct {
	Kind      string
	Topic     string
	Payload   []byte
	RunAt     time.Time
	BookingID *uuid.UUID
}

// QueuedNotification is a claimed job waiting to be published.
type QueuedNotification struct {
	ID        uuid.UUID
	Kind      string
	Topic     string
	Payload   []byte
	RunAt     time.Time
	Attempts  int32
	BookingID *uuid.UUID
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, job NotificationJob) error
	CancelJobsForBooking(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID) (int64, error)
	// ClaimDue locks queued jobs due at now; other workers skip them until the transaction ends.
	ClaimDue(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]QueuedNotification, error)
	MarkSent(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	// MarkFailed requeues the job at retryAt, or fails it for good when retryAt is nil.
	MarkFailed(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, reason string, retryAt *time.Time) error
}

// NotificationPublisher hands a job to the delivery channel.
type NotificationPublisher interface {
	Publish(ctx context.Context, n QueuedNotification) error
}
