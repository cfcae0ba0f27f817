package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"meeting-scheduler/internal/domain/booking"
	"meeting-scheduler/internal/domain/schedulelink"
	"meeting-scheduler/internal/domain/workflow"
	"meeting-scheduler/internal/infra"
	"meeting-scheduler/internal/pkg/clock"
	"meeting-scheduler/internal/pkg/config"
	"meeting-scheduler/internal/pkg/errs"
	"meeting-scheduler/internal/pkg/jwt"
	"meeting-scheduler/internal/usecase/queries"
	"meeting-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	notificationKindEmail    = "email"
	notificationKindWorkflow = "workflow"

	TopicBookingConfirmed = "booking_confirmed"
	TopicBookingCancelled = "booking_cancelled"
)

type CreateBookingResult struct {
	Booking     *booking.Booking
	CancelToken string
}

type CancelBookingResult struct {
	BookingID        uuid.UUID
	AlreadyCancelled bool
}

// CancelTokenService signs and verifies the per-booking cancellation token.
type CancelTokenService interface {
	GenerateToken(bookingID uuid.UUID, purpose string) (string, error)
	ValidateToken(token, purpose string) (uuid.UUID, error)
}

type BookingCommands interface {
	Create(ctx context.Context, slug string, req BookingRequest) (*CreateBookingResult, error)
	Cancel(ctx context.Context, bookingID uuid.UUID, token string) (*CancelBookingResult, error)
}

type bookingCommandsImpl struct {
	uow          shared.UnitOfWork
	arbiter      *Arbiter
	invalidator  shared.BusyTimeInvalidator
	events       shared.CalendarEventWriter
	eventTimeout time.Duration
	tokens       CancelTokenService
	clock        clock.Clock
	logger       *slog.Logger
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	arbiter *Arbiter,
	invalidator shared.BusyTimeInvalidator,
	events shared.CalendarEventWriter,
	tokens CancelTokenService,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:          uow,
		arbiter:      arbiter,
		invalidator:  invalidator,
		events:       events,
		eventTimeout: cfg.BusyTime.Timeout,
		tokens:       tokens,
		clock:        clk,
		logger:       logger,
	}
}

type bookingPayload struct {
	BookingID uuid.UUID  `json:"booking_id"`
	LinkID    uuid.UUID  `json:"link_id"`
	LinkName  string     `json:"link_name"`
	Start     time.Time  `json:"start"`
	End       time.Time  `json:"end"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Timezone  string     `json:"timezone"`
	StepID    *uuid.UUID `json:"step_id,omitempty"`
	Action    string     `json:"action,omitempty"`
}

func (c *bookingCommandsImpl) Create(ctx context.Context, slug string, req BookingRequest) (*CreateBookingResult, error) {
	link, err := queries.ActiveLink(ctx, c.uow.CommandReads(), slug)
	if err != nil {
		return nil, err
	}

	b, err := c.arbiter.Commit(ctx, link, req, c.enqueueConfirmation(link), c.scheduleWorkflow(link))
	if err != nil {
		return nil, err
	}

	c.createCalendarEvents(ctx, link, b)
	c.invalidateParticipants(ctx, link)

	token, err := c.tokens.GenerateToken(b.ID(), jwt.PurposeCancelBooking)
	if err != nil {
		return nil, errs.Wrap(err, "failed to sign cancel token")
	}

	c.logger.Info("booking confirmed",
		"booking_id", b.ID().String(),
		"link_id", link.ID().String(),
		"start", b.Start(),
	)

	return &CreateBookingResult{Booking: b, CancelToken: token}, nil
}

func (c *bookingCommandsImpl) enqueueConfirmation(link *schedulelink.Link) TxStep {
	return func(ctx context.Context, tx shared.Tx, b *booking.Booking) error {
		payload, err := json.Marshal(newBookingPayload(link, b))
		if err != nil {
			return errs.Wrap(err, "failed to encode confirmation payload")
		}

		id := b.ID()
		err = tx.Notifications().CreateJob(ctx, tx.DB(), shared.NotificationJob{
			Kind:      notificationKindEmail,
			Topic:     TopicBookingConfirmed,
			Payload:   payload,
			RunAt:     c.clock.Now(),
			BookingID: &id,
		})
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	}
}

func (c *bookingCommandsImpl) scheduleWorkflow(link *schedulelink.Link) TxStep {
	return func(ctx context.Context, tx shared.Tx, b *booking.Booking) error {
		if link.WorkflowID() == nil {
			return nil
		}

		steps, err := tx.Reads().ActiveWorkflowSteps(ctx, *link.WorkflowID())
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		id := b.ID()
		for _, s := range workflow.Schedule(steps, b.Start(), b.End(), c.clock.Now()) {
			p := newBookingPayload(link, b)
			stepID := s.Step.ID
			p.StepID = &stepID
			p.Action = s.Step.Action

			payload, err := json.Marshal(p)
			if err != nil {
				return errs.Wrap(err, "failed to encode workflow payload")
			}

			err = tx.Notifications().CreateJob(ctx, tx.DB(), shared.NotificationJob{
				Kind:      notificationKindWorkflow,
				Topic:     s.Step.Action,
				Payload:   payload,
				RunAt:     s.RunAt,
				BookingID: &id,
			})
			if err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}
		return nil
	}
}

func (c *bookingCommandsImpl) Cancel(ctx context.Context, bookingID uuid.UUID, token string) (*CancelBookingResult, error) {
	tokenBookingID, err := c.tokens.ValidateToken(token, jwt.PurposeCancelBooking)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCancelToken)
	}
	if tokenBookingID != bookingID {
		return nil, errs.ErrInvalidCancelToken
	}

	var (
		result = &CancelBookingResult{BookingID: bookingID}
		link   *schedulelink.Link
		events []shared.CalendarEventRef
	)

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Reads().BookingByID(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrBookingNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if b.IsCancelled() {
			result.AlreadyCancelled = true
			return nil
		}

		now := c.clock.Now()
		cancelled, err := tx.Bookings().Cancel(ctx, tx.DB(), bookingID, now)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !cancelled {
			// A concurrent request won.
			result.AlreadyCancelled = true
			return nil
		}
		if err := b.Cancel(now); err != nil {
			return err
		}

		link, err = tx.Reads().LinkByID(ctx, b.LinkID())
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		events, err = tx.CalendarEvents().ListForBooking(ctx, tx.DB(), bookingID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if _, err := tx.Notifications().CancelJobsForBooking(ctx, tx.DB(), bookingID); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		payload, err := json.Marshal(newBookingPayload(link, b))
		if err != nil {
			return errs.Wrap(err, "failed to encode cancellation payload")
		}
		err = tx.Notifications().CreateJob(ctx, tx.DB(), shared.NotificationJob{
			Kind:      notificationKindEmail,
			Topic:     TopicBookingCancelled,
			Payload:   payload,
			RunAt:     now,
			BookingID: &bookingID,
		})
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if link != nil {
		c.deleteCalendarEvents(ctx, events)
		c.invalidateParticipants(ctx, link)
		c.logger.Info("booking cancelled", "booking_id", bookingID.String())
	}

	return result, nil
}

// createCalendarEvents mirrors a committed booking into each connected member's
// calendar and records the event ids. The booking stands whatever the calendars answer.
func (c *bookingCommandsImpl) createCalendarEvents(ctx context.Context, link *schedulelink.Link, b *booking.Booking) {
	event := shared.CalendarEvent{
		Title:       link.Name() + " with " + b.Requester().Name(),
		Description: b.Requester().Notes(),
		Start:       b.Start(),
		End:         b.End(),
	}

	var refs []shared.CalendarEventRef
	for _, participant := range link.ParticipantIDs() {
		eventID, err := c.createEvent(ctx, participant, event)
		if err != nil {
			if !errs.Is(err, shared.ErrNotConnected) {
				c.logger.Warn("failed to create calendar event",
					"booking_id", b.ID().String(),
					"participant_id", participant.String(),
					"error", err.Error(),
				)
			}
			continue
		}
		if eventID == "" {
			continue
		}
		refs = append(refs, shared.CalendarEventRef{BookingID: b.ID(), UserID: participant, EventID: eventID})
	}
	if len(refs) == 0 {
		return
	}

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		for _, ref := range refs {
			if err := tx.CalendarEvents().Save(ctx, tx.DB(), ref); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.logger.Warn("failed to record calendar events",
			"booking_id", b.ID().String(),
			"events", len(refs),
			"error", err.Error(),
		)
	}
}

func (c *bookingCommandsImpl) createEvent(ctx context.Context, participant uuid.UUID, event shared.CalendarEvent) (string, error) {
	ctx, cancel := c.withEventTimeout(ctx)
	defer cancel()
	return c.events.CreateEvent(ctx, participant, event)
}

// deleteCalendarEvents removes the events of a cancelled booking. Failures are
// logged; the event then stays on that member's calendar.
func (c *bookingCommandsImpl) deleteCalendarEvents(ctx context.Context, refs []shared.CalendarEventRef) {
	for _, ref := range refs {
		ctx, cancel := c.withEventTimeout(ctx)
		err := c.events.DeleteEvent(ctx, ref.UserID, ref.EventID)
		cancel()
		if err != nil {
			c.logger.Warn("failed to delete calendar event",
				"booking_id", ref.BookingID.String(),
				"participant_id", ref.UserID.String(),
				"event_id", ref.EventID,
				"error", err.Error(),
			)
		}
	}
}

func (c *bookingCommandsImpl) withEventTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.eventTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.eventTimeout)
}

// invalidateParticipants drops every participant's cached busy times, whatever
// link or timezone cached them. Failures only leave entries to expire on their TTL.
func (c *bookingCommandsImpl) invalidateParticipants(ctx context.Context, link *schedulelink.Link) {
	for _, participant := range link.ParticipantIDs() {
		if err := c.invalidator.Invalidate(ctx, participant); err != nil {
			c.logger.Warn("failed to invalidate busy time cache",
				"participant_id", participant.String(),
				"error", err.Error(),
			)
		}
	}
}

func newBookingPayload(link *schedulelink.Link, b *booking.Booking) bookingPayload {
	requester := b.Requester()
	return bookingPayload{
		BookingID: b.ID(),
		LinkID:    link.ID(),
		LinkName:  link.Name(),
		Start:     b.Start(),
		End:       b.End(),
		Name:      requester.Name(),
		Email:     requester.Email().Value(),
		Timezone:  requester.Timezone().String(),
	}
}
