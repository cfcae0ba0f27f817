//go:build unit

package commands_test

import (
	"context"
	"sync"
	"time"

	"meeting-scheduler/internal/domain/booking"
	"meeting-scheduler/internal/domain/contact"
	"meeting-scheduler/internal/domain/interval"
	"meeting-scheduler/internal/domain/schedulelink"
	"meeting-scheduler/internal/domain/workflow"
	"meeting-scheduler/internal/infra"
	sqlc "meeting-scheduler/internal/infra/sqlc/generated"
	"meeting-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// memoryStore is an in-memory stand-in for the database. Writes are applied
// immediately and undone when the surrounding transaction fails; the (link,
// start) uniqueness of confirmed bookings is enforced like the partial index.
type memoryStore struct {
	mu       sync.Mutex
	links    map[uuid.UUID]*schedulelink.Link
	windows  []schedulelink.Window
	steps    []workflow.Step
	bookings map[uuid.UUID]*booking.Booking
	contacts map[string]uuid.UUID
	jobs     []shared.NotificationJob
	due      []shared.QueuedNotification
	sent     []uuid.UUID
	failed   []failedJob
	events   []shared.CalendarEventRef
	commits  int
	failJobs error
}

type failedJob struct {
	id      uuid.UUID
	reason  string
	retryAt *time.Time
}

func newMemoryStore(link *schedulelink.Link, windows ...schedulelink.Window) *memoryStore {
	return &memoryStore{
		links:    map[uuid.UUID]*schedulelink.Link{link.ID(): link},
		windows:  windows,
		bookings: make(map[uuid.UUID]*booking.Booking),
		contacts: make(map[string]uuid.UUID),
	}
}

func (s *memoryStore) confirmed() []*booking.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*booking.Booking
	for _, b := range s.bookings {
		if b.IsConfirmed() {
			out = append(out, b)
		}
	}
	return out
}

func (s *memoryStore) queuedJobs() []shared.NotificationJob {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]shared.NotificationJob(nil), s.jobs...)
}

func (s *memoryStore) calendarEvents() []shared.CalendarEventRef {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]shared.CalendarEventRef(nil), s.events...)
}

func (s *memoryStore) put(b *booking.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings[b.ID()] = b
}

type memoryUoW struct {
	store *memoryStore
}

func (u *memoryUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	tx := &memoryTx{store: u.store}
	if err := fn(ctx, tx); err != nil {
		tx.rollback()
		return err
	}
	u.store.mu.Lock()
	u.store.commits++
	u.store.mu.Unlock()
	return nil
}

func (u *memoryUoW) CommandReads() shared.CommandReads {
	return memoryReads{store: u.store}
}

type memoryTx struct {
	store *memoryStore
	mu    sync.Mutex
	undo  []func()
}

func (t *memoryTx) onRollback(f func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.undo = append(t.undo, f)
}

func (t *memoryTx) rollback() {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
}

func (t *memoryTx) Bookings() shared.BookingRepository             { return memoryBookings{t} }
func (t *memoryTx) Contacts() shared.ContactRepository             { return memoryContacts{t} }
func (t *memoryTx) Notifications() shared.NotificationRepository   { return memoryNotifications{t} }
func (t *memoryTx) CalendarEvents() shared.CalendarEventRepository { return memoryCalendarEvents{t} }
func (t *memoryTx) Reads() shared.CommandReads                     { return memoryReads{store: t.store} }
func (t *memoryTx) DB() sqlc.DBTX                                  { return nil }

type memoryBookings struct{ tx *memoryTx }

func (r memoryBookings) Create(_ context.Context, _ sqlc.DBTX, b *booking.Booking) (uuid.UUID, error) {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.bookings {
		if existing.IsConfirmed() && existing.LinkID() == b.LinkID() && existing.Start().Equal(b.Start()) {
			return uuid.Nil, infra.WrapRepoErr("failed to create booking", &pgconn.PgError{Code: "23505"})
		}
	}
	s.bookings[b.ID()] = b
	id := b.ID()
	r.tx.onRollback(func() { delete(s.bookings, id) })
	return id, nil
}

func (r memoryBookings) Cancel(_ context.Context, _ sqlc.DBTX, id uuid.UUID, at time.Time) (bool, error) {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok || !b.IsConfirmed() {
		return false, nil
	}
	s.bookings[id] = booking.ReconstructBooking(b.ID(), b.LinkID(), b.Start(), b.End(),
		booking.StatusCancelled, b.Requester(), b.ContactID(), b.CreatedAt(), &at)
	r.tx.onRollback(func() { s.bookings[id] = b })
	return true, nil
}

func (r memoryBookings) DeleteStartedBefore(_ context.Context, _ sqlc.DBTX, cutoff time.Time) (int64, error) {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for id, b := range s.bookings {
		if b.Start().Before(cutoff) {
			delete(s.bookings, id)
			n++
		}
	}
	return n, nil
}

type memoryContacts struct{ tx *memoryTx }

func (r memoryContacts) Upsert(_ context.Context, _ sqlc.DBTX, c *contact.Contact) (uuid.UUID, error) {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	key := c.OwnerID().String() + "|" + c.Email()
	if id, ok := s.contacts[key]; ok {
		return id, nil
	}
	s.contacts[key] = c.ID()
	r.tx.onRollback(func() { delete(s.contacts, key) })
	return c.ID(), nil
}

type memoryNotifications struct{ tx *memoryTx }

func (r memoryNotifications) CreateJob(_ context.Context, _ sqlc.DBTX, job shared.NotificationJob) error {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failJobs != nil {
		return s.failJobs
	}
	s.jobs = append(s.jobs, job)
	n := len(s.jobs)
	r.tx.onRollback(func() { s.jobs = s.jobs[:n-1] })
	return nil
}

func (r memoryNotifications) CancelJobsForBooking(_ context.Context, _ sqlc.DBTX, bookingID uuid.UUID) (int64, error) {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.jobs[:0:0]
	var n int64
	for _, j := range s.jobs {
		if j.BookingID != nil && *j.BookingID == bookingID {
			n++
			continue
		}
		kept = append(kept, j)
	}
	prev := s.jobs
	s.jobs = kept
	r.tx.onRollback(func() { s.jobs = prev })
	return n, nil
}

func (r memoryNotifications) ClaimDue(_ context.Context, _ sqlc.DBTX, now time.Time, limit int32) ([]shared.QueuedNotification, error) {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []shared.QueuedNotification
	for _, j := range s.due {
		if int32(len(out)) == limit {
			break
		}
		if !j.RunAt.After(now) {
			out = append(out, j)
		}
	}
	return out, nil
}

func (r memoryNotifications) MarkSent(_ context.Context, _ sqlc.DBTX, id uuid.UUID) error {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, id)
	return nil
}

func (r memoryNotifications) MarkFailed(_ context.Context, _ sqlc.DBTX, id uuid.UUID, reason string, retryAt *time.Time) error {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failed = append(s.failed, failedJob{id: id, reason: reason, retryAt: retryAt})
	return nil
}

type memoryCalendarEvents struct{ tx *memoryTx }

func (r memoryCalendarEvents) Save(_ context.Context, _ sqlc.DBTX, ref shared.CalendarEventRef) error {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ref)
	n := len(s.events)
	r.tx.onRollback(func() { s.events = s.events[:n-1] })
	return nil
}

func (r memoryCalendarEvents) ListForBooking(_ context.Context, _ sqlc.DBTX, bookingID uuid.UUID) ([]shared.CalendarEventRef, error) {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []shared.CalendarEventRef
	for _, ref := range s.events {
		if ref.BookingID == bookingID {
			out = append(out, ref)
		}
	}
	return out, nil
}

type memoryReads struct{ store *memoryStore }

func (r memoryReads) LinkBySlug(_ context.Context, slug string) (*schedulelink.Link, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, l := range r.store.links {
		if l.Slug() == slug {
			return l, nil
		}
	}
	return nil, infra.WrapRepoErr("schedule link not found", pgx.ErrNoRows, infra.KindNotFound)
}

func (r memoryReads) LinkByID(_ context.Context, id uuid.UUID) (*schedulelink.Link, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if l, ok := r.store.links[id]; ok {
		return l, nil
	}
	return nil, infra.WrapRepoErr("schedule link not found", pgx.ErrNoRows, infra.KindNotFound)
}

func (r memoryReads) WindowsForDay(_ context.Context, _ uuid.UUID, weekday schedulelink.Weekday) ([]schedulelink.Window, error) {
	var out []schedulelink.Window
	for _, w := range r.store.windows {
		if w.Weekday == weekday {
			out = append(out, w)
		}
	}
	return out, nil
}

func (r memoryReads) ConfirmedBookingsBetween(_ context.Context, linkID uuid.UUID, span interval.Range) ([]interval.Range, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []interval.Range
	for _, b := range r.store.bookings {
		rng := interval.New(b.Start(), b.End())
		if b.IsConfirmed() && b.LinkID() == linkID && rng.Overlaps(span) {
			out = append(out, rng)
		}
	}
	return out, nil
}

func (r memoryReads) BookingByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if b, ok := r.store.bookings[id]; ok {
		return b, nil
	}
	return nil, infra.WrapRepoErr("booking not found", pgx.ErrNoRows, infra.KindNotFound)
}

func (r memoryReads) ActiveWorkflowSteps(context.Context, uuid.UUID) ([]workflow.Step, error) {
	return r.store.steps, nil
}
