package uow

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"meeting-scheduler/internal/domain/booking"
	"meeting-scheduler/internal/domain/interval"
	"meeting-scheduler/internal/domain/schedulelink"
	"meeting-scheduler/internal/domain/workflow"
	"meeting-scheduler/internal/infra/readstore"
	"meeting-scheduler/internal/infra/repository"
	sqlc "meeting-scheduler/internal/infra/sqlc/generated"
	"meeting-scheduler/internal/pkg/errs"
	"meeting-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool   *pgxpool.Pool
	q      *sqlc.Queries
	logger *slog.Logger
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, logger *slog.Logger) shared.UnitOfWork {
	return &PostgresUoW{
		pool:   pool,
		q:      q,
		logger: logger,
	}
}

// Within runs fn at ReadCommitted. Double booking is prevented by the bookings
// unique index, so serialization failures and deadlocks are the only retries.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Each attempt rolls back explicitly; deferring inside the loop would hold
// connections until the last attempt.
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				u.logger.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				u.logger.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		u.logger.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

// calculateBackoff doubles base per attempt and adds up to 20% jitter.
func calculateBackoff(attempt int, base time.Duration) time.Duration {
	wait := base << attempt
	return wait + time.Duration(rand.Int64N(int64(wait/5)+1))
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	bookingRepo      shared.BookingRepository
	contactRepo      shared.ContactRepository
	notificationRepo shared.NotificationRepository
	eventRepo        shared.CalendarEventRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.uow.q, t.dbtx)
	}
	return t.bookingRepo
}

func (t *pgTx) Contacts() shared.ContactRepository {
	if t.contactRepo == nil {
		t.contactRepo = repository.NewContactRepository(t.uow.q, t.dbtx)
	}
	return t.contactRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.uow.q, t.dbtx)
	}
	return t.notificationRepo
}

func (t *pgTx) CalendarEvents() shared.CalendarEventRepository {
	if t.eventRepo == nil {
		t.eventRepo = repository.NewCalendarEventRepository(t.uow.q, t.dbtx)
	}
	return t.eventRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

// commandReads sees uncommitted writes of the transaction it was opened from.
type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	scheduleStore *readstore.ScheduleReadStore
	bookingStore  *readstore.BookingReadStore
	workflowStore *readstore.WorkflowReadStore
}

func (r *commandReads) schedule() *readstore.ScheduleReadStore {
	if r.scheduleStore == nil {
		r.scheduleStore = readstore.NewScheduleReadStore(r.uow.q, r.dbtx)
	}
	return r.scheduleStore
}

func (r *commandReads) LinkBySlug(ctx context.Context, slug string) (*schedulelink.Link, error) {
	return r.schedule().FindLinkBySlug(ctx, slug)
}

func (r *commandReads) LinkByID(ctx context.Context, id uuid.UUID) (*schedulelink.Link, error) {
	return r.schedule().FindLinkByID(ctx, id)
}

func (r *commandReads) WindowsForDay(ctx context.Context, linkID uuid.UUID, weekday schedulelink.Weekday) ([]schedulelink.Window, error) {
	return r.schedule().FindWindowsForDay(ctx, linkID, weekday)
}

func (r *commandReads) ConfirmedBookingsBetween(ctx context.Context, linkID uuid.UUID, span interval.Range) ([]interval.Range, error) {
	return r.schedule().FindConfirmedBookingsBetween(ctx, linkID, span)
}

func (r *commandReads) BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	if r.bookingStore == nil {
		r.bookingStore = readstore.NewBookingReadStore(r.uow.q, r.dbtx)
	}
	return r.bookingStore.FindByID(ctx, id)
}

func (r *commandReads) ActiveWorkflowSteps(ctx context.Context, workflowID uuid.UUID) ([]workflow.Step, error) {
	if r.workflowStore == nil {
		r.workflowStore = readstore.NewWorkflowReadStore(r.uow.q, r.dbtx)
	}
	return r.workflowStore.FindActiveSteps(ctx, workflowID)
}
