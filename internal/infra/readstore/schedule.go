package readstore

import (
	"context"

	"meeting-scheduler/internal/domain/interval"
	"meeting-scheduler/internal/domain/schedulelink"
	"meeting-scheduler/internal/infra"
	sqlc "meeting-scheduler/internal/infra/sqlc/generated"
	"meeting-scheduler/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ScheduleQueries interface {
	GetScheduleLinkBySlug(ctx context.Context, db sqlc.DBTX, slug string) (sqlc.ScheduleLinks, error)
	GetScheduleLinkByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.ScheduleLinks, error)
	ListLinkMembers(ctx context.Context, db sqlc.DBTX, linkID uuid.UUID) ([]sqlc.ListLinkMembersRow, error)
	ListWindowsByLinkAndDay(ctx context.Context, db sqlc.DBTX, arg sqlc.ListWindowsByLinkAndDayParams) ([]sqlc.AvailabilityWindows, error)
	ListConfirmedBookingsOverlapping(ctx context.Context, db sqlc.DBTX, arg sqlc.ListConfirmedBookingsOverlappingParams) ([]sqlc.ListConfirmedBookingsOverlappingRow, error)
}

type ScheduleReadStore struct {
	queries ScheduleQueries
	db      sqlc.DBTX
}

func NewScheduleReadStore(queries ScheduleQueries, db sqlc.DBTX) *ScheduleReadStore {
	return &ScheduleReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ScheduleReadStore) FindLinkBySlug(ctx context.Context, slug string) (*schedulelink.Link, error) {
	row, err := r.queries.GetScheduleLinkBySlug(ctx, r.db, slug)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("schedule link not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find schedule link by slug", err)
	}

	return r.toLink(ctx, row)
}

func (r *ScheduleReadStore) FindLinkByID(ctx context.Context, id uuid.UUID) (*schedulelink.Link, error) {
	row, err := r.queries.GetScheduleLinkByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("schedule link not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find schedule link by ID", err)
	}

	return r.toLink(ctx, row)
}

func (r *ScheduleReadStore) toLink(ctx context.Context, row sqlc.ScheduleLinks) (*schedulelink.Link, error) {
	members, err := r.queries.ListLinkMembers(ctx, r.db, row.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list link members", err)
	}

	participants := make([]schedulelink.Participant, len(members))
	for i, m := range members {
		participants[i] = schedulelink.Participant{
			UserID:    m.UserID,
			Name:      m.Name,
			Email:     m.Email,
			IsCreator: m.IsCreator,
		}
	}

	var maxPerDay *int
	if v := pgconv.Int32PtrFromPgtype(row.MaxBookingsPerDay); v != nil {
		n := int(*v)
		maxPerDay = &n
	}

	link, err := schedulelink.NewLink(schedulelink.Params{
		ID:                row.ID,
		Slug:              row.Slug,
		Name:              row.Name,
		DurationMinutes:   int(row.DurationMinutes),
		BufferMinutes:     int(row.BufferMinutes),
		Timezone:          row.Timezone,
		MaxFutureDays:     int(row.MaxFutureDays),
		MaxBookingsPerDay: maxPerDay,
		Status:            schedulelink.Status(row.Status),
		WorkflowID:        pgconv.UUIDPtrFromPgtype(row.WorkflowID),
		Participants:      participants,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("stored schedule link is invalid", err, infra.KindDBFailure)
	}

	return link, nil
}

func (r *ScheduleReadStore) FindWindowsForDay(ctx context.Context, linkID uuid.UUID, weekday schedulelink.Weekday) ([]schedulelink.Window, error) {
	rows, err := r.queries.ListWindowsByLinkAndDay(ctx, r.db, sqlc.ListWindowsByLinkAndDayParams{
		LinkID:    linkID,
		DayOfWeek: int16(weekday), // #nosec G115 -- weekday is 0..6
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list availability windows", err)
	}

	windows := make([]schedulelink.Window, 0, len(rows))
	for _, row := range rows {
		start, err := schedulelink.TimeOfDayFromMinutes(int(row.StartMinute))
		if err != nil {
			return nil, infra.WrapRepoErr("stored window start is invalid", err, infra.KindDBFailure)
		}
		end, err := schedulelink.TimeOfDayFromMinutes(int(row.EndMinute))
		if err != nil {
			return nil, infra.WrapRepoErr("stored window end is invalid", err, infra.KindDBFailure)
		}
		w, err := schedulelink.NewWindow(row.UserID, schedulelink.Weekday(row.DayOfWeek), start, end)
		if err != nil {
			return nil, infra.WrapRepoErr("stored window is invalid", err, infra.KindDBFailure)
		}
		windows = append(windows, w)
	}

	return windows, nil
}

// FindConfirmedBookingsBetween returns the confirmed bookings of a link overlapping span.
func (r *ScheduleReadStore) FindConfirmedBookingsBetween(ctx context.Context, linkID uuid.UUID, span interval.Range) ([]interval.Range, error) {
	rows, err := r.queries.ListConfirmedBookingsOverlapping(ctx, r.db, sqlc.ListConfirmedBookingsOverlappingParams{
		LinkID:     linkID,
		RangeEnd:   pgconv.TimeToPgtype(span.End),
		RangeStart: pgconv.TimeToPgtype(span.Start),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list confirmed bookings", err)
	}

	ranges := make([]interval.Range, len(rows))
	for i, row := range rows {
		ranges[i] = interval.New(pgconv.TimeFromPgtype(row.StartTime), pgconv.TimeFromPgtype(row.EndTime))
	}

	return ranges, nil
}
