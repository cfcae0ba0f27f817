package shared

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"meeting-scheduler/internal/domain/availability"
	"meeting-scheduler/internal/domain/interval"
	"meeting-scheduler/internal/domain/schedulelink"
	"meeting-scheduler/internal/pkg/clock"
	"meeting-scheduler/internal/pkg/config"
	"meeting-scheduler/internal/pkg/errs"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	maxConcurrentBusyFetches = 8
	defaultBusyTimeout       = 3 * time.Second
)

// SnapshotBuilder gathers the inputs of one availability calculation.
// Busy times of all participants are fetched concurrently; provider failures
// degrade to "no busy time" and are logged.
type SnapshotBuilder struct {
	provider BusyTimeProvider
	clock    clock.Clock
	timeout  time.Duration
	logger   *slog.Logger
}

func NewSnapshotBuilder(provider BusyTimeProvider, clk clock.Clock, cfg config.Config, logger *slog.Logger) *SnapshotBuilder {
	timeout := cfg.BusyTime.Timeout
	if timeout <= 0 {
		timeout = defaultBusyTimeout
	}
	return &SnapshotBuilder{
		provider: provider,
		clock:    clk,
		timeout:  timeout,
		logger:   logger,
	}
}

func (b *SnapshotBuilder) Build(ctx context.Context, reads ScheduleReads, link *schedulelink.Link, date availability.Date) (availability.Snapshot, error) {
	loc := link.Location()
	day := date.Span(loc)
	participants := link.ParticipantIDs()

	snapshot := availability.Snapshot{
		Policy:       link.Policy(),
		Participants: participants,
		Date:         date,
		Now:          b.clock.Now(),
		Windows:      make(map[uuid.UUID][]schedulelink.Window, len(participants)),
		Busy:         make(map[uuid.UUID][]interval.Range, len(participants)),
	}

	windows, err := reads.WindowsForDay(ctx, link.ID(), date.Weekday())
	if err != nil {
		return availability.Snapshot{}, errs.Wrap(err, "failed to load availability windows")
	}
	if err := link.ValidateWindows(windows); err != nil {
		b.logger.Warn("inconsistent availability windows, overlaps are merged",
			slog.String("link_id", link.ID().String()),
			slog.String("date", date.String()),
			slog.String("error", err.Error()),
		)
	}
	for _, w := range windows {
		snapshot.Windows[w.ParticipantID] = append(snapshot.Windows[w.ParticipantID], w)
	}

	bookings, err := reads.ConfirmedBookingsBetween(ctx, link.ID(), interval.New(day.Start.Add(-link.Buffer()), day.End))
	if err != nil {
		return availability.Snapshot{}, errs.Wrap(err, "failed to load confirmed bookings")
	}
	snapshot.Bookings = bookings

	// Nobody's calendar matters when one participant has no window that day.
	for _, p := range participants {
		if len(snapshot.Windows[p]) == 0 {
			return snapshot, nil
		}
	}

	busy := b.fetchBusy(ctx, participants, day)
	for i, p := range participants {
		snapshot.Busy[p] = busy[i]
	}

	return snapshot, nil
}

func (b *SnapshotBuilder) fetchBusy(ctx context.Context, participants []uuid.UUID, day interval.Range) [][]interval.Range {
	results := make([][]interval.Range, len(participants))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentBusyFetches)
	for i, participant := range participants {
		g.Go(func() error {
			callCtx, cancel := context.WithTimeout(gctx, b.timeout)
			defer cancel()

			ranges, err := b.provider.BusyTimes(callCtx, participant, day.Start, day.End)
			if err != nil {
				b.logDegraded(participant, err)
				return nil
			}
			results[i] = ranges
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (b *SnapshotBuilder) logDegraded(participant uuid.UUID, err error) {
	level := slog.LevelWarn
	reason := "provider_error"
	switch {
	case errors.Is(err, ErrNotConnected):
		level, reason = slog.LevelDebug, "not_connected"
	case errors.Is(err, ErrTokenRevoked):
		reason = "token_revoked"
	case errors.Is(err, context.DeadlineExceeded):
		reason = "timeout"
	}

	b.logger.Log(context.Background(), level, "busy times unavailable, treating participant as free",
		slog.String("participant_id", participant.String()),
		slog.String("reason", reason),
		slog.String("error", errs.Mark(err, errs.ErrProviderDegraded).Error()),
	)
}
