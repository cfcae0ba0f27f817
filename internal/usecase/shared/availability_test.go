//go:build unit

package shared_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"meeting-scheduler/internal/domain/availability"
	"meeting-scheduler/internal/domain/interval"
	"meeting-scheduler/internal/domain/schedulelink"
	"meeting-scheduler/internal/pkg/clock"
	"meeting-scheduler/internal/pkg/config"
	"meeting-scheduler/internal/usecase/shared"
	"meeting-scheduler/tests/common/builder"
	sharedmock "meeting-scheduler/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type stubReads struct {
	windows     []schedulelink.Window
	bookings    []interval.Range
	windowsErr  error
	bookingSpan *interval.Range
}

func (r *stubReads) LinkBySlug(context.Context, string) (*schedulelink.Link, error) {
	return nil, errors.New("not used")
}

func (r *stubReads) WindowsForDay(_ context.Context, _ uuid.UUID, weekday schedulelink.Weekday) ([]schedulelink.Window, error) {
	if r.windowsErr != nil {
		return nil, r.windowsErr
	}
	var out []schedulelink.Window
	for _, w := range r.windows {
		if w.Weekday == weekday {
			out = append(out, w)
		}
	}
	return out, nil
}

func (r *stubReads) ConfirmedBookingsBetween(_ context.Context, _ uuid.UUID, span interval.Range) ([]interval.Range, error) {
	r.bookingSpan = &span
	return r.bookings, nil
}

func window(t *testing.T, owner uuid.UUID, day schedulelink.Weekday, from, to int) schedulelink.Window {
	t.Helper()
	start, err := schedulelink.NewTimeOfDay(from, 0)
	require.NoError(t, err)
	end, err := schedulelink.NewTimeOfDay(to, 0)
	require.NoError(t, err)
	w, err := schedulelink.NewWindow(owner, day, start, end)
	require.NoError(t, err)
	return w
}

var (
	now    = time.Date(2030, 3, 10, 12, 0, 0, 0, time.UTC)
	monday = availability.DateOf(time.Date(2030, 3, 11, 0, 0, 0, 0, time.UTC), time.UTC)
)

func TestSnapshotBuilder_Build(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	link, err := builder.NewLinkBuilder().WithParticipant(builder.ParticipantID).WithBuffer(15).BuildDomain()
	require.NoError(t, err)
	day := monday.Span(time.UTC)

	booked := interval.New(day.Start.Add(11*time.Hour), day.Start.Add(11*time.Hour+30*time.Minute))
	reads := &stubReads{
		windows: []schedulelink.Window{
			window(t, builder.CreatorID, schedulelink.Monday, 9, 17),
			window(t, builder.ParticipantID, schedulelink.Monday, 13, 18),
		},
		bookings: []interval.Range{booked},
	}

	busy := []interval.Range{interval.New(day.Start.Add(14*time.Hour), day.Start.Add(15*time.Hour))}
	provider := sharedmock.NewMockBusyTimeProvider(ctrl)
	provider.EXPECT().BusyTimes(gomock.Any(), builder.CreatorID, day.Start, day.End).Return(busy, nil)
	provider.EXPECT().BusyTimes(gomock.Any(), builder.ParticipantID, day.Start, day.End).Return(nil, shared.ErrTokenRevoked)

	b := shared.NewSnapshotBuilder(provider, clock.NewMockClock(now), config.NewTestConfig(), slog.Default())
	snapshot, err := b.Build(ctx, reads, link, monday)

	require.NoError(t, err)
	assert.Equal(t, now, snapshot.Now)
	assert.Equal(t, []uuid.UUID{builder.CreatorID, builder.ParticipantID}, snapshot.Participants)
	assert.Len(t, snapshot.Windows[builder.CreatorID], 1)
	assert.Len(t, snapshot.Windows[builder.ParticipantID], 1)
	assert.Equal(t, busy, snapshot.Busy[builder.CreatorID])
	assert.Empty(t, snapshot.Busy[builder.ParticipantID], "a failing calendar counts as free")
	assert.Equal(t, []interval.Range{booked}, snapshot.Bookings)

	require.NotNil(t, reads.bookingSpan)
	assert.Equal(t, day.Start.Add(-15*time.Minute), reads.bookingSpan.Start, "bookings reaching into the day through their buffer are loaded")
}

func TestSnapshotBuilder_SkipsCalendarsWhenAParticipantHasNoWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	link, err := builder.NewLinkBuilder().WithParticipant(builder.ParticipantID).BuildDomain()
	require.NoError(t, err)
	reads := &stubReads{windows: []schedulelink.Window{
		window(t, builder.CreatorID, schedulelink.Monday, 9, 17),
	}}

	provider := sharedmock.NewMockBusyTimeProvider(ctrl)

	b := shared.NewSnapshotBuilder(provider, clock.NewMockClock(now), config.NewTestConfig(), slog.Default())
	snapshot, err := b.Build(context.Background(), reads, link, monday)

	require.NoError(t, err)
	assert.Empty(t, snapshot.Busy)
}

func TestSnapshotBuilder_ReportsOverlappingWindows(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	link, err := builder.NewLinkBuilder().BuildDomain()
	require.NoError(t, err)
	reads := &stubReads{windows: []schedulelink.Window{
		window(t, builder.CreatorID, schedulelink.Monday, 9, 11),
		window(t, builder.CreatorID, schedulelink.Monday, 10, 12),
	}}

	provider := sharedmock.NewMockBusyTimeProvider(ctrl)
	provider.EXPECT().BusyTimes(gomock.Any(), builder.CreatorID, gomock.Any(), gomock.Any()).Return(nil, nil)

	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))

	b := shared.NewSnapshotBuilder(provider, clock.NewMockClock(now), config.NewTestConfig(), logger)
	snapshot, err := b.Build(context.Background(), reads, link, monday)

	require.NoError(t, err)
	assert.Len(t, snapshot.Windows[builder.CreatorID], 2)
	assert.Contains(t, logs.String(), "inconsistent availability windows")
	assert.Contains(t, logs.String(), schedulelink.ErrWindowsOverlap.Error())

	slots, err := availability.NewCalculator().Slots(snapshot)
	require.NoError(t, err)
	assert.Len(t, slots, 11, "merged 09:00-12:00 window yields each 30 minute start once")
}

func TestSnapshotBuilder_SlowProviderTimesOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	link, err := builder.NewLinkBuilder().BuildDomain()
	require.NoError(t, err)
	reads := &stubReads{windows: []schedulelink.Window{
		window(t, builder.CreatorID, schedulelink.Monday, 9, 17),
	}}

	provider := sharedmock.NewMockBusyTimeProvider(ctrl)
	provider.EXPECT().BusyTimes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ uuid.UUID, _, _ time.Time) ([]interval.Range, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})

	cfg := config.NewTestConfig()
	cfg.BusyTime.Timeout = 20 * time.Millisecond

	b := shared.NewSnapshotBuilder(provider, clock.NewMockClock(now), cfg, slog.Default())
	snapshot, err := b.Build(context.Background(), reads, link, monday)

	require.NoError(t, err)
	assert.Empty(t, snapshot.Busy[builder.CreatorID])
}

func TestSnapshotBuilder_WindowReadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	link, err := builder.NewLinkBuilder().BuildDomain()
	require.NoError(t, err)
	reads := &stubReads{windowsErr: errors.New("connection refused")}

	b := shared.NewSnapshotBuilder(sharedmock.NewMockBusyTimeProvider(ctrl), clock.NewMockClock(now), config.NewTestConfig(), slog.Default())
	_, err = b.Build(context.Background(), reads, link, monday)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load availability windows")
}
