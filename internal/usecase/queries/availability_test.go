//go:build unit

package queries_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"meeting-scheduler/internal/domain/availability"
	"meeting-scheduler/internal/domain/booking"
	"meeting-scheduler/internal/domain/interval"
	"meeting-scheduler/internal/domain/schedulelink"
	"meeting-scheduler/internal/domain/workflow"
	"meeting-scheduler/internal/infra"
	"meeting-scheduler/internal/pkg/clock"
	"meeting-scheduler/internal/pkg/config"
	"meeting-scheduler/internal/pkg/errs"
	"meeting-scheduler/internal/usecase/queries"
	"meeting-scheduler/internal/usecase/shared"
	"meeting-scheduler/tests/common/builder"
	queriesmock "meeting-scheduler/tests/mock/queries"
	sharedmock "meeting-scheduler/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type stubReads struct {
	link     *schedulelink.Link
	windows  []schedulelink.Window
	bookings []interval.Range
}

func (r *stubReads) LinkBySlug(_ context.Context, slug string) (*schedulelink.Link, error) {
	if r.link == nil || r.link.Slug() != slug {
		return nil, infra.WrapRepoErr("schedule link not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return r.link, nil
}

func (r *stubReads) WindowsForDay(_ context.Context, _ uuid.UUID, weekday schedulelink.Weekday) ([]schedulelink.Window, error) {
	var out []schedulelink.Window
	for _, w := range r.windows {
		if w.Weekday == weekday {
			out = append(out, w)
		}
	}
	return out, nil
}

func (r *stubReads) ConfirmedBookingsBetween(context.Context, uuid.UUID, interval.Range) ([]interval.Range, error) {
	return r.bookings, nil
}

func (r *stubReads) LinkByID(context.Context, uuid.UUID) (*schedulelink.Link, error) {
	return r.link, nil
}

func (r *stubReads) BookingByID(context.Context, uuid.UUID) (*booking.Booking, error) {
	return nil, errors.New("not used")
}

func (r *stubReads) ActiveWorkflowSteps(context.Context, uuid.UUID) ([]workflow.Step, error) {
	return nil, nil
}

type stubUoW struct {
	reads *stubReads
}

func (u stubUoW) Within(context.Context, func(context.Context, shared.Tx) error) error {
	return errors.New("not used")
}

func (u stubUoW) CommandReads() shared.CommandReads {
	return u.reads
}

type AvailabilityQueriesTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	reads    *stubReads
	bookings *queriesmock.MockBookingReadStore
	queries  queries.AvailabilityQueries
}

func (s *AvailabilityQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	link, err := builder.NewLinkBuilder().WithTimezone("Asia/Tokyo").WithDuration(60).BuildDomain()
	s.Require().NoError(err)

	start, _ := schedulelink.NewTimeOfDay(9, 0)
	end, _ := schedulelink.NewTimeOfDay(12, 0)
	w, err := schedulelink.NewWindow(builder.CreatorID, schedulelink.Monday, start, end)
	s.Require().NoError(err)
	s.reads = &stubReads{link: link, windows: []schedulelink.Window{w}}

	provider := sharedmock.NewMockBusyTimeProvider(s.ctrl)
	provider.EXPECT().BusyTimes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	clk := clock.NewMockClock(time.Date(2030, 3, 10, 0, 0, 0, 0, time.UTC))
	snapshots := shared.NewSnapshotBuilder(provider, clk, config.NewTestConfig(), slog.Default())
	s.bookings = queriesmock.NewMockBookingReadStore(s.ctrl)
	s.queries = queries.NewAvailabilityQueries(stubUoW{reads: s.reads}, s.bookings, snapshots, availability.NewCalculator())
}

func (s *AvailabilityQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAvailabilityQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityQueriesTestSuite))
}

func (s *AvailabilityQueriesTestSuite) TestSlots_RendersInLinkTimezone() {
	view, err := s.queries.Slots(context.Background(), "intro-call", "2030-03-11", "")

	s.Require().NoError(err)
	s.Equal("2030-03-11", view.Date)
	s.Equal("Asia/Tokyo", view.Timezone)
	s.Require().Len(view.Slots, 9)
	s.Equal("2030-03-11T09:00:00+09:00", view.Slots[0].Start.Format(time.RFC3339))
	s.Equal("2030-03-11T10:00:00+09:00", view.Slots[0].End.Format(time.RFC3339))
	s.Equal("2030-03-11T11:00:00+09:00", view.Slots[8].Start.Format(time.RFC3339))
}

func (s *AvailabilityQueriesTestSuite) TestSlots_RendersInViewerTimezone() {
	view, err := s.queries.Slots(context.Background(), "intro-call", "2030-03-11", "UTC")

	s.Require().NoError(err)
	s.Equal("UTC", view.Timezone)
	s.Equal("2030-03-11T00:00:00Z", view.Slots[0].Start.Format(time.RFC3339))
}

func (s *AvailabilityQueriesTestSuite) TestSlots_BookedRangeIsRemoved() {
	tokyo, _ := time.LoadLocation("Asia/Tokyo")
	booked := time.Date(2030, 3, 11, 10, 0, 0, 0, tokyo)
	s.reads.bookings = []interval.Range{interval.New(booked, booked.Add(time.Hour))}

	view, err := s.queries.Slots(context.Background(), "intro-call", "2030-03-11", "")

	s.Require().NoError(err)
	for _, slot := range view.Slots {
		s.False(slot.Start.Before(booked.Add(time.Hour)) && slot.End.After(booked), "slot %s overlaps the booking", slot.Start)
	}
	s.Len(view.Slots, 2)
}

func (s *AvailabilityQueriesTestSuite) TestSlots_Errors() {
	testCases := []struct {
		name     string
		slug     string
		date     string
		viewerTZ string
		wantErr  error
	}{
		{name: "unknown link", slug: "missing", date: "2030-03-11", wantErr: errs.ErrLinkNotFound},
		{name: "malformed date", slug: "intro-call", date: "11/03/2030", wantErr: errs.ErrInvalidDate},
		{name: "unknown viewer timezone", slug: "intro-call", date: "2030-03-11", viewerTZ: "Mars/Olympus", wantErr: errs.ErrInvalidTimezone},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			view, err := s.queries.Slots(context.Background(), tc.slug, tc.date, tc.viewerTZ)
			s.Require().Error(err)
			s.True(errs.Is(err, tc.wantErr), "unexpected error: %v", err)
			s.Nil(view)
		})
	}
}

func (s *AvailabilityQueriesTestSuite) TestSlots_InactiveLink() {
	link, err := builder.NewLinkBuilder().WithStatus(schedulelink.StatusInactive).BuildDomain()
	s.Require().NoError(err)
	s.reads.link = link

	_, err = s.queries.Slots(context.Background(), "intro-call", "2030-03-11", "")
	s.True(errs.Is(err, errs.ErrLinkInactive))
}

func (s *AvailabilityQueriesTestSuite) TestBooking_RendersInRequesterTimezone() {
	view := builder.NewBookingBuilder().
		WithSlot(time.Date(2030, 3, 11, 15, 0, 0, 0, time.UTC), 30*time.Minute).
		WithTimezone("America/New_York").
		BuildView()
	s.bookings.EXPECT().FindForLink(gomock.Any(), "intro-call", view.ID).Return(view, nil)

	got, err := s.queries.Booking(context.Background(), "intro-call", view.ID)

	s.Require().NoError(err)
	s.Equal("2030-03-11T11:00:00-04:00", got.Start.Format(time.RFC3339))
}

func (s *AvailabilityQueriesTestSuite) TestBooking_NotFound() {
	id := uuid.New()
	s.bookings.EXPECT().FindForLink(gomock.Any(), "intro-call", id).
		Return(nil, infra.WrapRepoErr("booking not found", pgx.ErrNoRows, infra.KindNotFound))

	_, err := s.queries.Booking(context.Background(), "intro-call", id)
	s.True(errs.Is(err, errs.ErrBookingNotFound))
}
