package busytime

import (
	"context"
	"errors"
	"net/http"
	"time"

	"meeting-scheduler/internal/domain/interval"
	"meeting-scheduler/internal/infra"
	"meeting-scheduler/internal/infra/readstore"
	"meeting-scheduler/internal/pkg/errs"
	"meeting-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const primaryCalendar = "primary"

type AccountStore interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*readstore.CalendarAccount, error)
}

// googleCalendar opens Calendar API clients on a participant's stored access token.
type googleCalendar struct {
	endpoint string
	accounts AccountStore
}

func (g googleCalendar) connect(ctx context.Context, participant uuid.UUID) (*calendar.Service, string, error) {
	account, err := g.accounts.FindByUserID(ctx, participant)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, "", shared.ErrNotConnected
		}
		return nil, "", err
	}
	if account.Revoked || account.AccessToken == "" {
		return nil, "", shared.ErrTokenRevoked
	}

	calendarID := account.CalendarID
	if calendarID == "" {
		calendarID = primaryCalendar
	}

	opts := []option.ClientOption{
		option.WithTokenSource(oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: account.AccessToken,
			TokenType:   "Bearer",
		})),
	}
	if g.endpoint != "" {
		opts = append(opts, option.WithEndpoint(g.endpoint))
	}

	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, "", errs.Wrap(err, "failed to build calendar client")
	}
	return svc, calendarID, nil
}

// apiErr maps a rejected token to ErrTokenRevoked and wraps everything else.
func apiErr(err error, msg string) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && gerr.Code == http.StatusUnauthorized {
		return shared.ErrTokenRevoked
	}
	return errs.Wrap(err, msg)
}

func isGone(err error) bool {
	var gerr *googleapi.Error
	return errors.As(err, &gerr) && (gerr.Code == http.StatusNotFound || gerr.Code == http.StatusGone)
}

// GoogleProvider queries Google Calendar free/busy with each participant's
// stored access token.
type GoogleProvider struct {
	googleCalendar
}

func NewGoogleProvider(endpoint string, accounts AccountStore) *GoogleProvider {
	return &GoogleProvider{googleCalendar{endpoint: endpoint, accounts: accounts}}
}

func (p *GoogleProvider) BusyTimes(ctx context.Context, participant uuid.UUID, from, to time.Time) ([]interval.Range, error) {
	svc, calendarID, err := p.connect(ctx, participant)
	if err != nil {
		return nil, err
	}

	resp, err := svc.Freebusy.Query(&calendar.FreeBusyRequest{
		TimeMin: from.UTC().Format(time.RFC3339),
		TimeMax: to.UTC().Format(time.RFC3339),
		Items:   []*calendar.FreeBusyRequestItem{{Id: calendarID}},
	}).Context(ctx).Do()
	if err != nil {
		return nil, apiErr(err, "free/busy request failed")
	}

	cal, ok := resp.Calendars[calendarID]
	if !ok {
		return nil, nil
	}
	if len(cal.Errors) > 0 {
		return nil, errs.New("free/busy calendar error: " + cal.Errors[0].Reason)
	}

	ranges := make([]interval.Range, 0, len(cal.Busy))
	for _, b := range cal.Busy {
		start, err := time.Parse(time.RFC3339, b.Start)
		if err != nil {
			return nil, errs.Wrap(err, "failed to parse busy start")
		}
		end, err := time.Parse(time.RFC3339, b.End)
		if err != nil {
			return nil, errs.Wrap(err, "failed to parse busy end")
		}
		r := interval.New(start.UTC(), end.UTC())
		if r.IsEmpty() {
			continue
		}
		ranges = append(ranges, r)
	}
	return ranges, nil
}

// GoogleEventWriter inserts and removes booking events on participants'
// Google calendars.
type GoogleEventWriter struct {
	googleCalendar
}

func NewGoogleEventWriter(endpoint string, accounts AccountStore) *GoogleEventWriter {
	return &GoogleEventWriter{googleCalendar{endpoint: endpoint, accounts: accounts}}
}

func (w *GoogleEventWriter) CreateEvent(ctx context.Context, participant uuid.UUID, event shared.CalendarEvent) (string, error) {
	svc, calendarID, err := w.connect(ctx, participant)
	if err != nil {
		return "", err
	}

	created, err := svc.Events.Insert(calendarID, &calendar.Event{
		Summary:     event.Title,
		Description: event.Description,
		Start:       &calendar.EventDateTime{DateTime: event.Start.Format(time.RFC3339)},
		End:         &calendar.EventDateTime{DateTime: event.End.Format(time.RFC3339)},
	}).Context(ctx).Do()
	if err != nil {
		return "", apiErr(err, "failed to create calendar event")
	}
	return created.Id, nil
}

// DeleteEvent treats an event that is already gone as deleted.
func (w *GoogleEventWriter) DeleteEvent(ctx context.Context, participant uuid.UUID, eventID string) error {
	svc, calendarID, err := w.connect(ctx, participant)
	if err != nil {
		return err
	}

	if err := svc.Events.Delete(calendarID, eventID).Context(ctx).Do(); err != nil {
		if isGone(err) {
			return nil
		}
		return apiErr(err, "failed to delete calendar event")
	}
	return nil
}
