package schedulelink

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidDuration      = errors.New("meeting duration must be positive")
	ErrInvalidBuffer        = errors.New("buffer must not be negative")
	ErrInvalidMaxFutureDays = errors.New("max future days must be positive")
	ErrInvalidMaxPerDay     = errors.New("max bookings per day must be positive when set")
	ErrInvalidTimezone      = errors.New("unknown timezone")
	ErrInvalidStatus        = errors.New("invalid link status")
	ErrInvalidWeekday       = errors.New("day of week must be between 0 and 6")
	ErrWindowOrder          = errors.New("window start must be before end")
	ErrWindowsOverlap       = errors.New("windows on the same day overlap")
	ErrNoParticipants       = errors.New("link needs at least one participant")
	ErrDuplicateParticipant = errors.New("participant listed twice")
	ErrParticipantNotMember = errors.New("window owner is not a participant of the link")
)

type Participant struct {
	UserID    uuid.UUID
	Name      string
	Email     string
	IsCreator bool
}

// Policy holds the link-level settings the availability calculation depends on.
type Policy struct {
	Duration          time.Duration
	Buffer            time.Duration
	Location          *time.Location
	MaxFutureDays     int
	MaxBookingsPerDay *int
}

type Link struct {
	id           uuid.UUID
	slug         string
	name         string
	policy       Policy
	status       Status
	workflowID   *uuid.UUID
	participants []Participant
}

type Params struct {
	ID                uuid.UUID
	Slug              string
	Name              string
	DurationMinutes   int
	BufferMinutes     int
	Timezone          string
	MaxFutureDays     int
	MaxBookingsPerDay *int
	Status            Status
	WorkflowID        *uuid.UUID
	Participants      []Participant
}

func NewLink(p Params) (*Link, error) {
	if p.DurationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}
	if p.BufferMinutes < 0 {
		return nil, ErrInvalidBuffer
	}
	if p.MaxFutureDays <= 0 {
		return nil, ErrInvalidMaxFutureDays
	}
	if p.MaxBookingsPerDay != nil && *p.MaxBookingsPerDay <= 0 {
		return nil, ErrInvalidMaxPerDay
	}
	if !p.Status.IsValid() {
		return nil, ErrInvalidStatus
	}
	loc, err := LoadLocation(p.Timezone)
	if err != nil {
		return nil, err
	}
	if len(p.Participants) == 0 {
		return nil, ErrNoParticipants
	}
	seen := make(map[uuid.UUID]struct{}, len(p.Participants))
	for _, pt := range p.Participants {
		if _, dup := seen[pt.UserID]; dup {
			return nil, ErrDuplicateParticipant
		}
		seen[pt.UserID] = struct{}{}
	}

	participants := make([]Participant, len(p.Participants))
	copy(participants, p.Participants)

	return &Link{
		id:   p.ID,
		slug: p.Slug,
		name: p.Name,
		policy: Policy{
			Duration:          time.Duration(p.DurationMinutes) * time.Minute,
			Buffer:            time.Duration(p.BufferMinutes) * time.Minute,
			Location:          loc,
			MaxFutureDays:     p.MaxFutureDays,
			MaxBookingsPerDay: p.MaxBookingsPerDay,
		},
		status:       p.Status,
		workflowID:   p.WorkflowID,
		participants: participants,
	}, nil
}

// LoadLocation accepts IANA zone names only; the empty string and "Local" are rejected.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return nil, ErrInvalidTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, ErrInvalidTimezone
	}
	return loc, nil
}

func (l *Link) IsActive() bool {
	return l.status == StatusActive
}

// Creator returns the participant flagged as creator, falling back to the first one.
func (l *Link) Creator() Participant {
	for _, p := range l.participants {
		if p.IsCreator {
			return p
		}
	}
	return l.participants[0]
}

func (l *Link) HasParticipant(userID uuid.UUID) bool {
	for _, p := range l.participants {
		if p.UserID == userID {
			return true
		}
	}
	return false
}

func (l *Link) ParticipantIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(l.participants))
	for i, p := range l.participants {
		ids[i] = p.UserID
	}
	return ids
}

func (l *Link) ID() uuid.UUID               { return l.id }
func (l *Link) Slug() string                { return l.slug }
func (l *Link) Name() string                { return l.name }
func (l *Link) Policy() Policy              { return l.policy }
func (l *Link) Location() *time.Location    { return l.policy.Location }
func (l *Link) Duration() time.Duration     { return l.policy.Duration }
func (l *Link) Buffer() time.Duration       { return l.policy.Buffer }
func (l *Link) Status() Status              { return l.status }
func (l *Link) WorkflowID() *uuid.UUID      { return l.workflowID }
func (l *Link) Participants() []Participant { return append([]Participant(nil), l.participants...) }

// Window is a recurring weekly interval owned by one participant of a link.
type Window struct {
	ParticipantID uuid.UUID
	Weekday       Weekday
	Start         TimeOfDay
	End           TimeOfDay
}

func NewWindow(participantID uuid.UUID, weekday Weekday, start, end TimeOfDay) (Window, error) {
	if !weekday.IsValid() {
		return Window{}, ErrInvalidWeekday
	}
	if !start.Before(end) {
		return Window{}, ErrWindowOrder
	}
	return Window{ParticipantID: participantID, Weekday: weekday, Start: start, End: end}, nil
}

// ValidateWindows checks that every window belongs to a participant of the link
// and that no two windows of the same participant and weekday overlap.
func (l *Link) ValidateWindows(windows []Window) error {
	type key struct {
		owner uuid.UUID
		day   Weekday
	}
	grouped := make(map[key][]Window)
	for _, w := range windows {
		if !l.HasParticipant(w.ParticipantID) {
			return ErrParticipantNotMember
		}
		k := key{owner: w.ParticipantID, day: w.Weekday}
		grouped[k] = append(grouped[k], w)
	}

	for _, ws := range grouped {
		SortWindows(ws)
		for i := 1; i < len(ws); i++ {
			if ws[i].Start.Before(ws[i-1].End) {
				return ErrWindowsOverlap
			}
		}
	}
	return nil
}

func SortWindows(ws []Window) {
	sort.Slice(ws, func(i, j int) bool {
		return ws[i].Start.Before(ws[j].Start)
	})
}
