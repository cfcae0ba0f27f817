package availability

import (
	"time"

	"meeting-scheduler/internal/domain/interval"
	"meeting-scheduler/internal/domain/schedulelink"

	"github.com/google/uuid"
)

type Slot struct {
	Start time.Time
	End   time.Time
}

// Snapshot is everything a calculation reads. Windows and Busy are keyed by
// participant; Bookings are the confirmed bookings around the date.
type Snapshot struct {
	Policy       schedulelink.Policy
	Participants []uuid.UUID
	Date         Date
	Now          time.Time
	Windows      map[uuid.UUID][]schedulelink.Window
	Busy         map[uuid.UUID][]interval.Range
	Bookings     []interval.Range
}

type Calculator struct {
	granularity time.Duration
}

func NewCalculator() *Calculator {
	return &Calculator{granularity: interval.DefaultGranularity}
}

func NewCalculatorWithGranularity(granularity time.Duration) *Calculator {
	return &Calculator{granularity: granularity}
}

// Slots returns the bookable slots for the snapshot's date, ordered by start.
func (c *Calculator) Slots(s Snapshot) ([]Slot, error) {
	loc := s.Policy.Location
	if loc == nil {
		return nil, schedulelink.ErrInvalidTimezone
	}

	weekday := s.Date.Weekday()
	today := DateOf(s.Now, loc)
	if s.Date.Before(today) {
		return []Slot{}, nil
	}
	if s.Date.After(today.AddDays(s.Policy.MaxFutureDays)) {
		return []Slot{}, nil
	}
	if len(s.Participants) == 0 {
		return []Slot{}, nil
	}

	var free []interval.Range
	for i, participant := range s.Participants {
		own := c.participantFree(s, participant, weekday)
		if i == 0 {
			free = own
		} else {
			free = interval.Intersect(free, own)
		}
		if len(free) == 0 {
			return []Slot{}, nil
		}
	}

	day := s.Date.Span(loc)
	if s.Policy.MaxBookingsPerDay != nil {
		count := 0
		for _, b := range s.Bookings {
			if day.Contains(b.Start) {
				count++
			}
		}
		if count >= *s.Policy.MaxBookingsPerDay {
			return []Slot{}, nil
		}
	}

	blocked := make([]interval.Range, len(s.Bookings))
	for i, b := range s.Bookings {
		blocked[i] = interval.New(b.Start, b.End.Add(s.Policy.Buffer))
	}
	free = interval.Subtract(free, blocked)

	starts, err := interval.SplitIntoSlots(free, s.Policy.Duration, c.granularity)
	if err != nil {
		return nil, err
	}

	slots := make([]Slot, 0, len(starts))
	for _, start := range starts {
		if !start.After(s.Now) {
			continue
		}
		slots = append(slots, Slot{Start: start, End: start.Add(s.Policy.Duration)})
	}
	return slots, nil
}

// Offers reports whether start is one of the slot starts for the snapshot.
func (c *Calculator) Offers(s Snapshot, start time.Time) (bool, error) {
	slots, err := c.Slots(s)
	if err != nil {
		return false, err
	}
	for _, slot := range slots {
		if slot.Start.Equal(start) {
			return true, nil
		}
	}
	return false, nil
}

func (c *Calculator) participantFree(s Snapshot, participant uuid.UUID, weekday schedulelink.Weekday) []interval.Range {
	var windows []schedulelink.Window
	for _, w := range s.Windows[participant] {
		if w.Weekday == weekday {
			windows = append(windows, w)
		}
	}
	if len(windows) == 0 {
		return nil
	}

	anchored := make([]interval.Range, 0, len(windows))
	for _, w := range windows {
		anchored = append(anchored, interval.New(s.Date.At(w.Start.Offset(), s.Policy.Location), s.Date.At(w.End.Offset(), s.Policy.Location)))
	}

	// Overlapping windows would otherwise yield the same slot twice.
	return interval.Subtract(interval.Merge(anchored), s.Busy[participant])
}
