package workflow

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTiming  = errors.New("step timing must be before or after")
	ErrInvalidMinutes = errors.New("step offset must not be negative")
)

type Timing string

const (
	TimingBefore Timing = "before"
	TimingAfter  Timing = "after"
)

func (t Timing) IsValid() bool {
	return t == TimingBefore || t == TimingAfter
}

// Step sends a notification a fixed offset before the meeting starts or after it ends.
type Step struct {
	ID      uuid.UUID
	Timing  Timing
	Minutes int
	Action  string
}

func NewStep(id uuid.UUID, timing Timing, minutes int, action string) (Step, error) {
	if !timing.IsValid() {
		return Step{}, ErrInvalidTiming
	}
	if minutes < 0 {
		return Step{}, ErrInvalidMinutes
	}
	return Step{ID: id, Timing: timing, Minutes: minutes, Action: action}, nil
}

func (s Step) SendTime(start, end time.Time) time.Time {
	offset := time.Duration(s.Minutes) * time.Minute
	if s.Timing == TimingBefore {
		return start.Add(-offset)
	}
	return end.Add(offset)
}

type Scheduled struct {
	Step  Step
	RunAt time.Time
}

// Schedule returns the steps still due for a meeting, skipping send times not after now.
func Schedule(steps []Step, start, end, now time.Time) []Scheduled {
	out := make([]Scheduled, 0, len(steps))
	for _, s := range steps {
		at := s.SendTime(start, end)
		if !at.After(now) {
			continue
		}
		out = append(out, Scheduled{Step: s, RunAt: at})
	}
	return out
}
