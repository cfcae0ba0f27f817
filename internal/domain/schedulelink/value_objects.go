package schedulelink

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidTimeOfDay = errors.New("time of day must be between 00:00 and 24:00")

const minutesPerDay = 24 * 60

// TimeOfDay is a wall-clock offset from local midnight in minutes.
// 24:00 is allowed as a window end and means the following midnight.
type TimeOfDay struct {
	minutes int
}

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || minute < 0 || minute > 59 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	total := hour*60 + minute
	if total > minutesPerDay {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{minutes: total}, nil
}

func TimeOfDayFromMinutes(minutes int) (TimeOfDay, error) {
	if minutes < 0 || minutes > minutesPerDay {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{minutes: minutes}, nil
}

// ParseTimeOfDay accepts "HH:MM".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil || len(s) != 5 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return NewTimeOfDay(h, m)
}

func (t TimeOfDay) Minutes() int {
	return t.minutes
}

func (t TimeOfDay) Offset() time.Duration {
	return time.Duration(t.minutes) * time.Minute
}

func (t TimeOfDay) Before(o TimeOfDay) bool {
	return t.minutes < o.minutes
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}
