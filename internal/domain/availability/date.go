package availability

import (
	"errors"
	"time"

	"meeting-scheduler/internal/domain/interval"
	"meeting-scheduler/internal/domain/schedulelink"
)

const dateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("date must be formatted as YYYY-MM-DD")

// Date is a calendar day with no zone attached.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return DateOf(t, time.UTC), nil
}

// DateOf returns the calendar day t falls on in loc.
func DateOf(t time.Time, loc *time.Location) Date {
	y, m, d := t.In(loc).Date()
	return Date{Year: y, Month: m, Day: d}
}

func (d Date) String() string {
	return d.midnight(time.UTC).Format(dateLayout)
}

func (d Date) Weekday() schedulelink.Weekday {
	return schedulelink.WeekdayOf(d.midnight(time.UTC).Weekday())
}

func (d Date) AddDays(n int) Date {
	return DateOf(time.Date(d.Year, d.Month, d.Day+n, 0, 0, 0, 0, time.UTC), time.UTC)
}

func (d Date) Before(o Date) bool {
	return d.midnight(time.UTC).Before(o.midnight(time.UTC))
}

func (d Date) After(o Date) bool {
	return o.Before(d)
}

// At anchors a wall-clock offset on this day in loc. Offsets of 24h or more
// roll over into the following days.
func (d Date) At(offset time.Duration, loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, int(offset/time.Minute), 0, 0, loc).UTC()
}

// Span is the instant range from local midnight of d to local midnight of the next day.
func (d Date) Span(loc *time.Location) interval.Range {
	return interval.New(d.At(0, loc), d.AddDays(1).At(0, loc))
}

func (d Date) midnight(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}
