package interval

import (
	"errors"
	"sort"
	"time"
)

const DefaultGranularity = 15 * time.Minute

var ErrInvalidGranularity = errors.New("slot granularity must be positive")

// Range is a half-open [Start, End) span of instants.
type Range struct {
	Start time.Time
	End   time.Time
}

func New(start, end time.Time) Range {
	return Range{Start: start, End: end}
}

func (r Range) IsEmpty() bool {
	return !r.Start.Before(r.End)
}

func (r Range) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

func (r Range) Overlaps(o Range) bool {
	return r.Start.Before(o.End) && o.Start.Before(r.End)
}

// Intersect returns the overlap of two sorted, internally non-overlapping range lists.
// Zero-length overlaps are discarded.
func Intersect(a, b []Range) []Range {
	result := make([]Range, 0, min(len(a), len(b)))
	i, j := 0, 0

	for i < len(a) && j < len(b) {
		start := later(a[i].Start, b[j].Start)
		end := earlier(a[i].End, b[j].End)
		if start.Before(end) {
			result = append(result, Range{Start: start, End: end})
		}

		if !a[i].End.After(b[j].End) {
			i++
		} else {
			j++
		}
	}

	return result
}

// Merge sorts ranges by start and coalesces the ones that overlap or touch,
// yielding the sorted, non-overlapping form Intersect and SplitIntoSlots expect.
// Empty ranges are dropped.
func Merge(ranges []Range) []Range {
	sorted := make([]Range, 0, len(ranges))
	for _, r := range ranges {
		if !r.IsEmpty() {
			sorted = append(sorted, r)
		}
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	merged := sorted[:0]
	for _, r := range sorted {
		if n := len(merged); n > 0 && !r.Start.After(merged[n-1].End) {
			merged[n-1].End = later(merged[n-1].End, r.End)
			continue
		}
		merged = append(merged, r)
	}
	return merged
}

// Subtract removes every cut range from base. Cuts are applied one after another,
// splitting base ranges into left and right remainders where they overlap.
func Subtract(base, cuts []Range) []Range {
	result := make([]Range, len(base))
	copy(result, base)

	for _, cut := range cuts {
		next := make([]Range, 0, len(result)+1)
		for _, r := range result {
			if !cut.Start.Before(r.End) || !r.Start.Before(cut.End) {
				next = append(next, r)
				continue
			}
			if r.Start.Before(cut.Start) {
				next = append(next, Range{Start: r.Start, End: cut.Start})
			}
			if cut.End.Before(r.End) {
				next = append(next, Range{Start: cut.End, End: r.End})
			}
		}
		result = next
	}

	return result
}

// SplitIntoSlots returns every start time, aligned to granularity boundaries measured
// from the Unix epoch, at which a meeting of the given duration fits inside a range.
func SplitIntoSlots(ranges []Range, duration, granularity time.Duration) ([]time.Time, error) {
	if granularity <= 0 {
		return nil, ErrInvalidGranularity
	}
	if duration < 0 {
		return nil, nil
	}

	var starts []time.Time
	for _, r := range ranges {
		for cursor := CeilTo(r.Start, granularity); !cursor.Add(duration).After(r.End); cursor = cursor.Add(granularity) {
			starts = append(starts, cursor)
		}
	}

	return starts, nil
}

// CeilTo rounds t up to the next multiple of d since the Unix epoch.
func CeilTo(t time.Time, d time.Duration) time.Time {
	if d <= 0 {
		return t
	}
	utc := t.UTC()
	rem := time.Duration(utc.UnixNano()) % d
	if rem < 0 {
		rem += d
	}
	if rem == 0 {
		return utc
	}
	return utc.Add(d - rem)
}

func later(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func earlier(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
