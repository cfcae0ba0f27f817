package busytime

import (
	"context"
	"fmt"
	"time"

	"meeting-scheduler/internal/domain/interval"

	"github.com/google/uuid"
)

// Cache stores busy ranges per participant and span. Every participant has a
// generation number that is part of each key; bumping it orphans all of the
// participant's entries at once, whichever link or timezone produced the span.
type Cache interface {
	Get(ctx context.Context, key string) ([]interval.Range, bool, error)
	Set(ctx context.Context, key string, ranges []interval.Range, ttl time.Duration) error
	Generation(ctx context.Context, participant uuid.UUID) (int64, error)
	Bump(ctx context.Context, participant uuid.UUID) error
}

// cacheKey identifies one participant's busy times over [from, to) within a generation.
func cacheKey(participant uuid.UUID, generation int64, from, to time.Time) string {
	return fmt.Sprintf("busy:%s:g%d:%d:%d", participant, generation, from.Unix(), to.Unix())
}

func generationKey(participant uuid.UUID) string {
	return "busy:gen:" + participant.String()
}

type cachedRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func toCached(ranges []interval.Range) []cachedRange {
	out := make([]cachedRange, len(ranges))
	for i, r := range ranges {
		out[i] = cachedRange{Start: r.Start.UTC(), End: r.End.UTC()}
	}
	return out
}

func fromCached(cached []cachedRange) []interval.Range {
	out := make([]interval.Range, len(cached))
	for i, c := range cached {
		out[i] = interval.New(c.Start.UTC(), c.End.UTC())
	}
	return out
}
