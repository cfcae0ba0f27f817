package busytime

import (
	"context"
	"log/slog"
	"time"

	"meeting-scheduler/internal/domain/interval"
	"meeting-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

// CachingProvider serves busy times from a cache and fills it from the wrapped
// provider. Failed fetches are never cached; cache errors fall through to the
// provider.
type CachingProvider struct {
	next   shared.BusyTimeProvider
	cache  Cache
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachingProvider(next shared.BusyTimeProvider, cache Cache, ttl time.Duration, logger *slog.Logger) *CachingProvider {
	return &CachingProvider{
		next:   next,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

func (p *CachingProvider) BusyTimes(ctx context.Context, participant uuid.UUID, from, to time.Time) ([]interval.Range, error) {
	generation, err := p.cache.Generation(ctx, participant)
	if err != nil {
		// Without the generation an entry could be stale; go to the source.
		p.logger.Warn("busy time cache generation unavailable",
			"participant_id", participant.String(),
			"error", err.Error(),
		)
		return p.next.BusyTimes(ctx, participant, from, to)
	}
	key := cacheKey(participant, generation, from, to)

	cached, ok, err := p.cache.Get(ctx, key)
	if err != nil {
		p.logger.Warn("busy time cache read failed", "key", key, "error", err.Error())
	} else if ok {
		return cached, nil
	}

	ranges, err := p.next.BusyTimes(ctx, participant, from, to)
	if err != nil {
		return nil, err
	}

	if err := p.cache.Set(ctx, key, ranges, p.ttl); err != nil {
		p.logger.Warn("busy time cache write failed", "key", key, "error", err.Error())
	}
	return ranges, nil
}

// Invalidate drops every cached span of the participant.
func (p *CachingProvider) Invalidate(ctx context.Context, participant uuid.UUID) error {
	return p.cache.Bump(ctx, participant)
}
