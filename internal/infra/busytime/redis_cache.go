package busytime

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"meeting-scheduler/internal/domain/interval"
	"meeting-scheduler/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client redis.Cmdable
}

func NewRedisCache(client redis.Cmdable) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]interval.Range, bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, errs.Wrap(err, "failed to read busy times from redis")
	}

	var cached []cachedRange
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, false, errs.Wrap(err, "failed to decode cached busy times")
	}
	return fromCached(cached), true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, ranges []interval.Range, ttl time.Duration) error {
	raw, err := json.Marshal(toCached(ranges))
	if err != nil {
		return errs.Wrap(err, "failed to encode busy times")
	}
	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to write busy times to redis")
	}
	return nil
}

func (c *RedisCache) Generation(ctx context.Context, participant uuid.UUID) (int64, error) {
	gen, err := c.client.Get(ctx, generationKey(participant)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, errs.Wrap(err, "failed to read busy time generation from redis")
	}
	return gen, nil
}

// Bump increments the participant's generation. The counter has no TTL so it
// never restarts at a value whose entries may still be live.
func (c *RedisCache) Bump(ctx context.Context, participant uuid.UUID) error {
	if err := c.client.Incr(ctx, generationKey(participant)).Err(); err != nil {
		return errs.Wrap(err, "failed to bump busy time generation in redis")
	}
	return nil
}
