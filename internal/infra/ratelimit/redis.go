package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"meeting-scheduler/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "rl:"

// fixedWindow counts hits on a key and starts its window on the first one.
var fixedWindow = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// RedisLimiter is a fixed-window limiter shared by every API instance.
type RedisLimiter struct {
	client redis.Scripter
}

func NewRedisLimiter(client redis.Scripter) *RedisLimiter {
	return &RedisLimiter{client: client}
}

// Allow records a hit on key and reports whether it is within limit for the
// current window.
func (l *RedisLimiter) Allow(ctx context.Context, key string, limit int64, window time.Duration) (bool, error) {
	ms := window.Milliseconds()
	if ms <= 0 {
		ms = time.Minute.Milliseconds()
	}

	res, err := fixedWindow.Run(ctx, l.client, []string{keyPrefix + key}, ms).Result()
	if err != nil {
		return false, errs.Wrap(err, "failed to count request in redis")
	}

	var count int64
	switch v := res.(type) {
	case int64:
		count = v
	case string:
		count, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			return false, errs.Wrap(err, "failed to parse rate limit count")
		}
	default:
		return false, errs.New(fmt.Sprintf("unexpected rate limit script result %T", res))
	}
	return count <= limit, nil
}
