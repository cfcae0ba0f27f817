//go:build unit

package ratelimit_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"meeting-scheduler/internal/infra/ratelimit"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingScripter answers the limiter script like Redis would, one counter per key.
type countingScripter struct {
	redis.Scripter
	counts  map[string]int64
	windows map[string]any
	err     error
}

func newCountingScripter() *countingScripter {
	return &countingScripter{counts: map[string]int64{}, windows: map[string]any{}}
}

func (s *countingScripter) EvalSha(ctx context.Context, _ string, keys []string, args ...any) *redis.Cmd {
	cmd := redis.NewCmd(ctx)
	if s.err != nil {
		cmd.SetErr(s.err)
		return cmd
	}
	s.counts[keys[0]]++
	if s.counts[keys[0]] == 1 {
		s.windows[keys[0]] = args[0]
	}
	cmd.SetVal(s.counts[keys[0]])
	return cmd
}

func TestRedisLimiter_Allow(t *testing.T) {
	ctx := context.Background()
	scripter := newCountingScripter()
	limiter := ratelimit.NewRedisLimiter(scripter)

	for i := range 5 {
		ok, err := limiter.Allow(ctx, "book:203.0.113.7", 5, time.Minute)
		require.NoError(t, err)
		assert.True(t, ok, "hit %d is within the limit", i+1)
	}

	ok, err := limiter.Allow(ctx, "book:203.0.113.7", 5, time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = limiter.Allow(ctx, "book:198.51.100.2", 5, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok, "other clients keep their own budget")

	assert.Equal(t, int64(60000), scripter.windows["rl:book:203.0.113.7"])
}

func TestRedisLimiter_RedisFailure(t *testing.T) {
	scripter := newCountingScripter()
	scripter.err = errors.New("connection refused")
	limiter := ratelimit.NewRedisLimiter(scripter)

	ok, err := limiter.Allow(context.Background(), "read:203.0.113.7", 30, time.Minute)
	require.Error(t, err)
	assert.False(t, ok)
}
