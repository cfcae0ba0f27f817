//go:build unit

package busytime_test

import (
	"context"
	"testing"
	"time"

	"meeting-scheduler/internal/domain/interval"
	"meeting-scheduler/internal/infra/busytime"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNow struct{ t time.Time }

func (f *fakeNow) Now() time.Time          { return f.t }
func (f *fakeNow) Advance(d time.Duration) { f.t = f.t.Add(d) }

func TestMemoryCache_ExpiresAfterTTL(t *testing.T) {
	ctx := context.Background()
	clk := &fakeNow{t: time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC)}
	cache := busytime.NewMemoryCache(10, clk.Now)

	busy := []interval.Range{interval.New(clk.t.Add(time.Hour), clk.t.Add(2*time.Hour))}
	require.NoError(t, cache.Set(ctx, "k", busy, time.Minute))

	got, ok, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, busy, got)

	clk.Advance(time.Minute)

	got, ok, err = cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok, "entry must be gone once the TTL has elapsed")
	assert.Nil(t, got)
}

func TestMemoryCache_EvictsEntryClosestToExpiry(t *testing.T) {
	ctx := context.Background()
	clk := &fakeNow{t: time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC)}
	cache := busytime.NewMemoryCache(2, clk.Now)

	require.NoError(t, cache.Set(ctx, "short", nil, time.Minute))
	require.NoError(t, cache.Set(ctx, "long", nil, time.Hour))
	require.NoError(t, cache.Set(ctx, "new", nil, time.Hour))

	_, ok, _ := cache.Get(ctx, "short")
	assert.False(t, ok)
	_, ok, _ = cache.Get(ctx, "long")
	assert.True(t, ok)
	_, ok, _ = cache.Get(ctx, "new")
	assert.True(t, ok)
}

func TestMemoryCache_BumpAdvancesOnlyThatParticipant(t *testing.T) {
	ctx := context.Background()
	cache := busytime.NewMemoryCache(0, nil)
	alice, bob := uuid.New(), uuid.New()

	aliceKey := "busy:" + alice.String() + ":g0:1:2"
	bobKey := "busy:" + bob.String() + ":g0:1:2"
	require.NoError(t, cache.Set(ctx, aliceKey, nil, time.Hour))
	require.NoError(t, cache.Set(ctx, bobKey, nil, time.Hour))

	require.NoError(t, cache.Bump(ctx, alice))
	require.NoError(t, cache.Bump(ctx, alice))

	gen, err := cache.Generation(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, int64(2), gen)
	gen, err = cache.Generation(ctx, bob)
	require.NoError(t, err)
	assert.Zero(t, gen)

	_, ok, _ := cache.Get(ctx, aliceKey)
	assert.False(t, ok)
	_, ok, _ = cache.Get(ctx, bobKey)
	assert.True(t, ok)
}

func TestMemoryCache_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	cache := busytime.NewMemoryCache(0, nil)
	start := time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC)

	busy := []interval.Range{interval.New(start, start.Add(time.Hour))}
	require.NoError(t, cache.Set(ctx, "k", busy, time.Hour))
	busy[0] = interval.New(start, start)

	got, ok, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, time.Hour, got[0].Duration())
}
