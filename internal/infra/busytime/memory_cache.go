package busytime

import (
	"context"
	"strings"
	"sync"
	"time"

	"meeting-scheduler/internal/domain/interval"

	"github.com/google/uuid"
)

const defaultMaxEntries = 4096

// MemoryCache is a process-local TTL cache for single-instance deployments and tests.
type MemoryCache struct {
	mu         sync.RWMutex
	now        func() time.Time
	maxEntries int
	entries    map[string]memoryEntry
	generation map[uuid.UUID]int64
}

type memoryEntry struct {
	ranges    []interval.Range
	expiresAt time.Time
}

func NewMemoryCache(maxEntries int, now func() time.Time) *MemoryCache {
	if maxEntries <= 0 {
		maxEntries = defaultMaxEntries
	}
	if now == nil {
		now = time.Now
	}
	return &MemoryCache{
		now:        now,
		maxEntries: maxEntries,
		entries:    make(map[string]memoryEntry),
		generation: make(map[uuid.UUID]int64),
	}
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]interval.Range, bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if !c.now().Before(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false, nil
	}
	return append([]interval.Range(nil), entry.ranges...), true, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, ranges []interval.Range, ttl time.Duration) error {
	entry := memoryEntry{
		ranges:    append([]interval.Range(nil), ranges...),
		expiresAt: c.now().Add(ttl),
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.cleanupLocked()
	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxEntries {
		c.evictOneLocked()
	}
	c.entries[key] = entry
	return nil
}

func (c *MemoryCache) Generation(_ context.Context, participant uuid.UUID) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.generation[participant], nil
}

// Bump advances the participant's generation and drops the entries it orphans.
func (c *MemoryCache) Bump(_ context.Context, participant uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation[participant]++
	prefix := "busy:" + participant.String() + ":"
	for k := range c.entries {
		if strings.HasPrefix(k, prefix) {
			delete(c.entries, k)
		}
	}
	return nil
}

func (c *MemoryCache) cleanupLocked() {
	now := c.now()
	for k, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, k)
		}
	}
}

// evictOneLocked drops the entry closest to expiry.
func (c *MemoryCache) evictOneLocked() {
	var (
		victim string
		oldest time.Time
	)
	for k, e := range c.entries {
		if victim == "" || e.expiresAt.Before(oldest) {
			victim, oldest = k, e.expiresAt
		}
	}
	if victim != "" {
		delete(c.entries, victim)
	}
}
