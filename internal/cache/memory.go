package cache

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/jonboulle/clockwork"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// Memory is a bounded in-process cache with per-entry expiry.
// The LRU evicts the least recently used key once size is reached, expired
// entries are dropped when they are next read.
type Memory struct {
	lru   *lru.Cache[string, memoryEntry]
	clock clockwork.Clock
}

var _ Cache = (*Memory)(nil)

// NewMemory creates a memory cache holding at most size entries
func NewMemory(size int, clock clockwork.Clock) *Memory {
	if size <= 0 {
		size = DefaultMemorySize
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	// New only fails for a non-positive size
	l, _ := lru.New[string, memoryEntry](size)
	return &Memory{
		lru:   l,
		clock: clock,
	}
}

func (c *Memory) Get(ctx context.Context, key string) ([]byte, error) {
	entry, ok := c.lru.Get(key)
	if !ok {
		return nil, ErrCacheMiss
	}
	if entry.expired(c.clock.Now()) {
		c.lru.Remove(key)
		return nil, ErrCacheMiss
	}

	result := make([]byte, len(entry.value))
	copy(result, entry.value)
	return result, nil
}

func (c *Memory) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	entry := memoryEntry{value: valueCopy}
	if ttl > 0 {
		entry.expiresAt = c.clock.Now().Add(ttl)
	}
	c.lru.Add(key, entry)
	return nil
}

func (c *Memory) Delete(ctx context.Context, key string) error {
	c.lru.Remove(key)
	return nil
}

func (c *Memory) Exists(ctx context.Context, key string) (bool, error) {
	entry, ok := c.lru.Peek(key)
	if !ok || entry.expired(c.clock.Now()) {
		return false, nil
	}
	return true, nil
}

func (c *Memory) GetOrSet(ctx context.Context, key string, ttl time.Duration, fn func() ([]byte, error)) ([]byte, error) {
	return getOrSet(ctx, c, key, ttl, fn)
}

func (c *Memory) Clear(ctx context.Context) error {
	c.lru.Purge()
	return nil
}
