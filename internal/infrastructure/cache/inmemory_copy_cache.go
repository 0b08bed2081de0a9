package cache

import (
	"context"
	"sync"
	"time"

	"github.com/crown/backend/internal/domain/marketing"
)

// DefaultCleanupInterval is how often expired copy is swept
const DefaultCleanupInterval = 5 * time.Minute

type entry struct {
	text      string
	expiresAt time.Time
}

// InMemoryCopyCache implements marketing.CopyCache using an in-memory map.
// Entries do not survive a restart and are not shared between instances.
type InMemoryCopyCache struct {
	mu        sync.RWMutex
	entries   map[string]entry
	stopChan  chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewInMemoryCopyCache creates a cache and starts its cleanup goroutine.
// A non-positive interval uses DefaultCleanupInterval.
func NewInMemoryCopyCache(cleanupInterval time.Duration) *InMemoryCopyCache {
	if cleanupInterval <= 0 {
		cleanupInterval = DefaultCleanupInterval
	}
	c := &InMemoryCopyCache{
		entries:  make(map[string]entry),
		stopChan: make(chan struct{}),
	}

	c.wg.Add(1)
	go c.cleanupLoop(cleanupInterval)

	return c
}

// Get returns the cached text for key if present and not expired
func (c *InMemoryCopyCache) Get(ctx context.Context, key string) (string, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || time.Now().After(e.expiresAt) {
		return "", false, nil
	}
	return e.text, true, nil
}

// Set stores text under key for ttl
func (c *InMemoryCopyCache) Set(ctx context.Context, key, text string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{
		text:      text,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

// Close stops the cleanup goroutine. Safe to call multiple times.
func (c *InMemoryCopyCache) Close() error {
	c.closeOnce.Do(func() {
		close(c.stopChan)
		c.wg.Wait()
	})
	return nil
}

func (c *InMemoryCopyCache) cleanupLoop(interval time.Duration) {
	defer c.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopChan:
			return
		case <-ticker.C:
			c.cleanup()
		}
	}
}

func (c *InMemoryCopyCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for key, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, key)
		}
	}
}

// Size returns the number of entries, expired ones included until swept
func (c *InMemoryCopyCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

var _ marketing.CopyCache = (*InMemoryCopyCache)(nil)
