// Package answercache stores answers produced by the fallback
// generator so repeated misses on the same question skip the LLM call.
package answercache

import (
	"context"
	"sync"
	"time"

	"github.com/yanqian/faq-chatbot/internal/domain/faq"
)

type entry struct {
	answer    string
	expiresAt time.Time
}

// MemoryCache is an in-process faq.AnswerCache used when no Valkey
// instance is configured.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// NewMemoryCache constructs a cache backed by process memory.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]entry)}
}

// Get implements faq.AnswerCache.
func (c *MemoryCache) Get(_ context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, nil
	}
	c.mu.RLock()
	item, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return "", false, nil
	}
	if hasExpired(item.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return "", false, nil
	}
	return item.answer, true, nil
}

// Put implements faq.AnswerCache.
func (c *MemoryCache) Put(_ context.Context, key, answer string, ttl time.Duration) error {
	if key == "" {
		return nil
	}
	exp := time.Time{}
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}
	c.mu.Lock()
	c.entries[key] = entry{answer: answer, expiresAt: exp}
	c.mu.Unlock()
	return nil
}

func hasExpired(ts time.Time) bool {
	if ts.IsZero() {
		return false
	}
	return ts.Before(time.Now())
}

var _ faq.AnswerCache = (*MemoryCache)(nil)
