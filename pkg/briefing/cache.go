package briefing

import (
	"sync"
	"time"

	"github.com/missionctl/missionctl/pkg/llm"
)

// NarrativeTTL bounds how long a generated narrative is served from memory.
const NarrativeTTL = 30 * time.Minute

type cacheEntry struct {
	text      string
	meta      *llm.Meta
	expiresAt time.Time
}

// NarrativeCache is the process-wide narrative store. It is non-persistent
// and safe for concurrent readers and writers; losing it on restart only
// costs regeneration.
type NarrativeCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
}

// NewNarrativeCache builds a cache with the given TTL; zero means
// NarrativeTTL.
func NewNarrativeCache(ttl time.Duration) *NarrativeCache {
	if ttl <= 0 {
		ttl = NarrativeTTL
	}
	return &NarrativeCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
	}
}

// Get returns the cached narrative for a key when present and unexpired.
func (c *NarrativeCache) Get(key string, now time.Time) (string, *llm.Meta, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || now.After(entry.expiresAt) {
		return "", nil, false
	}
	return entry.text, entry.meta, true
}

// Put stores a narrative. Callers must validate first; rejected narratives
// are never cached.
func (c *NarrativeCache) Put(key, text string, meta *llm.Meta, now time.Time) {
	c.mu.Lock()
	c.entries[key] = cacheEntry{text: text, meta: meta, expiresAt: now.Add(c.ttl)}
	c.mu.Unlock()
}

// Prune drops expired entries. Called opportunistically on every narrative
// request.
func (c *NarrativeCache) Prune(now time.Time) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	pruned := 0
	for key, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, key)
			pruned++
		}
	}
	return pruned
}

// Len reports the number of live and expired entries currently held.
func (c *NarrativeCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
