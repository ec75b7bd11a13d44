// Package cache is the time-boxed page cache. Entries are rendered responses
// keyed by route + query string; Flush is the explicit operator invalidation.
package cache

import (
	"context"
	"sync"
	"time"
)

type Entry struct {
	Body        []byte `json:"body"`
	ContentType string `json:"content_type"`
}

type Store interface {
	Get(ctx context.Context, key string) (*Entry, bool)
	Set(ctx context.Context, key string, entry Entry, ttl time.Duration) error
	Flush(ctx context.Context) error
}

type memoryEntry struct {
	entry     Entry
	expiresAt time.Time
}

// Memory is the in-process store used in tests and cache-less deploys.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemory() *Memory {
	return &Memory{entries: make(map[string]memoryEntry), now: time.Now}
}

func (m *Memory) Get(_ context.Context, key string) (*Entry, bool) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok || m.now().After(e.expiresAt) {
		return nil, false
	}
	entry := e.entry
	return &entry, true
}

func (m *Memory) Set(_ context.Context, key string, entry Entry, ttl time.Duration) error {
	m.mu.Lock()
	m.entries[key] = memoryEntry{entry: entry, expiresAt: m.now().Add(ttl)}
	m.mu.Unlock()
	return nil
}

func (m *Memory) Flush(_ context.Context) error {
	m.mu.Lock()
	m.entries = make(map[string]memoryEntry)
	m.mu.Unlock()
	return nil
}

// SetClock swaps the time source so tests can move past the TTL without
// sleeping.
func (m *Memory) SetClock(now func() time.Time) {
	m.mu.Lock()
	m.now = now
	m.mu.Unlock()
}
