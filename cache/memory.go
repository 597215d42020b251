package cache

import (
	"context"
	"sync"
	"time"

	"github.com/davrx/authlink/internal/wire"
)

// Memory is the default in-process Store: a mutex-guarded map under a
// single expiration window. All entries live exactly as long as the
// current window regardless of when they were inserted.
type Memory struct {
	mu        sync.Mutex
	duration  time.Duration
	expiresAt time.Time
	entries   map[string]wire.Result

	now func() time.Time
}

// NewMemory creates a Memory store whose window spans duration.
func NewMemory(duration time.Duration) *Memory {
	return &Memory{
		duration: duration,
		entries:  make(map[string]wire.Result),
		now:      time.Now,
	}
}

// EnsureFresh drops every entry and opens a new window when the current
// one has lapsed. The zero window counts as lapsed, so the first access
// opens the first window.
func (m *Memory) EnsureFresh(_ context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if now.Before(m.expiresAt) {
		return
	}
	m.entries = make(map[string]wire.Result)
	m.expiresAt = now.Add(m.duration)
}

// Get returns the entry for token within the current window.
func (m *Memory) Get(_ context.Context, token string) (wire.Result, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.now().Before(m.expiresAt) {
		return nil, false
	}
	entry, ok := m.entries[token]
	return entry, ok
}

// Put stores entry under token.
func (m *Memory) Put(_ context.Context, token string, entry wire.Result) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[token] = entry
}

// Delete removes the entry for token.
func (m *Memory) Delete(_ context.Context, token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, token)
}

// Len reports the number of live entries. Exposed for metrics and tests.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
