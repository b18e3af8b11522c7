package contact

import (
	"sync"
	"time"
)

// Limiter bounds how often one identity may submit the form. Allow both
// checks and records under a single lock so concurrent submissions from the
// same identity cannot race past the ceiling.
type Limiter interface {
	Allow(key string) bool
}

type limitEntry struct {
	count int
	last  time.Time
}

// MemoryLimiter keeps per-identity counts in process memory. A counter
// resets once the gap since the identity's last accepted submission exceeds
// the window; a background sweep drops stale entries so the table does not
// grow for the life of the process.
type MemoryLimiter struct {
	mu      sync.Mutex
	entries map[string]*limitEntry
	limit   int
	window  time.Duration
}

func NewMemoryLimiter(limit int, window time.Duration) *MemoryLimiter {
	l := &MemoryLimiter{
		entries: make(map[string]*limitEntry),
		limit:   limit,
		window:  window,
	}

	go l.cleanup()

	return l
}

func (l *MemoryLimiter) Allow(key string) bool {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[key]
	if !ok {
		l.entries[key] = &limitEntry{count: 1, last: now}
		return true
	}

	if now.Sub(e.last) > l.window {
		e.count = 0
	}

	if e.count >= l.limit {
		return false
	}

	e.count++
	e.last = now
	return true
}

func (l *MemoryLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		l.mu.Lock()
		now := time.Now()

		for key, e := range l.entries {
			if now.Sub(e.last) > l.window {
				delete(l.entries, key)
			}
		}

		l.mu.Unlock()
	}
}
