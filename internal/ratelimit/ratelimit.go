// Package ratelimit bounds contact-form submissions per client address.
//
// The limiter is advisory: it exists to blunt form abuse, not to provide a
// hard guarantee. Callers treat limiter errors as "allow".
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Submission window defaults: at most MaxSubmissions accepted per client
// address within Window.
const (
	Window         = 15 * time.Minute
	MaxSubmissions = 3
)

// Limiter decides whether a submission from the given key (client address)
// is admitted. Implementations may be process-local or shared.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type entry struct {
	count   int
	resetAt time.Time
}

// MemoryLimiter is a process-local fixed-window counter. State is lost on
// restart and not shared across instances.
type MemoryLimiter struct {
	window time.Duration
	max    int

	mu      sync.Mutex
	entries map[string]*entry

	now func() time.Time // overridable in tests
}

// NewMemoryLimiter creates an in-memory limiter with the given window length
// and per-window ceiling.
func NewMemoryLimiter(window time.Duration, max int) *MemoryLimiter {
	return &MemoryLimiter{
		window:  window,
		max:     max,
		entries: make(map[string]*entry),
		now:     time.Now,
	}
}

var _ Limiter = (*MemoryLimiter)(nil)

// Allow admits the request unless the key already used up its window budget.
// A missing or expired entry restarts the window with count 1. A denied
// request does not mutate state.
func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[key]
	if !ok || now.After(e.resetAt) {
		l.entries[key] = &entry{count: 1, resetAt: now.Add(l.window)}
		return true, nil
	}
	if e.count < l.max {
		e.count++
		return true, nil
	}
	return false, nil
}
