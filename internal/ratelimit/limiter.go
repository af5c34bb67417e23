package ratelimit

import (
	"sync"
	"time"
)

// Rule is the fixed-window quota for one action.
type Rule struct {
	Max    int
	Window time.Duration
}

// Result is the outcome of a rate-limit check.
type Result struct {
	Limited    bool
	Remaining  int
	RetryAfter time.Duration
}

// CounterStore tracks request counts per key within fixed windows. The
// in-memory store suits a single process; multi-process deployments can
// plug in an external counter store behind the same interface.
type CounterStore interface {
	Incr(key string, window time.Duration) (count int, windowStart time.Time)
}

// Limiter bounds request rate per client per action using fixed windows.
// Windows reset lazily on the first request after expiry; no background
// timers run. Stale keys accumulate until their window is touched again,
// a known limitation at expected traffic scale.
type Limiter struct {
	store CounterStore
	rules map[string]Rule
}

// New returns a Limiter with the given store and per-action rules.
// Actions without a rule are never limited.
func New(store CounterStore, rules map[string]Rule) *Limiter {
	return &Limiter{store: store, rules: rules}
}

// Check records one request for (action, clientKey) and reports whether the
// caller exceeded the action's quota, with a retry-after hint when limited.
func (l *Limiter) Check(action, clientKey string) Result {
	rule, ok := l.rules[action]
	if !ok {
		return Result{}
	}
	count, windowStart := l.store.Incr(action+":"+clientKey, rule.Window)
	if count <= rule.Max {
		return Result{Remaining: rule.Max - count}
	}
	retryAfter := time.Until(windowStart.Add(rule.Window))
	if retryAfter < time.Second {
		retryAfter = time.Second
	}
	return Result{Limited: true, RetryAfter: retryAfter}
}

type windowCounter struct {
	start time.Time
	count int
}

// MemoryStore is a mutex-guarded in-memory CounterStore.
type MemoryStore struct {
	mu       sync.Mutex
	counters map[string]*windowCounter
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{counters: make(map[string]*windowCounter)}
}

func (s *MemoryStore) Incr(key string, window time.Duration) (int, time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	c := s.counters[key]
	if c == nil || now.Sub(c.start) >= window {
		c = &windowCounter{start: now}
		s.counters[key] = c
	}
	c.count++
	return c.count, c.start
}
