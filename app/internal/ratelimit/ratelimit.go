package ratelimit

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Limiter implements a fixed-window per-minute rate limiter. Each client
// gets a counter per calendar minute; counters for minute buckets older
// than the previous one are purged opportunistically on each check, so no
// background goroutine is needed. State is not persisted across restarts.
type Limiter struct {
	mu           sync.Mutex
	counts       map[string]int
	perMinute    int
	errorMessage string
	now          func() time.Time
}

// Config for creating a new rate limiter
type Config struct {
	PerMinute    int    // Request ceiling per client per minute
	ErrorMessage string // Message to return when rate limited
}

// New creates a new rate limiter
func New(cfg Config) *Limiter {
	return NewWithClock(cfg, time.Now)
}

// NewWithClock creates a limiter with an injected clock, for tests
func NewWithClock(cfg Config, now func() time.Time) *Limiter {
	return &Limiter{
		counts:       make(map[string]int),
		perMinute:    cfg.PerMinute,
		errorMessage: cfg.ErrorMessage,
		now:          now,
	}
}

// Allow checks if a request is allowed for the given key (usually IP
// address) in the current minute window. It counts the request when
// allowed.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	minute := l.now().Unix() / 60
	bucket := key + ":" + strconv.FormatInt(minute, 10)

	if l.counts[bucket] >= l.perMinute {
		return false
	}
	l.counts[bucket]++

	l.purge(minute)
	return true
}

// Remaining returns how many requests the key has left this minute.
func (l *Limiter) Remaining(key string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	minute := l.now().Unix() / 60
	bucket := key + ":" + strconv.FormatInt(minute, 10)

	rem := l.perMinute - l.counts[bucket]
	if rem < 0 {
		return 0
	}
	return rem
}

// ErrorMessage returns the error message for this limiter
func (l *Limiter) ErrorMessage() string {
	return l.errorMessage
}

// purge drops counters older than the previous minute. Caller holds the
// lock.
func (l *Limiter) purge(currentMinute int64) {
	for bucket := range l.counts {
		idx := strings.LastIndexByte(bucket, ':')
		if idx < 0 {
			delete(l.counts, bucket)
			continue
		}
		m, err := strconv.ParseInt(bucket[idx+1:], 10, 64)
		if err != nil || m < currentMinute-1 {
			delete(l.counts, bucket)
		}
	}
}

// String describes the configured ceiling, used by the docs endpoint.
func (l *Limiter) String() string {
	return fmt.Sprintf("%d/min", l.perMinute)
}
