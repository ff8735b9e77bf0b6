package ratelimit

import (
	"testing"
	"time"
)

func fixedClock(t *time.Time) func() time.Time {
	return func() time.Time { return *t }
}

func TestAllow_WithinLimit(t *testing.T) {
	l := New(Config{PerMinute: 10})

	for i := 0; i < 10; i++ {
		if !l.Allow("1.2.3.4") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
}

func TestAllow_ExceedsLimit(t *testing.T) {
	l := New(Config{PerMinute: 5})

	for i := 0; i < 5; i++ {
		l.Allow("1.2.3.4")
	}

	// The (R+1)th request in the same minute is denied.
	if l.Allow("1.2.3.4") {
		t.Error("request should be denied after exceeding limit")
	}
}

func TestAllow_NextMinuteResets(t *testing.T) {
	now := time.Date(2024, 5, 14, 10, 30, 59, 0, time.UTC)
	l := NewWithClock(Config{PerMinute: 2}, fixedClock(&now))

	l.Allow("ip")
	l.Allow("ip")
	if l.Allow("ip") {
		t.Fatal("should be limited within the minute")
	}

	// First request in the next minute bucket succeeds.
	now = now.Add(time.Second)
	if !l.Allow("ip") {
		t.Error("new minute bucket should start a fresh counter")
	}
}

func TestAllow_DifferentKeys(t *testing.T) {
	l := New(Config{PerMinute: 2})

	l.Allow("ip1")
	l.Allow("ip1")

	if !l.Allow("ip2") {
		t.Error("different key should have its own counter")
	}
	if l.Allow("ip1") {
		t.Error("ip1 should be rate limited")
	}
}

func TestPurge_DropsOldBuckets(t *testing.T) {
	now := time.Date(2024, 5, 14, 10, 30, 0, 0, time.UTC)
	l := NewWithClock(Config{PerMinute: 10}, fixedClock(&now))

	l.Allow("ip")

	// Previous-minute buckets survive one purge cycle, older ones do not.
	now = now.Add(time.Minute)
	l.Allow("ip")
	if len(l.counts) != 2 {
		t.Errorf("expected current+previous buckets, got %d", len(l.counts))
	}

	now = now.Add(2 * time.Minute)
	l.Allow("ip")
	if len(l.counts) != 1 {
		t.Errorf("stale buckets should be purged, got %d", len(l.counts))
	}
}

func TestRemaining(t *testing.T) {
	l := New(Config{PerMinute: 10})

	if rem := l.Remaining("new-key"); rem != 10 {
		t.Errorf("expected 10 remaining for new key, got %d", rem)
	}

	l.Allow("new-key")
	if rem := l.Remaining("new-key"); rem != 9 {
		t.Errorf("expected 9 remaining after 1 request, got %d", rem)
	}
}

func TestErrorMessage(t *testing.T) {
	msg := "custom rate limit message"
	l := New(Config{PerMinute: 1, ErrorMessage: msg})

	if l.ErrorMessage() != msg {
		t.Errorf("expected %q, got %q", msg, l.ErrorMessage())
	}
}

func TestString(t *testing.T) {
	l := New(Config{PerMinute: 60})
	if l.String() != "60/min" {
		t.Errorf("got %q", l.String())
	}
}
