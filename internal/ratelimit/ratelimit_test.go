package ratelimit

import (
	"context"
	"testing"
	"time"
)

// newTestLimiter returns a memory limiter with a controllable clock.
func newTestLimiter(window time.Duration, max int) (*MemoryLimiter, *time.Time) {
	l := NewMemoryLimiter(window, max)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }
	return l, &now
}

func TestMemoryLimiter_AllowsUpToCeiling(t *testing.T) {
	l, _ := newTestLimiter(Window, MaxSubmissions)

	for i := 1; i <= MaxSubmissions; i++ {
		ok, err := l.Allow(context.Background(), "1.2.3.4")
		if err != nil {
			t.Fatalf("unexpected error on attempt %d: %v", i, err)
		}
		if !ok {
			t.Fatalf("attempt %d should be allowed", i)
		}
	}

	ok, err := l.Allow(context.Background(), "1.2.3.4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("4th submission within the window should be denied")
	}
}

func TestMemoryLimiter_WindowResets(t *testing.T) {
	l, now := newTestLimiter(Window, MaxSubmissions)

	for i := 0; i < MaxSubmissions; i++ {
		if ok, _ := l.Allow(context.Background(), "1.2.3.4"); !ok {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
	}
	if ok, _ := l.Allow(context.Background(), "1.2.3.4"); ok {
		t.Fatal("expected denial at the ceiling")
	}

	// Past the reset timestamp the counter restarts at 1.
	*now = now.Add(Window + time.Second)
	if ok, _ := l.Allow(context.Background(), "1.2.3.4"); !ok {
		t.Error("submission after the window elapsed should be allowed")
	}

	// Two more still fit in the fresh window, proving the reset went to 1.
	for i := 0; i < MaxSubmissions-1; i++ {
		if ok, _ := l.Allow(context.Background(), "1.2.3.4"); !ok {
			t.Errorf("attempt %d of the fresh window should be allowed", i+2)
		}
	}
	if ok, _ := l.Allow(context.Background(), "1.2.3.4"); ok {
		t.Error("expected denial once the fresh window is used up")
	}
}

func TestMemoryLimiter_KeysAreIndependent(t *testing.T) {
	l, _ := newTestLimiter(Window, MaxSubmissions)

	for i := 0; i < MaxSubmissions; i++ {
		if ok, _ := l.Allow(context.Background(), "1.2.3.4"); !ok {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
	}
	if ok, _ := l.Allow(context.Background(), "1.2.3.4"); ok {
		t.Fatal("first key should be exhausted")
	}

	if ok, _ := l.Allow(context.Background(), "5.6.7.8"); !ok {
		t.Error("a different client address must have its own budget")
	}
}

func TestMemoryLimiter_DenialDoesNotExtendWindow(t *testing.T) {
	l, now := newTestLimiter(Window, 1)

	if ok, _ := l.Allow(context.Background(), "k"); !ok {
		t.Fatal("first submission should be allowed")
	}
	// Hammering while denied must not push the reset timestamp forward.
	for i := 0; i < 10; i++ {
		if ok, _ := l.Allow(context.Background(), "k"); ok {
			t.Fatal("expected denial")
		}
	}

	*now = now.Add(Window + time.Millisecond)
	if ok, _ := l.Allow(context.Background(), "k"); !ok {
		t.Error("window should have expired despite denied attempts")
	}
}
