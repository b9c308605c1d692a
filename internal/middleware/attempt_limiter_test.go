package middleware

import (
	"testing"
	"time"
)

func newTestLimiter(now *time.Time) *attemptLimiter {
	l := newAttemptLimiter(maxAuthAttempts, authAttemptWindow)
	l.now = func() time.Time { return *now }
	return l
}

func TestAttemptLimiterAllowsUpToMax(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	l := newTestLimiter(&now)

	for i := 0; i < maxAuthAttempts; i++ {
		allowed, _ := l.Check("203.0.113.7")
		if !allowed {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
	}

	allowed, retryAfter := l.Check("203.0.113.7")
	if allowed {
		t.Fatalf("attempt %d should be denied", maxAuthAttempts+1)
	}
	if retryAfter <= 0 || retryAfter > authAttemptWindow {
		t.Fatalf("unexpected retry-after: %v", retryAfter)
	}
}

func TestAttemptLimiterIdentifiersIndependent(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	l := newTestLimiter(&now)

	for i := 0; i < maxAuthAttempts; i++ {
		l.Check("203.0.113.7")
	}

	if allowed, _ := l.Check("198.51.100.9"); !allowed {
		t.Fatal("a fresh identifier must not share another identifier's quota")
	}
}

func TestAttemptLimiterWindowExpiryResets(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	l := newTestLimiter(&now)

	for i := 0; i < maxAuthAttempts+2; i++ {
		l.Check("203.0.113.7")
	}

	// Past resetAt the identifier returns to unseen: full quota again,
	// never a partial count.
	now = now.Add(authAttemptWindow + time.Second)

	for i := 0; i < maxAuthAttempts; i++ {
		allowed, _ := l.Check("203.0.113.7")
		if !allowed {
			t.Fatalf("post-expiry attempt %d should be allowed", i+1)
		}
	}

	if allowed, _ := l.Check("203.0.113.7"); allowed {
		t.Fatal("quota must be enforced again within the new window")
	}
}

func TestAttemptLimiterDenialDoesNotExtendWindow(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	l := newTestLimiter(&now)

	for i := 0; i < maxAuthAttempts; i++ {
		l.Check("203.0.113.7")
	}

	now = now.Add(14 * time.Minute)
	_, retryAfter := l.Check("203.0.113.7")
	if retryAfter > time.Minute {
		t.Fatalf("denied attempts must not push resetAt out, retry-after=%v", retryAfter)
	}
}

func TestAttemptLimiterSweepDropsExpired(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	l := newTestLimiter(&now)

	l.Check("203.0.113.7")
	l.Check("198.51.100.9")

	now = now.Add(authAttemptWindow + time.Second)
	l.Check("192.0.2.1") // still inside its own window after the jump

	l.sweep()

	if got := l.trackedIdentifiers(); got != 1 {
		t.Fatalf("expected 1 live record after sweep, got %d", got)
	}
}

func TestRetryAfterMinutes(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want int
	}{
		{15 * time.Minute, 15},
		{14*time.Minute + time.Second, 15},
		{61 * time.Second, 2},
		{30 * time.Second, 1},
		{0, 1},
	}
	for _, tc := range cases {
		if got := retryAfterMinutes(tc.in); got != tc.want {
			t.Fatalf("retryAfterMinutes(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
