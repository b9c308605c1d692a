package middleware

import "testing"

func TestRateLimiterBurstDenial(t *testing.T) {
	// Zero refill rate so only the burst allowance is spendable.
	l := newRateLimiter(0, 3)
	limiter := l.GetLimiterFrom("203.0.113.7")

	for i := 0; i < 3; i++ {
		if !limiter.Allow() {
			t.Fatalf("request %d should fit in the burst", i+1)
		}
	}

	if limiter.Allow() {
		t.Fatal("request past the burst should be denied")
	}
}

func TestRateLimiterBucketsPerIP(t *testing.T) {
	l := newRateLimiter(0, 1)

	if !l.GetLimiterFrom("203.0.113.7").Allow() {
		t.Fatal("first request for an IP should be allowed")
	}
	if l.GetLimiterFrom("203.0.113.7").Allow() {
		t.Fatal("exhausted IP must stay limited")
	}

	if !l.GetLimiterFrom("198.51.100.9").Allow() {
		t.Fatal("a different IP must not share another IP's bucket")
	}
}

func TestRateLimiterReusesBucket(t *testing.T) {
	l := newRateLimiter(50, 100)

	first := l.GetLimiterFrom("203.0.113.7")
	second := l.GetLimiterFrom("203.0.113.7")

	if first != second {
		t.Fatal("same IP should map to the same bucket")
	}
}
