package middleware

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	maxAuthAttempts      = 5
	authAttemptWindow    = 15 * time.Minute
	attemptSweepInterval = time.Hour
)

// attemptRecord is the per-identifier fixed-window counter state.
type attemptRecord struct {
	count   int
	resetAt time.Time
}

// attemptLimiter bounds authentication attempts per client identifier with a
// fixed window: once the window expires the identifier always starts over
// with a full quota. State is owned by the middleware instance and guarded by
// a mutex, so concurrent attempts from the same identifier cannot interleave
// the read-increment-compare step.
type attemptLimiter struct {
	mu          sync.Mutex
	records     map[string]*attemptRecord
	maxAttempts int
	window      time.Duration
	now         func() time.Time

	stopSweep chan struct{}
	stopOnce  sync.Once
}

func newAttemptLimiter(maxAttempts int, window time.Duration) *attemptLimiter {
	return &attemptLimiter{
		records:     make(map[string]*attemptRecord),
		maxAttempts: maxAttempts,
		window:      window,
		now:         time.Now,
		stopSweep:   make(chan struct{}),
	}
}

// Check records one attempt for the identifier and reports whether it may
// proceed. When denied, retryAfter holds the time left until the window
// resets.
func (l *attemptLimiter) Check(identifier string) (allowed bool, retryAfter time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	record, exists := l.records[identifier]

	if !exists || now.After(record.resetAt) {
		l.records[identifier] = &attemptRecord{
			count:   1,
			resetAt: now.Add(l.window),
		}
		return true, 0
	}

	if record.count >= l.maxAttempts {
		return false, record.resetAt.Sub(now)
	}

	record.count++
	return true, 0
}

func (l *attemptLimiter) startSweeper(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				l.sweep()
			case <-l.stopSweep:
				return
			}
		}
	}()
}

// sweep drops records whose window has already expired, bounding memory
// growth from one-off identifiers.
func (l *attemptLimiter) sweep() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for identifier, record := range l.records {
		if now.After(record.resetAt) {
			delete(l.records, identifier)
		}
	}
}

func (l *attemptLimiter) stop() {
	l.stopOnce.Do(func() {
		close(l.stopSweep)
	})
}

func (l *attemptLimiter) trackedIdentifiers() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}

// retryAfterMinutes expresses the remaining window in whole minutes,
// rounded up so the client never retries early.
func retryAfterMinutes(retryAfter time.Duration) int {
	minutes := int(retryAfter / time.Minute)
	if retryAfter%time.Minute != 0 {
		minutes++
	}
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

// ClientIdentifier extracts a best-effort client address for limiter keying:
// the first X-Forwarded-For entry, then X-Real-Ip, then the socket address.
func ClientIdentifier(ctx *fiber.Ctx) string {
	forwarded := ctx.Get("X-Forwarded-For")
	if forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}

	realIP := ctx.Get("X-Real-Ip")
	if realIP != "" {
		return realIP
	}

	if ip := ctx.IP(); ip != "" {
		return ip
	}

	return "unknown"
}

// NewAuthAttemptLimiter guards the two auth-entry routes (login, signup).
// Denial is a normal outcome, not a fault: it maps straight to 429.
func (m *middleware) NewAuthAttemptLimiter(ctx *fiber.Ctx) error {
	identifier := ClientIdentifier(ctx)

	allowed, retryAfter := m.attemptLimiter.Check(identifier)
	if !allowed {
		minutes := retryAfterMinutes(retryAfter)
		m.log.Warnf("too many auth attempts for %s, retry in %d minutes", identifier, minutes)

		return ctx.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"error":       fmt.Sprintf("Too many attempts. Try again in %d minutes.", minutes),
			"retry_after": minutes * 60,
		})
	}

	return ctx.Next()
}
