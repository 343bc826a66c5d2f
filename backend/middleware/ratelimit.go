// ABOUTME: Rate limiting middleware with fixed-window counters
// ABOUTME: Throttles expensive endpoints such as random sampling per client IP

package middleware

import (
	"fmt"
	"log/slog"
	"math"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// window counts requests for one key until expiresAt.
type window struct {
	count     int
	expiresAt time.Time
}

// RateLimiter allows at most limit requests per key in each fixed period.
type RateLimiter struct {
	mu      sync.Mutex
	windows map[string]*window
	limit   int
	period  time.Duration
	created int // windows created since the last sweep
}

// NewRateLimiter creates a limiter allowing limit requests per period.
func NewRateLimiter(limit int, period time.Duration) *RateLimiter {
	return &RateLimiter{
		windows: make(map[string]*window),
		limit:   limit,
		period:  period,
	}
}

// Allow records a request for key. When the key is over its limit it returns
// false with the time left until its window resets.
func (rl *RateLimiter) Allow(key string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	w, ok := rl.windows[key]

	// !Before so the boundary instant opens a new window
	if !ok || !now.Before(w.expiresAt) {
		rl.windows[key] = &window{count: 1, expiresAt: now.Add(rl.period)}

		rl.created++
		if rl.created >= 100 {
			rl.sweep(now)
			rl.created = 0
		}
		return true, 0
	}

	if w.count < rl.limit {
		w.count++
		return true, 0
	}
	return false, w.expiresAt.Sub(now)
}

// Len reports how many keys are tracked.
func (rl *RateLimiter) Len() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.windows)
}

// sweep drops expired windows. Caller holds rl.mu.
func (rl *RateLimiter) sweep(now time.Time) {
	for k, w := range rl.windows {
		if !now.Before(w.expiresAt) {
			delete(rl.windows, k)
		}
	}
}

// ClientIP keys a request by the leftmost valid X-Forwarded-For address, or by
// RemoteAddr. The header is trusted, so deploy behind a proxy that sets it.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ip := strings.TrimSpace(strings.SplitN(xff, ",", 2)[0])
		if net.ParseIP(ip) != nil {
			return "ip:" + ip
		}
	}

	host := r.RemoteAddr
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	return "ip:" + host
}

// RateLimit returns middleware enforcing limiter per ClientIP. A nil limiter
// disables it.
func RateLimit(limiter *RateLimiter) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if limiter == nil {
				next(w, r)
				return
			}

			key := ClientIP(r)
			allowed, retryAfter := limiter.Allow(key)
			if allowed {
				next(w, r)
				return
			}

			retrySeconds := int(math.Ceil(retryAfter.Seconds()))
			slog.Warn("Rate limit exceeded", "key", key, "path", sanitizePath(r.URL.Path), "retry_after", retrySeconds)

			w.Header().Set("Retry-After", fmt.Sprintf("%d", retrySeconds))
			writeJSONError(w, "Rate limit exceeded",
				fmt.Sprintf("retry after %ds", retrySeconds), http.StatusTooManyRequests)
		}
	}
}
