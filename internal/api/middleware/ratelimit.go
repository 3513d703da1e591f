package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"
)

type windowEntry struct {
	count       int
	windowStart time.Time
}

// rateLimiter counts requests per client IP inside fixed windows. The counter
// resets when a request arrives after the window has elapsed.
type rateLimiter struct {
	mu       sync.Mutex
	window   time.Duration
	max      int
	visitors map[string]*windowEntry
}

func getIP(r *http.Request) string {
	if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (rl *rateLimiter) allow(ip string, now time.Time) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	e, ok := rl.visitors[ip]
	if !ok || now.Sub(e.windowStart) >= rl.window {
		rl.visitors[ip] = &windowEntry{count: 1, windowStart: now}
		return true
	}
	e.count++
	return e.count <= rl.max
}

func (rl *rateLimiter) gc(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for ip, e := range rl.visitors {
		if now.Sub(e.windowStart) >= rl.window {
			delete(rl.visitors, ip)
		}
	}
}

// RateLimit rejects requests beyond max per window and IP with a plain-text
// 429, the way the API has always signalled throttling.
func RateLimit(window time.Duration, max int) func(http.Handler) http.Handler {
	rl := &rateLimiter{window: window, max: max, visitors: map[string]*windowEntry{}}
	gcTicker := time.NewTicker(5 * time.Minute)
	go func() {
		for range gcTicker.C {
			rl.gc(time.Now())
		}
	}()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.allow(getIP(r), time.Now()) {
				http.Error(w, "Too many requests, please try again later.", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
