package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/azmath1924/go-rest-starter/internal/api/shared"
)

// clientPruneInterval bounds how long an idle client entry survives before
// the limiter map drops it.
const clientPruneInterval = 10 * time.Minute

// ipLimiter tracks one token bucket per client address.
type ipLimiter struct {
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
	clients  map[string]*clientEntry
	lastSeen func() time.Time
}

type clientEntry struct {
	limiter *rate.Limiter
	seen    time.Time
}

func newIPLimiter(rps float64, burst int) *ipLimiter {
	return &ipLimiter{
		limit:    rate.Limit(rps),
		burst:    burst,
		clients:  make(map[string]*clientEntry),
		lastSeen: time.Now,
	}
}

// allow reports whether the client identified by addr may proceed, creating
// its bucket on first sight and pruning entries idle past the cutoff.
func (l *ipLimiter) allow(addr string) bool {
	now := l.lastSeen()

	l.mu.Lock()
	defer l.mu.Unlock()

	for key, entry := range l.clients {
		if now.Sub(entry.seen) > clientPruneInterval {
			delete(l.clients, key)
		}
	}

	entry, ok := l.clients[addr]
	if !ok {
		entry = &clientEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[addr] = entry
	}
	entry.seen = now

	return entry.limiter.Allow()
}

// RateLimit applies a per-client token bucket. A zero rps disables the
// middleware entirely. Clients are keyed by remote address host, so the
// RealIP middleware must run first for the key to be meaningful behind a
// proxy.
func RateLimit(rps float64, burst int) func(http.Handler) http.Handler {
	if rps <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	if burst < 1 {
		burst = 1
	}
	limiter := newIPLimiter(rps, burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			host, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				host = r.RemoteAddr
			}

			if !limiter.allow(host) {
				shared.Error(w, r, http.StatusTooManyRequests, "Too many requests", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
