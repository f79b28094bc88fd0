package middleware

import (
	"encoding/json"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	sweepInterval = 5 * time.Minute
	clientTTL     = 10 * time.Minute
)

type client struct {
	bucket   *rate.Limiter
	lastSeen time.Time
}

// clientPool tracks one token bucket per remote IP. Idle entries are
// swept periodically so the map does not grow without bound.
type clientPool struct {
	mu      sync.Mutex
	clients map[string]*client
	limit   rate.Limit
	burst   int
}

func newClientPool(rps float64, burst int) *clientPool {
	p := &clientPool{
		clients: make(map[string]*client),
		limit:   rate.Limit(rps),
		burst:   burst,
	}
	go p.sweep()
	return p
}

func (p *clientPool) allow(ip string) bool {
	p.mu.Lock()
	c, ok := p.clients[ip]
	if !ok {
		c = &client{bucket: rate.NewLimiter(p.limit, p.burst)}
		p.clients[ip] = c
	}
	c.lastSeen = time.Now()
	bucket := c.bucket
	p.mu.Unlock()

	return bucket.Allow()
}

// sweep runs for the lifetime of the pool.
func (p *clientPool) sweep() {
	ticker := time.NewTicker(sweepInterval)
	for range ticker.C {
		p.removeIdle()
	}
}

func (p *clientPool) removeIdle() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for ip, c := range p.clients {
		if time.Since(c.lastSeen) > clientTTL {
			delete(p.clients, ip)
		}
	}
}

func clientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// RateLimit returns middleware enforcing a per-IP request rate. rps is
// the sustained allowance, burst the number of requests a client may
// spend at once before being throttled.
func RateLimit(rps float64, burst int) func(http.Handler) http.Handler {
	pool := newClientPool(rps, burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !pool.allow(clientIP(r)) {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Retry-After", "1")
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(map[string]string{"error": "too many requests"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
