package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Rate limit tiers
type tier struct {
	name  string
	limit rate.Limit
	burst int
}

var (
	// Writes: seeding, checkout.
	tierStrict = tier{name: "strict", limit: rate.Limit(2), burst: 5}
	// Reads and diagnostics.
	tierGeneral = tier{name: "general", limit: rate.Limit(10), burst: 20}
	// Callers presenting the internal secret.
	tierInternal = tier{name: "internal", limit: rate.Limit(100), burst: 200}
)

const (
	visitorTTL      = 3 * time.Minute
	cleanupInterval = time.Minute

	headerServiceAuth = "X-Service-Auth"
	headerDeviceID    = "X-Device-ID"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client identity and tier.
type RateLimiter struct {
	internalKey  string
	strictRoutes map[string]struct{}
	now          func() time.Time

	mu       sync.Mutex
	visitors map[string]*visitor
}

// NewRateLimiter puts the given routes, written "METHOD /path" with gin
// path syntax, on the strict tier.
func NewRateLimiter(internalKey string, strictRoutes ...string) *RateLimiter {
	l := &RateLimiter{
		internalKey:  internalKey,
		strictRoutes: make(map[string]struct{}, len(strictRoutes)),
		now:          time.Now,
		visitors:     make(map[string]*visitor),
	}
	for _, r := range strictRoutes {
		l.strictRoutes[r] = struct{}{}
	}
	return l
}

func (l *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		t := l.resolveTier(c)

		// Prefer a client-supplied device id, fall back to the IP. The
		// strict tier always keys on the IP: a header is free to rotate.
		identity := "ip:" + c.ClientIP()
		if deviceID := c.GetHeader(headerDeviceID); deviceID != "" && t.name != tierStrict.name {
			identity = "device:" + deviceID
		}

		if !l.get(identity+":"+t.name, t).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"detail": http.StatusText(http.StatusTooManyRequests),
			})
			return
		}

		c.Next()
	}
}

// Run evicts idle visitors until ctx is done.
func (l *RateLimiter) Run(ctx context.Context) {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.cleanup()
		}
	}
}

func (l *RateLimiter) resolveTier(c *gin.Context) tier {
	if l.internalKey != "" && c.GetHeader(headerServiceAuth) == l.internalKey {
		return tierInternal
	}
	if _, ok := l.strictRoutes[c.Request.Method+" "+c.FullPath()]; ok {
		return tierStrict
	}
	return tierGeneral
}

func (l *RateLimiter) get(key string, t tier) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(t.limit, t.burst)}
		l.visitors[key] = v
	}
	v.lastSeen = l.now()
	return v.limiter
}

func (l *RateLimiter) cleanup() {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-visitorTTL)
	for key, v := range l.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(l.visitors, key)
		}
	}
}
