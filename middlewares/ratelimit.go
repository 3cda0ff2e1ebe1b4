package middlewares

import (
	"sync"
	"time"

	"github.com/amrit073/NEPGA/pkg/resp"
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"golang.org/x/time/rate"
)

const limiterIdleExpiry = 5 * time.Minute

// IPRateLimiter keeps one token bucket per client IP and forgets buckets
// that have been idle for limiterIdleExpiry.
type IPRateLimiter struct {
	mu      sync.Mutex
	limit   rate.Limit
	burst   int
	clock   clockwork.Clock
	buckets map[string]*ipBucket
	sweptAt time.Time
}

type ipBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewIPRateLimiter(perSecond float64, burst int, clock clockwork.Clock) *IPRateLimiter {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &IPRateLimiter{
		limit:   rate.Limit(perSecond),
		burst:   burst,
		clock:   clock,
		buckets: make(map[string]*ipBucket),
		sweptAt: clock.Now(),
	}
}

func (l *IPRateLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	if now.Sub(l.sweptAt) > limiterIdleExpiry {
		for k, b := range l.buckets {
			if now.Sub(b.lastSeen) > limiterIdleExpiry {
				delete(l.buckets, k)
			}
		}
		l.sweptAt = now
	}

	b, ok := l.buckets[ip]
	if !ok {
		b = &ipBucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.buckets[ip] = b
	}
	b.lastSeen = now
	return b.limiter.AllowN(now, 1)
}

func (l *IPRateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

func RateLimit(l *IPRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			resp.TooManyRequests(c, "rate limit exceeded")
			return
		}
		c.Next()
	}
}
