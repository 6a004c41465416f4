package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/cosmic-rhythm/internal/infra/config"
)

const (
	idleBucketTTL = 5 * time.Minute
	sweepInterval = time.Minute
)

func rateLimitMiddleware(cfg config.RateLimitConfig, logger *slog.Logger) gin.HandlerFunc {
	if !cfg.Enabled || cfg.RequestsPerMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	limiter := newClientLimiter(cfg.RequestsPerMinute, cfg.Burst, time.Now)
	return func(c *gin.Context) {
		client := c.ClientIP()
		wait, ok := limiter.take(client)
		if ok {
			c.Next()
			return
		}
		logger.Warn("rate limit exceeded", "ip", client, "path", c.Request.URL.Path, "retry_after", wait.String())
		c.Header("Retry-After", strconv.Itoa(int(wait.Seconds()+0.999)))
		abortWithError(c, NewHTTPError(http.StatusTooManyRequests, "rate_limit_exceeded", "too many requests", nil))
	}
}

// clientLimiter keeps one token bucket per client key.
type clientLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*bucket
	perSecond float64
	capacity  float64
	now       func() time.Time
	lastSweep time.Time
}

type bucket struct {
	tokens float64
	seen   time.Time
}

func newClientLimiter(perMinute, burst int, now func() time.Time) *clientLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &clientLimiter{
		buckets:   make(map[string]*bucket),
		perSecond: float64(perMinute) / 60,
		capacity:  float64(burst),
		now:       now,
		lastSweep: now(),
	}
}

// take spends one token for key. When the bucket is empty it reports how long
// until the next token is available.
func (l *clientLimiter) take(key string) (time.Duration, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) >= sweepInterval {
		l.sweep(now)
	}

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{tokens: l.capacity, seen: now}
		l.buckets[key] = b
	}
	if elapsed := now.Sub(b.seen).Seconds(); elapsed > 0 {
		b.tokens = min(l.capacity, b.tokens+elapsed*l.perSecond)
	}
	b.seen = now

	if b.tokens >= 1 {
		b.tokens--
		return 0, true
	}
	missing := 1 - b.tokens
	return time.Duration(missing / l.perSecond * float64(time.Second)), false
}

func (l *clientLimiter) sweep(now time.Time) {
	for key, b := range l.buckets {
		if now.Sub(b.seen) > idleBucketTTL {
			delete(l.buckets, key)
		}
	}
	l.lastSweep = now
}
