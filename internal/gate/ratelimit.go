// Package gate filters inbound requests before any route handler runs:
// best-effort per-client rate limiting and uniform security headers.
package gate

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/rozgar-darpan/go-mgnrega-backend/internal/metrics"
)

const (
	keyPrefix = "ratelimit:"

	// storeTimeout bounds the counter-store round trip so fail-open stays fast.
	storeTimeout = 500 * time.Millisecond
)

// Limiter throttles clients with an approximate fixed window: INCR the
// per-client counter and reset its expiry on every request. The expiry reset
// makes the window slide rather than tick, which is the accepted behavior.
type Limiter struct {
	client *redis.Client
	max    int
	window time.Duration
	log    *zap.SugaredLogger
}

// NewLimiter creates a limiter allowing max requests per window.
func NewLimiter(client *redis.Client, max int, window time.Duration, log *zap.SugaredLogger) *Limiter {
	return &Limiter{client: client, max: max, window: window, log: log}
}

type verdict struct {
	allowed   bool
	limit     int
	remaining int
	reset     time.Time
}

// check increments the client's counter and compares it with the ceiling.
// If the counter store is unreachable the request is allowed: availability
// over strict enforcement.
func (l *Limiter) check(ctx context.Context, clientID string) verdict {
	allowedByDefault := verdict{
		allowed:   true,
		limit:     l.max,
		remaining: l.max - 1,
		reset:     time.Now().Add(l.window),
	}

	cctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	key := keyPrefix + clientID

	pipe := l.client.Pipeline()
	incr := pipe.Incr(cctx, key)
	pipe.Expire(cctx, key, l.window)
	if _, err := pipe.Exec(cctx); err != nil {
		l.log.Warnw("rate limit store unreachable, failing open", "error", err)
		return allowedByDefault
	}

	count := incr.Val()
	remaining := l.max - int(count)
	if remaining < 0 {
		remaining = 0
	}

	return verdict{
		allowed:   count <= int64(l.max),
		limit:     l.max,
		remaining: remaining,
		reset:     time.Now().Add(l.window),
	}
}

// Middleware rejects over-limit clients with 429 and informative headers.
func (l *Limiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		v := l.check(c.Request.Context(), ClientID(c))

		if !v.allowed {
			metrics.RateLimited.Inc()
			c.Header("X-RateLimit-Limit", strconv.Itoa(v.limit))
			c.Header("X-RateLimit-Remaining", strconv.Itoa(v.remaining))
			c.Header("X-RateLimit-Reset", strconv.FormatInt(v.reset.UnixMilli(), 10))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests",
			})
			return
		}

		c.Next()
	}
}

// ClientID derives the throttling identity from forwarded-IP headers. With
// no proxy headers present every caller shares the loopback identity.
func ClientID(c *gin.Context) string {
	if ip := c.GetHeader("X-Forwarded-For"); ip != "" {
		return ip
	}
	if ip := c.GetHeader("X-Real-Ip"); ip != "" {
		return ip
	}
	return "127.0.0.1"
}
