package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hartlaw/hartlaw/internal/infrastructure/ratelimit"
	"github.com/hartlaw/hartlaw/internal/shared/logger"
	"github.com/hartlaw/hartlaw/internal/shared/utils"
)

// RateLimitMiddleware throttles per actor, falling back to the client IP
// for anonymous calls.
type RateLimitMiddleware struct {
	limiter ratelimit.RateLimiter
	config  ratelimit.RateLimitConfig
	logger  logger.Interface
}

func NewRateLimitMiddleware(limiter ratelimit.RateLimiter, config ratelimit.RateLimitConfig, logger logger.Interface) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		config:  config,
		logger:  logger,
	}
}

func (m *RateLimitMiddleware) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ip:" + c.ClientIP()
		if actorID := GetActorID(c); actorID != "" {
			key = "actor:" + actorID
		}

		allowed, err := m.limiter.Allow(c.Request.Context(), key, m.config)
		if err != nil {
			// Redis unavailable: let the request through rather than block all traffic.
			m.logger.Warnw("rate limit check failed", "error", err, "key", key)
			c.Next()
			return
		}

		if m.config.RequestsPerMinute > 0 {
			if remaining, err := m.limiter.GetRemaining(c.Request.Context(), key, time.Minute, m.config.RequestsPerMinute); err == nil {
				c.Header("X-RateLimit-Limit", fmt.Sprint(m.config.RequestsPerMinute))
				c.Header("X-RateLimit-Remaining", fmt.Sprint(remaining))
			}
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
