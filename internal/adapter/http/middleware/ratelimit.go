package middleware

import (
	"fmt"
	"strconv"
	"time"

	redisStore "yield-spend-gateway/internal/adapter/storage/redis"
	"yield-spend-gateway/pkg/apperror"
	"yield-spend-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RateLimitRule defines a rate limit for an endpoint group.
type RateLimitRule struct {
	Limit  int64
	Window time.Duration
}

// DefaultRateLimitRules returns the rate limits per endpoint group.
func DefaultRateLimitRules() map[string]RateLimitRule {
	return map[string]RateLimitRule{
		"auth_nonce":    {Limit: 20, Window: time.Minute},
		"auth":          {Limit: 10, Window: time.Minute},
		"yield":         {Limit: 60, Window: time.Minute},
		"discover":      {Limit: 120, Window: time.Minute},
		"prepaid":       {Limit: 60, Window: time.Minute},
		"prepaid_topup": {Limit: 20, Window: time.Minute},
		"payments":      {Limit: 100, Window: time.Minute},
	}
}

// RateLimiter creates a rate-limiting middleware for a given endpoint group.
// A store failure lets the request through: a broken limiter must not take
// the API down with it.
func RateLimiter(store *redisStore.RateLimitStore, group string, rule RateLimitRule, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", extractIdentifier(c), group)

		result, err := store.Allow(c.Request.Context(), key, rule.Limit, rule.Window)
		if err != nil {
			log.Warn().Err(err).Str("group", group).Msg("rate limit check failed, allowing request (degraded mode)")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt, 10))

		if !result.Allowed {
			retryAfter := result.ResetAt - time.Now().Unix()
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
			response.Error(c, apperror.ErrRateLimitExceeded())
			c.Abort()
			return
		}

		c.Next()
	}
}

// extractIdentifier determines the rate limit key source: the authenticated
// wallet when present, the client IP otherwise.
func extractIdentifier(c *gin.Context) string {
	if wallet, exists := c.Get(CtxWalletAddress); exists {
		return fmt.Sprintf("%v", wallet)
	}
	return c.ClientIP()
}
