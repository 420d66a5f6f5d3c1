package middleware

import (
	"fmt"
	"time"

	"creator-paygate/internal/core/ports"
	"creator-paygate/pkg/apperror"
	"creator-paygate/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RateLimitRule defines a rate limit for an endpoint group.
type RateLimitRule struct {
	Limit  int
	Window time.Duration
}

// DefaultRateLimitRules returns the default limits per endpoint group.
func DefaultRateLimitRules() map[string]RateLimitRule {
	return map[string]RateLimitRule{
		"content":    {Limit: 120, Window: time.Minute},
		"auth_login": {Limit: 10, Window: time.Minute},
		"manage":     {Limit: 60, Window: time.Minute},
	}
}

// RateLimiter creates a rate-limiting middleware for a given endpoint group.
// A failing store degrades open: the request is allowed and the failure
// logged.
func RateLimiter(store ports.RateLimitStore, group string, rule RateLimitRule, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", extractIdentifier(c), group)

		allowed, err := store.Allow(c.Request.Context(), key, rule.Limit, rule.Window)
		if err != nil {
			log.Warn().Err(err).Str("group", group).Msg("rate limit check failed, allowing request (degraded mode)")
			c.Next()
			return
		}

		if !allowed {
			response.Error(c, apperror.ErrRateLimitExceeded())
			c.Abort()
			return
		}

		c.Next()
	}
}

// extractIdentifier determines the rate limit key source: the authenticated
// creator when present, the client IP otherwise.
func extractIdentifier(c *gin.Context) string {
	if cid, exists := c.Get(CtxCreatorID); exists {
		return fmt.Sprintf("%v", cid)
	}
	return c.ClientIP()
}
