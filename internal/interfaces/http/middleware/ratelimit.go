package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"ticketboard/internal/infrastructure/ratelimit"
	"ticketboard/internal/shared/constants"
	"ticketboard/internal/shared/errors"
	"ticketboard/internal/shared/logger"
	"ticketboard/internal/shared/utils"
)

// MutationRateLimit caps ticket mutations per acting user. It must run after
// RequireAuth. Limiter failures let the request through.
func MutationRateLimit(limiter ratelimit.RateLimiter, limit ratelimit.Limit, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := c.Get(constants.ContextKeyUserID)
		if !ok {
			c.Next()
			return
		}

		key := fmt.Sprintf("mutations:user:%v", userID)
		allowed, err := limiter.Allow(c.Request.Context(), key, limit)
		if err != nil {
			log.Warnw("rate limiter unavailable", "error", err)
			c.Next()
			return
		}
		if !allowed {
			utils.AbortWithError(c, errors.NewTooManyRequestsError("rate limit exceeded, please try again later"))
			return
		}

		c.Next()
	}
}
