package middleware

import (
	"net/http"
	"time"

	"github.com/CorrelAid/form_intake/logger"
	"github.com/didip/tollbooth"
	"github.com/didip/tollbooth/limiter"
	"github.com/gin-gonic/gin"
)

// RateLimitMiddleware allows maxRequests per minute per client IP.
func RateLimitMiddleware(maxRequests float64) gin.HandlerFunc {
	perSecond := maxRequests / 60.0
	lmt := tollbooth.NewLimiter(perSecond, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})

	return func(c *gin.Context) {
		if httpError := tollbooth.LimitByRequest(lmt, c.Writer, c.Request); httpError != nil {
			logger.GetLogger().Warnw("Rate limit exceeded",
				"client_ip", c.ClientIP(),
				"path", c.Request.URL.Path)
			renderError(c, http.StatusTooManyRequests, "Too many submissions, please try again in a minute.")
			c.Abort()
			return
		}
		c.Next()
	}
}
