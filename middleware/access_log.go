package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AccessLogMiddleware logs one line per request once the handler chain has
// finished. Server errors log at error level, client errors at warn.
func AccessLogMiddleware(log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		c.Next()

		status := c.Writer.Status()
		fields := []interface{}{
			"status", status,
			"method", c.Request.Method,
			"path", path,
			"client_ip", c.ClientIP(),
			"latency", time.Since(start),
			"request_id", c.GetString(RequestIDKey),
		}

		switch {
		case status >= 500:
			log.Errorw("Request", fields...)
		case status >= 400:
			log.Warnw("Request", fields...)
		default:
			log.Infow("Request", fields...)
		}
	}
}
