package middleware

import (
	"net/http"
	"strings"

	"github.com/CorrelAid/form_intake/logger"
	"github.com/gin-gonic/gin"
)

// DomainWhitelistMiddleware rejects requests whose Host is not listed. An
// empty list allows every host.
func DomainWhitelistMiddleware(allowedDomains []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(allowedDomains) == 0 {
			c.Next()
			return
		}

		host := c.Request.Host
		for _, domain := range allowedDomains {
			if strings.EqualFold(domain, host) {
				c.Next()
				return
			}
		}

		logger.GetLogger().Warnw("Rejected request for unknown host", "host", host, "client_ip", c.ClientIP())
		renderError(c, http.StatusForbidden, "Permission denied")
		c.Abort()
	}
}
