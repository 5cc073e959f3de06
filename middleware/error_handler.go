package middleware

import (
	"errors"
	"net/http"

	"github.com/CorrelAid/form_intake/logger"
	"github.com/CorrelAid/form_intake/repository"
	"github.com/CorrelAid/form_intake/templates"
	"github.com/gin-gonic/gin"
)

// ErrorHandler turns errors attached with c.Error into an HTML error page.
// Storage failures and anything unrecognised become a generic 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		ginErr := c.Errors.Last()
		err := ginErr.Err
		log := logger.GetLogger()
		fields := []interface{}{
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"client_ip", c.ClientIP(),
			"request_id", c.GetString(RequestIDKey),
			"error", err,
		}

		var maxBytesErr *http.MaxBytesError
		var storageErr *repository.StorageError
		switch {
		case errors.As(err, &maxBytesErr):
			log.Warnw("Request body too large", fields...)
			renderError(c, http.StatusRequestEntityTooLarge, "The submitted form is too large.")
		case ginErr.IsType(gin.ErrorTypeBind):
			log.Warnw("Malformed form submission", fields...)
			renderError(c, http.StatusBadRequest, "The submitted form could not be read.")
		case errors.As(err, &storageErr):
			log.Errorw("Storage failure", append(fields, "op", storageErr.Op, "table", storageErr.Table)...)
			renderError(c, http.StatusInternalServerError, "Something went wrong, please try again later.")
		default:
			log.Errorw("Unhandled error", fields...)
			renderError(c, http.StatusInternalServerError, "Something went wrong, please try again later.")
		}
	}
}

func renderError(c *gin.Context, status int, message string) {
	c.HTML(status, templates.ErrorPage, gin.H{
		"Status":    http.StatusText(status),
		"Message":   message,
		"RequestID": c.GetString(RequestIDKey),
	})
}
