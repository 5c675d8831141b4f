package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/portify/portify-api/pkg/apperror"
	"github.com/portify/portify-api/pkg/logger"
)

// ErrorMiddleware renders the last error attached to the gin context.
// Handlers call c.Error and return; the mapping to HTTP status lives here.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			status := apperror.ToHTTPStatus(appErr)
			if status >= http.StatusInternalServerError {
				log.Error("request failed", appErr, zap.String("path", c.Request.URL.Path))
			}
			c.JSON(status, gin.H{"error": appErr.Message})
			return
		}

		log.Error("unhandled request error", err, zap.String("path", c.Request.URL.Path))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
	}
}
