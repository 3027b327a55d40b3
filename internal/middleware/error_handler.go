package middleware

import (
	"homeinsight-listings/internal/errors"
	"homeinsight-listings/internal/utils"
	"homeinsight-listings/pkg/logger"

	"github.com/gin-gonic/gin"
)

// seconds a client should wait before retrying a 503
const retryAfterSeconds = "5"

// ErrorHandler catches errors and returns standardized responses.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		appErr := errors.MapError(err)

		logger.GlobalLogger.Errorf("Request failed: path=%s, method=%s, client_ip=%s, request_id=%s, code=%s, error=%s",
			c.Request.URL.Path,
			c.Request.Method,
			c.ClientIP(),
			c.GetString(CtxRequestID),
			appErr.Code,
			appErr.TechnicalMessage)

		if utils.IsRetryableError(err) {
			c.Header("Retry-After", retryAfterSeconds)
		}
		c.JSON(appErr.HTTPStatus, gin.H{
			"error": gin.H{
				"message": appErr.UserMessage,
				"code":    appErr.Code,
			},
		})
	}
}
