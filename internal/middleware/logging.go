package middleware

import (
	"time"

	"homeinsight-listings/pkg/logger"

	"github.com/gin-gonic/gin"
)

func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path += "?" + raw
		}
		method := c.Request.Method

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		source := c.GetString("data_source")
		if source == "" {
			source = "-"
		}
		logger.GlobalLogger.Printf("%s %s %d %v source=%s request_id=%s",
			method, path, status, latency, source, c.GetString(CtxRequestID))
	}
}
