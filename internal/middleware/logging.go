package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// requestIDKey is the gin context key carrying the per-request ID
const requestIDKey = "request_id"

// LoggingMiddleware assigns each request an ID and logs method, path,
// status, and latency once the handler chain completes
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		requestID := uuid.New().String()
		c.Set(requestIDKey, requestID)
		c.Header("X-Request-ID", requestID)

		// Process request
		c.Next()

		latency := time.Since(start)
		clientIP := c.ClientIP()
		method := c.Request.Method
		statusCode := c.Writer.Status()

		if raw != "" {
			path = path + "?" + raw
		}

		fmt.Printf("[REQUEST] %s | %3d | %13v | %15s | %-7s %s\n",
			requestID,
			statusCode,
			latency,
			clientIP,
			method,
			path,
		)
	}
}

// RequestID returns the ID assigned to the current request, or an empty
// string outside the logging middleware
func RequestID(c *gin.Context) string {
	if id, exists := c.Get(requestIDKey); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}
