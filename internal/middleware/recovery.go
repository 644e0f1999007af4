package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ajharbinger/answer-eval-api/internal/logger"
)

// RecoveryMiddleware is the outermost safety net: any panic escaping a
// handler is logged with the request ID and converted into a generic
// internal-failure response. Anticipated failures are typed and handled
// long before they reach this boundary.
func RecoveryMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("Recovered from panic", nil,
					"panic", r,
					"request_id", RequestID(c),
					"path", c.Request.URL.Path,
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "internal server error",
				})
			}
		}()
		c.Next()
	}
}
