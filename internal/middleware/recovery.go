package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/BerylCAtieno/career-advisor-agent/internal/advisor"
	"github.com/BerylCAtieno/career-advisor-agent/internal/logger"
	"github.com/BerylCAtieno/career-advisor-agent/internal/metrics"
)

// Recovery turns a panic into the generic internal error response.
func Recovery(log logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, rec any) {
		metrics.ObserveRequest("http", metrics.OutcomeInternal)
		log.Error("panic", map[string]interface{}{
			"request_id": RequestIDFromContext(c),
			"error":      rec,
			"stack":      string(debug.Stack()),
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
		})
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": advisor.InternalErrorMessage})
	})
}
