package logger

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries the request id in both directions
	RequestIDHeader = "X-Request-ID"

	contextKey = "logger"
)

// Middleware returns a Gin middleware function that logs requests
func Middleware(logger *Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Generate a request ID if one doesn't exist
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Header(RequestIDHeader, requestID)
		c.Set("requestId", requestID)

		reqLogger := logger.WithRequestID(requestID).WithContext(c.Request.Context())
		c.Set(contextKey, reqLogger)

		start := time.Now()

		c.Next()

		// The write guard may have attached a subject during the request
		if subject := c.GetString("subject"); subject != "" {
			reqLogger = reqLogger.WithSubject(subject)
		}

		reqLogger.LogRequest(c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

// FromContext returns the request-scoped logger, or the global logger outside a request
func FromContext(c *gin.Context) *Logger {
	if c != nil {
		if l, ok := c.Get(contextKey); ok {
			if reqLogger, ok := l.(*Logger); ok {
				return reqLogger
			}
		}
	}
	return GetGlobal()
}
