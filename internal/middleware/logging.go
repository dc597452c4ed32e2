package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey is the gin context key RequestID stores the id under.
	RequestIDKey = "requestID"
)

// RequestID reuses the caller's X-Request-ID or mints a new one, and echoes
// it on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader(RequestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set(RequestIDKey, reqID)
		c.Writer.Header().Set(RequestIDHeader, reqID)
		c.Next()
	}
}

// RequestLogger logs every request once it completes, at a level picked from
// the status code. It expects RequestID to run first.
func RequestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()
		entry := logger.WithFields(logrus.Fields{
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"remote_ip": c.ClientIP(),
		})
		if reqID := c.GetString(RequestIDKey); reqID != "" {
			entry = entry.WithField("request_id", reqID)
		}
		entry.WithField("user_agent", c.Request.UserAgent()).Debug("Storefront request received")

		c.Next()

		statusCode := c.Writer.Status()
		entry = entry.WithFields(logrus.Fields{
			"status_code": statusCode,
			"latency_ms":  time.Since(startTime).Milliseconds(),
		})

		switch {
		case len(c.Errors) > 0:
			entry.Error(c.Errors.ByType(gin.ErrorTypePrivate).String())
		case statusCode >= http.StatusInternalServerError:
			entry.Error("Storefront request failed")
		case statusCode >= http.StatusBadRequest:
			entry.Warn("Storefront request rejected")
		default:
			entry.Info("Storefront request served")
		}
	}
}
