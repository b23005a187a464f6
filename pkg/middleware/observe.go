package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"

	"github.com/crestadmit/portal/pkg/metrics"
)

// PrometheusMetrics records a counter and duration histogram per request.
func PrometheusMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		metrics.RequestsTotal.WithLabelValues(c.Request.Method, path, http.StatusText(status)).Inc()
		metrics.RequestDuration.WithLabelValues(c.Request.Method, path).Observe(duration)
	}
}

// SentryCapture reports handler errors attached to the gin context to Sentry.
// No-op when Sentry was not initialized.
func SentryCapture() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		hub := sentry.CurrentHub()
		if hub == nil {
			return
		}
		for _, ginErr := range c.Errors {
			err := ginErr.Err
			hub.WithScope(func(scope *sentry.Scope) {
				scope.SetTag("http.method", c.Request.Method)
				scope.SetTag("http.route", c.Request.URL.Path)
				scope.SetContext("Request", map[string]interface{}{
					"Method":  c.Request.Method,
					"URL":     c.Request.URL.String(),
					"Headers": safeHeaders(c.Request.Header),
				})
				hub.CaptureException(err)
			})
		}
	}
}

func safeHeaders(h http.Header) map[string]interface{} {
	safe := make(map[string]interface{})
	for k, v := range h {
		if strings.EqualFold(k, "Authorization") || strings.EqualFold(k, "Cookie") {
			safe[k] = "[FILTERED]"
		} else {
			safe[k] = v
		}
	}
	return safe
}
