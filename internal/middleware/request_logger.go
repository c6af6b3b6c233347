package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mssola/user_agent"
	"github.com/sirupsen/logrus"
)

// RequestLogger logs every HTTP request with latency and client device info
// parsed from the User-Agent header.
func RequestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)

		fields := logrus.Fields{
			"status":     c.Writer.Status(),
			"method":     c.Request.Method,
			"path":       path,
			"query":      query,
			"ip":         c.ClientIP(),
			"latency_ms": latency.Milliseconds(),
		}

		if uaString := c.Request.UserAgent(); uaString != "" {
			ua := user_agent.New(uaString)
			browser, _ := ua.Browser()
			fields["client_os"] = ua.OS()
			fields["client_app"] = browser
			fields["client_mobile"] = ua.Mobile()
		}

		if passengerID, exists := c.Get(PassengerIDKey); exists {
			fields["passenger_id"] = passengerID
		}

		entry := logger.WithFields(fields)

		status := c.Writer.Status()
		switch {
		case len(c.Errors) > 0:
			entry.WithField("errors", c.Errors.String()).Error("Request failed")
		case status >= 500:
			entry.Error("Request completed with server error")
		case status >= 400:
			entry.Warn("Request completed with client error")
		default:
			entry.Info("Request completed")
		}
	}
}
