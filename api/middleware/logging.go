package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// NewLogging logs one line per request after it completed, leveled by the
// response status. Paths in ignorePath (health probes) are not logged.
func NewLogging(logger *slog.Logger, ignorePath ...string) gin.HandlerFunc {
	ignore := make(map[string]struct{}, len(ignorePath))
	for _, path := range ignorePath {
		ignore[path] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := ignore[c.Request.URL.Path]; ok {
			return
		}

		path := c.Request.URL.Path
		start := time.Now()
		c.Next()
		latency := time.Since(start).Milliseconds()
		status := c.Writer.Status()

		level := slog.LevelInfo
		if status >= http.StatusBadRequest && status < http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}

		logger.LogAttrs(context.Background(), level, c.Request.Method+" "+path,
			slog.Int("status", status),
			slog.Int64("latency", latency),
			slog.String("client_ip", c.ClientIP()),
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.String("user_agent", c.Request.UserAgent()),
		)
	}
}
