package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RequestLogger logs every request and recovers panics, surfacing them as a
// generic 500 so a handler bug never kills the process.
func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		defer func() {
			if r := recover(); r != nil {
				var errMsg string
				if e, ok := r.(error); ok {
					errMsg = e.Error()
				} else {
					errMsg = fmt.Sprintf("%v", r)
				}
				logger.Error().
					Str("method", c.Request.Method).
					Str("url", c.Request.URL.String()).
					Str("error", errMsg).
					Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
			}
		}()

		c.Next()

		userID := ""
		if id, ok := UserID(c); ok {
			userID = id
		}

		logger.Info().
			Str("method", c.Request.Method).
			Str("url", c.Request.URL.String()).
			Str("user_id", userID).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request completed")
	}
}
