package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ErrorHandler is the single terminal error stage of the pipeline. Upstream
// stages report failures via c.Error (or by panicking); this middleware logs
// the full detail and answers with a sanitized body that never carries a
// stack trace. Malformed JSON is the only failure distinguished for the
// client; everything else is a generic bad request, except a request that
// ran out its deadline, which maps to 504.
func ErrorHandler(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().
					Interface("panic", r).
					Str("stack", string(debug.Stack())).
					Str("method", c.Request.Method).
					Str("path", c.Request.URL.Path).
					Msg("recovered from panic")
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Bad request"})
			}
		}()

		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		for _, ginErr := range c.Errors {
			log.Error().
				Err(ginErr.Err).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Msg("request failed")
		}

		if c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status := http.StatusBadRequest
		message := "Bad request"

		var syntaxErr *json.SyntaxError
		switch {
		case errors.As(err, &syntaxErr),
			errors.Is(err, io.ErrUnexpectedEOF),
			errors.Is(err, io.EOF):
			// Truncated bodies surface as EOF errors from the decoder, not
			// as json.SyntaxError.
			message = "Malformed JSON"
		case errors.Is(err, context.DeadlineExceeded):
			status = http.StatusGatewayTimeout
			message = "Request timed out"
		}

		c.JSON(status, gin.H{"error": message})
	}
}
