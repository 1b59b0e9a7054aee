package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// RequireJSON rejects POST bodies that are not a JSON media type before any
// execution happens. GET and other body-less methods pass through.
func RequireJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		ct := c.ContentType()
		if ct != "application/json" && !strings.HasSuffix(ct, "+json") {
			c.AbortWithStatusJSON(http.StatusUnsupportedMediaType, gin.H{
				"error": "Unsupported content type",
			})
			return
		}

		c.Next()
	}
}
