package middleware

import (
	"net/http"
	"strings"

	"graphql-bff-api/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// BearerAuth validates the JWT in the Authorization header and stores the
// caller's identity in the request context. Only mounted when AUTH_ENABLED
// is set; the default surface of the service is unauthenticated.
func BearerAuth(tokens *auth.TokenManager, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString := ""
		if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 && parts[0] == "Bearer" {
			tokenString = parts[1]
		}
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authorization token is required",
			})
			return
		}

		claims, err := tokens.Validate(tokenString)
		if err != nil {
			log.Warn().Err(err).Str("path", c.Request.URL.Path).Msg("rejected bearer token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)

		c.Next()
	}
}
