package routes

import (
	"net/http"

	"graphql-bff-api/internal/auth"
	"graphql-bff-api/internal/config"
	"graphql-bff-api/internal/handlers"
	"graphql-bff-api/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Deps carries everything the router needs; main constructs it once so no
// package-level state is shared between components.
type Deps struct {
	Cfg     config.Config
	Log     zerolog.Logger
	GraphQL *handlers.GraphQL
	Tokens  *auth.TokenManager
}

// Setup assembles the request pipeline: logging, centralized error
// handling, content-type validation, then the routes. Anything unmatched
// falls through to the structured 404.
func Setup(d Deps) *gin.Engine {
	if d.Cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(middleware.RequestLogger(d.Log))
	r.Use(middleware.ErrorHandler(d.Log))
	r.Use(middleware.RequireJSON())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	gql := r.Group("/graphql")
	if d.Cfg.AuthEnabled {
		gql.Use(middleware.BearerAuth(d.Tokens, d.Log))
	}
	gql.POST("", middleware.Timeout(d.Cfg.RequestTimeout), d.GraphQL.Execute)

	r.NoRoute(func(c *gin.Context) {
		d.Log.Warn().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("route not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	return r
}
