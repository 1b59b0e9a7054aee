package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
	"github.com/rs/zerolog"
)

// graphQLRequest is the standard GraphQL-over-HTTP POST body.
type graphQLRequest struct {
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables"`
	OperationName string                 `json:"operationName"`
}

var errEmptyQuery = errors.New("request carried no query")

// GraphQL serves POST /graphql against a fixed executable schema.
type GraphQL struct {
	schema graphql.Schema
	log    zerolog.Logger
}

// NewGraphQL builds the endpoint handler.
func NewGraphQL(schema graphql.Schema, log zerolog.Logger) *GraphQL {
	return &GraphQL{
		schema: schema,
		log:    log,
	}
}

// Execute parses the request body, runs the query and writes the result.
// Failures are handed to the centralized error middleware: body decode
// errors keep their JSON syntax type so the client sees "Malformed JSON",
// while parse, validation and resolver errors all collapse into the generic
// bad-request answer with full detail in the logs only.
func (h *GraphQL) Execute(c *gin.Context) {
	var req graphQLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}
	if req.Query == "" {
		_ = c.Error(errEmptyQuery)
		c.Abort()
		return
	}

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        c.Request.Context(),
	})

	if result.HasErrors() {
		if ctxErr := c.Request.Context().Err(); errors.Is(ctxErr, context.DeadlineExceeded) {
			_ = c.Error(ctxErr)
			c.Abort()
			return
		}
		for _, gqlErr := range result.Errors {
			h.log.Error().
				Str("operation", req.OperationName).
				Str("message", gqlErr.Message).
				Msg("graphql execution error")
		}
		_ = c.Error(fmt.Errorf("graphql execution failed with %d error(s)", len(result.Errors)))
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, result)
}
