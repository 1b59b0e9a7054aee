package store

import (
	"context"

	"graphql-bff-api/internal/models"
)

// UserStore is the source of truth consulted on cache misses.
type UserStore interface {
	// GetUser returns the user with the given id, or (nil, nil) when no such
	// user exists. A missing user is not an error.
	GetUser(ctx context.Context, id string) (*models.User, error)
}

// Fixtures returns the seed dataset shared by every store backend. It stands
// in for a real upstream data source.
func Fixtures() []models.User {
	return []models.User{
		{ID: "1", Name: "John Doe", Email: "john@example.com"},
		{ID: "2", Name: "Jane Smith", Email: "jane@example.com"},
		{ID: "3", Name: "Bob Johnson", Email: "bob@example.com"},
	}
}
