package graph

import (
	"github.com/graphql-go/graphql"
)

// NewSchema builds the executable schema:
//
//	type User { id: ID! name: String! email: String! }
//	type Query { getUser(id: ID!): User }
//
// Adding entities means adding a type and a field here; the HTTP pipeline
// does not change.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	userType := graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
			},
			"name": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
			},
			"email": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
			},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"getUser": &graphql.Field{
				Type:        userType,
				Description: "Fetch a single user by id.",
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.ID),
					},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, _ := p.Args["id"].(string)
					u, err := r.GetUser(p.Context, id)
					if err != nil {
						return nil, err
					}
					if u == nil {
						// Missing entity resolves to null, not an error.
						return nil, nil
					}
					return u, nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: queryType})
}
