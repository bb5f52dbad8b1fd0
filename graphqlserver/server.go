package graphqlserver

import (
	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	"bundle-inventory.GO/graphql"
	"bundle-inventory.GO/graphql/resolvers"
)

// RootResolver is the root for graphql-go.
type RootResolver struct {
	Services *graphql.Services
}

// Query returns the query resolver.
func (r *RootResolver) Query() *resolvers.QueryResolver {
	return resolvers.NewQueryResolver(r.Services)
}

// NewSchema parses the schema and returns a graphql-go Schema.
func NewSchema(s *graphql.Services) (*gql.Schema, error) {
	return gql.ParseSchema(graphql.Schema(), &RootResolver{Services: s}, gql.UseFieldResolvers())
}

// Handler returns an http.Handler for GraphQL (relay format).
func Handler(schema *gql.Schema) *relay.Handler {
	return &relay.Handler{Schema: schema}
}
