// Package graph declares the GraphQL schema and binds every field to a
// resolver method on Resolver.
package graph

import (
	_ "embed"

	graphql "github.com/graph-gophers/graphql-go"
)

//go:embed schema.graphql
var Schema string

func MustParseSchema(r *Resolver) *graphql.Schema {
	return graphql.MustParseSchema(Schema, r)
}
