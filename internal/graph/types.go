package graph

import (
	graphql "github.com/graph-gophers/graphql-go"

	"github.com/malarharish/catalog-api/internal/models"
)

type ProductResolver struct {
	p models.Product
}

func (r *ProductResolver) ID() graphql.ID {
	return graphql.ID(r.p.ID.Hex())
}

func (r *ProductResolver) Name() string {
	return r.p.Name
}

func (r *ProductResolver) Description() string {
	return r.p.Description
}

func (r *ProductResolver) Price() float64 {
	return r.p.Price
}

func (r *ProductResolver) Category() string {
	return r.p.Category
}

func (r *ProductResolver) Brand() string {
	return r.p.Brand
}

func (r *ProductResolver) InStock() int32 {
	return r.p.InStock
}

func wrapProducts(products []models.Product) []*ProductResolver {
	out := make([]*ProductResolver, len(products))
	for i := range products {
		out[i] = &ProductResolver{p: products[i]}
	}
	return out
}

// UserResolver never exposes the password hash; the schema has no field for it.
type UserResolver struct {
	u models.User
}

func (r *UserResolver) ID() graphql.ID {
	return graphql.ID(r.u.ID.Hex())
}

func (r *UserResolver) Username() string {
	return r.u.Username
}

func (r *UserResolver) Role() string {
	return r.u.Role
}

type AuthPayloadResolver struct {
	token string
	user  *UserResolver
}

func (r *AuthPayloadResolver) Token() string {
	return r.token
}

func (r *AuthPayloadResolver) User() *UserResolver {
	return r.user
}

type SearchResultResolver struct {
	total    int32
	products []*ProductResolver
}

func (r *SearchResultResolver) Total() int32 {
	return r.total
}

func (r *SearchResultResolver) Products() []*ProductResolver {
	return r.products
}
