package store

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func ptr[T any](v T) *T { return &v }

func TestProductQueryEmpty(t *testing.T) {
	q := productQuery(ProductFilter{})
	require.Empty(t, q)
}

func TestProductQueryCategory(t *testing.T) {
	q := productQuery(ProductFilter{Category: ptr("electronics")})
	require.Equal(t, bson.M{"category": "electronics"}, q)
}

func TestProductQueryCombinedPriceRange(t *testing.T) {
	q := productQuery(ProductFilter{PriceMin: ptr(3.0), PriceMax: ptr(7.0)})
	require.Equal(t, bson.M{"price": bson.M{"$gte": 3.0, "$lte": 7.0}}, q)
}

func TestProductQuerySingleBound(t *testing.T) {
	q := productQuery(ProductFilter{PriceMax: ptr(7.0)})
	require.Equal(t, bson.M{"price": bson.M{"$lte": 7.0}}, q)
}

func TestFindOptionsDefaults(t *testing.T) {
	opts := findOptions(ProductFilter{})
	require.Equal(t, int64(0), *opts.Skip)
	require.Equal(t, int64(DefaultPageSize), *opts.Limit)
	require.Nil(t, opts.Sort)
}

func TestFindOptionsPagination(t *testing.T) {
	opts := findOptions(ProductFilter{Page: 2, PageSize: 5})
	require.Equal(t, int64(5), *opts.Skip)
	require.Equal(t, int64(5), *opts.Limit)
}

func TestFindOptionsSort(t *testing.T) {
	opts := findOptions(ProductFilter{SortBy: "price"})
	require.Equal(t, bson.D{{Key: "price", Value: 1}}, opts.Sort)

	opts = findOptions(ProductFilter{SortBy: "price", SortOrder: "desc"})
	require.Equal(t, bson.D{{Key: "price", Value: -1}}, opts.Sort)
}

func TestCalculate(t *testing.T) {
	skip, limit := Calculate(1, 10)
	require.Equal(t, int64(0), skip)
	require.Equal(t, int64(10), limit)

	skip, limit = Calculate(3, 25)
	require.Equal(t, int64(50), skip)
	require.Equal(t, int64(25), limit)

	skip, limit = Calculate(0, 0)
	require.Equal(t, int64(0), skip)
	require.Equal(t, int64(DefaultPageSize), limit)

	skip, limit = Calculate(-2, -5)
	require.Equal(t, int64(0), skip)
	require.Equal(t, int64(DefaultPageSize), limit)
}
