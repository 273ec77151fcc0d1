package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/malarharish/catalog-api/internal/models"
)

// ProductStore handles product CRUD in MongoDB.
type ProductStore struct {
	col *mongo.Collection
}

func NewProductStore(db *mongo.Database) *ProductStore {
	return &ProductStore{col: db.Collection("products")}
}

// ProductFilter describes the products query: exact-match category, inclusive
// price range, single-field sort and 1-based pagination. Nil means "not set".
type ProductFilter struct {
	Category  *string
	PriceMin  *float64
	PriceMax  *float64
	SortBy    string
	SortOrder string
	Page      int32
	PageSize  int32
}

func productQuery(f ProductFilter) bson.M {
	query := bson.M{}
	if f.Category != nil {
		query["category"] = *f.Category
	}
	price := bson.M{}
	if f.PriceMin != nil {
		price["$gte"] = *f.PriceMin
	}
	if f.PriceMax != nil {
		price["$lte"] = *f.PriceMax
	}
	if len(price) > 0 {
		query["price"] = price
	}
	return query
}

func findOptions(f ProductFilter) *options.FindOptions {
	skip, limit := Calculate(f.Page, f.PageSize)
	opts := options.Find().SetSkip(skip).SetLimit(limit)
	if f.SortBy != "" {
		dir := 1
		if f.SortOrder == "desc" {
			dir = -1
		}
		opts.SetSort(bson.D{{Key: f.SortBy, Value: dir}})
	}
	return opts
}

func (s *ProductStore) List(ctx context.Context, f ProductFilter) ([]models.Product, error) {
	cur, err := s.col.Find(ctx, productQuery(f), findOptions(f))
	if err != nil {
		return nil, fmt.Errorf("mongo find: %w", err)
	}
	defer cur.Close(ctx)

	products := []models.Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("mongo decode: %w", err)
	}
	return products, nil
}

func (s *ProductStore) Get(ctx context.Context, id string) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	var product models.Product
	if err := s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&product); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("mongo find one: %w", err)
	}
	return &product, nil
}

func (s *ProductStore) Insert(ctx context.Context, product *models.Product) (*models.Product, error) {
	res, err := s.col.InsertOne(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("mongo insert: %w", err)
	}
	product.ID = res.InsertedID.(primitive.ObjectID)
	return product, nil
}

// Replace overwrites the six payload fields and returns the post-update record.
func (s *ProductStore) Replace(ctx context.Context, id string, product *models.Product) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	update := bson.M{"$set": bson.M{
		"name":        product.Name,
		"description": product.Description,
		"price":       product.Price,
		"category":    product.Category,
		"brand":       product.Brand,
		"inStock":     product.InStock,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Product
	if err := s.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&updated); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("mongo update: %w", err)
	}
	return &updated, nil
}

// Delete removes the record and returns what was removed.
func (s *ProductStore) Delete(ctx context.Context, id string) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	var deleted models.Product
	if err := s.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&deleted); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("mongo delete: %w", err)
	}
	return &deleted, nil
}
