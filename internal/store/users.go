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

// UserStore handles user records. Users are only ever created and read.
type UserStore struct {
	col *mongo.Collection
}

func NewUserStore(db *mongo.Database) *UserStore {
	return &UserStore{col: db.Collection("users")}
}

// EnsureIndexes creates the unique username index that backs signup conflicts.
func (s *UserStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("mongo create index: %w", err)
	}
	return nil
}

func (s *UserStore) Insert(ctx context.Context, user *models.User) (*models.User, error) {
	res, err := s.col.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateUsername
		}
		return nil, fmt.Errorf("mongo insert: %w", err)
	}
	user.ID = res.InsertedID.(primitive.ObjectID)
	return user, nil
}

func (s *UserStore) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := s.col.FindOne(ctx, bson.M{"username": username}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("mongo find one: %w", err)
	}
	return &user, nil
}

func (s *UserStore) Get(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	var user models.User
	if err := s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("mongo find one: %w", err)
	}
	return &user, nil
}
