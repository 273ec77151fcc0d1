package graph

import (
	"context"
	"errors"
	"time"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/malarharish/catalog-api/internal/events"
	"github.com/malarharish/catalog-api/internal/hash"
	"github.com/malarharish/catalog-api/internal/logging"
	"github.com/malarharish/catalog-api/internal/models"
	"github.com/malarharish/catalog-api/internal/search"
	"github.com/malarharish/catalog-api/internal/store"
	"github.com/malarharish/catalog-api/internal/token"
)

// ProductStore is the slice of store.ProductStore the resolvers need.
type ProductStore interface {
	List(ctx context.Context, f store.ProductFilter) ([]models.Product, error)
	Get(ctx context.Context, id string) (*models.Product, error)
	Insert(ctx context.Context, product *models.Product) (*models.Product, error)
	Replace(ctx context.Context, id string, product *models.Product) (*models.Product, error)
	Delete(ctx context.Context, id string) (*models.Product, error)
}

type UserStore interface {
	Insert(ctx context.Context, user *models.User) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Get(ctx context.Context, id string) (*models.User, error)
}

// Resolver is the root resolver. It holds every collaborator the operations
// need; nothing hangs off package-level state.
type Resolver struct {
	Store    ProductStore
	Users    UserStore
	Tokens   *token.Service
	Producer *events.Producer
	Search   *search.Client
}

func (r *Resolver) publish(ctx context.Context, topic, key string, event map[string]interface{}) {
	if r.Producer == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := r.Producer.PublishEvent(ctx, topic, key, event); err != nil {
		logging.FromContext(ctx).Error("kafka publish error", "error", err)
	}
}

func (r *Resolver) indexProduct(ctx context.Context, product *models.Product) {
	if r.Search == nil {
		return
	}
	if err := r.Search.IndexProduct(ctx, product); err != nil {
		logging.FromContext(ctx).Error("search index error", "error", err, "id", product.ID.Hex())
	}
}

func (r *Resolver) removeFromIndex(ctx context.Context, id string) {
	if r.Search == nil {
		return
	}
	if err := r.Search.RemoveProduct(ctx, id); err != nil {
		logging.FromContext(ctx).Error("search remove error", "error", err, "id", id)
	}
}

type ProductsArgs struct {
	Category  *string
	PriceMin  *float64
	PriceMax  *float64
	SortBy    *string
	SortOrder *string
	Page      *int32
	PageSize  *int32
}

func (r *Resolver) Products(ctx context.Context, args ProductsArgs) ([]*ProductResolver, error) {
	f := store.ProductFilter{
		Category: args.Category,
		PriceMin: args.PriceMin,
		PriceMax: args.PriceMax,
	}
	if args.SortBy != nil {
		f.SortBy = *args.SortBy
	}
	if args.SortOrder != nil {
		f.SortOrder = *args.SortOrder
	}
	if args.Page != nil {
		f.Page = *args.Page
	}
	if args.PageSize != nil {
		f.PageSize = *args.PageSize
	}

	products, err := r.Store.List(ctx, f)
	if err != nil {
		logging.FromContext(ctx).Error("products query failed", "error", err)
		return nil, errInternal()
	}
	return wrapProducts(products), nil
}

func (r *Resolver) Product(ctx context.Context, args struct{ ID graphql.ID }) (*ProductResolver, error) {
	product, err := r.Store.Get(ctx, string(args.ID))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrInvalidID) {
			return nil, errNotFound("Product not found")
		}
		logging.FromContext(ctx).Error("product query failed", "error", err, "id", args.ID)
		return nil, errInternal()
	}
	return &ProductResolver{p: *product}, nil
}

type SearchProductsArgs struct {
	Query    string
	Page     *int32
	PageSize *int32
}

func (r *Resolver) SearchProducts(ctx context.Context, args SearchProductsArgs) (*SearchResultResolver, error) {
	if r.Search == nil {
		return nil, &Error{Code: CodeInternal, Message: "search is not configured"}
	}

	var page, size int32
	if args.Page != nil {
		page = *args.Page
	}
	if args.PageSize != nil {
		size = *args.PageSize
	}
	from, limit := store.Calculate(page, size)

	total, products, err := r.Search.Search(ctx, args.Query, from, limit)
	if err != nil {
		logging.FromContext(ctx).Error("search query failed", "error", err)
		return nil, errInternal()
	}
	return &SearchResultResolver{total: int32(total), products: wrapProducts(products)}, nil
}

func (r *Resolver) Me(ctx context.Context) (*UserResolver, error) {
	raw := TokenFromContext(ctx)
	if raw == "" {
		return nil, errAuthenticationFailed()
	}
	userID, err := r.Tokens.Verify(raw)
	if err != nil {
		return nil, errAuthenticationFailed()
	}

	user, err := r.Users.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrInvalidID) {
			return nil, errNotFound("User not found")
		}
		logging.FromContext(ctx).Error("me query failed", "error", err)
		return nil, errInternal()
	}
	return &UserResolver{u: *user}, nil
}

type ProductInputArgs struct {
	Name        string
	Description string
	Price       float64
	Category    string
	Brand       string
	InStock     int32
}

func (args ProductInputArgs) toModel() models.Product {
	return models.Product{
		Name:        args.Name,
		Description: args.Description,
		Price:       args.Price,
		Category:    args.Category,
		Brand:       args.Brand,
		InStock:     args.InStock,
	}
}

func (r *Resolver) AddProduct(ctx context.Context, args ProductInputArgs) (*ProductResolver, error) {
	product := args.toModel()
	created, err := r.Store.Insert(ctx, &product)
	if err != nil {
		logging.FromContext(ctx).Error("addProduct failed", "error", err)
		return nil, errInternal()
	}

	r.publish(ctx, events.TopicProducts, created.ID.Hex(), map[string]interface{}{
		"type":      "product_created",
		"productID": created.ID.Hex(),
		"name":      created.Name,
	})
	r.indexProduct(ctx, created)

	return &ProductResolver{p: *created}, nil
}

type UpdateProductArgs struct {
	ID          graphql.ID
	Name        string
	Description string
	Price       float64
	Category    string
	Brand       string
	InStock     int32
}

func (r *Resolver) UpdateProduct(ctx context.Context, args UpdateProductArgs) (*ProductResolver, error) {
	product := models.Product{
		Name:        args.Name,
		Description: args.Description,
		Price:       args.Price,
		Category:    args.Category,
		Brand:       args.Brand,
		InStock:     args.InStock,
	}
	updated, err := r.Store.Replace(ctx, string(args.ID), &product)
	if err != nil {
		// An unknown id yields null, matching the store's replace-if-present
		// contract; a malformed id is an error.
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		if errors.Is(err, store.ErrInvalidID) {
			return nil, errNotFound("Product not found")
		}
		logging.FromContext(ctx).Error("updateProduct failed", "error", err, "id", args.ID)
		return nil, errInternal()
	}

	r.publish(ctx, events.TopicProducts, updated.ID.Hex(), map[string]interface{}{
		"type":      "product_updated",
		"productID": updated.ID.Hex(),
		"name":      updated.Name,
	})
	r.indexProduct(ctx, updated)

	return &ProductResolver{p: *updated}, nil
}

func (r *Resolver) DeleteProduct(ctx context.Context, args struct{ ID graphql.ID }) (*ProductResolver, error) {
	deleted, err := r.Store.Delete(ctx, string(args.ID))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrInvalidID) {
			return nil, errNotFound("Product not found")
		}
		logging.FromContext(ctx).Error("deleteProduct failed", "error", err, "id", args.ID)
		return nil, errInternal()
	}

	r.publish(ctx, events.TopicProducts, deleted.ID.Hex(), map[string]interface{}{
		"type":      "product_deleted",
		"productID": deleted.ID.Hex(),
	})
	r.removeFromIndex(ctx, deleted.ID.Hex())

	return &ProductResolver{p: *deleted}, nil
}

type CredentialsArgs struct {
	Username string
	Password string
}

func (r *Resolver) Signup(ctx context.Context, args CredentialsArgs) (*UserResolver, error) {
	hashed, err := hash.HashPassword(args.Password)
	if err != nil {
		logging.FromContext(ctx).Error("signup hash failed", "error", err)
		return nil, errInternal()
	}

	user := models.User{
		Username:     args.Username,
		PasswordHash: hashed,
		Role:         "user",
	}
	created, err := r.Users.Insert(ctx, &user)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateUsername) {
			return nil, errConflict("username already taken")
		}
		logging.FromContext(ctx).Error("signup failed", "error", err)
		return nil, errInternal()
	}

	r.publish(ctx, events.TopicUsers, created.ID.Hex(), map[string]interface{}{
		"type":     "user_registered",
		"userID":   created.ID.Hex(),
		"username": created.Username,
	})

	return &UserResolver{u: *created}, nil
}

func (r *Resolver) Login(ctx context.Context, args CredentialsArgs) (*AuthPayloadResolver, error) {
	user, err := r.Users.GetByUsername(ctx, args.Username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, errNotFound("User not found")
		}
		logging.FromContext(ctx).Error("login failed", "error", err)
		return nil, errInternal()
	}

	if !hash.CheckPassword(user.PasswordHash, args.Password) {
		return nil, errInvalidCredentials()
	}

	signed, err := r.Tokens.Sign(user.ID.Hex())
	if err != nil {
		logging.FromContext(ctx).Error("login sign failed", "error", err)
		return nil, errInternal()
	}

	r.publish(ctx, events.TopicUsers, user.ID.Hex(), map[string]interface{}{
		"type":     "user_logged_in",
		"userID":   user.ID.Hex(),
		"username": user.Username,
	})

	return &AuthPayloadResolver{token: signed, user: &UserResolver{u: *user}}, nil
}
