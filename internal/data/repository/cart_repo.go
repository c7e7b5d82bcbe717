package repository

import (
	"context"
	"fmt"
	"time"

	"bistro-boss/internal/data/entity"
	"bistro-boss/pkg/database"
	"bistro-boss/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type CartRepository interface {
	// FindByEmail only ever returns items owned by email.
	FindByEmail(ctx context.Context, email string) ([]*entity.CartItem, error)
	Create(ctx context.Context, item *entity.CartItem) (*mongo.InsertOneResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}

type cartRepository struct {
	col     *mongo.Collection
	timeout time.Duration
	log     *zap.Logger
}

func NewCartRepository(db *database.DB, log *zap.Logger) CartRepository {
	return &cartRepository{
		col:     db.Collection(entity.CollectionCarts),
		timeout: db.Timeout(),
		log:     log,
	}
}

func (cr *cartRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx, cr.timeout)
	defer cancel()

	_, err := cr.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("owner_email"),
	})
	if err != nil {
		return fmt.Errorf("create carts email index: %w", err)
	}
	return nil
}

func (cr *cartRepository) FindByEmail(ctx context.Context, email string) (items []*entity.CartItem, err error) {
	defer metrics.ObserveStore(entity.CollectionCarts, "find", time.Now(), &err)
	ctx, cancel := withTimeout(ctx, cr.timeout)
	defer cancel()

	cur, err := cr.col.Find(ctx, bson.M{"email": email})
	if err != nil {
		cr.log.Error("Failed to list cart", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("find cart items of %s: %w", email, err)
	}

	items = []*entity.CartItem{}
	if err = cur.All(ctx, &items); err != nil {
		cr.log.Error("Failed to decode cart items", zap.Error(err))
		return nil, fmt.Errorf("decode cart items: %w", err)
	}

	return items, nil
}

func (cr *cartRepository) Create(ctx context.Context, item *entity.CartItem) (res *mongo.InsertOneResult, err error) {
	defer metrics.ObserveStore(entity.CollectionCarts, "insert", time.Now(), &err)
	ctx, cancel := withTimeout(ctx, cr.timeout)
	defer cancel()

	res, err = cr.col.InsertOne(ctx, item)
	if err != nil {
		cr.log.Error("Failed to add cart item", zap.Error(err), zap.String("email", item.Email))
		return nil, fmt.Errorf("create cart item for %s: %w", item.Email, err)
	}

	return res, nil
}

func (cr *cartRepository) Delete(ctx context.Context, id primitive.ObjectID) (res *mongo.DeleteResult, err error) {
	defer metrics.ObserveStore(entity.CollectionCarts, "delete", time.Now(), &err)
	ctx, cancel := withTimeout(ctx, cr.timeout)
	defer cancel()

	res, err = cr.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		cr.log.Error("Failed to delete cart item", zap.Error(err), zap.String("id", id.Hex()))
		return nil, fmt.Errorf("delete cart item %s: %w", id.Hex(), err)
	}

	return res, nil
}
