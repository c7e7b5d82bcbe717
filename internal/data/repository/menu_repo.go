package repository

import (
	"context"
	"errors"
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

// MenuFilter narrows FindAll. Category matches exactly and case-sensitively;
// an empty Category matches every item.
type MenuFilter struct {
	Category string
}

type MenuRepository interface {
	FindAll(ctx context.Context, filter MenuFilter) ([]*entity.MenuItem, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.MenuItem, error)
	Create(ctx context.Context, item *entity.MenuItem) (*mongo.InsertOneResult, error)
	Update(ctx context.Context, id primitive.ObjectID, patch entity.MenuItemPatch) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}

type menuRepository struct {
	col     *mongo.Collection
	timeout time.Duration
	log     *zap.Logger
}

func NewMenuRepository(db *database.DB, log *zap.Logger) MenuRepository {
	return &menuRepository{
		col:     db.Collection(entity.CollectionMenu),
		timeout: db.Timeout(),
		log:     log,
	}
}

func (mr *menuRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx, mr.timeout)
	defer cancel()

	_, err := mr.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "category", Value: 1}},
		Options: options.Index().SetName("category"),
	})
	if err != nil {
		return fmt.Errorf("create menu category index: %w", err)
	}
	return nil
}

func (mr *menuRepository) FindAll(ctx context.Context, filter MenuFilter) (items []*entity.MenuItem, err error) {
	defer metrics.ObserveStore(entity.CollectionMenu, "find", time.Now(), &err)
	ctx, cancel := withTimeout(ctx, mr.timeout)
	defer cancel()

	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}

	cur, err := mr.col.Find(ctx, query)
	if err != nil {
		mr.log.Error("Failed to list menu", zap.Error(err), zap.String("category", filter.Category))
		return nil, fmt.Errorf("find menu items: %w", err)
	}

	items = []*entity.MenuItem{}
	if err = cur.All(ctx, &items); err != nil {
		mr.log.Error("Failed to decode menu items", zap.Error(err))
		return nil, fmt.Errorf("decode menu items: %w", err)
	}

	return items, nil
}

// FindByID returns nil, nil when the item does not exist.
func (mr *menuRepository) FindByID(ctx context.Context, id primitive.ObjectID) (item *entity.MenuItem, err error) {
	defer metrics.ObserveStore(entity.CollectionMenu, "find_one", time.Now(), &err)
	ctx, cancel := withTimeout(ctx, mr.timeout)
	defer cancel()

	var found entity.MenuItem
	err = mr.col.FindOne(ctx, bson.M{"_id": id}).Decode(&found)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		mr.log.Error("Failed to find menu item", zap.Error(err), zap.String("id", id.Hex()))
		return nil, fmt.Errorf("find menu item %s: %w", id.Hex(), err)
	}

	return &found, nil
}

func (mr *menuRepository) Create(ctx context.Context, item *entity.MenuItem) (res *mongo.InsertOneResult, err error) {
	defer metrics.ObserveStore(entity.CollectionMenu, "insert", time.Now(), &err)
	ctx, cancel := withTimeout(ctx, mr.timeout)
	defer cancel()

	res, err = mr.col.InsertOne(ctx, item)
	if err != nil {
		mr.log.Error("Failed to create menu item", zap.Error(err), zap.String("name", item.Name))
		return nil, fmt.Errorf("create menu item %s: %w", item.Name, err)
	}

	return res, nil
}

// Update $sets only the fields present in patch.
func (mr *menuRepository) Update(ctx context.Context, id primitive.ObjectID, patch entity.MenuItemPatch) (res *mongo.UpdateResult, err error) {
	defer metrics.ObserveStore(entity.CollectionMenu, "update", time.Now(), &err)
	ctx, cancel := withTimeout(ctx, mr.timeout)
	defer cancel()

	res, err = mr.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": patch})
	if err != nil {
		mr.log.Error("Failed to update menu item", zap.Error(err), zap.String("id", id.Hex()))
		return nil, fmt.Errorf("update menu item %s: %w", id.Hex(), err)
	}

	return res, nil
}

func (mr *menuRepository) Delete(ctx context.Context, id primitive.ObjectID) (res *mongo.DeleteResult, err error) {
	defer metrics.ObserveStore(entity.CollectionMenu, "delete", time.Now(), &err)
	ctx, cancel := withTimeout(ctx, mr.timeout)
	defer cancel()

	res, err = mr.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		mr.log.Error("Failed to delete menu item", zap.Error(err), zap.String("id", id.Hex()))
		return nil, fmt.Errorf("delete menu item %s: %w", id.Hex(), err)
	}

	return res, nil
}
