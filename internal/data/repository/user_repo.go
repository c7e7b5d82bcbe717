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

type UserRepository interface {
	// Create returns ErrDuplicateKey when the email is already registered.
	Create(ctx context.Context, user *entity.User) (*mongo.InsertOneResult, error)
	FindAll(ctx context.Context) ([]*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	UpdateRole(ctx context.Context, id primitive.ObjectID, role entity.UserRole) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}

type userRepository struct {
	col     *mongo.Collection
	timeout time.Duration
	log     *zap.Logger
}

func NewUserRepository(db *database.DB, log *zap.Logger) UserRepository {
	return &userRepository{
		col:     db.Collection(entity.CollectionUsers),
		timeout: db.Timeout(),
		log:     log,
	}
}

// EnsureIndexes creates the unique email index that makes user creation idempotent.
func (ur *userRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx, ur.timeout)
	defer cancel()

	_, err := ur.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique"),
	})
	if err != nil {
		return fmt.Errorf("create users email index: %w", err)
	}
	return nil
}

func (ur *userRepository) Create(ctx context.Context, user *entity.User) (res *mongo.InsertOneResult, err error) {
	defer metrics.ObserveStore(entity.CollectionUsers, "insert", time.Now(), &err)
	ctx, cancel := withTimeout(ctx, ur.timeout)
	defer cancel()

	res, err = ur.col.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return nil, fmt.Errorf("create user %s: %w", user.Email, ErrDuplicateKey)
	}
	if err != nil {
		ur.log.Error("Failed to create user", zap.Error(err), zap.String("email", user.Email))
		return nil, fmt.Errorf("create user %s: %w", user.Email, err)
	}

	return res, nil
}

func (ur *userRepository) FindAll(ctx context.Context) (users []*entity.User, err error) {
	defer metrics.ObserveStore(entity.CollectionUsers, "find", time.Now(), &err)
	ctx, cancel := withTimeout(ctx, ur.timeout)
	defer cancel()

	cur, err := ur.col.Find(ctx, bson.D{})
	if err != nil {
		ur.log.Error("Failed to get all users", zap.Error(err))
		return nil, fmt.Errorf("find all users: %w", err)
	}

	users = []*entity.User{}
	if err = cur.All(ctx, &users); err != nil {
		ur.log.Error("Failed to decode users", zap.Error(err))
		return nil, fmt.Errorf("decode users: %w", err)
	}

	return users, nil
}

// FindByEmail returns nil, nil when no user has the email.
func (ur *userRepository) FindByEmail(ctx context.Context, email string) (user *entity.User, err error) {
	defer metrics.ObserveStore(entity.CollectionUsers, "find_one", time.Now(), &err)
	ctx, cancel := withTimeout(ctx, ur.timeout)
	defer cancel()

	var found entity.User
	err = ur.col.FindOne(ctx, bson.M{"email": email}).Decode(&found)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by email", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("find user by email %s: %w", email, err)
	}

	return &found, nil
}

func (ur *userRepository) UpdateRole(ctx context.Context, id primitive.ObjectID, role entity.UserRole) (res *mongo.UpdateResult, err error) {
	defer metrics.ObserveStore(entity.CollectionUsers, "update", time.Now(), &err)
	ctx, cancel := withTimeout(ctx, ur.timeout)
	defer cancel()

	res, err = ur.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		ur.log.Error("Failed to update user role", zap.Error(err), zap.String("user_id", id.Hex()))
		return nil, fmt.Errorf("update role of user %s: %w", id.Hex(), err)
	}

	return res, nil
}

func (ur *userRepository) Delete(ctx context.Context, id primitive.ObjectID) (res *mongo.DeleteResult, err error) {
	defer metrics.ObserveStore(entity.CollectionUsers, "delete", time.Now(), &err)
	ctx, cancel := withTimeout(ctx, ur.timeout)
	defer cancel()

	res, err = ur.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		ur.log.Error("Failed to delete user", zap.Error(err), zap.String("user_id", id.Hex()))
		return nil, fmt.Errorf("delete user %s: %w", id.Hex(), err)
	}

	ur.log.Info("User deleted", zap.String("user_id", id.Hex()), zap.Int64("deleted", res.DeletedCount))
	return res, nil
}
