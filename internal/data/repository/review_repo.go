package repository

import (
	"context"
	"fmt"
	"time"

	"bistro-boss/internal/data/entity"
	"bistro-boss/pkg/database"
	"bistro-boss/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type ReviewRepository interface {
	FindAll(ctx context.Context) ([]*entity.Review, error)
	Create(ctx context.Context, review *entity.Review) (*mongo.InsertOneResult, error)
}

type reviewRepository struct {
	col     *mongo.Collection
	timeout time.Duration
	log     *zap.Logger
}

func NewReviewRepository(db *database.DB, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		col:     db.Collection(entity.CollectionReviews),
		timeout: db.Timeout(),
		log:     log,
	}
}

func (rr *reviewRepository) FindAll(ctx context.Context) (reviews []*entity.Review, err error) {
	defer metrics.ObserveStore(entity.CollectionReviews, "find", time.Now(), &err)
	ctx, cancel := withTimeout(ctx, rr.timeout)
	defer cancel()

	cur, err := rr.col.Find(ctx, bson.D{})
	if err != nil {
		rr.log.Error("Failed to list reviews", zap.Error(err))
		return nil, fmt.Errorf("find reviews: %w", err)
	}

	reviews = []*entity.Review{}
	if err = cur.All(ctx, &reviews); err != nil {
		rr.log.Error("Failed to decode reviews", zap.Error(err))
		return nil, fmt.Errorf("decode reviews: %w", err)
	}

	return reviews, nil
}

func (rr *reviewRepository) Create(ctx context.Context, review *entity.Review) (res *mongo.InsertOneResult, err error) {
	defer metrics.ObserveStore(entity.CollectionReviews, "insert", time.Now(), &err)
	ctx, cancel := withTimeout(ctx, rr.timeout)
	defer cancel()

	res, err = rr.col.InsertOne(ctx, review)
	if err != nil {
		rr.log.Error("Failed to create review", zap.Error(err), zap.String("name", review.Name))
		return nil, fmt.Errorf("create review: %w", err)
	}

	return res, nil
}
