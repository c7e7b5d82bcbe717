package memory

import (
	"context"

	"bistro-boss/internal/data/entity"
	"bistro-boss/internal/data/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type reviewRepository struct {
	reviews *collection[entity.Review]
}

func NewReviewRepository() repository.ReviewRepository {
	return &reviewRepository{reviews: newCollection[entity.Review]()}
}

func (r *reviewRepository) FindAll(_ context.Context) ([]*entity.Review, error) {
	r.reviews.mu.RLock()
	defer r.reviews.mu.RUnlock()

	reviews := []*entity.Review{}
	r.reviews.each(func(rv entity.Review) bool {
		reviews = append(reviews, &rv)
		return true
	})
	return reviews, nil
}

func (r *reviewRepository) Create(_ context.Context, review *entity.Review) (*mongo.InsertOneResult, error) {
	r.reviews.mu.Lock()
	defer r.reviews.mu.Unlock()

	doc := *review
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	r.reviews.insert(doc.ID, doc)

	return &mongo.InsertOneResult{InsertedID: doc.ID}, nil
}
