package usecase

import (
	"context"
	"fmt"

	"bistro-boss/internal/data/entity"
	"bistro-boss/internal/data/repository"
	"bistro-boss/internal/dto/request"
	"bistro-boss/internal/dto/response"

	"go.uber.org/zap"
)

type ReviewService interface {
	GetReviews(ctx context.Context) ([]*entity.Review, error)
	CreateReview(ctx context.Context, req *request.CreateReviewRequest) (*response.InsertResult, error)
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
	log        *zap.Logger
}

func NewReviewService(reviewRepo repository.ReviewRepository, log *zap.Logger) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		log:        log,
	}
}

func (s *reviewService) GetReviews(ctx context.Context) ([]*entity.Review, error) {
	reviews, err := s.reviewRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get reviews: %w", err)
	}
	return reviews, nil
}

func (s *reviewService) CreateReview(ctx context.Context, req *request.CreateReviewRequest) (*response.InsertResult, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Create review validation failed", zap.Error(err))
		return nil, err
	}

	res, err := s.reviewRepo.Create(ctx, &entity.Review{
		Name:    req.Name,
		Details: req.Details,
		Rating:  req.Rating,
		Extra:   req.Extra,
	})
	if err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	return response.FromInsert(res), nil
}
