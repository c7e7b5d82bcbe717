package usecase

import (
	"context"
	"fmt"

	"bistro-boss/internal/data/entity"
	"bistro-boss/internal/data/repository"
	"bistro-boss/internal/dto/request"
	"bistro-boss/internal/dto/response"
	"bistro-boss/pkg/utils"

	"go.uber.org/zap"
)

type CartService interface {
	GetCart(ctx context.Context, email string) ([]*entity.CartItem, error)
	AddToCart(ctx context.Context, req *request.AddCartRequest) (*response.InsertResult, error)
	RemoveFromCart(ctx context.Context, id string) (*response.DeleteResult, error)
}

type cartService struct {
	cartRepo repository.CartRepository
	log      *zap.Logger
}

func NewCartService(cartRepo repository.CartRepository, log *zap.Logger) CartService {
	return &cartService{
		cartRepo: cartRepo,
		log:      log,
	}
}

// GetCart requires an owner email; an unfiltered listing would expose every
// user's cart.
func (s *cartService) GetCart(ctx context.Context, email string) ([]*entity.CartItem, error) {
	if email == "" {
		return nil, &ValidationError{Fields: map[string]string{"email": "This field is required"}}
	}

	items, err := s.cartRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}
	return items, nil
}

func (s *cartService) AddToCart(ctx context.Context, req *request.AddCartRequest) (*response.InsertResult, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Add to cart validation failed", zap.Error(err))
		return nil, err
	}

	item := req.NewItem
	res, err := s.cartRepo.Create(ctx, &entity.CartItem{
		MenuID: item.MenuID,
		Email:  item.Email,
		Name:   item.Name,
		Image:  item.Image,
		Price:  item.Price,
		Extra:  item.Extra,
	})
	if err != nil {
		return nil, fmt.Errorf("add to cart: %w", err)
	}

	s.log.Debug("Cart item added",
		zap.String("email", item.Email),
		zap.String("menu_id", item.MenuID),
		zap.String("request_id", utils.GetRequestIDFromContext(ctx)))
	return response.FromInsert(res), nil
}

func (s *cartService) RemoveFromCart(ctx context.Context, id string) (*response.DeleteResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	res, err := s.cartRepo.Delete(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("remove cart item: %w", err)
	}
	return response.FromDelete(res), nil
}
