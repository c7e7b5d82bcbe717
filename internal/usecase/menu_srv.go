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

type MenuService interface {
	// GetMenu lists every item, or only those whose category equals category
	// exactly when it is non-empty.
	GetMenu(ctx context.Context, category string) ([]*entity.MenuItem, error)
	// GetMenuItem returns nil without error when the item does not exist.
	GetMenuItem(ctx context.Context, id string) (*entity.MenuItem, error)
	CreateMenuItem(ctx context.Context, req *request.CreateMenuRequest) (*response.InsertResult, error)
	UpdateMenuItem(ctx context.Context, id string, req *request.UpdateMenuRequest) (*response.UpdateResult, error)
	DeleteMenuItem(ctx context.Context, id string) (*response.DeleteResult, error)
}

type menuService struct {
	menuRepo repository.MenuRepository
	log      *zap.Logger
}

func NewMenuService(menuRepo repository.MenuRepository, log *zap.Logger) MenuService {
	return &menuService{
		menuRepo: menuRepo,
		log:      log,
	}
}

func (s *menuService) GetMenu(ctx context.Context, category string) ([]*entity.MenuItem, error) {
	items, err := s.menuRepo.FindAll(ctx, repository.MenuFilter{Category: category})
	if err != nil {
		return nil, fmt.Errorf("get menu: %w", err)
	}
	return items, nil
}

func (s *menuService) GetMenuItem(ctx context.Context, id string) (*entity.MenuItem, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	item, err := s.menuRepo.FindByID(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("get menu item: %w", err)
	}
	return item, nil
}

func (s *menuService) CreateMenuItem(ctx context.Context, req *request.CreateMenuRequest) (*response.InsertResult, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Create menu item validation failed", zap.Error(err))
		return nil, err
	}

	res, err := s.menuRepo.Create(ctx, &entity.MenuItem{
		Name:     req.Name,
		Recipe:   req.Recipe,
		Image:    req.Image,
		Category: req.Category,
		Price:    req.Price,
		Extra:    req.Extra,
	})
	if err != nil {
		return nil, fmt.Errorf("create menu item: %w", err)
	}

	s.log.Info("Menu item created", zap.String("name", req.Name), zap.String("category", req.Category))
	return response.FromInsert(res), nil
}

func (s *menuService) UpdateMenuItem(ctx context.Context, id string, req *request.UpdateMenuRequest) (*response.UpdateResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	if err := validate(req); err != nil {
		s.log.Warn("Update menu item validation failed", zap.Error(err))
		return nil, err
	}

	patch := entity.MenuItemPatch{
		Name:     req.Name,
		Recipe:   req.Recipe,
		Image:    req.Image,
		Category: req.Category,
		Price:    req.Price,
		Extra:    req.Extra,
	}
	if patch.IsEmpty() {
		return nil, ErrNothingToUpdate
	}

	res, err := s.menuRepo.Update(ctx, oid, patch)
	if err != nil {
		return nil, fmt.Errorf("update menu item: %w", err)
	}
	return response.FromUpdate(res), nil
}

func (s *menuService) DeleteMenuItem(ctx context.Context, id string) (*response.DeleteResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	res, err := s.menuRepo.Delete(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("delete menu item: %w", err)
	}

	s.log.Info("Menu item deleted", zap.String("id", id), zap.Int64("deleted", res.DeletedCount))
	return response.FromDelete(res), nil
}
