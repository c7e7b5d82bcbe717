package usecase

import (
	"context"
	"errors"
	"fmt"

	"bistro-boss/internal/data/entity"
	"bistro-boss/internal/data/repository"
	"bistro-boss/internal/dto/request"
	"bistro-boss/internal/dto/response"

	"go.uber.org/zap"
)

type UserService interface {
	GetAllUsers(ctx context.Context) ([]*entity.User, error)
	CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.InsertResult, error)
	CheckAdmin(ctx context.Context, callerEmail, email string) (*response.AdminStatusResponse, error)
	PromoteToAdmin(ctx context.Context, id string) (*response.UpdateResult, error)
	DeleteUser(ctx context.Context, id string) (*response.DeleteResult, error)
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log,
	}
}

func (s *userService) GetAllUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all users: %w", err)
	}
	return users, nil
}

// CreateUser inserts the user unless the email is already registered, in
// which case it returns the "User Already Exist" no-op result. Uniqueness is
// decided by the store's unique index, not by a prior lookup, so concurrent
// calls for one email still produce a single record.
func (s *userService) CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.InsertResult, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Create user validation failed", zap.Error(err))
		return nil, err
	}

	user := &entity.User{
		Name:  req.Name,
		Email: req.Email,
		Photo: req.Photo,
		Role:  entity.RoleNone,
		Extra: req.Extra,
	}

	res, err := s.userRepo.Create(ctx, user)
	if errors.Is(err, repository.ErrDuplicateKey) {
		s.log.Info("User already exists", zap.String("email", req.Email))
		return response.UserAlreadyExists(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("User created", zap.String("email", req.Email))
	return response.FromInsert(res), nil
}

// CheckAdmin reports the admin status of email, which must be the caller's own.
func (s *userService) CheckAdmin(ctx context.Context, callerEmail, email string) (*response.AdminStatusResponse, error) {
	if callerEmail == "" || email != callerEmail {
		return nil, fmt.Errorf("%w: %s asked about %s", ErrNotOwner, callerEmail, email)
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check admin %s: %w", email, err)
	}

	return &response.AdminStatusResponse{Admin: user.IsAdmin()}, nil
}

func (s *userService) PromoteToAdmin(ctx context.Context, id string) (*response.UpdateResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	res, err := s.userRepo.UpdateRole(ctx, oid, entity.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("promote user: %w", err)
	}

	s.log.Info("User promoted to admin",
		zap.String("user_id", id),
		zap.Int64("matched", res.MatchedCount))
	return response.FromUpdate(res), nil
}

func (s *userService) DeleteUser(ctx context.Context, id string) (*response.DeleteResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	res, err := s.userRepo.Delete(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("delete user: %w", err)
	}

	return response.FromDelete(res), nil
}
