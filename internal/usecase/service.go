package usecase

import (
	"bistro-boss/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Auth      AuthService
	User      UserService
	Privilege PrivilegeChecker
	Menu      MenuService
	Review    ReviewService
	Cart      CartService
}

func NewService(repo *repository.Repository, issuer TokenIssuer, log *zap.Logger) *Service {
	return &Service{
		Auth:      NewAuthService(issuer, log),
		User:      NewUserService(repo.User, log),
		Privilege: NewPrivilegeChecker(repo.User, log),
		Menu:      NewMenuService(repo.Menu, log),
		Review:    NewReviewService(repo.Review, log),
		Cart:      NewCartService(repo.Cart, log),
	}
}
