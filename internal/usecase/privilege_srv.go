package usecase

import (
	"context"
	"fmt"

	"bistro-boss/internal/data/repository"

	"go.uber.org/zap"
)

// PrivilegeChecker decides whether an identity currently holds admin privilege.
//
// The store-backed implementation reads the user record on every call, so a
// demoted or deleted admin loses access on the very next request at the cost
// of one store lookup per gated request. An implementation that caches the
// answer or trusts a role claim in the token would save that lookup but keep
// honouring a revoked role until the cache entry or token expires.
type PrivilegeChecker interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

type storePrivilegeChecker struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewPrivilegeChecker(userRepo repository.UserRepository, log *zap.Logger) PrivilegeChecker {
	return &storePrivilegeChecker{
		userRepo: userRepo,
		log:      log,
	}
}

func (c *storePrivilegeChecker) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := c.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("look up user %s: %w", email, err)
	}

	if !user.IsAdmin() {
		c.log.Debug("Privilege check denied", zap.String("email", email), zap.Bool("exists", user != nil))
		return false, nil
	}
	return true, nil
}
