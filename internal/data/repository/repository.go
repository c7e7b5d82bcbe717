package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bistro-boss/pkg/database"

	"go.uber.org/zap"
)

// ErrDuplicateKey is returned when an insert violates a unique index.
var ErrDuplicateKey = errors.New("duplicate key")

type Repository struct {
	User   UserRepository
	Menu   MenuRepository
	Review ReviewRepository
	Cart   CartRepository
}

// indexer is implemented by repositories that own store indexes.
type indexer interface {
	EnsureIndexes(ctx context.Context) error
}

func NewRepository(db *database.DB, log *zap.Logger) *Repository {
	return &Repository{
		User:   NewUserRepository(db, log),
		Menu:   NewMenuRepository(db, log),
		Review: NewReviewRepository(db, log),
		Cart:   NewCartRepository(db, log),
	}
}

// EnsureIndexes creates the indexes every repository depends on. It is safe
// to run repeatedly.
func (r *Repository) EnsureIndexes(ctx context.Context) error {
	for name, repo := range map[string]any{"users": r.User, "menu": r.Menu, "carts": r.Cart} {
		ix, ok := repo.(indexer)
		if !ok {
			continue
		}
		if err := ix.EnsureIndexes(ctx); err != nil {
			return fmt.Errorf("ensure %s indexes: %w", name, err)
		}
	}
	return nil
}

// withTimeout bounds a single store call.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
