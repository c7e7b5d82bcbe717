package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"bistro-boss/internal/data/repository"
	"bistro-boss/internal/data/repository/memory"
	"bistro-boss/pkg/database"
	"bistro-boss/pkg/token"
	"bistro-boss/pkg/utils"

	"go.uber.org/zap"
)

const driverMemory = "memory"

// runtime is everything a command needs once config, logging and the store are up.
type runtime struct {
	config *utils.Config
	logger *zap.Logger
	db     *database.DB
	repo   *repository.Repository
}

func loadRuntime() (*runtime, error) {
	config, err := utils.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using default production logger.", err)
		logger, _ = zap.NewProduction()
	}

	return &runtime{config: config, logger: logger}, nil
}

// openStore connects the configured store and builds the repositories on it.
func (rt *runtime) openStore() error {
	if rt.config.Database.Driver == driverMemory {
		rt.logger.Warn("Using in-memory store, data is lost on exit")
		rt.repo = memory.NewRepository()
		return nil
	}

	db, err := database.InitDB(rt.config.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	rt.db = db
	rt.repo = repository.NewRepository(db, rt.logger)

	rt.logger.Info("Database connected successfully", zap.String("database", rt.config.Database.Name))
	return nil
}

// ensureIndexes is a no-op for the in-memory store.
func (rt *runtime) ensureIndexes(ctx context.Context) error {
	if rt.db == nil {
		return nil
	}
	return rt.repo.EnsureIndexes(ctx)
}

func (rt *runtime) issuer() (*token.Issuer, error) {
	ttl := time.Duration(rt.config.Token.ExpiryHours) * time.Hour
	issuer, err := token.NewIssuer(rt.config.Token.Secret, ttl)
	if errors.Is(err, token.ErrConfiguration) {
		return nil, fmt.Errorf("ACCESS_TOKEN_SECRET must be set: %w", err)
	}
	return issuer, err
}

func (rt *runtime) close() {
	if rt.db != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rt.db.Close(ctx); err != nil {
			rt.logger.Warn("Failed to close database", zap.Error(err))
		}
	}
	_ = rt.logger.Sync()
}
