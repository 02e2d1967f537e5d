package database

import (
	"context"
	"fmt"

	"github.com/swoleapp/swole-api/internal/config"
	"github.com/swoleapp/swole-api/internal/repository"
	"github.com/swoleapp/swole-api/internal/schemas"
	"github.com/swoleapp/swole-api/internal/service"
)

// EnsureSeedUser creates the configured default user if it is missing.
func EnsureSeedUser(ctx context.Context, cfg *config.Config, users *repository.UserRepository, auth *service.AuthService) error {
	existing, err := users.GetByUsername(ctx, cfg.SeedUsername)
	if err != nil {
		return fmt.Errorf("failed to look up seed user: %w", err)
	}
	if existing != nil {
		return nil
	}

	_, err = auth.Register(ctx, []schemas.UserCreate{
		{Username: cfg.SeedUsername, Password: cfg.SeedPassword},
	})
	if err != nil {
		return fmt.Errorf("failed to create seed user: %w", err)
	}
	return nil
}
