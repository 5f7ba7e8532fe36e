package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/crmbase/lead-manager/internal/config"
	"github.com/crmbase/lead-manager/internal/entity"
	"github.com/crmbase/lead-manager/internal/infra/auth"
	"github.com/crmbase/lead-manager/internal/infra/database"
)

// Seeds the bootstrap admin account. Idempotent: does nothing when an
// admin already exists.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	users := database.NewUserRepository(db)
	ctx := context.Background()

	admins, err := users.CountByRole(ctx, entity.RoleAdmin)
	if err != nil {
		log.Fatal(err)
	}
	if admins > 0 {
		logger.Info("admin user already exists, skipping creation")
		return
	}

	email := envOr("ADMIN_EMAIL", "admin@example.com")
	password := envOr("ADMIN_PASSWORD", "admin123")

	hash, err := auth.HashPassword(password, auth.AdminCost)
	if err != nil {
		log.Fatal(err)
	}

	admin := &entity.User{
		ID:        uuid.New().String(),
		Name:      envOr("ADMIN_NAME", "Admin User"),
		Email:     email,
		Password:  hash,
		Role:      entity.RoleAdmin,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := users.Create(ctx, admin); err != nil {
		log.Fatal(err)
	}

	logger.Info("admin user created", "email", email)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
