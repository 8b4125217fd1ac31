package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/warungkode/accounts-backend/config"
	"github.com/warungkode/accounts-backend/internal/application"
	"github.com/warungkode/accounts-backend/internal/domain/entity"
	"github.com/warungkode/accounts-backend/internal/domain/repository"
	pginfra "github.com/warungkode/accounts-backend/internal/infrastructure/postgres"
	"github.com/warungkode/accounts-backend/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to connect: %v", err)
	}
	defer pool.Close()

	email := application.NormalizeEmail("demo@example.com")
	password := "password123"

	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	u := &entity.User{
		Name:         "Demo User",
		Email:        email,
		PasswordHash: hash,
		Gender:       "other",
	}
	repo := pginfra.NewUserRepository(pool)
	if err := repo.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			fmt.Printf("demo user already seeded: email=%s\n", email)
			return
		}
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", u.ID, u.Email, password)
}
