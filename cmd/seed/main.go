package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/inkleapp/inkle-backend/internal/config"
	"github.com/inkleapp/inkle-backend/internal/database"
	"github.com/inkleapp/inkle-backend/internal/logging"
	"github.com/inkleapp/inkle-backend/internal/models"
	"github.com/inkleapp/inkle-backend/internal/services"
)

const (
	seedUsers        = 20
	seedPostsPerUser = 3
	seedPassword     = "password123"
)

// Seeds a local database with an owner account and a small social graph
// for development.
func main() {
	logging.Setup()
	_ = godotenv.Load()

	cfg := config.Load()
	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("failed to hash seed password", "error", err)
		os.Exit(1)
	}

	owner := models.User{
		ID:       uuid.New(),
		Username: "owner",
		Email:    "owner@inkle.local",
		Password: string(hash),
		Role:     models.RoleOwner,
	}
	if err := database.DB.FirstOrCreate(&owner, models.User{Username: "owner"}).Error; err != nil {
		slog.Error("failed to create owner", "error", err)
		os.Exit(1)
	}

	visibility := services.NewVisibilityService(database.DB)
	activities := services.NewActivityService(database.DB)
	relationships := services.NewRelationshipService(database.DB, visibility, activities)
	posts := services.NewPostService(database.DB, visibility, activities)

	users := make([]models.User, 0, seedUsers)
	for i := 0; i < seedUsers; i++ {
		username := strings.ToLower(gofakeit.Username())
		user := models.User{
			ID:       uuid.New(),
			Username: username,
			Email:    username + "@" + gofakeit.DomainName(),
			Password: string(hash),
			Role:     models.RoleUser,
		}
		if err := database.DB.Create(&user).Error; err != nil {
			slog.Warn("skipping user", "username", username, "error", err)
			continue
		}
		users = append(users, user)
	}

	created := 0
	for _, user := range users {
		for i := 0; i < seedPostsPerUser; i++ {
			if _, err := posts.Create(user.ID, gofakeit.Sentence(12)); err != nil {
				slog.Warn("failed to create post", "user", user.Username, "error", err)
				continue
			}
			created++
		}
	}

	followed := 0
	for _, user := range users {
		for i := 0; i < 3; i++ {
			other := users[gofakeit.Number(0, len(users)-1)]
			if other.ID == user.ID {
				continue
			}
			if _, err := relationships.Follow(user.ID, other.ID); err == nil {
				followed++
			}
		}
	}

	slog.Info("seed complete",
		"users", len(users),
		"posts", created,
		"follows", followed,
		"owner_login", "owner / "+seedPassword)
}
