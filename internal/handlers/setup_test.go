package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/inkleapp/inkle-backend/internal/config"
	"github.com/inkleapp/inkle-backend/internal/database"
	"github.com/inkleapp/inkle-backend/internal/dto"
	"github.com/inkleapp/inkle-backend/internal/handlers"
	"github.com/inkleapp/inkle-backend/internal/models"
	"github.com/inkleapp/inkle-backend/internal/routes"
	"github.com/inkleapp/inkle-backend/internal/services"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testAdminToken = "operator-test-token"

// setupTestApp wires the full route stack against an in-memory SQLite
// database, same shape as cmd/server.
func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Like{},
		&models.Follow{},
		&models.Block{},
		&models.Activity{},
		&models.RefreshToken{},
		&models.Report{},
		&models.SystemLog{},
	))

	// The health endpoint pings through the package global.
	database.DB = db
	t.Cleanup(func() { database.DB = nil })

	cfg := &config.Config{
		JWTSecret:        "test-secret-key",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: time.Hour,
		AdminToken:       testAdminToken,
		FeedDefaultLimit: 50,
		FeedMaxLimit:     100,
	}

	visibility := services.NewVisibilityService(db)
	activities := services.NewActivityService(db)
	authService := services.NewAuthService(db, cfg)
	relationships := services.NewRelationshipService(db, visibility, activities)
	posts := services.NewPostService(db, visibility, activities)
	admin := services.NewAdminService(db, activities)
	moderation := services.NewModerationService(db)

	app := fiber.New()
	routes.Setup(app, cfg, db,
		handlers.NewAuthHandler(authService),
		handlers.NewUserHandler(authService, relationships, visibility),
		handlers.NewPostHandler(posts, authService, cfg),
		handlers.NewActivityHandler(activities, cfg),
		handlers.NewReportHandler(moderation),
		handlers.NewAdminHandler(admin, authService, posts, moderation),
		handlers.NewHealthHandler(),
	)
	return app, db
}

type request struct {
	method     string
	path       string
	body       any
	token      string
	adminToken string
}

func perform(t *testing.T, app *fiber.App, req request) *http.Response {
	t.Helper()

	var body io.Reader
	if req.body != nil {
		b, err := json.Marshal(req.body)
		require.NoError(t, err)
		body = bytes.NewReader(b)
	}

	httpReq := httptest.NewRequest(req.method, req.path, body)
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.token)
	}
	if req.adminToken != "" {
		httpReq.Header.Set("X-Admin-Token", req.adminToken)
	}

	resp, err := app.Test(httpReq, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

// signup registers a user through the API and returns the auth response.
func signup(t *testing.T, app *fiber.App, username string) dto.AuthResponse {
	t.Helper()
	resp := perform(t, app, request{
		method: fiber.MethodPost,
		path:   "/api/auth/signup",
		body: dto.SignupRequest{
			Username: username,
			Email:    username + "@example.com",
			Password: "correct-horse",
		},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var auth dto.AuthResponse
	decode(t, resp, &auth)
	return auth
}

func promoteToRole(t *testing.T, db *gorm.DB, username string, role models.Role) {
	t.Helper()
	require.NoError(t, db.Model(&models.User{}).Where("username = ?", username).Update("role", role).Error)
}
