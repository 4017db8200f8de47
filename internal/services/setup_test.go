package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/inkleapp/inkle-backend/internal/config"
	"github.com/inkleapp/inkle-backend/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database. TranslateError must be
// on, the same as production, so unique violations surface as
// gorm.ErrDuplicatedKey.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every session on the same in-memory DB.
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
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret-key",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: time.Hour,
		FeedDefaultLimit: 50,
		FeedMaxLimit:     100,
	}
}

func createTestUser(t *testing.T, db *gorm.DB, username string, role models.Role) *models.User {
	t.Helper()
	user := &models.User{
		ID:       uuid.New(),
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
		Role:     role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

type testServices struct {
	visibility    *VisibilityService
	activities    *ActivityService
	relationships *RelationshipService
	posts         *PostService
	admin         *AdminService
}

func newTestServices(db *gorm.DB) testServices {
	visibility := NewVisibilityService(db)
	activities := NewActivityService(db)
	return testServices{
		visibility:    visibility,
		activities:    activities,
		relationships: NewRelationshipService(db, visibility, activities),
		posts:         NewPostService(db, visibility, activities),
		admin:         NewAdminService(db, activities),
	}
}

func countActivities(t *testing.T, db *gorm.DB, verb models.ActivityVerb) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.Activity{}).Where("verb = ?", verb).Count(&count).Error)
	return count
}
