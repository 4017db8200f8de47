package services

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/inkleapp/inkle-backend/internal/dto"
	"github.com/inkleapp/inkle-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	return NewAuthService(db, testConfig()), db
}

func TestSignup(t *testing.T) {
	auth, db := newAuthService(t)

	resp, err := auth.Signup(&dto.SignupRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "alice", resp.User.Username)
	assert.Equal(t, models.RoleUser, resp.User.Role)

	// The stored password is a bcrypt hash, never the plaintext.
	var stored models.User
	require.NoError(t, db.First(&stored, "username = ?", "alice").Error)
	assert.NotEqual(t, "correct-horse", stored.Password)
}

func TestSignupValidation(t *testing.T) {
	auth, _ := newAuthService(t)

	_, err := auth.Signup(&dto.SignupRequest{Username: "alice", Email: "a@b.c", Password: "short"})
	assert.ErrorIs(t, err, ErrPrecondition)

	_, err = auth.Signup(&dto.SignupRequest{Email: "a@b.c", Password: "long-enough"})
	assert.ErrorIs(t, err, ErrPrecondition)
}

func TestSignupDuplicate(t *testing.T) {
	auth, _ := newAuthService(t)

	_, err := auth.Signup(&dto.SignupRequest{Username: "alice", Email: "alice@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	_, err = auth.Signup(&dto.SignupRequest{Username: "alice", Email: "other@example.com", Password: "correct-horse"})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	_, err = auth.Signup(&dto.SignupRequest{Username: "alice2", Email: "alice@example.com", Password: "correct-horse"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginByUsernameOrEmail(t *testing.T) {
	auth, _ := newAuthService(t)

	_, err := auth.Signup(&dto.SignupRequest{Username: "alice", Email: "alice@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	resp, err := auth.Login(&dto.LoginRequest{Identifier: "alice", Password: "correct-horse"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	resp, err = auth.Login(&dto.LoginRequest{Identifier: "alice@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestLoginBadCredentials(t *testing.T) {
	auth, _ := newAuthService(t)

	_, err := auth.Signup(&dto.SignupRequest{Username: "alice", Email: "alice@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	_, err = auth.Login(&dto.LoginRequest{Identifier: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.Login(&dto.LoginRequest{Identifier: "nobody", Password: "correct-horse"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshRotatesToken(t *testing.T) {
	auth, _ := newAuthService(t)

	signup, err := auth.Signup(&dto.SignupRequest{Username: "alice", Email: "alice@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	refreshed, err := auth.Refresh(&dto.RefreshRequest{RefreshToken: signup.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, signup.RefreshToken, refreshed.RefreshToken)

	// The consumed token is revoked and cannot be replayed.
	_, err = auth.Refresh(&dto.RefreshRequest{RefreshToken: signup.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	auth, _ := newAuthService(t)

	signup, err := auth.Signup(&dto.SignupRequest{Username: "alice", Email: "alice@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	require.NoError(t, auth.Logout(&dto.LogoutRequest{RefreshToken: signup.RefreshToken}))

	_, err = auth.Refresh(&dto.RefreshRequest{RefreshToken: signup.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAccessTokenClaims(t *testing.T) {
	auth, _ := newAuthService(t)

	resp, err := auth.Signup(&dto.SignupRequest{Username: "alice", Email: "alice@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	parsed, err := jwt.Parse(resp.AccessToken, func(token *jwt.Token) (interface{}, error) {
		return []byte(testConfig().JWTSecret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, resp.User.ID.String(), claims["sub"])
	assert.Equal(t, "alice", claims["username"])
	assert.Equal(t, string(models.RoleUser), claims["role"])
}
