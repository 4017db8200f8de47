package handlers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/inkleapp/inkle-backend/internal/dto"
	"github.com/inkleapp/inkle-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalActivityEndpoint(t *testing.T) {
	app, _ := setupTestApp(t)
	alice := signup(t, app, "alice")
	bob := signup(t, app, "bob")

	post := createPost(t, app, alice.AccessToken, "hello")
	resp := perform(t, app, request{
		method: fiber.MethodPost,
		path:   "/api/posts/" + post.ID.String() + "/like",
		token:  bob.AccessToken,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = perform(t, app, request{
		method: fiber.MethodGet,
		path:   "/api/activities/global",
		token:  alice.AccessToken,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var entries []models.Activity
	decode(t, resp, &entries)
	require.Len(t, entries, 2)
	assert.Equal(t, models.VerbLike, entries[0].Verb)
	assert.Equal(t, models.VerbPost, entries[1].Verb)

	resp = perform(t, app, request{
		method: fiber.MethodGet,
		path:   "/api/activities/global",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestHealthEndpoint(t *testing.T) {
	app, _ := setupTestApp(t)

	resp := perform(t, app, request{
		method: fiber.MethodGet,
		path:   "/api/health",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var health dto.HealthResponse
	decode(t, resp, &health)
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "ok", health.DB)
	assert.Equal(t, "disabled", health.Cache)
}
