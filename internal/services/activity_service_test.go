package services

import (
	"context"
	"testing"

	"github.com/inkleapp/inkle-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalFeedNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestServices(db)
	alice := createTestUser(t, db, "alice", models.RoleUser)
	bob := createTestUser(t, db, "bob", models.RoleUser)

	post, err := svc.posts.Create(alice.ID, "hello")
	require.NoError(t, err)
	_, err = svc.relationships.Follow(bob.ID, alice.ID)
	require.NoError(t, err)
	_, err = svc.posts.Like(bob.ID, post.ID)
	require.NoError(t, err)

	entries, err := svc.activities.GlobalFeed(context.Background(), 50)
	require.NoError(t, err)

	require.Len(t, entries, 3)
	assert.Equal(t, models.VerbLike, entries[0].Verb)
	assert.Equal(t, models.VerbFollow, entries[1].Verb)
	assert.Equal(t, models.VerbPost, entries[2].Verb)
}

func TestGlobalFeedIsUnfiltered(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestServices(db)
	alice := createTestUser(t, db, "alice", models.RoleUser)
	bob := createTestUser(t, db, "bob", models.RoleUser)

	_, err := svc.posts.Create(alice.ID, "hello")
	require.NoError(t, err)
	_, err = svc.relationships.Block(alice.ID, bob.ID)
	require.NoError(t, err)

	// Block edges do not hide entries here; this is the audit stream.
	entries, err := svc.activities.GlobalFeed(context.Background(), 50)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestGlobalFeedLimit(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestServices(db)
	alice := createTestUser(t, db, "alice", models.RoleUser)

	for i := 0; i < 5; i++ {
		_, err := svc.posts.Create(alice.ID, "post")
		require.NoError(t, err)
	}

	entries, err := svc.activities.GlobalFeed(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
