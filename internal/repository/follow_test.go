package repository

import (
	"context"
	"fmt"
	"testing"

	"ripple/internal/database"
	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(database.PersistentModels()...); err != nil {
		t.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    fmt.Sprintf("%s@example.com", username),
		Password: "hashed",
		Profile:  &models.Profile{},
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestFollowRepository_CreateIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	created, err := repo.Create(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, created)

	// Following again stores nothing and reports no new edge
	created, err = repo.Create(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, created)

	var count int64
	require.NoError(t, db.Model(&models.Follow{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	following, err := repo.IsFollowing(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, following)

	// The edge is directed
	following, err = repo.IsFollowing(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, following)
}

func TestFollowRepository_DeleteReportsRemoval(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	_, err := repo.Create(ctx, alice.ID, bob.ID)
	require.NoError(t, err)

	removed, err := repo.Delete(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Delete(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestFollowRepository_GetFollowingIDs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	carol := createTestUser(t, db, "carol")

	ids, err := repo.GetFollowingIDs(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, ids)

	_, err = repo.Create(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	_, err = repo.Create(ctx, alice.ID, carol.ID)
	require.NoError(t, err)
	_, err = repo.Create(ctx, bob.ID, alice.ID)
	require.NoError(t, err)

	ids, err = repo.GetFollowingIDs(ctx, alice.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{bob.ID, carol.ID}, ids)
}

func TestFollowRepository_FollowCountsOnUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db)
	users := NewUserRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	carol := createTestUser(t, db, "carol")

	_, err := repo.Create(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	_, err = repo.Create(ctx, carol.ID, alice.ID)
	require.NoError(t, err)
	_, err = repo.Create(ctx, alice.ID, bob.ID)
	require.NoError(t, err)

	got, err := users.GetWithStats(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.FollowersCount)
	assert.Equal(t, 1, got.FollowingCount)
}

func TestFollowRepository_ListFollowers(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	carol := createTestUser(t, db, "carol")

	_, err := repo.Create(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	_, err = repo.Create(ctx, carol.ID, alice.ID)
	require.NoError(t, err)

	followers, err := repo.ListFollowers(ctx, alice.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, followers, 2)

	names := []string{followers[0].Username, followers[1].Username}
	assert.ElementsMatch(t, []string{"bob", "carol"}, names)

	following, err := repo.ListFollowing(ctx, bob.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, following, 1)
	assert.Equal(t, "alice", following[0].Username)
}
