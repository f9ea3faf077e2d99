package services

import (
	"fmt"
	"testing"

	localCache "github.com/emberworks/quillfeed/pkg/internal/cache"
	"github.com/emberworks/quillfeed/pkg/internal/database"
	"github.com/emberworks/quillfeed/pkg/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestStore gives every test a fresh entity store and an empty cache.
// Nothing is shared across tests besides the ristretto instance itself.
func setupTestStore(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.RunMigration(db))
	database.C = db

	if localCache.S == nil {
		require.NoError(t, localCache.NewStore())
	}
	localCache.R.Clear()
	localCache.R.Wait()

	postViewQueueMu.Lock()
	postViewQueue = nil
	postViewQueueMu.Unlock()
}

func createTestAccount(t *testing.T, name string) models.Account {
	t.Helper()

	account, err := NewAccount(models.Account{Name: name, Nick: name})
	require.NoError(t, err)
	return account
}

func createTestGroup(t *testing.T, slug string) models.Group {
	t.Helper()

	group, err := NewGroup(slug, "Group "+slug, "")
	require.NoError(t, err)
	return group
}

func createTestPost(t *testing.T, author models.Account, text string, group *models.Group) models.Post {
	t.Helper()

	item := models.Post{Text: text}
	if group != nil {
		item.GroupID = &group.ID
	}
	post, err := NewPost(author, item)
	require.NoError(t, err)
	return post
}

func createTestPosts(t *testing.T, author models.Account, count int) []models.Post {
	t.Helper()

	posts := make([]models.Post, 0, count)
	for i := 0; i < count; i++ {
		posts = append(posts, createTestPost(t, author, fmt.Sprintf("post number %d", i), nil))
	}
	return posts
}
