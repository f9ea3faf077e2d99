package services

import (
	"testing"

	"github.com/emberworks/quillfeed/pkg/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestListFeedOrdering(t *testing.T) {
	setupTestStore(t)

	author := createTestAccount(t, "alice")
	posts := createTestPosts(t, author, 3)

	feed, err := ListFeed(database.C, 10, 0)
	require.NoError(t, err)
	require.Len(t, feed, 3)

	// Newest first, so the feed is the insertion order reversed.
	assert.Equal(t, posts[2].ID, feed[0].ID)
	assert.Equal(t, posts[1].ID, feed[1].ID)
	assert.Equal(t, posts[0].ID, feed[2].ID)

	// Author comes preloaded so a page renders without extra queries.
	require.NotNil(t, feed[0].Author)
	assert.Equal(t, "alice", feed[0].Author.Name)
}

func TestFilterPostWithGroup(t *testing.T) {
	setupTestStore(t)

	author := createTestAccount(t, "alice")
	group := createTestGroup(t, "cats")
	inGroup := createTestPost(t, author, "group post", &group)
	createTestPost(t, author, "loose post", nil)

	tx, err := FilterPostWithGroup(database.C, "cats")
	require.NoError(t, err)

	feed, err := ListFeed(tx, 10, 0)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, inGroup.ID, feed[0].ID)

	_, err = FilterPostWithGroup(database.C, "no-such-group")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFilterPostWithAuthor(t *testing.T) {
	setupTestStore(t)

	alice := createTestAccount(t, "alice")
	bob := createTestAccount(t, "bob")
	createTestPost(t, alice, "from alice", nil)
	createTestPost(t, bob, "from bob", nil)

	tx, err := FilterPostWithAuthor(database.C, "bob")
	require.NoError(t, err)

	feed, err := ListFeed(tx, 10, 0)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, bob.ID, feed[0].AuthorID)

	_, err = FilterPostWithAuthor(database.C, "nobody")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFollowedFeed(t *testing.T) {
	setupTestStore(t)

	reader := createTestAccount(t, "reader")
	author := createTestAccount(t, "author")
	stranger := createTestAccount(t, "stranger")
	createTestPost(t, stranger, "noise", nil)

	// Following nobody is a valid scope, it just yields nothing.
	tx, err := FilterPostWithFollowed(database.C, reader.ID)
	require.NoError(t, err)
	feed, err := ListFeed(tx, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, feed)

	_, err = FollowAccount(reader, author)
	require.NoError(t, err)
	latest := createTestPost(t, author, "fresh from a followed author", nil)

	tx, err = FilterPostWithFollowed(database.C, reader.ID)
	require.NoError(t, err)
	feed, err = ListFeed(tx, 10, 0)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, latest.ID, feed[0].ID)
}
