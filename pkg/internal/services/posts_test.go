package services

import (
	"testing"

	"github.com/emberworks/quillfeed/pkg/internal/database"
	"github.com/emberworks/quillfeed/pkg/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestNewPostValidation(t *testing.T) {
	setupTestStore(t)

	author := createTestAccount(t, "alice")

	_, err := NewPost(author, models.Post{Text: ""})
	assert.Error(t, err)

	missing := uint(9000)
	_, err = NewPost(author, models.Post{Text: "hello", GroupID: &missing})
	assert.Error(t, err)

	post, err := NewPost(author, models.Post{Text: "This is definitely an English sentence."})
	require.NoError(t, err)
	assert.NotEmpty(t, post.Language)
	assert.Nil(t, post.EditedAt)
}

func TestEditPostMarksEditedAt(t *testing.T) {
	setupTestStore(t)

	author := createTestAccount(t, "alice")
	post := createTestPost(t, author, "first draft", nil)

	post.Text = "second draft"
	edited, err := EditPost(post)
	require.NoError(t, err)
	require.NotNil(t, edited.EditedAt)

	_, err = EditPost(models.Post{Text: ""})
	assert.Error(t, err)
}

func TestDeletePostCascadesComments(t *testing.T) {
	setupTestStore(t)

	author := createTestAccount(t, "alice")
	post := createTestPost(t, author, "commented post", nil)
	other := createTestPost(t, author, "untouched post", nil)

	_, err := NewComment(author, post, "first")
	require.NoError(t, err)
	_, err = NewComment(author, post, "second")
	require.NoError(t, err)
	kept, err := NewComment(author, other, "elsewhere")
	require.NoError(t, err)

	require.NoError(t, DeletePost(post))

	_, err = GetFeedPost(database.C, post.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var comments []models.Comment
	require.NoError(t, database.C.Find(&comments).Error)
	require.Len(t, comments, 1)
	assert.Equal(t, kept.ID, comments[0].ID)
}

func TestDeleteGroupDetachesPosts(t *testing.T) {
	setupTestStore(t)

	author := createTestAccount(t, "alice")
	group := createTestGroup(t, "cats")
	post := createTestPost(t, author, "once grouped", &group)

	require.NoError(t, DeleteGroup(group))

	_, err := GetGroup("cats")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// The post survives, it just belongs to no group anymore.
	survivor, err := GetFeedPost(database.C, post.ID)
	require.NoError(t, err)
	assert.Nil(t, survivor.GroupID)
}

func TestDeleteAccountResources(t *testing.T) {
	setupTestStore(t)

	alice := createTestAccount(t, "alice")
	bob := createTestAccount(t, "bob")

	alicePost := createTestPost(t, alice, "from alice", nil)
	bobPost := createTestPost(t, bob, "from bob", nil)

	_, err := NewComment(alice, bobPost, "alice on bob")
	require.NoError(t, err)
	_, err = NewComment(bob, alicePost, "bob on alice")
	require.NoError(t, err)
	_, err = FollowAccount(bob, alice)
	require.NoError(t, err)
	_, err = FollowAccount(alice, bob)
	require.NoError(t, err)

	require.NoError(t, DeleteAccountResources(alice.ID))

	_, err = GetAccount("alice")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// Alice's posts are gone along with every comment on them, her own
	// comments elsewhere, and both directions of her follow edges.
	var posts []models.Post
	require.NoError(t, database.C.Find(&posts).Error)
	require.Len(t, posts, 1)
	assert.Equal(t, bob.ID, posts[0].AuthorID)

	var comments []models.Comment
	require.NoError(t, database.C.Find(&comments).Error)
	assert.Empty(t, comments)

	assert.EqualValues(t, 0, countFollowEdges(t))

	// Bob himself is untouched.
	_, err = GetAccount("bob")
	assert.NoError(t, err)
}

func TestNewAccountValidation(t *testing.T) {
	setupTestStore(t)

	_, err := NewAccount(models.Account{Name: "Not Valid!"})
	assert.Error(t, err)

	_, err = NewAccount(models.Account{Name: "taken"})
	require.NoError(t, err)
	_, err = NewAccount(models.Account{Name: "taken"})
	assert.Error(t, err)
}

func TestCommentListing(t *testing.T) {
	setupTestStore(t)

	author := createTestAccount(t, "alice")
	post := createTestPost(t, author, "discussed post", nil)

	first, err := NewComment(author, post, "first")
	require.NoError(t, err)
	second, err := NewComment(author, post, "second")
	require.NoError(t, err)

	_, err = NewComment(author, post, "")
	assert.Error(t, err)

	count, err := CountCommentWithPost(post.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	comments, err := ListCommentWithPost(database.C, post.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, second.ID, comments[0].ID)
	assert.Equal(t, first.ID, comments[1].ID)
}
