package services

import (
	"testing"

	"github.com/emberworks/quillfeed/pkg/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginateFeedSplit(t *testing.T) {
	setupTestStore(t)

	author := createTestAccount(t, "alice")
	createTestPosts(t, author, 15)

	first, err := PaginateFeed(database.C, 1)
	require.NoError(t, err)
	assert.Len(t, first.Items, 10)
	assert.EqualValues(t, 15, first.TotalCount)
	assert.True(t, first.HasNext)
	assert.False(t, first.HasPrevious)

	second, err := PaginateFeed(database.C, 2)
	require.NoError(t, err)
	assert.Len(t, second.Items, 5)
	assert.EqualValues(t, 15, second.TotalCount)
	assert.False(t, second.HasNext)
	assert.True(t, second.HasPrevious)

	// The two pages cover the feed without overlap.
	seen := make(map[uint]bool)
	for _, item := range append(first.Items, second.Items...) {
		assert.False(t, seen[item.ID])
		seen[item.ID] = true
	}
	assert.Len(t, seen, 15)
}

func TestPaginateFeedOutOfRange(t *testing.T) {
	setupTestStore(t)

	author := createTestAccount(t, "alice")
	createTestPosts(t, author, 15)

	_, err := PaginateFeed(database.C, 3)
	assert.ErrorIs(t, err, ErrPageOutOfRange)

	_, err = PaginateFeed(database.C, 0)
	assert.ErrorIs(t, err, ErrPageOutOfRange)

	_, err = PaginateFeed(database.C, -4)
	assert.ErrorIs(t, err, ErrPageOutOfRange)
}

func TestPaginateFeedEmptyScope(t *testing.T) {
	setupTestStore(t)

	page, err := PaginateFeed(database.C, 1)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.EqualValues(t, 0, page.TotalCount)
	assert.False(t, page.HasNext)
	assert.False(t, page.HasPrevious)

	_, err = PaginateFeed(database.C, 2)
	assert.ErrorIs(t, err, ErrPageOutOfRange)
}

func TestPaginateFeedDeterminism(t *testing.T) {
	setupTestStore(t)

	author := createTestAccount(t, "alice")
	createTestPosts(t, author, 12)

	first, err := PaginateFeed(database.C, 1)
	require.NoError(t, err)
	again, err := PaginateFeed(database.C, 1)
	require.NoError(t, err)

	require.Len(t, again.Items, len(first.Items))
	for i := range first.Items {
		assert.Equal(t, first.Items[i].ID, again.Items[i].ID)
	}
}
