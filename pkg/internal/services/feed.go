package services

import (
	"github.com/emberworks/quillfeed/pkg/internal/models"
	"gorm.io/gorm"
)

// FeedOrder is the one total ordering every listing uses. Ties on the
// timestamp fall back to insertion order, which keeps pagination stable.
const FeedOrder = "created_at DESC, id DESC"

func FilterPostWithGroup(tx *gorm.DB, slug string) (*gorm.DB, error) {
	group, err := GetGroup(slug)
	if err != nil {
		return tx, err
	}
	return tx.Where("group_id = ?", group.ID), nil
}

func FilterPostWithAuthor(tx *gorm.DB, name string) (*gorm.DB, error) {
	author, err := GetAccount(name)
	if err != nil {
		return tx, err
	}
	return tx.Where("author_id = ?", author.ID), nil
}

// FilterPostWithFollowed narrows the scope to posts authored by accounts the
// user follows. An empty follow set matches nothing and is not an error.
func FilterPostWithFollowed(tx *gorm.DB, userID uint) (*gorm.DB, error) {
	followed, err := ListFollowedAccounts(userID)
	if err != nil {
		return tx, err
	}
	return tx.Where("author_id IN ?", followed), nil
}

func PreloadFeedRelated(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Author").
		Preload("Group")
}

// ListFeed pulls an ordered window of posts with enough denormalized data
// (author, group, media references) that no further lookup is needed to render.
// The caller is expected to have applied scope filters to tx already.
func ListFeed(tx *gorm.DB, take int, offset int) ([]*models.Post, error) {
	if take > 100 {
		take = 100
	}

	var items []*models.Post
	if err := PreloadFeedRelated(tx).
		Limit(take).Offset(offset).
		Order(FeedOrder).
		Find(&items).Error; err != nil {
		return items, err
	}

	return items, nil
}

func CountFeed(tx *gorm.DB) (int64, error) {
	var count int64
	if err := tx.Model(&models.Post{}).Count(&count).Error; err != nil {
		return count, err
	}

	return count, nil
}

func GetFeedPost(tx *gorm.DB, id uint) (models.Post, error) {
	var item models.Post
	if err := PreloadFeedRelated(tx).
		Preload("Comments", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("created_at DESC, id DESC").Preload("Author")
		}).
		Where("id = ?", id).
		First(&item).Error; err != nil {
		return item, err
	}

	return item, nil
}
