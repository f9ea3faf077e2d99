package services

import (
	"fmt"
	"time"

	"github.com/emberworks/quillfeed/pkg/internal/database"
	"github.com/emberworks/quillfeed/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

func GetPost(tx *gorm.DB, id uint, user *uint) (models.Post, error) {
	item, err := GetFeedPost(tx, id)
	if err != nil {
		return item, err
	}

	if user != nil {
		AddPostView(item, *user)
	}

	return item, nil
}

func NewPost(author models.Account, item models.Post) (models.Post, error) {
	if len(item.Text) == 0 {
		return item, fmt.Errorf("post text is required")
	}

	if item.GroupID != nil {
		if _, err := GetGroupWithID(*item.GroupID); err != nil {
			return item, fmt.Errorf("unable to find group to post into: %v", err)
		}
	}

	item.AuthorID = author.ID
	item.Language = DetectLanguage(item.Text)

	start := time.Now()
	if err := database.C.Save(&item).Error; err != nil {
		return item, err
	}
	item.Author = author

	log.Debug().Dur("elapsed", time.Since(start)).Uint("author", author.ID).Msg("The post is posted.")
	return item, nil
}

func EditPost(item models.Post) (models.Post, error) {
	if len(item.Text) == 0 {
		return item, fmt.Errorf("post text is required")
	}

	if item.GroupID != nil {
		if _, err := GetGroupWithID(*item.GroupID); err != nil {
			return item, fmt.Errorf("unable to find group to post into: %v", err)
		}
	}

	item.Language = DetectLanguage(item.Text)
	item.EditedAt = lo.ToPtr(time.Now())

	err := database.C.Save(&item).Error

	return item, err
}

// DeletePost takes the post's comments with it in the same transaction.
func DeletePost(item models.Post) error {
	tx := database.C.Begin()

	if err := tx.Delete(&models.Comment{}, "post_id = ?", item.ID).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("unable to delete post comments: %v", err)
	}
	if err := tx.Delete(&item).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
