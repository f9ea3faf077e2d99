package services

import (
	"fmt"

	"github.com/emberworks/quillfeed/pkg/internal/database"
	"github.com/emberworks/quillfeed/pkg/internal/models"
	"gorm.io/gorm"
)

func GetComment(id uint) (models.Comment, error) {
	var comment models.Comment
	if err := database.C.
		Preload("Author").
		Where("id = ?", id).
		First(&comment).Error; err != nil {
		return comment, err
	}
	return comment, nil
}

func ListCommentWithPost(tx *gorm.DB, postID uint, take int, offset int) ([]models.Comment, error) {
	if take > 100 {
		take = 100
	}

	var comments []models.Comment
	if err := tx.
		Preload("Author").
		Where("post_id = ?", postID).
		Limit(take).Offset(offset).
		Order(FeedOrder).
		Find(&comments).Error; err != nil {
		return comments, err
	}

	return comments, nil
}

func CountCommentWithPost(postID uint) (int64, error) {
	var count int64
	if err := database.C.Model(&models.Comment{}).
		Where("post_id = ?", postID).
		Count(&count).Error; err != nil {
		return count, err
	}

	return count, nil
}

func NewComment(author models.Account, post models.Post, text string) (models.Comment, error) {
	if len(text) == 0 {
		return models.Comment{}, fmt.Errorf("comment text is required")
	}

	comment := models.Comment{
		Text:     text,
		PostID:   post.ID,
		AuthorID: author.ID,
	}

	if err := database.C.Save(&comment).Error; err != nil {
		return comment, err
	}
	comment.Author = author

	return comment, nil
}

func DeleteComment(comment models.Comment) error {
	return database.C.Delete(&comment).Error
}
