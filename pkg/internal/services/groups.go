package services

import (
	"fmt"
	"regexp"

	"github.com/emberworks/quillfeed/pkg/internal/database"
	"github.com/emberworks/quillfeed/pkg/internal/models"
)

var groupSlugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

func ListGroup(take int, offset int) ([]models.Group, error) {
	var groups []models.Group
	err := database.C.Offset(offset).Limit(take).Find(&groups).Error

	return groups, err
}

func SearchGroups(take int, offset int, probe string) ([]models.Group, error) {
	probe = "%" + probe + "%"

	var groups []models.Group
	err := database.C.Where("slug LIKE ?", probe).Offset(offset).Limit(take).Find(&groups).Error

	return groups, err
}

func GetGroup(slug string) (models.Group, error) {
	var group models.Group
	if err := database.C.Where(models.Group{Slug: slug}).First(&group).Error; err != nil {
		return group, err
	}
	return group, nil
}

func GetGroupWithID(id uint) (models.Group, error) {
	var group models.Group
	if err := database.C.Where(models.Group{
		BaseModel: models.BaseModel{ID: id},
	}).First(&group).Error; err != nil {
		return group, err
	}
	return group, nil
}

func NewGroup(slug, title, description string) (models.Group, error) {
	if !groupSlugPattern.MatchString(slug) {
		return models.Group{}, fmt.Errorf("invalid group slug, allowed characters are a-z, 0-9 and dash")
	}

	group := models.Group{
		Slug:        slug,
		Title:       title,
		Description: description,
	}

	err := database.C.Save(&group).Error

	return group, err
}

func EditGroup(group models.Group, slug, title, description string) (models.Group, error) {
	if !groupSlugPattern.MatchString(slug) {
		return group, fmt.Errorf("invalid group slug, allowed characters are a-z, 0-9 and dash")
	}

	group.Slug = slug
	group.Title = title
	group.Description = description

	err := database.C.Save(&group).Error

	return group, err
}

// DeleteGroup detaches the group's posts before removing the record.
// Posts outlive their group; only the membership is lost.
func DeleteGroup(group models.Group) error {
	tx := database.C.Begin()

	if err := tx.Model(&models.Post{}).
		Where("group_id = ?", group.ID).
		Update("group_id", nil).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("unable to detach posts from group: %v", err)
	}
	if err := tx.Delete(&group).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
