package api

import (
	"errors"

	"github.com/emberworks/quillfeed/pkg/internal/database"
	"github.com/emberworks/quillfeed/pkg/internal/http/exts"
	"github.com/emberworks/quillfeed/pkg/internal/models"
	"github.com/emberworks/quillfeed/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// listHomeFeed serves the root listing through the page cache. Within the TTL
// window the previously rendered bytes come back untouched.
func listHomeFeed(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)

	content, err := services.GetOrRenderHomeFeed(page, func() ([]byte, error) {
		feed, err := services.PaginateFeed(database.C, page)
		if err != nil {
			return nil, err
		}
		return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(feed)
	})
	if err != nil {
		return feedError(err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(content)
}

func getPost(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("postId", 0)

	item, err := services.GetPost(database.C, uint(id), actorID(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(item)
}

func createPost(c *fiber.Ctx) error {
	user, err := requireActor(c)
	if err != nil {
		return err
	}

	var data struct {
		Text        string   `json:"text" validate:"required,max=4096"`
		Image       *string  `json:"image"`
		Attachments []string `json:"attachments"`
		GroupID     *uint    `json:"group_id"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item := models.Post{
		Text:        data.Text,
		Image:       data.Image,
		Attachments: datatypes.NewJSONSlice(data.Attachments),
		GroupID:     data.GroupID,
	}

	item, err = services.NewPost(user, item)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(item)
}

func editPost(c *fiber.Ctx) error {
	user, err := requireActor(c)
	if err != nil {
		return err
	}
	id, _ := c.ParamsInt("postId", 0)

	var data struct {
		Text        string   `json:"text" validate:"required,max=4096"`
		Image       *string  `json:"image"`
		Attachments []string `json:"attachments"`
		GroupID     *uint    `json:"group_id"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	var item models.Post
	if err := database.C.Where("id = ?", id).First(&item).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	if item.AuthorID != user.ID {
		return fiber.NewError(fiber.StatusForbidden, "only the author can edit a post")
	}

	item.Text = data.Text
	item.Image = data.Image
	item.Attachments = datatypes.NewJSONSlice(data.Attachments)
	item.GroupID = data.GroupID

	if item, err = services.EditPost(item); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(item)
}

func deletePost(c *fiber.Ctx) error {
	user, err := requireActor(c)
	if err != nil {
		return err
	}
	id, _ := c.ParamsInt("postId", 0)

	var item models.Post
	if err := database.C.Where("id = ?", id).First(&item).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	if item.AuthorID != user.ID {
		return fiber.NewError(fiber.StatusForbidden, "only the author can delete a post")
	}

	if err := services.DeletePost(item); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.SendStatus(fiber.StatusOK)
}
