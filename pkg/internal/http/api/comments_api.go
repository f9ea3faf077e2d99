package api

import (
	"fmt"

	"github.com/emberworks/quillfeed/pkg/internal/database"
	"github.com/emberworks/quillfeed/pkg/internal/http/exts"
	"github.com/emberworks/quillfeed/pkg/internal/models"
	"github.com/emberworks/quillfeed/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func listPostComments(c *fiber.Ctx) error {
	take := c.QueryInt("take", 10)
	offset := c.QueryInt("offset", 0)

	var post models.Post
	if err := database.C.Where("id = ?", c.Params("postId")).First(&post).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("unable to find post: %v", err))
	}

	count, err := services.CountCommentWithPost(post.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	items, err := services.ListCommentWithPost(database.C, post.ID, take, offset)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"count": count,
		"data":  items,
	})
}

func createPostComment(c *fiber.Ctx) error {
	user, err := requireActor(c)
	if err != nil {
		return err
	}

	var data struct {
		Text string `json:"text" validate:"required,max=4096"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	var post models.Post
	if err := database.C.Where("id = ?", c.Params("postId")).First(&post).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("unable to find post to comment: %v", err))
	}

	comment, err := services.NewComment(user, post, data.Text)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(comment)
}

func deleteComment(c *fiber.Ctx) error {
	user, err := requireActor(c)
	if err != nil {
		return err
	}
	id, _ := c.ParamsInt("commentId", 0)

	comment, err := services.GetComment(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	if comment.AuthorID != user.ID {
		return fiber.NewError(fiber.StatusForbidden, "only the author can delete a comment")
	}

	if err := services.DeleteComment(comment); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.SendStatus(fiber.StatusOK)
}
