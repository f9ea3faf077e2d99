package api

import (
	"errors"

	"github.com/emberworks/quillfeed/pkg/internal/database"
	"github.com/emberworks/quillfeed/pkg/internal/http/exts"
	"github.com/emberworks/quillfeed/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func listGroups(c *fiber.Ctx) error {
	take := c.QueryInt("take", 100)
	offset := c.QueryInt("offset", 0)

	var err error
	var groups any
	if probe := c.Query("probe"); len(probe) > 0 {
		groups, err = services.SearchGroups(take, offset, probe)
	} else {
		groups, err = services.ListGroup(take, offset)
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(groups)
}

func getGroup(c *fiber.Ctx) error {
	group, err := services.GetGroup(c.Params("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(group)
}

func createGroup(c *fiber.Ctx) error {
	if _, err := requireActor(c); err != nil {
		return err
	}

	var data struct {
		Slug        string `json:"slug" validate:"required,max=255"`
		Title       string `json:"title" validate:"required,max=200"`
		Description string `json:"description"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	group, err := services.NewGroup(data.Slug, data.Title, data.Description)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(group)
}

func editGroup(c *fiber.Ctx) error {
	if _, err := requireActor(c); err != nil {
		return err
	}

	var data struct {
		Slug        string `json:"slug" validate:"required,max=255"`
		Title       string `json:"title" validate:"required,max=200"`
		Description string `json:"description"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	group, err := services.GetGroup(c.Params("slug"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if group, err = services.EditGroup(group, data.Slug, data.Title, data.Description); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(group)
}

func deleteGroup(c *fiber.Ctx) error {
	if _, err := requireActor(c); err != nil {
		return err
	}

	group, err := services.GetGroup(c.Params("slug"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := services.DeleteGroup(group); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.SendStatus(fiber.StatusOK)
}

func listGroupFeed(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)

	tx, err := services.FilterPostWithGroup(database.C, c.Params("slug"))
	if err != nil {
		return feedError(err)
	}

	feed, err := services.PaginateFeed(tx, page)
	if err != nil {
		return feedError(err)
	}

	return c.JSON(feed)
}
