package api

import (
	"errors"

	"github.com/emberworks/quillfeed/pkg/internal/database"
	"github.com/emberworks/quillfeed/pkg/internal/http/exts"
	"github.com/emberworks/quillfeed/pkg/internal/models"
	"github.com/emberworks/quillfeed/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func getAccount(c *fiber.Ctx) error {
	account, err := services.GetAccount(c.Params("name"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(account)
}

func createAccount(c *fiber.Ctx) error {
	var data struct {
		Name        string `json:"name" validate:"required,max=255"`
		Nick        string `json:"nick" validate:"max=255"`
		Description string `json:"description"`
		Avatar      string `json:"avatar"`
		Banner      string `json:"banner"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	account, err := services.NewAccount(models.Account{
		Name:        data.Name,
		Nick:        data.Nick,
		Description: data.Description,
		Avatar:      data.Avatar,
		Banner:      data.Banner,
	})
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(account)
}

func listAccountFeed(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)

	tx, err := services.FilterPostWithAuthor(database.C, c.Params("name"))
	if err != nil {
		return feedError(err)
	}

	feed, err := services.PaginateFeed(tx, page)
	if err != nil {
		return feedError(err)
	}

	return c.JSON(feed)
}
