package api

import (
	"github.com/emberworks/quillfeed/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func followAccount(c *fiber.Ctx) error {
	user, err := requireActor(c)
	if err != nil {
		return err
	}

	target, err := services.GetAccount(c.Params("name"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	follow, err := services.FollowAccount(user, target)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(follow)
}

func unfollowAccount(c *fiber.Ctx) error {
	user, err := requireActor(c)
	if err != nil {
		return err
	}

	target, err := services.GetAccount(c.Params("name"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := services.UnfollowAccount(user, target); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.SendStatus(fiber.StatusOK)
}

func getFollowStatus(c *fiber.Ctx) error {
	user, err := requireActor(c)
	if err != nil {
		return err
	}

	target, err := services.GetAccount(c.Params("name"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	return c.JSON(fiber.Map{
		"is_following": services.IsFollowing(user.ID, target.ID),
	})
}
