package admin

import (
	"github.com/emberworks/quillfeed/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

// adminClearHomeFeed is the explicit eviction knob for the home-page cache.
// It is the only way, besides the TTL, that cached renditions go away.
func adminClearHomeFeed(c *fiber.Ctx) error {
	services.ClearHomeFeed()
	return c.SendStatus(fiber.StatusOK)
}

// adminPurgeAccount handles the deletion report from the identity provider.
func adminPurgeAccount(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("accountId", 0)
	if id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "missing account id in request")
	}

	if _, err := services.GetAccountWithID(uint(id)); err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	if err := services.DeleteAccountResources(uint(id)); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.SendStatus(fiber.StatusOK)
}
