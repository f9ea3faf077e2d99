package api

import (
	"github.com/emberworks/quillfeed/pkg/internal/database"
	"github.com/emberworks/quillfeed/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

// listFollowedFeed assembles the personalized feed: posts by every author the
// acting account follows, newest first. No follows means an empty page, not
// an error.
func listFollowedFeed(c *fiber.Ctx) error {
	user, err := requireActor(c)
	if err != nil {
		return err
	}
	page := c.QueryInt("page", 1)

	tx, err := services.FilterPostWithFollowed(database.C, user.ID)
	if err != nil {
		return feedError(err)
	}

	feed, err := services.PaginateFeed(tx, page)
	if err != nil {
		return feedError(err)
	}

	return c.JSON(feed)
}
