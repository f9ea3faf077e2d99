package api

import (
	"errors"

	"github.com/emberworks/quillfeed/pkg/internal/models"
	"github.com/emberworks/quillfeed/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func MapAPIs(app *fiber.App, baseURL string) {
	api := app.Group(baseURL).Name("API")
	{
		posts := api.Group("/posts").Name("Posts API")
		{
			posts.Get("/", listHomeFeed)
			posts.Post("/", createPost)
			posts.Get("/:postId", getPost)
			posts.Put("/:postId", editPost)
			posts.Delete("/:postId", deletePost)

			posts.Get("/:postId/comments", listPostComments)
			posts.Post("/:postId/comments", createPostComment)
		}

		api.Delete("/comments/:commentId", deleteComment)

		groups := api.Group("/groups").Name("Groups API")
		{
			groups.Get("/", listGroups)
			groups.Post("/", createGroup)
			groups.Get("/:slug", getGroup)
			groups.Put("/:slug", editGroup)
			groups.Delete("/:slug", deleteGroup)
			groups.Get("/:slug/posts", listGroupFeed)
		}

		users := api.Group("/users").Name("Users API")
		{
			users.Post("/", createAccount)
			users.Get("/:name", getAccount)
			users.Get("/:name/posts", listAccountFeed)

			users.Post("/:name/follow", followAccount)
			users.Delete("/:name/follow", unfollowAccount)
			users.Get("/:name/follow", getFollowStatus)
		}

		api.Get("/feed/followed", listFollowedFeed)
	}
}

// actorID returns the gateway-forwarded account id, nil for anonymous readers.
func actorID(c *fiber.Ctx) *uint {
	if id, ok := c.Locals("actorId").(uint); ok {
		return &id
	}
	return nil
}

// requireActor resolves the acting account or fails with 401.
func requireActor(c *fiber.Ctx) (models.Account, error) {
	id := actorID(c)
	if id == nil {
		return models.Account{}, fiber.NewError(fiber.StatusUnauthorized, "an acting account is required")
	}

	user, err := services.GetAccountWithID(*id)
	if err != nil {
		return user, fiber.NewError(fiber.StatusUnauthorized, "acting account is unknown")
	}
	return user, nil
}

// feedError maps feed assembly failures onto HTTP statuses.
func feedError(err error) *fiber.Error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrPageOutOfRange):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
}
