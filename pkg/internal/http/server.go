package http

import (
	"strconv"
	"strings"
	"time"

	"github.com/emberworks/quillfeed/pkg/internal/http/admin"
	"github.com/emberworks/quillfeed/pkg/internal/http/api"
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type App struct {
	app *fiber.App
}

func NewServer() *App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		EnableIPValidation:    true,
		ServerHeader:          "Quillfeed",
		AppName:               "Quillfeed",
		ProxyHeader:           fiber.HeaderXForwardedFor,
		JSONEncoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Marshal,
		JSONDecoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal,
		BodyLimit:             5 * 1024 * 1024,
		EnablePrintRoutes:     viper.GetBool("debug.print_routes"),
	})

	app.Use(func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Debug().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("elapsed", time.Since(start)).
			Msg("Handled a request.")
		return err
	})

	// The gateway in front of us does authentication; we only read the actor
	// identity it forwards. A missing header means an anonymous reader.
	app.Use(func(c *fiber.Ctx) error {
		if raw := strings.TrimSpace(c.Get("X-Account-ID")); len(raw) > 0 {
			if id, err := strconv.Atoi(raw); err == nil && id > 0 {
				c.Locals("actorId", uint(id))
			}
		}
		return c.Next()
	})

	api.MapAPIs(app, "/api")
	admin.MapControllers(app, "/api/admin")

	return &App{app}
}

func (v *App) Listen() {
	if err := v.app.Listen(viper.GetString("bind")); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when starting http server.")
	}
}
