package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskmanager/interfaces/api/handlers"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers) {
	// Setup health and root routes
	SetupHealthRoutes(app)

	// API group
	api := app.Group("/api")

	SetupTaskRoutes(api, h)
	SetupUserRoutes(api, h)
}
