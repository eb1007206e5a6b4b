package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskmanager/interfaces/api/handlers"
)

func SetupUserRoutes(api fiber.Router, h *handlers.Handlers) {
	users := api.Group("/users")
	users.Get("/", h.UserHandler.ListUsers)
	users.Post("/register", h.UserHandler.Register)
	users.Post("/login", h.UserHandler.Login)
	users.Get("/:id", h.UserHandler.GetUser)
	users.Put("/:id", h.UserHandler.UpdateUser)
	users.Delete("/:id", h.UserHandler.DeleteUser)
}
