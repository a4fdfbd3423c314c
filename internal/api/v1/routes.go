package v1

import (
	"task-scheduler/internal/api/v1/handlers"
	"task-scheduler/internal/middleware"
	"task-scheduler/internal/token"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *handlers.Handler, tokens *token.Service) {
	api := app.Group("/api")

	// Auth
	api.Post("/signup", h.Signup)
	api.Post("/login", h.Login)
	api.Post("/logout", h.Logout)

	// Task
	taskRoutes := api.Group("/tasks", middleware.RequireToken(tokens))
	taskRoutes.Get("/", h.ListTasks)
	taskRoutes.Post("/", h.CreateTask)
	taskRoutes.Put("/:id", h.UpdateTask)
	taskRoutes.Delete("/:id", h.DeleteTask)
}
