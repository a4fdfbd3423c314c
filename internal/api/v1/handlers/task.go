package handlers

import (
	"errors"
	"time"

	"task-scheduler/internal/models"
	"task-scheduler/internal/repository"
	"task-scheduler/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ListTasks returns every task owned by the authenticated user, served
// from the cache when a fresh copy exists.
func (h *Handler) ListTasks(c *fiber.Ctx) error {
	ownerID := c.Locals("userID").(int)

	if h.cache != nil {
		if tasks, ok := h.cache.GetTasks(c.Context(), ownerID); ok {
			return c.JSON(tasks)
		}
	}

	tasks, err := h.tasks.ListByOwner(c.Context(), ownerID)
	if err != nil {
		logger.ErrorLogger.Error("Error fetching tasks", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	if h.cache != nil {
		h.cache.SetTasks(c.Context(), ownerID, tasks)
	}
	return c.JSON(tasks)
}

func (h *Handler) CreateTask(c *fiber.Ctx) error {
	ownerID := c.Locals("userID").(int)

	type TaskRequest struct {
		Title    string     `json:"title" validate:"required"`
		Category string     `json:"category" validate:"required"`
		Date     *time.Time `json:"date"`
	}

	var req TaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.ErrorLogger.Error("Bad request in create task", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Bad request",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		logger.AuditLogger.Warn("Validation error in create task", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Validation error",
		})
	}

	task := &models.Task{
		OwnerID:  ownerID,
		Title:    req.Title,
		Category: req.Category,
		Date:     req.Date,
	}
	if err := h.tasks.Create(c.Context(), task); err != nil {
		logger.ErrorLogger.Error("Error saving task", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error saving task",
		})
	}

	if h.cache != nil {
		h.cache.Invalidate(c.Context(), ownerID)
	}
	if h.events != nil {
		h.events.Publish("created", *task)
	}

	logger.AuditLogger.Info("Task created", zap.Int("taskID", task.ID), zap.Int("ownerID", ownerID))
	return c.Status(fiber.StatusCreated).JSON(task)
}

// UpdateTask patches the (date, isDone) fields of an owned task. A task
// owned by another user returns 404, same as a missing one.
func (h *Handler) UpdateTask(c *fiber.Ctx) error {
	ownerID := c.Locals("userID").(int)

	taskID, err := c.ParamsInt("id")
	if err != nil {
		logger.ErrorLogger.Error("Invalid task ID", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid task ID",
		})
	}

	var patch models.TaskPatch
	if err := c.BodyParser(&patch); err != nil {
		logger.ErrorLogger.Error("Bad request in update task", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Bad request",
		})
	}

	task, err := h.tasks.UpdateOwned(c.Context(), taskID, ownerID, patch)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Task not found",
			})
		}
		logger.ErrorLogger.Error("Error updating task", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error updating task",
		})
	}

	if h.cache != nil {
		h.cache.Invalidate(c.Context(), ownerID)
	}
	if h.events != nil {
		h.events.Publish("updated", *task)
	}

	logger.AuditLogger.Info("Task updated", zap.Int("taskID", task.ID), zap.Int("ownerID", ownerID))
	return c.JSON(task)
}

func (h *Handler) DeleteTask(c *fiber.Ctx) error {
	ownerID := c.Locals("userID").(int)

	taskID, err := c.ParamsInt("id")
	if err != nil {
		logger.ErrorLogger.Error("Invalid task ID", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid task ID",
		})
	}

	task, err := h.tasks.DeleteOwned(c.Context(), taskID, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Task not found",
			})
		}
		logger.ErrorLogger.Error("Error deleting task", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error deleting task",
		})
	}

	if h.cache != nil {
		h.cache.Invalidate(c.Context(), ownerID)
	}
	if h.events != nil {
		h.events.Publish("deleted", *task)
	}

	logger.AuditLogger.Info("Task deleted", zap.Int("taskID", task.ID), zap.Int("ownerID", ownerID))
	return c.JSON(fiber.Map{
		"message": "Task deleted successfully",
	})
}
