package handlers

import (
	"context"

	"task-scheduler/internal/models"
	"task-scheduler/internal/token"
	"task-scheduler/internal/websocket"

	"github.com/go-playground/validator/v10"
)

// UserStore is the credential store consumed by the auth handlers.
type UserStore interface {
	Create(ctx context.Context, username, email, passwordHash string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// TaskStore persists task records. Every read, update, and delete is
// owner-scoped: a task owned by someone else behaves as not found.
type TaskStore interface {
	ListByOwner(ctx context.Context, ownerID int) ([]models.Task, error)
	Create(ctx context.Context, task *models.Task) error
	UpdateOwned(ctx context.Context, id, ownerID int, patch models.TaskPatch) (*models.Task, error)
	DeleteOwned(ctx context.Context, id, ownerID int) (*models.Task, error)
}

// TaskCache is optional; a nil cache disables caching.
type TaskCache interface {
	GetTasks(ctx context.Context, ownerID int) ([]models.Task, bool)
	SetTasks(ctx context.Context, ownerID int, tasks []models.Task)
	Invalidate(ctx context.Context, ownerID int)
}

type Handler struct {
	users    UserStore
	tasks    TaskStore
	tokens   *token.Service
	cache    TaskCache
	events   *websocket.Hub
	validate *validator.Validate
}

func NewHandler(users UserStore, tasks TaskStore, tokens *token.Service, cache TaskCache, events *websocket.Hub) *Handler {
	return &Handler{
		users:    users,
		tasks:    tasks,
		tokens:   tokens,
		cache:    cache,
		events:   events,
		validate: validator.New(),
	}
}
