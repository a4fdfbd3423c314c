package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"task-scheduler/internal/models"
)

// ErrTaskNotFound is returned when no task matches both id and owner.
// A task owned by someone else is indistinguishable from one that does
// not exist, so ownership never leaks through the error.
var ErrTaskNotFound = errors.New("task not found")

type TaskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) ListByOwner(ctx context.Context, ownerID int) ([]models.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, owner_id, title, category, is_done, date, created_at, updated_at
		 FROM tasks WHERE owner_id = $1 ORDER BY id`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		var task models.Task
		err := rows.Scan(&task.ID, &task.OwnerID, &task.Title, &task.Category,
			&task.IsDone, &task.Date, &task.CreatedAt, &task.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

func (r *TaskRepository) Create(ctx context.Context, task *models.Task) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO tasks (owner_id, title, category, date)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, is_done, created_at, updated_at`,
		task.OwnerID, task.Title, task.Category, task.Date,
	).Scan(&task.ID, &task.IsDone, &task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating task: %w", err)
	}
	return nil
}

// UpdateOwned patches only the supplied fields of the task owned by
// ownerID and returns the updated row.
func (r *TaskRepository) UpdateOwned(ctx context.Context, id, ownerID int, patch models.TaskPatch) (*models.Task, error) {
	task := &models.Task{}
	err := r.db.QueryRowContext(ctx,
		`UPDATE tasks
		 SET date = COALESCE($1, date),
		     is_done = COALESCE($2, is_done),
		     updated_at = CURRENT_TIMESTAMP
		 WHERE id = $3 AND owner_id = $4
		 RETURNING id, owner_id, title, category, is_done, date, created_at, updated_at`,
		patch.Date, patch.IsDone, id, ownerID,
	).Scan(&task.ID, &task.OwnerID, &task.Title, &task.Category,
		&task.IsDone, &task.Date, &task.CreatedAt, &task.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("updating task: %w", err)
	}
	return task, nil
}

// DeleteOwned deletes and returns the task only if both id and owner match.
func (r *TaskRepository) DeleteOwned(ctx context.Context, id, ownerID int) (*models.Task, error) {
	task := &models.Task{}
	err := r.db.QueryRowContext(ctx,
		`DELETE FROM tasks
		 WHERE id = $1 AND owner_id = $2
		 RETURNING id, owner_id, title, category, is_done, date, created_at, updated_at`,
		id, ownerID,
	).Scan(&task.ID, &task.OwnerID, &task.Title, &task.Category,
		&task.IsDone, &task.Date, &task.CreatedAt, &task.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("deleting task: %w", err)
	}
	return task, nil
}
