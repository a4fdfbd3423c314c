package handlers_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"task-scheduler/internal/models"
	"task-scheduler/internal/repository"
)

// In-memory stores with the same error contract as the repositories.

type memUserStore struct {
	mu      sync.Mutex
	nextID  int
	byEmail map[string]models.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{byEmail: make(map[string]models.User)}
}

func (s *memUserStore) Create(_ context.Context, username, email, passwordHash string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byEmail[email]; exists {
		return nil, repository.ErrDuplicateEmail
	}
	s.nextID++
	now := time.Now()
	user := models.User{
		ID:           s.nextID,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.byEmail[email] = user
	return &user, nil
}

func (s *memUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, exists := s.byEmail[email]
	if !exists {
		return nil, repository.ErrUserNotFound
	}
	return &user, nil
}

type memTaskStore struct {
	mu     sync.Mutex
	nextID int
	byID   map[int]models.Task
}

func newMemTaskStore() *memTaskStore {
	return &memTaskStore{byID: make(map[int]models.Task)}
}

func (s *memTaskStore) ListByOwner(_ context.Context, ownerID int) ([]models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tasks := []models.Task{}
	for _, task := range s.byID {
		if task.OwnerID == ownerID {
			tasks = append(tasks, task)
		}
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return tasks, nil
}

func (s *memTaskStore) Create(_ context.Context, task *models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	task.ID = s.nextID
	task.IsDone = false
	now := time.Now()
	task.CreatedAt = now
	task.UpdatedAt = now
	s.byID[task.ID] = *task
	return nil
}

func (s *memTaskStore) UpdateOwned(_ context.Context, id, ownerID int, patch models.TaskPatch) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	task, exists := s.byID[id]
	if !exists || task.OwnerID != ownerID {
		return nil, repository.ErrTaskNotFound
	}
	if patch.Date != nil {
		task.Date = patch.Date
	}
	if patch.IsDone != nil {
		task.IsDone = *patch.IsDone
	}
	task.UpdatedAt = time.Now()
	s.byID[id] = task
	return &task, nil
}

func (s *memTaskStore) DeleteOwned(_ context.Context, id, ownerID int) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	task, exists := s.byID[id]
	if !exists || task.OwnerID != ownerID {
		return nil, repository.ErrTaskNotFound
	}
	delete(s.byID, id)
	return &task, nil
}
