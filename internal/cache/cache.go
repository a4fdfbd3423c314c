package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"task-scheduler/internal/models"

	"github.com/go-redis/redis/v8"
)

const taskListTTL = time.Hour

// TaskCache keeps each owner's task list in Redis. Any write to an
// owner's tasks invalidates that owner's entry.
type TaskCache struct {
	client *redis.Client
}

func NewTaskCache(client *redis.Client) *TaskCache {
	return &TaskCache{client: client}
}

func taskListKey(ownerID int) string {
	return fmt.Sprintf("tasks:owner:%d", ownerID)
}

func (c *TaskCache) GetTasks(ctx context.Context, ownerID int) ([]models.Task, bool) {
	cached, err := c.client.Get(ctx, taskListKey(ownerID)).Result()
	if err != nil {
		return nil, false
	}
	var tasks []models.Task
	if err := json.Unmarshal([]byte(cached), &tasks); err != nil {
		return nil, false
	}
	return tasks, true
}

func (c *TaskCache) SetTasks(ctx context.Context, ownerID int, tasks []models.Task) {
	data, err := json.Marshal(tasks)
	if err != nil {
		return
	}
	c.client.SetEX(ctx, taskListKey(ownerID), data, taskListTTL)
}

func (c *TaskCache) Invalidate(ctx context.Context, ownerID int) {
	c.client.Del(ctx, taskListKey(ownerID))
}
