package dto

import (
	"time"

	"github.com/yukikurage/todo-tracker-api/internal/models"
)

// CreateTaskRequest is the body of a task creation. Owner is also accepted
// under the legacy "id" key.
type CreateTaskRequest struct {
	Title     *string              `json:"title"`
	Owner     string               `json:"owner"`
	LegacyID  string               `json:"id"`
	Completed *bool                `json:"completed"`
	Priority  *models.TaskPriority `json:"priority"`
}

// OwnerID returns the owner, preferring the "owner" key.
func (r CreateTaskRequest) OwnerID() string {
	if r.Owner != "" {
		return r.Owner
	}
	return r.LegacyID
}

// UpdateTaskRequest is the body of a partial task update
type UpdateTaskRequest struct {
	Title     Optional[string]              `json:"title"`
	Completed Optional[bool]                `json:"completed"`
	Priority  Optional[models.TaskPriority] `json:"priority"`
}

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID        string              `json:"id"`
	Title     string              `json:"title"`
	Completed bool                `json:"completed"`
	Priority  models.TaskPriority `json:"priority"`
	Owner     string              `json:"owner"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

// DeleteTaskResponse confirms a deletion
type DeleteTaskResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:        task.ID,
		Title:     task.Title,
		Completed: task.Completed,
		Priority:  task.Priority,
		Owner:     task.OwnerID,
		CreatedAt: task.CreatedAt,
		UpdatedAt: task.UpdatedAt,
	}
}

// ToTaskDTOs converts a slice of tasks, never returning nil
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	items := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		items[i] = ToTaskDTO(task)
	}
	return items
}
