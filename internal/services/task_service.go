package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/juju/clock"
	"github.com/juju/errors"
	"github.com/yukikurage/todo-tracker-api/internal/constants"
	"github.com/yukikurage/todo-tracker-api/internal/models"
	"github.com/yukikurage/todo-tracker-api/internal/repository"
)

var (
	ErrTaskNotFound    = errors.NewNotFound(nil, "Todo not found")
	ErrTitleRequired   = errors.NewNotValid(nil, "Title is required and must be a string")
	ErrTitleEmpty      = errors.NewNotValid(nil, "Title must be a non-empty string")
	ErrTitleTooLong    = errors.NewNotValid(nil, "Title must be at most 255 characters")
	ErrOwnerRequired   = errors.NewNotValid(nil, "Owner is required")
	ErrOwnerNotFound   = errors.NewNotValid(nil, "Owner does not exist")
	ErrInvalidPriority = errors.NewNotValid(nil, "Priority must be one of low, medium, high")
	ErrInvalidComplete = errors.NewNotValid(nil, "Completed must be a boolean")
	ErrForeignOwner    = errors.NewForbidden(nil, "Cannot list tasks of another user")
)

// TaskService handles task business logic
type TaskService struct {
	taskRepo repository.TaskRepository
	userRepo repository.UserRepository
	clock    clock.Clock
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository, userRepo repository.UserRepository, clk clock.Clock) *TaskService {
	if clk == nil {
		clk = clock.WallClock
	}
	return &TaskService{
		taskRepo: taskRepo,
		userRepo: userRepo,
		clock:    clk,
	}
}

// ListTasksInput selects the tasks to list. ActorID is the authenticated
// caller, empty for anonymous requests.
type ListTasksInput struct {
	OwnerID string
	ActorID string
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	OwnerID   string
	Title     *string
	Completed *bool
	Priority  *models.TaskPriority
}

// UpdateTaskInput represents a partial update. Nil fields are left
// unchanged; Set flags distinguish an explicit null from an omitted field.
type UpdateTaskInput struct {
	TaskID  string
	ActorID string

	Title        *string
	TitleSet     bool
	Completed    *bool
	CompletedSet bool
	Priority     *models.TaskPriority
	PrioritySet  bool
}

// ListTasks returns the owner's tasks, newest first
func (s *TaskService) ListTasks(ctx context.Context, input ListTasksInput) ([]models.Task, error) {
	ownerID := strings.TrimSpace(input.OwnerID)
	if input.ActorID != "" {
		if ownerID == "" {
			ownerID = input.ActorID
		} else if ownerID != input.ActorID {
			return nil, ErrForeignOwner
		}
	}

	tasks, err := s.taskRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Annotate(err, "failed to list tasks")
	}

	return tasks, nil
}

// CreateTask validates and stores a new task
func (s *TaskService) CreateTask(ctx context.Context, input CreateTaskInput) (*models.Task, error) {
	if input.Title == nil || strings.TrimSpace(*input.Title) == "" {
		return nil, ErrTitleRequired
	}
	if !titleFits(*input.Title) {
		return nil, ErrTitleTooLong
	}

	priority := models.TaskPriorityHigh
	if input.Priority != nil {
		if !input.Priority.Valid() {
			return nil, ErrInvalidPriority
		}
		priority = *input.Priority
	}

	ownerID := strings.TrimSpace(input.OwnerID)
	if ownerID == "" {
		return nil, ErrOwnerRequired
	}
	if _, err := s.userRepo.FindByID(ctx, ownerID); err != nil {
		if errors.Is(err, errors.NotFound) {
			return nil, ErrOwnerNotFound
		}
		return nil, errors.Annotate(err, "failed to verify owner")
	}

	now := s.clock.Now().UTC()
	task := &models.Task{
		ID:        uuid.NewString(),
		Title:     strings.TrimSpace(*input.Title),
		Priority:  priority,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if input.Completed != nil {
		task.Completed = *input.Completed
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, errors.Annotate(err, "failed to create task")
	}

	return task, nil
}

// UpdateTask applies a partial update to an existing task
func (s *TaskService) UpdateTask(ctx context.Context, input UpdateTaskInput) (*models.Task, error) {
	changes := repository.TaskChanges{UpdatedAt: s.clock.Now().UTC()}

	if input.TitleSet {
		if input.Title == nil || strings.TrimSpace(*input.Title) == "" {
			return nil, ErrTitleEmpty
		}
		title := strings.TrimSpace(*input.Title)
		if !titleFits(title) {
			return nil, ErrTitleTooLong
		}
		changes.Title = &title
	}
	if input.CompletedSet {
		if input.Completed == nil {
			return nil, ErrInvalidComplete
		}
		changes.Completed = input.Completed
	}
	if input.PrioritySet {
		if input.Priority == nil || !input.Priority.Valid() {
			return nil, ErrInvalidPriority
		}
		changes.Priority = input.Priority
	}

	scope := repository.TaskScope{ID: input.TaskID, OwnerID: input.ActorID}
	task, err := s.taskRepo.Update(ctx, scope, changes)
	if err != nil {
		if errors.Is(err, errors.NotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, errors.Annotate(err, "failed to update task")
	}

	return task, nil
}

// DeleteTask removes a task and returns its ID. A non-empty actorID restricts
// the delete to tasks owned by that identity.
func (s *TaskService) DeleteTask(ctx context.Context, taskID, actorID string) (string, error) {
	scope := repository.TaskScope{ID: taskID, OwnerID: actorID}
	if err := s.taskRepo.Delete(ctx, scope); err != nil {
		if errors.Is(err, errors.NotFound) {
			return "", ErrTaskNotFound
		}
		return "", errors.Annotate(err, "failed to delete task")
	}

	return taskID, nil
}

// GetTask returns a single task. A non-empty actorID restricts the lookup to
// tasks owned by that identity.
func (s *TaskService) GetTask(ctx context.Context, taskID, actorID string) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, repository.TaskScope{ID: taskID, OwnerID: actorID})
	if err != nil {
		if errors.Is(err, errors.NotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, errors.Annotate(err, "failed to find task")
	}

	return task, nil
}

func titleFits(title string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(title)) <= constants.MaxTextLength
}
