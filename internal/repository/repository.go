package repository

import (
	"context"
	"time"

	"github.com/yukikurage/todo-tracker-api/internal/models"
)

// Implementations report a missing record with an error satisfying
// errors.Is(err, errors.NotFound) and a unique-key violation with one
// satisfying errors.Is(err, errors.AlreadyExists), both from
// github.com/juju/errors. Any other error is an infrastructure failure.

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create inserts a new task
	Create(ctx context.Context, task *models.Task) error

	// FindByID finds a task matching the scope
	FindByID(ctx context.Context, scope TaskScope) (*models.Task, error)

	// ListByOwner returns the owner's tasks, newest first
	ListByOwner(ctx context.Context, ownerID string) ([]models.Task, error)

	// Update applies the supplied changes to the task matching the scope and
	// returns the stored result
	Update(ctx context.Context, scope TaskScope, changes TaskChanges) (*models.Task, error)

	// Delete removes the task matching the scope
	Delete(ctx context.Context, scope TaskScope) error
}

// TaskScope selects a single task. An empty OwnerID leaves ownership
// unconstrained.
type TaskScope struct {
	ID      string
	OwnerID string
}

// TaskChanges holds a partial update. Nil fields are left untouched.
type TaskChanges struct {
	Title     *string
	Completed *bool
	Priority  *models.TaskPriority
	UpdatedAt time.Time
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create inserts a new user
	Create(ctx context.Context, user *models.User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id string) (*models.User, error)

	// FindByEmail finds a user by normalised email
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}
