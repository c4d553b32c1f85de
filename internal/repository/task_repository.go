package repository

import (
	"context"

	"github.com/juju/errors"
	"github.com/yukikurage/todo-tracker-api/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(ctx context.Context, task *models.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return translateGormError(err, "task %q", task.ID)
	}
	return nil
}

// FindByID finds a task by ID, optionally constrained to an owner
func (r *GormTaskRepository) FindByID(ctx context.Context, scope TaskScope) (*models.Task, error) {
	var task models.Task
	if err := r.db.WithContext(ctx).Scopes(scopeTask(scope)).First(&task).Error; err != nil {
		return nil, translateGormError(err, "task %q", scope.ID)
	}
	return &task, nil
}

// ListByOwner retrieves the owner's tasks, most recently created first
func (r *GormTaskRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Task, error) {
	tasks := []models.Task{}
	if ownerID == "" {
		return tasks, nil
	}

	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&tasks).Error; err != nil {
		return nil, errors.Trace(err)
	}

	return tasks, nil
}

// Update writes only the supplied columns and reloads the task
func (r *GormTaskRepository) Update(ctx context.Context, scope TaskScope, changes TaskChanges) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Scopes(scopeTask(scope)).First(&task).Error; err != nil {
			return err
		}

		columns := map[string]any{"updated_at": changes.UpdatedAt}
		if changes.Title != nil {
			columns["title"] = *changes.Title
		}
		if changes.Completed != nil {
			columns["completed"] = *changes.Completed
		}
		if changes.Priority != nil {
			columns["priority"] = *changes.Priority
		}

		if err := tx.Model(&models.Task{}).Where("id = ?", task.ID).Updates(columns).Error; err != nil {
			return err
		}

		return tx.Where("id = ?", task.ID).First(&task).Error
	})
	if err != nil {
		return nil, translateGormError(err, "task %q", scope.ID)
	}

	return &task, nil
}

// Delete hard deletes a task
func (r *GormTaskRepository) Delete(ctx context.Context, scope TaskScope) error {
	result := r.db.WithContext(ctx).Scopes(scopeTask(scope)).Delete(&models.Task{})
	if result.Error != nil {
		return errors.Trace(result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NotFoundf("task %q", scope.ID)
	}
	return nil
}

func scopeTask(scope TaskScope) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Where("id = ?", scope.ID)
		if scope.OwnerID != "" {
			db = db.Where("owner_id = ?", scope.OwnerID)
		}
		return db
	}
}
