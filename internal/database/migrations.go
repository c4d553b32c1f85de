package database

import (
	"github.com/juju/errors"
	"github.com/yukikurage/todo-tracker-api/internal/models"
	"gorm.io/gorm"
)

// Migrate creates or updates the users and tasks tables together with the
// unique email index and the (owner_id, created_at) listing index.
func Migrate(db *gorm.DB) error {
	log.Infof("running database migrations")
	if err := db.AutoMigrate(
		&models.User{},
		&models.Task{},
	); err != nil {
		return errors.Annotate(err, "failed to run migrations")
	}
	log.Infof("database migrations completed")
	return nil
}
