package repository

import (
	"context"
	stderrors "errors"

	"github.com/juju/errors"
	"github.com/yukikurage/todo-tracker-api/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return translateGormError(err, "user %q", user.Email)
	}
	return nil
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, translateGormError(err, "user %q", id)
	}
	return &user, nil
}

// FindByEmail finds a user by email
func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translateGormError(err, "user %q", email)
	}
	return &user, nil
}

// translateGormError maps GORM sentinel errors onto the repository error
// taxonomy. The driver must be opened with TranslateError enabled for
// duplicate keys to be recognised.
func translateGormError(err error, format string, args ...any) error {
	switch {
	case stderrors.Is(err, gorm.ErrRecordNotFound):
		return errors.NotFoundf(format, args...)
	case stderrors.Is(err, gorm.ErrDuplicatedKey):
		return errors.AlreadyExistsf(format, args...)
	default:
		return errors.Trace(err)
	}
}
