package repository

import (
	"context"
	stderrors "errors"

	"github.com/juju/errors"
	"github.com/yukikurage/todo-tracker-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	UsersCollection = "users"
	TasksCollection = "tasks"
)

// MongoUserRepository stores users as documents in the users collection
type MongoUserRepository struct {
	coll *mongo.Collection
}

// NewMongoUserRepository creates a UserRepository backed by MongoDB
func NewMongoUserRepository(db *mongo.Database) UserRepository {
	return &MongoUserRepository{coll: db.Collection(UsersCollection)}
}

// Create inserts a new user document
func (r *MongoUserRepository) Create(ctx context.Context, user *models.User) error {
	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		return translateMongoError(err, "user %q", user.Email)
	}
	return nil
}

// FindByID finds a user by ID
func (r *MongoUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"_id": id}, id)
}

// FindByEmail finds a user by email
func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email}, email)
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M, key string) (*models.User, error) {
	var user models.User
	if err := r.coll.FindOne(ctx, filter).Decode(&user); err != nil {
		return nil, translateMongoError(err, "user %q", key)
	}
	return &user, nil
}

func translateMongoError(err error, format string, args ...any) error {
	switch {
	case stderrors.Is(err, mongo.ErrNoDocuments):
		return errors.NotFoundf(format, args...)
	case mongo.IsDuplicateKeyError(err):
		return errors.AlreadyExistsf(format, args...)
	default:
		return errors.Trace(err)
	}
}
