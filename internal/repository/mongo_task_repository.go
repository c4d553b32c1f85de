package repository

import (
	"context"

	"github.com/juju/errors"
	"github.com/yukikurage/todo-tracker-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoTaskRepository stores tasks as documents in the tasks collection.
// Each write touches a single document, so field-level $set updates are
// atomic without a transaction.
type MongoTaskRepository struct {
	coll *mongo.Collection
}

// NewMongoTaskRepository creates a TaskRepository backed by MongoDB
func NewMongoTaskRepository(db *mongo.Database) TaskRepository {
	return &MongoTaskRepository{coll: db.Collection(TasksCollection)}
}

// Create inserts a new task document
func (r *MongoTaskRepository) Create(ctx context.Context, task *models.Task) error {
	if _, err := r.coll.InsertOne(ctx, task); err != nil {
		return translateMongoError(err, "task %q", task.ID)
	}
	return nil
}

// FindByID finds a task matching the scope
func (r *MongoTaskRepository) FindByID(ctx context.Context, scope TaskScope) (*models.Task, error) {
	var task models.Task
	if err := r.coll.FindOne(ctx, taskFilter(scope)).Decode(&task); err != nil {
		return nil, translateMongoError(err, "task %q", scope.ID)
	}
	return &task, nil
}

// ListByOwner returns the owner's tasks sorted by creation time descending
func (r *MongoTaskRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Task, error) {
	tasks := []models.Task{}
	if ownerID == "" {
		return tasks, nil
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"owner": ownerID}, opts)
	if err != nil {
		return nil, errors.Trace(err)
	}
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, errors.Trace(err)
	}

	return tasks, nil
}

// Update applies a $set of the supplied fields and returns the new document
func (r *MongoTaskRepository) Update(ctx context.Context, scope TaskScope, changes TaskChanges) (*models.Task, error) {
	set := bson.M{"updated_at": changes.UpdatedAt}
	if changes.Title != nil {
		set["title"] = *changes.Title
	}
	if changes.Completed != nil {
		set["completed"] = *changes.Completed
	}
	if changes.Priority != nil {
		set["priority"] = *changes.Priority
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var task models.Task
	err := r.coll.FindOneAndUpdate(ctx, taskFilter(scope), bson.M{"$set": set}, opts).Decode(&task)
	if err != nil {
		return nil, translateMongoError(err, "task %q", scope.ID)
	}

	return &task, nil
}

// Delete removes the task matching the scope
func (r *MongoTaskRepository) Delete(ctx context.Context, scope TaskScope) error {
	result, err := r.coll.DeleteOne(ctx, taskFilter(scope))
	if err != nil {
		return errors.Trace(err)
	}
	if result.DeletedCount == 0 {
		return errors.NotFoundf("task %q", scope.ID)
	}
	return nil
}

func taskFilter(scope TaskScope) bson.M {
	filter := bson.M{"_id": scope.ID}
	if scope.OwnerID != "" {
		filter["owner"] = scope.OwnerID
	}
	return filter
}
