package database

import (
	"context"
	"time"

	"github.com/juju/errors"
	"github.com/yukikurage/todo-tracker-api/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const connectTimeout = 10 * time.Second

// ConnectMongo dials the document store and verifies it with a ping.
func ConnectMongo(ctx context.Context, uri, name string) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, errors.Annotate(err, "failed to connect to MongoDB")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, errors.Annotate(err, "failed to ping MongoDB")
	}

	log.Infof("connected to MongoDB database %q", name)
	return client, client.Database(name), nil
}

// EnsureIndexes creates the indexes the repositories rely on. Creating an
// index that already exists with the same keys is a no-op on the server.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := []struct {
		collection string
		model      mongo.IndexModel
	}{
		{
			repository.UsersCollection,
			mongo.IndexModel{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetName("idx_users_email").SetUnique(true),
			},
		},
		{
			repository.TasksCollection,
			mongo.IndexModel{
				Keys:    bson.D{{Key: "owner", Value: 1}, {Key: "created_at", Value: -1}},
				Options: options.Index().SetName("idx_tasks_owner_created"),
			},
		},
	}

	for _, idx := range indexes {
		name, err := db.Collection(idx.collection).Indexes().CreateOne(ctx, idx.model)
		if err != nil {
			return errors.Annotatef(err, "failed to create index on %s", idx.collection)
		}
		log.Debugf("ensured index %s on %s", name, idx.collection)
	}

	return nil
}
