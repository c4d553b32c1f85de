package database

import (
	"context"

	"github.com/juju/errors"
	"github.com/yukikurage/todo-tracker-api/internal/config"
	"github.com/yukikurage/todo-tracker-api/internal/repository"
)

// Store bundles the repositories for the configured backend.
type Store struct {
	Users repository.UserRepository
	Tasks repository.TaskRepository

	close func(ctx context.Context) error
}

// Open connects to the backend named by cfg.DBDriver, prepares its schema or
// indexes and returns the repositories bound to it.
func Open(ctx context.Context, cfg *config.Config) (*Store, error) {
	if cfg.DBDriver == config.DriverMongo {
		client, db, err := ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return nil, err
		}
		if err := EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		return &Store{
			Users: repository.NewMongoUserRepository(db),
			Tasks: repository.NewMongoTaskRepository(db),
			close: client.Disconnect,
		}, nil
	}

	db, err := Connect(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.DBDriver == config.DriverSQLite {
		// SQLite allows one writer; a single connection also keeps an
		// in-memory database alive for the lifetime of the store.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, errors.Trace(err)
		}
		sqlDB.SetMaxOpenConns(1)
	}
	if err := Migrate(db); err != nil {
		_ = Close(db)
		return nil, err
	}

	return &Store{
		Users: repository.NewUserRepository(db),
		Tasks: repository.NewTaskRepository(db),
		close: func(context.Context) error { return Close(db) },
	}, nil
}

// Close disconnects from the backend.
func (s *Store) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return errors.Trace(s.close(ctx))
}
