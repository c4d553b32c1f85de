package services

import (
	"context"
	"testing"
	"time"

	"github.com/juju/clock/testclock"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/todo-tracker-api/internal/auth"
	"github.com/yukikurage/todo-tracker-api/internal/config"
	"github.com/yukikurage/todo-tracker-api/internal/database"
)

var epoch = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type testEnv struct {
	store       *database.Store
	clock       *testclock.Clock
	authService *AuthService
	taskService *TaskService
}

func setupTestEnv(t *testing.T) testEnv {
	t.Helper()

	store, err := database.Open(context.Background(), &config.Config{
		DBDriver:   config.DriverSQLite,
		SQLitePath: ":memory:",
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		store.Close(context.Background())
	})

	clk := testclock.NewClock(epoch)
	tokens, err := auth.NewTokenIssuer([]byte("test-secret"), 0, clk)
	require.NoError(t, err)

	return testEnv{
		store:       store,
		clock:       clk,
		authService: NewAuthService(store.Users, tokens, clk),
		taskService: NewTaskService(store.Tasks, store.Users, clk),
	}
}
