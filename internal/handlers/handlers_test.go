package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/juju/clock/testclock"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/todo-tracker-api/internal/auth"
	"github.com/yukikurage/todo-tracker-api/internal/config"
	"github.com/yukikurage/todo-tracker-api/internal/database"
	"github.com/yukikurage/todo-tracker-api/internal/repository"
	"github.com/yukikurage/todo-tracker-api/internal/services"
)

var epoch = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type testEnv struct {
	router      *gin.Engine
	clock       *testclock.Clock
	store       *database.Store
	authService *services.AuthService
}

type envOptions struct {
	requireAuth bool
	tasks       repository.TaskRepository
}

func setupTestEnv(t *testing.T, opts envOptions) testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := database.Open(context.Background(), &config.Config{
		DBDriver:   config.DriverSQLite,
		SQLitePath: ":memory:",
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		store.Close(context.Background())
	})

	tasks := store.Tasks
	if opts.tasks != nil {
		tasks = opts.tasks
	}

	clk := testclock.NewClock(epoch)
	tokens, err := auth.NewTokenIssuer([]byte("test-secret"), 0, clk)
	require.NoError(t, err)
	authService := services.NewAuthService(store.Users, tokens, clk)
	taskService := services.NewTaskService(tasks, store.Users, clk)

	r := gin.New()
	RegisterRoutes(r, Routes{
		Auth:        NewAuthHandler(authService),
		Tasks:       NewTaskHandler(taskService),
		Health:      NewHealthHandler(clk),
		Verifier:    authService,
		RequireAuth: opts.requireAuth,
	})

	return testEnv{
		router:      r,
		clock:       clk,
		store:       store,
		authService: authService,
	}
}

// do sends a request through the router. A nil body sends no payload; a
// string body is sent verbatim.
func (env testEnv) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func (env testEnv) register(t *testing.T, name, email, password string) string {
	t.Helper()

	user, err := env.authService.Register(context.Background(), services.RegisterInput{
		Name:     name,
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)
	return user.ID
}

func (env testEnv) login(t *testing.T, email, password string) string {
	t.Helper()

	result, err := env.authService.Login(context.Background(), services.LoginInput{Email: email, Password: password})
	require.NoError(t, err)
	return result.Token
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}
