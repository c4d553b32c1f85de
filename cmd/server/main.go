package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/juju/clock"
	"github.com/juju/loggo/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/yukikurage/todo-tracker-api/internal/auth"
	"github.com/yukikurage/todo-tracker-api/internal/config"
	"github.com/yukikurage/todo-tracker-api/internal/database"
	"github.com/yukikurage/todo-tracker-api/internal/handlers"
	"github.com/yukikurage/todo-tracker-api/internal/middleware"
	"github.com/yukikurage/todo-tracker-api/internal/services"
)

var logger = loggo.GetLogger("taskapi")

func main() {
	if err := run(); err != nil {
		logger.Criticalf("%v", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration; a missing signing secret stops the process here
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := loggo.ConfigureLoggers(cfg.LogConfig); err != nil {
		return err
	}

	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := database.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			logger.Warningf("closing store: %v", err)
		}
	}()

	clk := clock.WallClock
	tokens, err := auth.NewTokenIssuer([]byte(cfg.JWTSecret), cfg.TokenTTL, clk)
	if err != nil {
		return err
	}

	authService := services.NewAuthService(store.Users, tokens, clk)
	taskService := services.NewTaskService(store.Tasks, store.Users, clk)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := middleware.NewMetrics(registry)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(metrics.Handler())

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	handlers.RegisterRoutes(r, handlers.Routes{
		Auth:        handlers.NewAuthHandler(authService),
		Tasks:       handlers.NewTaskHandler(taskService),
		Health:      handlers.NewHealthHandler(clk),
		Verifier:    authService,
		RequireAuth: cfg.RequireAuth,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("server running on %s", cfg.Addr())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Infof("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
