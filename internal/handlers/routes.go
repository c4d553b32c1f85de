package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/todo-tracker-api/internal/middleware"
)

// Routes collects everything RegisterRoutes mounts.
type Routes struct {
	Auth        *AuthHandler
	Tasks       *TaskHandler
	Health      *HealthHandler
	Verifier    middleware.TokenVerifier
	RequireAuth bool
}

// RegisterRoutes mounts the health probe and the /api routes on r. Each
// endpoint is also served under the path used by earlier clients.
func RegisterRoutes(r gin.IRouter, routes Routes) {
	r.GET("/health", routes.Health.Health)

	api := r.Group("/api")
	{
		users := api.Group("/users")
		{
			users.POST("", routes.Auth.Register)
			users.POST("/login", routes.Auth.Login)
		}
		api.POST("/user-create", routes.Auth.Register)
		api.POST("/user-login", routes.Auth.Login)

		authenticate := middleware.Authenticate(routes.Verifier, routes.RequireAuth)
		for _, path := range []string{"/tasks", "/todos"} {
			tasks := api.Group(path)
			tasks.Use(authenticate)
			{
				tasks.GET("", routes.Tasks.ListTasks)
				tasks.POST("", routes.Tasks.CreateTask)
				tasks.GET("/:id", routes.Tasks.GetTask)
				tasks.PATCH("/:id", routes.Tasks.UpdateTask)
				tasks.DELETE("/:id", routes.Tasks.DeleteTask)
			}
		}
	}
}
