package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/todo-tracker-api/internal/dto"
	apierrors "github.com/yukikurage/todo-tracker-api/internal/errors"
	"github.com/yukikurage/todo-tracker-api/internal/middleware"
	"github.com/yukikurage/todo-tracker-api/internal/services"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// ListTasks returns the tasks of the owner named by the "owner" query
// parameter ("id" is accepted as well), newest first
func (h *TaskHandler) ListTasks(c *gin.Context) {
	owner := c.Query("owner")
	if owner == "" {
		owner = c.Query("id")
	}

	tasks, err := h.taskService.ListTasks(c.Request.Context(), services.ListTasksInput{
		OwnerID: owner,
		ActorID: middleware.GetActorID(c),
	})
	if err != nil {
		apierrors.Respond(c, err, "Failed to fetch todos")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTOs(tasks))
}

// GetTask returns a single task
func (h *TaskHandler) GetTask(c *gin.Context) {
	task, err := h.taskService.GetTask(c.Request.Context(), c.Param("id"), middleware.GetActorID(c))
	if err != nil {
		apierrors.Respond(c, err, "Failed to fetch todo")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// CreateTask creates a new task
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	ownerID := req.OwnerID()
	if actorID := middleware.GetActorID(c); actorID != "" && ownerID == "" {
		ownerID = actorID
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), services.CreateTaskInput{
		OwnerID:   ownerID,
		Title:     req.Title,
		Completed: req.Completed,
		Priority:  req.Priority,
	})
	if err != nil {
		apierrors.Respond(c, err, "Failed to create todo")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// UpdateTask applies a partial update to an existing task
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), services.UpdateTaskInput{
		TaskID:       c.Param("id"),
		ActorID:      middleware.GetActorID(c),
		Title:        req.Title.Value,
		TitleSet:     req.Title.Set,
		Completed:    req.Completed.Value,
		CompletedSet: req.Completed.Set,
		Priority:     req.Priority.Value,
		PrioritySet:  req.Priority.Set,
	})
	if err != nil {
		apierrors.Respond(c, err, "Failed to update todo")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// DeleteTask deletes a task
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, err := h.taskService.DeleteTask(c.Request.Context(), c.Param("id"), middleware.GetActorID(c))
	if err != nil {
		apierrors.Respond(c, err, "Failed to delete todo")
		return
	}

	c.JSON(http.StatusOK, dto.DeleteTaskResponse{
		Message: "Todo deleted successfully",
		ID:      id,
	})
}
