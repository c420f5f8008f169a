package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskhub_backend/internal/services"
	"taskhub_backend/internal/services/dto"
)

type TaskHandler struct {
	*BaseHandler
	taskService services.TaskService
}

func NewTaskHandler(base *BaseHandler, taskService services.TaskService) *TaskHandler {
	return &TaskHandler{
		BaseHandler: base,
		taskService: taskService,
	}
}

// RegisterRoutes mounts the task CRUD; every route requires a token and
// the service enforces the creator-or-admin rule per task.
func (h *TaskHandler) RegisterRoutes(rg *gin.RouterGroup, authn gin.HandlerFunc) {
	tasks := rg.Group("/tasks")
	tasks.Use(authn)
	{
		tasks.POST("", h.CreateTask)
		tasks.GET("", h.ListTasks)
		tasks.GET("/:id", h.GetTask)
		tasks.PATCH("/:id", h.UpdateTask)
		tasks.DELETE("/:id", h.DeleteTask)
	}
}

// CreateTask godoc
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  dto.CreateTaskRequest  true  "Task payload"
// @Success      201  {object}  models.Task
// @Failure      400  {object}  apperrors.ErrorResponse
// @Router       /tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	claims, ok := h.RequireClaims(c)
	if !ok {
		return
	}

	var req dto.CreateTaskRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	task, err := h.taskService.CreateTask(db, claims, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// ListTasks godoc
// @Summary      List tasks
// @Description  Admins get every task; other users only the tasks they created.
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  models.Task
// @Router       /tasks [get]
func (h *TaskHandler) ListTasks(c *gin.Context) {
	claims, ok := h.RequireClaims(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	tasks, err := h.taskService.ListTasks(db, claims)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// GetTask godoc
// @Summary      Get a task by id
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Task id"
// @Success      200  {object}  models.Task
// @Failure      403  {object}  apperrors.ErrorResponse
// @Failure      404  {object}  apperrors.ErrorResponse
// @Router       /tasks/{id} [get]
func (h *TaskHandler) GetTask(c *gin.Context) {
	claims, ok := h.RequireClaims(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	task, err := h.taskService.GetTask(db, claims, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// UpdateTask godoc
// @Summary      Update a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  string                 true  "Task id"
// @Param        request  body  dto.UpdateTaskRequest  true  "Fields to change"
// @Success      200  {object}  models.Task
// @Failure      403  {object}  apperrors.ErrorResponse
// @Failure      404  {object}  apperrors.ErrorResponse
// @Router       /tasks/{id} [patch]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	claims, ok := h.RequireClaims(c)
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	task, err := h.taskService.UpdateTask(db, claims, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask godoc
// @Summary      Delete a task
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Task id"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  apperrors.ErrorResponse
// @Failure      404  {object}  apperrors.ErrorResponse
// @Router       /tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	claims, ok := h.RequireClaims(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.taskService.DeleteTask(db, claims, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully."})
}
