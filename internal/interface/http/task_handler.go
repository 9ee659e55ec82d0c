package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/adityarmn/go-todo-app/internal/application"
	"github.com/adityarmn/go-todo-app/internal/interface/middleware"
	"github.com/adityarmn/go-todo-app/pkg/helpers"
	"github.com/adityarmn/go-todo-app/pkg/response"
)

type TaskHandler struct {
	Svc    *application.TaskService
	Logger *logrus.Logger
}

func NewTaskHandler(svc *application.TaskService, logger *logrus.Logger) *TaskHandler {
	return &TaskHandler{Svc: svc, Logger: logger}
}

// taskRequest carries the mutable task fields. Empty values are accepted on
// purpose; presence is the only thing the contract asks for.
type taskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// List GET /
func (h *TaskHandler) List(c *gin.Context) {
	owner := c.GetString(middleware.CtxUserIDKey)
	tasks, err := h.Svc.List(c.Request.Context(), owner)
	if err != nil {
		helpers.LogError(h.Logger, "list tasks failed", err, logrus.Fields{"request_id": c.GetString("request_id")})
		response.Fail(c, http.StatusInternalServerError, "Server error", nil)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// Create POST /add-task
func (h *TaskHandler) Create(c *gin.Context) {
	owner := c.GetString(middleware.CtxUserIDKey)
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", nil)
		return
	}
	t, err := h.Svc.Create(c.Request.Context(), owner, req.Title, req.Description)
	if err != nil {
		helpers.LogError(h.Logger, "create task failed", err, logrus.Fields{"request_id": c.GetString("request_id")})
		response.Fail(c, http.StatusInternalServerError, "Server error", nil)
		return
	}
	response.Success(c, http.StatusCreated, "Task added successfully", gin.H{"task": t})
}

// GetByID GET /update-task/:id
// An absent or unowned task is not an error here; the body is null and the
// client decides what to do with it.
func (h *TaskHandler) GetByID(c *gin.Context) {
	owner := c.GetString(middleware.CtxUserIDKey)
	t, err := h.Svc.GetByID(c.Request.Context(), owner, c.Param("id"))
	if err != nil {
		if errors.Is(err, application.ErrTaskNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		helpers.LogError(h.Logger, "get task failed", err, logrus.Fields{"request_id": c.GetString("request_id")})
		response.Fail(c, http.StatusInternalServerError, "Server error", nil)
		return
	}
	c.JSON(http.StatusOK, t)
}

// Update PUT /update-task/:id
func (h *TaskHandler) Update(c *gin.Context) {
	owner := c.GetString(middleware.CtxUserIDKey)
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", nil)
		return
	}
	t, err := h.Svc.Update(c.Request.Context(), owner, c.Param("id"), req.Title, req.Description)
	if err != nil {
		if errors.Is(err, application.ErrTaskNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		helpers.LogError(h.Logger, "update task failed", err, logrus.Fields{"request_id": c.GetString("request_id")})
		response.Fail(c, http.StatusInternalServerError, "Server error", nil)
		return
	}
	c.JSON(http.StatusOK, t)
}

// Delete DELETE /delete-task/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	owner := c.GetString(middleware.CtxUserIDKey)
	id := c.Param("id")
	if err := h.Svc.Delete(c.Request.Context(), owner, id); err != nil {
		if !errors.Is(err, application.ErrNothingDeleted) {
			helpers.LogError(h.Logger, "delete task failed", err, logrus.Fields{"request_id": c.GetString("request_id")})
		}
		response.Fail(c, http.StatusInternalServerError, "Error deleting task!", nil)
		return
	}
	response.Success(c, http.StatusOK, "Task deleted successfully!", gin.H{"id": id})
}
