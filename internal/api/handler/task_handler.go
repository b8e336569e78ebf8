package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/taskmate/taskmate-api/internal/api/metrics"
	"github.com/taskmate/taskmate-api/internal/core/ports"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

type createTaskRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"dueDate" validate:"required"`
	Priority    string    `json:"priority" validate:"omitempty,oneof=Low Medium High"`
	Status      string    `json:"status" validate:"omitempty,oneof=Pending 'In Progress' Completed"`
	CategoryID  *int64    `json:"categoryID"`
}

type updateTaskRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	Priority    *string    `json:"priority" validate:"omitempty,oneof=Low Medium High"`
	Status      *string    `json:"status" validate:"omitempty,oneof=Pending 'In Progress' Completed"`
	CategoryID  *int64     `json:"categoryID"`
}

type setDueDateRequest struct {
	DueDate time.Time `json:"dueDate" validate:"required"`
}

// Create adds a task owned by the authenticated user.
func (h *TaskHandler) Create(c echo.Context) error {
	userID, err := principalID(c)
	if err != nil {
		return err
	}

	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := h.taskService.Create(c.Request().Context(), userID, ports.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Priority:    req.Priority,
		Status:      req.Status,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		return err
	}

	metrics.TasksCreatedTotal.WithLabelValues(task.Priority).Inc()
	return c.JSON(http.StatusCreated, task)
}

// List returns every task owned by the authenticated user.
func (h *TaskHandler) List(c echo.Context) error {
	userID, err := principalID(c)
	if err != nil {
		return err
	}

	tasks, err := h.taskService.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tasks)
}

// Update applies a partial edit to a task.
func (h *TaskHandler) Update(c echo.Context) error {
	taskID, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := h.taskService.Update(c.Request().Context(), taskID, ports.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Priority:    req.Priority,
		Status:      req.Status,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

// Delete removes a task. Deleting an absent task is still a 204.
func (h *TaskHandler) Delete(c echo.Context) error {
	taskID, err := pathID(c)
	if err != nil {
		return err
	}

	if _, err := h.taskService.Delete(c.Request().Context(), taskID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// SetDueDate replaces only the due date.
func (h *TaskHandler) SetDueDate(c echo.Context) error {
	taskID, err := pathID(c)
	if err != nil {
		return err
	}

	var req setDueDateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := h.taskService.SetDueDate(c.Request().Context(), taskID, req.DueDate)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

// MarkComplete transitions the task status to Completed.
func (h *TaskHandler) MarkComplete(c echo.Context) error {
	taskID, err := pathID(c)
	if err != nil {
		return err
	}

	task, err := h.taskService.MarkComplete(c.Request().Context(), taskID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

// pathID parses the numeric :id path parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
