package delivery

import (
	"errors"
	"net/http"
	"time"

	"taskmanager-backend/internal/apperr"
	authdelivery "taskmanager-backend/internal/auth/delivery"
	"taskmanager-backend/internal/task/domain"
	"taskmanager-backend/internal/task/usecase"

	"github.com/gin-gonic/gin"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskUsecase usecase.TaskUsecase
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskUsecase usecase.TaskUsecase) *TaskHandler {
	return &TaskHandler{
		taskUsecase: taskUsecase,
	}
}

// CreateTaskRequest represents the request body for creating a task
type CreateTaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
}

// GetTasks returns tasks across all owners. Reachable anonymously.
// GET /api/tasks?filter=all|pending|completed
func (h *TaskHandler) GetTasks(c *gin.Context) {
	filter := domain.Filter(c.DefaultQuery("filter", "all"))

	tasks, err := h.taskUsecase.ListTasks(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list tasks"})
		return
	}

	if tasks == nil {
		tasks = []*domain.Task{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(tasks),
		"tasks":   tasks,
	})
}

// GetTaskByID returns any task by id, regardless of owner. Reachable anonymously.
// GET /api/tasks/:id
func (h *TaskHandler) GetTaskByID(c *gin.Context) {
	task, err := h.taskUsecase.GetTaskByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, apperr.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch task"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "task": task})
}

// CreateTask creates a new task owned by the authenticated user
// POST /api/tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserID)

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	task, err := h.taskUsecase.CreateTask(userID, req.Title, req.Description, req.DueDate)
	if err != nil {
		if errors.Is(err, apperr.ErrTitleRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create task"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Task created successfully",
		"task":    task,
	})
}

// UpdateTask applies a partial update to a task owned by the caller
// PUT /api/tasks/:id
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserID)
	taskID := c.Param("id")

	var updates usecase.TaskUpdateRequest
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	task, err := h.taskUsecase.UpdateTask(userID, taskID, updates)
	if err != nil {
		h.writeMutationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Task updated successfully",
		"task":    task,
	})
}

// DeleteTask deletes a task owned by the caller
// DELETE /api/tasks/:id
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserID)
	taskID := c.Param("id")

	if err := h.taskUsecase.DeleteTask(userID, taskID); err != nil {
		h.writeMutationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Task deleted successfully",
	})
}

// MarkComplete marks a task owned by the caller as completed
// PATCH /api/tasks/:id/complete
func (h *TaskHandler) MarkComplete(c *gin.Context) {
	h.setCompletion(c, true, "Task marked as complete")
}

// MarkIncomplete marks a task owned by the caller as not completed
// PATCH /api/tasks/:id/incomplete
func (h *TaskHandler) MarkIncomplete(c *gin.Context) {
	h.setCompletion(c, false, "Task marked as incomplete")
}

func (h *TaskHandler) setCompletion(c *gin.Context, completed bool, message string) {
	userID := c.GetString(authdelivery.ContextUserID)
	taskID := c.Param("id")

	task, err := h.taskUsecase.SetCompletion(userID, taskID, completed)
	if err != nil {
		h.writeMutationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
		"task":    task,
	})
}

// GetStatistics returns the caller's task counts
// GET /api/tasks/statistics
func (h *TaskHandler) GetStatistics(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserID)

	stats, err := h.taskUsecase.Statistics(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute statistics"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"statistics": stats,
	})
}

func (h *TaskHandler) writeMutationError(c *gin.Context, err error) {
	if errors.Is(err, apperr.ErrTaskNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Task not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "task operation failed"})
}
