package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"kanbanlive/internal/repository"
)

type TaskHandler struct {
	taskRepo repository.TaskRepositoryInterface
	bus      Broadcaster
}

func NewTaskHandler(taskRepo repository.TaskRepositoryInterface, bus Broadcaster) *TaskHandler {
	return &TaskHandler{taskRepo: taskRepo, bus: bus}
}

type CreateTaskRequest struct {
	Content  string `json:"content" form:"content" binding:"required"`
	ColumnID uint   `json:"column_id" form:"column_id" binding:"required"`
}

type UpdateTaskRequest struct {
	ColumnID    *uint   `json:"column_id" form:"column_id"`
	Content     *string `json:"content" form:"content"`
	Description *string `json:"description" form:"description"`
}

// Create inserts a new task into a column. Parameters arrive either as
// a JSON body or as query parameters; clients of the original frontend
// use the latter.
func (h *TaskHandler) Create(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if err := c.ShouldBindQuery(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
	}

	ctx, cancel := storageContext(c)
	defer cancel()

	task, err := h.taskRepo.Create(ctx, req.Content, req.ColumnID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrColumnNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Column not found"})
		case errors.Is(err, repository.ErrStorageUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Storage unavailable"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		}
		return
	}

	h.bus.Broadcast(fmt.Sprintf("新增任務: %s", task.Content))
	c.JSON(http.StatusCreated, toTaskResponse(*task))
}

// Update applies a partial update to a task. Absent fields are left
// untouched; a request with no fields at all returns the task as-is.
// Changing column_id is how drag-and-drop moves a task between columns.
func (h *TaskHandler) Update(c *gin.Context) {
	taskID, err := strconv.ParseUint(c.Param("task_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if err := c.ShouldBindQuery(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
	}

	ctx, cancel := storageContext(c)
	defer cancel()

	patch := repository.TaskPatch{
		ColumnID:    req.ColumnID,
		Content:     req.Content,
		Description: req.Description,
	}
	task, err := h.taskRepo.Update(ctx, uint(taskID), patch)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrTaskNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		case errors.Is(err, repository.ErrColumnNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Column not found"})
		case errors.Is(err, repository.ErrStorageUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Storage unavailable"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		}
		return
	}

	h.bus.Broadcast(fmt.Sprintf("任務 #%d 已更新", task.ID))
	c.JSON(http.StatusOK, toTaskResponse(*task))
}
