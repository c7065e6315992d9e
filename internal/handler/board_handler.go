package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"kanbanlive/internal/model"
	"kanbanlive/internal/repository"
)

type BoardHandler struct {
	boardRepo repository.BoardRepositoryInterface
	bus       Broadcaster
}

func NewBoardHandler(boardRepo repository.BoardRepositoryInterface, bus Broadcaster) *BoardHandler {
	return &BoardHandler{boardRepo: boardRepo, bus: bus}
}

type TaskResponse struct {
	ID          uint   `json:"id"`
	Content     string `json:"content"`
	Description string `json:"description,omitempty"`
	ColumnID    uint   `json:"column_id"`
	OwnerID     *uint  `json:"owner_id,omitempty"`
}

type ColumnResponse struct {
	ID       uint           `json:"id"`
	Title    string         `json:"title"`
	Position int            `json:"position"`
	Tasks    []TaskResponse `json:"tasks"`
}

// GetBoard returns the full board: every column in position order with
// its tasks nested. There is no pagination.
func (h *BoardHandler) GetBoard(c *gin.Context) {
	ctx, cancel := storageContext(c)
	defer cancel()

	columns, err := h.boardRepo.GetBoard(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrStorageUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Storage unavailable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve board"})
		return
	}

	response := make([]ColumnResponse, 0, len(columns))
	for _, column := range columns {
		response = append(response, toColumnResponse(column))
	}
	c.JSON(http.StatusOK, response)
}

// ClearAll wipes the whole board. The operation is idempotent and,
// like every other mutation, notifies connected subscribers.
func (h *BoardHandler) ClearAll(c *gin.Context) {
	ctx, cancel := storageContext(c)
	defer cancel()

	if err := h.boardRepo.ClearBoard(ctx); err != nil {
		if errors.Is(err, repository.ErrStorageUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Storage unavailable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear board"})
		return
	}

	h.bus.Broadcast("看板已清空")
	c.JSON(http.StatusOK, gin.H{"message": "看板已徹底清空"})
}

func toColumnResponse(column model.Column) ColumnResponse {
	tasks := make([]TaskResponse, 0, len(column.Tasks))
	for _, task := range column.Tasks {
		tasks = append(tasks, toTaskResponse(task))
	}
	return ColumnResponse{
		ID:       column.ID,
		Title:    column.Title,
		Position: column.Position,
		Tasks:    tasks,
	}
}

func toTaskResponse(task model.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Content:     task.Content,
		Description: task.Description,
		ColumnID:    task.ColumnID,
		OwnerID:     task.OwnerID,
	}
}
