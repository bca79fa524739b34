package httpHandler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"microfin-server/entities"
	"microfin-server/usecases"
)

type TodoHandler struct {
	useCase *usecases.TodoUseCase
}

func NewTodoHandler(useCase *usecases.TodoUseCase) *TodoHandler {
	return &TodoHandler{useCase: useCase}
}

type CreateTodoRequest struct {
	Text string `json:"text"`
}

// UpdateTodoRequest is a partial update; pointer fields so an explicit
// completed=false is distinguishable from an absent field.
type UpdateTodoRequest struct {
	Text      *string `json:"text"`
	Completed *bool   `json:"completed"`
}

// List handles GET /api/todos
func (h *TodoHandler) List(c *gin.Context) {
	todos, err := h.useCase.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	if todos == nil {
		todos = []entities.Todo{}
	}
	c.JSON(http.StatusOK, todos)
}

// Create handles POST /api/todos
func (h *TodoHandler) Create(c *gin.Context) {
	var req CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	todo, err := h.useCase.Create(req.Text)
	switch {
	case errors.Is(err, usecases.ErrMissingFields):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Text is required"})
	case err != nil:
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	default:
		c.JSON(http.StatusCreated, todo)
	}
}

// Update handles PUT /api/todos/:id
func (h *TodoHandler) Update(c *gin.Context) {
	var req UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	todo, err := h.useCase.Update(c.Param("id"), usecases.TodoPatch{
		Text:      req.Text,
		Completed: req.Completed,
	})
	switch {
	case errors.Is(err, usecases.ErrTodoNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Todo not found"})
	case err != nil:
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	default:
		c.JSON(http.StatusOK, todo)
	}
}

// Delete handles DELETE /api/todos/:id
func (h *TodoHandler) Delete(c *gin.Context) {
	err := h.useCase.Delete(c.Param("id"))
	switch {
	case errors.Is(err, usecases.ErrTodoNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Todo not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Todo deleted"})
	}
}
