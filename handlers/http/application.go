package httpHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"microfin-server/entities"
	"microfin-server/usecases"
)

type ApplicationHandler struct {
	useCase *usecases.ApplicationUseCase
}

func NewApplicationHandler(useCase *usecases.ApplicationUseCase) *ApplicationHandler {
	return &ApplicationHandler{useCase: useCase}
}

type CreateApplicationRequest struct {
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type AttachTokenRequest struct {
	Token string `json:"token"`
}

// Create handles POST /api/applications
func (h *ApplicationHandler) Create(c *gin.Context) {
	var req CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving application"})
		return
	}

	app, err := h.useCase.Create(req.Name, req.City, req.Country)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving application"})
		return
	}
	c.JSON(http.StatusCreated, app)
}

// UpdateStatus handles PUT /api/applications/:id. An unknown id responds
// 200 with a null body, never 404.
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating application status"})
		return
	}

	app, err := h.useCase.UpdateStatus(c.Param("id"), req.Status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating application status"})
		return
	}
	c.JSON(http.StatusOK, app)
}

// AttachToken handles POST /api/applications/:id/token. Same null-on-missing
// semantics as UpdateStatus.
func (h *ApplicationHandler) AttachToken(c *gin.Context) {
	var req AttachTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error adding token to application"})
		return
	}

	app, err := h.useCase.AttachToken(c.Param("id"), req.Token)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error adding token to application"})
		return
	}
	c.JSON(http.StatusOK, app)
}

// Filter handles GET /api/applications/filter
func (h *ApplicationHandler) Filter(c *gin.Context) {
	apps, err := h.useCase.Filter(c.Query("city"), c.Query("country"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error filtering applications"})
		return
	}
	if apps == nil {
		apps = []entities.Application{}
	}
	c.JSON(http.StatusOK, apps)
}
