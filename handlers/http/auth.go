package httpHandler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"microfin-server/usecases"
)

type AuthHandler struct {
	useCase *usecases.AuthUseCase
}

func NewAuthHandler(useCase *usecases.AuthUseCase) *AuthHandler {
	return &AuthHandler{useCase: useCase}
}

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup handles POST /signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		return
	}

	err := h.useCase.Signup(req.Name, req.Email, req.Password)
	switch {
	case errors.Is(err, usecases.ErrMissingFields):
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
	case errors.Is(err, usecases.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error registering user", "error": err.Error()})
	default:
		c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
	}
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		return
	}

	token, err := h.useCase.Login(req.Email, req.Password)
	switch {
	case errors.Is(err, usecases.ErrMissingFields):
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
	case errors.Is(err, usecases.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
	case errors.Is(err, usecases.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error logging in", "error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Login successful", "token": token})
	}
}

// GetUser handles GET /user/:id
func (h *AuthHandler) GetUser(c *gin.Context) {
	user, err := h.useCase.GetUser(c.Param("id"))
	switch {
	case errors.Is(err, usecases.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching user", "error": err.Error()})
	default:
		c.JSON(http.StatusOK, user)
	}
}

// Logout handles POST /logout. There is no server-side session to
// invalidate; the caller discards the token.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}
