package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/todo-tracker-api/internal/dto"
	apierrors "github.com/yukikurage/todo-tracker-api/internal/errors"
	"github.com/yukikurage/todo-tracker-api/internal/services"
)

// AuthHandler coordinates account registration and login.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register creates a new account.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Name, a valid email and password are required")
		return
	}

	_, err := h.authService.Register(c.Request.Context(), services.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		apierrors.Respond(c, err, "Failed to create user")
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Successfully created user."})
}

// Login verifies credentials and returns a session token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Email and password are required")
		return
	}

	result, err := h.authService.Login(c.Request.Context(), services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		apierrors.Respond(c, err, "Failed to login user")
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Message: "Login successful!",
		User:    dto.ToUserDTO(*result.User),
		Token:   result.Token,
	})
}
