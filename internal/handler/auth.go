package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"musicapi/internal/middleware"
	"musicapi/internal/service"
)

type AuthHandler interface {
	Register(c *gin.Context)
	Authenticate(c *gin.Context)
}

type authHandler struct {
	authService service.AuthService
	log         *logrus.Logger
}

func NewAuthHandler(authService service.AuthService, log *logrus.Logger) AuthHandler {
	return &authHandler{authService: authService, log: log}
}

type credentialsRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates the user and responds with the signed token as a bare JSON
// string, matching the login response shape.
func (h *authHandler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for registration: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request", "message": err.Error()})
		return
	}

	tokenString, err := h.authService.Register(c.Request.Context(), middleware.Conn(c), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateEmail) {
			c.JSON(http.StatusConflict, gin.H{"error": "duplicate_email", "message": err.Error()})
			return
		}
		h.log.Errorf("Failed to register user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query_failure", "message": "Failed to register user"})
		return
	}

	c.JSON(http.StatusOK, tokenString)
}

func (h *authHandler) Authenticate(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for login: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request", "message": err.Error()})
		return
	}

	tokenString, err := h.authService.Authenticate(c.Request.Context(), middleware.Conn(c), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "message": "Email not found"})
		case errors.Is(err, service.ErrInvalidPassword):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials", "message": "Password not found"})
		default:
			h.log.Errorf("Failed to authenticate user: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "query_failure", "message": "Failed to authenticate"})
		}
		return
	}

	c.JSON(http.StatusOK, tokenString)
}
