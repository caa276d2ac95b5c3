package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/smishra291/Ebook-Management-System/internal/http/response"
	"github.com/smishra291/Ebook-Management-System/internal/platform/apierr"
	"github.com/smishra291/Ebook-Management-System/internal/platform/logger"
	"github.com/smishra291/Ebook-Management-System/internal/services"
)

type AuthHandler struct {
	log         *logger.Logger
	authService services.AuthService
}

func NewAuthHandler(log *logger.Logger, authService services.AuthService) *AuthHandler {
	return &AuthHandler{log: log.With("handler", "AuthHandler"), authService: authService}
}

func (ah *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondAPIError(c, ah.log, apierr.Validation("Email and password are required"))
		return
	}

	result, err := ah.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.RespondAPIError(c, ah.log, err)
		return
	}

	response.RespondOK(c, gin.H{
		"message": "Login successful",
		"user_id": result.UserID.String(),
		"role":    result.Role,
	})
}
