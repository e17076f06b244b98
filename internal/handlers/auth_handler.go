package handlers

import (
	"net/http"

	"membrostotal_backend/internal/services"
	"membrostotal_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/auth", h.Login)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	response, err := h.authService.Login(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
