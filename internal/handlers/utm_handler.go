package handlers

import (
	"net/http"

	"membrostotal_backend/internal/middleware"
	"membrostotal_backend/internal/models"
	"membrostotal_backend/internal/services"
	"membrostotal_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type UtmHandler struct {
	*BaseHandler
	utmService services.UtmService
}

func NewUtmHandler(base *BaseHandler, utmService services.UtmService) *UtmHandler {
	return &UtmHandler{
		BaseHandler: base,
		utmService:  utmService,
	}
}

func (h *UtmHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Tracking records come from landing pages, so create is public.
	r.POST("/utm", h.Create)

	admin := r.Group("/utm")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireProfiles(models.ProfileAdmin))
	{
		admin.GET("", h.List)
	}
}

func (h *UtmHandler) Create(c *gin.Context) {
	var req dto.CreateUtmParamRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	param, err := h.utmService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SuccessWithID(param.ID))
}

func (h *UtmHandler) List(c *gin.Context) {
	envelope, err := h.utmService.List(ParsePagination(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, envelope)
}
