package handlers

import (
	"net/http"

	"membrostotal_backend/internal/middleware"
	"membrostotal_backend/internal/models"
	"membrostotal_backend/internal/services"
	"membrostotal_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ExpertRequestHandler struct {
	*BaseHandler
	requestService services.ExpertRequestService
}

func NewExpertRequestHandler(base *BaseHandler, requestService services.ExpertRequestService) *ExpertRequestHandler {
	return &ExpertRequestHandler{
		BaseHandler:    base,
		requestService: requestService,
	}
}

func (h *ExpertRequestHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Public intake, the only unauthenticated mutation besides /utm.
	r.POST("/expert-requests", h.Create)

	admin := r.Group("/admin/expert-requests")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireProfiles(models.ProfileAdmin))
	{
		admin.GET("", h.List)
		admin.GET("/:id", h.Get)
		admin.DELETE("/:id", h.Delete)
	}
}

func (h *ExpertRequestHandler) Create(c *gin.Context) {
	var req dto.CreateExpertRequestRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	request, err := h.requestService.Create(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SuccessWithID(request.ID))
}

func (h *ExpertRequestHandler) List(c *gin.Context) {
	envelope, err := h.requestService.List(ParsePagination(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, envelope)
}

func (h *ExpertRequestHandler) Get(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	request, err := h.requestService.FindByID(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, request)
}

func (h *ExpertRequestHandler) Delete(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.requestService.Delete(id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success())
}
