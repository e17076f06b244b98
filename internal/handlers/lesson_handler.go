package handlers

import (
	"net/http"

	"membrostotal_backend/internal/middleware"
	"membrostotal_backend/internal/models"
	"membrostotal_backend/internal/services"
	"membrostotal_backend/internal/services/dto"
	"membrostotal_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type LessonHandler struct {
	*BaseHandler
	lessonService services.LessonService
}

func NewLessonHandler(base *BaseHandler, lessonService services.LessonService) *LessonHandler {
	return &LessonHandler{
		BaseHandler:   base,
		lessonService: lessonService,
	}
}

func (h *LessonHandler) RegisterRoutes(r *gin.RouterGroup) {
	lessons := r.Group("/lessons")
	lessons.Use(middleware.AuthMiddleware())
	{
		lessons.GET("", h.List)
		lessons.GET("/:id", h.Get)
		lessons.GET("/:id/thumbnail", h.GetThumbnailURL)
	}

	admin := r.Group("/admin/lessons")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireProfiles(models.ProfileAdmin))
	{
		admin.POST("", h.Create)
		admin.PATCH("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
		admin.PUT("/:id/thumbnail", h.UploadThumbnail)
	}
}

func (h *LessonHandler) List(c *gin.Context) {
	subModuleID := ParseQueryUint(c, "submodule_id")
	if subModuleID == 0 {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Parâmetro submodule_id é obrigatório"))
		return
	}

	lessons, err := h.lessonService.ListBySubModule(subModuleID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, lessons)
}

func (h *LessonHandler) Get(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	lesson, err := h.lessonService.FindByID(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, lesson)
}

func (h *LessonHandler) GetThumbnailURL(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	url, err := h.lessonService.ThumbnailURL(c.Request.Context(), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SignedURLResponse{URL: url})
}

func (h *LessonHandler) Create(c *gin.Context) {
	var req dto.CreateLessonRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	lesson, err := h.lessonService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SuccessWithID(lesson.ID))
}

func (h *LessonHandler) Update(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateLessonRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	lesson, err := h.lessonService.Update(id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, lesson)
}

func (h *LessonHandler) Delete(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.lessonService.Delete(id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success())
}

func (h *LessonHandler) UploadThumbnail(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	file, header, ext, ok := h.OpenUploadedFile(c)
	if !ok {
		return
	}
	defer file.Close()

	err = h.lessonService.UploadThumbnail(
		c.Request.Context(), id,
		file, header.Size, header.Header.Get("Content-Type"), ext,
	)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success())
}
