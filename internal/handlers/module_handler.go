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

type ModuleHandler struct {
	*BaseHandler
	moduleService services.ModuleService
}

func NewModuleHandler(base *BaseHandler, moduleService services.ModuleService) *ModuleHandler {
	return &ModuleHandler{
		BaseHandler:   base,
		moduleService: moduleService,
	}
}

func (h *ModuleHandler) RegisterRoutes(r *gin.RouterGroup) {
	modules := r.Group("/modules")
	modules.Use(middleware.AuthMiddleware())
	{
		modules.GET("", h.List)
		modules.GET("/:id", h.Get)
		modules.GET("/:id/thumbnail", h.GetThumbnailURL)
	}

	admin := r.Group("/admin/modules")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireProfiles(models.ProfileAdmin))
	{
		admin.POST("", h.Create)
		admin.PATCH("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
		admin.PUT("/:id/users", h.SetUsers)
		admin.PUT("/:id/thumbnail", h.UploadThumbnail)
	}
}

func (h *ModuleHandler) List(c *gin.Context) {
	trainingID := ParseQueryUint(c, "training_id")
	if trainingID == 0 {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Parâmetro training_id é obrigatório"))
		return
	}

	var (
		modules []dto.ModuleResponse
		err     error
	)

	if isAdmin(c) {
		modules, err = h.moduleService.ListByTraining(trainingID)
	} else {
		userID, ok := h.GetAndAuthorizeUserID(c)
		if !ok {
			return
		}
		modules, err = h.moduleService.ListByTrainingForUser(trainingID, userID)
	}
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, modules)
}

func (h *ModuleHandler) Get(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	module, err := h.moduleService.FindByID(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, module)
}

func (h *ModuleHandler) GetThumbnailURL(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	url, err := h.moduleService.ThumbnailURL(c.Request.Context(), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SignedURLResponse{URL: url})
}

func (h *ModuleHandler) Create(c *gin.Context) {
	var req dto.CreateModuleRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	module, err := h.moduleService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SuccessWithID(module.ID))
}

func (h *ModuleHandler) Update(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateModuleRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	module, err := h.moduleService.Update(id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, module)
}

func (h *ModuleHandler) Delete(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.moduleService.Delete(id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success())
}

func (h *ModuleHandler) SetUsers(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.SetUsersRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.moduleService.SetUsers(id, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success())
}

func (h *ModuleHandler) UploadThumbnail(c *gin.Context) {
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

	err = h.moduleService.UploadThumbnail(
		c.Request.Context(), id,
		file, header.Size, header.Header.Get("Content-Type"), ext,
	)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success())
}
