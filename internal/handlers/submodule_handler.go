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

type SubModuleHandler struct {
	*BaseHandler
	subModuleService services.SubModuleService
}

func NewSubModuleHandler(base *BaseHandler, subModuleService services.SubModuleService) *SubModuleHandler {
	return &SubModuleHandler{
		BaseHandler:      base,
		subModuleService: subModuleService,
	}
}

func (h *SubModuleHandler) RegisterRoutes(r *gin.RouterGroup) {
	subModules := r.Group("/submodules")
	subModules.Use(middleware.AuthMiddleware())
	{
		subModules.GET("", h.List)
		subModules.GET("/:id", h.Get)
		subModules.GET("/:id/thumbnail", h.GetThumbnailURL)
	}

	admin := r.Group("/admin/submodules")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireProfiles(models.ProfileAdmin))
	{
		admin.POST("", h.Create)
		admin.PATCH("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
		admin.PUT("/:id/users", h.SetUsers)
		admin.PUT("/:id/thumbnail", h.UploadThumbnail)
	}
}

func (h *SubModuleHandler) List(c *gin.Context) {
	moduleID := ParseQueryUint(c, "module_id")
	if moduleID == 0 {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Parâmetro module_id é obrigatório"))
		return
	}

	var (
		subModules []dto.SubModuleResponse
		err        error
	)

	if isAdmin(c) {
		subModules, err = h.subModuleService.ListByModule(moduleID)
	} else {
		userID, ok := h.GetAndAuthorizeUserID(c)
		if !ok {
			return
		}
		subModules, err = h.subModuleService.ListByModuleForUser(moduleID, userID)
	}
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, subModules)
}

func (h *SubModuleHandler) Get(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	subModule, err := h.subModuleService.FindByID(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, subModule)
}

func (h *SubModuleHandler) GetThumbnailURL(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	url, err := h.subModuleService.ThumbnailURL(c.Request.Context(), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SignedURLResponse{URL: url})
}

func (h *SubModuleHandler) Create(c *gin.Context) {
	var req dto.CreateSubModuleRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	subModule, err := h.subModuleService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SuccessWithID(subModule.ID))
}

func (h *SubModuleHandler) Update(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateSubModuleRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	subModule, err := h.subModuleService.Update(id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, subModule)
}

func (h *SubModuleHandler) Delete(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.subModuleService.Delete(id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success())
}

func (h *SubModuleHandler) SetUsers(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.SetUsersRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.subModuleService.SetUsers(id, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success())
}

func (h *SubModuleHandler) UploadThumbnail(c *gin.Context) {
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

	err = h.subModuleService.UploadThumbnail(
		c.Request.Context(), id,
		file, header.Size, header.Header.Get("Content-Type"), ext,
	)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success())
}
