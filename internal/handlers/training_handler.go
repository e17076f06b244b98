package handlers

import (
	"net/http"

	"membrostotal_backend/internal/middleware"
	"membrostotal_backend/internal/models"
	"membrostotal_backend/internal/services"
	"membrostotal_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type TrainingHandler struct {
	*BaseHandler
	trainingService services.TrainingService
}

func NewTrainingHandler(base *BaseHandler, trainingService services.TrainingService) *TrainingHandler {
	return &TrainingHandler{
		BaseHandler:     base,
		trainingService: trainingService,
	}
}

func (h *TrainingHandler) RegisterRoutes(r *gin.RouterGroup) {
	trainings := r.Group("/trainings")
	trainings.Use(middleware.AuthMiddleware())
	{
		trainings.GET("", h.List)
		trainings.GET("/:id", h.Get)
		trainings.GET("/:id/thumbnail", h.GetThumbnailURL)
	}

	admin := r.Group("/admin/trainings")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireProfiles(models.ProfileAdmin))
	{
		admin.POST("", h.Create)
		admin.PATCH("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
		admin.PUT("/:id/users", h.SetUsers)
		admin.PUT("/:id/thumbnail", h.UploadThumbnail)
	}
}

// isAdmin checks the profile claim placed by the auth middleware.
func isAdmin(c *gin.Context) bool {
	return middleware.GetProfile(c) == models.ProfileAdmin
}

// List shows everything to admins and only granted trainings to
// everyone else.
func (h *TrainingHandler) List(c *gin.Context) {
	var (
		trainings []dto.TrainingResponse
		err       error
	)

	if isAdmin(c) {
		trainings, err = h.trainingService.List()
	} else {
		userID, ok := h.GetAndAuthorizeUserID(c)
		if !ok {
			return
		}
		trainings, err = h.trainingService.ListForUser(userID)
	}
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, trainings)
}

func (h *TrainingHandler) Get(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	training, err := h.trainingService.FindByID(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, training)
}

func (h *TrainingHandler) GetThumbnailURL(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	url, err := h.trainingService.ThumbnailURL(c.Request.Context(), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SignedURLResponse{URL: url})
}

func (h *TrainingHandler) Create(c *gin.Context) {
	var req dto.CreateTrainingRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	training, err := h.trainingService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SuccessWithID(training.ID))
}

func (h *TrainingHandler) Update(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateTrainingRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	training, err := h.trainingService.Update(id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, training)
}

func (h *TrainingHandler) Delete(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.trainingService.Delete(id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success())
}

func (h *TrainingHandler) SetUsers(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.SetUsersRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.trainingService.SetUsers(id, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success())
}

func (h *TrainingHandler) UploadThumbnail(c *gin.Context) {
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

	err = h.trainingService.UploadThumbnail(
		c.Request.Context(), id,
		file, header.Size, header.Header.Get("Content-Type"), ext,
	)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success())
}
