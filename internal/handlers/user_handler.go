package handlers

import (
	"net/http"

	"membrostotal_backend/internal/middleware"
	"membrostotal_backend/internal/models"
	"membrostotal_backend/internal/services"
	"membrostotal_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
	authService services.AuthService
}

func NewUserHandler(base *BaseHandler, userService services.UserService, authService services.AuthService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
		authService: authService,
	}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	me := r.Group("/me")
	me.Use(middleware.AuthMiddleware())
	{
		me.GET("", h.GetMe)
		me.PATCH("", h.UpdateMe)
		me.PATCH("/password", h.ChangePassword)
		me.PUT("/photo", h.UploadMyPhoto)
		me.GET("/photo", h.GetMyPhotoURL)
	}

	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireProfiles(models.ProfileAdmin))
	{
		admin.GET("/users", h.ListUsers)
		admin.POST("/users", h.CreateUser)
		admin.GET("/users/:id", h.GetUser)
		admin.PATCH("/users/:id", h.UpdateUser)
		admin.DELETE("/users/:id", h.DeleteUser)
		admin.PATCH("/users/:id/password", h.ResetPassword)
		admin.GET("/users/:id/photo", h.GetUserPhotoURL)
		admin.GET("/profiles", h.ListProfiles)
	}
}

func (h *UserHandler) GetMe(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.FindByID(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateMeRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateMe(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.authService.ChangePassword(userID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success())
}

func (h *UserHandler) UploadMyPhoto(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	file, header, ext, ok := h.OpenUploadedFile(c)
	if !ok {
		return
	}
	defer file.Close()

	err := h.userService.UploadPhoto(
		c.Request.Context(), userID,
		file, header.Size, header.Header.Get("Content-Type"), ext,
	)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success())
}

func (h *UserHandler) GetMyPhotoURL(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	url, err := h.userService.PhotoURL(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SignedURLResponse{URL: url})
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	var query dto.ListUsersQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	envelope, err := h.userService.List(&query, ParsePagination(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, envelope)
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.userService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SuccessWithID(user.ID))
}

func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	user, err := h.userService.FindByID(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.userService.Update(id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.userService.Delete(id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success())
}

func (h *UserHandler) ResetPassword(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.ResetPasswordRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.userService.ResetPassword(id, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success())
}

func (h *UserHandler) GetUserPhotoURL(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	url, err := h.userService.PhotoURL(c.Request.Context(), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SignedURLResponse{URL: url})
}

func (h *UserHandler) ListProfiles(c *gin.Context) {
	profiles, err := h.userService.ListProfiles()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profiles)
}
