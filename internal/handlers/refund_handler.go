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

type RefundHandler struct {
	*BaseHandler
	refundService services.RefundService
}

func NewRefundHandler(base *BaseHandler, refundService services.RefundService) *RefundHandler {
	return &RefundHandler{
		BaseHandler:   base,
		refundService: refundService,
	}
}

func (h *RefundHandler) RegisterRoutes(r *gin.RouterGroup) {
	refunds := r.Group("/refunds")
	refunds.Use(middleware.AuthMiddleware())
	{
		refunds.POST("", h.CreateOwn)
		refunds.GET("", h.ListOwn)
		refunds.GET("/:id", h.Get)
		refunds.PUT("/:id/photo", h.UploadPhoto)
		refunds.GET("/:id/photo", h.GetPhotoURL)
	}

	admin := r.Group("/admin/refunds")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireProfiles(models.ProfileAdmin))
	{
		admin.GET("", h.List)
		admin.POST("", h.Create)
		admin.PATCH("/:id/pay", h.Pay)
		admin.PATCH("/:id/cancel", h.Cancel)
		admin.DELETE("/:id", h.Delete)
	}
}

func (h *RefundHandler) CreateOwn(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateOwnRefundRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	refund, err := h.refundService.CreateOwn(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SuccessWithID(refund.ID))
}

func (h *RefundHandler) ListOwn(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var query dto.ListPaymentsQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	filter, err := buildPaymentFilter(c, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	envelope, err := h.refundService.ListForUser(userID, filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, envelope)
}

func (h *RefundHandler) getAuthorized(c *gin.Context) (*dto.RefundResponse, bool) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return nil, false
	}

	refund, err := h.refundService.FindByID(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return nil, false
	}

	if !isAdmin(c) {
		userID, ok := h.GetAndAuthorizeUserID(c)
		if !ok {
			return nil, false
		}
		if refund.UserID != userID {
			apperrors.HandleError(c, apperrors.ErrInsufficientPermissions)
			return nil, false
		}
	}

	return refund, true
}

func (h *RefundHandler) Get(c *gin.Context) {
	refund, ok := h.getAuthorized(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, refund)
}

func (h *RefundHandler) UploadPhoto(c *gin.Context) {
	refund, ok := h.getAuthorized(c)
	if !ok {
		return
	}

	file, header, ext, ok := h.OpenUploadedFile(c)
	if !ok {
		return
	}
	defer file.Close()

	err := h.refundService.UploadPhoto(
		c.Request.Context(), refund.ID,
		file, header.Size, header.Header.Get("Content-Type"), ext,
	)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success())
}

func (h *RefundHandler) GetPhotoURL(c *gin.Context) {
	refund, ok := h.getAuthorized(c)
	if !ok {
		return
	}

	url, err := h.refundService.PhotoURL(c.Request.Context(), refund.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SignedURLResponse{URL: url})
}

func (h *RefundHandler) List(c *gin.Context) {
	var query dto.ListPaymentsQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	filter, err := buildPaymentFilter(c, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	envelope, err := h.refundService.List(filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, envelope)
}

func (h *RefundHandler) Create(c *gin.Context) {
	var req dto.CreateRefundRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	refund, err := h.refundService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SuccessWithID(refund.ID))
}

func (h *RefundHandler) Pay(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	refund, err := h.refundService.Pay(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, refund)
}

func (h *RefundHandler) Cancel(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.CancelRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	refund, err := h.refundService.Cancel(id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, refund)
}

func (h *RefundHandler) Delete(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.refundService.Delete(id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success())
}
