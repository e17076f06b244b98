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

type PaymentRequestHandler struct {
	*BaseHandler
	requestService services.PaymentRequestService
}

func NewPaymentRequestHandler(base *BaseHandler, requestService services.PaymentRequestService) *PaymentRequestHandler {
	return &PaymentRequestHandler{
		BaseHandler:    base,
		requestService: requestService,
	}
}

func (h *PaymentRequestHandler) RegisterRoutes(r *gin.RouterGroup) {
	requests := r.Group("/payment-requests")
	requests.Use(middleware.AuthMiddleware())
	{
		requests.POST("", h.Create)
		requests.GET("", h.ListOwn)
		requests.GET("/:id", h.Get)
		requests.PUT("/:id/photo", h.UploadPhoto)
		requests.GET("/:id/photo", h.GetPhotoURL)
	}

	admin := r.Group("/admin/payment-requests")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireProfiles(models.ProfileAdmin))
	{
		admin.GET("", h.List)
		admin.PATCH("/:id/approve", h.Approve)
		admin.PATCH("/:id/pay", h.Pay)
		admin.PATCH("/:id/cancel", h.Cancel)
		admin.DELETE("/:id", h.Delete)
	}
}

func (h *PaymentRequestHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreatePaymentRequestRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	request, err := h.requestService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SuccessWithID(request.ID))
}

func (h *PaymentRequestHandler) ListOwn(c *gin.Context) {
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

	envelope, err := h.requestService.ListForRequester(userID, filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, envelope)
}

func (h *PaymentRequestHandler) getAuthorized(c *gin.Context) (*dto.PaymentRequestResponse, bool) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return nil, false
	}

	request, err := h.requestService.FindByID(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return nil, false
	}

	if !isAdmin(c) {
		userID, ok := h.GetAndAuthorizeUserID(c)
		if !ok {
			return nil, false
		}
		if request.RequesterID != userID {
			apperrors.HandleError(c, apperrors.ErrInsufficientPermissions)
			return nil, false
		}
	}

	return request, true
}

func (h *PaymentRequestHandler) Get(c *gin.Context) {
	request, ok := h.getAuthorized(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, request)
}

func (h *PaymentRequestHandler) UploadPhoto(c *gin.Context) {
	request, ok := h.getAuthorized(c)
	if !ok {
		return
	}

	file, header, ext, ok := h.OpenUploadedFile(c)
	if !ok {
		return
	}
	defer file.Close()

	err := h.requestService.UploadPhoto(
		c.Request.Context(), request.ID,
		file, header.Size, header.Header.Get("Content-Type"), ext,
	)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success())
}

func (h *PaymentRequestHandler) GetPhotoURL(c *gin.Context) {
	request, ok := h.getAuthorized(c)
	if !ok {
		return
	}

	url, err := h.requestService.PhotoURL(c.Request.Context(), request.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SignedURLResponse{URL: url})
}

func (h *PaymentRequestHandler) List(c *gin.Context) {
	var query dto.ListPaymentsQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	filter, err := buildPaymentFilter(c, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	envelope, err := h.requestService.List(filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, envelope)
}

func (h *PaymentRequestHandler) Approve(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	request, err := h.requestService.Approve(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, request)
}

func (h *PaymentRequestHandler) Pay(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	request, err := h.requestService.Pay(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, request)
}

func (h *PaymentRequestHandler) Cancel(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.CancelRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	request, err := h.requestService.Cancel(id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, request)
}

func (h *PaymentRequestHandler) Delete(c *gin.Context) {
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
