package handlers

import (
	"net/http"

	"membrostotal_backend/internal/middleware"
	"membrostotal_backend/internal/models"
	"membrostotal_backend/internal/repositories"
	"membrostotal_backend/internal/services"
	"membrostotal_backend/internal/services/dto"
	"membrostotal_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	*BaseHandler
	paymentService services.PaymentService
}

func NewPaymentHandler(base *BaseHandler, paymentService services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		BaseHandler:    base,
		paymentService: paymentService,
	}
}

func (h *PaymentHandler) RegisterRoutes(r *gin.RouterGroup) {
	payments := r.Group("/payments")
	payments.Use(middleware.AuthMiddleware())
	{
		payments.POST("", h.CreateOwn)
		payments.GET("", h.ListOwn)
		payments.GET("/:id", h.Get)
		payments.PUT("/:id/photo", h.UploadPhoto)
		payments.GET("/:id/photo", h.GetPhotoURL)
	}

	types := r.Group("/payment-types")
	types.Use(middleware.AuthMiddleware())
	{
		types.GET("", h.ListTypes)
	}

	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireProfiles(models.ProfileAdmin))
	{
		admin.GET("/payments", h.List)
		admin.POST("/payments", h.Create)
		admin.PATCH("/payments/:id", h.Update)
		admin.PATCH("/payments/:id/pay", h.Pay)
		admin.PATCH("/payments/:id/cancel", h.Cancel)
		admin.DELETE("/payments/:id", h.Delete)
		admin.POST("/payment-types", h.CreateType)
	}
}

// buildPaymentFilter translates the bound query into the repository
// filter, shared by the three payment-like handlers.
func buildPaymentFilter(c *gin.Context, query *dto.ListPaymentsQuery) (repositories.PaymentFilter, error) {
	filter := repositories.PaymentFilter{
		Status:     models.PaymentStatus(query.Status),
		UserID:     query.UserID,
		ExpertID:   query.ExpertID,
		Pagination: ParsePagination(c),
	}

	dateFrom, err := ParseQueryDate(c, "date_from")
	if err != nil {
		return filter, err
	}
	dateTo, err := ParseQueryDate(c, "date_to")
	if err != nil {
		return filter, err
	}

	filter.DateFrom = dateFrom
	filter.DateTo = dateTo
	return filter, nil
}

func (h *PaymentHandler) CreateOwn(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateOwnPaymentRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	payment, err := h.paymentService.CreateOwn(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SuccessWithID(payment.ID))
}

func (h *PaymentHandler) ListOwn(c *gin.Context) {
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

	envelope, err := h.paymentService.ListForUser(userID, filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, envelope)
}

// getAuthorized loads the payment and rejects callers that neither own
// it nor hold the admin profile.
func (h *PaymentHandler) getAuthorized(c *gin.Context) (*dto.PaymentResponse, bool) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return nil, false
	}

	payment, err := h.paymentService.FindByID(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return nil, false
	}

	if !isAdmin(c) {
		userID, ok := h.GetAndAuthorizeUserID(c)
		if !ok {
			return nil, false
		}
		if payment.UserID != userID {
			apperrors.HandleError(c, apperrors.ErrInsufficientPermissions)
			return nil, false
		}
	}

	return payment, true
}

func (h *PaymentHandler) Get(c *gin.Context) {
	payment, ok := h.getAuthorized(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, payment)
}

func (h *PaymentHandler) UploadPhoto(c *gin.Context) {
	payment, ok := h.getAuthorized(c)
	if !ok {
		return
	}

	file, header, ext, ok := h.OpenUploadedFile(c)
	if !ok {
		return
	}
	defer file.Close()

	err := h.paymentService.UploadPhoto(
		c.Request.Context(), payment.ID,
		file, header.Size, header.Header.Get("Content-Type"), ext,
	)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success())
}

func (h *PaymentHandler) GetPhotoURL(c *gin.Context) {
	payment, ok := h.getAuthorized(c)
	if !ok {
		return
	}

	url, err := h.paymentService.PhotoURL(c.Request.Context(), payment.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SignedURLResponse{URL: url})
}

func (h *PaymentHandler) List(c *gin.Context) {
	var query dto.ListPaymentsQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	filter, err := buildPaymentFilter(c, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	envelope, err := h.paymentService.List(filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, envelope)
}

func (h *PaymentHandler) Create(c *gin.Context) {
	var req dto.CreatePaymentRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	payment, err := h.paymentService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SuccessWithID(payment.ID))
}

func (h *PaymentHandler) Update(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdatePaymentRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	payment, err := h.paymentService.Update(id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, payment)
}

func (h *PaymentHandler) Pay(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	payment, err := h.paymentService.Pay(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, payment)
}

func (h *PaymentHandler) Cancel(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.CancelRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	payment, err := h.paymentService.Cancel(id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, payment)
}

func (h *PaymentHandler) Delete(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.paymentService.Delete(id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success())
}

func (h *PaymentHandler) ListTypes(c *gin.Context) {
	types, err := h.paymentService.ListTypes()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, types)
}

func (h *PaymentHandler) CreateType(c *gin.Context) {
	var req dto.CreatePaymentTypeRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	paymentType, err := h.paymentService.CreateType(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SuccessWithID(paymentType.ID))
}
