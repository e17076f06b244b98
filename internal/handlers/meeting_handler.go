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

type MeetingHandler struct {
	*BaseHandler
	meetingService services.MeetingService
}

func NewMeetingHandler(base *BaseHandler, meetingService services.MeetingService) *MeetingHandler {
	return &MeetingHandler{
		BaseHandler:    base,
		meetingService: meetingService,
	}
}

func (h *MeetingHandler) RegisterRoutes(r *gin.RouterGroup) {
	meetings := r.Group("/meetings")
	meetings.Use(middleware.AuthMiddleware())
	{
		meetings.GET("", h.ListOwn)
		meetings.GET("/:id", h.Get)
	}

	admin := r.Group("/admin/meetings")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireProfiles(models.ProfileAdmin))
	{
		admin.GET("", h.List)
		admin.POST("", h.Create)
		admin.PATCH("/:id", h.Update)
		admin.PATCH("/:id/done", h.MarkDone)
		admin.PATCH("/:id/cancel", h.Cancel)
		admin.DELETE("/:id", h.Delete)
	}
}

func (h *MeetingHandler) ListOwn(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	envelope, err := h.meetingService.ListForUser(userID, ParsePagination(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, envelope)
}

// Get serves admins and invitees only.
func (h *MeetingHandler) Get(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	meeting, err := h.meetingService.FindByID(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if !isAdmin(c) {
		userID, ok := h.GetAndAuthorizeUserID(c)
		if !ok {
			return
		}
		invited := false
		for i := range meeting.Users {
			if meeting.Users[i].ID == userID {
				invited = true
				break
			}
		}
		if !invited {
			apperrors.HandleError(c, apperrors.ErrInsufficientPermissions)
			return
		}
	}

	c.JSON(http.StatusOK, meeting)
}

func (h *MeetingHandler) List(c *gin.Context) {
	envelope, err := h.meetingService.List(ParsePagination(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, envelope)
}

func (h *MeetingHandler) Create(c *gin.Context) {
	var req dto.CreateMeetingRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	meeting, err := h.meetingService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SuccessWithID(meeting.ID))
}

func (h *MeetingHandler) Update(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateMeetingRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	meeting, err := h.meetingService.Update(id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, meeting)
}

func (h *MeetingHandler) MarkDone(c *gin.Context) {
	h.updateStatus(c, models.MeetingStatusDone)
}

func (h *MeetingHandler) Cancel(c *gin.Context) {
	h.updateStatus(c, models.MeetingStatusCanceled)
}

func (h *MeetingHandler) updateStatus(c *gin.Context, status models.MeetingStatus) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	meeting, err := h.meetingService.UpdateStatus(id, &dto.UpdateMeetingStatusRequest{Status: status})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, meeting)
}

func (h *MeetingHandler) Delete(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.meetingService.Delete(id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success())
}
