package dto

import (
	"time"

	"membrostotal_backend/internal/models"
)

type CreateMeetingRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	Link        string    `json:"link" validate:"omitempty,url"`
	Date        time.Time `json:"date" validate:"required"`
	UserIDs     []uint    `json:"userIds" validate:"required,min=1"`
}

type UpdateMeetingRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Link        *string    `json:"link" validate:"omitempty,url"`
	Date        *time.Time `json:"date"`
	UserIDs     []uint     `json:"userIds"`
}

type UpdateMeetingStatusRequest struct {
	Status models.MeetingStatus `json:"status" validate:"required,is-meeting-status"`
}

type MeetingResponse struct {
	ID          uint                 `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Link        string               `json:"link"`
	Date        time.Time            `json:"date"`
	Status      models.MeetingStatus `json:"status"`
	Users       []UserResponse       `json:"users,omitempty"`
	CreatedAt   time.Time            `json:"createdAt"`
}

func NewMeetingResponse(m *models.Meeting) MeetingResponse {
	resp := MeetingResponse{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Link:        m.Link,
		Date:        m.Date,
		Status:      m.Status,
		CreatedAt:   m.CreatedAt,
	}
	if len(m.Users) > 0 {
		resp.Users = NewUserResponses(m.Users)
	}
	return resp
}

func NewMeetingResponses(meetings []models.Meeting) []MeetingResponse {
	out := make([]MeetingResponse, 0, len(meetings))
	for i := range meetings {
		out = append(out, NewMeetingResponse(&meetings[i]))
	}
	return out
}
