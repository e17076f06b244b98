package dto

import (
	"time"

	"membrostotal_backend/internal/models"
)

// CreateNotificationRequest targets either an explicit user list or,
// with all=true, every active user.
type CreateNotificationRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	UserIDs     []uint `json:"userIds" validate:"required_without=All"`
	All         bool   `json:"all"`
}

type NotificationResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// UserNotificationResponse is the recipient-side view: the notification
// plus this user's read state.
type UserNotificationResponse struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Read        bool       `json:"read"`
	ReadAt      *time.Time `json:"readAt"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type UnreadCountResponse struct {
	Unread int64 `json:"unread"`
}

func NewNotificationResponse(n *models.Notification) NotificationResponse {
	return NotificationResponse{
		ID:          n.ID,
		Title:       n.Title,
		Description: n.Description,
		CreatedAt:   n.CreatedAt,
	}
}

func NewNotificationResponses(notifications []models.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(notifications))
	for i := range notifications {
		out = append(out, NewNotificationResponse(&notifications[i]))
	}
	return out
}

func NewUserNotificationResponse(nu *models.NotificationUser) UserNotificationResponse {
	resp := UserNotificationResponse{
		ID:     nu.NotificationID,
		Read:   nu.Read,
		ReadAt: nu.ReadAt,
	}
	if nu.Notification != nil {
		resp.Title = nu.Notification.Title
		resp.Description = nu.Notification.Description
		resp.CreatedAt = nu.Notification.CreatedAt
	}
	return resp
}

func NewUserNotificationResponses(rows []models.NotificationUser) []UserNotificationResponse {
	out := make([]UserNotificationResponse, 0, len(rows))
	for i := range rows {
		out = append(out, NewUserNotificationResponse(&rows[i]))
	}
	return out
}
