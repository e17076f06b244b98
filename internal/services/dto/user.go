package dto

import (
	"time"

	"membrostotal_backend/internal/models"
)

type CreateUserRequest struct {
	Email     string     `json:"email" validate:"required,email"`
	Password  string     `json:"password" validate:"required,min=8"`
	FirstName string     `json:"firstName" validate:"required"`
	LastName  string     `json:"lastName"`
	BirthDate *time.Time `json:"birthDate"`
	Profile   string     `json:"profile" validate:"required,is-profile-name"`
}

type UpdateUserRequest struct {
	FirstName *string            `json:"firstName"`
	LastName  *string            `json:"lastName"`
	BirthDate *time.Time         `json:"birthDate"`
	Profile   *string            `json:"profile" validate:"omitempty,is-profile-name"`
	Status    *models.UserStatus `json:"status" validate:"omitempty,oneof=active inactive"`
}

// UpdateMeRequest is the self-service subset: profile and status stay
// admin-only.
type UpdateMeRequest struct {
	FirstName *string    `json:"firstName"`
	LastName  *string    `json:"lastName"`
	BirthDate *time.Time `json:"birthDate"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

type ListUsersQuery struct {
	Profile string `form:"profile"`
	Status  string `form:"status"`
	Search  string `form:"search"`
}

type ProfileResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Label string `json:"label"`
}

type UserResponse struct {
	ID        uint              `json:"id"`
	Email     string            `json:"email"`
	FirstName string            `json:"firstName"`
	LastName  string            `json:"lastName"`
	FullName  string            `json:"fullName"`
	BirthDate *time.Time        `json:"birthDate"`
	Status    models.UserStatus `json:"status"`
	Profile   *ProfileResponse  `json:"profile"`
	CreatedAt time.Time         `json:"createdAt"`
}

func NewProfileResponse(p *models.Profile) *ProfileResponse {
	if p == nil {
		return nil
	}
	return &ProfileResponse{ID: p.ID, Name: p.Name, Label: p.Label}
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		FullName:  u.FullName(),
		BirthDate: u.BirthDate,
		Status:    u.Status,
		Profile:   NewProfileResponse(u.Profile),
		CreatedAt: u.CreatedAt,
	}
}

func NewUserResponses(users []models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, NewUserResponse(&users[i]))
	}
	return out
}
