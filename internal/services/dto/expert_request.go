package dto

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"membrostotal_backend/internal/models"
)

type CreateExpertRequestRequest struct {
	Name      string          `json:"name" validate:"required"`
	Email     string          `json:"email" validate:"required,email"`
	Whatsapp  string          `json:"whatsapp"`
	Instagram string          `json:"instagram"`
	Niche     string          `json:"niche"`
	Answers   json.RawMessage `json:"answers"`
}

type ExpertRequestResponse struct {
	ID        uint            `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Whatsapp  string          `json:"whatsapp"`
	Instagram string          `json:"instagram"`
	Niche     string          `json:"niche"`
	Answers   json.RawMessage `json:"answers"`
	CreatedAt time.Time       `json:"createdAt"`
}

func (r *CreateExpertRequestRequest) ToModel() *models.ExpertRequest {
	return &models.ExpertRequest{
		Name:      r.Name,
		Email:     r.Email,
		Whatsapp:  r.Whatsapp,
		Instagram: r.Instagram,
		Niche:     r.Niche,
		Answers:   datatypes.JSON(r.Answers),
	}
}

func NewExpertRequestResponse(e *models.ExpertRequest) ExpertRequestResponse {
	return ExpertRequestResponse{
		ID:        e.ID,
		Name:      e.Name,
		Email:     e.Email,
		Whatsapp:  e.Whatsapp,
		Instagram: e.Instagram,
		Niche:     e.Niche,
		Answers:   json.RawMessage(e.Answers),
		CreatedAt: e.CreatedAt,
	}
}

func NewExpertRequestResponses(requests []models.ExpertRequest) []ExpertRequestResponse {
	out := make([]ExpertRequestResponse, 0, len(requests))
	for i := range requests {
		out = append(out, NewExpertRequestResponse(&requests[i]))
	}
	return out
}
