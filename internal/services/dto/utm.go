package dto

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"membrostotal_backend/internal/models"
)

type CreateUtmParamRequest struct {
	UtmSource   string          `json:"utmSource"`
	UtmMedium   string          `json:"utmMedium"`
	UtmCampaign string          `json:"utmCampaign"`
	UtmContent  string          `json:"utmContent"`
	UtmTerm     string          `json:"utmTerm"`
	Extra       json.RawMessage `json:"extra"`
}

type UtmParamResponse struct {
	ID          uint            `json:"id"`
	UtmSource   string          `json:"utmSource"`
	UtmMedium   string          `json:"utmMedium"`
	UtmCampaign string          `json:"utmCampaign"`
	UtmContent  string          `json:"utmContent"`
	UtmTerm     string          `json:"utmTerm"`
	Extra       json.RawMessage `json:"extra"`
	CreatedAt   time.Time       `json:"createdAt"`
}

func (r *CreateUtmParamRequest) ToModel() *models.UtmParam {
	return &models.UtmParam{
		UtmSource:   r.UtmSource,
		UtmMedium:   r.UtmMedium,
		UtmCampaign: r.UtmCampaign,
		UtmContent:  r.UtmContent,
		UtmTerm:     r.UtmTerm,
		Extra:       datatypes.JSON(r.Extra),
	}
}

func NewUtmParamResponse(u *models.UtmParam) UtmParamResponse {
	return UtmParamResponse{
		ID:          u.ID,
		UtmSource:   u.UtmSource,
		UtmMedium:   u.UtmMedium,
		UtmCampaign: u.UtmCampaign,
		UtmContent:  u.UtmContent,
		UtmTerm:     u.UtmTerm,
		Extra:       json.RawMessage(u.Extra),
		CreatedAt:   u.CreatedAt,
	}
}

func NewUtmParamResponses(params []models.UtmParam) []UtmParamResponse {
	out := make([]UtmParamResponse, 0, len(params))
	for i := range params {
		out = append(out, NewUtmParamResponse(&params[i]))
	}
	return out
}
