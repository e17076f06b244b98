package models

import "gorm.io/datatypes"

// ExpertRequest is the public intake form for expert candidates.
// Answers holds the free-form questionnaire block as JSON.
type ExpertRequest struct {
	BaseModel
	Name      string         `gorm:"not null" json:"name"`
	Email     string         `gorm:"not null;index" json:"email"`
	Whatsapp  string         `json:"whatsapp"`
	Instagram string         `json:"instagram"`
	Niche     string         `json:"niche"`
	Answers   datatypes.JSON `gorm:"type:jsonb" json:"answers"`
}
