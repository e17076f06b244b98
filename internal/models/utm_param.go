package models

import "gorm.io/datatypes"

// UtmParam is a tracking record: create + list, no business rules.
type UtmParam struct {
	BaseModel
	UtmSource   string         `json:"utmSource"`
	UtmMedium   string         `json:"utmMedium"`
	UtmCampaign string         `json:"utmCampaign"`
	UtmContent  string         `json:"utmContent"`
	UtmTerm     string         `json:"utmTerm"`
	Extra       datatypes.JSON `gorm:"type:jsonb" json:"extra"`
}
