package models

// Profile is static reference data (admin, employee, expert).
type Profile struct {
	BaseModel
	Name  string `gorm:"uniqueIndex;not null" json:"name"`
	Label string `gorm:"not null" json:"label"`
}
