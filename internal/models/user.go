package models

import "time"

type User struct {
	BaseModel
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	FirstName    string     `gorm:"not null" json:"firstName"`
	LastName     string     `json:"lastName"`
	BirthDate    *time.Time `json:"birthDate"`
	PhotoKey     string     `json:"-"`
	ProfileID    *uint      `gorm:"index" json:"profileId"`
	Status       UserStatus `gorm:"type:varchar(20);default:'active'" json:"status"`

	// Relations
	Profile *Profile `gorm:"foreignKey:ProfileID" json:"profile,omitempty"`
}

// FullName is the computed display name used by autocomplete and
// notification targets.
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// IsAdmin reports whether the user holds the admin profile.
func (u *User) IsAdmin() bool {
	return u.Profile != nil && u.Profile.Name == ProfileAdmin
}
