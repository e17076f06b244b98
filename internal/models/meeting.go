package models

import "time"

// Meeting status is a stored column: pending on creation, moved to done
// either explicitly or by the meeting worker once the date passes, and
// canceled only by an explicit action.
type Meeting struct {
	BaseModel
	Title       string        `gorm:"not null" json:"title"`
	Description string        `json:"description"`
	Link        string        `json:"link"`
	Date        time.Time     `gorm:"not null;index" json:"date"`
	Status      MeetingStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`

	Users []User `gorm:"many2many:meeting_users" json:"users,omitempty"`
}
