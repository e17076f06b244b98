package models

import "time"

type Notification struct {
	BaseModel
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`

	Users []NotificationUser `gorm:"foreignKey:NotificationID;constraint:OnDelete:CASCADE" json:"-"`
}

// NotificationUser is the join row carrying the per-user read flag.
// Read state is per-(notification,user), never global.
type NotificationUser struct {
	BaseModel
	NotificationID uint       `gorm:"not null;uniqueIndex:idx_notification_user" json:"notificationId"`
	UserID         uint       `gorm:"not null;uniqueIndex:idx_notification_user" json:"userId"`
	Read           bool       `gorm:"default:false" json:"read"`
	ReadAt         *time.Time `json:"readAt"`

	Notification *Notification `gorm:"foreignKey:NotificationID" json:"notification,omitempty"`
}
