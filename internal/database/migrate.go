package database

import (
	"membrostotal_backend/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates the schema for every model.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Profile{},
		&models.User{},
		&models.Training{},
		&models.Module{},
		&models.SubModule{},
		&models.Lesson{},
		&models.PaymentType{},
		&models.Payment{},
		&models.PaymentRequest{},
		&models.Refund{},
		&models.Notification{},
		&models.NotificationUser{},
		&models.Meeting{},
		&models.ExpertRequest{},
		&models.UtmParam{},
	)
}
