package database

import (
	"errors"
	"fmt"

	"membrostotal_backend/internal/auth"
	"membrostotal_backend/internal/logger"
	"membrostotal_backend/internal/models"

	"gorm.io/gorm"
)

var seedProfiles = []models.Profile{
	{Name: models.ProfileAdmin, Label: "Administrador"},
	{Name: models.ProfileEmployee, Label: "Colaborador"},
	{Name: models.ProfileExpert, Label: "Especialista"},
}

var seedPaymentTypes = []models.PaymentType{
	{Label: "Mensalidade"},
	{Label: "Comissão"},
	{Label: "Bônus"},
}

// Seed inserts the reference data (profiles, payment types) and the
// first admin user. Idempotent: existing rows are left untouched.
func Seed(db *gorm.DB, adminEmail, adminPassword string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, p := range seedProfiles {
			if err := upsertProfile(tx, p); err != nil {
				return err
			}
		}
		for _, pt := range seedPaymentTypes {
			if err := upsertPaymentType(tx, pt); err != nil {
				return err
			}
		}
		return seedFirstAdmin(tx, adminEmail, adminPassword)
	})
}

func upsertProfile(tx *gorm.DB, p models.Profile) error {
	var existing models.Profile
	err := tx.Where("name = ?", p.Name).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return tx.Create(&p).Error
}

func upsertPaymentType(tx *gorm.DB, pt models.PaymentType) error {
	var existing models.PaymentType
	err := tx.Where("label = ?", pt.Label).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return tx.Create(&pt).Error
}

func seedFirstAdmin(tx *gorm.DB, email, password string) error {
	if email == "" || password == "" {
		logger.GetLogger().Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD not set, skipping admin seeding")
		return nil
	}

	var existing models.User
	err := tx.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	var adminProfile models.Profile
	if err := tx.Where("name = ?", models.ProfileAdmin).First(&adminProfile).Error; err != nil {
		return fmt.Errorf("admin profile not found: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := models.User{
		Email:        email,
		PasswordHash: hash,
		FirstName:    "Admin",
		ProfileID:    &adminProfile.ID,
		Status:       models.UserStatusActive,
	}
	if err := tx.Create(&admin).Error; err != nil {
		return err
	}

	logger.GetLogger().Info("first admin user created", "email", email)
	return nil
}
