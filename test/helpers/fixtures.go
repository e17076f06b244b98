package helpers

import (
	"testing"

	"membrostotal_backend/internal/auth"
	"membrostotal_backend/internal/models"

	"gorm.io/gorm"
)

// DefaultPassword is the plaintext password of every fixture user.
const DefaultPassword = "senha-forte-123"

// CreateUser inserts a user with the given profile and returns it with
// a valid bearer token.
func CreateUser(t *testing.T, db *gorm.DB, email, firstName, profileName string) (*models.User, string) {
	hash, err := auth.HashPassword(DefaultPassword)
	if err != nil {
		t.Fatalf("failed to hash fixture password: %v", err)
	}

	user := models.User{
		Email:        email,
		PasswordHash: hash,
		FirstName:    firstName,
		Status:       models.UserStatusActive,
	}

	if profileName != "" {
		var profile models.Profile
		if err := db.Where("name = ?", profileName).First(&profile).Error; err != nil {
			t.Fatalf("fixture profile %q not found: %v", profileName, err)
		}
		user.ProfileID = &profile.ID
	}

	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create fixture user: %v", err)
	}

	token, err := auth.GenerateToken(user.ID, profileName)
	if err != nil {
		t.Fatalf("failed to generate fixture token: %v", err)
	}
	return &user, token
}

// CreateAdmin is shorthand for an admin fixture.
func CreateAdmin(t *testing.T, db *gorm.DB, email string) (*models.User, string) {
	return CreateUser(t, db, email, "Admin", models.ProfileAdmin)
}

// FirstPaymentType returns a seeded payment type.
func FirstPaymentType(t *testing.T, db *gorm.DB) *models.PaymentType {
	var pt models.PaymentType
	if err := db.Order("id asc").First(&pt).Error; err != nil {
		t.Fatalf("no seeded payment type found: %v", err)
	}
	return &pt
}
