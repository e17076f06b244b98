package repositories

import (
	"errors"

	"membrostotal_backend/internal/models"

	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository interface {
	Create(profile *models.Profile) error
	FindByID(id uint) (*models.Profile, error)
	FindByName(name string) (*models.Profile, error)
	FindAll() ([]models.Profile, error)
}

type ProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

func (r *ProfileRepositoryImpl) Create(profile *models.Profile) error {
	return r.db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindByID(id uint) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.First(&profile, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindByName(name string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.First(&profile, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindAll() ([]models.Profile, error) {
	var profiles []models.Profile
	err := r.db.Order("id asc").Find(&profiles).Error
	return profiles, err
}
