package repositories

import (
	"errors"
	"strings"
	"time"

	"membrostotal_backend/internal/models"
	"membrostotal_backend/pkg/pagination"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserFilter narrows admin listings. All predicates combine with AND.
type UserFilter struct {
	ProfileName string
	Status      models.UserStatus
	Search      string // matches email and name
	Pagination  pagination.Params
}

type UserRepository interface {
	Create(user *models.User) error
	FindByID(id uint) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	FindAll(filter UserFilter) ([]models.User, int64, error)
	FindActive() ([]models.User, error)
	FindByProfileName(profileName string) ([]models.User, error)
	Update(user *models.User) error
	UpdatePassword(userID uint, passwordHash string) error
	UpdatePhotoKey(userID uint, photoKey string) error
	Delete(userID uint) error
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) Create(user *models.User) error {
	var existing models.User
	if err := r.db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		return ErrUserAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.db.Create(user).Error
}

func (r *UserRepositoryImpl) FindByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Profile").First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Profile").First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindAll(filter UserFilter) ([]models.User, int64, error) {
	query := r.db.Model(&models.User{})

	if filter.ProfileName != "" {
		query = query.Joins("JOIN profiles ON profiles.id = users.profile_id").
			Where("profiles.name = ?", filter.ProfileName)
	}
	if filter.Status != "" {
		query = query.Where("users.status = ?", filter.Status)
	}
	if filter.Search != "" {
		search := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(users.email) LIKE ? OR LOWER(users.first_name) LIKE ? OR LOWER(users.last_name) LIKE ?",
			search, search, search,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	err := query.Preload("Profile").
		Scopes(pagination.Scope(filter.Pagination)).
		Order("users.id asc").
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *UserRepositoryImpl) FindActive() ([]models.User, error) {
	var users []models.User
	err := r.db.Where("status = ?", models.UserStatusActive).Find(&users).Error
	return users, err
}

func (r *UserRepositoryImpl) FindByProfileName(profileName string) ([]models.User, error) {
	var users []models.User
	err := r.db.Joins("JOIN profiles ON profiles.id = users.profile_id").
		Where("profiles.name = ?", profileName).
		Find(&users).Error
	return users, err
}

func (r *UserRepositoryImpl) Update(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *UserRepositoryImpl) UpdatePassword(userID uint, passwordHash string) error {
	result := r.db.Model(&models.User{}).Where("id = ?", userID).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) UpdatePhotoKey(userID uint, photoKey string) error {
	result := r.db.Model(&models.User{}).Where("id = ?", userID).
		Update("photo_key", photoKey)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) Delete(userID uint) error {
	result := r.db.Delete(&models.User{}, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// touchTime is shared by repositories that stamp transition times.
func touchTime() *time.Time {
	now := time.Now()
	return &now
}
