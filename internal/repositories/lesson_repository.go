package repositories

import (
	"errors"

	"membrostotal_backend/internal/models"

	"gorm.io/gorm"
)

var ErrLessonNotFound = errors.New("lesson not found")

type LessonRepository interface {
	Create(lesson *models.Lesson) error
	FindByID(id uint) (*models.Lesson, error)
	FindBySubModule(subModuleID uint) ([]models.Lesson, error)
	Update(lesson *models.Lesson) error
	UpdateThumbnailKey(id uint, key string) error
	Delete(id uint) error
}

type LessonRepositoryImpl struct {
	db *gorm.DB
}

func NewLessonRepository(db *gorm.DB) LessonRepository {
	return &LessonRepositoryImpl{db: db}
}

func (r *LessonRepositoryImpl) Create(lesson *models.Lesson) error {
	return r.db.Create(lesson).Error
}

func (r *LessonRepositoryImpl) FindByID(id uint) (*models.Lesson, error) {
	var lesson models.Lesson
	err := r.db.First(&lesson, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLessonNotFound
		}
		return nil, err
	}
	return &lesson, nil
}

func (r *LessonRepositoryImpl) FindBySubModule(subModuleID uint) ([]models.Lesson, error) {
	var lessons []models.Lesson
	err := r.db.Where("sub_module_id = ?", subModuleID).
		Order("sort_order asc, id asc").
		Find(&lessons).Error
	return lessons, err
}

func (r *LessonRepositoryImpl) Update(lesson *models.Lesson) error {
	return r.db.Save(lesson).Error
}

func (r *LessonRepositoryImpl) UpdateThumbnailKey(id uint, key string) error {
	result := r.db.Model(&models.Lesson{}).Where("id = ?", id).
		Update("thumbnail_key", key)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLessonNotFound
	}
	return nil
}

func (r *LessonRepositoryImpl) Delete(id uint) error {
	result := r.db.Delete(&models.Lesson{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLessonNotFound
	}
	return nil
}
