package repositories

import (
	"errors"

	"membrostotal_backend/internal/models"

	"gorm.io/gorm"
)

var ErrModuleNotFound = errors.New("module not found")

type ModuleRepository interface {
	Create(module *models.Module) error
	FindByID(id uint) (*models.Module, error)
	FindAll() ([]models.Module, error)
	FindByTraining(trainingID uint) ([]models.Module, error)
	FindByTrainingForUser(trainingID, userID uint) ([]models.Module, error)
	Update(module *models.Module) error
	UpdateThumbnailKey(id uint, key string) error
	SetUsers(moduleID uint, userIDs []uint) error
	DeleteCascade(id uint) error
}

type ModuleRepositoryImpl struct {
	db *gorm.DB
}

func NewModuleRepository(db *gorm.DB) ModuleRepository {
	return &ModuleRepositoryImpl{db: db}
}

func (r *ModuleRepositoryImpl) Create(module *models.Module) error {
	return r.db.Create(module).Error
}

func (r *ModuleRepositoryImpl) FindByID(id uint) (*models.Module, error) {
	var module models.Module
	err := r.db.Preload("SubModules", func(db *gorm.DB) *gorm.DB {
		return db.Order("sub_modules.sort_order asc")
	}).First(&module, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrModuleNotFound
		}
		return nil, err
	}
	return &module, nil
}

func (r *ModuleRepositoryImpl) FindAll() ([]models.Module, error) {
	var modules []models.Module
	err := r.db.Order("sort_order asc, id asc").Find(&modules).Error
	return modules, err
}

func (r *ModuleRepositoryImpl) FindByTraining(trainingID uint) ([]models.Module, error) {
	var modules []models.Module
	err := r.db.Where("training_id = ?", trainingID).
		Order("sort_order asc, id asc").
		Find(&modules).Error
	return modules, err
}

func (r *ModuleRepositoryImpl) FindByTrainingForUser(trainingID, userID uint) ([]models.Module, error) {
	var modules []models.Module
	err := r.db.Joins("JOIN module_users ON module_users.module_id = modules.id").
		Where("modules.training_id = ? AND module_users.user_id = ?", trainingID, userID).
		Order("modules.sort_order asc, modules.id asc").
		Find(&modules).Error
	return modules, err
}

func (r *ModuleRepositoryImpl) Update(module *models.Module) error {
	return r.db.Save(module).Error
}

func (r *ModuleRepositoryImpl) UpdateThumbnailKey(id uint, key string) error {
	result := r.db.Model(&models.Module{}).Where("id = ?", id).
		Update("thumbnail_key", key)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrModuleNotFound
	}
	return nil
}

func (r *ModuleRepositoryImpl) SetUsers(moduleID uint, userIDs []uint) error {
	module := models.Module{BaseModel: models.BaseModel{ID: moduleID}}
	users := make([]models.User, 0, len(userIDs))
	for _, id := range userIDs {
		users = append(users, models.User{BaseModel: models.BaseModel{ID: id}})
	}
	return r.db.Model(&module).Association("Users").Replace(users)
}

func (r *ModuleRepositoryImpl) DeleteCascade(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var module models.Module
		if err := tx.First(&module, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrModuleNotFound
			}
			return err
		}

		var subModuleIDs []uint
		if err := tx.Model(&models.SubModule{}).Where("module_id = ?", id).
			Pluck("id", &subModuleIDs).Error; err != nil {
			return err
		}

		if len(subModuleIDs) > 0 {
			if err := tx.Where("sub_module_id IN ?", subModuleIDs).
				Delete(&models.Lesson{}).Error; err != nil {
				return err
			}
			if err := tx.Where("module_id = ?", id).
				Delete(&models.SubModule{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&models.Module{}, id).Error
	})
}
