package repositories

import (
	"errors"

	"membrostotal_backend/internal/models"

	"gorm.io/gorm"
)

var ErrSubModuleNotFound = errors.New("submodule not found")

type SubModuleRepository interface {
	Create(subModule *models.SubModule) error
	FindByID(id uint) (*models.SubModule, error)
	FindAll() ([]models.SubModule, error)
	FindByModule(moduleID uint) ([]models.SubModule, error)
	FindByModuleForUser(moduleID, userID uint) ([]models.SubModule, error)
	Update(subModule *models.SubModule) error
	UpdateThumbnailKey(id uint, key string) error
	SetUsers(subModuleID uint, userIDs []uint) error
	DeleteCascade(id uint) error
}

type SubModuleRepositoryImpl struct {
	db *gorm.DB
}

func NewSubModuleRepository(db *gorm.DB) SubModuleRepository {
	return &SubModuleRepositoryImpl{db: db}
}

func (r *SubModuleRepositoryImpl) Create(subModule *models.SubModule) error {
	return r.db.Create(subModule).Error
}

func (r *SubModuleRepositoryImpl) FindByID(id uint) (*models.SubModule, error) {
	var subModule models.SubModule
	err := r.db.Preload("Lessons", func(db *gorm.DB) *gorm.DB {
		return db.Order("lessons.sort_order asc")
	}).First(&subModule, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubModuleNotFound
		}
		return nil, err
	}
	return &subModule, nil
}

func (r *SubModuleRepositoryImpl) FindAll() ([]models.SubModule, error) {
	var subModules []models.SubModule
	err := r.db.Order("sort_order asc, id asc").Find(&subModules).Error
	return subModules, err
}

func (r *SubModuleRepositoryImpl) FindByModule(moduleID uint) ([]models.SubModule, error) {
	var subModules []models.SubModule
	err := r.db.Where("module_id = ?", moduleID).
		Order("sort_order asc, id asc").
		Find(&subModules).Error
	return subModules, err
}

func (r *SubModuleRepositoryImpl) FindByModuleForUser(moduleID, userID uint) ([]models.SubModule, error) {
	var subModules []models.SubModule
	err := r.db.Joins("JOIN sub_module_users ON sub_module_users.sub_module_id = sub_modules.id").
		Where("sub_modules.module_id = ? AND sub_module_users.user_id = ?", moduleID, userID).
		Order("sub_modules.sort_order asc, sub_modules.id asc").
		Find(&subModules).Error
	return subModules, err
}

func (r *SubModuleRepositoryImpl) Update(subModule *models.SubModule) error {
	return r.db.Save(subModule).Error
}

func (r *SubModuleRepositoryImpl) UpdateThumbnailKey(id uint, key string) error {
	result := r.db.Model(&models.SubModule{}).Where("id = ?", id).
		Update("thumbnail_key", key)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSubModuleNotFound
	}
	return nil
}

func (r *SubModuleRepositoryImpl) SetUsers(subModuleID uint, userIDs []uint) error {
	subModule := models.SubModule{BaseModel: models.BaseModel{ID: subModuleID}}
	users := make([]models.User, 0, len(userIDs))
	for _, id := range userIDs {
		users = append(users, models.User{BaseModel: models.BaseModel{ID: id}})
	}
	return r.db.Model(&subModule).Association("Users").Replace(users)
}

func (r *SubModuleRepositoryImpl) DeleteCascade(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var subModule models.SubModule
		if err := tx.First(&subModule, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSubModuleNotFound
			}
			return err
		}

		if err := tx.Where("sub_module_id = ?", id).
			Delete(&models.Lesson{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.SubModule{}, id).Error
	})
}
