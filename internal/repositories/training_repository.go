package repositories

import (
	"errors"

	"membrostotal_backend/internal/models"

	"gorm.io/gorm"
)

var ErrTrainingNotFound = errors.New("training not found")

type TrainingRepository interface {
	Create(training *models.Training) error
	FindByID(id uint) (*models.Training, error)
	FindAll() ([]models.Training, error)
	FindAllForUser(userID uint) ([]models.Training, error)
	Update(training *models.Training) error
	UpdateThumbnailKey(id uint, key string) error
	SetUsers(trainingID uint, userIDs []uint) error
	// DeleteCascade removes the training and its whole subtree
	// (modules, submodules, lessons) inside one transaction.
	DeleteCascade(id uint) error
}

type TrainingRepositoryImpl struct {
	db *gorm.DB
}

func NewTrainingRepository(db *gorm.DB) TrainingRepository {
	return &TrainingRepositoryImpl{db: db}
}

func (r *TrainingRepositoryImpl) Create(training *models.Training) error {
	return r.db.Create(training).Error
}

func (r *TrainingRepositoryImpl) FindByID(id uint) (*models.Training, error) {
	var training models.Training
	err := r.db.Preload("Modules", func(db *gorm.DB) *gorm.DB {
		return db.Order("modules.sort_order asc")
	}).First(&training, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTrainingNotFound
		}
		return nil, err
	}
	return &training, nil
}

func (r *TrainingRepositoryImpl) FindAll() ([]models.Training, error) {
	var trainings []models.Training
	err := r.db.Order("sort_order asc, id asc").Find(&trainings).Error
	return trainings, err
}

// FindAllForUser returns only trainings the user was granted access to.
func (r *TrainingRepositoryImpl) FindAllForUser(userID uint) ([]models.Training, error) {
	var trainings []models.Training
	err := r.db.Joins("JOIN training_users ON training_users.training_id = trainings.id").
		Where("training_users.user_id = ?", userID).
		Order("trainings.sort_order asc, trainings.id asc").
		Find(&trainings).Error
	return trainings, err
}

func (r *TrainingRepositoryImpl) Update(training *models.Training) error {
	return r.db.Save(training).Error
}

func (r *TrainingRepositoryImpl) UpdateThumbnailKey(id uint, key string) error {
	result := r.db.Model(&models.Training{}).Where("id = ?", id).
		Update("thumbnail_key", key)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTrainingNotFound
	}
	return nil
}

func (r *TrainingRepositoryImpl) SetUsers(trainingID uint, userIDs []uint) error {
	training := models.Training{BaseModel: models.BaseModel{ID: trainingID}}
	users := make([]models.User, 0, len(userIDs))
	for _, id := range userIDs {
		users = append(users, models.User{BaseModel: models.BaseModel{ID: id}})
	}
	return r.db.Model(&training).Association("Users").Replace(users)
}

func (r *TrainingRepositoryImpl) DeleteCascade(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var training models.Training
		if err := tx.First(&training, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTrainingNotFound
			}
			return err
		}

		var moduleIDs []uint
		if err := tx.Model(&models.Module{}).Where("training_id = ?", id).
			Pluck("id", &moduleIDs).Error; err != nil {
			return err
		}

		if len(moduleIDs) > 0 {
			var subModuleIDs []uint
			if err := tx.Model(&models.SubModule{}).Where("module_id IN ?", moduleIDs).
				Pluck("id", &subModuleIDs).Error; err != nil {
				return err
			}

			if len(subModuleIDs) > 0 {
				if err := tx.Where("sub_module_id IN ?", subModuleIDs).
					Delete(&models.Lesson{}).Error; err != nil {
					return err
				}
				if err := tx.Where("module_id IN ?", moduleIDs).
					Delete(&models.SubModule{}).Error; err != nil {
					return err
				}
			}

			if err := tx.Where("training_id = ?", id).
				Delete(&models.Module{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&models.Training{}, id).Error
	})
}
