package repositories

import (
	"membrostotal_backend/internal/models"
	"membrostotal_backend/pkg/pagination"

	"gorm.io/gorm"
)

type UtmRepository interface {
	Create(param *models.UtmParam) error
	FindAll(p pagination.Params) ([]models.UtmParam, int64, error)
}

type UtmRepositoryImpl struct {
	db *gorm.DB
}

func NewUtmRepository(db *gorm.DB) UtmRepository {
	return &UtmRepositoryImpl{db: db}
}

func (r *UtmRepositoryImpl) Create(param *models.UtmParam) error {
	return r.db.Create(param).Error
}

func (r *UtmRepositoryImpl) FindAll(p pagination.Params) ([]models.UtmParam, int64, error) {
	var total int64
	if err := r.db.Model(&models.UtmParam{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var params []models.UtmParam
	err := r.db.Scopes(pagination.Scope(p)).
		Order("created_at desc").
		Find(&params).Error
	if err != nil {
		return nil, 0, err
	}
	return params, total, nil
}
