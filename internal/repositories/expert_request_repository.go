package repositories

import (
	"errors"

	"membrostotal_backend/internal/models"
	"membrostotal_backend/pkg/pagination"

	"gorm.io/gorm"
)

var ErrExpertRequestNotFound = errors.New("expert request not found")

type ExpertRequestRepository interface {
	Create(request *models.ExpertRequest) error
	FindByID(id uint) (*models.ExpertRequest, error)
	FindAll(p pagination.Params) ([]models.ExpertRequest, int64, error)
	Delete(id uint) error
}

type ExpertRequestRepositoryImpl struct {
	db *gorm.DB
}

func NewExpertRequestRepository(db *gorm.DB) ExpertRequestRepository {
	return &ExpertRequestRepositoryImpl{db: db}
}

func (r *ExpertRequestRepositoryImpl) Create(request *models.ExpertRequest) error {
	return r.db.Create(request).Error
}

func (r *ExpertRequestRepositoryImpl) FindByID(id uint) (*models.ExpertRequest, error) {
	var request models.ExpertRequest
	err := r.db.First(&request, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExpertRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (r *ExpertRequestRepositoryImpl) FindAll(p pagination.Params) ([]models.ExpertRequest, int64, error) {
	var total int64
	if err := r.db.Model(&models.ExpertRequest{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var requests []models.ExpertRequest
	err := r.db.Scopes(pagination.Scope(p)).
		Order("created_at desc").
		Find(&requests).Error
	if err != nil {
		return nil, 0, err
	}
	return requests, total, nil
}

func (r *ExpertRequestRepositoryImpl) Delete(id uint) error {
	result := r.db.Delete(&models.ExpertRequest{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrExpertRequestNotFound
	}
	return nil
}
