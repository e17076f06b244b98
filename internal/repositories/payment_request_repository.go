package repositories

import (
	"errors"

	"membrostotal_backend/internal/models"
	"membrostotal_backend/pkg/pagination"

	"gorm.io/gorm"
)

var ErrPaymentRequestNotFound = errors.New("payment request not found")

type PaymentRequestRepository interface {
	Create(request *models.PaymentRequest) error
	FindByID(id uint) (*models.PaymentRequest, error)
	FindAll(filter PaymentFilter) ([]models.PaymentRequest, int64, error)
	Update(request *models.PaymentRequest) error
	UpdatePhotoKey(id uint, key string) error
	Delete(id uint) error
}

type PaymentRequestRepositoryImpl struct {
	db *gorm.DB
}

func NewPaymentRequestRepository(db *gorm.DB) PaymentRequestRepository {
	return &PaymentRequestRepositoryImpl{db: db}
}

func (r *PaymentRequestRepositoryImpl) Create(request *models.PaymentRequest) error {
	return r.db.Create(request).Error
}

func (r *PaymentRequestRepositoryImpl) FindByID(id uint) (*models.PaymentRequest, error) {
	var request models.PaymentRequest
	err := r.db.Preload("Requester").Preload("Expert").Preload("PaymentType").
		First(&request, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (r *PaymentRequestRepositoryImpl) FindAll(filter PaymentFilter) ([]models.PaymentRequest, int64, error) {
	query := r.db.Model(&models.PaymentRequest{})
	query = applyPaymentFilter(query, filter, "requester_id")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var requests []models.PaymentRequest
	err := query.Preload("Requester").Preload("Expert").Preload("PaymentType").
		Scopes(pagination.Scope(filter.Pagination)).
		Order("created_at desc").
		Find(&requests).Error
	if err != nil {
		return nil, 0, err
	}
	return requests, total, nil
}

func (r *PaymentRequestRepositoryImpl) Update(request *models.PaymentRequest) error {
	return r.db.Save(request).Error
}

func (r *PaymentRequestRepositoryImpl) UpdatePhotoKey(id uint, key string) error {
	result := r.db.Model(&models.PaymentRequest{}).Where("id = ?", id).
		Update("photo_key", key)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPaymentRequestNotFound
	}
	return nil
}

func (r *PaymentRequestRepositoryImpl) Delete(id uint) error {
	result := r.db.Delete(&models.PaymentRequest{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPaymentRequestNotFound
	}
	return nil
}
