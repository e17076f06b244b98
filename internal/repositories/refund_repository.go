package repositories

import (
	"errors"

	"membrostotal_backend/internal/models"
	"membrostotal_backend/pkg/pagination"

	"gorm.io/gorm"
)

var ErrRefundNotFound = errors.New("refund not found")

type RefundRepository interface {
	Create(refund *models.Refund) error
	FindByID(id uint) (*models.Refund, error)
	FindAll(filter PaymentFilter) ([]models.Refund, int64, error)
	Update(refund *models.Refund) error
	UpdatePhotoKey(id uint, key string) error
	Delete(id uint) error
}

type RefundRepositoryImpl struct {
	db *gorm.DB
}

func NewRefundRepository(db *gorm.DB) RefundRepository {
	return &RefundRepositoryImpl{db: db}
}

func (r *RefundRepositoryImpl) Create(refund *models.Refund) error {
	return r.db.Create(refund).Error
}

func (r *RefundRepositoryImpl) FindByID(id uint) (*models.Refund, error) {
	var refund models.Refund
	err := r.db.Preload("User").Preload("PaymentType").
		First(&refund, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRefundNotFound
		}
		return nil, err
	}
	return &refund, nil
}

func (r *RefundRepositoryImpl) FindAll(filter PaymentFilter) ([]models.Refund, int64, error) {
	query := r.db.Model(&models.Refund{})
	query = applyPaymentFilter(query, filter, "user_id")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var refunds []models.Refund
	err := query.Preload("User").Preload("PaymentType").
		Scopes(pagination.Scope(filter.Pagination)).
		Order("created_at desc").
		Find(&refunds).Error
	if err != nil {
		return nil, 0, err
	}
	return refunds, total, nil
}

func (r *RefundRepositoryImpl) Update(refund *models.Refund) error {
	return r.db.Save(refund).Error
}

func (r *RefundRepositoryImpl) UpdatePhotoKey(id uint, key string) error {
	result := r.db.Model(&models.Refund{}).Where("id = ?", id).
		Update("photo_key", key)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRefundNotFound
	}
	return nil
}

func (r *RefundRepositoryImpl) Delete(id uint) error {
	result := r.db.Delete(&models.Refund{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRefundNotFound
	}
	return nil
}
