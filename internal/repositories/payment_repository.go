package repositories

import (
	"errors"
	"time"

	"membrostotal_backend/internal/models"
	"membrostotal_backend/pkg/pagination"

	"gorm.io/gorm"
)

var ErrPaymentNotFound = errors.New("payment not found")

// PaymentFilter is shared by payments, payment requests and refunds.
// All predicates combine with AND; zero values are ignored.
type PaymentFilter struct {
	Status     models.PaymentStatus
	UserID     uint
	ExpertID   uint
	DateFrom   *time.Time
	DateTo     *time.Time
	Pagination pagination.Params
}

type PaymentRepository interface {
	Create(payment *models.Payment) error
	FindByID(id uint) (*models.Payment, error)
	FindAll(filter PaymentFilter) ([]models.Payment, int64, error)
	Update(payment *models.Payment) error
	UpdatePhotoKey(id uint, key string) error
	Delete(id uint) error
}

type PaymentRepositoryImpl struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &PaymentRepositoryImpl{db: db}
}

func (r *PaymentRepositoryImpl) Create(payment *models.Payment) error {
	return r.db.Create(payment).Error
}

func (r *PaymentRepositoryImpl) FindByID(id uint) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.Preload("User").Preload("Expert").Preload("PaymentType").
		First(&payment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepositoryImpl) FindAll(filter PaymentFilter) ([]models.Payment, int64, error) {
	query := r.db.Model(&models.Payment{})
	query = applyPaymentFilter(query, filter, "user_id")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var payments []models.Payment
	err := query.Preload("User").Preload("Expert").Preload("PaymentType").
		Scopes(pagination.Scope(filter.Pagination)).
		Order("created_at desc").
		Find(&payments).Error
	if err != nil {
		return nil, 0, err
	}
	return payments, total, nil
}

func (r *PaymentRepositoryImpl) Update(payment *models.Payment) error {
	return r.db.Save(payment).Error
}

func (r *PaymentRepositoryImpl) UpdatePhotoKey(id uint, key string) error {
	result := r.db.Model(&models.Payment{}).Where("id = ?", id).
		Update("photo_key", key)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPaymentNotFound
	}
	return nil
}

func (r *PaymentRepositoryImpl) Delete(id uint) error {
	result := r.db.Delete(&models.Payment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPaymentNotFound
	}
	return nil
}

// applyPaymentFilter translates a PaymentFilter into WHERE clauses.
// ownerColumn is the requester column, which differs between the three
// payment-like tables.
func applyPaymentFilter(query *gorm.DB, filter PaymentFilter, ownerColumn string) *gorm.DB {
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.UserID != 0 {
		query = query.Where(ownerColumn+" = ?", filter.UserID)
	}
	if filter.ExpertID != 0 {
		query = query.Where("expert_id = ?", filter.ExpertID)
	}
	if filter.DateFrom != nil {
		query = query.Where("created_at >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("created_at <= ?", *filter.DateTo)
	}
	return query
}
