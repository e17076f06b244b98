package repositories

import (
	"errors"

	"membrostotal_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPaymentTypeNotFound = errors.New("payment type not found")

type PaymentTypeRepository interface {
	Create(paymentType *models.PaymentType) error
	FindByID(id uint) (*models.PaymentType, error)
	FindAll() ([]models.PaymentType, error)
}

type PaymentTypeRepositoryImpl struct {
	db *gorm.DB
}

func NewPaymentTypeRepository(db *gorm.DB) PaymentTypeRepository {
	return &PaymentTypeRepositoryImpl{db: db}
}

func (r *PaymentTypeRepositoryImpl) Create(paymentType *models.PaymentType) error {
	return r.db.Create(paymentType).Error
}

func (r *PaymentTypeRepositoryImpl) FindByID(id uint) (*models.PaymentType, error) {
	var paymentType models.PaymentType
	err := r.db.First(&paymentType, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentTypeNotFound
		}
		return nil, err
	}
	return &paymentType, nil
}

func (r *PaymentTypeRepositoryImpl) FindAll() ([]models.PaymentType, error) {
	var paymentTypes []models.PaymentType
	err := r.db.Order("id asc").Find(&paymentTypes).Error
	return paymentTypes, err
}
