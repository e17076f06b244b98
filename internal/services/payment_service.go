package services

import (
	"context"
	"io"
	"strings"
	"time"

	"membrostotal_backend/internal/models"
	"membrostotal_backend/internal/repositories"
	"membrostotal_backend/internal/services/dto"
	"membrostotal_backend/internal/storage"
	"membrostotal_backend/pkg/apperrors"
	"membrostotal_backend/pkg/pagination"
)

type PaymentService interface {
	Create(req *dto.CreatePaymentRequest) (*dto.PaymentResponse, error)
	CreateOwn(userID uint, req *dto.CreateOwnPaymentRequest) (*dto.PaymentResponse, error)
	FindByID(id uint) (*dto.PaymentResponse, error)
	List(filter repositories.PaymentFilter) (*pagination.Envelope[dto.PaymentResponse], error)
	// ListForUser forces the owner predicate regardless of the
	// requested filter.
	ListForUser(userID uint, filter repositories.PaymentFilter) (*pagination.Envelope[dto.PaymentResponse], error)
	Update(id uint, req *dto.UpdatePaymentRequest) (*dto.PaymentResponse, error)
	Pay(id uint) (*dto.PaymentResponse, error)
	Cancel(id uint, req *dto.CancelRequest) (*dto.PaymentResponse, error)
	Delete(id uint) error

	UploadPhoto(ctx context.Context, id uint, reader io.Reader, size int64, contentType, ext string) error
	PhotoURL(ctx context.Context, id uint) (string, error)

	ListTypes() ([]dto.PaymentTypeResponse, error)
	CreateType(req *dto.CreatePaymentTypeRequest) (*dto.PaymentTypeResponse, error)
}

type PaymentServiceImpl struct {
	paymentRepo     repositories.PaymentRepository
	paymentTypeRepo repositories.PaymentTypeRepository
	userRepo        repositories.UserRepository
	storage         storage.Storage
}

func NewPaymentService(
	paymentRepo repositories.PaymentRepository,
	paymentTypeRepo repositories.PaymentTypeRepository,
	userRepo repositories.UserRepository,
	store storage.Storage,
) PaymentService {
	return &PaymentServiceImpl{
		paymentRepo:     paymentRepo,
		paymentTypeRepo: paymentTypeRepo,
		userRepo:        userRepo,
		storage:         store,
	}
}

func nowPtr() *time.Time {
	now := time.Now()
	return &now
}

// guardNotTerminal rejects any transition out of paid or cancelled.
// One status machine is shared by payments, payment requests and
// refunds, and this is its single enforcement point.
func guardNotTerminal(current models.PaymentStatus, domain string) error {
	if current.IsTerminal() {
		return apperrors.ErrInvalidStatus(domain, "Registro já está em status final: "+string(current))
	}
	return nil
}

// requireCancelReason enforces the mandatory cancellation reason here
// instead of relying on request validation alone.
func requireCancelReason(reason, domain string) error {
	if strings.TrimSpace(reason) == "" {
		return apperrors.ErrInvalidOperation(domain, "Motivo do cancelamento é obrigatório")
	}
	return nil
}

func (s *PaymentServiceImpl) Create(req *dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	if _, err := s.userRepo.FindByID(req.UserID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewBadRequestError("Usuário não encontrado")
		}
		return nil, apperrors.InternalError(err)
	}
	if _, err := s.paymentTypeRepo.FindByID(req.PaymentTypeID); err != nil {
		if apperrors.Is(err, repositories.ErrPaymentTypeNotFound) {
			return nil, apperrors.NewBadRequestError("Tipo de pagamento inválido")
		}
		return nil, apperrors.InternalError(err)
	}

	payment := &models.Payment{
		UserID:        req.UserID,
		ExpertID:      req.ExpertID,
		PaymentTypeID: req.PaymentTypeID,
		Value:         req.Value,
		Description:   req.Description,
		Status:        models.PaymentStatusPending,
	}
	if err := s.paymentRepo.Create(payment); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.FindByID(payment.ID)
}

func (s *PaymentServiceImpl) CreateOwn(userID uint, req *dto.CreateOwnPaymentRequest) (*dto.PaymentResponse, error) {
	return s.Create(&dto.CreatePaymentRequest{
		UserID:        userID,
		ExpertID:      req.ExpertID,
		PaymentTypeID: req.PaymentTypeID,
		Value:         req.Value,
		Description:   req.Description,
	})
}

func (s *PaymentServiceImpl) FindByID(id uint) (*dto.PaymentResponse, error) {
	payment, err := s.paymentRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPaymentNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewPaymentResponse(payment)
	return &resp, nil
}

func (s *PaymentServiceImpl) List(filter repositories.PaymentFilter) (*pagination.Envelope[dto.PaymentResponse], error) {
	payments, total, err := s.paymentRepo.FindAll(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return pagination.NewEnvelope(dto.NewPaymentResponses(payments), filter.Pagination, total), nil
}

func (s *PaymentServiceImpl) ListForUser(userID uint, filter repositories.PaymentFilter) (*pagination.Envelope[dto.PaymentResponse], error) {
	filter.UserID = userID
	return s.List(filter)
}

func (s *PaymentServiceImpl) Update(id uint, req *dto.UpdatePaymentRequest) (*dto.PaymentResponse, error) {
	payment, err := s.paymentRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPaymentNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if err := guardNotTerminal(payment.Status, "payment"); err != nil {
		return nil, err
	}

	if req.ExpertID != nil {
		payment.ExpertID = req.ExpertID
	}
	if req.PaymentTypeID != nil {
		if _, err := s.paymentTypeRepo.FindByID(*req.PaymentTypeID); err != nil {
			if apperrors.Is(err, repositories.ErrPaymentTypeNotFound) {
				return nil, apperrors.NewBadRequestError("Tipo de pagamento inválido")
			}
			return nil, apperrors.InternalError(err)
		}
		payment.PaymentTypeID = *req.PaymentTypeID
	}
	if req.Value != nil {
		payment.Value = *req.Value
	}
	if req.Description != nil {
		payment.Description = *req.Description
	}

	if err := s.paymentRepo.Update(payment); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.FindByID(payment.ID)
}

func (s *PaymentServiceImpl) Pay(id uint) (*dto.PaymentResponse, error) {
	payment, err := s.paymentRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPaymentNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if err := guardNotTerminal(payment.Status, "payment"); err != nil {
		return nil, err
	}

	payment.Status = models.PaymentStatusPaid
	payment.PaidAt = nowPtr()

	if err := s.paymentRepo.Update(payment); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewPaymentResponse(payment)
	return &resp, nil
}

func (s *PaymentServiceImpl) Cancel(id uint, req *dto.CancelRequest) (*dto.PaymentResponse, error) {
	if err := requireCancelReason(req.Reason, "payment"); err != nil {
		return nil, err
	}

	payment, err := s.paymentRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPaymentNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if err := guardNotTerminal(payment.Status, "payment"); err != nil {
		return nil, err
	}

	payment.Status = models.PaymentStatusCancelled
	payment.CancelReason = req.Reason

	if err := s.paymentRepo.Update(payment); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewPaymentResponse(payment)
	return &resp, nil
}

func (s *PaymentServiceImpl) Delete(id uint) error {
	if err := s.paymentRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrPaymentNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *PaymentServiceImpl) UploadPhoto(ctx context.Context, id uint, reader io.Reader, size int64, contentType, ext string) error {
	payment, err := s.paymentRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPaymentNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	key := storage.PaymentPhotoKey(payment.UserID, payment.ID, ext)
	if err := s.storage.Save(ctx, key, reader, size, contentType); err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.paymentRepo.UpdatePhotoKey(payment.ID, key); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *PaymentServiceImpl) PhotoURL(ctx context.Context, id uint) (string, error) {
	payment, err := s.paymentRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPaymentNotFound) {
			return "", apperrors.ErrNotFound(err)
		}
		return "", apperrors.InternalError(err)
	}

	if payment.PhotoKey == "" {
		return "", apperrors.NewNotFoundError("Pagamento não possui comprovante")
	}

	url, err := s.storage.SignedURL(ctx, payment.PhotoKey, storage.SignedURLExpiry)
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	return url, nil
}

func (s *PaymentServiceImpl) ListTypes() ([]dto.PaymentTypeResponse, error) {
	types, err := s.paymentTypeRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewPaymentTypeResponses(types), nil
}

func (s *PaymentServiceImpl) CreateType(req *dto.CreatePaymentTypeRequest) (*dto.PaymentTypeResponse, error) {
	paymentType := &models.PaymentType{Label: req.Label}
	if err := s.paymentTypeRepo.Create(paymentType); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewPaymentTypeResponse(paymentType), nil
}
