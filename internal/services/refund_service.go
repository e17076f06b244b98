package services

import (
	"context"
	"io"

	"membrostotal_backend/internal/models"
	"membrostotal_backend/internal/repositories"
	"membrostotal_backend/internal/services/dto"
	"membrostotal_backend/internal/storage"
	"membrostotal_backend/pkg/apperrors"
	"membrostotal_backend/pkg/pagination"
)

type RefundService interface {
	Create(req *dto.CreateRefundRequest) (*dto.RefundResponse, error)
	CreateOwn(userID uint, req *dto.CreateOwnRefundRequest) (*dto.RefundResponse, error)
	FindByID(id uint) (*dto.RefundResponse, error)
	List(filter repositories.PaymentFilter) (*pagination.Envelope[dto.RefundResponse], error)
	ListForUser(userID uint, filter repositories.PaymentFilter) (*pagination.Envelope[dto.RefundResponse], error)
	Pay(id uint) (*dto.RefundResponse, error)
	Cancel(id uint, req *dto.CancelRequest) (*dto.RefundResponse, error)
	Delete(id uint) error

	UploadPhoto(ctx context.Context, id uint, reader io.Reader, size int64, contentType, ext string) error
	PhotoURL(ctx context.Context, id uint) (string, error)
}

type RefundServiceImpl struct {
	refundRepo      repositories.RefundRepository
	paymentTypeRepo repositories.PaymentTypeRepository
	userRepo        repositories.UserRepository
	storage         storage.Storage
}

func NewRefundService(
	refundRepo repositories.RefundRepository,
	paymentTypeRepo repositories.PaymentTypeRepository,
	userRepo repositories.UserRepository,
	store storage.Storage,
) RefundService {
	return &RefundServiceImpl{
		refundRepo:      refundRepo,
		paymentTypeRepo: paymentTypeRepo,
		userRepo:        userRepo,
		storage:         store,
	}
}

func (s *RefundServiceImpl) Create(req *dto.CreateRefundRequest) (*dto.RefundResponse, error) {
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

	refund := &models.Refund{
		UserID:        req.UserID,
		PaymentTypeID: req.PaymentTypeID,
		Value:         req.Value,
		Description:   req.Description,
		Status:        models.PaymentStatusPending,
	}
	if err := s.refundRepo.Create(refund); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.FindByID(refund.ID)
}

func (s *RefundServiceImpl) CreateOwn(userID uint, req *dto.CreateOwnRefundRequest) (*dto.RefundResponse, error) {
	return s.Create(&dto.CreateRefundRequest{
		UserID:        userID,
		PaymentTypeID: req.PaymentTypeID,
		Value:         req.Value,
		Description:   req.Description,
	})
}

func (s *RefundServiceImpl) FindByID(id uint) (*dto.RefundResponse, error) {
	refund, err := s.refundRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrRefundNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewRefundResponse(refund)
	return &resp, nil
}

func (s *RefundServiceImpl) List(filter repositories.PaymentFilter) (*pagination.Envelope[dto.RefundResponse], error) {
	refunds, total, err := s.refundRepo.FindAll(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return pagination.NewEnvelope(dto.NewRefundResponses(refunds), filter.Pagination, total), nil
}

func (s *RefundServiceImpl) ListForUser(userID uint, filter repositories.PaymentFilter) (*pagination.Envelope[dto.RefundResponse], error) {
	filter.UserID = userID
	return s.List(filter)
}

func (s *RefundServiceImpl) Pay(id uint) (*dto.RefundResponse, error) {
	refund, err := s.refundRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrRefundNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if err := guardNotTerminal(refund.Status, "refund"); err != nil {
		return nil, err
	}

	refund.Status = models.PaymentStatusPaid
	refund.RefundDate = nowPtr()

	if err := s.refundRepo.Update(refund); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewRefundResponse(refund)
	return &resp, nil
}

func (s *RefundServiceImpl) Cancel(id uint, req *dto.CancelRequest) (*dto.RefundResponse, error) {
	if err := requireCancelReason(req.Reason, "refund"); err != nil {
		return nil, err
	}

	refund, err := s.refundRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrRefundNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if err := guardNotTerminal(refund.Status, "refund"); err != nil {
		return nil, err
	}

	refund.Status = models.PaymentStatusCancelled
	refund.CancelReason = req.Reason

	if err := s.refundRepo.Update(refund); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewRefundResponse(refund)
	return &resp, nil
}

func (s *RefundServiceImpl) Delete(id uint) error {
	if err := s.refundRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrRefundNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *RefundServiceImpl) UploadPhoto(ctx context.Context, id uint, reader io.Reader, size int64, contentType, ext string) error {
	refund, err := s.refundRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrRefundNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	key := storage.RefundPhotoKey(refund.UserID, refund.ID, ext)
	if err := s.storage.Save(ctx, key, reader, size, contentType); err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.refundRepo.UpdatePhotoKey(refund.ID, key); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *RefundServiceImpl) PhotoURL(ctx context.Context, id uint) (string, error) {
	refund, err := s.refundRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrRefundNotFound) {
			return "", apperrors.ErrNotFound(err)
		}
		return "", apperrors.InternalError(err)
	}

	if refund.PhotoKey == "" {
		return "", apperrors.NewNotFoundError("Reembolso não possui comprovante")
	}

	url, err := s.storage.SignedURL(ctx, refund.PhotoKey, storage.SignedURLExpiry)
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	return url, nil
}
