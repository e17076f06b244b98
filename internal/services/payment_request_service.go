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

type PaymentRequestService interface {
	// Create registers a request on behalf of the authenticated
	// requester.
	Create(requesterID uint, req *dto.CreatePaymentRequestRequest) (*dto.PaymentRequestResponse, error)
	FindByID(id uint) (*dto.PaymentRequestResponse, error)
	List(filter repositories.PaymentFilter) (*pagination.Envelope[dto.PaymentRequestResponse], error)
	ListForRequester(requesterID uint, filter repositories.PaymentFilter) (*pagination.Envelope[dto.PaymentRequestResponse], error)
	Approve(id uint) (*dto.PaymentRequestResponse, error)
	Pay(id uint) (*dto.PaymentRequestResponse, error)
	Cancel(id uint, req *dto.CancelRequest) (*dto.PaymentRequestResponse, error)
	Delete(id uint) error

	UploadPhoto(ctx context.Context, id uint, reader io.Reader, size int64, contentType, ext string) error
	PhotoURL(ctx context.Context, id uint) (string, error)
}

type PaymentRequestServiceImpl struct {
	requestRepo     repositories.PaymentRequestRepository
	paymentTypeRepo repositories.PaymentTypeRepository
	storage         storage.Storage
}

func NewPaymentRequestService(
	requestRepo repositories.PaymentRequestRepository,
	paymentTypeRepo repositories.PaymentTypeRepository,
	store storage.Storage,
) PaymentRequestService {
	return &PaymentRequestServiceImpl{
		requestRepo:     requestRepo,
		paymentTypeRepo: paymentTypeRepo,
		storage:         store,
	}
}

func (s *PaymentRequestServiceImpl) Create(requesterID uint, req *dto.CreatePaymentRequestRequest) (*dto.PaymentRequestResponse, error) {
	if _, err := s.paymentTypeRepo.FindByID(req.PaymentTypeID); err != nil {
		if apperrors.Is(err, repositories.ErrPaymentTypeNotFound) {
			return nil, apperrors.NewBadRequestError("Tipo de pagamento inválido")
		}
		return nil, apperrors.InternalError(err)
	}

	request := &models.PaymentRequest{
		RequesterID:   requesterID,
		ExpertID:      req.ExpertID,
		PaymentTypeID: req.PaymentTypeID,
		Value:         req.Value,
		Description:   req.Description,
		Status:        models.PaymentStatusPending,
	}
	if err := s.requestRepo.Create(request); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.FindByID(request.ID)
}

func (s *PaymentRequestServiceImpl) FindByID(id uint) (*dto.PaymentRequestResponse, error) {
	request, err := s.requestRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPaymentRequestNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewPaymentRequestResponse(request)
	return &resp, nil
}

func (s *PaymentRequestServiceImpl) List(filter repositories.PaymentFilter) (*pagination.Envelope[dto.PaymentRequestResponse], error) {
	requests, total, err := s.requestRepo.FindAll(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return pagination.NewEnvelope(dto.NewPaymentRequestResponses(requests), filter.Pagination, total), nil
}

func (s *PaymentRequestServiceImpl) ListForRequester(requesterID uint, filter repositories.PaymentFilter) (*pagination.Envelope[dto.PaymentRequestResponse], error) {
	filter.UserID = requesterID
	return s.List(filter)
}

func (s *PaymentRequestServiceImpl) Approve(id uint) (*dto.PaymentRequestResponse, error) {
	request, err := s.requestRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPaymentRequestNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	// Approval is an intermediate state: only pending requests can be
	// approved.
	if request.Status != models.PaymentStatusPending {
		return nil, apperrors.ErrInvalidStatus("payment_request", "Apenas solicitações pendentes podem ser aprovadas")
	}

	request.Status = models.PaymentStatusApproved
	if err := s.requestRepo.Update(request); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewPaymentRequestResponse(request)
	return &resp, nil
}

func (s *PaymentRequestServiceImpl) Pay(id uint) (*dto.PaymentRequestResponse, error) {
	request, err := s.requestRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPaymentRequestNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if err := guardNotTerminal(request.Status, "payment_request"); err != nil {
		return nil, err
	}

	request.Status = models.PaymentStatusPaid
	request.PaidAt = nowPtr()

	if err := s.requestRepo.Update(request); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewPaymentRequestResponse(request)
	return &resp, nil
}

func (s *PaymentRequestServiceImpl) Cancel(id uint, req *dto.CancelRequest) (*dto.PaymentRequestResponse, error) {
	if err := requireCancelReason(req.Reason, "payment_request"); err != nil {
		return nil, err
	}

	request, err := s.requestRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPaymentRequestNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if err := guardNotTerminal(request.Status, "payment_request"); err != nil {
		return nil, err
	}

	request.Status = models.PaymentStatusCancelled
	request.CancelReason = req.Reason

	if err := s.requestRepo.Update(request); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewPaymentRequestResponse(request)
	return &resp, nil
}

func (s *PaymentRequestServiceImpl) Delete(id uint) error {
	if err := s.requestRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrPaymentRequestNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *PaymentRequestServiceImpl) UploadPhoto(ctx context.Context, id uint, reader io.Reader, size int64, contentType, ext string) error {
	request, err := s.requestRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPaymentRequestNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	key := storage.PaymentRequestPhotoKey(request.RequesterID, request.ID, ext)
	if err := s.storage.Save(ctx, key, reader, size, contentType); err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.requestRepo.UpdatePhotoKey(request.ID, key); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *PaymentRequestServiceImpl) PhotoURL(ctx context.Context, id uint) (string, error) {
	request, err := s.requestRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPaymentRequestNotFound) {
			return "", apperrors.ErrNotFound(err)
		}
		return "", apperrors.InternalError(err)
	}

	if request.PhotoKey == "" {
		return "", apperrors.NewNotFoundError("Solicitação não possui comprovante")
	}

	url, err := s.storage.SignedURL(ctx, request.PhotoKey, storage.SignedURLExpiry)
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	return url, nil
}
