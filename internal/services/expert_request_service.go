package services

import (
	"context"

	"membrostotal_backend/internal/email"
	"membrostotal_backend/internal/logger"
	"membrostotal_backend/internal/repositories"
	"membrostotal_backend/internal/services/dto"
	"membrostotal_backend/pkg/apperrors"
	"membrostotal_backend/pkg/pagination"
)

type ExpertRequestService interface {
	// Create is the public intake endpoint, no authentication required.
	Create(ctx context.Context, req *dto.CreateExpertRequestRequest) (*dto.ExpertRequestResponse, error)
	FindByID(id uint) (*dto.ExpertRequestResponse, error)
	List(p pagination.Params) (*pagination.Envelope[dto.ExpertRequestResponse], error)
	Delete(id uint) error
}

type ExpertRequestServiceImpl struct {
	requestRepo repositories.ExpertRequestRepository
	mailer      *email.Sender
}

func NewExpertRequestService(
	requestRepo repositories.ExpertRequestRepository,
	mailer *email.Sender,
) ExpertRequestService {
	return &ExpertRequestServiceImpl{
		requestRepo: requestRepo,
		mailer:      mailer,
	}
}

func (s *ExpertRequestServiceImpl) Create(ctx context.Context, req *dto.CreateExpertRequestRequest) (*dto.ExpertRequestResponse, error) {
	request := req.ToModel()
	if err := s.requestRepo.Create(request); err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Mail is best-effort: the submission is already stored.
	if s.mailer.Enabled() {
		if err := s.mailer.NotifyAdminExpertRequest(request.Name, request.Email); err != nil {
			logger.CtxWarn(ctx, "failed to notify admin about expert request",
				"expert_request_id", request.ID, "error", err.Error())
		}
	}

	resp := dto.NewExpertRequestResponse(request)
	return &resp, nil
}

func (s *ExpertRequestServiceImpl) FindByID(id uint) (*dto.ExpertRequestResponse, error) {
	request, err := s.requestRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrExpertRequestNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewExpertRequestResponse(request)
	return &resp, nil
}

func (s *ExpertRequestServiceImpl) List(p pagination.Params) (*pagination.Envelope[dto.ExpertRequestResponse], error) {
	requests, total, err := s.requestRepo.FindAll(p)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return pagination.NewEnvelope(dto.NewExpertRequestResponses(requests), p, total), nil
}

func (s *ExpertRequestServiceImpl) Delete(id uint) error {
	if err := s.requestRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrExpertRequestNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}
