package services

import (
	"membrostotal_backend/internal/repositories"
	"membrostotal_backend/internal/services/dto"
	"membrostotal_backend/pkg/apperrors"
	"membrostotal_backend/pkg/pagination"
)

type UtmService interface {
	Create(req *dto.CreateUtmParamRequest) (*dto.UtmParamResponse, error)
	List(p pagination.Params) (*pagination.Envelope[dto.UtmParamResponse], error)
}

type UtmServiceImpl struct {
	utmRepo repositories.UtmRepository
}

func NewUtmService(utmRepo repositories.UtmRepository) UtmService {
	return &UtmServiceImpl{utmRepo: utmRepo}
}

func (s *UtmServiceImpl) Create(req *dto.CreateUtmParamRequest) (*dto.UtmParamResponse, error) {
	param := req.ToModel()
	if err := s.utmRepo.Create(param); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewUtmParamResponse(param)
	return &resp, nil
}

func (s *UtmServiceImpl) List(p pagination.Params) (*pagination.Envelope[dto.UtmParamResponse], error) {
	params, total, err := s.utmRepo.FindAll(p)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return pagination.NewEnvelope(dto.NewUtmParamResponses(params), p, total), nil
}
