package services

import (
	"context"
	"io"

	"membrostotal_backend/internal/models"
	"membrostotal_backend/internal/repositories"
	"membrostotal_backend/internal/services/dto"
	"membrostotal_backend/internal/storage"
	"membrostotal_backend/pkg/apperrors"
)

type ModuleService interface {
	Create(req *dto.CreateModuleRequest) (*dto.ModuleResponse, error)
	FindByID(id uint) (*dto.ModuleResponse, error)
	ListByTraining(trainingID uint) ([]dto.ModuleResponse, error)
	ListByTrainingForUser(trainingID, userID uint) ([]dto.ModuleResponse, error)
	Update(id uint, req *dto.UpdateModuleRequest) (*dto.ModuleResponse, error)
	SetUsers(id uint, req *dto.SetUsersRequest) error
	Delete(id uint) error

	UploadThumbnail(ctx context.Context, id uint, reader io.Reader, size int64, contentType, ext string) error
	ThumbnailURL(ctx context.Context, id uint) (string, error)
}

type ModuleServiceImpl struct {
	moduleRepo   repositories.ModuleRepository
	trainingRepo repositories.TrainingRepository
	storage      storage.Storage
}

func NewModuleService(
	moduleRepo repositories.ModuleRepository,
	trainingRepo repositories.TrainingRepository,
	store storage.Storage,
) ModuleService {
	return &ModuleServiceImpl{
		moduleRepo:   moduleRepo,
		trainingRepo: trainingRepo,
		storage:      store,
	}
}

func (s *ModuleServiceImpl) Create(req *dto.CreateModuleRequest) (*dto.ModuleResponse, error) {
	// The parent must exist before a child is attached.
	if _, err := s.trainingRepo.FindByID(req.TrainingID); err != nil {
		if apperrors.Is(err, repositories.ErrTrainingNotFound) {
			return nil, apperrors.NewBadRequestError("Treinamento não encontrado")
		}
		return nil, apperrors.InternalError(err)
	}

	module := &models.Module{
		TrainingID:  req.TrainingID,
		Title:       req.Title,
		Description: req.Description,
		Order:       req.Order,
	}
	if err := s.moduleRepo.Create(module); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewModuleResponse(module)
	return &resp, nil
}

func (s *ModuleServiceImpl) FindByID(id uint) (*dto.ModuleResponse, error) {
	module, err := s.moduleRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrModuleNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewModuleResponse(module)
	return &resp, nil
}

func (s *ModuleServiceImpl) ListByTraining(trainingID uint) ([]dto.ModuleResponse, error) {
	modules, err := s.moduleRepo.FindByTraining(trainingID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewModuleResponses(modules), nil
}

func (s *ModuleServiceImpl) ListByTrainingForUser(trainingID, userID uint) ([]dto.ModuleResponse, error) {
	modules, err := s.moduleRepo.FindByTrainingForUser(trainingID, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewModuleResponses(modules), nil
}

func (s *ModuleServiceImpl) Update(id uint, req *dto.UpdateModuleRequest) (*dto.ModuleResponse, error) {
	module, err := s.moduleRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrModuleNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Title != nil {
		module.Title = *req.Title
	}
	if req.Description != nil {
		module.Description = *req.Description
	}
	if req.Order != nil {
		module.Order = *req.Order
	}

	if err := s.moduleRepo.Update(module); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewModuleResponse(module)
	return &resp, nil
}

func (s *ModuleServiceImpl) SetUsers(id uint, req *dto.SetUsersRequest) error {
	if _, err := s.moduleRepo.FindByID(id); err != nil {
		if apperrors.Is(err, repositories.ErrModuleNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if err := s.moduleRepo.SetUsers(id, req.UserIDs); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ModuleServiceImpl) Delete(id uint) error {
	if err := s.moduleRepo.DeleteCascade(id); err != nil {
		if apperrors.Is(err, repositories.ErrModuleNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ModuleServiceImpl) UploadThumbnail(ctx context.Context, id uint, reader io.Reader, size int64, contentType, ext string) error {
	if _, err := s.moduleRepo.FindByID(id); err != nil {
		if apperrors.Is(err, repositories.ErrModuleNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	key := storage.ModuleThumbnailKey(id, ext)
	if err := s.storage.Save(ctx, key, reader, size, contentType); err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.moduleRepo.UpdateThumbnailKey(id, key); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ModuleServiceImpl) ThumbnailURL(ctx context.Context, id uint) (string, error) {
	module, err := s.moduleRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrModuleNotFound) {
			return "", apperrors.ErrNotFound(err)
		}
		return "", apperrors.InternalError(err)
	}

	if module.ThumbnailKey == "" {
		return "", apperrors.NewNotFoundError("Módulo não possui thumbnail")
	}

	url, err := s.storage.SignedURL(ctx, module.ThumbnailKey, storage.SignedURLExpiry)
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	return url, nil
}
