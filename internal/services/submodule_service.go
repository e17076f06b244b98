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

type SubModuleService interface {
	Create(req *dto.CreateSubModuleRequest) (*dto.SubModuleResponse, error)
	FindByID(id uint) (*dto.SubModuleResponse, error)
	ListByModule(moduleID uint) ([]dto.SubModuleResponse, error)
	ListByModuleForUser(moduleID, userID uint) ([]dto.SubModuleResponse, error)
	Update(id uint, req *dto.UpdateSubModuleRequest) (*dto.SubModuleResponse, error)
	SetUsers(id uint, req *dto.SetUsersRequest) error
	Delete(id uint) error

	UploadThumbnail(ctx context.Context, id uint, reader io.Reader, size int64, contentType, ext string) error
	ThumbnailURL(ctx context.Context, id uint) (string, error)
}

type SubModuleServiceImpl struct {
	subModuleRepo repositories.SubModuleRepository
	moduleRepo    repositories.ModuleRepository
	storage       storage.Storage
}

func NewSubModuleService(
	subModuleRepo repositories.SubModuleRepository,
	moduleRepo repositories.ModuleRepository,
	store storage.Storage,
) SubModuleService {
	return &SubModuleServiceImpl{
		subModuleRepo: subModuleRepo,
		moduleRepo:    moduleRepo,
		storage:       store,
	}
}

func (s *SubModuleServiceImpl) Create(req *dto.CreateSubModuleRequest) (*dto.SubModuleResponse, error) {
	if _, err := s.moduleRepo.FindByID(req.ModuleID); err != nil {
		if apperrors.Is(err, repositories.ErrModuleNotFound) {
			return nil, apperrors.NewBadRequestError("Módulo não encontrado")
		}
		return nil, apperrors.InternalError(err)
	}

	subModule := &models.SubModule{
		ModuleID:    req.ModuleID,
		Title:       req.Title,
		Description: req.Description,
		Order:       req.Order,
	}
	if err := s.subModuleRepo.Create(subModule); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewSubModuleResponse(subModule)
	return &resp, nil
}

func (s *SubModuleServiceImpl) FindByID(id uint) (*dto.SubModuleResponse, error) {
	subModule, err := s.subModuleRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSubModuleNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewSubModuleResponse(subModule)
	return &resp, nil
}

func (s *SubModuleServiceImpl) ListByModule(moduleID uint) ([]dto.SubModuleResponse, error) {
	subModules, err := s.subModuleRepo.FindByModule(moduleID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewSubModuleResponses(subModules), nil
}

func (s *SubModuleServiceImpl) ListByModuleForUser(moduleID, userID uint) ([]dto.SubModuleResponse, error) {
	subModules, err := s.subModuleRepo.FindByModuleForUser(moduleID, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewSubModuleResponses(subModules), nil
}

func (s *SubModuleServiceImpl) Update(id uint, req *dto.UpdateSubModuleRequest) (*dto.SubModuleResponse, error) {
	subModule, err := s.subModuleRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSubModuleNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Title != nil {
		subModule.Title = *req.Title
	}
	if req.Description != nil {
		subModule.Description = *req.Description
	}
	if req.Order != nil {
		subModule.Order = *req.Order
	}

	if err := s.subModuleRepo.Update(subModule); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewSubModuleResponse(subModule)
	return &resp, nil
}

func (s *SubModuleServiceImpl) SetUsers(id uint, req *dto.SetUsersRequest) error {
	if _, err := s.subModuleRepo.FindByID(id); err != nil {
		if apperrors.Is(err, repositories.ErrSubModuleNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if err := s.subModuleRepo.SetUsers(id, req.UserIDs); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *SubModuleServiceImpl) Delete(id uint) error {
	if err := s.subModuleRepo.DeleteCascade(id); err != nil {
		if apperrors.Is(err, repositories.ErrSubModuleNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *SubModuleServiceImpl) UploadThumbnail(ctx context.Context, id uint, reader io.Reader, size int64, contentType, ext string) error {
	if _, err := s.subModuleRepo.FindByID(id); err != nil {
		if apperrors.Is(err, repositories.ErrSubModuleNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	key := storage.SubModuleThumbnailKey(id, ext)
	if err := s.storage.Save(ctx, key, reader, size, contentType); err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.subModuleRepo.UpdateThumbnailKey(id, key); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *SubModuleServiceImpl) ThumbnailURL(ctx context.Context, id uint) (string, error) {
	subModule, err := s.subModuleRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSubModuleNotFound) {
			return "", apperrors.ErrNotFound(err)
		}
		return "", apperrors.InternalError(err)
	}

	if subModule.ThumbnailKey == "" {
		return "", apperrors.NewNotFoundError("Submódulo não possui thumbnail")
	}

	url, err := s.storage.SignedURL(ctx, subModule.ThumbnailKey, storage.SignedURLExpiry)
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	return url, nil
}
