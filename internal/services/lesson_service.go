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

type LessonService interface {
	Create(req *dto.CreateLessonRequest) (*dto.LessonResponse, error)
	FindByID(id uint) (*dto.LessonResponse, error)
	ListBySubModule(subModuleID uint) ([]dto.LessonResponse, error)
	Update(id uint, req *dto.UpdateLessonRequest) (*dto.LessonResponse, error)
	Delete(id uint) error

	UploadThumbnail(ctx context.Context, id uint, reader io.Reader, size int64, contentType, ext string) error
	ThumbnailURL(ctx context.Context, id uint) (string, error)
}

type LessonServiceImpl struct {
	lessonRepo    repositories.LessonRepository
	subModuleRepo repositories.SubModuleRepository
	storage       storage.Storage
}

func NewLessonService(
	lessonRepo repositories.LessonRepository,
	subModuleRepo repositories.SubModuleRepository,
	store storage.Storage,
) LessonService {
	return &LessonServiceImpl{
		lessonRepo:    lessonRepo,
		subModuleRepo: subModuleRepo,
		storage:       store,
	}
}

func (s *LessonServiceImpl) Create(req *dto.CreateLessonRequest) (*dto.LessonResponse, error) {
	if _, err := s.subModuleRepo.FindByID(req.SubModuleID); err != nil {
		if apperrors.Is(err, repositories.ErrSubModuleNotFound) {
			return nil, apperrors.NewBadRequestError("Submódulo não encontrado")
		}
		return nil, apperrors.InternalError(err)
	}

	lesson := &models.Lesson{
		SubModuleID: req.SubModuleID,
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		Order:       req.Order,
	}
	if err := s.lessonRepo.Create(lesson); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewLessonResponse(lesson)
	return &resp, nil
}

func (s *LessonServiceImpl) FindByID(id uint) (*dto.LessonResponse, error) {
	lesson, err := s.lessonRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrLessonNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewLessonResponse(lesson)
	return &resp, nil
}

func (s *LessonServiceImpl) ListBySubModule(subModuleID uint) ([]dto.LessonResponse, error) {
	lessons, err := s.lessonRepo.FindBySubModule(subModuleID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewLessonResponses(lessons), nil
}

func (s *LessonServiceImpl) Update(id uint, req *dto.UpdateLessonRequest) (*dto.LessonResponse, error) {
	lesson, err := s.lessonRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrLessonNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Title != nil {
		lesson.Title = *req.Title
	}
	if req.Description != nil {
		lesson.Description = *req.Description
	}
	if req.Content != nil {
		lesson.Content = *req.Content
	}
	if req.Order != nil {
		lesson.Order = *req.Order
	}

	if err := s.lessonRepo.Update(lesson); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewLessonResponse(lesson)
	return &resp, nil
}

func (s *LessonServiceImpl) Delete(id uint) error {
	if err := s.lessonRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrLessonNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *LessonServiceImpl) UploadThumbnail(ctx context.Context, id uint, reader io.Reader, size int64, contentType, ext string) error {
	if _, err := s.lessonRepo.FindByID(id); err != nil {
		if apperrors.Is(err, repositories.ErrLessonNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	key := storage.LessonThumbnailKey(id, ext)
	if err := s.storage.Save(ctx, key, reader, size, contentType); err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.lessonRepo.UpdateThumbnailKey(id, key); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *LessonServiceImpl) ThumbnailURL(ctx context.Context, id uint) (string, error) {
	lesson, err := s.lessonRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrLessonNotFound) {
			return "", apperrors.ErrNotFound(err)
		}
		return "", apperrors.InternalError(err)
	}

	if lesson.ThumbnailKey == "" {
		return "", apperrors.NewNotFoundError("Aula não possui thumbnail")
	}

	url, err := s.storage.SignedURL(ctx, lesson.ThumbnailKey, storage.SignedURLExpiry)
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	return url, nil
}
