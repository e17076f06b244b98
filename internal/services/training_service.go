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

type TrainingService interface {
	Create(req *dto.CreateTrainingRequest) (*dto.TrainingResponse, error)
	FindByID(id uint) (*dto.TrainingResponse, error)
	List() ([]dto.TrainingResponse, error)
	// ListForUser returns only trainings granted to the user.
	ListForUser(userID uint) ([]dto.TrainingResponse, error)
	Update(id uint, req *dto.UpdateTrainingRequest) (*dto.TrainingResponse, error)
	SetUsers(id uint, req *dto.SetUsersRequest) error
	Delete(id uint) error

	UploadThumbnail(ctx context.Context, id uint, reader io.Reader, size int64, contentType, ext string) error
	ThumbnailURL(ctx context.Context, id uint) (string, error)
}

type TrainingServiceImpl struct {
	trainingRepo repositories.TrainingRepository
	storage      storage.Storage
}

func NewTrainingService(trainingRepo repositories.TrainingRepository, store storage.Storage) TrainingService {
	return &TrainingServiceImpl{trainingRepo: trainingRepo, storage: store}
}

func (s *TrainingServiceImpl) Create(req *dto.CreateTrainingRequest) (*dto.TrainingResponse, error) {
	training := &models.Training{
		Title:       req.Title,
		Description: req.Description,
		Order:       req.Order,
	}
	if err := s.trainingRepo.Create(training); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewTrainingResponse(training)
	return &resp, nil
}

func (s *TrainingServiceImpl) FindByID(id uint) (*dto.TrainingResponse, error) {
	training, err := s.trainingRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrTrainingNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewTrainingResponse(training)
	return &resp, nil
}

func (s *TrainingServiceImpl) List() ([]dto.TrainingResponse, error) {
	trainings, err := s.trainingRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewTrainingResponses(trainings), nil
}

func (s *TrainingServiceImpl) ListForUser(userID uint) ([]dto.TrainingResponse, error) {
	trainings, err := s.trainingRepo.FindAllForUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewTrainingResponses(trainings), nil
}

func (s *TrainingServiceImpl) Update(id uint, req *dto.UpdateTrainingRequest) (*dto.TrainingResponse, error) {
	training, err := s.trainingRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrTrainingNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Title != nil {
		training.Title = *req.Title
	}
	if req.Description != nil {
		training.Description = *req.Description
	}
	if req.Order != nil {
		training.Order = *req.Order
	}

	if err := s.trainingRepo.Update(training); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewTrainingResponse(training)
	return &resp, nil
}

func (s *TrainingServiceImpl) SetUsers(id uint, req *dto.SetUsersRequest) error {
	if _, err := s.trainingRepo.FindByID(id); err != nil {
		if apperrors.Is(err, repositories.ErrTrainingNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if err := s.trainingRepo.SetUsers(id, req.UserIDs); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *TrainingServiceImpl) Delete(id uint) error {
	if err := s.trainingRepo.DeleteCascade(id); err != nil {
		if apperrors.Is(err, repositories.ErrTrainingNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *TrainingServiceImpl) UploadThumbnail(ctx context.Context, id uint, reader io.Reader, size int64, contentType, ext string) error {
	if _, err := s.trainingRepo.FindByID(id); err != nil {
		if apperrors.Is(err, repositories.ErrTrainingNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	key := storage.TrainingThumbnailKey(id, ext)
	if err := s.storage.Save(ctx, key, reader, size, contentType); err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.trainingRepo.UpdateThumbnailKey(id, key); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *TrainingServiceImpl) ThumbnailURL(ctx context.Context, id uint) (string, error) {
	training, err := s.trainingRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrTrainingNotFound) {
			return "", apperrors.ErrNotFound(err)
		}
		return "", apperrors.InternalError(err)
	}

	if training.ThumbnailKey == "" {
		return "", apperrors.NewNotFoundError("Treinamento não possui thumbnail")
	}

	url, err := s.storage.SignedURL(ctx, training.ThumbnailKey, storage.SignedURLExpiry)
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	return url, nil
}
