package services

import (
	"membrostotal_backend/internal/models"
	"membrostotal_backend/internal/repositories"
	"membrostotal_backend/internal/services/dto"
	"membrostotal_backend/pkg/apperrors"
	"membrostotal_backend/pkg/pagination"
)

type NotificationService interface {
	Create(req *dto.CreateNotificationRequest) (*dto.NotificationResponse, error)
	// Broadcast delivers the notification to every active user.
	Broadcast(title, description string) (*dto.NotificationResponse, error)
	List(p pagination.Params) (*pagination.Envelope[dto.NotificationResponse], error)
	ListForUser(userID uint, p pagination.Params, unreadOnly bool) (*pagination.Envelope[dto.UserNotificationResponse], error)
	MarkAsRead(userID, notificationID uint) error
	UnreadCount(userID uint) (*dto.UnreadCountResponse, error)
	Delete(id uint) error
}

type NotificationServiceImpl struct {
	notificationRepo repositories.NotificationRepository
	userRepo         repositories.UserRepository
}

func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	userRepo repositories.UserRepository,
) NotificationService {
	return &NotificationServiceImpl{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
	}
}

func (s *NotificationServiceImpl) Create(req *dto.CreateNotificationRequest) (*dto.NotificationResponse, error) {
	if req.All {
		return s.Broadcast(req.Title, req.Description)
	}
	if len(req.UserIDs) == 0 {
		return nil, apperrors.NewBadRequestError("Informe os destinatários ou marque o envio para todos")
	}

	notification := &models.Notification{
		Title:       req.Title,
		Description: req.Description,
	}
	if err := s.notificationRepo.Create(notification, req.UserIDs); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewNotificationResponse(notification)
	return &resp, nil
}

func (s *NotificationServiceImpl) Broadcast(title, description string) (*dto.NotificationResponse, error) {
	users, err := s.userRepo.FindActive()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	userIDs := make([]uint, 0, len(users))
	for i := range users {
		userIDs = append(userIDs, users[i].ID)
	}

	notification := &models.Notification{
		Title:       title,
		Description: description,
	}
	if err := s.notificationRepo.Create(notification, userIDs); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewNotificationResponse(notification)
	return &resp, nil
}

func (s *NotificationServiceImpl) List(p pagination.Params) (*pagination.Envelope[dto.NotificationResponse], error) {
	notifications, total, err := s.notificationRepo.FindAll(p)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return pagination.NewEnvelope(dto.NewNotificationResponses(notifications), p, total), nil
}

func (s *NotificationServiceImpl) ListForUser(userID uint, p pagination.Params, unreadOnly bool) (*pagination.Envelope[dto.UserNotificationResponse], error) {
	links, total, err := s.notificationRepo.FindForUser(userID, p, unreadOnly)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return pagination.NewEnvelope(dto.NewUserNotificationResponses(links), p, total), nil
}

func (s *NotificationServiceImpl) MarkAsRead(userID, notificationID uint) error {
	if err := s.notificationRepo.MarkAsRead(userID, notificationID); err != nil {
		if apperrors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *NotificationServiceImpl) UnreadCount(userID uint) (*dto.UnreadCountResponse, error) {
	count, err := s.notificationRepo.UnreadCount(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.UnreadCountResponse{Unread: count}, nil
}

func (s *NotificationServiceImpl) Delete(id uint) error {
	if err := s.notificationRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}
