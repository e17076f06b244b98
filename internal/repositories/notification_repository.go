package repositories

import (
	"errors"
	"time"

	"membrostotal_backend/internal/models"
	"membrostotal_backend/pkg/pagination"

	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationRepository interface {
	// Create stores the notification and one join row per target user
	// inside a single transaction.
	Create(notification *models.Notification, userIDs []uint) error
	FindByID(id uint) (*models.Notification, error)
	FindAll(p pagination.Params) ([]models.Notification, int64, error)
	// FindForUser lists the user's join rows, newest first, with the
	// notification preloaded.
	FindForUser(userID uint, p pagination.Params, unreadOnly bool) ([]models.NotificationUser, int64, error)
	MarkAsRead(userID, notificationID uint) error
	UnreadCount(userID uint) (int64, error)
	Delete(id uint) error
	DeleteReadOlderThan(cutoff time.Time) (int64, error)
}

type NotificationRepositoryImpl struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &NotificationRepositoryImpl{db: db}
}

func (r *NotificationRepositoryImpl) Create(notification *models.Notification, userIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(notification).Error; err != nil {
			return err
		}

		links := make([]models.NotificationUser, 0, len(userIDs))
		for _, userID := range userIDs {
			links = append(links, models.NotificationUser{
				NotificationID: notification.ID,
				UserID:         userID,
			})
		}
		if len(links) == 0 {
			return nil
		}
		return tx.Create(&links).Error
	})
}

func (r *NotificationRepositoryImpl) FindByID(id uint) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.First(&notification, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	return &notification, nil
}

func (r *NotificationRepositoryImpl) FindAll(p pagination.Params) ([]models.Notification, int64, error) {
	var total int64
	if err := r.db.Model(&models.Notification{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var notifications []models.Notification
	err := r.db.Scopes(pagination.Scope(p)).
		Order("created_at desc").
		Find(&notifications).Error
	if err != nil {
		return nil, 0, err
	}
	return notifications, total, nil
}

func (r *NotificationRepositoryImpl) FindForUser(userID uint, p pagination.Params, unreadOnly bool) ([]models.NotificationUser, int64, error) {
	query := r.db.Model(&models.NotificationUser{}).Where("user_id = ?", userID)
	if unreadOnly {
		query = query.Where("read = false")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var links []models.NotificationUser
	err := query.Preload("Notification").
		Scopes(pagination.Scope(p)).
		Order("created_at desc").
		Find(&links).Error
	if err != nil {
		return nil, 0, err
	}
	return links, total, nil
}

func (r *NotificationRepositoryImpl) MarkAsRead(userID, notificationID uint) error {
	result := r.db.Model(&models.NotificationUser{}).
		Where("user_id = ? AND notification_id = ?", userID, notificationID).
		Updates(map[string]interface{}{
			"read":    true,
			"read_at": touchTime(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (r *NotificationRepositoryImpl) UnreadCount(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.NotificationUser{}).
		Where("user_id = ? AND read = false", userID).
		Count(&count).Error
	return count, err
}

func (r *NotificationRepositoryImpl) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("notification_id = ?", id).
			Delete(&models.NotificationUser{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Notification{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotificationNotFound
		}
		return nil
	})
}

func (r *NotificationRepositoryImpl) DeleteReadOlderThan(cutoff time.Time) (int64, error) {
	result := r.db.Where("read = true AND read_at < ?", cutoff).
		Delete(&models.NotificationUser{})
	return result.RowsAffected, result.Error
}
