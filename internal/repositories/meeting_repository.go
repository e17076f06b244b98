package repositories

import (
	"errors"
	"time"

	"membrostotal_backend/internal/models"
	"membrostotal_backend/pkg/pagination"

	"gorm.io/gorm"
)

var ErrMeetingNotFound = errors.New("meeting not found")

type MeetingRepository interface {
	Create(meeting *models.Meeting, userIDs []uint) error
	FindByID(id uint) (*models.Meeting, error)
	FindAll(p pagination.Params) ([]models.Meeting, int64, error)
	FindForUser(userID uint, p pagination.Params) ([]models.Meeting, int64, error)
	Update(meeting *models.Meeting) error
	UpdateStatus(id uint, status models.MeetingStatus) error
	SetUsers(meetingID uint, userIDs []uint) error
	Delete(id uint) error
	// MarkPastPendingDone flips pending meetings whose date has passed.
	// Used by the meeting worker.
	MarkPastPendingDone(now time.Time) (int64, error)
}

type MeetingRepositoryImpl struct {
	db *gorm.DB
}

func NewMeetingRepository(db *gorm.DB) MeetingRepository {
	return &MeetingRepositoryImpl{db: db}
}

func (r *MeetingRepositoryImpl) Create(meeting *models.Meeting, userIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(meeting).Error; err != nil {
			return err
		}
		if len(userIDs) == 0 {
			return nil
		}

		users := make([]models.User, 0, len(userIDs))
		for _, id := range userIDs {
			users = append(users, models.User{BaseModel: models.BaseModel{ID: id}})
		}
		return tx.Model(meeting).Association("Users").Replace(users)
	})
}

func (r *MeetingRepositoryImpl) FindByID(id uint) (*models.Meeting, error) {
	var meeting models.Meeting
	err := r.db.Preload("Users").First(&meeting, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMeetingNotFound
		}
		return nil, err
	}
	return &meeting, nil
}

func (r *MeetingRepositoryImpl) FindAll(p pagination.Params) ([]models.Meeting, int64, error) {
	var total int64
	if err := r.db.Model(&models.Meeting{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var meetings []models.Meeting
	err := r.db.Preload("Users").
		Scopes(pagination.Scope(p)).
		Order("date desc").
		Find(&meetings).Error
	if err != nil {
		return nil, 0, err
	}
	return meetings, total, nil
}

func (r *MeetingRepositoryImpl) FindForUser(userID uint, p pagination.Params) ([]models.Meeting, int64, error) {
	query := r.db.Model(&models.Meeting{}).
		Joins("JOIN meeting_users ON meeting_users.meeting_id = meetings.id").
		Where("meeting_users.user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var meetings []models.Meeting
	err := query.Scopes(pagination.Scope(p)).
		Order("meetings.date desc").
		Find(&meetings).Error
	if err != nil {
		return nil, 0, err
	}
	return meetings, total, nil
}

func (r *MeetingRepositoryImpl) Update(meeting *models.Meeting) error {
	return r.db.Save(meeting).Error
}

func (r *MeetingRepositoryImpl) UpdateStatus(id uint, status models.MeetingStatus) error {
	result := r.db.Model(&models.Meeting{}).Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMeetingNotFound
	}
	return nil
}

func (r *MeetingRepositoryImpl) SetUsers(meetingID uint, userIDs []uint) error {
	meeting := models.Meeting{BaseModel: models.BaseModel{ID: meetingID}}
	users := make([]models.User, 0, len(userIDs))
	for _, id := range userIDs {
		users = append(users, models.User{BaseModel: models.BaseModel{ID: id}})
	}
	return r.db.Model(&meeting).Association("Users").Replace(users)
}

func (r *MeetingRepositoryImpl) Delete(id uint) error {
	result := r.db.Select("Users").Delete(&models.Meeting{BaseModel: models.BaseModel{ID: id}})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMeetingNotFound
	}
	return nil
}

func (r *MeetingRepositoryImpl) MarkPastPendingDone(now time.Time) (int64, error) {
	result := r.db.Model(&models.Meeting{}).
		Where("status = ? AND date < ?", models.MeetingStatusPending, now).
		Update("status", models.MeetingStatusDone)
	return result.RowsAffected, result.Error
}
