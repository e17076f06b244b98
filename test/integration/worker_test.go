package integration_test

import (
	"testing"
	"time"

	"membrostotal_backend/internal/models"
	"membrostotal_backend/internal/repositories"
	"membrostotal_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkPastPendingDone(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	invitee, _ := helpers.CreateUser(t, ts.DB, "convidado@membros.dev", "Convidado", "employee")
	meetingRepo := repositories.NewMeetingRepository(ts.DB)

	past := models.Meeting{
		Title:  "Reunião passada",
		Date:   time.Now().Add(-2 * time.Hour),
		Status: models.MeetingStatusPending,
	}
	require.NoError(t, meetingRepo.Create(&past, []uint{invitee.ID}))

	future := models.Meeting{
		Title:  "Reunião futura",
		Date:   time.Now().Add(48 * time.Hour),
		Status: models.MeetingStatusPending,
	}
	require.NoError(t, meetingRepo.Create(&future, []uint{invitee.ID}))

	canceled := models.Meeting{
		Title:  "Reunião cancelada",
		Date:   time.Now().Add(-2 * time.Hour),
		Status: models.MeetingStatusCanceled,
	}
	require.NoError(t, meetingRepo.Create(&canceled, []uint{invitee.ID}))

	updated, err := meetingRepo.MarkPastPendingDone(time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated)

	var got models.Meeting
	require.NoError(t, ts.DB.First(&got, past.ID).Error)
	assert.Equal(t, models.MeetingStatusDone, got.Status)

	require.NoError(t, ts.DB.First(&got, future.ID).Error)
	assert.Equal(t, models.MeetingStatusPending, got.Status)

	require.NoError(t, ts.DB.First(&got, canceled.ID).Error)
	assert.Equal(t, models.MeetingStatusCanceled, got.Status)

	// A second sweep finds nothing left to flip.
	updated, err = meetingRepo.MarkPastPendingDone(time.Now())
	require.NoError(t, err)
	assert.Zero(t, updated)
}

func TestDeleteReadOlderThan(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	user, _ := helpers.CreateUser(t, ts.DB, "alvo@membros.dev", "Alvo", "employee")

	notification := models.Notification{Title: "Aviso antigo"}
	require.NoError(t, ts.DB.Create(&notification).Error)

	oldRead := time.Now().Add(-120 * 24 * time.Hour)
	recentRead := time.Now().Add(-time.Hour)

	links := []models.NotificationUser{
		{NotificationID: notification.ID, UserID: user.ID, Read: true, ReadAt: &oldRead},
	}
	require.NoError(t, ts.DB.Create(&links).Error)

	other := models.Notification{Title: "Aviso recente"}
	require.NoError(t, ts.DB.Create(&other).Error)
	moreLinks := []models.NotificationUser{
		{NotificationID: other.ID, UserID: user.ID, Read: true, ReadAt: &recentRead},
	}
	require.NoError(t, ts.DB.Create(&moreLinks).Error)

	unread := models.Notification{Title: "Nunca lido"}
	require.NoError(t, ts.DB.Create(&unread).Error)
	unreadLink := models.NotificationUser{NotificationID: unread.ID, UserID: user.ID}
	require.NoError(t, ts.DB.Create(&unreadLink).Error)

	notificationRepo := repositories.NewNotificationRepository(ts.DB)
	cutoff := time.Now().Add(-90 * 24 * time.Hour)

	deleted, err := notificationRepo.DeleteReadOlderThan(cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	var count int64
	require.NoError(t, ts.DB.Model(&models.NotificationUser{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)

	// The old link is gone, the recent and unread ones survive.
	require.NoError(t, ts.DB.Model(&models.NotificationUser{}).
		Where("notification_id = ?", notification.ID).Count(&count).Error)
	assert.Zero(t, count)
}
