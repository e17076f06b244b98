package workers

import (
	"context"
	"time"

	"membrostotal_backend/internal/logger"
	"membrostotal_backend/internal/repositories"
)

const (
	notificationSweepInterval = 24 * time.Hour
	notificationRetention     = 90 * 24 * time.Hour
)

// NotificationWorker prunes read notification links past the retention
// window.
type NotificationWorker struct {
	notificationRepo repositories.NotificationRepository
	interval         time.Duration
	retention        time.Duration
}

func NewNotificationWorker(notificationRepo repositories.NotificationRepository) *NotificationWorker {
	return &NotificationWorker{
		notificationRepo: notificationRepo,
		interval:         notificationSweepInterval,
		retention:        notificationRetention,
	}
}

// Run blocks until ctx is cancelled, pruning on every tick.
func (w *NotificationWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.sweep()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.sweep()
		}
	}
}

func (w *NotificationWorker) sweep() {
	cutoff := time.Now().Add(-w.retention)
	deleted, err := w.notificationRepo.DeleteReadOlderThan(cutoff)
	if err != nil {
		logger.GetLogger().Error("notification prune failed", "error", err)
		return
	}
	if deleted > 0 {
		logger.GetLogger().Info("read notifications pruned", "count", deleted)
	}
}
