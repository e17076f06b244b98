package workers

import (
	"context"
	"time"

	"membrostotal_backend/internal/logger"
	"membrostotal_backend/internal/repositories"
)

const meetingSweepInterval = 10 * time.Minute

// MeetingWorker periodically marks past pending meetings as done.
type MeetingWorker struct {
	meetingRepo repositories.MeetingRepository
	interval    time.Duration
}

func NewMeetingWorker(meetingRepo repositories.MeetingRepository) *MeetingWorker {
	return &MeetingWorker{
		meetingRepo: meetingRepo,
		interval:    meetingSweepInterval,
	}
}

// Run blocks until ctx is cancelled, sweeping on every tick.
func (w *MeetingWorker) Run(ctx context.Context) {
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

func (w *MeetingWorker) sweep() {
	updated, err := w.meetingRepo.MarkPastPendingDone(time.Now())
	if err != nil {
		logger.GetLogger().Error("meeting sweep failed", "error", err)
		return
	}
	if updated > 0 {
		logger.GetLogger().Info("meetings marked done", "count", updated)
	}
}
