// Package jobs runs background maintenance tasks.
package jobs

import (
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/monacap/trading-backend/internal/models"
)

// SessionSweeper periodically deletes expired session rows. Session
// resolution never deletes on the read path; this is the only reaper.
type SessionSweeper struct {
	db   *gorm.DB
	cron *cron.Cron
}

// NewSessionSweeper constructs a SessionSweeper.
func NewSessionSweeper(db *gorm.DB) *SessionSweeper {
	return &SessionSweeper{db: db, cron: cron.New()}
}

// Start schedules the hourly sweep. It returns an error only when the
// schedule expression fails to parse.
func (s *SessionSweeper) Start() error {
	if _, errAdd := s.cron.AddFunc("@hourly", func() {
		if deleted, errSweep := s.Sweep(); errSweep != nil {
			log.WithError(errSweep).Error("session sweep failed")
		} else if deleted > 0 {
			log.WithField("deleted", deleted).Info("expired sessions swept")
		}
	}); errAdd != nil {
		return errAdd
	}
	s.cron.Start()
	return nil
}

// Stop halts the schedule and waits for a running sweep to finish.
func (s *SessionSweeper) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// Sweep deletes all sessions whose expiry is in the past and returns the
// number of rows removed.
func (s *SessionSweeper) Sweep() (int64, error) {
	res := s.db.
		Where("expires_at < ?", time.Now().UTC()).
		Delete(&models.UserSession{})
	return res.RowsAffected, res.Error
}
