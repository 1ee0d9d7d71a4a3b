package auth

import (
	"time"

	"github.com/contentflowhq/contentflow-backend/internal/database/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// errorLogRetention is how long ingested client errors are kept
const errorLogRetention = 30 * 24 * time.Hour

// CleanupService periodically drops expired refresh tokens and aged-out
// client error logs.
type CleanupService struct {
	refreshTokenRepo *repository.RefreshTokenRepository
	errorLogRepo     *repository.ErrorLogRepository
	interval         time.Duration
	stopChan         chan bool
}

func NewCleanupService(db *gorm.DB) *CleanupService {
	return &CleanupService{
		refreshTokenRepo: repository.NewRefreshTokenRepository(db),
		errorLogRepo:     repository.NewErrorLogRepository(db),
		interval:         24 * time.Hour, // Cleanup every 24 hours
		stopChan:         make(chan bool),
	}
}

// Start starts the cleanup service
func (s *CleanupService) Start() {
	go s.run()
	logrus.Info("Cleanup service started")
}

// Stop stops the cleanup service
func (s *CleanupService) Stop() {
	s.stopChan <- true
	logrus.Info("Cleanup service stopped")
}

// run runs the cleanup loop
func (s *CleanupService) run() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	// Run initial cleanup
	s.cleanup()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopChan:
			return
		}
	}
}

// cleanup drops expired/revoked tokens and stale error logs
func (s *CleanupService) cleanup() {
	logrus.Info("Starting cleanup...")

	if err := s.refreshTokenRepo.CleanupTokens(); err != nil {
		logrus.Errorf("Failed to cleanup tokens: %v", err)
	}

	cutoff := time.Now().Add(-errorLogRetention)
	if err := s.errorLogRepo.DeleteOlderThan(cutoff); err != nil {
		logrus.Errorf("Failed to cleanup error logs: %v", err)
	}

	logrus.Info("Cleanup completed")
}

// SetInterval sets the cleanup interval
func (s *CleanupService) SetInterval(interval time.Duration) {
	s.interval = interval
}
