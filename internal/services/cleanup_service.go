package services

import (
	"time"

	"github.com/ourkidney/api-backend/internal/repositories"
	"github.com/sirupsen/logrus"
)

// CleanupService periodically clears expired password-reset tokens.
// Expired tokens are already rejected at lookup time; the sweep just
// keeps dead secrets out of the admins table.
type CleanupService struct {
	adminRepo *repositories.AdminRepository
	ticker    *time.Ticker
	done      chan bool
}

// NewCleanupService creates a new cleanup service
func NewCleanupService(adminRepo *repositories.AdminRepository) *CleanupService {
	return &CleanupService{
		adminRepo: adminRepo,
		done:      make(chan bool),
	}
}

// Start begins the periodic cleanup process
// Runs cleanup every 24 hours
func (s *CleanupService) Start() {
	// Run cleanup immediately on startup
	s.runCleanup()

	s.ticker = time.NewTicker(24 * time.Hour)

	go func() {
		for {
			select {
			case <-s.ticker.C:
				s.runCleanup()
			case <-s.done:
				logrus.Info("Cleanup service stopped")
				return
			}
		}
	}()

	logrus.Info("Cleanup service started - will run every 24 hours")
}

// Stop stops the cleanup service
func (s *CleanupService) Stop() {
	if s.ticker != nil {
		s.ticker.Stop()
	}
	s.done <- true
}

// runCleanup performs the actual sweep
func (s *CleanupService) runCleanup() {
	count, err := s.adminRepo.ClearExpiredResetTokens(time.Now().UTC())
	if err != nil {
		logrus.WithError(err).Error("Failed to clear expired reset tokens")
		return
	}

	logrus.Infof("Cleared %d expired reset token(s)", count)
}

// RunCleanupNow triggers an immediate cleanup (manual trigger endpoint)
func (s *CleanupService) RunCleanupNow() {
	s.runCleanup()
}
