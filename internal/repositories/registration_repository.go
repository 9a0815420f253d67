package repositories

import (
	"fmt"

	"github.com/ourkidney/api-backend/internal/models"
	"gorm.io/gorm"
)

// RegistrationRepository handles database operations for membership registrations
type RegistrationRepository struct {
	db *gorm.DB
}

// NewRegistrationRepository creates a new registration repository instance
func NewRegistrationRepository(db *gorm.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

// Create inserts a new registration
func (r *RegistrationRepository) Create(registration *models.Registration) error {
	if registration == nil {
		return fmt.Errorf("registration cannot be nil")
	}

	if err := r.db.Create(registration).Error; err != nil {
		return fmt.Errorf("failed to create registration: %w", err)
	}

	return nil
}

// List retrieves all registrations, newest first. The admin panel
// paginates client-side, so no offset/limit is taken here.
func (r *RegistrationRepository) List() ([]*models.Registration, error) {
	var registrations []*models.Registration
	if err := r.db.Order("created_at DESC").Find(&registrations).Error; err != nil {
		return nil, fmt.Errorf("failed to list registrations: %w", err)
	}

	return registrations, nil
}

// Count returns the total number of registrations
func (r *RegistrationRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Registration{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count registrations: %w", err)
	}

	return count, nil
}
