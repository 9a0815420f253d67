package repositories

import (
	"errors"
	"fmt"

	"github.com/ourkidney/api-backend/internal/models"
	"gorm.io/gorm"
)

// DonationMethodRepository handles database operations for donation methods
type DonationMethodRepository struct {
	db *gorm.DB
}

// NewDonationMethodRepository creates a new donation method repository instance
func NewDonationMethodRepository(db *gorm.DB) *DonationMethodRepository {
	return &DonationMethodRepository{db: db}
}

// Create inserts a new donation method
func (r *DonationMethodRepository) Create(method *models.DonationMethod) error {
	if method == nil {
		return fmt.Errorf("method cannot be nil")
	}

	if err := r.db.Create(method).Error; err != nil {
		return fmt.Errorf("failed to create donation method: %w", err)
	}

	return nil
}

// FindByID retrieves a donation method by primary key.
// Returns (nil, nil) when the row does not exist.
func (r *DonationMethodRepository) FindByID(id uint) (*models.DonationMethod, error) {
	var method models.DonationMethod
	if err := r.db.First(&method, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find donation method: %w", err)
	}

	return &method, nil
}

// List retrieves all donation methods, newest first
func (r *DonationMethodRepository) List() ([]*models.DonationMethod, error) {
	var methods []*models.DonationMethod
	if err := r.db.Order("created_at DESC").Find(&methods).Error; err != nil {
		return nil, fmt.Errorf("failed to list donation methods: %w", err)
	}

	return methods, nil
}

// Update saves changed fields of an existing donation method
func (r *DonationMethodRepository) Update(method *models.DonationMethod) error {
	if method == nil {
		return fmt.Errorf("method cannot be nil")
	}

	result := r.db.Model(&models.DonationMethod{}).
		Where("id = ?", method.ID).
		Updates(map[string]interface{}{
			"account_name":   method.AccountName,
			"account_number": method.AccountNumber,
			"logo_url":       method.LogoURL,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update donation method: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("donation method not found")
	}

	return nil
}

// Delete removes a donation method by primary key
func (r *DonationMethodRepository) Delete(id uint) error {
	result := r.db.Delete(&models.DonationMethod{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete donation method: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("donation method not found")
	}

	return nil
}
