package repositories

import (
	"errors"
	"fmt"

	"github.com/ourkidney/api-backend/internal/models"
	"gorm.io/gorm"
)

// MissionVisionRepository handles database operations for mission/vision statements
type MissionVisionRepository struct {
	db *gorm.DB
}

// NewMissionVisionRepository creates a new mission/vision repository instance
func NewMissionVisionRepository(db *gorm.DB) *MissionVisionRepository {
	return &MissionVisionRepository{db: db}
}

// Create inserts a new statement
func (r *MissionVisionRepository) Create(statement *models.MissionVision) error {
	if statement == nil {
		return fmt.Errorf("statement cannot be nil")
	}

	if err := r.db.Create(statement).Error; err != nil {
		return fmt.Errorf("failed to create statement: %w", err)
	}

	return nil
}

// FindByID retrieves a statement by primary key.
// Returns (nil, nil) when the row does not exist.
func (r *MissionVisionRepository) FindByID(id uint) (*models.MissionVision, error) {
	var statement models.MissionVision
	if err := r.db.First(&statement, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find statement: %w", err)
	}

	return &statement, nil
}

// List retrieves all statements in insertion order
func (r *MissionVisionRepository) List() ([]*models.MissionVision, error) {
	var statements []*models.MissionVision
	if err := r.db.Find(&statements).Error; err != nil {
		return nil, fmt.Errorf("failed to list statements: %w", err)
	}

	return statements, nil
}

// UpdateDescription changes the text of an existing statement.
// The statement type is fixed at creation.
func (r *MissionVisionRepository) UpdateDescription(id uint, description string) error {
	if description == "" {
		return fmt.Errorf("description is required")
	}

	result := r.db.Model(&models.MissionVision{}).
		Where("id = ?", id).
		Update("description", description)

	if result.Error != nil {
		return fmt.Errorf("failed to update statement: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("statement not found")
	}

	return nil
}

// Delete removes a statement by primary key
func (r *MissionVisionRepository) Delete(id uint) error {
	result := r.db.Delete(&models.MissionVision{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete statement: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("statement not found")
	}

	return nil
}
