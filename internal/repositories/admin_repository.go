package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/ourkidney/api-backend/internal/models"
	"gorm.io/gorm"
)

// AdminRepository handles database operations for admin accounts
type AdminRepository struct {
	db *gorm.DB
}

// NewAdminRepository creates a new admin repository instance
func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// Create inserts a new admin into the database
func (r *AdminRepository) Create(admin *models.Admin) error {
	if admin == nil {
		return fmt.Errorf("admin cannot be nil")
	}

	if err := r.db.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}

	return nil
}

// FindByEmail retrieves an admin by email address.
// Returns (nil, nil) when no admin with that email exists.
func (r *AdminRepository) FindByEmail(email string) (*models.Admin, error) {
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}

	var admin models.Admin
	if err := r.db.Where("email = ?", email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find admin by email: %w", err)
	}

	return &admin, nil
}

// FindByID retrieves an admin by primary key.
// Returns (nil, nil) when the row does not exist.
func (r *AdminRepository) FindByID(id uint) (*models.Admin, error) {
	var admin models.Admin
	if err := r.db.First(&admin, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find admin by id: %w", err)
	}

	return &admin, nil
}

// FindByValidResetToken retrieves the admin whose stored reset token equals
// token and whose expiry is still in the future at the given instant.
// Returns (nil, nil) when no such admin exists, which covers unknown,
// already-consumed, and expired tokens alike.
func (r *AdminRepository) FindByValidResetToken(token string, now time.Time) (*models.Admin, error) {
	if token == "" {
		return nil, fmt.Errorf("token is required")
	}

	var admin models.Admin
	if err := r.db.Where("reset_token = ? AND reset_token_expiry > ?", token, now).
		First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find admin by reset token: %w", err)
	}

	return &admin, nil
}

// SetResetToken stores a reset token and its expiry on the admin row,
// overwriting any previous token. The previous token becomes invalid the
// moment this write commits (newest reset request wins).
func (r *AdminRepository) SetResetToken(id uint, token string, expiry time.Time) error {
	if token == "" {
		return fmt.Errorf("token is required")
	}

	result := r.db.Model(&models.Admin{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"reset_token":        token,
			"reset_token_expiry": expiry,
			"updated_at":         time.Now().UTC(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to set reset token: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("admin not found")
	}

	return nil
}

// ResetPassword replaces the password hash and clears the reset token pair
// in a single update. After this call the consumed token can never
// authorize a second password change.
func (r *AdminRepository) ResetPassword(id uint, passwordHash string) error {
	if passwordHash == "" {
		return fmt.Errorf("password hash is required")
	}

	result := r.db.Model(&models.Admin{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"password_hash":      passwordHash,
			"reset_token":        nil,
			"reset_token_expiry": nil,
			"updated_at":         time.Now().UTC(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to reset password: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("admin not found")
	}

	return nil
}

// UpdateEmail changes the login email of the admin account
func (r *AdminRepository) UpdateEmail(id uint, email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}

	result := r.db.Model(&models.Admin{}).
		Where("id = ?", id).
		Update("email", email)

	if result.Error != nil {
		return fmt.Errorf("failed to update email: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("admin not found")
	}

	return nil
}

// ClearExpiredResetTokens nulls out reset tokens whose expiry has passed.
// Returns the number of rows cleared. Expired tokens are already rejected
// by FindByValidResetToken; this keeps stale secrets out of the table.
func (r *AdminRepository) ClearExpiredResetTokens(now time.Time) (int64, error) {
	result := r.db.Model(&models.Admin{}).
		Where("reset_token IS NOT NULL AND reset_token_expiry <= ?", now).
		Updates(map[string]interface{}{
			"reset_token":        nil,
			"reset_token_expiry": nil,
		})

	if result.Error != nil {
		return 0, fmt.Errorf("failed to clear expired reset tokens: %w", result.Error)
	}

	return result.RowsAffected, nil
}

// Count returns the total number of admin accounts
func (r *AdminRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Admin{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count admins: %w", err)
	}

	return count, nil
}
