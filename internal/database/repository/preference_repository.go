package repository

import (
	"github.com/contentflowhq/contentflow-backend/internal/models"
	"gorm.io/gorm"
)

type PreferenceRepository struct {
	db *gorm.DB
}

func NewPreferenceRepository(db *gorm.DB) *PreferenceRepository {
	return &PreferenceRepository{db: db}
}

// GetByUserID retrieves a user's preference row
func (r *PreferenceRepository) GetByUserID(userID string) (*models.UserPreference, error) {
	var pref models.UserPreference
	err := r.db.Where("user_id = ?", userID).First(&pref).Error
	if err != nil {
		return nil, err
	}
	return &pref, nil
}

// Create creates a preference row
func (r *PreferenceRepository) Create(pref *models.UserPreference) error {
	return r.db.Create(pref).Error
}

// Update updates a preference row
func (r *PreferenceRepository) Update(pref *models.UserPreference) error {
	return r.db.Save(pref).Error
}
