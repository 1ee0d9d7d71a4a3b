package services

import (
	"errors"
	"fmt"

	"github.com/contentflowhq/contentflow-backend/internal/database/repository"
	"github.com/contentflowhq/contentflow-backend/internal/models"

	"gorm.io/gorm"
)

type PreferenceService struct {
	preferenceRepo *repository.PreferenceRepository
}

func NewPreferenceService(preferenceRepo *repository.PreferenceRepository) *PreferenceService {
	return &PreferenceService{preferenceRepo: preferenceRepo}
}

// GetPreferences returns the caller's preferences, creating the default
// row on first access. Accounts that predate preference seeding would
// otherwise 404 forever.
func (s *PreferenceService) GetPreferences(userID string) (*models.UserPreference, error) {
	pref, err := s.preferenceRepo.GetByUserID(userID)
	if err == nil {
		return pref, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}

	pref = models.DefaultPreferences(userID)
	if createErr := s.preferenceRepo.Create(pref); createErr != nil {
		return nil, fmt.Errorf("failed to create default preferences: %w", createErr)
	}
	return pref, nil
}

// UpdatePreferences applies a partial update to the caller's preferences
func (s *PreferenceService) UpdatePreferences(userID string, req *models.UpdatePreferencesRequest) (*models.UserPreference, error) {
	pref, err := s.GetPreferences(userID)
	if err != nil {
		return nil, err
	}

	if req.Timezone != nil {
		pref.Timezone = *req.Timezone
	}
	if req.DefaultPlatform != nil {
		pref.DefaultPlatform = *req.DefaultPlatform
	}
	if req.DefaultContentType != nil {
		pref.DefaultContentType = *req.DefaultContentType
	}
	if req.DefaultAIProvider != nil {
		pref.DefaultAIProvider = *req.DefaultAIProvider
	}
	if req.WritingTone != nil {
		pref.WritingTone = *req.WritingTone
	}
	if req.NotificationsEnabled != nil {
		pref.NotificationsEnabled = *req.NotificationsEnabled
	}
	if req.EmailNotifications != nil {
		pref.EmailNotifications = *req.EmailNotifications
	}
	if req.Preferences != nil {
		pref.Preferences = req.Preferences
	}

	if err := s.preferenceRepo.Update(pref); err != nil {
		return nil, fmt.Errorf("failed to update preferences: %w", err)
	}

	return pref, nil
}
