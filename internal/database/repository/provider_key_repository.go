package repository

import (
	"time"

	"github.com/contentflowhq/contentflow-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProviderKeyRepository struct {
	db *gorm.DB
}

func NewProviderKeyRepository(db *gorm.DB) *ProviderKeyRepository {
	return &ProviderKeyRepository{db: db}
}

// Upsert creates or replaces the key for (user, provider, key name)
func (r *ProviderKeyRepository) Upsert(key *models.ProviderKey) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "provider"}, {Name: "key_name"}},
		DoUpdates: clause.AssignmentColumns([]string{"encoded_key", "is_active", "updated_at"}),
	}).Create(key).Error
}

// GetByUserID retrieves all stored keys for a user, newest first
func (r *ProviderKeyRepository) GetByUserID(userID string) ([]*models.ProviderKey, error) {
	var keys []*models.ProviderKey
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&keys).Error
	return keys, err
}

// GetActiveKey retrieves the most recently designated active key for a provider
func (r *ProviderKeyRepository) GetActiveKey(userID, provider string) (*models.ProviderKey, error) {
	var key models.ProviderKey
	err := r.db.Where("user_id = ? AND provider = ? AND is_active = ?", userID, provider, true).
		Order("updated_at DESC").First(&key).Error
	if err != nil {
		return nil, err
	}
	return &key, nil
}

// SetActive updates the active flag on a key owned by the user
func (r *ProviderKeyRepository) SetActive(id, userID string, isActive bool) error {
	result := r.db.Model(&models.ProviderKey{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_active", isActive)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// TouchLastUsed sets the last-used timestamp to now
func (r *ProviderKeyRepository) TouchLastUsed(id string) error {
	now := time.Now()
	return r.db.Model(&models.ProviderKey{}).Where("id = ?", id).
		Update("last_used_at", now).Error
}

// Delete deletes a key owned by the user
func (r *ProviderKeyRepository) Delete(id, userID string) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.ProviderKey{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
