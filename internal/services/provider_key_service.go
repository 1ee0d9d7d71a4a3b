package services

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/contentflowhq/contentflow-backend/internal/database/repository"
	"github.com/contentflowhq/contentflow-backend/internal/models"

	"gorm.io/gorm"
)

type ProviderKeyService struct {
	keyRepo *repository.ProviderKeyRepository
}

func NewProviderKeyService(keyRepo *repository.ProviderKeyRepository) *ProviderKeyService {
	return &ProviderKeyService{keyRepo: keyRepo}
}

// SaveKey stores (or replaces) a provider key for the caller. The key
// material is base64-encoded at rest and never returned to clients.
func (s *ProviderKeyService) SaveKey(userID string, req *models.SaveProviderKeyRequest) (*models.ProviderKeyResponse, error) {
	apiKey := strings.TrimSpace(req.APIKey)
	if apiKey == "" {
		return nil, errors.New("api key must not be blank")
	}

	key := &models.ProviderKey{
		UserID:     userID,
		Provider:   req.Provider,
		KeyName:    req.KeyName,
		EncodedKey: base64.StdEncoding.EncodeToString([]byte(apiKey)),
		IsActive:   true,
	}

	if err := s.keyRepo.Upsert(key); err != nil {
		return nil, fmt.Errorf("failed to save provider key: %w", err)
	}

	return toProviderKeyResponse(key), nil
}

// ListKeys lists the caller's stored keys without key material
func (s *ProviderKeyService) ListKeys(userID string) ([]*models.ProviderKeyResponse, error) {
	keys, err := s.keyRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list provider keys: %w", err)
	}

	responses := make([]*models.ProviderKeyResponse, len(keys))
	for i, key := range keys {
		responses[i] = toProviderKeyResponse(key)
	}
	return responses, nil
}

// SetKeyActive toggles a stored key on or off
func (s *ProviderKeyService) SetKeyActive(id, userID string, isActive bool) error {
	if err := s.keyRepo.SetActive(id, userID, isActive); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to toggle provider key: %w", err)
	}
	return nil
}

// DeleteKey removes a stored key scoped to its owner
func (s *ProviderKeyService) DeleteKey(id, userID string) error {
	if err := s.keyRepo.Delete(id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete provider key: %w", err)
	}
	return nil
}

func toProviderKeyResponse(key *models.ProviderKey) *models.ProviderKeyResponse {
	return &models.ProviderKeyResponse{
		ID:         key.ID,
		Provider:   key.Provider,
		KeyName:    key.KeyName,
		IsActive:   key.IsActive,
		LastUsedAt: key.LastUsedAt,
		CreatedAt:  key.CreatedAt,
	}
}
